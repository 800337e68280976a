package main

import (
	"context"
	"net/http"
	"time"
)

type healthStatus struct {
	Status          string `json:"status"`
	Env             string `json:"env"`
	Version         string `json:"version"`
	CatalogProducts int    `json:"catalog_products"`
	Database        string `json:"database"`
}

// healthCheckHandler godoc
//
//	@Summary		Health check
//	@Description	Reports the build version, catalog size and database reachability
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	healthStatus
//	@Failure		401	{object}	error
//	@Security		BasicAuth
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	status := healthStatus{
		Status:          "ok",
		Env:             app.config.env,
		Version:         version,
		CatalogProducts: app.catalog.Len(),
		Database:        "unconfigured",
	}

	if app.store != nil && app.store.Configured() {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status.Database = "ok"
		if err := app.store.Ping(ctx); err != nil {
			app.logger.Warnw("database ping failed", "error", err)
			status.Database = "unavailable"
			status.Status = "degraded"
		}
	}

	if err := app.jsonResponse(w, http.StatusOK, status); err != nil {
		app.internalServerError(w, r, err)
	}
}
