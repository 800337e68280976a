package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/docs" //this is required to generate swagger docs
	"storefront/internal/catalog"
	"storefront/internal/domain/products"
	"storefront/internal/domain/storage"
	"storefront/internal/ratelimiter"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config      config
	store       *storage.Container
	catalog     *catalog.Catalog
	listing     *products.Service
	logger      *zap.SugaredLogger
	rateLimiter ratelimiter.Limiter
}

type config struct {
	addr          string
	db            dbConfig
	env           string
	apiURL        string
	auth          authConfig
	rateLimiter   ratelimiter.Config
	cloudinaryURL string
	catalogLocale string
}

type authConfig struct {
	basic basicConfig
}

type basicConfig struct {
	user string
	pass string
}

type dbConfig struct {
	addr        string
	serviceKey  string
	maxConns    int32
	maxIdleTime string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Storefronts on any origin may call the API with credentials; only
	// reads are exposed.
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  func(r *http.Request, origin string) bool { return true },
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	r.Use(app.RateLimiterMiddleware)

	//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/menu", app.getMegaMenuHandler)

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", app.getCategoryTreeHandler)
				r.Get("/flat", app.getFlatCategoriesHandler)
				r.Get("/{categoryID}", app.getCategoryHandler)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", app.listCatalogProductsHandler)
				r.Get("/id/{productID}", app.getCatalogProductByIDHandler)
				r.Get("/{urlKey}", app.getCatalogProductHandler)
			})
		})
	})

	r.Get("/frontend/products", app.listFrontendProductsHandler)

	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
