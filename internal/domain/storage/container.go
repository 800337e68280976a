package storage

import (
	"context"
	"fmt"

	"storefront/internal/domain/products"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Container struct {
	pool     *pgxpool.Pool
	Products products.Store
}

// NewContainer wires every pgx-backed store. A nil pool yields a container
// with no stores, which the listing service reports as misconfigured.
func NewContainer(db *pgxpool.Pool) *Container {
	if db == nil {
		return &Container{}
	}
	return &Container{
		pool:     db,
		Products: products.NewRepository(db),
	}
}

func (c *Container) Configured() bool {
	return c.pool != nil
}

// Ping checks the database behind the container.
func (c *Container) Ping(ctx context.Context) error {
	if c.pool == nil {
		return fmt.Errorf("storage container has no database pool")
	}
	return c.pool.Ping(ctx)
}

// Stats is published through expvar; nil without a pool.
func (c *Container) Stats() any {
	if c.pool == nil {
		return nil
	}
	s := c.pool.Stat()
	return map[string]any{
		"acquired_conns": s.AcquiredConns(),
		"idle_conns":     s.IdleConns(),
		"total_conns":    s.TotalConns(),
		"max_conns":      s.MaxConns(),
		"acquire_count":  s.AcquireCount(),
	}
}
