// Package postgres stores the pokedex tables in PostgreSQL through pgx v5.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/cory-johannsen/tallgrass/internal/config"
)

// Pool owns the pgx connection pool shared by the pokedex repository.
type Pool struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPool dials the pokedex database and verifies it answers a ping.
//
// Precondition: cfg must name a reachable database; logger must be non-nil.
// Postcondition: Returns a pinged Pool or a non-nil error. On error no
// connections are left open.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing pokedex database config: %w", err)
	}
	pcfg.MaxConns = cfg.MaxConns
	pcfg.MinConns = cfg.MinConns
	pcfg.MaxConnLifetime = cfg.MaxConnLifetime

	db, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("opening pokedex pool: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging pokedex database %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	st := db.Stat()
	logger.Info("pokedex database connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Name),
		zap.Int32("total_conns", st.TotalConns()),
		zap.Int32("idle_conns", st.IdleConns()),
		zap.Int32("max_conns", st.MaxConns()),
	)
	return &Pool{pool: db, logger: logger}, nil
}

// Health pings the database, giving up after timeout.
//
// Precondition: the pool has not been closed.
func (p *Pool) Health(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := p.pool.Ping(ctx); err != nil {
		return fmt.Errorf("pokedex database health: %w", err)
	}
	return nil
}

// Close drains the pool.
func (p *Pool) Close() {
	st := p.pool.Stat()
	p.logger.Debug("closing pokedex pool",
		zap.Int64("acquires", st.AcquireCount()),
		zap.Int32("total_conns", st.TotalConns()),
	)
	p.pool.Close()
}

// DB exposes the raw pool to repositories.
func (p *Pool) DB() *pgxpool.Pool {
	return p.pool
}
