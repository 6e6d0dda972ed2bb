package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"leadfunnel/internal/config/configs"
)

// NewPostgresPool creates the pgxpool.Pool backing the attempt journal.
// MaxConns is applied when positive. The pool is pinged with a 5 second
// timeout before it is returned; on failure it is closed and the ping
// error is returned. The caller closes the returned pool.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolConf.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
