// Package pg owns the PostgreSQL connection pool: environment-driven pool
// configuration, startup connection with retry, embedded goose migrations,
// error classification helpers, and a healthcheck probe.
//
// Usage:
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, migrations.FS, ".", cfg, log); err != nil {
//		return err
//	}
package pg
