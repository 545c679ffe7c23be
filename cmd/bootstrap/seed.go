package bootstrap

import (
	"context"
	"log/slog"

	"book-manager/internal/pkg/config"
	"book-manager/internal/pkg/password"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(EnsureInitialAdmin),
)

// EnsureInitialAdmin creates the configured admin account if it does not
// exist yet. Skipped when no initial admin is configured.
func EnsureInitialAdmin(pool *pgxpool.Pool, cfg config.Config) error {
	if cfg.Auth.InitialAdminEmail == "" || cfg.Auth.InitialAdminPassword == "" {
		return nil
	}

	ctx := context.Background()

	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`,
		cfg.Auth.InitialAdminEmail,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := password.HashPassword(cfg.Auth.InitialAdminPassword)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
INSERT INTO users (name, email, password_hash, role_id)
VALUES ($1, $2, $3, (SELECT role_id FROM roles WHERE name = 'admin'))`,
		cfg.Auth.InitialAdminName, cfg.Auth.InitialAdminEmail, hash,
	)
	if err != nil {
		return err
	}

	slog.Info("初期管理者ユーザーを作成しました", "email", cfg.Auth.InitialAdminEmail)
	return nil
}
