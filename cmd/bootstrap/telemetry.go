package bootstrap

import (
	"context"

	"book-manager/internal/observability/tracing"
	"book-manager/internal/pkg/config"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(InitTracing),
)

func InitTracing(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := tracing.Init(context.Background(), cfg.Telemetry)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})

	return nil
}
