package bootstrap

import (
	"hotel-backoffice/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.LogConfig { return cfg.Log },
		func(cfg config.Config) config.MediaConfig { return cfg.Media },
		func(cfg config.Config) config.AnalyticsConfig { return cfg.Analytics },
	),
)
