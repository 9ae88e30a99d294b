package bootstrap

import (
	infmedia "hotel-backoffice/internal/infra/media"

	"go.uber.org/fx"
)

var MediaModule = fx.Module("media",
	fx.Provide(
		fx.Annotate(
			infmedia.NewCloudinaryUploader,
			fx.As(new(infmedia.Uploader)),
		),
	),
)
