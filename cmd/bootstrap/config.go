package bootstrap

import (
	"time"

	"crease/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewFacilityLocation,
	),
)

func NewFacilityLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Facility.TimeZone)
}
