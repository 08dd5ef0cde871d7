package bootstrap

import (
	"crease/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	PricingModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
