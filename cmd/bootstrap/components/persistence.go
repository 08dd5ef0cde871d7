package components

import (
	"crease/internal/infra/readstore"
	"crease/internal/infra/uow"
	"crease/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	fx.Provide(
		// UnitOfWork owns the write side; command repositories are reached
		// only through its transaction handle.
		uow.NewPostgresUoW,
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Machine
		fx.Annotate(
			readstore.NewMachineReadStore,
			fx.As(new(queries.MachineSnapshotRepo)),
			fx.As(new(queries.MachineViewRepo)),
		),
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookedSlotsRepo)),
			fx.As(new(queries.BookingViewRepo)),
		),
		// Package
		fx.Annotate(
			readstore.NewPackageReadStore,
			fx.As(new(queries.PackageViewRepo)),
		),
		// Subscription
		fx.Annotate(
			readstore.NewSubscriptionReadStore,
			fx.As(new(queries.SubscriptionViewRepo)),
		),
		// Settings (consumed concretely by the pricing bootstrap)
		readstore.NewSettingsReadStore,
	),
)
