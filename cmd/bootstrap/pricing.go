package bootstrap

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"crease/internal/domain/pack"
	"crease/internal/domain/pricing"
	"crease/internal/domain/slot"
	"crease/internal/infra"
	"crease/internal/infra/readstore"
	"crease/internal/pkg/config"

	"go.uber.org/fx"
)

// Operator overrides live in the configs table under these keys. Missing keys
// fall back to the compiled-in defaults.
const (
	settingKeyRates      = "pricing.rates"
	settingKeySurcharges = "pricing.surcharges"
)

var PricingModule = fx.Module("pricing",
	fx.Provide(
		NewSlotConfig,
		NewSlabConfig,
		NewRateTable,
		NewSurchargeTable,
		NewPricingEngine,
	),
)

func NewSlotConfig(cfg config.Config, loc *time.Location) slot.Config {
	return slot.Config{
		StartHour:       cfg.Facility.StartHour,
		EndHour:         cfg.Facility.EndHour,
		DurationMinutes: cfg.Facility.SlotMinutes,
		Location:        loc,
	}
}

func NewSlabConfig(cfg config.Config, loc *time.Location) slot.SlabConfig {
	return slot.SlabConfig{
		EveningStartHour: cfg.Facility.EveningStartHour,
		Location:         loc,
	}
}

// rateOverride is the JSON shape of one configs-table rate entry.
type rateOverride struct {
	SubType     string `json:"sub_type"`
	PitchType   string `json:"pitch_type"`
	Slab        string `json:"slab"`
	Single      int64  `json:"single"`
	Consecutive int64  `json:"consecutive"`
}

func NewRateTable(settings *readstore.SettingsReadStore) pricing.Table {
	table := pricing.DefaultTable()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	raw, err := settings.Get(ctx, settingKeyRates)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("failed to load rate overrides, using defaults", "error", err.Error())
		}
		return table
	}

	var overrides []rateOverride
	if err := json.Unmarshal(raw, &overrides); err != nil {
		slog.Warn("malformed rate overrides, using defaults", "error", err.Error())
		return table
	}

	overlay := pricing.Table{}
	for _, o := range overrides {
		key := pricing.RateKey{
			Sub:   pricing.SubType(o.SubType),
			Pitch: pricing.NormalizePitch(o.PitchType),
			Slab:  slot.Slab(o.Slab),
		}
		overlay[key] = pricing.Rate{Single: o.Single, Consecutive: o.Consecutive}
	}
	return table.Merge(overlay)
}

// surchargeOverride is the JSON shape of one configs-table surcharge entry.
type surchargeOverride struct {
	Kind             string `json:"kind"`
	From             string `json:"from,omitempty"`
	To               string `json:"to"`
	AmountPerSession int64  `json:"amount_per_session"`
}

func NewSurchargeTable(settings *readstore.SettingsReadStore) pack.SurchargeTable {
	table := pack.DefaultSurcharges()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	raw, err := settings.Get(ctx, settingKeySurcharges)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("failed to load surcharge overrides, using defaults", "error", err.Error())
		}
		return table
	}

	var overrides []surchargeOverride
	if err := json.Unmarshal(raw, &overrides); err != nil {
		slog.Warn("malformed surcharge overrides, using defaults", "error", err.Error())
		return table
	}

	for _, o := range overrides {
		s := pack.Surcharge{Kind: pack.SurchargeKind(o.Kind), AmountPerSession: o.AmountPerSession}
		switch pack.SurchargeKind(o.Kind) {
		case pack.SurchargeBallType:
			table.SetBallUpgrade(pricing.BallType(o.From), pricing.BallType(o.To), s)
		case pack.SurchargeWicketType:
			table.SetPitchUpgrade(pricing.NormalizePitch(o.From), pricing.NormalizePitch(o.To), s)
		case pack.SurchargeTimingType:
			table.SetTimingUpgrade(slot.Slab(o.To), s)
		default:
			slog.Warn("unknown surcharge kind in overrides", "kind", o.Kind)
		}
	}
	return table
}

func NewPricingEngine(cfg config.Config, table pricing.Table, slabs slot.SlabConfig) *pricing.Engine {
	return pricing.NewEngine(table, slabs, cfg.Pricing.ConsecutiveDiscount)
}
