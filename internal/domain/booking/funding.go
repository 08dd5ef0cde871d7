package booking

import (
	"crease/internal/domain/pack"

	"github.com/google/uuid"
)

// Funding is the tagged variant for how a booking is paid. Exactly one
// concrete type is attached per booking; probing optional fields at call
// sites is what this replaces.
type Funding interface {
	fundingKind() string
}

type PackageFunded struct {
	PackageID       uuid.UUID
	ExtraCharge     int64
	ExtraChargeKind pack.SurchargeKind
}

type SubscriptionFunded struct {
	SubscriptionID uuid.UUID
}

type DirectPay struct {
	PaymentID uuid.UUID
}

func (PackageFunded) fundingKind() string      { return "package" }
func (SubscriptionFunded) fundingKind() string { return "subscription" }
func (DirectPay) fundingKind() string          { return "direct" }

// RefundableOnCancel is the single decision point for the cancellation refund
// policy: subscription-funded bookings refund one session, package-funded and
// direct-pay bookings do not.
func RefundableOnCancel(f Funding) bool {
	_, ok := f.(SubscriptionFunded)
	return ok
}
