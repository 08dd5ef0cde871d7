package commands

import (
	"context"
	"errors"
	"time"

	"crease/internal/domain/booking"
	"crease/internal/domain/pack"
	"crease/internal/domain/payment"
	"crease/internal/domain/pricing"
	"crease/internal/domain/slot"
	"crease/internal/domain/subscription"
	"crease/internal/domain/user"
	"crease/internal/infra"
	"crease/internal/pkg/clock"
	"crease/internal/pkg/errs"
	"crease/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMachineNotFound       = errs.New("machine not found")
	ErrMachineInactive       = errs.New("machine is not active")
	ErrInvalidBallType       = errs.New("invalid ball type")
	ErrInvalidFunding        = errs.New("exactly one funding source is required")
	ErrSlotNotInGrid         = errs.New("requested slot is not on the facility grid")
	ErrSlotInPast            = errs.New("requested slot has already started")
	ErrSlotConflict          = errs.New("slot is already booked")
	ErrBookingNotFound       = errs.New("booking not found")
	ErrNotBookingOwner       = errs.New("booking belongs to another user")
	ErrBookingNotCancellable = errs.New("booking cannot be cancelled")
	ErrCancelAfterStart      = errs.New("cannot cancel after the slot has started")
	ErrMarkDoneForbidden     = errs.New("only staff can mark a booking done")
	ErrBookingNotDoneable    = errs.New("only booked sessions can be marked done")
	ErrPackageNotFound       = errs.New("package not found")
	ErrPackageNotUsable      = errs.New("package cannot fund this booking")
	ErrPackageExpired        = errs.New("package has expired")
	ErrPackageScopeMismatch  = errs.New("booking is outside the package scope")
	ErrInsufficientSessions  = errs.New("insufficient sessions remaining")
	ErrSubscriptionNotFound  = errs.New("subscription not found")
	ErrSubscriptionNotUsable = errs.New("subscription cannot fund this booking")
	ErrPaymentNotFound       = errs.New("payment not found")
	ErrPaymentNotCaptured    = errs.New("payment is not captured")
	ErrPaymentAlreadyUsed    = errs.New("payment is already linked to a booking")
	ErrPaymentNotOwned       = errs.New("payment belongs to another user")
	ErrPaymentAmountMismatch = errs.New("payment amount does not cover the booking")
	ErrStoreFailed           = errs.New("store operation failed")
)

// FundingSelector carries exactly one funding source for a booking request.
type FundingSelector struct {
	PackageID      *uuid.UUID
	SubscriptionID *uuid.UUID
	PaymentID      *uuid.UUID
}

func (f FundingSelector) count() int {
	n := 0
	if f.PackageID != nil {
		n++
	}
	if f.SubscriptionID != nil {
		n++
	}
	if f.PaymentID != nil {
		n++
	}
	return n
}

type BookRequest struct {
	Actor      user.Principal
	MachineID  uuid.UUID
	Date       time.Time
	StartTimes []time.Time
	Ball       pricing.BallType
	Pitch      string
	Funding    FundingSelector
}

// BookResult is the single go/no-go outcome of a reconciliation; either every
// slot was booked or none were.
type BookResult struct {
	BookingIDs     []uuid.UUID
	Total          int64
	OriginalTotal  int64
	DiscountAmount int64
	DiscountType   string
}

type BookingCommands interface {
	Book(ctx context.Context, req BookRequest) (*BookResult, error)
	Cancel(ctx context.Context, actor user.Principal, bookingID uuid.UUID) error
	MarkDone(ctx context.Context, actor user.Principal, bookingID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow        shared.UnitOfWork
	engine     *pricing.Engine
	gridCfg    slot.Config
	slabs      slot.SlabConfig
	surcharges pack.SurchargeTable
	clock      clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	engine *pricing.Engine,
	gridCfg slot.Config,
	slabs slot.SlabConfig,
	surcharges pack.SurchargeTable,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:        uow,
		engine:     engine,
		gridCfg:    gridCfg,
		slabs:      slabs,
		surcharges: surcharges,
		clock:      clk,
	}
}

func (u *bookingUseCaseImpl) Book(ctx context.Context, req BookRequest) (*BookResult, error) {
	now := u.clock.Now()

	if !req.Ball.IsValid() {
		return nil, ErrInvalidBallType
	}
	if req.Funding.count() != 1 {
		return nil, ErrInvalidFunding
	}
	pitch := pricing.NormalizePitch(req.Pitch)

	windows, err := u.resolveWindows(req.Date, req.StartTimes, now)
	if err != nil {
		return nil, err
	}

	var result *BookResult
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		machine, err := u.loadMachine(ctx, tx, req.MachineID)
		if err != nil {
			return err
		}

		sub := pricing.ResolveSubType(machine, req.Ball)
		quote, err := u.engine.Quote(sub, pitch, windows)
		if err != nil {
			return errs.Mark(err, ErrSlotNotInGrid)
		}

		switch {
		case req.Funding.PackageID != nil:
			result, err = u.bookWithPackage(ctx, tx, req, pitch, quote, *req.Funding.PackageID, now)
		case req.Funding.SubscriptionID != nil:
			result, err = u.bookWithSubscription(ctx, tx, req, pitch, quote, *req.Funding.SubscriptionID, now)
		default:
			result, err = u.bookWithPayment(ctx, tx, req, pitch, quote, *req.Funding.PaymentID)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// resolveWindows maps the requested start times onto the facility grid for the
// requested day. Anything off-grid or already started rejects the whole
// request.
func (u *bookingUseCaseImpl) resolveWindows(date time.Time, startTimes []time.Time, now time.Time) ([]slot.Window, error) {
	if len(startTimes) == 0 {
		return nil, errs.Mark(pricing.ErrNoSlots, ErrSlotNotInGrid)
	}

	grid, err := slot.Generate(u.gridCfg, date)
	if err != nil {
		return nil, errs.Mark(err, ErrSlotNotInGrid)
	}
	byStart := make(map[int64]slot.Window, len(grid))
	for _, w := range grid {
		byStart[w.Start.Unix()] = w
	}

	windows := make([]slot.Window, 0, len(startTimes))
	for _, st := range startTimes {
		w, ok := byStart[st.Unix()]
		if !ok {
			return nil, ErrSlotNotInGrid
		}
		if w.Start.Before(now) {
			return nil, ErrSlotInPast
		}
		windows = append(windows, w)
	}
	return slot.SortedByStart(windows), nil
}

func (u *bookingUseCaseImpl) loadMachine(ctx context.Context, tx shared.Tx, id uuid.UUID) (pricing.MachineSpec, error) {
	snap, err := tx.Reads().MachineByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return pricing.MachineSpec{}, ErrMachineNotFound
		}
		return pricing.MachineSpec{}, errs.Mark(err, ErrStoreFailed)
	}
	if !snap.Active {
		return pricing.MachineSpec{}, ErrMachineInactive
	}
	return pricing.MachineSpec{
		Kind:           pricing.MachineKind(snap.Kind),
		LeatherCapable: snap.LeatherCapable,
	}, nil
}

func (u *bookingUseCaseImpl) bookWithPackage(
	ctx context.Context,
	tx shared.Tx,
	req BookRequest,
	pitch pricing.PitchType,
	quote pricing.Quote,
	packageID uuid.UUID,
	now time.Time,
) (*BookResult, error) {
	pkg, err := u.loadPackage(ctx, tx, packageID)
	if err != nil {
		return nil, err
	}

	total := len(quote.Slots)
	if pkg.Remaining() < total {
		return nil, ErrInsufficientSessions
	}

	result := &BookResult{OriginalTotal: quote.OriginalTotal}
	for _, sp := range quote.Slots {
		useQuote, err := pkg.ValidateUse(pack.UseRequest{
			UserID:    req.Actor.ID,
			Ball:      req.Ball,
			Pitch:     pitch,
			Slab:      sp.Slab,
			Sessions:  1,
			MachineID: &req.MachineID,
		}, u.surcharges, now)
		if err != nil {
			return nil, mapPackageError(err)
		}

		b, err := booking.NewBooking(booking.NewBookingParams{
			UserID:        req.Actor.ID,
			MachineID:     req.MachineID,
			Window:        sp.Window,
			Ball:          req.Ball,
			Pitch:         pitch,
			Price:         useQuote.ExtraCharge,
			OriginalPrice: sp.Single,
			Funding: booking.PackageFunded{
				PackageID:       packageID,
				ExtraCharge:     useQuote.ExtraCharge,
				ExtraChargeKind: useQuote.ExtraChargeKind,
			},
		})
		if err != nil {
			return nil, errs.Mark(err, ErrSlotNotInGrid)
		}

		bookingID, err := u.insertBooking(ctx, tx, b)
		if err != nil {
			return nil, err
		}
		if err := tx.Packages().InsertPackageBooking(ctx, packageID, bookingID, 1, useQuote.ExtraCharge, string(useQuote.ExtraChargeKind)); err != nil {
			return nil, errs.Mark(err, ErrStoreFailed)
		}

		result.BookingIDs = append(result.BookingIDs, bookingID)
		result.Total += useQuote.ExtraCharge
	}

	// The SQL guard re-checks capacity so a commit that raced past the
	// validation above still cannot overdraw the package.
	if err := tx.Packages().ConsumeSessions(ctx, packageID, total); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrInsufficientSessions
		}
		return nil, errs.Mark(err, ErrStoreFailed)
	}

	return result, nil
}

func (u *bookingUseCaseImpl) bookWithSubscription(
	ctx context.Context,
	tx shared.Tx,
	req BookRequest,
	pitch pricing.PitchType,
	quote pricing.Quote,
	subscriptionID uuid.UUID,
	now time.Time,
) (*BookResult, error) {
	sub, err := u.loadSubscription(ctx, tx, subscriptionID)
	if err != nil {
		return nil, err
	}

	total := len(quote.Slots)
	if err := sub.ValidateUse(req.Actor.ID, total, now); err != nil {
		return nil, mapSubscriptionError(err)
	}

	result := &BookResult{OriginalTotal: quote.OriginalTotal}
	for _, sp := range quote.Slots {
		b, err := booking.NewBooking(booking.NewBookingParams{
			UserID:        req.Actor.ID,
			MachineID:     req.MachineID,
			Window:        sp.Window,
			Ball:          req.Ball,
			Pitch:         pitch,
			Price:         0,
			OriginalPrice: sp.Single,
			Funding:       booking.SubscriptionFunded{SubscriptionID: subscriptionID},
		})
		if err != nil {
			return nil, errs.Mark(err, ErrSlotNotInGrid)
		}

		bookingID, err := u.insertBooking(ctx, tx, b)
		if err != nil {
			return nil, err
		}
		result.BookingIDs = append(result.BookingIDs, bookingID)
	}

	if err := tx.Subscriptions().DebitSessions(ctx, subscriptionID, total); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrInsufficientSessions
		}
		return nil, errs.Mark(err, ErrStoreFailed)
	}

	return result, nil
}

func (u *bookingUseCaseImpl) bookWithPayment(
	ctx context.Context,
	tx shared.Tx,
	req BookRequest,
	pitch pricing.PitchType,
	quote pricing.Quote,
	paymentID uuid.UUID,
) (*BookResult, error) {
	snap, err := tx.Reads().PaymentByIDForUpdate(ctx, paymentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailed)
	}

	pay := &payment.Payment{
		ID:         snap.ID,
		UserID:     snap.UserID,
		GatewayRef: snap.GatewayRef,
		Amount:     snap.Amount,
		Status:     payment.Status(snap.Status),
	}
	if err := pay.AuthorizeLink(req.Actor.ID); err != nil {
		switch {
		case errors.Is(err, payment.ErrNotOwner):
			return nil, ErrPaymentNotOwned
		default:
			return nil, ErrPaymentNotCaptured
		}
	}

	// The row lock serializes racing link attempts; this check catches
	// payments spent by an earlier committed booking.
	linked, err := tx.Reads().PaymentLinked(ctx, paymentID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailed)
	}
	if linked {
		return nil, ErrPaymentAlreadyUsed
	}

	if pay.Amount < quote.Total {
		return nil, ErrPaymentAmountMismatch
	}

	result := &BookResult{
		Total:          quote.Total,
		OriginalTotal:  quote.OriginalTotal,
		DiscountAmount: quote.DiscountAmount,
		DiscountType:   quote.DiscountType,
	}
	for _, sp := range quote.Slots {
		price := sp.Single
		var discountAmount int64
		if quote.HasSavings {
			price = sp.ConsecutiveHalf
			discountAmount = sp.Single - sp.ConsecutiveHalf
		}

		b, err := booking.NewBooking(booking.NewBookingParams{
			UserID:         req.Actor.ID,
			MachineID:      req.MachineID,
			Window:         sp.Window,
			Ball:           req.Ball,
			Pitch:          pitch,
			Price:          price,
			OriginalPrice:  sp.Single,
			DiscountAmount: discountAmount,
			DiscountType:   quote.DiscountType,
			Funding:        booking.DirectPay{PaymentID: paymentID},
		})
		if err != nil {
			return nil, errs.Mark(err, ErrSlotNotInGrid)
		}

		bookingID, err := u.insertBooking(ctx, tx, b)
		if err != nil {
			return nil, err
		}
		result.BookingIDs = append(result.BookingIDs, bookingID)
	}

	return result, nil
}

func (u *bookingUseCaseImpl) insertBooking(ctx context.Context, tx shared.Tx, b *booking.Booking) (uuid.UUID, error) {
	id, err := tx.Bookings().Insert(ctx, b)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return uuid.Nil, ErrSlotConflict
		}
		return uuid.Nil, errs.Mark(err, ErrStoreFailed)
	}
	return id, nil
}

func (u *bookingUseCaseImpl) Cancel(ctx context.Context, actor user.Principal, bookingID uuid.UUID) error {
	now := u.clock.Now()

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrStoreFailed)
		}

		b := reconstructBooking(snap)
		if err := b.Cancel(actor, now); err != nil {
			return mapCancelError(err)
		}

		if err := tx.Bookings().UpdateStatus(ctx, bookingID, booking.StatusBooked, booking.StatusCancelled); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrBookingNotCancellable
			}
			return errs.Mark(err, ErrStoreFailed)
		}

		if booking.RefundableOnCancel(b.Funding()) {
			return u.refundSubscriptionSession(ctx, tx, *snap.SubscriptionID, now)
		}
		return nil
	})
}

// refundSubscriptionSession restores one session after a subscription-funded
// cancellation. The entity decides whether the credit applies (still active,
// same calendar month); a declined credit is not an error, the session is
// simply forfeited.
func (u *bookingUseCaseImpl) refundSubscriptionSession(ctx context.Context, tx shared.Tx, subscriptionID uuid.UUID, now time.Time) error {
	sub, err := u.loadSubscriptionTx(ctx, tx, subscriptionID)
	if err != nil {
		return err
	}
	planSnap, err := tx.Reads().PlanByID(ctx, sub.PlanID())
	if err != nil {
		return errs.Mark(err, ErrStoreFailed)
	}
	plan := subscription.Plan{
		ID:               planSnap.ID,
		Name:             planSnap.Name,
		SessionsPerMonth: planSnap.SessionsPerMonth,
		PricePerMonth:    planSnap.PricePerMonth,
	}

	if !sub.CreditSession(plan, now) {
		return nil
	}
	if err := tx.Subscriptions().CreditSession(ctx, subscriptionID, plan.SessionsPerMonth); err != nil {
		return errs.Mark(err, ErrStoreFailed)
	}
	return nil
}

func (u *bookingUseCaseImpl) MarkDone(ctx context.Context, actor user.Principal, bookingID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrStoreFailed)
		}

		b := reconstructBooking(snap)
		if err := b.MarkDone(actor); err != nil {
			switch {
			case errors.Is(err, booking.ErrNotOwner):
				return ErrMarkDoneForbidden
			default:
				return ErrBookingNotDoneable
			}
		}

		if err := tx.Bookings().UpdateStatus(ctx, bookingID, booking.StatusBooked, booking.StatusDone); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrBookingNotDoneable
			}
			return errs.Mark(err, ErrStoreFailed)
		}
		return nil
	})
}

func (u *bookingUseCaseImpl) loadPackage(ctx context.Context, tx shared.Tx, id uuid.UUID) (*pack.Package, error) {
	snap, err := tx.Reads().PackageByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailed)
	}
	return pack.Reconstruct(
		snap.ID, snap.UserID, snap.TotalSessions, snap.UsedSessions,
		snap.ActivatedAt, snap.ExpiresAt, pack.Status(snap.Status),
		pack.Scope{
			MachineID: snap.MachineID,
			Ball:      pricing.BallType(snap.Ball),
			Pitch:     pricing.NormalizePitch(snap.Pitch),
			Timing:    slot.Slab(snap.Timing),
		},
		snap.AmountPaid,
	), nil
}

func (u *bookingUseCaseImpl) loadSubscription(ctx context.Context, tx shared.Tx, id uuid.UUID) (*subscription.Subscription, error) {
	return u.loadSubscriptionTx(ctx, tx, id)
}

func (u *bookingUseCaseImpl) loadSubscriptionTx(ctx context.Context, tx shared.Tx, id uuid.UUID) (*subscription.Subscription, error) {
	snap, err := tx.Reads().SubscriptionByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailed)
	}
	return subscription.Reconstruct(
		snap.ID, snap.UserID, snap.PlanID, snap.SessionsRemaining,
		snap.MonthYear, snap.ExpiresAt, subscription.Status(snap.Status),
	), nil
}

func reconstructBooking(snap *shared.BookingSnapshot) *booking.Booking {
	var funding booking.Funding
	switch snap.FundingKind {
	case "package":
		funding = booking.PackageFunded{PackageID: *snap.PackageID}
	case "subscription":
		funding = booking.SubscriptionFunded{SubscriptionID: *snap.SubscriptionID}
	default:
		funding = booking.DirectPay{PaymentID: *snap.PaymentID}
	}
	return booking.Reconstruct(
		snap.ID, snap.UserID, snap.MachineID,
		slot.Window{Start: snap.StartTime, End: snap.EndTime},
		"", "", booking.Status(snap.Status),
		0, 0, 0, "", funding,
		time.Time{}, time.Time{},
	)
}

func mapPackageError(err error) error {
	switch {
	case errors.Is(err, pack.ErrExpired):
		return ErrPackageExpired
	case errors.Is(err, pack.ErrInsufficientSessions):
		return ErrInsufficientSessions
	case errors.Is(err, pack.ErrScopeMismatch), errors.Is(err, pack.ErrMachineMismatch):
		return ErrPackageScopeMismatch
	case errors.Is(err, pack.ErrNotOwner), errors.Is(err, pack.ErrNotActive), errors.Is(err, pack.ErrInvalidSessionCount):
		return errs.Mark(err, ErrPackageNotUsable)
	default:
		return errs.Mark(err, ErrPackageNotUsable)
	}
}

func mapSubscriptionError(err error) error {
	switch {
	case errors.Is(err, subscription.ErrInsufficientSessions):
		return ErrInsufficientSessions
	default:
		return errs.Mark(err, ErrSubscriptionNotUsable)
	}
}

func mapCancelError(err error) error {
	switch {
	case errors.Is(err, booking.ErrNotOwner):
		return ErrNotBookingOwner
	case errors.Is(err, booking.ErrPastBooking):
		return ErrCancelAfterStart
	default:
		return ErrBookingNotCancellable
	}
}
