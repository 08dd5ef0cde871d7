//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"crease/internal/domain/booking"
	"crease/internal/domain/pack"
	"crease/internal/domain/pricing"
	"crease/internal/domain/slot"
	"crease/internal/domain/user"
	"crease/internal/infra"
	"crease/internal/pkg/clock"
	"crease/internal/usecase/commands"
	"crease/internal/usecase/shared"
	"crease/tests/common/builder"
	sharedmock "crease/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var kolkata = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		panic(err)
	}
	return loc
}()

// Fixed test day: bookings happen on 2026-03-14, "now" is 05:00 facility time
// so the whole grid is still in the future.
var (
	testDay = time.Date(2026, 3, 14, 0, 0, 0, 0, kolkata)
	testNow = time.Date(2026, 3, 14, 5, 0, 0, 0, kolkata)
)

func at(h, m int) time.Time {
	return time.Date(2026, 3, 14, h, m, 0, 0, kolkata)
}

var (
	errNotFound = infra.WrapRepoErr("not found", nil, infra.KindNotFound)
	errConflict = infra.WrapRepoErr("conflict", nil, infra.KindConflict)
)

type bookingFixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	bookings      *sharedmock.MockBookingRepository
	packages      *sharedmock.MockPackageRepository
	subscriptions *sharedmock.MockSubscriptionRepository
	clock         *clock.MockClock
	uc            commands.BookingCommands
}

func newBookingFixture(t *testing.T) *bookingFixture {
	ctrl := gomock.NewController(t)
	f := &bookingFixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		packages:      sharedmock.NewMockPackageRepository(ctrl),
		subscriptions: sharedmock.NewMockSubscriptionRepository(ctrl),
		clock:         clock.NewMockClock(testNow),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		},
	).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Packages().Return(f.packages).AnyTimes()
	f.tx.EXPECT().Subscriptions().Return(f.subscriptions).AnyTimes()

	gridCfg := slot.Config{StartHour: 6, EndHour: 22, DurationMinutes: 30, Location: kolkata}
	slabs := slot.SlabConfig{EveningStartHour: 16, Location: kolkata}
	engine := pricing.NewEngine(pricing.DefaultTable(), slabs, true)

	f.uc = commands.NewBookingUseCase(f.uow, engine, gridCfg, slabs, pack.DefaultSurcharges(), f.clock)
	return f
}

func (f *bookingFixture) expectMachine(id uuid.UUID) {
	f.reads.EXPECT().MachineByID(gomock.Any(), id).Return(&shared.MachineSnapshot{
		ID:             id,
		Name:           "Lane 1",
		Kind:           "bowling",
		LeatherCapable: false,
		Active:         true,
	}, nil)
}

func directRequest(actor user.Principal, machineID uuid.UUID, paymentID uuid.UUID, starts ...time.Time) commands.BookRequest {
	return commands.BookRequest{
		Actor:      actor,
		MachineID:  machineID,
		Date:       testDay,
		StartTimes: starts,
		Ball:       pricing.BallTennis,
		Pitch:      "ASTRO",
		Funding:    commands.FundingSelector{PaymentID: &paymentID},
	}
}

func TestBook_DirectPay(t *testing.T) {
	actor := user.Principal{ID: uuid.New(), Role: user.RolePlayer}
	machineID := uuid.New()
	paymentID := uuid.New()

	capturedPayment := func(amount int64) *shared.PaymentSnapshot {
		return &shared.PaymentSnapshot{
			ID:         paymentID,
			UserID:     actor.ID,
			GatewayRef: "pay_123",
			Amount:     amount,
			Status:     "CAPTURED",
		}
	}

	t.Run("consecutive pair books at the discounted split", func(t *testing.T) {
		f := newBookingFixture(t)
		f.expectMachine(machineID)
		f.reads.EXPECT().PaymentByIDForUpdate(gomock.Any(), paymentID).Return(capturedPayment(1000), nil)
		f.reads.EXPECT().PaymentLinked(gomock.Any(), paymentID).Return(false, nil)

		var inserted []*booking.Booking
		f.bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
				inserted = append(inserted, b)
				return uuid.New(), nil
			},
		).Times(2)

		result, err := f.uc.Book(context.Background(), directRequest(actor, machineID, paymentID, at(9, 0), at(9, 30)))
		require.NoError(t, err)

		assert.Len(t, result.BookingIDs, 2)
		assert.Equal(t, int64(1000), result.Total)
		assert.Equal(t, int64(1200), result.OriginalTotal)
		assert.Equal(t, int64(200), result.DiscountAmount)
		assert.Equal(t, pricing.DiscountTypeConsecutive, result.DiscountType)

		require.Len(t, inserted, 2)
		for _, b := range inserted {
			assert.Equal(t, int64(500), b.Price())
			assert.Equal(t, int64(600), b.OriginalPrice())
			assert.Equal(t, int64(100), b.DiscountAmount())
			assert.Equal(t, booking.DirectPay{PaymentID: paymentID}, b.Funding())
		}
	})

	t.Run("single slot books at the single rate", func(t *testing.T) {
		f := newBookingFixture(t)
		f.expectMachine(machineID)
		f.reads.EXPECT().PaymentByIDForUpdate(gomock.Any(), paymentID).Return(capturedPayment(600), nil)
		f.reads.EXPECT().PaymentLinked(gomock.Any(), paymentID).Return(false, nil)
		f.bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

		result, err := f.uc.Book(context.Background(), directRequest(actor, machineID, paymentID, at(9, 0)))
		require.NoError(t, err)

		assert.Equal(t, int64(600), result.Total)
		assert.Zero(t, result.DiscountAmount)
	})

	t.Run("spent payment cannot fund another booking", func(t *testing.T) {
		f := newBookingFixture(t)
		f.expectMachine(machineID)
		f.reads.EXPECT().PaymentByIDForUpdate(gomock.Any(), paymentID).Return(capturedPayment(600), nil)
		f.reads.EXPECT().PaymentLinked(gomock.Any(), paymentID).Return(true, nil)

		// No inserts: the reconciliation rejects before touching bookings.
		_, err := f.uc.Book(context.Background(), directRequest(actor, machineID, paymentID, at(10, 0)))
		assert.ErrorIs(t, err, commands.ErrPaymentAlreadyUsed)
	})

	t.Run("conflicting slot aborts the whole reconciliation", func(t *testing.T) {
		f := newBookingFixture(t)
		f.expectMachine(machineID)
		f.reads.EXPECT().PaymentByIDForUpdate(gomock.Any(), paymentID).Return(capturedPayment(1000), nil)
		f.reads.EXPECT().PaymentLinked(gomock.Any(), paymentID).Return(false, nil)

		gomock.InOrder(
			f.bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uuid.New(), nil),
			f.bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uuid.Nil, errConflict),
		)

		_, err := f.uc.Book(context.Background(), directRequest(actor, machineID, paymentID, at(9, 0), at(9, 30)))
		assert.ErrorIs(t, err, commands.ErrSlotConflict)
	})

	t.Run("payment guards", func(t *testing.T) {
		cases := []struct {
			name  string
			snap  *shared.PaymentSnapshot
			errIs error
		}{
			{
				name: "not captured",
				snap: &shared.PaymentSnapshot{ID: paymentID, UserID: actor.ID, Amount: 1000, Status: "CREATED"},
				errIs: commands.ErrPaymentNotCaptured,
			},
			{
				name: "owned by someone else",
				snap: &shared.PaymentSnapshot{ID: paymentID, UserID: uuid.New(), Amount: 1000, Status: "CAPTURED"},
				errIs: commands.ErrPaymentNotOwned,
			},
			{
				name: "amount below the quote",
				snap: capturedPayment(999),
				errIs: commands.ErrPaymentAmountMismatch,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newBookingFixture(t)
				f.expectMachine(machineID)
				f.reads.EXPECT().PaymentByIDForUpdate(gomock.Any(), paymentID).Return(tc.snap, nil)
				f.reads.EXPECT().PaymentLinked(gomock.Any(), paymentID).Return(false, nil).AnyTimes()

				_, err := f.uc.Book(context.Background(), directRequest(actor, machineID, paymentID, at(9, 0), at(9, 30)))
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("missing payment", func(t *testing.T) {
		f := newBookingFixture(t)
		f.expectMachine(machineID)
		f.reads.EXPECT().PaymentByIDForUpdate(gomock.Any(), paymentID).Return(nil, errNotFound)

		_, err := f.uc.Book(context.Background(), directRequest(actor, machineID, paymentID, at(9, 0)))
		assert.ErrorIs(t, err, commands.ErrPaymentNotFound)
	})
}

func TestBook_Validation(t *testing.T) {
	actor := user.Principal{ID: uuid.New(), Role: user.RolePlayer}
	machineID := uuid.New()
	paymentID := uuid.New()

	t.Run("invalid ball type", func(t *testing.T) {
		f := newBookingFixture(t)
		req := directRequest(actor, machineID, paymentID, at(9, 0))
		req.Ball = pricing.BallType("RUBBER")
		_, err := f.uc.Book(context.Background(), req)
		assert.ErrorIs(t, err, commands.ErrInvalidBallType)
	})

	t.Run("no funding source", func(t *testing.T) {
		f := newBookingFixture(t)
		req := directRequest(actor, machineID, paymentID, at(9, 0))
		req.Funding = commands.FundingSelector{}
		_, err := f.uc.Book(context.Background(), req)
		assert.ErrorIs(t, err, commands.ErrInvalidFunding)
	})

	t.Run("two funding sources", func(t *testing.T) {
		f := newBookingFixture(t)
		pkgID := uuid.New()
		req := directRequest(actor, machineID, paymentID, at(9, 0))
		req.Funding.PackageID = &pkgID
		_, err := f.uc.Book(context.Background(), req)
		assert.ErrorIs(t, err, commands.ErrInvalidFunding)
	})

	t.Run("off-grid start time", func(t *testing.T) {
		f := newBookingFixture(t)
		_, err := f.uc.Book(context.Background(), directRequest(actor, machineID, paymentID, at(9, 15)))
		assert.ErrorIs(t, err, commands.ErrSlotNotInGrid)
	})

	t.Run("slot already started", func(t *testing.T) {
		f := newBookingFixture(t)
		f.clock.Set(at(10, 0))
		_, err := f.uc.Book(context.Background(), directRequest(actor, machineID, paymentID, at(9, 0)))
		assert.ErrorIs(t, err, commands.ErrSlotInPast)
	})

	t.Run("inactive machine", func(t *testing.T) {
		f := newBookingFixture(t)
		f.reads.EXPECT().MachineByID(gomock.Any(), machineID).Return(&shared.MachineSnapshot{
			ID: machineID, Kind: "bowling", Active: false,
		}, nil)
		_, err := f.uc.Book(context.Background(), directRequest(actor, machineID, paymentID, at(9, 0)))
		assert.ErrorIs(t, err, commands.ErrMachineInactive)
	})

	t.Run("unknown machine", func(t *testing.T) {
		f := newBookingFixture(t)
		f.reads.EXPECT().MachineByID(gomock.Any(), machineID).Return(nil, errNotFound)
		_, err := f.uc.Book(context.Background(), directRequest(actor, machineID, paymentID, at(9, 0)))
		assert.ErrorIs(t, err, commands.ErrMachineNotFound)
	})
}

func TestBook_Package(t *testing.T) {
	actor := user.Principal{ID: uuid.New(), Role: user.RolePlayer}
	machineID := uuid.New()

	packageSnap := func(mutate ...func(*builder.PackageBuilder)) (*builder.PackageBuilder, *shared.PackageSnapshot) {
		b := builder.NewPackageBuilder().With(func(b *builder.PackageBuilder) {
			b.UserID = actor.ID
			b.ActivatedAt = testNow.AddDate(0, 0, -10)
			b.ExpiresAt = testNow.AddDate(0, 0, 80)
		})
		for _, m := range mutate {
			b.With(m)
		}
		return b, b.BuildSnapshot()
	}

	packageRequest := func(pkgID uuid.UUID, starts ...time.Time) commands.BookRequest {
		return commands.BookRequest{
			Actor:      actor,
			MachineID:  machineID,
			Date:       testDay,
			StartTimes: starts,
			Ball:       pricing.BallTennis,
			Pitch:      "ASTRO",
			Funding:    commands.FundingSelector{PackageID: &pkgID},
		}
	}

	t.Run("in-scope sessions book at zero price", func(t *testing.T) {
		f := newBookingFixture(t)
		b, snap := packageSnap()
		f.expectMachine(machineID)
		f.reads.EXPECT().PackageByID(gomock.Any(), b.ID).Return(snap, nil)

		var inserted []*booking.Booking
		f.bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, bk *booking.Booking) (uuid.UUID, error) {
				inserted = append(inserted, bk)
				return uuid.New(), nil
			},
		).Times(2)
		f.packages.EXPECT().InsertPackageBooking(gomock.Any(), b.ID, gomock.Any(), 1, int64(0), "").Times(2)
		f.packages.EXPECT().ConsumeSessions(gomock.Any(), b.ID, 2).Return(nil)

		result, err := f.uc.Book(context.Background(), packageRequest(b.ID, at(9, 0), at(9, 30)))
		require.NoError(t, err)

		assert.Zero(t, result.Total)
		assert.Equal(t, int64(1200), result.OriginalTotal)
		for _, bk := range inserted {
			assert.Zero(t, bk.Price())
			assert.Equal(t, int64(600), bk.OriginalPrice())
		}
	})

	t.Run("evening slot on a morning package pays the timing surcharge", func(t *testing.T) {
		f := newBookingFixture(t)
		b, snap := packageSnap(func(b *builder.PackageBuilder) {
			b.Timing = slot.SlabMorning
		})
		f.expectMachine(machineID)
		f.reads.EXPECT().PackageByID(gomock.Any(), b.ID).Return(snap, nil)
		f.bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		f.packages.EXPECT().InsertPackageBooking(gomock.Any(), b.ID, gomock.Any(), 1, int64(150), "TIMING_TYPE")
		f.packages.EXPECT().ConsumeSessions(gomock.Any(), b.ID, 1).Return(nil)

		result, err := f.uc.Book(context.Background(), packageRequest(b.ID, at(18, 0)))
		require.NoError(t, err)
		assert.Equal(t, int64(150), result.Total)
	})

	t.Run("insufficient sessions rejects before writing", func(t *testing.T) {
		f := newBookingFixture(t)
		b, snap := packageSnap(func(b *builder.PackageBuilder) {
			b.TotalSessions = 2
			b.UsedSessions = 1
		})
		f.expectMachine(machineID)
		f.reads.EXPECT().PackageByID(gomock.Any(), b.ID).Return(snap, nil)

		_, err := f.uc.Book(context.Background(), packageRequest(b.ID, at(9, 0), at(9, 30)))
		assert.ErrorIs(t, err, commands.ErrInsufficientSessions)
	})

	t.Run("expired package", func(t *testing.T) {
		f := newBookingFixture(t)
		b, snap := packageSnap(func(b *builder.PackageBuilder) {
			b.ExpiresAt = testNow.Add(-time.Hour)
		})
		f.expectMachine(machineID)
		f.reads.EXPECT().PackageByID(gomock.Any(), b.ID).Return(snap, nil)

		_, err := f.uc.Book(context.Background(), packageRequest(b.ID, at(9, 0)))
		assert.ErrorIs(t, err, commands.ErrPackageExpired)
	})

	t.Run("scope mismatch without an upgrade path", func(t *testing.T) {
		f := newBookingFixture(t)
		b, snap := packageSnap(func(b *builder.PackageBuilder) {
			b.Ball = pricing.BallLeather
		})
		f.expectMachine(machineID)
		f.reads.EXPECT().PackageByID(gomock.Any(), b.ID).Return(snap, nil)

		// Tennis request against a leather package has no surcharge entry.
		_, err := f.uc.Book(context.Background(), packageRequest(b.ID, at(9, 0)))
		assert.ErrorIs(t, err, commands.ErrPackageScopeMismatch)
	})

	t.Run("concurrent overdraw caught by the store guard", func(t *testing.T) {
		f := newBookingFixture(t)
		b, snap := packageSnap()
		f.expectMachine(machineID)
		f.reads.EXPECT().PackageByID(gomock.Any(), b.ID).Return(snap, nil)
		f.bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		f.packages.EXPECT().InsertPackageBooking(gomock.Any(), b.ID, gomock.Any(), 1, int64(0), "")
		f.packages.EXPECT().ConsumeSessions(gomock.Any(), b.ID, 1).Return(errConflict)

		_, err := f.uc.Book(context.Background(), packageRequest(b.ID, at(9, 0)))
		assert.ErrorIs(t, err, commands.ErrInsufficientSessions)
	})
}

func TestBook_Subscription(t *testing.T) {
	actor := user.Principal{ID: uuid.New(), Role: user.RolePlayer}
	machineID := uuid.New()

	subscriptionSnap := func(mutate ...func(*builder.SubscriptionBuilder)) (*builder.SubscriptionBuilder, *shared.SubscriptionSnapshot) {
		b := builder.NewSubscriptionBuilder().With(func(b *builder.SubscriptionBuilder) {
			b.UserID = actor.ID
			b.MonthYear = testNow.Format("2006-01")
			b.ExpiresAt = time.Date(2026, 3, 31, 23, 59, 59, 0, kolkata)
		})
		for _, m := range mutate {
			b.With(m)
		}
		return b, b.BuildSnapshot()
	}

	subscriptionRequest := func(subID uuid.UUID, starts ...time.Time) commands.BookRequest {
		return commands.BookRequest{
			Actor:      actor,
			MachineID:  machineID,
			Date:       testDay,
			StartTimes: starts,
			Ball:       pricing.BallTennis,
			Pitch:      "ASTRO",
			Funding:    commands.FundingSelector{SubscriptionID: &subID},
		}
	}

	t.Run("sessions book at zero price and debit the balance", func(t *testing.T) {
		f := newBookingFixture(t)
		b, snap := subscriptionSnap()
		f.expectMachine(machineID)
		f.reads.EXPECT().SubscriptionByID(gomock.Any(), b.ID).Return(snap, nil)

		var inserted []*booking.Booking
		f.bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, bk *booking.Booking) (uuid.UUID, error) {
				inserted = append(inserted, bk)
				return uuid.New(), nil
			},
		).Times(2)
		f.subscriptions.EXPECT().DebitSessions(gomock.Any(), b.ID, 2).Return(nil)

		result, err := f.uc.Book(context.Background(), subscriptionRequest(b.ID, at(9, 0), at(9, 30)))
		require.NoError(t, err)

		assert.Zero(t, result.Total)
		for _, bk := range inserted {
			assert.Zero(t, bk.Price())
			assert.Equal(t, booking.SubscriptionFunded{SubscriptionID: b.ID}, bk.Funding())
		}
	})

	t.Run("insufficient balance", func(t *testing.T) {
		f := newBookingFixture(t)
		b, snap := subscriptionSnap(func(b *builder.SubscriptionBuilder) {
			b.SessionsRemaining = 1
		})
		f.expectMachine(machineID)
		f.reads.EXPECT().SubscriptionByID(gomock.Any(), b.ID).Return(snap, nil)

		_, err := f.uc.Book(context.Background(), subscriptionRequest(b.ID, at(9, 0), at(9, 30)))
		assert.ErrorIs(t, err, commands.ErrInsufficientSessions)
	})

	t.Run("expired subscription", func(t *testing.T) {
		f := newBookingFixture(t)
		b, snap := subscriptionSnap(func(b *builder.SubscriptionBuilder) {
			b.ExpiresAt = testNow.Add(-time.Hour)
		})
		f.expectMachine(machineID)
		f.reads.EXPECT().SubscriptionByID(gomock.Any(), b.ID).Return(snap, nil)

		_, err := f.uc.Book(context.Background(), subscriptionRequest(b.ID, at(9, 0)))
		assert.ErrorIs(t, err, commands.ErrSubscriptionNotUsable)
	})
}

func TestCancel(t *testing.T) {
	actor := user.Principal{ID: uuid.New(), Role: user.RolePlayer}

	futureBooking := func(funding booking.Funding) (*builder.BookingBuilder, *shared.BookingSnapshot) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.UserID = actor.ID
			b.Start = at(18, 0)
			b.End = at(18, 30)
			b.Funding = funding
		})
		return b, b.BuildSnapshot()
	}

	t.Run("direct pay cancellation has no refund side effects", func(t *testing.T) {
		f := newBookingFixture(t)
		b, snap := futureBooking(booking.DirectPay{PaymentID: uuid.New()})
		f.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(snap, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), b.ID, booking.StatusBooked, booking.StatusCancelled).Return(nil)

		require.NoError(t, f.uc.Cancel(context.Background(), actor, b.ID))
	})

	t.Run("subscription funded cancellation credits one session", func(t *testing.T) {
		f := newBookingFixture(t)
		sb := builder.NewSubscriptionBuilder().With(func(b *builder.SubscriptionBuilder) {
			b.UserID = actor.ID
			b.SessionsRemaining = 5
			b.MonthYear = testNow.Format("2006-01")
			b.ExpiresAt = time.Date(2026, 3, 31, 23, 59, 59, 0, kolkata)
		})
		b, snap := futureBooking(booking.SubscriptionFunded{SubscriptionID: sb.ID})

		f.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(snap, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), b.ID, booking.StatusBooked, booking.StatusCancelled).Return(nil)
		f.reads.EXPECT().SubscriptionByID(gomock.Any(), sb.ID).Return(sb.BuildSnapshot(), nil)
		f.reads.EXPECT().PlanByID(gomock.Any(), sb.PlanID).Return(sb.BuildPlanSnapshot(), nil)
		f.subscriptions.EXPECT().CreditSession(gomock.Any(), sb.ID, sb.SessionsPerMonth).Return(nil)

		require.NoError(t, f.uc.Cancel(context.Background(), actor, b.ID))
	})

	t.Run("declined credit forfeits the session silently", func(t *testing.T) {
		f := newBookingFixture(t)
		sb := builder.NewSubscriptionBuilder().With(func(b *builder.SubscriptionBuilder) {
			b.UserID = actor.ID
			b.MonthYear = "2026-02"
			// Month rolled over; the subscription row is still ACTIVE but the
			// credit window has closed.
			b.ExpiresAt = time.Date(2026, 2, 28, 23, 59, 59, 0, kolkata)
		})
		b, snap := futureBooking(booking.SubscriptionFunded{SubscriptionID: sb.ID})

		f.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(snap, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), b.ID, booking.StatusBooked, booking.StatusCancelled).Return(nil)
		f.reads.EXPECT().SubscriptionByID(gomock.Any(), sb.ID).Return(sb.BuildSnapshot(), nil)

		// No PlanByID, no repo credit: cancellation still succeeds.
		require.NoError(t, f.uc.Cancel(context.Background(), actor, b.ID))
	})

	t.Run("package funded cancellation forfeits the session", func(t *testing.T) {
		f := newBookingFixture(t)
		b, snap := futureBooking(booking.PackageFunded{PackageID: uuid.New()})
		f.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(snap, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), b.ID, booking.StatusBooked, booking.StatusCancelled).Return(nil)

		require.NoError(t, f.uc.Cancel(context.Background(), actor, b.ID))
	})

	t.Run("owner cannot cancel after start", func(t *testing.T) {
		f := newBookingFixture(t)
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.UserID = actor.ID
			b.Start = at(4, 0)
			b.End = at(4, 30)
		})
		f.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		err := f.uc.Cancel(context.Background(), actor, b.ID)
		assert.ErrorIs(t, err, commands.ErrCancelAfterStart)
	})

	t.Run("coach can cancel after start", func(t *testing.T) {
		f := newBookingFixture(t)
		staff := user.Principal{ID: uuid.New(), Role: user.RoleCoach}
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Start = at(4, 0)
			b.End = at(4, 30)
		})
		f.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), b.ID, booking.StatusBooked, booking.StatusCancelled).Return(nil)

		require.NoError(t, f.uc.Cancel(context.Background(), staff, b.ID))
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		f := newBookingFixture(t)
		b, snap := futureBooking(booking.DirectPay{PaymentID: uuid.New()})
		f.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(snap, nil)

		stranger := user.Principal{ID: uuid.New(), Role: user.RolePlayer}
		err := f.uc.Cancel(context.Background(), stranger, b.ID)
		assert.ErrorIs(t, err, commands.ErrNotBookingOwner)
	})

	t.Run("already cancelled", func(t *testing.T) {
		f := newBookingFixture(t)
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.UserID = actor.ID
			b.Start = at(18, 0)
			b.End = at(18, 30)
			b.Status = booking.StatusCancelled
		})
		f.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		err := f.uc.Cancel(context.Background(), actor, b.ID)
		assert.ErrorIs(t, err, commands.ErrBookingNotCancellable)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newBookingFixture(t)
		id := uuid.New()
		f.reads.EXPECT().BookingByID(gomock.Any(), id).Return(nil, errNotFound)

		err := f.uc.Cancel(context.Background(), actor, id)
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("lost race on the status transition", func(t *testing.T) {
		f := newBookingFixture(t)
		b, snap := futureBooking(booking.DirectPay{PaymentID: uuid.New()})
		f.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(snap, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), b.ID, booking.StatusBooked, booking.StatusCancelled).Return(errConflict)

		err := f.uc.Cancel(context.Background(), actor, b.ID)
		assert.ErrorIs(t, err, commands.ErrBookingNotCancellable)
	})
}

func TestMarkDone(t *testing.T) {
	staff := user.Principal{ID: uuid.New(), Role: user.RoleCoach}

	t.Run("coach marks a session done", func(t *testing.T) {
		f := newBookingFixture(t)
		b := builder.NewBookingBuilder()
		f.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), b.ID, booking.StatusBooked, booking.StatusDone).Return(nil)

		require.NoError(t, f.uc.MarkDone(context.Background(), staff, b.ID))
	})

	t.Run("players cannot mark done, even their own", func(t *testing.T) {
		f := newBookingFixture(t)
		b := builder.NewBookingBuilder()
		owner := user.Principal{ID: b.UserID, Role: user.RolePlayer}
		f.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		err := f.uc.MarkDone(context.Background(), owner, b.ID)
		assert.ErrorIs(t, err, commands.ErrMarkDoneForbidden)
	})

	t.Run("cancelled booking cannot be marked done", func(t *testing.T) {
		f := newBookingFixture(t)
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusCancelled
		})
		f.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		err := f.uc.MarkDone(context.Background(), staff, b.ID)
		assert.ErrorIs(t, err, commands.ErrBookingNotDoneable)
	})
}
