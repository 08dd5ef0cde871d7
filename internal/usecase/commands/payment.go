package commands

import (
	"context"

	"crease/internal/domain/payment"
	"crease/internal/infra"
	"crease/internal/pkg/errs"
	"crease/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidPaymentStatus = errs.New("invalid payment status")

type PaymentCommands interface {
	Record(ctx context.Context, userID uuid.UUID, gatewayRef string, amount int64) (uuid.UUID, error)
	RecordGatewayResult(ctx context.Context, gatewayRef string, status string) (uuid.UUID, error)
}

type paymentUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewPaymentUseCase(uow shared.UnitOfWork) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow}
}

// Record creates a CREATED payment row for a gateway order opened elsewhere.
func (u *paymentUseCaseImpl) Record(ctx context.Context, userID uuid.UUID, gatewayRef string, amount int64) (uuid.UUID, error) {
	if gatewayRef == "" || amount <= 0 {
		return uuid.Nil, ErrInvalidPaymentStatus
	}

	p := &payment.Payment{
		ID:         uuid.New(),
		UserID:     userID,
		GatewayRef: gatewayRef,
		Amount:     amount,
		Status:     payment.StatusCreated,
	}

	var id uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Payments().Insert(ctx, p)
		if err != nil {
			return errs.Mark(err, ErrStoreFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// RecordGatewayResult applies the webhook outcome to the payment matching the
// gateway reference. CREATED never transitions backwards; the gateway only
// reports CAPTURED or FAILED.
func (u *paymentUseCaseImpl) RecordGatewayResult(ctx context.Context, gatewayRef string, status string) (uuid.UUID, error) {
	st := payment.Status(status)
	if st != payment.StatusCaptured && st != payment.StatusFailed {
		return uuid.Nil, ErrInvalidPaymentStatus
	}

	var id uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Payments().SetStatusByGatewayRef(ctx, gatewayRef, st)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPaymentNotFound
			}
			return errs.Mark(err, ErrStoreFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
