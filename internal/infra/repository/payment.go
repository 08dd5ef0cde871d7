package repository

import (
	"context"

	"crease/internal/domain/payment"
	"crease/internal/infra"
	"crease/internal/infra/db"

	"github.com/google/uuid"
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(dbtx db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: dbtx}
}

const insertPaymentSQL = `
INSERT INTO payments (id, user_id, gateway_ref, amount, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (r *PaymentRepository) Insert(ctx context.Context, p *payment.Payment) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertPaymentSQL,
		p.ID, p.UserID, p.GatewayRef, p.Amount, string(p.Status),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment", err)
	}
	return id, nil
}

const setPaymentStatusSQL = `
UPDATE payments
SET status = $2, updated_at = now()
WHERE gateway_ref = $1
RETURNING id`

// SetStatusByGatewayRef records the out-of-band gateway result (webhook).
func (r *PaymentRepository) SetStatusByGatewayRef(ctx context.Context, gatewayRef string, status payment.Status) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, setPaymentStatusSQL, gatewayRef, string(status)).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to update payment status", err)
	}
	return id, nil
}
