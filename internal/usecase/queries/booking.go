package queries

import (
	"context"
	"time"

	"crease/internal/domain/user"
	"crease/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrViewNotAllowed = errs.New("not allowed to view this booking")

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Principal, id uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, userID uuid.UUID, limit int) ([]*BookingListItem, error)
	// ListMachineDay is the staff view of one machine's day sheet.
	ListMachineDay(ctx context.Context, machineID uuid.UUID, date time.Time) ([]*BookingListItem, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingListItem, error)
	ListByMachineDay(ctx context.Context, machineID uuid.UUID, slotDate string) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo     BookingViewRepo
	location *time.Location
}

func NewBookingQueries(repo BookingViewRepo, location *time.Location) BookingQueries {
	return &bookingQueriesImpl{repo: repo, location: location}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Principal, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != actor.ID && !actor.Role.IsPrivileged() {
		return nil, ErrViewNotAllowed
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID, limit int) ([]*BookingListItem, error) {
	if limit <= 0 {
		limit = 50
	}
	return q.repo.ListByUser(ctx, userID, int32(limit))
}

func (q *bookingQueriesImpl) ListMachineDay(ctx context.Context, machineID uuid.UUID, date time.Time) ([]*BookingListItem, error) {
	slotDate := date.In(q.location).Format("2006-01-02")
	return q.repo.ListByMachineDay(ctx, machineID, slotDate)
}
