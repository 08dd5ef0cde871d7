package queries

import (
	"context"
)

type MachineQueries interface {
	ListActive(ctx context.Context) ([]*MachineView, error)
}

type MachineViewRepo interface {
	ListActive(ctx context.Context) ([]*MachineView, error)
}

type machineQueriesImpl struct {
	repo MachineViewRepo
}

func NewMachineQueries(repo MachineViewRepo) MachineQueries {
	return &machineQueriesImpl{repo: repo}
}

func (q *machineQueriesImpl) ListActive(ctx context.Context) ([]*MachineView, error) {
	return q.repo.ListActive(ctx)
}
