package response

import (
	"crease/internal/usecase/queries"

	"github.com/google/uuid"
)

type MachineResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Kind           string    `json:"kind"`
	LeatherCapable bool      `json:"leatherCapable"`
}

func FromMachineViews(views []*queries.MachineView) []*MachineResponse {
	out := make([]*MachineResponse, 0, len(views))
	for _, v := range views {
		out = append(out, &MachineResponse{
			ID:             v.ID,
			Name:           v.Name,
			Kind:           v.Kind,
			LeatherCapable: v.LeatherCapable,
		})
	}
	return out
}
