package machine

import (
	"errors"

	"crease/internal/domain/pricing"

	"github.com/google/uuid"
)

var ErrInactive = errors.New("machine is not active")

// Machine is one bowling machine at the facility.
type Machine struct {
	ID             uuid.UUID
	Name           string
	Kind           pricing.MachineKind
	LeatherCapable bool
	Active         bool
}

func (m *Machine) Spec() pricing.MachineSpec {
	return pricing.MachineSpec{
		Kind:           m.Kind,
		LeatherCapable: m.LeatherCapable,
	}
}
