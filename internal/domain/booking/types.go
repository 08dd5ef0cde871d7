package booking

type Status string

const (
	StatusBooked    Status = "BOOKED"
	StatusCancelled Status = "CANCELLED"
	StatusDone      Status = "DONE"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusCancelled, StatusDone:
		return true
	default:
		return false
	}
}

// Terminal statuses admit no further transition.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusDone
}
