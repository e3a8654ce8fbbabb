package call

// ===============================
// Call Status
// ===============================

type Status string

const (
	StatusOpen       Status = "ABERTO"
	StatusInProgress Status = "EM_ATENDIMENTO"
	StatusClosed     Status = "ENCERRADO"
)

func InitialStatus() Status {
	return StatusOpen
}

// IsValid reports whether s is one of the three known statuses. Updaters
// may move between statuses freely; only unknown values are rejected.
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}
