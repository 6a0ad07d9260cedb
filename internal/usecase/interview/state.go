package interview

// State is the lifecycle of one interview session.
//
//	Idle -> Active <-> Awaiting
//	Active -> Saving -> Idle     (saved)
//	Active -> Saving -> Active   (save failed)
//
// Awaiting means a chat-completion request is in flight. Only one may be
// in flight at a time.
type State int

const (
	StateIdle State = iota
	StateActive
	StateAwaiting
	StateSaving
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateAwaiting:
		return "awaiting"
	case StateSaving:
		return "saving"
	default:
		return "unknown"
	}
}

func (s State) busy() bool {
	return s == StateAwaiting || s == StateSaving
}
