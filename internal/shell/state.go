package shell

// State of the command loop
type State int

const (
	StateRunning State = iota
	StateExiting
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateExiting:
		return "exiting"
	default:
		return "unknown"
	}
}
