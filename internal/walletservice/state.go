package walletservice

// State is the lifecycle state of the service. It only moves forward and
// never leaves Ready or Degraded.
type State int

const (
	Uninitialized State = iota
	Initializing
	Ready
	Degraded
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Ready:
		return "ready"
	case Degraded:
		return "degraded"
	default:
		return "unknown"
	}
}
