package testmgr

// State is the lifecycle position of a test case instance. Transitions are
// strictly sequential and driven by RunLifecycle.
type State int

const (
	StateConstructed State = iota
	StateSetUp
	StateRunning
	StateTearDown
	StateTornDown
)

func (s State) String() string {
	switch s {
	case StateConstructed:
		return "Constructed"
	case StateSetUp:
		return "SetUp"
	case StateRunning:
		return "Run"
	case StateTearDown:
		return "TearDown"
	case StateTornDown:
		return "TornDown"
	default:
		return "Unknown"
	}
}
