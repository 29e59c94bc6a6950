package quiltanim

// State is the lifecycle state of a Compositor run.
type State int32

const (
	Idle State = iota
	Running
	Completed
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	}
	return "unknown state"
}
