package coordinator

type Role string

const (
	RoleMaster Role = "master"
	RoleWorker Role = "worker"
)

type State int32

const (
	StateInit State = iota
	StateAwaitingPoolSteady
	StateRoleDecided
	StateStarting
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateAwaitingPoolSteady:
		return "awaiting-pool-steady"
	case StateRoleDecided:
		return "role-decided"
	case StateStarting:
		return "starting"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsFinal reports whether the coordinator is done, successfully or not.
func (s State) IsFinal() bool {
	return s == StateReady || s == StateFailed
}
