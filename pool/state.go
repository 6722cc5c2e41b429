package pool

import "strings"

// NodeState is the lifecycle state of a compute node.
type NodeState string

const (
	StateIdle                NodeState = "idle"
	StateLeavingPool         NodeState = "leavingpool"
	StateOffline             NodeState = "offline"
	StatePreempted           NodeState = "preempted"
	StatePreparing           NodeState = "preparing"
	StateCreating            NodeState = "creating"
	StateRebooting           NodeState = "rebooting"
	StateReimaging           NodeState = "reimaging"
	StateRunning             NodeState = "running"
	StateStarting            NodeState = "starting"
	StateStartTaskFailed     NodeState = "starttaskfailed"
	StateUnknown             NodeState = "unknown"
	StateUnusable            NodeState = "unusable"
	StateWaitingForStartTask NodeState = "waitingforstarttask"
)

var knownStates = map[NodeState]struct{}{
	StateIdle:                {},
	StateLeavingPool:         {},
	StateOffline:             {},
	StatePreempted:           {},
	StatePreparing:           {},
	StateCreating:            {},
	StateRebooting:           {},
	StateReimaging:           {},
	StateRunning:             {},
	StateStarting:            {},
	StateStartTaskFailed:     {},
	StateUnknown:             {},
	StateUnusable:            {},
	StateWaitingForStartTask: {},
}

// ParseNodeState converts a wire value into a NodeState. The service spells
// states in lower camel case ("waitingForStartTask") in some API versions and
// in lower case in others, so the comparison ignores case, dashes and
// underscores. Values unknown to this client map to StateUnknown.
func ParseNodeState(s string) NodeState {
	norm := strings.ToLower(s)
	norm = strings.NewReplacer("-", "", "_", "").Replace(norm)

	if _, ok := knownStates[NodeState(norm)]; ok {
		return NodeState(norm)
	}

	return StateUnknown
}

// ParseAllocationState converts a wire value into an AllocationState. The
// second return value is false for values not known to this client.
func ParseAllocationState(s string) (AllocationState, bool) {
	switch st := AllocationState(strings.ToLower(s)); st {
	case AllocationResizing, AllocationSteady, AllocationStopping:
		return st, true
	default:
		return st, false
	}
}
