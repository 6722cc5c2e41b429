package pool

// AllocationState describes whether the pool is still provisioning nodes.
type AllocationState string

const (
	AllocationResizing AllocationState = "resizing"
	AllocationSteady   AllocationState = "steady"
	AllocationStopping AllocationState = "stopping"
)

// Pool is a read-only snapshot of the batch pool.
type Pool struct {
	ID                      string
	AllocationState         AllocationState
	CurrentDedicatedNodes   int
	CurrentLowPriorityNodes int
	TargetDedicatedNodes    int
	TargetLowPriorityNodes  int
}

// IsSteady returns true when the pool has finished allocating nodes.
func (p *Pool) IsSteady() bool {
	return p.AllocationState == AllocationSteady
}

// CurrentNodes is the number of nodes the service reports as allocated.
func (p *Pool) CurrentNodes() int {
	return p.CurrentDedicatedNodes + p.CurrentLowPriorityNodes
}

// Node is a read-only snapshot of a single compute node. The IP address is
// assigned by the service and may be empty until provisioning completes.
type Node struct {
	ID        string
	IPAddress string
	State     NodeState
}

// IsReachable returns true if the node can accept connections from other
// nodes of the pool.
func (n *Node) IsReachable() bool {
	return n.State == StateIdle || n.State == StateRunning
}

// NodeIDs returns identifiers of the given nodes in the same order.
func NodeIDs(nodes []Node) []string {
	ids := make([]string, len(nodes))
	for i := range nodes {
		ids[i] = nodes[i].ID
	}

	return ids
}
