package batchapi

import "github.com/maxpoletaev/sparkpool/pool"

type poolResource struct {
	ID                      string `json:"id"`
	AllocationState         string `json:"allocationState"`
	CurrentDedicatedNodes   int    `json:"currentDedicatedNodes"`
	CurrentLowPriorityNodes int    `json:"currentLowPriorityNodes"`
	TargetDedicatedNodes    int    `json:"targetDedicatedNodes"`
	TargetLowPriorityNodes  int    `json:"targetLowPriorityNodes"`
}

type nodeResource struct {
	ID        string `json:"id"`
	IPAddress string `json:"ipAddress"`
	State     string `json:"state"`
}

type nodeListPage struct {
	Value    []nodeResource `json:"value"`
	NextLink string         `json:"odata.nextLink"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message struct {
		Value string `json:"value"`
	} `json:"message"`
}

func fromPoolResource(r *poolResource) pool.Pool {
	// Unknown allocation states are kept as is, they are never "steady".
	state, _ := pool.ParseAllocationState(r.AllocationState)

	return pool.Pool{
		ID:                      r.ID,
		AllocationState:         state,
		CurrentDedicatedNodes:   r.CurrentDedicatedNodes,
		CurrentLowPriorityNodes: r.CurrentLowPriorityNodes,
		TargetDedicatedNodes:    r.TargetDedicatedNodes,
		TargetLowPriorityNodes:  r.TargetLowPriorityNodes,
	}
}

func fromNodeResource(r *nodeResource) pool.Node {
	return pool.Node{
		ID:        r.ID,
		IPAddress: r.IPAddress,
		State:     pool.ParseNodeState(r.State),
	}
}
