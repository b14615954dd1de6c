package rest

// RunResponse is the JSON view of a registered run.
type RunResponse struct {
	RunID      int64  `json:"run_id"`
	AppID      string `json:"app_id"`
	AppVersion string `json:"app_version"`
}

// NodeResponse is the JSON view of a registered node.
type NodeResponse struct {
	NodeID int64 `json:"node_id"`
}

// ListRunsResponse wraps the run collection.
type ListRunsResponse struct {
	Runs  []RunResponse `json:"runs"`
	Total int           `json:"total"`
}

// ListNodesResponse wraps the node collection for one run.
type ListNodesResponse struct {
	RunID int64          `json:"run_id"`
	Nodes []NodeResponse `json:"nodes"`
	Total int            `json:"total"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
