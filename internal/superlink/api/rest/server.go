// Package rest exposes a read-only status API over the link state.
package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fedlink/fedlink/internal/shared/logging"
	"github.com/fedlink/fedlink/internal/shared/message"
	"github.com/fedlink/fedlink/internal/superlink/state"
)

type API struct {
	state  state.LinkState
	logger logging.Logger
}

func NewAPI(linkState state.LinkState, logger logging.Logger) *API {
	return &API{
		state:  linkState,
		logger: logger,
	}
}

func (a *API) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/runs", a.listRuns)
	mux.HandleFunc("GET /api/runs/{id}", a.getRun)
	mux.HandleFunc("GET /api/runs/{id}/nodes", a.listNodes)
}

func (a *API) listRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := a.state.ListRuns()
	if err != nil {
		a.respondError(w, http.StatusInternalServerError, "failed to list runs", err.Error())
		return
	}

	resp := ListRunsResponse{
		Runs:  make([]RunResponse, 0, len(runs)),
		Total: len(runs),
	}
	for _, run := range runs {
		resp.Runs = append(resp.Runs, toRunResponse(run))
	}
	a.respondJSON(w, http.StatusOK, resp)
}

func (a *API) getRun(w http.ResponseWriter, r *http.Request) {
	runID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		a.respondError(w, http.StatusBadRequest, "invalid run id", err.Error())
		return
	}

	run, err := a.state.GetRun(runID)
	if err != nil {
		if errors.Is(err, state.ErrRunNotFound) {
			a.respondError(w, http.StatusNotFound, "run not found", "")
			return
		}
		a.respondError(w, http.StatusInternalServerError, "failed to fetch run", err.Error())
		return
	}
	a.respondJSON(w, http.StatusOK, toRunResponse(run))
}

func (a *API) listNodes(w http.ResponseWriter, r *http.Request) {
	runID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		a.respondError(w, http.StatusBadRequest, "invalid run id", err.Error())
		return
	}

	nodeIDs, err := a.state.GetNodeIDs(runID)
	if err != nil {
		if errors.Is(err, state.ErrRunNotFound) {
			a.respondError(w, http.StatusNotFound, "run not found", "")
			return
		}
		a.respondError(w, http.StatusInternalServerError, "failed to list nodes", err.Error())
		return
	}

	resp := ListNodesResponse{
		RunID: runID,
		Nodes: make([]NodeResponse, 0, len(nodeIDs)),
		Total: len(nodeIDs),
	}
	for _, id := range nodeIDs {
		resp.Nodes = append(resp.Nodes, NodeResponse{NodeID: id})
	}
	a.respondJSON(w, http.StatusOK, resp)
}

func toRunResponse(run message.Run) RunResponse {
	return RunResponse{
		RunID:      run.RunID,
		AppID:      run.AppID,
		AppVersion: run.AppVersion,
	}
}

func (a *API) respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Error("Failed to encode response", "error", err)
	}
}

func (a *API) respondError(w http.ResponseWriter, code int, msg, details string) {
	a.respondJSON(w, code, ErrorResponse{Error: msg, Details: details})
}
