package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/onemilpixels/pixels-contract/rpc/pixels"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeRPCError responds to a failed contract invocation. Contract faults are
// client errors, everything else means the node is unavailable.
func writeRPCError(w http.ResponseWriter, err error) {
	fault := pixels.ParseFault(err.Error())
	switch {
	case errors.Is(fault, pixels.ErrOutOfBounds):
		writeError(w, http.StatusNotFound, fault.Error())
	case fault != nil:
		writeError(w, http.StatusBadRequest, fault.Error())
	default:
		writeError(w, http.StatusBadGateway, "contract invocation failed")
	}
}
