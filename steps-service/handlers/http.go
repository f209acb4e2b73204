package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/bookstore/fulfillment-saga/shared/saga"
	"github.com/go-chi/chi/v5"
)

// stepFailure mirrors the error name and cause reported to the orchestrator
type stepFailure struct {
	Error string `json:"error"`
	Cause string `json:"cause"`
}

// StepHTTPHandlers invokes registered steps over HTTP, for local runs without
// an orchestrator
type StepHTTPHandlers struct {
	registry *saga.Registry
}

// NewStepHTTPHandlers creates new step HTTP handlers
func NewStepHTTPHandlers(registry *saga.Registry) *StepHTTPHandlers {
	return &StepHTTPHandlers{registry: registry}
}

// ListSteps returns the registered step names
func (h *StepHTTPHandlers) ListSteps(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.Names())
}

// InvokeStep runs one step with the request body as its input
func (h *StepHTTPHandlers) InvokeStep(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if _, ok := h.registry.Lookup(name); !ok {
		http.Error(w, "Unknown step", http.StatusNotFound)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	output, err := h.registry.Invoke(r.Context(), name, body)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if _, typed := saga.KindOf(err); !typed {
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, &stepFailure{Error: saga.NameOf(err), Cause: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// RegisterRoutes registers step routes
func (h *StepHTTPHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/steps", func(r chi.Router) {
		r.Get("/", h.ListSteps)
		r.Post("/{name}", h.InvokeStep)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
