package httpapi

import (
	"encoding/json"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dhalbert/cratestow/internal/config"
	"github.com/dhalbert/cratestow/internal/engine"
	"github.com/dhalbert/cratestow/internal/model"
)

// packRequest is the wire shape of POST /api/pack (spec.md §6.3 / §9.3).
type packRequest struct {
	ContainerType     string            `json:"container_type"`
	Items             []model.CargoSpec `json:"items"`
	SupportRatio      *float64          `json:"support_ratio,omitempty"`
	EnableAggregation *bool             `json:"enable_aggregation,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type packHandler struct {
	cfg config.AppConfig
	log *logrus.Logger
}

// ServeHTTP decodes a packRequest, runs engine.Pack, and writes the Result
// as JSON. A *engine.ValidationError becomes a 400 logged at warn; a
// recovered engine.invariantViolation becomes a 500 logged at error without
// the request payload (spec.md §9.2, §9.3).
func (h *packHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	entry := requestLogger(r.Context(), h.log)

	defer func() {
		if rec := recover(); rec != nil {
			entry.WithField("panic", rec).WithField("stack", string(debug.Stack())).Error("recovered invariant violation")
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		}
	}()

	var req packRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		entry.WithError(err).Warn("malformed request body")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed JSON body"})
		return
	}
	entry.WithField("payload", req).Debug("decoded request")

	containerType := req.ContainerType
	if containerType == "" {
		containerType = h.cfg.DefaultContainerPreset
	}
	container, ok := model.LookupContainer(containerType)
	if !ok {
		entry.WithField("container_type", containerType).Warn("unknown container type")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown container_type: " + containerType})
		return
	}

	opts := engine.Options{
		MinSupportPct: req.SupportRatio,
	}
	if opts.MinSupportPct == nil {
		def := h.cfg.DefaultMinSupportPct
		opts.MinSupportPct = &def
	}
	if req.EnableAggregation != nil && !*req.EnableAggregation {
		opts.DisableAggregation = true
	}

	start := time.Now()
	result, err := engine.Pack(req.Items, container, opts, 0)
	result.Stats.CalcTimeSeconds = time.Since(start).Seconds()
	if err != nil {
		entry.WithError(err).Warn("pack request rejected")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
