package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/eugenenazirov/slab-designer/internal/instance"
	"github.com/eugenenazirov/slab-designer/internal/metrics"
	"github.com/eugenenazirov/slab-designer/internal/slab"
	"github.com/eugenenazirov/slab-designer/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// maxInstanceBodyBytes bounds PUT /api/instance payloads.
const maxInstanceBodyBytes = 8 << 20

// Handler wires the instance store into HTTP handlers.
type Handler struct {
	storage storage.Storage

	clock func() time.Time

	mu                sync.RWMutex
	instanceUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		storage: store,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.instanceUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetInstance(w http.ResponseWriter, r *http.Request) {
	_ = r
	inst, _, err := h.storage.Get()
	if err != nil {
		if errors.Is(err, storage.ErrNoInstance) {
			writeError(w, http.StatusNotFound, "No instance loaded", "upload one via PUT /api/instance")
			return
		}
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.instanceSummary(inst, ""))
}

func (h *Handler) handlePutInstance(w http.ResponseWriter, r *http.Request) {
	inst, err := instance.Parse(http.MaxBytesReader(w, r.Body, maxInstanceBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid instance", err.Error())
		return
	}

	if err := h.storage.Set(inst); err != nil {
		if errors.Is(err, slab.ErrUnsortedSlabSizes) || errors.Is(err, slab.ErrInvalidSlabSizes) {
			writeError(w, http.StatusBadRequest, "Invalid instance", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markInstanceUpdated()
	metrics.WasteTableEntries.Set(float64(inst.SumQuantities() + 1))

	writeJSON(w, http.StatusOK, h.instanceSummary(inst, "Instance loaded successfully"))
}

func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}
	if req.Slabs == nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "slabs must be provided")
		return
	}

	inst, table, err := h.storage.Get()
	if err != nil {
		if errors.Is(err, storage.ErrNoInstance) {
			writeError(w, http.StatusConflict, "No instance loaded", "upload one via PUT /api/instance before evaluating")
			return
		}
		writeInternalError(w, err)
		return
	}

	candidate := make(slab.Candidate, len(req.Slabs))
	for i, s := range req.Slabs {
		candidate[i] = slab.Slab(s)
	}

	start := time.Now()
	score, evalErr := slab.NewEvaluator(inst, table).Evaluate(candidate)
	elapsed := time.Since(start)

	if evalErr != nil {
		if errors.Is(evalErr, slab.ErrInvalidCandidate) {
			writeError(w, http.StatusBadRequest, "Invalid candidate", evalErr.Error())
			return
		}
		writeInternalError(w, evalErr)
		return
	}

	metrics.Evaluations.WithLabelValues(feasibleLabel(score.Feasible)).Inc()
	metrics.EvaluationDuration.Observe(elapsed.Seconds())

	resp := evaluateResponse{
		Cost:             score.Cost,
		Waste:            score.Waste,
		Penalty:          score.Penalty,
		Feasible:         score.Feasible,
		EvaluationTimeMs: elapsed.Milliseconds(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleRandomSolution(w http.ResponseWriter, r *http.Request) {
	// An empty body is fine: the seed is optional.
	var req randomSolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	inst, _, err := h.storage.Get()
	if err != nil {
		if errors.Is(err, storage.ErrNoInstance) {
			writeError(w, http.StatusConflict, "No instance loaded", "upload one via PUT /api/instance before sampling")
			return
		}
		writeInternalError(w, err)
		return
	}

	seed := h.clock().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	candidate := slab.RandomCandidate(inst, rand.New(rand.NewSource(seed)))
	slabs := make([][]int, len(candidate))
	for i, s := range candidate {
		if s == nil {
			s = slab.Slab{}
		}
		slabs[i] = s
	}

	resp := randomSolutionResponse{
		Seed:  seed,
		Slabs: slabs,
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) instanceSummary(inst *slab.Instance, message string) instanceResponse {
	return instanceResponse{
		SlabSizes:     inst.SlabSizes,
		NbColors:      inst.NbColors,
		NbOrders:      inst.NbOrders(),
		MaxSize:       inst.MaxSize(),
		TotalQuantity: inst.SumQuantities(),
		UpdatedAt:     h.currentInstanceUpdatedAt(),
		Message:       message,
	}
}

func (h *Handler) currentInstanceUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.instanceUpdatedAt
}

func (h *Handler) markInstanceUpdated() {
	h.mu.Lock()
	h.instanceUpdatedAt = h.clock()
	h.mu.Unlock()
}

func feasibleLabel(feasible bool) string {
	if feasible {
		return "true"
	}
	return "false"
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type evaluateRequest struct {
	Slabs [][]int `json:"slabs"`
}

type evaluateResponse struct {
	Cost             float64 `json:"cost"`
	Waste            float64 `json:"waste"`
	Penalty          float64 `json:"penalty"`
	Feasible         bool    `json:"feasible"`
	EvaluationTimeMs int64   `json:"evaluationTimeMs"`
}

type randomSolutionRequest struct {
	Seed *int64 `json:"seed"`
}

type randomSolutionResponse struct {
	Seed  int64   `json:"seed"`
	Slabs [][]int `json:"slabs"`
}

type instanceResponse struct {
	SlabSizes     []int     `json:"slabSizes"`
	NbColors      int       `json:"nbColors"`
	NbOrders      int       `json:"nbOrders"`
	MaxSize       int       `json:"maxSize"`
	TotalQuantity int       `json:"totalQuantity"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Message       string    `json:"message,omitempty"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
