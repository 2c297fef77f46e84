package assessment

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/posturelab/posturecheck/internal/pose"
	"github.com/posturelab/posturecheck/internal/telemetry/metrics"
	"github.com/posturelab/posturecheck/internal/telemetry/tracing"
	"github.com/posturelab/posturecheck/pkg"

	log "github.com/sirupsen/logrus"
)

// assessRequest is the wire format for a full assessment request.
// Landmarks are given as an ordered list following the 33 point
// body topology, sparse sets are allowed.
type assessRequest struct {
	Landmarks []landmarkDTO `json:"landmarks"`
}

type quickCheckRequest struct {
	Landmarks []landmarkDTO `json:"landmarks"`
	Profile   Profile       `json:"profile"`
	Detail    bool          `json:"detail"`
}

type landmarkDTO struct {
	Index      *int    `json:"index,omitempty"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

type Handler struct {
	analyzer *Analyzer
	metrics  *metrics.Manager
}

func NewHandler(analyzer *Analyzer, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		analyzer: analyzer,
		metrics:  metricsManager,
	}
}

// HandleAssess runs the full posture assessment pipeline over the
// posted landmarks.
func (handler *Handler) HandleAssess(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "assessmentHandler.assess")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var req assessRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("assess: decode request: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	start := time.Now()
	result := handler.analyzer.Analyze(toLandmarks(req.Landmarks))
	handler.metrics.HistAssessmentDuration.Observe(float64(time.Since(start).Milliseconds()))
	handler.metrics.CounterAssessments.Inc()

	if result.Status == StatusBodyNotDetected {
		handler.metrics.CounterBodyNotDetected.Inc()
		log.Debugf("assess: body not detected [%d landmarks]", len(req.Landmarks))
	} else {
		log.Tracef("assess: score %.1f, quality %s", result.PostureScore, result.MovementQuality)
	}

	writeJSON(w, result)
}

// HandleQuickCheck runs the lightweight posture screening.
func (handler *Handler) HandleQuickCheck(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "assessmentHandler.quickCheck")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var req quickCheckRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("quick check: decode request: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result := QuickCheck(toLandmarks(req.Landmarks), req.Profile, req.Detail)
	handler.metrics.CounterQuickChecks.Inc()
	if result.Status == StatusBodyNotDetected {
		handler.metrics.CounterBodyNotDetected.Inc()
	}

	writeJSON(w, result)
}

// toLandmarks converts the wire landmarks to the internal landmark
// set. A landmark without an explicit index takes its list position.
func toLandmarks(dtos []landmarkDTO) pose.Landmarks {
	lm := pose.Landmarks{}
	for i, dto := range dtos {
		idx := i
		if dto.Index != nil {
			idx = *dto.Index
		}
		lm[idx] = pose.Landmark{
			X:          dto.X,
			Y:          dto.Y,
			Z:          dto.Z,
			Visibility: dto.Visibility,
		}
	}
	return lm
}

func writeJSON(w http.ResponseWriter, payload any) {
	b, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, fmt.Sprintf("marshal response: %s", err), http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, b, http.StatusOK)
}
