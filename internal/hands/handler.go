package hands

import (
	"encoding/json"
	"net/http"

	"github.com/posturelab/posturecheck/internal/pose"
	"github.com/posturelab/posturecheck/internal/telemetry/metrics"
	"github.com/posturelab/posturecheck/internal/telemetry/tracing"
	"github.com/posturelab/posturecheck/pkg"

	log "github.com/sirupsen/logrus"
)

// analyzeRequest is the wire format for a hand analysis request,
// one entry per detected hand, each an ordered list following the
// 21 point hand topology.
type analyzeRequest struct {
	Hands [][]pose.Landmark `json:"hands"`
}

type analyzeResponse struct {
	Hands []*Analysis `json:"hands"`
}

type Handler struct {
	metrics *metrics.Manager
}

func NewHandler(metricsManager *metrics.Manager) *Handler {
	return &Handler{metrics: metricsManager}
}

// HandleAnalyze runs the gesture analysis over each posted hand.
func (handler *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handsHandler.analyze")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var req analyzeRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("analyze hands: decode request: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp := analyzeResponse{Hands: []*Analysis{}}
	for _, hand := range req.Hands {
		resp.Hands = append(resp.Hands, Analyze(hand))
	}
	handler.metrics.CounterHandAnalyses.Inc()

	b, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("analyze hands: marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, b, http.StatusOK)
}
