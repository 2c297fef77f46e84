package clinical

import (
	"crypto/sha256"
	"encoding/json"
	"io"
	"net/http"

	"github.com/posturelab/posturecheck/internal/assessment"
	"github.com/posturelab/posturecheck/internal/telemetry/metrics"
	"github.com/posturelab/posturecheck/internal/telemetry/tracing"
	"github.com/posturelab/posturecheck/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=clinical

type planGenerator interface {
	GeneratePlan(result *assessment.Result, profile PatientProfile) *TreatmentPlan
}

// planRequest is the wire format for a treatment plan request.
type planRequest struct {
	Assessment assessment.Result `json:"assessment"`
	Profile    PatientProfile    `json:"profile"`
}

const planCacheSize = 10 * 1024 * 1024 // 10 MB

type Handler struct {
	planner      planGenerator
	catalog      *Catalog
	plansCache   *freecache.Cache
	cacheTTLSecs int
	metrics      *metrics.Manager
}

func NewHandler(
	planner planGenerator,
	catalog *Catalog,
	cacheTTLSecs int,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		planner:      planner,
		catalog:      catalog,
		plansCache:   freecache.NewCache(planCacheSize),
		cacheTTLSecs: cacheTTLSecs,
		metrics:      metricsManager,
	}
}

// HandleGeneratePlan builds a personalized treatment plan from the
// posted assessment result and patient profile. Identical requests
// are served from cache.
func (handler *Handler) HandleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "clinicalHandler.generatePlan")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Errorf("generate plan: read request body: %s", err)
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	cacheKey := sha256.Sum256(body)
	if cached, cacheErr := handler.plansCache.Get(cacheKey[:]); cacheErr == nil {
		log.Tracef("generate plan: serving from cache")
		handler.metrics.CounterTreatmentPlansCacheHit.Inc()
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
		return
	}

	var req planRequest
	if err = json.Unmarshal(body, &req); err != nil {
		log.Errorf("generate plan: decode request: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	plan := handler.planner.GeneratePlan(&req.Assessment, req.Profile)
	handler.metrics.CounterTreatmentPlans.Inc()

	planBytes, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("generate plan: marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := handler.plansCache.Set(cacheKey[:], planBytes, handler.cacheTTLSecs); err != nil {
		log.Errorf("generate plan: cache set: %s", err)
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planBytes, http.StatusOK)
}

// HandleRegions lists the exercise catalog regions.
func (handler *Handler) HandleRegions(w http.ResponseWriter, r *http.Request) {
	b, err := json.Marshal(handler.catalog.Regions())
	if err != nil {
		log.Errorf("list regions: marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, b, http.StatusOK)
}

// HandleRegionExercises lists the exercises of one catalog region,
// optionally filtered by the difficulty query parameter.
func (handler *Handler) HandleRegionExercises(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	region := vars["region"]

	var (
		exercises []Exercise
		ok        bool
	)
	if difficulty := r.URL.Query().Get("difficulty"); difficulty != "" {
		switch Difficulty(difficulty) {
		case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		default:
			http.Error(w, "invalid difficulty", http.StatusBadRequest)
			return
		}
		exercises, ok = handler.catalog.ForRegionWithDifficulty(region, Difficulty(difficulty))
	} else {
		exercises, ok = handler.catalog.ForRegion(region)
	}

	if !ok {
		http.Error(w, "region not found", http.StatusNotFound)
		return
	}

	if exercises == nil {
		exercises = []Exercise{}
	}

	b, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("region exercises: marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, b, http.StatusOK)
}
