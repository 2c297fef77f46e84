package assessment

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/posturelab/posturecheck/internal/pose"
	"github.com/posturelab/posturecheck/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testRouter() *mux.Router {
	handler := NewHandler(NewAnalyzer(), metrics.NewTestManager())
	r := mux.NewRouter()
	r.HandleFunc("/assess", handler.HandleAssess).Methods("POST")
	r.HandleFunc("/assess/quick", handler.HandleQuickCheck).Methods("POST")
	return r
}

func assessBody(t *testing.T, lm pose.Landmarks) *bytes.Buffer {
	t.Helper()

	type landmarkJSON struct {
		Index      int     `json:"index"`
		X          float64 `json:"x"`
		Y          float64 `json:"y"`
		Z          float64 `json:"z"`
		Visibility float64 `json:"visibility"`
	}

	var landmarks []landmarkJSON
	for idx, l := range lm {
		landmarks = append(landmarks, landmarkJSON{
			Index: idx, X: l.X, Y: l.Y, Z: l.Z, Visibility: l.Visibility,
		})
	}

	b, err := json.Marshal(map[string]any{"landmarks": landmarks})
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestHandleAssess(t *testing.T) {
	r := testRouter()

	req, err := http.NewRequest("POST", "/assess", assessBody(t, fullBodyLandmarks()))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var result Result
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, StatusOK, result.Status)
	assert.Equal(t, "Excellent", result.MovementQuality)
	assert.InDelta(t, 100, result.PostureScore, 0.0001)
	assert.Contains(t, result.PosturalMetrics, "cervical_forward_head_ratio")
	assert.Contains(t, result.PosturalMetrics, "shoulder_shoulder_protraction")
	assert.Contains(t, result.PosturalMetrics, "spinal_spinal_alignment_score")
	assert.Contains(t, result.PosturalMetrics, "pelvic_hip_asymmetry")
	assert.Contains(t, result.PosturalMetrics, "lower_extremity_knee_angle_asymmetry")
}

func TestHandleAssess_bodyNotDetected(t *testing.T) {
	r := testRouter()

	req, err := http.NewRequest("POST", "/assess", bytes.NewBufferString(`{"landmarks":[]}`))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var result Result
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, StatusBodyNotDetected, result.Status)
	assert.Empty(t, result.PosturalMetrics)
}

func TestHandleAssess_invalidJSON(t *testing.T) {
	r := testRouter()

	req, err := http.NewRequest("POST", "/assess", bytes.NewBufferString(`{not json`))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleQuickCheck(t *testing.T) {
	r := testRouter()

	lm := fullBodyLandmarks()

	type landmarkJSON struct {
		Index      int     `json:"index"`
		X          float64 `json:"x"`
		Y          float64 `json:"y"`
		Z          float64 `json:"z"`
		Visibility float64 `json:"visibility"`
	}
	var landmarks []landmarkJSON
	for idx, l := range lm {
		landmarks = append(landmarks, landmarkJSON{
			Index: idx, X: l.X, Y: l.Y, Z: l.Z, Visibility: l.Visibility,
		})
	}
	b, err := json.Marshal(map[string]any{
		"landmarks": landmarks,
		"profile":   Profile{Age: 30, HeightCm: 180, WeightKg: 75},
		"detail":    true,
	})
	require.NoError(t, err)

	req, err := http.NewRequest("POST", "/assess/quick", bytes.NewBuffer(b))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var result QuickCheckResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, StatusOK, result.Status)
	assert.Contains(t, result.Statements, "Shoulders level")
	assert.NotEmpty(t, result.Recommendations)
	assert.Greater(t, result.BMI, 20.0)
}
