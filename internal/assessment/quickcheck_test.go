package assessment

import (
	"testing"

	"github.com/posturelab/posturecheck/internal/pose"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickCheck_noBody(t *testing.T) {
	result := QuickCheck(pose.Landmarks{}, Profile{}, false)
	require.NotNil(t, result)
	assert.Equal(t, StatusBodyNotDetected, result.Status)
	assert.Contains(t, result.Statements, "Body not detected")
}

func TestQuickCheck_neutralPose(t *testing.T) {
	result := QuickCheck(fullBodyLandmarks(), Profile{}, false)
	require.Equal(t, StatusOK, result.Status)

	assert.Contains(t, result.VisibleParts, "head")
	assert.Contains(t, result.VisibleParts, "shoulders")
	assert.Contains(t, result.VisibleParts, "hips")
	assert.Contains(t, result.VisibleParts, "knees")

	assert.Contains(t, result.Statements, "Shoulders level")
	assert.Contains(t, result.Statements, "Head centered")
	assert.Contains(t, result.Statements, "Upright head position")
	assert.Contains(t, result.Statements, "Torso upright")
	assert.Contains(t, result.Statements, "Hips level")
	assert.Empty(t, result.Issues)
	assert.InDelta(t, 0, result.ShoulderAsymmetry, 0.0001)
}

func TestQuickCheck_shoulderImbalance(t *testing.T) {
	lm := fullBodyLandmarks()
	shoulder := lm[pose.RightShoulder]
	shoulder.Y += 0.1
	lm[pose.RightShoulder] = shoulder

	result := QuickCheck(lm, Profile{}, false)
	require.Equal(t, StatusOK, result.Status)

	assert.Contains(t, result.Statements, "Left shoulder higher")
	assert.Contains(t, result.Issues, "shoulder_imbalance")
	assert.InDelta(t, 10, result.ShoulderAsymmetry, 0.0001)
}

func TestQuickCheck_hipImbalance(t *testing.T) {
	lm := fullBodyLandmarks()
	hip := lm[pose.LeftHip]
	hip.Y += 0.05
	lm[pose.LeftHip] = hip

	result := QuickCheck(lm, Profile{}, false)
	assert.Contains(t, result.Statements, "Right hip higher")
	assert.Contains(t, result.Issues, "hip_imbalance")
}

func TestQuickCheck_detailAddsJointAngles(t *testing.T) {
	basic := QuickCheck(fullBodyLandmarks(), Profile{}, false)
	detailed := QuickCheck(fullBodyLandmarks(), Profile{}, true)

	assert.Greater(t, len(detailed.Statements), len(basic.Statements))
	assert.Contains(t, detailed.Statements, "left knee straight")
	assert.Contains(t, detailed.Statements, "right knee straight")
}

func TestQuickCheck_highBMI(t *testing.T) {
	result := QuickCheck(fullBodyLandmarks(), Profile{HeightCm: 170, WeightKg: 90}, false)
	require.Equal(t, StatusOK, result.Status)

	assert.InDelta(t, 31.14, result.BMI, 0.01)
	assert.Contains(t, result.Issues, "high_bmi")
	assert.Contains(t, result.Statements, "High BMI puts extra load on posture")

	result = QuickCheck(fullBodyLandmarks(), Profile{HeightCm: 180, WeightKg: 70}, false)
	assert.NotContains(t, result.Issues, "high_bmi")
}

func TestQuickCheck_ageRecommendations(t *testing.T) {
	lm := fullBodyLandmarks()
	// drop the nose towards shoulder level, reads as forward head
	nose := lm[pose.Nose]
	nose.Y = 0.28
	lm[pose.Nose] = nose

	result := QuickCheck(lm, Profile{Age: 23}, false)
	require.Contains(t, result.Issues, "forward_head")
	assert.Contains(t, result.Recommendations, "Young age: form posture habits now")
	assert.Contains(t, result.Recommendations, "Limit phone and computer use")

	result = QuickCheck(fullBodyLandmarks(), Profile{Age: 40}, false)
	assert.Contains(t, result.Recommendations, "Middle age: regular exercise is important")

	result = QuickCheck(fullBodyLandmarks(), Profile{Age: 70}, false)
	assert.Contains(t, result.Recommendations, "Mature age: focus on bone health")
}
