package hands

import (
	"testing"

	"github.com/posturelab/posturecheck/internal/pose"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// handPose builds a 21 point hand with the given fingers extended.
func handPose(thumb, index, middle, ring, pinky bool) []pose.Landmark {
	landmarks := make([]pose.Landmark, 21)
	for i := range landmarks {
		landmarks[i] = pose.Landmark{X: 0.5, Y: 0.5}
	}

	// thumb reads on the x axis, tip past the IP joint means extended
	landmarks[pose.ThumbIP] = pose.Landmark{X: 0.5, Y: 0.5}
	if thumb {
		landmarks[pose.ThumbTip] = pose.Landmark{X: 0.6, Y: 0.5}
	} else {
		landmarks[pose.ThumbTip] = pose.Landmark{X: 0.4, Y: 0.5}
	}

	set := func(tip, pip int, extended bool) {
		landmarks[pip] = pose.Landmark{X: 0.5, Y: 0.5}
		if extended {
			landmarks[tip] = pose.Landmark{X: 0.5, Y: 0.3}
		} else {
			landmarks[tip] = pose.Landmark{X: 0.5, Y: 0.7}
		}
	}
	set(pose.IndexFingerTip, pose.IndexFingerPIP, index)
	set(pose.MiddleFingerTip, pose.MiddleFingerPIP, middle)
	set(pose.RingFingerTip, pose.RingFingerPIP, ring)
	set(pose.PinkyTip, pose.PinkyPIP, pinky)

	return landmarks
}

func TestAnalyze_gestures(t *testing.T) {
	tests := []struct {
		name     string
		hand     []pose.Landmark
		extended int
		gesture  string
	}{
		{"fist", handPose(false, false, false, false, false), 0, "fist"},
		{"one finger", handPose(false, true, false, false, false), 1, "one finger"},
		{"two fingers", handPose(false, true, true, false, false), 2, "two fingers"},
		{"three fingers", handPose(false, true, true, true, false), 3, "3 fingers extended"},
		{"four fingers", handPose(true, true, true, false, true), 4, "4 fingers extended"},
		{"open hand", handPose(true, true, true, true, true), 5, "open hand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := Analyze(tt.hand)
			require.Equal(t, StatusOK, analysis.Status)
			assert.Equal(t, tt.extended, analysis.ExtendedFingers)
			assert.Equal(t, tt.gesture, analysis.Gesture)
			assert.Len(t, analysis.Fingers, 5)
		})
	}
}

func TestAnalyze_fingerStates(t *testing.T) {
	analysis := Analyze(handPose(true, false, true, false, false))
	require.Equal(t, StatusOK, analysis.Status)

	states := map[string]bool{}
	for _, f := range analysis.Fingers {
		states[f.Name] = f.Extended
	}
	assert.True(t, states["thumb"])
	assert.False(t, states["index"])
	assert.True(t, states["middle"])
	assert.False(t, states["ring"])
	assert.False(t, states["pinky"])
}

func TestAnalyze_incompleteHand(t *testing.T) {
	analysis := Analyze(nil)
	assert.Equal(t, StatusHandNotDetected, analysis.Status)

	analysis = Analyze(make([]pose.Landmark, 10))
	assert.Equal(t, StatusHandNotDetected, analysis.Status)
}
