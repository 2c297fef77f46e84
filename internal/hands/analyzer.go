package hands

import (
	"fmt"

	"github.com/posturelab/posturecheck/internal/pose"
)

// FingerState says whether a single finger is extended.
type FingerState struct {
	Name     string `json:"name"`
	Extended bool   `json:"extended"`
}

// Analysis is the outcome of a single hand gesture analysis.
type Analysis struct {
	Status          string        `json:"status"`
	ExtendedFingers int           `json:"extended_fingers"`
	Fingers         []FingerState `json:"fingers,omitempty"`
	Gesture         string        `json:"gesture,omitempty"`
}

const (
	StatusOK              = "ok"
	StatusHandNotDetected = "hand_not_detected"
)

// fingerJoints pairs each finger tip with the joint it is compared
// against. The thumb is handled separately on the x axis.
var fingerJoints = []struct {
	name  string
	tip   int
	joint int
}{
	{"index", pose.IndexFingerTip, pose.IndexFingerPIP},
	{"middle", pose.MiddleFingerTip, pose.MiddleFingerPIP},
	{"ring", pose.RingFingerTip, pose.RingFingerPIP},
	{"pinky", pose.PinkyTip, pose.PinkyPIP},
}

// Analyze counts extended fingers over the 21 point hand landmark
// set and recognizes a simple gesture. The thumb reads as extended
// when its tip passes the IP joint on the x axis, the other fingers
// when the tip sits above the PIP joint.
func Analyze(landmarks []pose.Landmark) *Analysis {
	if len(landmarks) < pose.PinkyTip+1 {
		return &Analysis{Status: StatusHandNotDetected}
	}

	analysis := &Analysis{Status: StatusOK}

	thumbExtended := landmarks[pose.ThumbTip].X > landmarks[pose.ThumbIP].X
	analysis.Fingers = append(analysis.Fingers, FingerState{Name: "thumb", Extended: thumbExtended})
	if thumbExtended {
		analysis.ExtendedFingers++
	}

	for _, f := range fingerJoints {
		extended := landmarks[f.tip].Y < landmarks[f.joint].Y
		analysis.Fingers = append(analysis.Fingers, FingerState{Name: f.name, Extended: extended})
		if extended {
			analysis.ExtendedFingers++
		}
	}

	switch analysis.ExtendedFingers {
	case 0:
		analysis.Gesture = "fist"
	case 1:
		analysis.Gesture = "one finger"
	case 2:
		analysis.Gesture = "two fingers"
	case 5:
		analysis.Gesture = "open hand"
	default:
		analysis.Gesture = fmt.Sprintf("%d fingers extended", analysis.ExtendedFingers)
	}

	return analysis
}
