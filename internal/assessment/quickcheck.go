package assessment

import (
	"fmt"
	"math"

	"github.com/posturelab/posturecheck/internal/pose"
)

// Quick check thresholds, tuned for normalized image coordinates.
const (
	shoulderLevelThreshold = 0.05
	headOffsetThreshold    = 0.1
	hipLevelThreshold      = 0.03
	torsoTiltThreshold     = 0.05

	kneeStraightAngle  = 160.0
	elbowVeryBentAngle = 30.0
	elbowStraightAngle = 160.0

	bmiOverweight = 25.0
)

// Profile carries optional patient details used to enrich a quick check.
type Profile struct {
	Age      int     `json:"age,omitempty"`
	HeightCm float64 `json:"height_cm,omitempty"`
	WeightKg float64 `json:"weight_kg,omitempty"`
}

// QuickCheckResult is a lightweight posture screening outcome, a
// cheaper alternative to the full assessment pipeline.
type QuickCheckResult struct {
	Status            string   `json:"status"`
	VisibleParts      []string `json:"visible_parts,omitempty"`
	Statements        []string `json:"statements,omitempty"`
	Issues            []string `json:"issues,omitempty"`
	ShoulderAsymmetry float64  `json:"shoulder_asymmetry,omitempty"`
	BMI               float64  `json:"bmi,omitempty"`
	Recommendations   []string `json:"recommendations,omitempty"`
}

// QuickCheck runs a fast posture screening over the body landmarks.
// With detail set, joint angle statements for elbows and knees are
// added on top of the basic alignment checks.
func QuickCheck(lm pose.Landmarks, profile Profile, detail bool) *QuickCheckResult {
	if !bodyDetected(lm) {
		return &QuickCheckResult{
			Status: StatusBodyNotDetected,
			Statements: []string{
				"Body not detected",
				"Stand so the full body is visible to the camera",
			},
		}
	}

	result := &QuickCheckResult{Status: StatusOK}

	result.VisibleParts = visibleParts(lm)
	checkShoulders(lm, result)
	checkHead(lm, result)
	checkTorso(lm, result)
	checkHips(lm, result)
	if detail {
		checkJointAngles(lm, result)
	}

	if profile.HeightCm > 0 && profile.WeightKg > 0 {
		heightM := profile.HeightCm / 100
		result.BMI = profile.WeightKg / (heightM * heightM)
		if result.BMI > bmiOverweight {
			result.Statements = append(result.Statements, "High BMI puts extra load on posture")
			result.Issues = append(result.Issues, "high_bmi")
		}
	}

	if profile.Age > 0 {
		result.Recommendations = ageRecommendations(profile.Age, result.Issues)
	}

	return result
}

func visibleParts(lm pose.Landmarks) []string {
	var parts []string
	if lm.AllVisible(pose.Nose) {
		parts = append(parts, "head")
	}
	if lm.AllVisible(pose.LeftShoulder, pose.RightShoulder) {
		parts = append(parts, "shoulders")
	}
	if lm.AllVisible(pose.LeftElbow, pose.RightElbow) {
		parts = append(parts, "elbows")
	}
	if lm.AllVisible(pose.LeftHip, pose.RightHip) {
		parts = append(parts, "hips")
	}
	if lm.AllVisible(pose.LeftKnee, pose.RightKnee) {
		parts = append(parts, "knees")
	}
	return parts
}

func checkShoulders(lm pose.Landmarks, result *QuickCheckResult) {
	left, okL := lm.Get(pose.LeftShoulder)
	right, okR := lm.Get(pose.RightShoulder)
	if !okL || !okR {
		return
	}

	diff := math.Abs(left.Y - right.Y)
	result.ShoulderAsymmetry = diff * 100

	if diff > shoulderLevelThreshold {
		if left.Y < right.Y {
			result.Statements = append(result.Statements, "Left shoulder higher")
		} else {
			result.Statements = append(result.Statements, "Right shoulder higher")
		}
		result.Issues = append(result.Issues, "shoulder_imbalance")
	} else {
		result.Statements = append(result.Statements, "Shoulders level")
	}
}

func checkHead(lm pose.Landmarks, result *QuickCheckResult) {
	nose, okN := lm.Get(pose.Nose)
	left, okL := lm.Get(pose.LeftShoulder)
	right, okR := lm.Get(pose.RightShoulder)
	if !okN || !okL || !okR {
		return
	}

	shoulderMid := pose.Midpoint(left, right)

	offset := nose.X - shoulderMid.X
	if math.Abs(offset) > headOffsetThreshold {
		if offset < 0 {
			result.Statements = append(result.Statements, "Head tilted left")
		} else {
			result.Statements = append(result.Statements, "Head tilted right")
		}
	} else {
		result.Statements = append(result.Statements, "Head centered")
	}

	// forward head shows as the nose dropping towards shoulder level
	if nose.Y > shoulderMid.Y-0.05 {
		result.Statements = append(result.Statements, "Forward head posture detected")
		result.Issues = append(result.Issues, "forward_head")
	} else if nose.Y < shoulderMid.Y-0.15 {
		result.Statements = append(result.Statements, "Upright head position")
	}
}

func checkTorso(lm pose.Landmarks, result *QuickCheckResult) {
	if !lm.AllVisible(pose.LeftShoulder, pose.RightShoulder, pose.LeftHip, pose.RightHip) {
		return
	}

	leftShoulder, _ := lm.Get(pose.LeftShoulder)
	rightShoulder, _ := lm.Get(pose.RightShoulder)
	leftHip, _ := lm.Get(pose.LeftHip)
	rightHip, _ := lm.Get(pose.RightHip)

	shoulderMid := pose.Midpoint(leftShoulder, rightShoulder)
	hipMid := pose.Midpoint(leftHip, rightHip)

	tilt := shoulderMid.X - hipMid.X
	if math.Abs(tilt) > torsoTiltThreshold {
		if tilt < 0 {
			result.Statements = append(result.Statements, "Torso leaning left")
		} else {
			result.Statements = append(result.Statements, "Torso leaning right")
		}
	} else {
		result.Statements = append(result.Statements, "Torso upright")
	}
}

func checkHips(lm pose.Landmarks, result *QuickCheckResult) {
	left, okL := lm.Get(pose.LeftHip)
	right, okR := lm.Get(pose.RightHip)
	if !okL || !okR {
		return
	}

	diff := math.Abs(left.Y - right.Y)
	if diff > hipLevelThreshold {
		if left.Y < right.Y {
			result.Statements = append(result.Statements, "Left hip higher")
		} else {
			result.Statements = append(result.Statements, "Right hip higher")
		}
		result.Issues = append(result.Issues, "hip_imbalance")
	} else {
		result.Statements = append(result.Statements, "Hips level")
	}
}

func checkJointAngles(lm pose.Landmarks, result *QuickCheckResult) {
	type jointCheck struct {
		name    string
		a, b, c int
		kind    string // "elbow" or "knee"
	}

	checks := []jointCheck{
		{"left elbow", pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist, "elbow"},
		{"right elbow", pose.RightShoulder, pose.RightElbow, pose.RightWrist, "elbow"},
		{"left knee", pose.LeftHip, pose.LeftKnee, pose.LeftAnkle, "knee"},
		{"right knee", pose.RightHip, pose.RightKnee, pose.RightAnkle, "knee"},
	}

	for _, c := range checks {
		if !lm.AllVisible(c.a, c.b, c.c) {
			continue
		}
		pa, _ := lm.Get(c.a)
		pb, _ := lm.Get(c.b)
		pc, _ := lm.Get(c.c)
		angle := pose.Angle2D(pa, pb, pc)

		result.Statements = append(result.Statements,
			fmt.Sprintf("%s angle: %.1f degrees", c.name, angle))

		switch c.kind {
		case "elbow":
			if angle < elbowVeryBentAngle {
				result.Statements = append(result.Statements, fmt.Sprintf("%s very bent", c.name))
			} else if angle > elbowStraightAngle {
				result.Statements = append(result.Statements, fmt.Sprintf("%s straight", c.name))
			}
		case "knee":
			if angle < kneeStraightAngle {
				result.Statements = append(result.Statements, fmt.Sprintf("%s bent", c.name))
			} else {
				result.Statements = append(result.Statements, fmt.Sprintf("%s straight", c.name))
			}
		}
	}
}

func ageRecommendations(age int, issues []string) []string {
	has := func(issue string) bool {
		for _, i := range issues {
			if i == issue {
				return true
			}
		}
		return false
	}

	var recs []string
	switch {
	case age < 25:
		recs = append(recs, "Young age: form posture habits now")
		if has("forward_head") {
			recs = append(recs, "Limit phone and computer use")
		}
	case age < 45:
		recs = append(recs, "Middle age: regular exercise is important")
		if has("shoulder_imbalance") {
			recs = append(recs, "Make your workspace ergonomic")
		}
	default:
		recs = append(recs, "Mature age: focus on bone health")
		if has("hip_imbalance") {
			recs = append(recs, "Take daily walks")
		}
	}
	return recs
}
