package assessment

import (
	"math"

	"github.com/posturelab/posturecheck/internal/pose"
)

// AnalyzeCervical computes head and neck alignment metrics from the
// ear and shoulder landmarks. Returns an empty Metrics map when any
// of the required landmarks is missing or not visible enough.
func AnalyzeCervical(lm pose.Landmarks) Metrics {
	if !lm.AllVisible(pose.LeftEar, pose.RightEar, pose.LeftShoulder, pose.RightShoulder) {
		return Metrics{}
	}

	leftEar, _ := lm.Get(pose.LeftEar)
	rightEar, _ := lm.Get(pose.RightEar)
	leftShoulder, _ := lm.Get(pose.LeftShoulder)
	rightShoulder, _ := lm.Get(pose.RightShoulder)

	earMid := pose.Midpoint(leftEar, rightEar)
	shoulderMid := pose.Midpoint(leftShoulder, rightShoulder)

	headForward := math.Abs(earMid.X - shoulderMid.X)
	verticalDist := math.Abs(earMid.Y - shoulderMid.Y)

	forwardHeadRatio := 0.0
	if verticalDist > 0 {
		forwardHeadRatio = headForward / verticalDist
	}

	neckAngle := math.Atan2(earMid.Y-shoulderMid.Y, earMid.X-shoulderMid.X) * 180 / math.Pi

	return Metrics{
		"forward_head_ratio": forwardHeadRatio,
		"neck_inclination":   math.Abs(neckAngle),
		"cervical_alignment": 100 - forwardHeadRatio*100,
	}
}

// AnalyzeShoulder computes shoulder level, protraction and arm angle
// metrics from the shoulder, elbow and wrist landmarks.
func AnalyzeShoulder(lm pose.Landmarks) Metrics {
	if !lm.AllVisible(
		pose.LeftShoulder, pose.RightShoulder,
		pose.LeftElbow, pose.RightElbow,
		pose.LeftWrist, pose.RightWrist,
	) {
		return Metrics{}
	}

	leftShoulder, _ := lm.Get(pose.LeftShoulder)
	rightShoulder, _ := lm.Get(pose.RightShoulder)
	leftElbow, _ := lm.Get(pose.LeftElbow)
	rightElbow, _ := lm.Get(pose.RightElbow)
	leftWrist, _ := lm.Get(pose.LeftWrist)
	rightWrist, _ := lm.Get(pose.RightWrist)

	asymmetry := math.Abs(leftShoulder.Y-rightShoulder.Y) * 100

	shoulderWidth := math.Abs(leftShoulder.X - rightShoulder.X)
	elbowWidth := math.Abs(leftElbow.X - rightElbow.X)
	protraction := 0.0
	if shoulderWidth > 0 {
		protraction = elbowWidth / shoulderWidth
	}

	leftElbowAngle := pose.Angle(leftShoulder, leftElbow, leftWrist)
	rightElbowAngle := pose.Angle(rightShoulder, rightElbow, rightWrist)

	return Metrics{
		"shoulder_asymmetry":   asymmetry,
		"shoulder_protraction": protraction,
		"left_elbow_angle":     leftElbowAngle,
		"right_elbow_angle":    rightElbowAngle,
		"arm_angle_difference": math.Abs(leftElbowAngle - rightElbowAngle),
	}
}

// AnalyzeSpinal computes trunk curvature and lateral tilt metrics
// from the shoulder and hip landmarks.
func AnalyzeSpinal(lm pose.Landmarks) Metrics {
	if !lm.AllVisible(pose.LeftShoulder, pose.RightShoulder, pose.LeftHip, pose.RightHip) {
		return Metrics{}
	}

	leftShoulder, _ := lm.Get(pose.LeftShoulder)
	rightShoulder, _ := lm.Get(pose.RightShoulder)
	leftHip, _ := lm.Get(pose.LeftHip)
	rightHip, _ := lm.Get(pose.RightHip)

	shoulderMid := pose.Midpoint(leftShoulder, rightShoulder)
	hipMid := pose.Midpoint(leftHip, rightHip)

	deviation := math.Abs(shoulderMid.X - hipMid.X)
	spinalLength := math.Abs(shoulderMid.Y - hipMid.Y)
	curvature := 0.0
	if spinalLength > 0 {
		curvature = deviation / spinalLength
	}

	lateralTilt := math.Atan2(shoulderMid.Y-hipMid.Y, shoulderMid.X-hipMid.X) * 180 / math.Pi

	return Metrics{
		"spinal_curvature":       curvature,
		"lateral_tilt":           math.Abs(lateralTilt),
		"spinal_alignment_score": math.Max(0, 100-curvature*500),
	}
}

// AnalyzePelvic computes pelvis tilt and hip alignment metrics from
// the hip and knee landmarks.
func AnalyzePelvic(lm pose.Landmarks) Metrics {
	if !lm.AllVisible(pose.LeftHip, pose.RightHip, pose.LeftKnee, pose.RightKnee) {
		return Metrics{}
	}

	leftHip, _ := lm.Get(pose.LeftHip)
	rightHip, _ := lm.Get(pose.RightHip)
	leftKnee, _ := lm.Get(pose.LeftKnee)
	rightKnee, _ := lm.Get(pose.RightKnee)

	tilt := math.Atan2(rightHip.Y-leftHip.Y, rightHip.X-leftHip.X) * 180 / math.Pi

	return Metrics{
		"pelvic_tilt_angle":        math.Abs(tilt),
		"hip_asymmetry":            math.Abs(leftHip.Y-rightHip.Y) * 100,
		"left_hip_knee_alignment":  math.Abs(leftHip.X - leftKnee.X),
		"right_hip_knee_alignment": math.Abs(rightHip.X - rightKnee.X),
		"pelvic_stability_score":   math.Max(0, 100-math.Abs(tilt)*5),
	}
}

// AnalyzeLowerExtremity computes knee angles, valgus indexes and
// stance metrics from the hip, knee and ankle landmarks.
func AnalyzeLowerExtremity(lm pose.Landmarks) Metrics {
	if !lm.AllVisible(
		pose.LeftHip, pose.RightHip,
		pose.LeftKnee, pose.RightKnee,
		pose.LeftAnkle, pose.RightAnkle,
	) {
		return Metrics{}
	}

	leftHip, _ := lm.Get(pose.LeftHip)
	rightHip, _ := lm.Get(pose.RightHip)
	leftKnee, _ := lm.Get(pose.LeftKnee)
	rightKnee, _ := lm.Get(pose.RightKnee)
	leftAnkle, _ := lm.Get(pose.LeftAnkle)
	rightAnkle, _ := lm.Get(pose.RightAnkle)

	leftKneeAngle := pose.Angle(leftHip, leftKnee, leftAnkle)
	rightKneeAngle := pose.Angle(rightHip, rightKnee, rightAnkle)
	kneeAsymmetry := math.Abs(leftKneeAngle - rightKneeAngle)

	leftValgus := math.Abs(leftHip.X-leftKnee.X) - math.Abs(leftKnee.X-leftAnkle.X)
	rightValgus := math.Abs(rightHip.X-rightKnee.X) - math.Abs(rightKnee.X-rightAnkle.X)

	hipWidth := math.Abs(leftHip.X - rightHip.X)
	ankleWidth := math.Abs(leftAnkle.X - rightAnkle.X)
	stanceRatio := 0.0
	if hipWidth > 0 {
		stanceRatio = ankleWidth / hipWidth
	}

	return Metrics{
		"left_knee_angle":          leftKneeAngle,
		"right_knee_angle":         rightKneeAngle,
		"knee_angle_asymmetry":     kneeAsymmetry,
		"left_leg_valgus_index":    leftValgus,
		"right_leg_valgus_index":   rightValgus,
		"stance_width_ratio":       stanceRatio,
		"lower_extremity_symmetry": math.Max(0, 100-kneeAsymmetry*2),
	}
}
