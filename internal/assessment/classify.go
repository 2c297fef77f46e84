package assessment

import "math"

// MovementPattern classifies the movement quality of a body region.
type MovementPattern string

const (
	PatternNormal       MovementPattern = "normal"
	PatternRestricted   MovementPattern = "restricted"
	PatternCompensatory MovementPattern = "compensatory"
	PatternHypermobile  MovementPattern = "hypermobile"
)

// RiskLevel classifies the injury risk of a body part.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// AssessMovementQuality classifies movement patterns per region.
// Regions with no usable metrics come out as normal.
func AssessMovementQuality(cervical, shoulder, spinal Metrics) map[string]MovementPattern {
	patterns := map[string]MovementPattern{
		RegionCervical: PatternNormal,
		RegionShoulder: PatternNormal,
		RegionSpinal:   PatternNormal,
	}

	if cervical.Get("forward_head_ratio") > forwardHeadRatioModerate {
		patterns[RegionCervical] = PatternCompensatory
	} else if cervical.GetOr("cervical_alignment", 100) < cervicalAlignmentRestricted {
		patterns[RegionCervical] = PatternRestricted
	}

	if shoulder.Get("shoulder_protraction") > shoulderProtractionLimit {
		patterns[RegionShoulder] = PatternCompensatory
	} else if shoulder.Get("arm_angle_difference") > armAngleDifferenceLimit {
		patterns[RegionShoulder] = PatternRestricted
	}

	if spinal.Get("spinal_curvature") > spinalCurvatureLimit {
		patterns[RegionSpinal] = PatternCompensatory
	} else if spinal.GetOr("spinal_alignment_score", 100) < spinalScoreRestricted {
		patterns[RegionSpinal] = PatternRestricted
	}

	return patterns
}

// AssessInjuryRisk classifies injury risk per body part from the
// region metrics. Body parts with no usable metrics come out as low.
func AssessInjuryRisk(cervical, shoulder, spinal, pelvic, lowerExtremity Metrics) map[string]RiskLevel {
	risks := map[string]RiskLevel{}

	fhr := cervical.Get("forward_head_ratio")
	switch {
	case fhr > forwardHeadRatioHigh:
		risks["neck"] = RiskHigh
	case fhr > forwardHeadRatioModerate:
		risks["neck"] = RiskModerate
	default:
		risks["neck"] = RiskLow
	}

	switch {
	case shoulder.Get("shoulder_asymmetry") > shoulderAsymmetryHigh:
		risks["shoulder"] = RiskHigh
	case shoulder.Get("shoulder_protraction") > shoulderProtractionLimit:
		risks["shoulder"] = RiskModerate
	default:
		risks["shoulder"] = RiskLow
	}

	curvature := spinal.Get("spinal_curvature")
	tilt := pelvic.Get("pelvic_tilt_angle")
	switch {
	case curvature > spinalCurvatureHigh || tilt > pelvicTiltHigh:
		risks["lower_back"] = RiskHigh
	case curvature > spinalCurvatureModerate || tilt > pelvicTiltModerate:
		risks["lower_back"] = RiskModerate
	default:
		risks["lower_back"] = RiskLow
	}

	kneeAsym := lowerExtremity.Get("knee_angle_asymmetry")
	switch {
	case kneeAsym > kneeAsymmetryHigh:
		risks["knee"] = RiskHigh
	case kneeAsym > kneeAsymmetryModerate:
		risks["knee"] = RiskModerate
	default:
		risks["knee"] = RiskLow
	}

	return risks
}

// Compensation pattern labels.
const (
	UpperCrossedSyndrome    = "Upper Crossed Syndrome"
	LowerCrossedSyndrome    = "Lower Crossed Syndrome"
	LateralChainDysfunction = "Lateral Chain Dysfunction"
)

// DetectCompensationPatterns finds combined postural deviations
// spanning multiple regions.
func DetectCompensationPatterns(cervical, shoulder, spinal, pelvic Metrics) []string {
	var patterns []string

	if cervical.Get("forward_head_ratio") > forwardHeadRatioModerate &&
		shoulder.Get("shoulder_protraction") > shoulderProtractionLimit {
		patterns = append(patterns, UpperCrossedSyndrome)
	}

	if pelvic.Get("pelvic_tilt_angle") > pelvicTiltLCS &&
		spinal.Get("spinal_curvature") > spinalCurvatureLimit {
		patterns = append(patterns, LowerCrossedSyndrome)
	}

	if shoulder.Get("shoulder_asymmetry") > lateralAsymmetryLimit &&
		pelvic.Get("hip_asymmetry") > lateralAsymmetryLimit {
		patterns = append(patterns, LateralChainDysfunction)
	}

	return patterns
}

// FunctionalScores derives per-area functional capacity scores from
// the region metrics, each clamped to the [0, 100] range, plus the
// overall function score as their mean.
func FunctionalScores(cervical, shoulder, spinal, pelvic, lowerExtremity Metrics) map[string]float64 {
	scores := map[string]float64{
		"neck_function":            clampScore(cervical.GetOr("cervical_alignment", 100)),
		"shoulder_function":        clampScore(100 - shoulder.Get("shoulder_asymmetry")*2),
		"spinal_function":          clampScore(spinal.GetOr("spinal_alignment_score", 100)),
		"pelvic_function":          clampScore(pelvic.GetOr("pelvic_stability_score", 100)),
		"lower_extremity_function": clampScore(lowerExtremity.GetOr("lower_extremity_symmetry", 100)),
	}

	total := 0.0
	for _, s := range scores {
		total += s
	}
	scores["overall_function"] = total / 5

	return scores
}

func clampScore(score float64) float64 {
	return math.Max(0, math.Min(100, score))
}
