package assessment

import (
	"fmt"
	"math"

	"github.com/posturelab/posturecheck/internal/pose"
)

const (
	StatusOK              = "ok"
	StatusBodyNotDetected = "body_not_detected"
)

// Result is the complete outcome of a posture assessment.
type Result struct {
	Status               string                     `json:"status"`
	PosturalMetrics      Metrics                    `json:"postural_metrics,omitempty"`
	MovementPatterns     map[string]MovementPattern `json:"movement_patterns,omitempty"`
	RiskAssessment       map[string]RiskLevel       `json:"risk_assessment,omitempty"`
	CompensationPatterns []string                   `json:"compensation_patterns,omitempty"`
	FunctionalScores     map[string]float64         `json:"functional_scores,omitempty"`
	PostureScore         float64                    `json:"posture_score"`
	MovementQuality      string                     `json:"movement_quality,omitempty"`
	Issues               []string                   `json:"issues,omitempty"`
	Recommendations      []string                   `json:"recommendations,omitempty"`
}

// Analyzer runs the full biomechanical posture assessment pipeline:
// region analysis, movement quality, injury risk, compensation
// patterns, functional scores and the clinical summary.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze runs the whole pipeline over the given body landmarks.
func (a *Analyzer) Analyze(lm pose.Landmarks) *Result {
	if !bodyDetected(lm) {
		return &Result{Status: StatusBodyNotDetected}
	}

	cervical := AnalyzeCervical(lm)
	shoulder := AnalyzeShoulder(lm)
	spinal := AnalyzeSpinal(lm)
	pelvic := AnalyzePelvic(lm)
	lowerExtremity := AnalyzeLowerExtremity(lm)

	patterns := AssessMovementQuality(cervical, shoulder, spinal)
	risks := AssessInjuryRisk(cervical, shoulder, spinal, pelvic, lowerExtremity)
	compensations := DetectCompensationPatterns(cervical, shoulder, spinal, pelvic)
	scores := FunctionalScores(cervical, shoulder, spinal, pelvic, lowerExtremity)

	result := &Result{
		Status: StatusOK,
		PosturalMetrics: flattenMetrics(map[string]Metrics{
			RegionCervical:       cervical,
			RegionShoulder:       shoulder,
			RegionSpinal:         spinal,
			RegionPelvic:         pelvic,
			RegionLowerExtremity: lowerExtremity,
		}),
		MovementPatterns:     patterns,
		RiskAssessment:       risks,
		CompensationPatterns: compensations,
		FunctionalScores:     scores,
	}

	a.clinicalSummary(result)

	return result
}

// flattenMetrics collapses the per-region metrics into one map with
// region prefixed keys, e.g. "cervical_forward_head_ratio".
func flattenMetrics(regions map[string]Metrics) Metrics {
	flat := Metrics{}
	for region, metrics := range regions {
		for name, value := range metrics {
			flat[region+"_"+name] = value
		}
	}
	return flat
}

// bodyPartsOrder keeps the clinical summary output deterministic.
var bodyPartsOrder = []string{"neck", "shoulder", "lower_back", "knee"}

// regionsOrder keeps the movement pattern output deterministic.
var regionsOrder = []string{RegionCervical, RegionShoulder, RegionSpinal}

func (a *Analyzer) clinicalSummary(result *Result) {
	score := result.FunctionalScores["overall_function"]

	for _, part := range bodyPartsOrder {
		switch result.RiskAssessment[part] {
		case RiskHigh:
			result.Issues = append(result.Issues, fmt.Sprintf("High risk: %s", part))
			result.Recommendations = append(result.Recommendations, highRiskRecommendations(part)...)
			score -= 20
		case RiskModerate:
			result.Issues = append(result.Issues, fmt.Sprintf("Moderate risk: %s", part))
			result.Recommendations = append(result.Recommendations, moderateRiskRecommendations(part)...)
			score -= 10
		}
	}

	for _, region := range regionsOrder {
		switch result.MovementPatterns[region] {
		case PatternCompensatory:
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("Correct the %s compensation pattern", region))
		case PatternRestricted:
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("Address the %s movement restriction", region))
		}
	}

	if len(result.CompensationPatterns) > 0 {
		result.Issues = append(result.Issues, result.CompensationPatterns...)
		result.Recommendations = append(result.Recommendations,
			"Do corrective exercises for the detected compensation patterns")
	}

	result.PostureScore = math.Max(0, score)

	switch {
	case result.PostureScore >= 90:
		result.MovementQuality = "Excellent"
	case result.PostureScore >= 80:
		result.MovementQuality = "Good"
	case result.PostureScore >= 70:
		result.MovementQuality = "Fair"
	case result.PostureScore >= 60:
		result.MovementQuality = "Poor"
	default:
		result.MovementQuality = "Critical"
	}
}

func highRiskRecommendations(bodyPart string) []string {
	switch bodyPart {
	case "neck":
		return []string{
			"Urgent physiotherapist consultation recommended",
			"Use neck support",
			"Avoid heavy lifting activities",
		}
	case "shoulder":
		return []string{
			"Limit shoulder movements",
			"Upper extremity strengthening program",
			"Use posture corrector",
		}
	case "lower_back":
		return []string{
			"Use back support",
			"Core stabilization exercises",
			"Get an ergonomic assessment",
		}
	case "knee":
		return []string{
			"Use knee support",
			"Weight control",
			"Prefer low-impact exercises",
		}
	default:
		return []string{"Expert evaluation required"}
	}
}

func moderateRiskRecommendations(bodyPart string) []string {
	switch bodyPart {
	case "neck":
		return []string{"Neck stretching exercises", "Ergonomic adjustments"}
	case "shoulder":
		return []string{"Shoulder mobilization exercises", "Posture awareness"}
	case "lower_back":
		return []string{"Lower back flexibility exercises", "Core strengthening"}
	case "knee":
		return []string{"Knee muscle strengthening", "Balance exercises"}
	default:
		return []string{"Regular exercise recommended"}
	}
}

// bodyDetected reports whether the landmark set contains at least one
// visible core body landmark.
func bodyDetected(lm pose.Landmarks) bool {
	if len(lm) == 0 {
		return false
	}
	core := []int{pose.Nose, pose.LeftShoulder, pose.RightShoulder, pose.LeftHip, pose.RightHip}
	for _, idx := range core {
		if _, ok := lm.Get(idx); ok {
			return true
		}
	}
	return false
}
