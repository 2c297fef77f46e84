package clinical

import (
	"fmt"
	"strings"
	"time"

	"github.com/posturelab/posturecheck/internal/assessment"
)

const (
	maxPrimaryIssues   = 5
	maxSecondaryIssues = 3
	maxExercises       = 8
	exercisesPerIssue  = 2

	elderlyAge = 65
)

// PatientProfile carries the patient details used to personalize a
// treatment plan.
type PatientProfile struct {
	ID                 string `json:"id"`
	Age                int    `json:"age"`
	ExerciseExperience string `json:"exercise_experience"`
}

// TreatmentPlan is a personalized exercise and follow-up program
// derived from a posture assessment.
type TreatmentPlan struct {
	PatientID        string     `json:"patient_id"`
	AssessmentDate   time.Time  `json:"assessment_date"`
	PrimaryIssues    []string   `json:"primary_issues"`
	SecondaryIssues  []string   `json:"secondary_issues"`
	ShortTermGoals   []string   `json:"short_term_goals"`
	LongTermGoals    []string   `json:"long_term_goals"`
	Exercises        []Exercise `json:"exercises"`
	FollowUpSchedule []string   `json:"follow_up_schedule"`
	Precautions      []string   `json:"precautions"`
	ExpectedOutcomes []string   `json:"expected_outcomes"`
}

// Planner builds treatment plans out of assessment results and the
// exercise catalog.
type Planner struct {
	catalog *Catalog
	nowFunc func() time.Time
}

func NewPlanner(catalog *Catalog) *Planner {
	return &Planner{
		catalog: catalog,
		nowFunc: time.Now,
	}
}

var bodyPartsOrder = []string{"neck", "shoulder", "lower_back", "knee"}

var functionalAreasOrder = []string{
	"neck_function",
	"shoulder_function",
	"spinal_function",
	"pelvic_function",
	"lower_extremity_function",
	"overall_function",
}

// GeneratePlan builds a personalized treatment plan for the given
// assessment result and patient profile.
func (p *Planner) GeneratePlan(result *assessment.Result, profile PatientProfile) *TreatmentPlan {
	primary := p.primaryIssues(result)
	secondary := p.secondaryIssues(result)

	patientID := profile.ID
	if patientID == "" {
		patientID = "anonymous"
	}

	return &TreatmentPlan{
		PatientID:        patientID,
		AssessmentDate:   p.nowFunc(),
		PrimaryIssues:    primary,
		SecondaryIssues:  secondary,
		ShortTermGoals:   shortTermGoals(),
		LongTermGoals:    longTermGoals(),
		Exercises:        p.selectExercises(primary, profile),
		FollowUpSchedule: followUpSchedule(),
		Precautions:      precautions(profile),
		ExpectedOutcomes: expectedOutcomes(),
	}
}

func (p *Planner) primaryIssues(result *assessment.Result) []string {
	var issues []string

	for _, part := range bodyPartsOrder {
		switch result.RiskAssessment[part] {
		case assessment.RiskHigh:
			issues = append(issues, fmt.Sprintf("High risk: %s", part))
		case assessment.RiskModerate:
			issues = append(issues, fmt.Sprintf("Moderate risk: %s", part))
		}
	}

	issues = append(issues, result.CompensationPatterns...)

	if len(issues) > maxPrimaryIssues {
		issues = issues[:maxPrimaryIssues]
	}
	return issues
}

func (p *Planner) secondaryIssues(result *assessment.Result) []string {
	var issues []string

	for _, part := range bodyPartsOrder {
		if result.RiskAssessment[part] == assessment.RiskLow {
			issues = append(issues, fmt.Sprintf("Preventive: %s", part))
		}
	}

	for _, area := range functionalAreasOrder {
		score, ok := result.FunctionalScores[area]
		if ok && score >= 70 && score < 85 {
			issues = append(issues, fmt.Sprintf("Needs improvement: %s", area))
		}
	}

	if len(issues) > maxSecondaryIssues {
		issues = issues[:maxSecondaryIssues]
	}
	return issues
}

// issueKeywords maps issue text fragments to catalog regions.
var issueKeywords = []struct {
	keyword string
	region  string
}{
	{"neck", CatalogNeck},
	{"shoulder", CatalogShoulder},
	{"back", CatalogBack},
	{"spinal", CatalogBack},
	{"hip", CatalogHip},
	{"knee", CatalogKnee},
}

func (p *Planner) selectExercises(primaryIssues []string, profile PatientProfile) []Exercise {
	difficulty := targetDifficulty(profile.ExerciseExperience)

	var selected []Exercise
	for _, issue := range primaryIssues {
		lowered := strings.ToLower(issue)
		matched := map[string]bool{}
		for _, kw := range issueKeywords {
			if !strings.Contains(lowered, kw.keyword) || matched[kw.region] {
				continue
			}
			matched[kw.region] = true

			exercises, _ := p.catalog.ForRegionWithDifficulty(kw.region, difficulty)
			if len(exercises) > exercisesPerIssue {
				exercises = exercises[:exercisesPerIssue]
			}
			selected = append(selected, exercises...)
		}
	}

	// dedup by name, keeping the first occurrence
	seen := map[string]bool{}
	var unique []Exercise
	for _, ex := range selected {
		if seen[ex.Name] {
			continue
		}
		seen[ex.Name] = true
		unique = append(unique, ex)
	}

	if len(unique) > maxExercises {
		unique = unique[:maxExercises]
	}
	return unique
}

func targetDifficulty(experience string) Difficulty {
	switch experience {
	case "advanced":
		return DifficultyAdvanced
	case "intermediate":
		return DifficultyIntermediate
	default:
		return DifficultyBeginner
	}
}

func shortTermGoals() []string {
	return []string{
		"Reduce pain levels by 30% within 2 weeks",
		"Improve posture awareness within 4 weeks",
		"Reach comfort in daily activities within 6 weeks",
		"Integrate the exercise routine into daily life",
	}
}

func longTermGoals() []string {
	return []string{
		"Maintain an optimal posture position within 3 months",
		"Minimize injury risk within 6 months",
		"Maximize functional capacity within 1 year",
		"Sustainably improve quality of life",
	}
}

func followUpSchedule() []string {
	return []string{
		"Week 1: daily exercise tracking",
		"Week 2: progress evaluation",
		"Week 4: mid-term evaluation",
		"Week 8: comprehensive reassessment",
		"Week 12: long-term outcome evaluation",
	}
}

func precautions(profile PatientProfile) []string {
	p := []string{
		"Stop the exercise if you feel pain",
		"Perform the exercises slowly and with control",
		"Stay hydrated",
		"Warm up before exercising",
	}
	if profile.Age > elderlyAge {
		p = append(p,
			"Take extra care with balance exercises",
			"Have your blood pressure checked",
		)
	}
	return p
}

func expectedOutcomes() []string {
	return []string{
		"Improved posture and reduced pain",
		"Increased daily activity levels",
		"Gains in muscle strength and flexibility",
		"Better quality of life",
		"Reduced injury risk",
	}
}
