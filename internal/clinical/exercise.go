package clinical

// ExerciseType groups exercises by their therapeutic purpose.
type ExerciseType string

const (
	TypeStrengthening ExerciseType = "strengthening"
	TypeStretching    ExerciseType = "stretching"
	TypeMobility      ExerciseType = "mobility"
	TypeStability     ExerciseType = "stability"
)

// Difficulty is the exercise difficulty tier.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Exercise is a single prescribed therapeutic exercise.
type Exercise struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Duration    string       `json:"duration"`
	Repetitions string       `json:"repetitions"`
	Sets        int          `json:"sets"`
	Type        ExerciseType `json:"type"`
	Difficulty  Difficulty   `json:"difficulty"`
	TargetAreas []string     `json:"target_areas"`
	Precautions []string     `json:"precautions"`
	Benefits    []string     `json:"benefits"`
}
