package clinical

// Catalog region names.
const (
	CatalogNeck     = "neck"
	CatalogShoulder = "shoulder"
	CatalogBack     = "back"
	CatalogHip      = "hip"
	CatalogKnee     = "knee"
)

var catalogRegions = []string{CatalogNeck, CatalogShoulder, CatalogBack, CatalogHip, CatalogKnee}

// Catalog holds the therapeutic exercises grouped per body region.
type Catalog struct {
	exercises map[string][]Exercise
}

func NewCatalog() *Catalog {
	return &Catalog{exercises: map[string][]Exercise{
		CatalogNeck: {
			{
				Name:        "Neck Isometric Hold",
				Description: "Place your hand on your forehead and push your head forward against the resistance of your hand",
				Duration:    "10 seconds",
				Repetitions: "10 reps",
				Sets:        3,
				Type:        TypeStrengthening,
				Difficulty:  DifficultyBeginner,
				TargetAreas: []string{"Deep neck flexors", "Cervical stabilizers"},
				Precautions: []string{"Stop if you feel pain", "Move slowly and with control"},
				Benefits:    []string{"Builds neck muscle strength", "Improves posture", "Reduces headaches"},
			},
			{
				Name:        "Neck Rotation Stretch",
				Description: "Slowly turn your head to the right, hold for 30 seconds, then turn to the left",
				Duration:    "30 seconds",
				Repetitions: "3 reps each side",
				Sets:        2,
				Type:        TypeStretching,
				Difficulty:  DifficultyBeginner,
				TargetAreas: []string{"Neck rotators", "Suboccipital muscles"},
				Precautions: []string{"Do not force the movement", "Stop if you feel pain"},
				Benefits:    []string{"Improves neck mobility", "Relieves muscle tension"},
			},
		},
		CatalogShoulder: {
			{
				Name:        "Shoulder Blade Squeeze",
				Description: "With your arms at your sides, squeeze your shoulder blades together and back",
				Duration:    "5 seconds",
				Repetitions: "15 reps",
				Sets:        3,
				Type:        TypeStrengthening,
				Difficulty:  DifficultyBeginner,
				TargetAreas: []string{"Rhomboids", "Middle trapezius", "Lower trapezius"},
				Precautions: []string{"Do not shrug the shoulders", "Move slowly"},
				Benefits:    []string{"Corrects posture", "Improves shoulder stability"},
			},
			{
				Name:        "Wall Push-Up",
				Description: "Stand facing a wall and push against it with your arms, as if doing a push-up",
				Duration:    "Continuous",
				Repetitions: "15 reps",
				Sets:        3,
				Type:        TypeStrengthening,
				Difficulty:  DifficultyIntermediate,
				TargetAreas: []string{"Serratus anterior", "Pectorals", "Deltoids"},
				Precautions: []string{"Keep the lower back neutral", "Keep the core engaged"},
				Benefits:    []string{"Improves shoulder stability", "Corrects posture"},
			},
		},
		CatalogBack: {
			{
				Name:        "Cat-Cow",
				Description: "On all fours, round your back up towards the ceiling, then let it sink down",
				Duration:    "Slow movement",
				Repetitions: "10 reps",
				Sets:        2,
				Type:        TypeMobility,
				Difficulty:  DifficultyBeginner,
				TargetAreas: []string{"Spinal mobility", "Core muscles"},
				Precautions: []string{"Move slowly", "Stop if you feel pain"},
				Benefits:    []string{"Improves spinal mobility", "Strengthens the core"},
			},
			{
				Name:        "Bird Dog",
				Description: "On all fours, raise the opposite arm and leg and hold them level",
				Duration:    "10 seconds",
				Repetitions: "10 reps each side",
				Sets:        3,
				Type:        TypeStability,
				Difficulty:  DifficultyIntermediate,
				TargetAreas: []string{"Core stabilizers", "Glutes", "Spinal erectors"},
				Precautions: []string{"Keep your balance", "Keep the hips level"},
				Benefits:    []string{"Improves core stability", "Develops coordination"},
			},
		},
		CatalogHip: {
			{
				Name:        "Hip Flexor Stretch",
				Description: "In a lunge position, bend the front leg to 90 degrees and stretch the back leg",
				Duration:    "30 seconds",
				Repetitions: "3 reps each leg",
				Sets:        2,
				Type:        TypeStretching,
				Difficulty:  DifficultyBeginner,
				TargetAreas: []string{"Hip flexors", "Psoas", "Iliotibial band"},
				Precautions: []string{"Stretch slowly", "Keep your balance"},
				Benefits:    []string{"Improves hip mobility", "Reduces lower back pain"},
			},
			{
				Name:        "Glute Bridge",
				Description: "Lie on your back with knees bent and lift your hips towards the ceiling",
				Duration:    "5 seconds",
				Repetitions: "15 reps",
				Sets:        3,
				Type:        TypeStrengthening,
				Difficulty:  DifficultyBeginner,
				TargetAreas: []string{"Glutes", "Hamstrings", "Core"},
				Precautions: []string{"Do not arch the lower back", "Squeeze the glutes"},
				Benefits:    []string{"Builds hip strength", "Stabilizes the lower back"},
			},
		},
		CatalogKnee: {
			{
				Name:        "Quadriceps Stretch",
				Description: "Standing, hold your ankle and pull your heel towards your glutes",
				Duration:    "30 seconds",
				Repetitions: "3 reps each leg",
				Sets:        2,
				Type:        TypeStretching,
				Difficulty:  DifficultyBeginner,
				TargetAreas: []string{"Quadriceps", "Hip flexors"},
				Precautions: []string{"Keep your balance", "Do not force the stretch"},
				Benefits:    []string{"Improves knee mobility", "Relieves muscle tension"},
			},
			{
				Name:        "Single Leg Balance",
				Description: "Stand on one leg and hold your balance",
				Duration:    "30 seconds",
				Repetitions: "3 reps each leg",
				Sets:        2,
				Type:        TypeStability,
				Difficulty:  DifficultyIntermediate,
				TargetAreas: []string{"Proprioception", "Knee stabilizers", "Ankle"},
				Precautions: []string{"Do it in a safe spot", "Hold on to something if needed"},
				Benefits:    []string{"Improves balance", "Reduces injury risk"},
			},
		},
	}}
}

// Regions returns the catalog region names in a stable order.
func (c *Catalog) Regions() []string {
	return catalogRegions
}

// ForRegion returns the exercises of the given region.
func (c *Catalog) ForRegion(region string) ([]Exercise, bool) {
	exercises, ok := c.exercises[region]
	return exercises, ok
}

// ForRegionWithDifficulty returns the exercises of the given region
// filtered to the given difficulty tier.
func (c *Catalog) ForRegionWithDifficulty(region string, difficulty Difficulty) ([]Exercise, bool) {
	exercises, ok := c.exercises[region]
	if !ok {
		return nil, false
	}
	var filtered []Exercise
	for _, ex := range exercises {
		if ex.Difficulty == difficulty {
			filtered = append(filtered, ex)
		}
	}
	return filtered, true
}
