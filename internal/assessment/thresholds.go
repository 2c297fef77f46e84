package assessment

// Clinical thresholds used for movement quality, injury risk and
// compensation pattern detection.
const (
	// forward head ratio
	forwardHeadRatioModerate = 0.2
	forwardHeadRatioHigh     = 0.3

	// shoulder
	shoulderProtractionLimit = 0.15
	shoulderAsymmetryHigh    = 15.0
	armAngleDifferenceLimit  = 15.0

	// spinal
	spinalCurvatureLimit    = 0.2
	spinalCurvatureModerate = 0.15
	spinalCurvatureHigh     = 0.25
	spinalScoreRestricted   = 60.0

	// cervical alignment
	cervicalAlignmentRestricted = 70.0

	// pelvic
	pelvicTiltModerate = 10.0
	pelvicTiltHigh     = 20.0
	pelvicTiltLCS      = 15.0

	// knee
	kneeAsymmetryModerate = 10.0
	kneeAsymmetryHigh     = 20.0

	// lateral chain
	lateralAsymmetryLimit = 10.0
)
