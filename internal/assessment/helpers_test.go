package assessment

import "github.com/posturelab/posturecheck/internal/pose"

// fullBodyLandmarks returns a neutral, well aligned standing pose.
func fullBodyLandmarks() pose.Landmarks {
	points := map[int][3]float64{
		pose.Nose:          {0.5, 0.12, 0},
		pose.LeftEar:       {0.45, 0.2, 0},
		pose.RightEar:      {0.55, 0.2, 0},
		pose.LeftShoulder:  {0.4, 0.3, 0},
		pose.RightShoulder: {0.6, 0.3, 0},
		pose.LeftElbow:     {0.49, 0.45, 0},
		pose.RightElbow:    {0.51, 0.45, 0},
		pose.LeftWrist:     {0.48, 0.6, 0},
		pose.RightWrist:    {0.52, 0.6, 0},
		pose.LeftHip:       {0.42, 0.55, 0},
		pose.RightHip:      {0.58, 0.55, 0},
		pose.LeftKnee:      {0.42, 0.75, 0},
		pose.RightKnee:     {0.58, 0.75, 0},
		pose.LeftAnkle:     {0.42, 0.95, 0},
		pose.RightAnkle:    {0.58, 0.95, 0},
	}

	lm := pose.Landmarks{}
	for idx, p := range points {
		lm[idx] = pose.Landmark{X: p[0], Y: p[1], Z: p[2], Visibility: 0.95}
	}
	return lm
}

// withForwardHead shifts the ears forward so that the forward head
// ratio comes out as the given value (with the neutral 0.1 vertical
// ear to shoulder distance).
func withForwardHead(lm pose.Landmarks, ratio float64) pose.Landmarks {
	offset := ratio * 0.1
	leftEar := lm[pose.LeftEar]
	rightEar := lm[pose.RightEar]
	leftEar.X += offset
	rightEar.X += offset
	lm[pose.LeftEar] = leftEar
	lm[pose.RightEar] = rightEar
	return lm
}
