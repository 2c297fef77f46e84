package pose

// Body landmark indexes, matching the standard 33 point pose topology.
const (
	Nose = iota
	LeftEyeInner
	LeftEye
	LeftEyeOuter
	RightEyeInner
	RightEye
	RightEyeOuter
	LeftEar
	RightEar
	MouthLeft
	MouthRight
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftPinky
	RightPinky
	LeftIndex
	RightIndex
	LeftThumb
	RightThumb
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle
	LeftHeel
	RightHeel
	LeftFootIndex
	RightFootIndex
)

// Hand landmark indexes, matching the standard 21 point hand topology.
const (
	Wrist = iota
	ThumbCMC
	ThumbMCP
	ThumbIP
	ThumbTip
	IndexFingerMCP
	IndexFingerPIP
	IndexFingerDIP
	IndexFingerTip
	MiddleFingerMCP
	MiddleFingerPIP
	MiddleFingerDIP
	MiddleFingerTip
	RingFingerMCP
	RingFingerPIP
	RingFingerDIP
	RingFingerTip
	PinkyMCP
	PinkyPIP
	PinkyDIP
	PinkyTip
)

// VisibilityThreshold is the minimum landmark visibility for a
// landmark to take part in any calculation.
const VisibilityThreshold = 0.5

// Landmark is a single detected body or hand point. Coordinates are
// normalized to the image frame, visibility is the detector confidence.
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

// Visible says whether the landmark is confident enough to be used.
func (l Landmark) Visible() bool {
	return l.Visibility > VisibilityThreshold
}

// Landmarks is a set of detected landmarks keyed by landmark index.
type Landmarks map[int]Landmark

// Get returns the landmark at the given index together with an ok flag
// which is false when the landmark is missing or not visible enough.
func (lm Landmarks) Get(index int) (Landmark, bool) {
	l, ok := lm[index]
	if !ok || !l.Visible() {
		return Landmark{}, false
	}
	return l, true
}

// AllVisible reports whether every given index is present and visible.
func (lm Landmarks) AllVisible(indexes ...int) bool {
	for _, i := range indexes {
		if _, ok := lm.Get(i); !ok {
			return false
		}
	}
	return true
}

// Midpoint returns the point halfway between two landmarks.
func Midpoint(a, b Landmark) Landmark {
	return Landmark{
		X: (a.X + b.X) / 2,
		Y: (a.Y + b.Y) / 2,
		Z: (a.Z + b.Z) / 2,
	}
}
