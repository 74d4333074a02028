package components

// CameraComponent stores the camera's smoothing target. The actual offset
// lives in the session state so that render code and restart handling share
// one value.
type CameraComponent struct {
	// TargetX is the desired horizontal offset (world coordinates).
	TargetX float64

	// Smoothing is the low-pass factor applied per tick (0..1].
	Smoothing float64
}
