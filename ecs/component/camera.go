package component

// Camera follows a target along the travel axis with eased motion.
type Camera struct {
	TargetID   int
	Zoom       float64
	Smoothness float64
	LookAhead  float64
}

var CameraComponent = New[Camera]()
