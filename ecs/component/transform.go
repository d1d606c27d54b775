package component

import "github.com/emberworks/pathofember/common"

// Transform is an entity's world position and heading. Yaw is rotation about
// the vertical axis in degrees.
type Transform struct {
	Pos common.Vec3
	Yaw float64
}

var TransformComponent = New[Transform]()
