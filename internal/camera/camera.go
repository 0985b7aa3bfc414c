// Package camera provides a third-person follow camera that stays in front
// of the geometry between it and its target.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-collide/pkg/collision"
	"github.com/Faultbox/midgard-collide/pkg/math"
)

// ThirdPersonCamera follows a target from behind and above.
type ThirdPersonCamera struct {
	// Camera orientation
	Yaw   float32 // Horizontal rotation around target (radians)
	Pitch float32 // Angle above the horizon (radians)

	// Distance from the look-at point
	Distance    float32
	MinDistance float32
	MaxDistance float32

	// Margin is kept between the eye and any surface blocking the view.
	Margin float32
	// Height lifts the look-at point above the target's reference point.
	Height float32

	// Sensitivity
	YawSensitivity  float32
	ZoomSensitivity float32

	up, right, ahead math.Vec3
}

// NewThirdPersonCamera creates a camera for a world with the given up axis.
func NewThirdPersonCamera(up math.Vec3) *ThirdPersonCamera {
	c := &ThirdPersonCamera{
		Yaw:             0.0,
		Pitch:           0.5,
		Distance:        6.0,
		MinDistance:     1.0,
		MaxDistance:     30.0,
		Margin:          0.2,
		Height:          1.5,
		YawSensitivity:  0.005,
		ZoomSensitivity: 0.1,
	}
	c.SetUp(up)
	return c
}

// SetUp changes the world up axis. With +Y up, yaw 0 puts the camera on the
// -Z side of the target.
func (c *ThirdPersonCamera) SetUp(up math.Vec3) {
	c.up = up.Normalize()
	if c.up.IsZero() {
		c.up = math.Vec3{Y: 1}
	}

	ref := math.Vec3{X: 1}
	if math32.Abs(c.up.X) > 0.9 {
		ref = math.Vec3{Z: 1}
	}
	c.right = ref.Sub(c.up.Scale(ref.Dot(c.up))).Normalize()
	c.ahead = c.right.Cross(c.up)
}

// Focus returns the point the camera looks at.
func (c *ThirdPersonCamera) Focus(target math.Vec3) math.Vec3 {
	return target.Add(c.up.Scale(c.Height))
}

// Desired returns where the eye would be with nothing in the way.
func (c *ThirdPersonCamera) Desired(target math.Vec3) math.Vec3 {
	rise := c.Distance * math32.Sin(c.Pitch)
	horizDist := c.Distance * math32.Cos(c.Pitch)

	forward := c.right.Scale(math32.Sin(c.Yaw)).Add(c.ahead.Scale(math32.Cos(c.Yaw)))

	// Behind and above the look-at point
	return c.Focus(target).Sub(forward.Scale(horizDist)).Add(c.up.Scale(rise))
}

// Position returns the eye position, pulled toward the target when
// geometry blocks the line of sight. The eye stays Margin in front of the
// blocking surface but never passes the look-at point.
func (c *ThirdPersonCamera) Position(target math.Vec3, tris []math.Triangle) math.Vec3 {
	focus := c.Focus(target)
	desired := c.Desired(target)

	hit := collision.TraceBeam(focus, desired, tris)
	if hit == desired {
		return desired
	}

	toHit := hit.Sub(focus)
	reach := toHit.Length()
	if reach <= c.Margin {
		return focus
	}
	return focus.Add(toHit.Scale((reach - c.Margin) / reach))
}

// ViewMatrix returns the view matrix for this camera looking at target.
func (c *ThirdPersonCamera) ViewMatrix(target math.Vec3, tris []math.Triangle) math.Mat4 {
	return math.LookAt(c.Position(target, tris), c.Focus(target), c.up)
}

// HandleYaw rotates camera horizontally around target.
func (c *ThirdPersonCamera) HandleYaw(deltaX float32) {
	c.Yaw -= deltaX * c.YawSensitivity
}

// HandleZoom updates distance from target.
func (c *ThirdPersonCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
