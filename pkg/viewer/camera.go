package viewer

import (
	"math"

	"github.com/philipparndt/roomplan/pkg/geometry"
	"github.com/philipparndt/roomplan/pkg/room"
)

// Camera is an orbiting perspective camera around Target
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Vertical field of view in radians
	Aspect    float64 // Viewport width / height
	Distance  float64
	RotationX float64 // Elevation above the target
	RotationY float64 // Heading around the target
}

// DefaultFOV is the vertical field of view of a new camera (55 degrees)
const DefaultFOV = 55 * math.Pi / 180

// NewCamera creates a camera looking into r from the front-right corner
func NewCamera(r room.Room) *Camera {
	c := &Camera{
		Position: geometry.NewVector3(8, 7, 10),
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      DefaultFOV,
		Aspect:   1,
	}
	c.Frame(r)
	return c
}

// Frame re-targets the camera on r without moving it
func (c *Camera) Frame(r room.Room) {
	c.Target = geometry.NewVector3(0, math.Max(1, r.WallHeight*0.4), 0)
	c.syncAngles()
}

// SetViewport updates the aspect ratio
func (c *Camera) SetViewport(width, height float64) {
	if width > 0 && height > 0 {
		c.Aspect = width / height
	}
}

// syncAngles derives distance and rotation from Position and Target
func (c *Camera) syncAngles() {
	offset := c.Position.Sub(c.Target)
	c.Distance = offset.Length()
	if c.Distance == 0 {
		return
	}
	c.RotationX = math.Asin(geometry.Clamp(offset.Y/c.Distance, -1, 1))
	c.RotationY = math.Atan2(offset.X, offset.Z)
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp X rotation to prevent gimbal lock
	maxAngle := math.Pi/2 - 0.1
	c.RotationX = geometry.Clamp(c.RotationX, -maxAngle, maxAngle)

	c.UpdatePosition()
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	if c.Distance < 0.5 {
		c.Distance = 0.5
	}
	c.UpdatePosition()
}

// Pan moves the target (and the camera with it) in the view plane
func (c *Camera) Pan(deltaX, deltaY float64) {
	_, right, up := c.basis()
	speed := c.Distance * 0.001
	move := right.Mul(-deltaX * speed).Add(up.Mul(deltaY * speed))
	c.Target = c.Target.Add(move)
	c.UpdatePosition()
}

func (c *Camera) basis() (forward, right, up geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// Project projects a 3D point to 2D screen coordinates. The third value is
// the depth along the view direction.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward, right, up := c.basis()

	// Transform to camera space
	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	// Perspective projection
	if z <= nearPlane {
		z = nearPlane // Prevent division by zero
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

// Depth returns the distance of point along the view direction
func (c *Camera) Depth(point geometry.Vector3) float64 {
	forward, _, _ := c.basis()
	return point.Sub(c.Position).Dot(forward)
}

// RayFromNDC builds the picking ray through normalized device coordinates
func (c *Camera) RayFromNDC(ndcX, ndcY float64) geometry.Ray {
	forward, right, up := c.basis()
	fovScale := math.Tan(c.FOV / 2)

	dir := forward.
		Add(right.Mul(ndcX * fovScale * c.Aspect)).
		Add(up.Mul(ndcY * fovScale))

	return geometry.NewRay(c.Position, dir)
}

// ScreenToNDC converts a position inside a width x height viewport to
// normalized device coordinates (+y up)
func ScreenToNDC(screenX, screenY, width, height float64) (float64, float64) {
	return (screenX/width)*2 - 1, -(screenY/height)*2 + 1
}
