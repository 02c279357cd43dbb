package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center        core.Vec3 // Camera position (look-from)
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction (usually (0,1,0))
	Width         int       // Image width in pixels
	AspectRatio   float64   // Aspect ratio (width/height)
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens aperture diameter (0 = pinhole)
	FocusDistance float64   // Distance to focus plane (0 = distance to LookAt)
}

// ImageHeight returns the image height in pixels derived from width and aspect ratio
func (c CameraConfig) ImageHeight() int {
	if c.AspectRatio <= 0 {
		return 0
	}
	return max(1, int(float64(c.Width)/c.AspectRatio))
}

// ErrInvalidCamera is returned for configurations that cannot form a camera basis
var ErrInvalidCamera = errors.New("geometry: invalid camera configuration")

// Validate reports whether NewCamera can build an orthonormal basis and viewport from the config
func (c CameraConfig) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: width %d must be positive", ErrInvalidCamera, c.Width)
	}
	if c.AspectRatio <= 0 {
		return fmt.Errorf("%w: aspect ratio %v must be positive", ErrInvalidCamera, c.AspectRatio)
	}
	if c.VFov <= 0 || c.VFov >= 180 {
		return fmt.Errorf("%w: vertical field of view %v must be in (0, 180) degrees", ErrInvalidCamera, c.VFov)
	}
	if c.Aperture < 0 {
		return fmt.Errorf("%w: aperture %v must not be negative", ErrInvalidCamera, c.Aperture)
	}
	if c.FocusDistance < 0 {
		return fmt.Errorf("%w: focus distance %v must not be negative", ErrInvalidCamera, c.FocusDistance)
	}

	view := c.Center.Subtract(c.LookAt)
	if view.LengthSquared() == 0 {
		return fmt.Errorf("%w: look-from and look-at are both %v", ErrInvalidCamera, c.Center)
	}
	if c.Up.LengthSquared() == 0 {
		return fmt.Errorf("%w: up vector is zero", ErrInvalidCamera)
	}
	if c.Up.Normalize().Cross(view.Normalize()).NearZero() {
		return fmt.Errorf("%w: up vector %v is parallel to the view direction", ErrInvalidCamera, c.Up)
	}

	return nil
}

// MergeCameraConfig overlays the non-zero fields of override on base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	zero := core.Vec3{}

	if override.Center != zero {
		result.Center = override.Center
	}
	if override.LookAt != zero {
		result.LookAt = override.LookAt
	}
	if override.Up != zero {
		result.Up = override.Up
	}
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.AspectRatio > 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov > 0 {
		result.VFov = override.VFov
	}
	if override.Aperture > 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance > 0 {
		result.FocusDistance = override.FocusDistance
	}

	return result
}

// Camera generates rays for rendering. It is immutable once built.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal camera basis
	lensRadius      float64
	config          CameraConfig
}

// NewCamera creates a camera with depth of field from the given configuration.
// The config must pass Validate.
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	horizontal := u.Multiply(focusDistance * viewportWidth)
	vertical := v.Multiply(focusDistance * viewportHeight)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		config:          config,
	}
}

// GetRay generates a ray for normalized screen coordinates (s, t) where 0 <= s,t <= 1.
// (0, 0) is the lower-left corner of the viewport.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}

// GetCameraForward returns the direction the camera is looking
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}
