package scene

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *geometry.Camera
	World          *geometry.HitList // Spheres in the scene
	SamplingConfig SamplingConfig
	CameraConfig   geometry.CameraConfig
}

// SamplingConfig contains the recommended sampling settings for a scene
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// MergeSamplingConfig overlays the positive fields of override on base
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.SamplesPerPixel > 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth > 0 {
		result.MaxDepth = override.MaxDepth
	}
	return result
}

// newScene builds an empty scene around a camera
func newScene(cameraConfig geometry.CameraConfig, samplingConfig SamplingConfig) *Scene {
	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		World:          geometry.NewHitList(),
		SamplingConfig: samplingConfig,
		CameraConfig:   cameraConfig,
	}
}

// applyCameraOverrides merges the first override, if any, onto defaults
func applyCameraOverrides(defaults geometry.CameraConfig, overrides []geometry.CameraConfig) geometry.CameraConfig {
	if len(overrides) > 0 {
		return geometry.MergeCameraConfig(defaults, overrides[0])
	}
	return defaults
}

// SetCameraConfig validates config and rebuilds the camera from it.
// On error the scene keeps its current camera.
func (s *Scene) SetCameraConfig(config geometry.CameraConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	s.Camera = geometry.NewCamera(config)
	s.CameraConfig = config
	return nil
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.World.Add(geometry.NewSphere(center, radius, mat))
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// GetWorld returns the shapes to intersect, or nil when the scene has none
func (s *Scene) GetWorld() geometry.Shape {
	if s.World == nil {
		return nil
	}
	return s.World
}

// GetPrimitiveCount returns the number of spheres in the scene
func (s *Scene) GetPrimitiveCount() int {
	if s.World == nil {
		return 0
	}
	return s.World.Len()
}
