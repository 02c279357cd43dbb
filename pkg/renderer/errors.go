package renderer

import "errors"

var (
	ErrSceneNotDefined   = errors.New("renderer: no scene defined")
	ErrCameraNotDefined  = errors.New("renderer: no camera defined")
	ErrInvalidDimensions = errors.New("renderer: image dimensions must be positive")
	ErrInvalidSamples    = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidDepth      = errors.New("renderer: max depth must not be negative")
	ErrInterrupted       = errors.New("renderer: interrupted while rendering")
)
