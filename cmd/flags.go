package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// parseAspectRatio accepts either "width:height" or a plain ratio such as "1.5"
func parseAspectRatio(ar string) (float64, error) {
	operands := strings.Split(ar, ":")
	if len(operands) == 1 {
		ratio, err := strconv.ParseFloat(strings.TrimSpace(operands[0]), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid aspect ratio %q: %w", ar, err)
		}
		if ratio <= 0 {
			return 0, fmt.Errorf("aspect ratio %q must be positive", ar)
		}
		return ratio, nil
	}
	if len(operands) != 2 {
		return 0, fmt.Errorf("aspect ratio %q must be in width:height format", ar)
	}

	width, err := strconv.ParseFloat(strings.TrimSpace(operands[0]), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid aspect ratio width in %q: %w", ar, err)
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(operands[1]), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid aspect ratio height in %q: %w", ar, err)
	}
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("aspect ratio %q must have positive operands", ar)
	}

	return width / height, nil
}

// parseVec3 parses a comma separated "x,y,z" triple
func parseVec3(value string) (core.Vec3, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("vector %q must have three comma separated components", value)
	}

	var components [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid vector component %q in %q: %w", part, value, err)
		}
		components[i] = f
	}

	return core.NewVec3(components[0], components[1], components[2]), nil
}
