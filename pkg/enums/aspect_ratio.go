package enums

import "fmt"

// AspectRatio is the output frame the editor reframes to.
type AspectRatio string

const (
	AspectRatioVertical  AspectRatio = "9:16"
	AspectRatioSquare    AspectRatio = "1:1"
	AspectRatioLandscape AspectRatio = "16:9"
)

var validAspectRatios = []AspectRatio{
	AspectRatioVertical,
	AspectRatioSquare,
	AspectRatioLandscape,
}

// String implements fmt.Stringer.
func (v AspectRatio) String() string {
	return string(v)
}

// IsValid reports whether the value is a known AspectRatio.
func (v AspectRatio) IsValid() bool {
	for _, candidate := range validAspectRatios {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseAspectRatio converts raw input into a AspectRatio.
func ParseAspectRatio(value string) (AspectRatio, error) {
	for _, candidate := range validAspectRatios {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid aspect ratio %q", value)
}
