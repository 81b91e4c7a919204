package enums

import "fmt"

// SegmentType classifies a timeline segment.
type SegmentType string

const (
	SegmentTypeClip       SegmentType = "clip"
	SegmentTypeTransition SegmentType = "transition"
	SegmentTypeOverlay    SegmentType = "overlay"
)

var validSegmentTypes = []SegmentType{
	SegmentTypeClip,
	SegmentTypeTransition,
	SegmentTypeOverlay,
}

// String implements fmt.Stringer.
func (v SegmentType) String() string {
	return string(v)
}

// IsValid reports whether the value is a known SegmentType.
func (v SegmentType) IsValid() bool {
	for _, candidate := range validSegmentTypes {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseSegmentType converts raw input into a SegmentType.
func ParseSegmentType(value string) (SegmentType, error) {
	for _, candidate := range validSegmentTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid segment type %q", value)
}
