package enums

import "fmt"

// TransitionDirection is the animation direction of a route change.
type TransitionDirection string

const (
	TransitionDirectionForward  TransitionDirection = "forward"
	TransitionDirectionBackward TransitionDirection = "backward"
)

var validTransitionDirections = []TransitionDirection{
	TransitionDirectionForward,
	TransitionDirectionBackward,
}

// String implements fmt.Stringer.
func (v TransitionDirection) String() string {
	return string(v)
}

// IsValid reports whether the value is a known TransitionDirection.
func (v TransitionDirection) IsValid() bool {
	for _, candidate := range validTransitionDirections {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseTransitionDirection converts raw input into a TransitionDirection.
func ParseTransitionDirection(value string) (TransitionDirection, error) {
	for _, candidate := range validTransitionDirections {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transition direction %q", value)
}
