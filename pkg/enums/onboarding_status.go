package enums

import "fmt"

// OnboardingStatus tracks progress through the onboarding wizard.
type OnboardingStatus string

const (
	OnboardingStatusNotStarted OnboardingStatus = "not-started"
	OnboardingStatusInProgress OnboardingStatus = "in-progress"
	OnboardingStatusCompleted  OnboardingStatus = "completed"
)

var validOnboardingStatuses = []OnboardingStatus{
	OnboardingStatusNotStarted,
	OnboardingStatusInProgress,
	OnboardingStatusCompleted,
}

// String implements fmt.Stringer.
func (v OnboardingStatus) String() string {
	return string(v)
}

// IsValid reports whether the value is a known OnboardingStatus.
func (v OnboardingStatus) IsValid() bool {
	for _, candidate := range validOnboardingStatuses {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseOnboardingStatus converts raw input into a OnboardingStatus.
func ParseOnboardingStatus(value string) (OnboardingStatus, error) {
	for _, candidate := range validOnboardingStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid onboarding status %q", value)
}
