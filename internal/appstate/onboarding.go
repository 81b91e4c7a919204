package appstate

import (
	"context"
	"strings"

	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
)

// OtherReasonPrefix marks a free-text reason.
const OtherReasonPrefix = "Other: "

func (s *Store) SetReasons(ctx context.Context, reasons []string) {
	reasons = append([]string{}, reasons...)
	s.update(ctx, func(st *State) { st.Onboarding.Reasons = reasons })
}

func (s *Store) SetRole(ctx context.Context, role string) {
	s.update(ctx, func(st *State) { st.Onboarding.Role = role })
}

func (s *Store) SetPlan(ctx context.Context, plan string) {
	s.update(ctx, func(st *State) { st.Onboarding.Plan = plan })
}

func (s *Store) SetStatus(ctx context.Context, status enums.OnboardingStatus) error {
	if !status.IsValid() {
		return pkgerrors.Newf(pkgerrors.CodeValidation, "unknown onboarding status %q", status)
	}
	s.update(ctx, func(st *State) { st.Onboarding.Status = status })
	return nil
}

// ResetOnboarding restores empty answers and the not-started status.
func (s *Store) ResetOnboarding(ctx context.Context) {
	s.update(ctx, func(st *State) { st.Onboarding = initialOnboarding() })
}

// Answers is one submission of the onboarding wizard. Empty Role or Plan leaves
// the stored value alone.
type Answers struct {
	Reasons     []string `json:"reasons" validate:"max=20,dive,max=200"`
	OtherReason string   `json:"otherReason" validate:"max=500"`
	Role        string   `json:"role" validate:"max=100"`
	Plan        string   `json:"plan" validate:"max=100"`
}

// CompleteOnboarding stores the answers and marks onboarding completed.
func (s *Store) CompleteOnboarding(ctx context.Context, answers Answers) OnboardingState {
	reasons := ComposeReasons(answers.Reasons, answers.OtherReason)
	var out OnboardingState
	s.update(ctx, func(st *State) {
		st.Onboarding.Reasons = reasons
		if answers.Role != "" {
			st.Onboarding.Role = answers.Role
		}
		if answers.Plan != "" {
			st.Onboarding.Plan = answers.Plan
		}
		st.Onboarding.Status = enums.OnboardingStatusCompleted
		out = st.clone().Onboarding
	})
	s.logg.Info(ctx, "onboarding.completed")
	return out
}

// ComposeReasons returns selected without duplicates, followed by
// "Other: <text>" when other is not blank.
func ComposeReasons(selected []string, other string) []string {
	out := make([]string, 0, len(selected)+1)
	seen := make(map[string]struct{}, len(selected)+1)
	add := func(reason string) {
		if _, dup := seen[reason]; dup || reason == "" {
			return
		}
		seen[reason] = struct{}{}
		out = append(out, reason)
	}
	for _, reason := range selected {
		add(strings.TrimSpace(reason))
	}
	if other = strings.TrimSpace(other); other != "" {
		add(OtherReasonPrefix + other)
	}
	return out
}
