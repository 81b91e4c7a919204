package appstate

import (
	"context"
	"encoding/json"

	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	"github.com/angelmondragon/opusclip-demo/pkg/kvstore"
)

// StorageKey holds the persisted preference subset.
const StorageKey = "opus-clip-storage"

const persistVersion = 0

// persistedState is the whitelist of fields that survive a reload. Project
// entities, playback position and loading flags are session-only.
type persistedState struct {
	Reasons         []string               `json:"reasons"`
	Role            string                 `json:"role"`
	Plan            string                 `json:"plan"`
	Status          enums.OnboardingStatus `json:"status"`
	Aspect          enums.AspectRatio      `json:"aspect"`
	CaptionsVisible bool                   `json:"captionsVisible"`
	ReframeEnabled  bool                   `json:"reframeEnabled"`
}

type persistEnvelope struct {
	State   persistedState `json:"state"`
	Version int            `json:"version"`
}

func persistedFrom(s State) persistedState {
	return persistedState{
		Reasons:         append([]string{}, s.Onboarding.Reasons...),
		Role:            s.Onboarding.Role,
		Plan:            s.Onboarding.Plan,
		Status:          s.Onboarding.Status,
		Aspect:          s.Editor.Aspect,
		CaptionsVisible: s.Editor.CaptionsVisible,
		ReframeEnabled:  s.Editor.ReframeEnabled,
	}
}

func (p persistedState) applyTo(s *State) {
	if p.Reasons != nil {
		s.Onboarding.Reasons = append([]string{}, p.Reasons...)
	}
	s.Onboarding.Role = p.Role
	s.Onboarding.Plan = p.Plan
	if p.Status.IsValid() {
		s.Onboarding.Status = p.Status
	}
	if p.Aspect.IsValid() {
		s.Editor.Aspect = p.Aspect
	}
	s.Editor.CaptionsVisible = p.CaptionsVisible
	s.Editor.ReframeEnabled = p.ReframeEnabled
}

// restore merges the stored subset over initial. Fields missing from the stored
// document keep their initial values.
func restore(ctx context.Context, storage *kvstore.Store, initial State) State {
	raw := kvstore.Get[json.RawMessage](ctx, storage, StorageKey, nil)
	if len(raw) == 0 {
		return initial
	}

	envelope := persistEnvelope{State: persistedFrom(initial)}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return initial
	}
	envelope.State.applyTo(&initial)
	return initial
}

func save(ctx context.Context, storage *kvstore.Store, p persistedState) {
	kvstore.Set(ctx, storage, StorageKey, persistEnvelope{State: p, Version: persistVersion})
}
