package appstate

import (
	"time"

	"github.com/angelmondragon/opusclip-demo/pkg/db/models"
	"github.com/angelmondragon/opusclip-demo/pkg/enums"
)

// State is the full snapshot handed to subscribers. Subscribers receive a copy
// and may keep or mutate it freely.
type State struct {
	Projects   ProjectsState   `json:"projects"`
	Editor     EditorState     `json:"editor"`
	Onboarding OnboardingState `json:"onboarding"`
}

// ProjectsState is a normalized entity map: every id in IDs has an entry in
// Entities and vice versa.
type ProjectsState struct {
	Entities map[string]models.Project `json:"entities"`
	IDs      []string                  `json:"ids"`
	Loading  bool                      `json:"loading"`
	Error    *string                   `json:"error"`
}

// List returns the cached projects in id order.
func (p ProjectsState) List() []models.Project {
	out := make([]models.Project, 0, len(p.IDs))
	for _, id := range p.IDs {
		if project, ok := p.Entities[id]; ok {
			out = append(out, project)
		}
	}
	return out
}

type EditorState struct {
	ActiveProjectID          *string           `json:"activeProjectId"`
	CurrentTime              float64           `json:"currentTime"`
	Duration                 float64           `json:"duration"`
	Playing                  bool              `json:"playing"`
	SelectedClipID           *string           `json:"selectedClipId"`
	CaptionsVisible          bool              `json:"captionsVisible"`
	ReframeEnabled           bool              `json:"reframeEnabled"`
	Aspect                   enums.AspectRatio `json:"aspect"`
	SelectionStart           *float64          `json:"selectionStart"`
	SelectionEnd             *float64          `json:"selectionEnd"`
	KeyboardShortcutsEnabled bool              `json:"keyboardShortcutsEnabled"`
	LastSavedAt              *time.Time        `json:"lastSavedAt"`
}

type OnboardingState struct {
	Reasons []string               `json:"reasons"`
	Role    string                 `json:"role"`
	Plan    string                 `json:"plan"`
	Status  enums.OnboardingStatus `json:"status"`
}

func initialProjects() ProjectsState {
	return ProjectsState{Entities: map[string]models.Project{}, IDs: []string{}}
}

func initialEditor() EditorState {
	return EditorState{
		CaptionsVisible:          true,
		Aspect:                   enums.AspectRatioVertical,
		KeyboardShortcutsEnabled: true,
	}
}

func initialOnboarding() OnboardingState {
	return OnboardingState{Reasons: []string{}, Status: enums.OnboardingStatusNotStarted}
}

// InitialState is the state of a fresh store before persisted preferences are applied.
func InitialState() State {
	return State{
		Projects:   initialProjects(),
		Editor:     initialEditor(),
		Onboarding: initialOnboarding(),
	}
}

// clone deep-copies every reference held by the state.
func (s State) clone() State {
	out := s

	out.Projects.Entities = make(map[string]models.Project, len(s.Projects.Entities))
	for id, p := range s.Projects.Entities {
		out.Projects.Entities[id] = p
	}
	out.Projects.IDs = append([]string{}, s.Projects.IDs...)
	out.Projects.Error = clonePtr(s.Projects.Error)

	out.Editor.ActiveProjectID = clonePtr(s.Editor.ActiveProjectID)
	out.Editor.SelectedClipID = clonePtr(s.Editor.SelectedClipID)
	out.Editor.SelectionStart = clonePtr(s.Editor.SelectionStart)
	out.Editor.SelectionEnd = clonePtr(s.Editor.SelectionEnd)
	out.Editor.LastSavedAt = clonePtr(s.Editor.LastSavedAt)

	out.Onboarding.Reasons = append([]string{}, s.Onboarding.Reasons...)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
