package appstate

import (
	"context"
	"time"

	"github.com/angelmondragon/opusclip-demo/pkg/db/models"
	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
)

// SetActiveProject sets the project being edited. An empty id clears it.
func (s *Store) SetActiveProject(ctx context.Context, id string) {
	s.update(ctx, func(st *State) { st.Editor.ActiveProjectID = optionalString(id) })
}

func (s *Store) SetCurrentTime(ctx context.Context, t float64) {
	s.update(ctx, func(st *State) { st.Editor.CurrentTime = t })
}

func (s *Store) SetDuration(ctx context.Context, d float64) {
	s.update(ctx, func(st *State) { st.Editor.Duration = d })
}

func (s *Store) Play(ctx context.Context) {
	s.update(ctx, func(st *State) { st.Editor.Playing = true })
}

func (s *Store) Pause(ctx context.Context) {
	s.update(ctx, func(st *State) { st.Editor.Playing = false })
}

func (s *Store) TogglePlay(ctx context.Context) {
	s.update(ctx, func(st *State) { st.Editor.Playing = !st.Editor.Playing })
}

// SelectClip selects a clip. An empty id clears the selection.
func (s *Store) SelectClip(ctx context.Context, id string) {
	s.update(ctx, func(st *State) { st.Editor.SelectedClipID = optionalString(id) })
}

func (s *Store) ToggleCaptions(ctx context.Context) {
	s.update(ctx, func(st *State) { st.Editor.CaptionsVisible = !st.Editor.CaptionsVisible })
}

func (s *Store) ToggleReframe(ctx context.Context) {
	s.update(ctx, func(st *State) { st.Editor.ReframeEnabled = !st.Editor.ReframeEnabled })
}

func (s *Store) SetAspect(ctx context.Context, aspect enums.AspectRatio) error {
	if !aspect.IsValid() {
		return pkgerrors.Newf(pkgerrors.CodeValidation, "unsupported aspect ratio %q", aspect)
	}
	s.update(ctx, func(st *State) { st.Editor.Aspect = aspect })
	return nil
}

// SetSelectionStart sets the in point; nil clears it.
func (s *Store) SetSelectionStart(ctx context.Context, t *float64) {
	s.update(ctx, func(st *State) { st.Editor.SelectionStart = clonePtr(t) })
}

// SetSelectionEnd sets the out point; nil clears it.
func (s *Store) SetSelectionEnd(ctx context.Context, t *float64) {
	s.update(ctx, func(st *State) { st.Editor.SelectionEnd = clonePtr(t) })
}

func (s *Store) ClearSelection(ctx context.Context) {
	s.update(ctx, func(st *State) {
		st.Editor.SelectionStart = nil
		st.Editor.SelectionEnd = nil
	})
}

// MarkIn copies the playhead into the selection start.
func (s *Store) MarkIn(ctx context.Context) {
	s.update(ctx, func(st *State) {
		t := st.Editor.CurrentTime
		st.Editor.SelectionStart = &t
	})
}

// MarkOut copies the playhead into the selection end.
func (s *Store) MarkOut(ctx context.Context) {
	s.update(ctx, func(st *State) {
		t := st.Editor.CurrentTime
		st.Editor.SelectionEnd = &t
	})
}

func (s *Store) ToggleKeyboardShortcuts(ctx context.Context) {
	s.update(ctx, func(st *State) { st.Editor.KeyboardShortcutsEnabled = !st.Editor.KeyboardShortcutsEnabled })
}

// SplitAtPlayhead is not implemented; it only records the request.
func (s *Store) SplitAtPlayhead(ctx context.Context) {
	var at float64
	s.read(func(st *State) { at = st.Editor.CurrentTime })
	s.logg.Info(s.logg.WithField(ctx, "current_time", at), "editor.split_unimplemented")
}

// Seek is not implemented; it only records the requested offset.
func (s *Store) Seek(ctx context.Context, offset time.Duration) {
	s.logg.Info(s.logg.WithField(ctx, "offset_seconds", offset.Seconds()), "editor.seek_unimplemented")
}

// SaveProject waits the save delay and stamps LastSavedAt. No editor field is
// written anywhere.
func (s *Store) SaveProject(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return pkgerrors.Wrap(pkgerrors.CodeCanceled, ctx.Err(), "save canceled")
	case <-s.clock.After(s.saveDelay):
	}

	now := s.clock.Now().UTC()
	s.update(ctx, func(st *State) { st.Editor.LastSavedAt = &now })
	return nil
}

// OpenProject loads a project into the editor and rewinds the session.
func (s *Store) OpenProject(ctx context.Context, id string) (models.Project, error) {
	project, err := s.data.GetProject(ctx, id)
	if err != nil {
		return models.Project{}, err
	}

	s.update(ctx, func(st *State) {
		st.Editor.ActiveProjectID = optionalString(project.ID)
		st.Editor.Duration = project.Duration
		st.Editor.CurrentTime = 0
		st.Editor.Playing = false
		st.Editor.SelectedClipID = nil
		st.Editor.SelectionStart = nil
		st.Editor.SelectionEnd = nil
	})
	s.logg.Info(s.logg.WithProjectID(ctx, project.ID), "editor.project_opened")
	return project, nil
}

// CloseProject ends the editing session. Preferences are kept.
func (s *Store) CloseProject(ctx context.Context) {
	s.update(ctx, func(st *State) {
		st.Editor.ActiveProjectID = nil
		st.Editor.Duration = 0
		st.Editor.CurrentTime = 0
		st.Editor.Playing = false
		st.Editor.SelectedClipID = nil
		st.Editor.SelectionStart = nil
		st.Editor.SelectionEnd = nil
	})
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
