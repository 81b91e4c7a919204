package appstate

import (
	"context"
	"testing"
	"time"

	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorSetters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.store

	s.SetActiveProject(ctx, "project-1")
	s.SetDuration(ctx, 90)
	s.SetCurrentTime(ctx, 12.5)
	s.SelectClip(ctx, "clip-1-2")
	s.TogglePlay(ctx)

	st := s.Snapshot().Editor
	require.NotNil(t, st.ActiveProjectID)
	assert.Equal(t, "project-1", *st.ActiveProjectID)
	assert.Equal(t, float64(90), st.Duration)
	assert.Equal(t, 12.5, st.CurrentTime)
	require.NotNil(t, st.SelectedClipID)
	assert.Equal(t, "clip-1-2", *st.SelectedClipID)
	assert.True(t, st.Playing)

	s.TogglePlay(ctx)
	s.SelectClip(ctx, "")
	s.SetActiveProject(ctx, "")
	s.ToggleKeyboardShortcuts(ctx)

	st = s.Snapshot().Editor
	assert.False(t, st.Playing)
	assert.Nil(t, st.SelectedClipID)
	assert.Nil(t, st.ActiveProjectID)
	assert.False(t, st.KeyboardShortcutsEnabled)
}

func TestSetAspectRejectsUnknownRatio(t *testing.T) {
	f := newFixture(t)
	err := f.store.SetAspect(context.Background(), enums.AspectRatio("4:3"))
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	assert.Equal(t, enums.AspectRatioVertical, f.store.Snapshot().Editor.Aspect)
}

func TestMarkInOutSnapshotsPlayhead(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.store

	s.SetCurrentTime(ctx, 4)
	s.MarkIn(ctx)
	s.SetCurrentTime(ctx, 9)
	s.MarkOut(ctx)
	s.SetCurrentTime(ctx, 20)

	st := s.Snapshot().Editor
	require.NotNil(t, st.SelectionStart)
	require.NotNil(t, st.SelectionEnd)
	assert.Equal(t, float64(4), *st.SelectionStart)
	assert.Equal(t, float64(9), *st.SelectionEnd)

	s.ClearSelection(ctx)
	st = s.Snapshot().Editor
	assert.Nil(t, st.SelectionStart)
	assert.Nil(t, st.SelectionEnd)

	start := 1.0
	s.SetSelectionStart(ctx, &start)
	start = 2
	assert.Equal(t, 1.0, *s.Snapshot().Editor.SelectionStart)
	s.SetSelectionEnd(ctx, nil)
	assert.Nil(t, s.Snapshot().Editor.SelectionEnd)
}

func TestSaveProjectWaitsThenStamps(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- f.store.SaveProject(ctx) }()

	require.NoError(t, f.clock.BlockUntilContext(ctx, 1))
	assert.Nil(t, f.store.Snapshot().Editor.LastSavedAt)

	f.clock.Advance(DefaultSaveDelay)
	require.NoError(t, <-done)

	saved := f.store.Snapshot().Editor.LastSavedAt
	require.NotNil(t, saved)
	assert.Equal(t, testEpoch.Add(DefaultSaveDelay), *saved)
}

func TestSaveProjectCanceled(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.store.SaveProject(ctx)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeCanceled))
	assert.Nil(t, f.store.Snapshot().Editor.LastSavedAt)
}

func TestSplitAtPlayheadChangesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.SetCurrentTime(ctx, 30)
	before := f.store.Snapshot()

	f.store.SplitAtPlayhead(ctx)
	assert.Equal(t, before, f.store.Snapshot())
}

func TestOpenAndCloseProject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.store

	s.SetCurrentTime(ctx, 99)
	s.Play(ctx)
	s.ToggleReframe(ctx)

	project, err := s.OpenProject(ctx, "project-2")
	require.NoError(t, err)

	st := s.Snapshot().Editor
	require.NotNil(t, st.ActiveProjectID)
	assert.Equal(t, "project-2", *st.ActiveProjectID)
	assert.Equal(t, project.Duration, st.Duration)
	assert.Zero(t, st.CurrentTime)
	assert.False(t, st.Playing)
	assert.True(t, st.ReframeEnabled)

	s.CloseProject(ctx)
	st = s.Snapshot().Editor
	assert.Nil(t, st.ActiveProjectID)
	assert.Zero(t, st.Duration)
	assert.True(t, st.ReframeEnabled)

	_, err = s.OpenProject(ctx, "missing")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	assert.Nil(t, s.Snapshot().Editor.ActiveProjectID)
}

func TestHandleKey(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.store

	shortcut, err := s.HandleKey(ctx, Key{Code: "Space"})
	require.NoError(t, err)
	assert.Equal(t, ShortcutTogglePlay, shortcut)
	assert.True(t, s.Snapshot().Editor.Playing)

	shortcut, _ = s.HandleKey(ctx, Key{Code: "KeyK"})
	assert.Equal(t, ShortcutTogglePlay, shortcut)
	assert.False(t, s.Snapshot().Editor.Playing)

	s.SetCurrentTime(ctx, 3)
	shortcut, _ = s.HandleKey(ctx, Key{Code: "KeyI"})
	assert.Equal(t, ShortcutMarkIn, shortcut)
	s.SetCurrentTime(ctx, 8)
	shortcut, _ = s.HandleKey(ctx, Key{Code: "KeyO"})
	assert.Equal(t, ShortcutMarkOut, shortcut)
	st := s.Snapshot().Editor
	assert.Equal(t, float64(3), *st.SelectionStart)
	assert.Equal(t, float64(8), *st.SelectionEnd)

	shortcut, _ = s.HandleKey(ctx, Key{Code: "KeyJ"})
	assert.Equal(t, ShortcutSeekBack, shortcut)
	shortcut, _ = s.HandleKey(ctx, Key{Code: "KeyL"})
	assert.Equal(t, ShortcutSeekAhead, shortcut)
	assert.Equal(t, float64(8), s.Snapshot().Editor.CurrentTime)

	shortcut, _ = s.HandleKey(ctx, Key{Code: "KeyS"})
	assert.Equal(t, ShortcutSplit, shortcut)

	shortcut, _ = s.HandleKey(ctx, Key{Code: "KeyQ"})
	assert.Equal(t, ShortcutNone, shortcut)

	shortcut, _ = s.HandleKey(ctx, Key{Code: "Space", InInput: true})
	assert.Equal(t, ShortcutNone, shortcut)
	assert.False(t, s.Snapshot().Editor.Playing)

	s.ToggleKeyboardShortcuts(ctx)
	shortcut, _ = s.HandleKey(ctx, Key{Code: "Space"})
	assert.Equal(t, ShortcutNone, shortcut)
	assert.False(t, s.Snapshot().Editor.Playing)
}

func TestHandleKeyCtrlSSaves(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	type result struct {
		shortcut Shortcut
		err      error
	}
	done := make(chan result, 1)
	go func() {
		shortcut, err := f.store.HandleKey(ctx, Key{Code: "KeyS", Meta: true})
		done <- result{shortcut, err}
	}()

	require.NoError(t, f.clock.BlockUntilContext(ctx, 1))
	f.clock.Advance(DefaultSaveDelay)
	got := <-done
	require.NoError(t, got.err)
	assert.Equal(t, ShortcutSave, got.shortcut)
	assert.NotNil(t, f.store.Snapshot().Editor.LastSavedAt)
}
