package appstate

import "context"

// Key is one keydown event. Code follows the DOM KeyboardEvent.code values.
type Key struct {
	Code    string `json:"code" validate:"required"`
	Ctrl    bool   `json:"ctrl"`
	Meta    bool   `json:"meta"`
	InInput bool   `json:"inInput"`
}

// Shortcut names the action a key triggered.
type Shortcut string

const (
	ShortcutNone       Shortcut = ""
	ShortcutTogglePlay Shortcut = "toggle-play"
	ShortcutSeekBack   Shortcut = "seek-back"
	ShortcutSeekAhead  Shortcut = "seek-ahead"
	ShortcutMarkIn     Shortcut = "mark-in"
	ShortcutMarkOut    Shortcut = "mark-out"
	ShortcutSplit      Shortcut = "split"
	ShortcutSave       Shortcut = "save"
)

// HandleKey dispatches an editor shortcut. Keys typed into a text field and all
// keys while shortcuts are disabled are ignored. Ctrl/Cmd+S saves and does not split.
func (s *Store) HandleKey(ctx context.Context, key Key) (Shortcut, error) {
	if key.InInput {
		return ShortcutNone, nil
	}
	enabled := false
	s.read(func(st *State) { enabled = st.Editor.KeyboardShortcutsEnabled })
	if !enabled {
		return ShortcutNone, nil
	}

	switch key.Code {
	case "Space", "KeyK":
		s.TogglePlay(ctx)
		return ShortcutTogglePlay, nil
	case "KeyJ":
		s.Seek(ctx, -s.seekStep)
		return ShortcutSeekBack, nil
	case "KeyL":
		s.Seek(ctx, s.seekStep)
		return ShortcutSeekAhead, nil
	case "KeyI":
		s.MarkIn(ctx)
		return ShortcutMarkIn, nil
	case "KeyO":
		s.MarkOut(ctx)
		return ShortcutMarkOut, nil
	case "KeyS":
		if key.Ctrl || key.Meta {
			return ShortcutSave, s.SaveProject(ctx)
		}
		s.SplitAtPlayhead(ctx)
		return ShortcutSplit, nil
	}
	return ShortcutNone, nil
}
