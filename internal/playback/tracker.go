// Package playback follows a playback position through a song's lyric lines.
//
// A Tracker is fed the player's elapsed time once per frame or tick and
// reports which line and token to show. It keeps a cursor into the line
// list so that both normal playback and seeks in either direction cost
// only the distance moved.
//
// A Tracker is not safe for concurrent use. Discard it (or call Load) when
// the song changes.
package playback

import (
	"math"

	"github.com/simonhull/ultrastar/internal/lyrics"
)

// State describes what the display should show.
type State int

const (
	// StateHidden: nothing to show yet, or no lyrics at all.
	StateHidden State = iota
	// StatePreview: the first line is about to start and is shown early.
	StatePreview
	// StateActive: a line is being sung.
	StateActive
	// StatePastEnd: every line has finished.
	StatePastEnd
)

func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StatePreview:
		return "preview"
	case StateActive:
		return "active"
	case StatePastEnd:
		return "past-end"
	default:
		return "unknown"
	}
}

// TokenView is one token of the displayed line.
type TokenView struct {
	Text   string
	Active bool
}

// View is what the lyric overlay should render.
type View struct {
	State State

	// LineIndex is -1 while hidden or previewing and len(lines) past the end.
	LineIndex int

	CurrentText string
	NextText    string

	// Tokens of the displayed line; ActiveToken indexes into it or is -1.
	Tokens      []TokenView
	ActiveToken int
}

// Tracker resolves the active line and token for a playback position.
type Tracker struct {
	cfg   config
	lines []lyrics.Line

	currentLine     int
	renderedLine    int
	lastActiveToken int

	view View
}

// NewTracker returns a tracker over lines.
func NewTracker(lines []lyrics.Line, opts ...Option) *Tracker {
	t := &Tracker{cfg: defaultConfig()}
	for _, opt := range opts {
		opt(&t.cfg)
	}
	t.Load(lines)
	return t
}

// Load replaces the lines and resets all cursor state.
func (t *Tracker) Load(lines []lyrics.Line) {
	t.lines = lines
	t.Reset()
	if len(lines) > 0 {
		t.view.NextText = lines[0].Text
	}
}

// Reset clears cursor and render state without dropping the lines.
func (t *Tracker) Reset() {
	t.currentLine = -1
	t.clearRender()
	t.view = View{State: StateHidden, LineIndex: -1, ActiveToken: -1}
}

// Lines returns the tracked lines.
func (t *Tracker) Lines() []lyrics.Line { return t.lines }

// View returns the last computed view.
func (t *Tracker) View() View { return t.view }

// Update moves the cursor to currentMs and returns the resulting view.
// changed is false when the state, line and active token are all the same
// as after the previous call.
func (t *Tracker) Update(currentMs float64) (view View, changed bool) {
	before := t.key()

	n := len(t.lines)
	switch {
	case n == 0:
		t.hide(StateHidden, -1)

	case currentMs < t.lines[0].StartMs-t.cfg.leadInMs:
		t.hide(StateHidden, -1)

	case currentMs < t.lines[0].StartMs:
		t.currentLine = -1
		t.show(StatePreview, -1, 0, currentMs)

	default:
		idx := min(max(t.currentLine, 0), n-1)
		for idx > 0 && currentMs < t.lines[idx-1].EndMs {
			idx--
		}
		for idx < n && currentMs >= t.lines[idx].EndMs {
			idx++
		}
		if idx >= n {
			t.hide(StatePastEnd, n)
			break
		}
		t.currentLine = idx
		t.show(StateActive, idx, idx, currentMs)
	}

	return t.view, t.key() != before
}

type viewKey struct {
	state State
	line  int
	token int
}

func (t *Tracker) key() viewKey {
	return viewKey{t.view.State, t.view.LineIndex, t.view.ActiveToken}
}

func (t *Tracker) hide(state State, lineIndex int) {
	t.currentLine = lineIndex
	t.clearRender()
	t.view = View{State: state, LineIndex: lineIndex, ActiveToken: -1}
}

// show displays lines[lineIdx] with tokens resolved against currentMs.
// reported is the index exposed in the view (-1 for a preview).
func (t *Tracker) show(state State, reported, lineIdx int, currentMs float64) {
	line := t.lines[lineIdx]
	t.view.State = state
	t.view.LineIndex = reported
	t.view.CurrentText = line.Text
	t.view.NextText = ""
	if lineIdx+1 < len(t.lines) {
		t.view.NextText = t.lines[lineIdx+1].Text
	}

	active := FindActiveTokenIndex(line.Tokens, currentMs+t.cfg.highlightOffsetMs, t.cfg.toleranceMs)
	if t.renderedLine == lineIdx && t.lastActiveToken == active {
		return
	}
	t.renderedLine = lineIdx
	t.lastActiveToken = active
	t.view.ActiveToken = active
	t.view.Tokens = tokenViews(line, active)
}

func (t *Tracker) clearRender() {
	t.renderedLine = -1
	t.lastActiveToken = math.MinInt
}

func tokenViews(line lyrics.Line, active int) []TokenView {
	if len(line.Tokens) == 0 {
		return nil
	}
	views := make([]TokenView, len(line.Tokens))
	for i, tok := range line.Tokens {
		views[i] = TokenView{Text: tok.Text, Active: i == active}
	}
	return views
}

// FindActiveTokenIndex returns the token to highlight at currentMs, or -1.
//
// A token is active within [start-tol, end+tol). In a gap the earlier
// token stays highlighted until the next window opens, and after the last
// token it stays highlighted.
func FindActiveTokenIndex(tokens []lyrics.Token, currentMs, toleranceMs float64) int {
	if len(tokens) == 0 || currentMs < tokens[0].StartMs-toleranceMs {
		return -1
	}

	for i, tok := range tokens {
		if currentMs >= tok.StartMs-toleranceMs && currentMs < tok.EndMs+toleranceMs {
			return i
		}
	}

	for i := 1; i < len(tokens); i++ {
		if currentMs < tokens[i].StartMs-toleranceMs {
			return i - 1
		}
	}
	return len(tokens) - 1
}
