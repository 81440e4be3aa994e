package display

import (
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ironsheep/image-annotate/internal/imaging"
)

// statusRows is the number of rows reserved below the picture.
const statusRows = 1

// Terminal is a Surface backed by a tcell screen. It supports one window.
type Terminal struct {
	screen tcell.Screen
	window string
	open   bool

	events chan tcell.Event
	quit   chan struct{}

	pointer PointerFunc
	buttons tcell.ButtonMask

	lost bool

	view    Viewport
	resized bool
	frame   frameCache
	hover   image.Point
	hovers  bool
	status  func() string
}

// NewTerminal creates a Terminal on the controlling terminal. The screen is
// not touched until CreateWindow.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen creates a Terminal on an uninitialized screen, such
// as a tcell simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// SetStatusHook installs a function whose result is appended to the status
// line on every frame.
func (t *Terminal) SetStatusHook(fn func() string) {
	t.status = fn
}

// CreateWindow initializes the screen, enables mouse reporting and starts
// the input pump.
func (t *Terminal) CreateWindow(name string) error {
	if t.open {
		if name == t.window {
			return nil
		}
		return fmt.Errorf("%w: %q", ErrWindowOpen, t.window)
	}

	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	t.screen.EnableMouse()
	t.screen.HideCursor()
	t.screen.Clear()

	t.window = name
	t.open = true
	t.lost = false
	t.buttons = 0
	t.hovers = false
	t.frame = frameCache{}
	t.events = make(chan tcell.Event, 100)
	t.quit = make(chan struct{})

	go pump(t.screen, t.events, t.quit)
	return nil
}

// pump forwards screen events until the screen is finalized.
func pump(screen tcell.Screen, events chan<- tcell.Event, quit <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// SetPointerCallback binds fn to the named window. A nil fn unbinds.
func (t *Terminal) SetPointerCallback(name string, fn PointerFunc) error {
	if err := t.checkWindow(name); err != nil {
		return err
	}
	t.pointer = fn
	return nil
}

// Show draws buf and the status line, then flushes the screen.
func (t *Terminal) Show(name string, buf *imaging.Buffer) error {
	if err := t.checkWindow(name); err != nil {
		return err
	}
	if t.lost {
		return fmt.Errorf("%w: %q", ErrScreenLost, name)
	}

	w, h := t.screen.Size()
	view := FitViewport(buf.Width(), buf.Height(), w, h-statusRows)
	if view != t.view || t.resized {
		t.screen.Clear()
		t.view = view
		t.resized = false
	}

	paintPicture(t.screen, view, t.frame.scaled(buf, view))
	paintStatus(t.screen, w, h-1, t.statusLine(buf))
	t.screen.Show()
	return nil
}

// PollKey waits up to timeout for a key. Pointer, resize and other events
// that arrive meanwhile are handled without ending the wait. If the screen
// went away under the window, PollKey returns NoKey and the next Show fails
// with ErrScreenLost.
func (t *Terminal) PollKey(timeout time.Duration) KeyCode {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				t.events = nil
				t.lost = true
				return NoKey
			}
			if key, isKey := t.dispatch(ev); isKey {
				return key
			}
		case <-timer.C:
			return NoKey
		}
	}
}

// DestroyAllWindows finalizes the screen and stops the input pump.
func (t *Terminal) DestroyAllWindows() {
	if !t.open {
		return
	}
	close(t.quit)
	if !t.lost {
		t.screen.Fini()
	}
	t.open = false
	t.lost = false
	t.window = ""
	t.pointer = nil
	t.events = nil
}

func (t *Terminal) checkWindow(name string) error {
	if !t.open || name != t.window {
		return fmt.Errorf("%w: %q", ErrNoWindow, name)
	}
	return nil
}

// dispatch handles one screen event and reports whether it was a key.
func (t *Terminal) dispatch(ev tcell.Event) (KeyCode, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return keyCode(ev), true
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventResize:
		t.screen.Sync()
		t.resized = true
	}
	return NoKey, false
}

// keyCode maps a tcell key to a KeyCode.
func keyCode(ev *tcell.EventKey) KeyCode {
	if ev.Key() == tcell.KeyRune {
		return KeyCode(ev.Rune())
	}
	return KeyCode(ev.Key())
}

var buttonMap = []struct {
	mask   tcell.ButtonMask
	button Button
}{
	{tcell.Button1, ButtonLeft},
	{tcell.Button2, ButtonRight},
	{tcell.Button3, ButtonMiddle},
}

const buttonMask = tcell.Button1 | tcell.Button2 | tcell.Button3

// handleMouse turns tcell's button state snapshots into down/up/move
// transitions and forwards them in buffer coordinates.
func (t *Terminal) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	state := ev.Buttons() & buttonMask
	pressed := state &^ t.buttons
	released := t.buttons &^ state
	t.buttons = state

	p, inside := t.view.ToImage(cx, cy)
	t.hover, t.hovers = p, inside
	if !inside || t.pointer == nil {
		return
	}

	emitted := false
	for _, b := range buttonMap {
		if released&b.mask != 0 {
			t.pointer(PointerEvent{Kind: PointerUp, Button: b.button, X: p.X, Y: p.Y})
			emitted = true
		}
	}
	for _, b := range buttonMap {
		if pressed&b.mask != 0 {
			t.pointer(PointerEvent{Kind: PointerDown, Button: b.button, X: p.X, Y: p.Y})
			emitted = true
		}
	}
	if !emitted {
		kind := PointerMove
		if ev.Buttons()&^buttonMask != 0 {
			kind = PointerOther
		}
		t.pointer(PointerEvent{Kind: kind, X: p.X, Y: p.Y})
	}
}

func (t *Terminal) statusLine(buf *imaging.Buffer) string {
	line := fmt.Sprintf(" %s | %dx%d", t.window, buf.Width(), buf.Height())
	if t.view.Scaled() {
		line += fmt.Sprintf(" @%dx%d", t.view.PixW, t.view.PixH)
	}

	if t.hovers {
		if c, err := imaging.SampleColor(buf, t.hover.X, t.hover.Y); err == nil {
			line += fmt.Sprintf(" | (%d,%d) %s", t.hover.X, t.hover.Y, c)
		}
	}

	if t.status != nil {
		if extra := t.status(); extra != "" {
			line += " | " + extra
		}
	}
	return line + " | ESC quits"
}
