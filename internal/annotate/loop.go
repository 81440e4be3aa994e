// Package annotate runs the interactive annotation loop: it shows a pixel
// buffer in a named window, stamps a circle wherever the user right-clicks,
// and stops when Escape is pressed.
package annotate

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/ironsheep/image-annotate/internal/display"
	"github.com/ironsheep/image-annotate/internal/imaging"
)

// Marker geometry and loop timing.
const (
	MarkerRadius    = 100
	MarkerThickness = 2
	PollInterval    = 20 * time.Millisecond
)

// MarkerColor is pure red in the buffer's channel order.
var MarkerColor color.NRGBA = imaging.Red

// Event is a pointer event in buffer coordinates.
type Event = display.PointerEvent

// State is the lifecycle stage of a Loop.
type State uint8

const (
	Idle State = iota
	Running
	Terminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

var (
	// ErrNotInitialized is returned by Run before Initialize succeeded.
	ErrNotInitialized = errors.New("annotation loop not initialized")

	// ErrTerminated is returned when a finished loop is reused.
	ErrTerminated = errors.New("annotation loop terminated")
)

// Notifier is told about every circle drawn.
type Notifier interface {
	Marked(x, y int)
}

// Option configures a Loop.
type Option func(*Loop)

// WithNotifier reports each circle to n.
func WithNotifier(n Notifier) Option {
	return func(l *Loop) { l.notifier = n }
}

// WithDebug logs every pointer event.
func WithDebug(debug bool) Option {
	return func(l *Loop) { l.debug = debug }
}

// Loop owns a buffer and a window for the duration of an annotation
// session. It is not safe for concurrent use; every method runs on the
// goroutine that calls Run.
type Loop struct {
	surface display.Surface
	buf     *imaging.Buffer
	window  string
	state   State
	ready   bool
	markers int

	notifier Notifier
	debug    bool
}

// New creates an idle loop that renders through surface.
func New(surface display.Surface, opts ...Option) *Loop {
	l := &Loop{surface: surface}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Initialize opens the named window and binds the pointer callback. The
// loop takes ownership of buf.
func (l *Loop) Initialize(buf *imaging.Buffer, windowName string) error {
	if l.state == Terminated {
		return ErrTerminated
	}
	if l.state == Running {
		return fmt.Errorf("initialize while %s", l.state)
	}
	if buf == nil {
		return errors.New("nil buffer")
	}

	if err := l.surface.CreateWindow(windowName); err != nil {
		return fmt.Errorf("failed to create window %q: %w", windowName, err)
	}
	if err := l.surface.SetPointerCallback(windowName, l.OnPointerEvent); err != nil {
		l.surface.DestroyAllWindows()
		return fmt.Errorf("failed to bind pointer callback: %w", err)
	}

	l.buf = buf
	l.window = windowName
	l.ready = true
	log.Printf("Window %q ready (%dx%d)", windowName, buf.Width(), buf.Height())
	return nil
}

// OnPointerEvent draws a marker circle centred on every right-button press.
// Any other event leaves the buffer untouched.
func (l *Loop) OnPointerEvent(ev Event) {
	if l.debug {
		log.Printf("Pointer %s %s at (%d,%d)", ev.Kind, ev.Button, ev.X, ev.Y)
	}
	if l.buf == nil || ev.Kind != display.PointerDown || ev.Button != display.ButtonRight {
		return
	}

	imaging.DrawCircle(l.buf, image.Pt(ev.X, ev.Y), MarkerRadius, MarkerThickness, MarkerColor)
	l.markers++

	if l.notifier != nil {
		l.notifier.Marked(ev.X, ev.Y)
	}
}

// Run renders and polls until Escape is pressed, then destroys the window.
//
// Non-escape keys, pointer events and window-manager close requests keep
// the loop running.
func (l *Loop) Run() error {
	switch {
	case l.state == Terminated:
		return ErrTerminated
	case !l.ready:
		return ErrNotInitialized
	}

	l.state = Running
	defer l.terminate()

	for {
		if err := l.surface.Show(l.window, l.buf); err != nil {
			return fmt.Errorf("failed to render window %q: %w", l.window, err)
		}

		if key := l.surface.PollKey(PollInterval); key == display.KeyEscape {
			log.Printf("ESC key has been pressed")
			return nil
		}
	}
}

func (l *Loop) terminate() {
	l.state = Terminated
	l.ready = false
	l.surface.DestroyAllWindows()
	log.Printf("Window %q closed after %d marker(s)", l.window, l.markers)
}

// State returns the current lifecycle stage.
func (l *Loop) State() State {
	return l.state
}

// Markers returns the number of circles drawn so far.
func (l *Loop) Markers() int {
	return l.markers
}

// Status summarizes the session for a status line.
func (l *Loop) Status() string {
	return fmt.Sprintf("markers: %d", l.markers)
}
