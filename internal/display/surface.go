package display

import (
	"errors"
	"time"

	"github.com/ironsheep/image-annotate/internal/imaging"
)

// KeyCode identifies a key press. Printable keys report their code point,
// control keys their ASCII code, other keys an implementation-defined value
// above 255.
type KeyCode int

const (
	// NoKey is returned by PollKey when the wait elapses with nothing pressed.
	NoKey KeyCode = -1

	// KeyEscape is the code of the Escape key.
	KeyEscape KeyCode = 27
)

// Button names a pointer button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "none"
	}
}

// PointerKind classifies a pointer event.
type PointerKind uint8

const (
	PointerOther PointerKind = iota
	PointerDown
	PointerUp
	PointerMove
)

// String returns the kind name.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerMove:
		return "move"
	default:
		return "other"
	}
}

// PointerEvent is a pointer action reported in buffer pixel coordinates.
// Button is set for PointerDown and PointerUp only.
type PointerEvent struct {
	Kind   PointerKind
	Button Button
	X, Y   int
}

// PointerFunc receives pointer events. It is called on the goroutine that
// is inside PollKey.
type PointerFunc func(PointerEvent)

var (
	// ErrNoWindow is returned when an operation names a window that is not open.
	ErrNoWindow = errors.New("no such window")

	// ErrWindowOpen is returned when a second window is requested.
	ErrWindowOpen = errors.New("a window is already open")

	// ErrScreenLost is returned when the screen under an open window was
	// finalized by something other than DestroyAllWindows.
	ErrScreenLost = errors.New("screen lost")
)

// Surface is the display and input collaborator of the annotation loop.
type Surface interface {
	// CreateWindow opens a named window. Opening the same name twice is a
	// no-op.
	CreateWindow(name string) error

	// SetPointerCallback binds fn to pointer events inside the named window.
	SetPointerCallback(name string, fn PointerFunc) error

	// Show renders buf into the named window.
	Show(name string, buf *imaging.Buffer) error

	// PollKey waits up to timeout for a key press, dispatching pointer
	// events to the registered callback while it waits.
	PollKey(timeout time.Duration) KeyCode

	// DestroyAllWindows releases every window. Safe to call repeatedly.
	DestroyAllWindows()
}
