// Package display shows pixel buffers in a terminal and turns keyboard and
// mouse input into key codes and pointer events.
//
// The terminal window fills the screen. The picture is scaled to fit, never
// enlarged, and drawn with upper-half block characters so that each cell
// carries two vertically stacked pixels (foreground on top, background
// below). The bottom row is a status line.
//
// Input is read by a helper goroutine that only forwards tcell events into
// a channel. PollKey drains that channel on the caller's goroutine, so the
// pointer callback never runs concurrently with the caller.
package display
