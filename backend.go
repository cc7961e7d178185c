package smallworld

// Backend is the drawing surface the interpreter renders into. It receives
// fully composed transforms and colors and never sees the scene tree.
type Backend interface {
	// DrawRectangle fills the rectangle (0, 0)-(size.X, size.Y) in the
	// local space described by t.
	DrawRectangle(c Color, size Vec2, t Transform)
	// DrawText draws s rasterized at pixelSize with its baseline at the
	// local origin of t.
	DrawText(c Color, pixelSize int, s string, t Transform)
	// Clear fills the whole viewport.
	Clear(c Color)
	// ViewportSize returns the drawable area in screen pixels.
	ViewportSize() (w, h float64)
}

// CommandType identifies the kind of recorded draw command.
type CommandType uint8

const (
	CommandClear     CommandType = iota // Clear
	CommandRectangle                    // DrawRectangle
	CommandText                         // DrawText
)

// String returns the command name used in debug output.
func (t CommandType) String() string {
	switch t {
	case CommandClear:
		return "clear"
	case CommandRectangle:
		return "rectangle"
	case CommandText:
		return "text"
	default:
		return "unknown"
	}
}

// DrawCommand is a single recorded backend call.
type DrawCommand struct {
	Type      CommandType
	Color     Color
	Size      Vec2 // CommandRectangle only
	PixelSize int  // CommandText only
	Text      string
	Transform Transform
}

// CommandBuffer is a Backend that records every call instead of drawing.
// The zero value has a zero-sized viewport.
type CommandBuffer struct {
	Commands []DrawCommand
	Width    float64
	Height   float64
}

// NewCommandBuffer returns an empty buffer reporting the given viewport size.
func NewCommandBuffer(w, h float64) *CommandBuffer {
	return &CommandBuffer{
		Commands: make([]DrawCommand, 0, defaultCommandCap),
		Width:    w,
		Height:   h,
	}
}

const defaultCommandCap = 256

// DrawRectangle records a CommandRectangle.
func (b *CommandBuffer) DrawRectangle(c Color, size Vec2, t Transform) {
	b.Commands = append(b.Commands, DrawCommand{Type: CommandRectangle, Color: c, Size: size, Transform: t})
}

// DrawText records a CommandText.
func (b *CommandBuffer) DrawText(c Color, pixelSize int, s string, t Transform) {
	b.Commands = append(b.Commands, DrawCommand{Type: CommandText, Color: c, PixelSize: pixelSize, Text: s, Transform: t})
}

// Clear records a CommandClear.
func (b *CommandBuffer) Clear(c Color) {
	b.Commands = append(b.Commands, DrawCommand{Type: CommandClear, Color: c})
}

// ViewportSize returns the configured viewport.
func (b *CommandBuffer) ViewportSize() (w, h float64) {
	return b.Width, b.Height
}

// Reset drops recorded commands, keeping the backing array.
func (b *CommandBuffer) Reset() {
	b.Commands = b.Commands[:0]
}

// Filter returns the recorded commands of type t, in call order.
func (b *CommandBuffer) Filter(t CommandType) []DrawCommand {
	var out []DrawCommand
	for _, cmd := range b.Commands {
		if cmd.Type == t {
			out = append(out, cmd)
		}
	}
	return out
}

// FindText returns the first text command drawing s.
func (b *CommandBuffer) FindText(s string) (DrawCommand, bool) {
	for _, cmd := range b.Commands {
		if cmd.Type == CommandText && cmd.Text == s {
			return cmd, true
		}
	}
	return DrawCommand{}, false
}
