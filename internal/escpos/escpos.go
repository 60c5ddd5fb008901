// internal/escpos/escpos.go
package escpos

// Commands contains the ESC/POS command subset consumed by the receipt
// composers. The byte values must stay exact to remain compatible with
// the deployed thermal printers.
var Commands = struct {
	// Basic commands
	Initialize []byte

	// Text size
	SizeNormal     []byte
	SizeDoubleBoth []byte

	// Paper handling
	LineFeed []byte
}{
	Initialize:     []byte{0x1B, 0x40},       // ESC @
	SizeNormal:     []byte{0x1D, 0x21, 0x00}, // GS ! 0
	SizeDoubleBoth: []byte{0x1D, 0x21, 0x11}, // GS ! 17, double width & height
	LineFeed:       []byte{0x0A},             // LF
}

// FontState is the two-state font model of the target printer.
type FontState int

const (
	FontNormal FontState = iota
	FontEmphasized
)

// Codec maps logical print directives to raw control sequences and tracks
// the font state across one composed document. A fresh Codec is used per
// document; the state is never global.
type Codec struct {
	state FontState
}

// NewCodec returns a codec in the normal font state.
func NewCodec() *Codec {
	return &Codec{state: FontNormal}
}

// State returns the current font state.
func (c *Codec) State() FontState {
	return c.state
}

// Reset emits the device-reset sequence and forces the state to normal.
func (c *Codec) Reset() []byte {
	c.state = FontNormal
	return Commands.Initialize
}

// Emphasize emits the double width and height selection, prefixed by a
// device reset so a stale printer state cannot bleed into the emphasized
// block. Calling while already emphasized re-emits the sequence.
func (c *Codec) Emphasize() []byte {
	c.state = FontEmphasized
	seq := make([]byte, 0, len(Commands.Initialize)+len(Commands.SizeDoubleBoth))
	seq = append(seq, Commands.Initialize...)
	seq = append(seq, Commands.SizeDoubleBoth...)
	return seq
}

// Normalize emits the standard size selection and returns the state to
// normal. Composers that emphasize must normalize before the document's
// final separator; leaving the printer emphasized carries over into the
// next unrelated print job.
func (c *Codec) Normalize() []byte {
	c.state = FontNormal
	return Commands.SizeNormal
}
