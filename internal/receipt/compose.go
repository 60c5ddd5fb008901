// internal/receipt/compose.go
package receipt

import (
	"bytes"
	"strings"

	"github.com/arifrahmanandika/kangserpis/internal/escpos"
	"github.com/arifrahmanandika/kangserpis/internal/model"
)

// builder accumulates one document: text lines interleaved with control
// sequences, sharing a single codec so the font state is threaded through
// the whole composition.
type builder struct {
	buf   bytes.Buffer
	codec *escpos.Codec
}

func newBuilder() *builder {
	return &builder{codec: escpos.NewCodec()}
}

// text appends raw text without a trailing newline.
func (b *builder) text(s string) {
	b.buf.WriteString(s)
}

// line appends a text line terminated by a line feed.
func (b *builder) line(s string) {
	b.buf.WriteString(s)
	b.buf.WriteByte('\n')
}

// control appends a raw control sequence.
func (b *builder) control(seq []byte) {
	b.buf.Write(seq)
}

// rule appends a full-width separator line.
func (b *builder) rule(char rune) {
	b.line(Rule(char, PaperWidth))
}

// labeled appends a "label       : value" line with the fixed label column.
func (b *builder) labeled(label, value string) {
	b.line(PadRight(label, LabelWidth) + ": " + value)
}

func (b *builder) String() string {
	return b.buf.String()
}

// writeHeader renders the shared store header: an emphasized store name
// padded to the full width, then centered address, header note and phone,
// each only when present.
func writeHeader(b *builder, profile *model.StoreProfile) {
	b.text("\n")
	if profile.StoreName != "" {
		b.control(b.codec.Emphasize())
		b.line(PadRight(profile.StoreName, PaperWidth))
		b.control(b.codec.Normalize())
	}
	if profile.StoreAddress != "" {
		b.line(Center(profile.StoreAddress, PaperWidth))
	}
	if profile.HeaderNote != "" {
		b.line(Center(profile.HeaderNote, PaperWidth))
	}
	if profile.StorePhone != "" {
		b.line(Center(profile.StorePhone, PaperWidth))
	}
}

// writeFooter renders the footer note, one centered line per embedded
// line break.
func writeFooter(b *builder, profile *model.StoreProfile) {
	if profile.FooterNote == "" {
		return
	}
	for _, note := range strings.Split(profile.FooterNote, "\n") {
		b.line(Center(note, PaperWidth))
	}
}

func orEmptyProfile(profile *model.StoreProfile) *model.StoreProfile {
	if profile == nil {
		return &model.StoreProfile{}
	}
	return profile
}
