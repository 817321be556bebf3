// spans.go defines the typed inline and block values produced by the tokenizer and segmenters.
package md

import (
	"fmt"
	"strings"
)

// SpanType indicates how a span of inline text is emphasized.
type SpanType int

const (
	SpanPlain  SpanType = iota // literal text
	SpanBold                   // **bold**, children hold the nested tokens
	SpanItalic                 // *italic*, text is kept literal
)

var spanTypeNames = map[SpanType]string{
	SpanPlain:  "plain",
	SpanBold:   "bold",
	SpanItalic: "italic",
}

// String returns the lowercase name of the span type.
func (t SpanType) String() string {
	if name, ok := spanTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("SpanType(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t SpanType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *SpanType) UnmarshalText(b []byte) error {
	for k, v := range spanTypeNames {
		if v == string(b) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown span type %q", string(b))
}

// Span is a fragment of inline text carrying emphasis metadata.
type Span struct {
	Type     SpanType `json:"type"`
	Text     string   `json:"text,omitempty"`     // set for SpanPlain and SpanItalic
	Children []Span   `json:"children,omitempty"` // set for SpanBold
}

// Plain returns a plain text span.
func Plain(text string) Span {
	return Span{Type: SpanPlain, Text: text}
}

// Bold returns a bold span wrapping the given children.
func Bold(children ...Span) Span {
	return Span{Type: SpanBold, Children: children}
}

// Italic returns an italic span.
func Italic(text string) Span {
	return Span{Type: SpanItalic, Text: text}
}

// PlainText concatenates the text of spans with all emphasis markers removed.
func PlainText(spans []Span) string {
	var sb strings.Builder
	writePlainText(&sb, spans)
	return sb.String()
}

func writePlainText(sb *strings.Builder, spans []Span) {
	for _, s := range spans {
		if s.Type == SpanBold {
			writePlainText(sb, s.Children)
			continue
		}
		sb.WriteString(s.Text)
	}
}

// BlockType indicates whether a block is a paragraph or a blank-line spacer.
type BlockType int

const (
	BlockParagraph BlockType = iota // a run of non-blank lines
	BlockSpacer                     // one blank line
)

// String returns the lowercase name of the block type.
func (t BlockType) String() string {
	switch t {
	case BlockParagraph:
		return "paragraph"
	case BlockSpacer:
		return "spacer"
	}
	return fmt.Sprintf("BlockType(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t BlockType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *BlockType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "paragraph":
		*t = BlockParagraph
	case "spacer":
		*t = BlockSpacer
	default:
		return fmt.Errorf("unknown block type %q", string(b))
	}
	return nil
}

// Block is a paragraph of inline spans or a spacer.
type Block struct {
	Type  BlockType `json:"type"`
	Spans []Span    `json:"spans,omitempty"` // set for BlockParagraph
}

// Paragraph returns a paragraph block.
func Paragraph(spans ...Span) Block {
	return Block{Type: BlockParagraph, Spans: spans}
}

// Spacer returns a spacer block.
func Spacer() Block {
	return Block{Type: BlockSpacer}
}

// Section is a titled block of raw markdown content.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
