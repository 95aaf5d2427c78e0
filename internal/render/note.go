package render

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/invitekit/invitekit/internal/markup"
)

// noteMarkdown converts the invitation note through markdown so authors can
// use emphasis and line breaks. Raw HTML in the source is dropped by the
// converter, so the produced fragment is safe to embed verbatim.
var noteMarkdown = goldmark.New()

// renderNote produces the note element body. A conversion failure falls
// back to the escaped plain text; the note must never take the page down.
func renderNote(text string) *markup.Node {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var buf bytes.Buffer
	if err := noteMarkdown.Convert([]byte(text), &buf); err != nil {
		return markup.El("div", markup.Text(text)).WithClass("note__body")
	}
	return markup.El("div", markup.Raw(strings.TrimSpace(buf.String()))).WithClass("note__body")
}
