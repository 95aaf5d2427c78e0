package markup

import (
	"io"
	"strings"
)

// voidElements are serialized without a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
)

// WriteHTML serializes the tree rooted at n. Attribute and style ordering is
// deterministic, so identical trees serialize to identical bytes.
func (n *Node) WriteHTML(w io.Writer) error {
	sw := &stickyWriter{w: w}
	n.writeHTML(sw)
	return sw.err
}

// Render serializes the tree to a string.
func (n *Node) Render() string {
	var b strings.Builder
	_ = n.WriteHTML(&b)
	return b.String()
}

// stickyWriter remembers the first write error so the recursion can stay
// unconditional.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) writeString(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}

func (n *Node) writeHTML(w *stickyWriter) {
	if n == nil {
		return
	}

	switch n.kind {
	case KindText:
		w.writeString(textEscaper.Replace(n.text))
		return
	case KindRaw:
		w.writeString(n.text)
		return
	}

	w.writeString("<")
	w.writeString(n.tag)

	if len(n.classes) > 0 {
		w.writeString(` class="`)
		w.writeString(attrEscaper.Replace(strings.Join(n.classes, " ")))
		w.writeString(`"`)
	}
	for _, key := range n.sortedAttrKeys() {
		w.writeString(" ")
		w.writeString(key)
		w.writeString(`="`)
		w.writeString(attrEscaper.Replace(n.attrs[key]))
		w.writeString(`"`)
	}
	if style := n.styleAttr(); style != "" {
		w.writeString(` style="`)
		w.writeString(attrEscaper.Replace(style))
		w.writeString(`"`)
	}

	if voidElements[n.tag] {
		w.writeString("/>")
		return
	}

	w.writeString(">")
	for _, c := range n.children {
		c.writeHTML(w)
	}
	w.writeString("</")
	w.writeString(n.tag)
	w.writeString(">")
}
