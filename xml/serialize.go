package xml

import (
	"fmt"
	"io"
	"strings"
)

// EncodeText escapes s for safe inclusion in XML character data or an
// attribute value: '&' '<' '>' '"' '\'' and any control byte below 0x20
// are escaped; a pre-existing well-formed "&#x...;" numeric reference is
// passed through unchanged rather than being re-escaped (spec §4.9).
func EncodeText(s string) string {
	var sb strings.Builder
	i := 0
	for i < len(s) {
		if s[i] == '&' && looksLikeHexRef(s, i) {
			end := strings.IndexByte(s[i:], ';')
			sb.WriteString(s[i : i+end+1])
			i += end + 1
			continue
		}
		switch s[i] {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '"':
			sb.WriteString("&quot;")
		case '\'':
			sb.WriteString("&apos;")
		default:
			if s[i] < 0x20 {
				fmt.Fprintf(&sb, "&#x%02X;", s[i])
			} else {
				sb.WriteByte(s[i])
			}
		}
		i++
	}
	return sb.String()
}

// looksLikeHexRef reports whether s[i:] begins a well-formed "&#x...;"
// numeric character reference.
func looksLikeHexRef(s string, i int) bool {
	if !strings.HasPrefix(s[i:], "&#x") && !strings.HasPrefix(s[i:], "&#X") {
		return false
	}
	rest := s[i+3:]
	semi := strings.IndexByte(rest, ';')
	if semi <= 0 {
		return false
	}
	for j := 0; j < semi; j++ {
		if !isHexDigit(rest[j]) {
			return false
		}
	}
	return true
}

type serializer struct {
	w           io.Writer
	indentWidth int
	pretty      bool
	canonical   bool
}

// WriteTo serializes the document's children (Declaration, root Element,
// any top-level Comments/Unknown) to w.
func (d *Document) WriteTo(w io.Writer, opts ...Option) (int64, error) {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cw := &countingWriter{w: w}
	s := &serializer{w: cw, indentWidth: cfg.indentWidth, pretty: cfg.prettyPrint}
	for c := d.root.FirstChild(); c != nil; c = c.NextSibling() {
		if err := s.writeNode(c, 0); err != nil {
			return cw.n, err
		}
		if _, err := io.WriteString(cw, "\n"); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

// String serializes the document to a string.
func (d *Document) String(opts ...Option) string {
	var sb strings.Builder
	_, _ = d.WriteTo(&sb, opts...)
	return sb.String()
}

// String serializes n and its descendants on their own, independent of any
// enclosing Document — useful for printing a single query match.
func (n *Node) String(opts ...Option) string {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	var sb strings.Builder
	s := &serializer{w: &sb, indentWidth: cfg.indentWidth, pretty: cfg.prettyPrint}
	_ = s.writeNode(n, 0)
	return sb.String()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func (s *serializer) indent(depth int) string {
	if s.canonical || !s.pretty {
		return ""
	}
	return strings.Repeat(" ", depth*s.indentWidth)
}

func (s *serializer) writeNode(n *Node, depth int) error {
	switch n.Kind() {
	case KindDeclaration:
		return s.writeDeclaration(n)
	case KindComment:
		return s.writeLine(depth, "<!--"+n.raw+"-->")
	case KindUnknown:
		return s.writeLine(depth, n.raw)
	case KindText:
		return s.writeText(n, depth)
	case KindElement:
		return s.writeElement(n, depth)
	default:
		return fmt.Errorf("xmlkit: cannot serialize node kind %s", n.Kind())
	}
}

func (s *serializer) writeLine(depth int, content string) error {
	_, err := io.WriteString(s.w, s.indent(depth)+content)
	return err
}

func (s *serializer) writeDeclaration(n *Node) error {
	var sb strings.Builder
	sb.WriteString("<?xml")
	if n.version != "" {
		fmt.Fprintf(&sb, " version=%s", quoteAttr(n.version))
	}
	if n.encoding != "" {
		fmt.Fprintf(&sb, " encoding=%s", quoteAttr(n.encoding))
	}
	if n.standalone != "" {
		fmt.Fprintf(&sb, " standalone=%s", quoteAttr(n.standalone))
	}
	sb.WriteString("?>")
	_, err := io.WriteString(s.w, sb.String())
	return err
}

func (s *serializer) writeText(n *Node, depth int) error {
	if n.cdata {
		return s.writeLine(depth, "<![CDATA["+n.text+"]]>")
	}
	return s.writeLine(depth, EncodeText(n.text))
}

// quoteAttr renders an escaped, quoted attribute value ready for inclusion
// after "name=" in a start tag: double
// quotes unless the value itself contains one, in which case single quotes
// are used instead (spec §4.9).
func quoteAttr(value string) string {
	escaped := EncodeText(value)
	if strings.Contains(value, "\"") {
		return "'" + escaped + "'"
	}
	return "\"" + escaped + "\""
}

func (s *serializer) writeElement(n *Node, depth int) error {
	var sb strings.Builder
	sb.WriteString(s.indent(depth))
	sb.WriteByte('<')
	sb.WriteString(n.name)

	attrs := n.Attrs()
	if s.canonical {
		attrs = sortedAttrs(attrs)
	}
	for _, a := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name())
		sb.WriteByte('=')
		sb.WriteString(quoteAttr(a.Value()))
	}

	if n.FirstChild() == nil {
		if s.canonical {
			sb.WriteString("></")
			sb.WriteString(n.name)
			sb.WriteByte('>')
		} else {
			sb.WriteString("/>")
		}
		_, err := io.WriteString(s.w, sb.String())
		return err
	}

	if !s.canonical && len(attrs) == 0 {
		if only, ok := soleTextChild(n); ok {
			sb.WriteByte('>')
			if only.cdata {
				sb.WriteString("<![CDATA[" + only.text + "]]>")
			} else {
				sb.WriteString(EncodeText(only.text))
			}
			sb.WriteString("</")
			sb.WriteString(n.name)
			sb.WriteByte('>')
			_, err := io.WriteString(s.w, sb.String())
			return err
		}
	}

	sb.WriteByte('>')
	if _, err := io.WriteString(s.w, sb.String()); err != nil {
		return err
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if s.pretty && !s.canonical {
			if _, err := io.WriteString(s.w, "\n"); err != nil {
				return err
			}
		}
		if err := s.writeNode(c, depth+1); err != nil {
			return err
		}
	}
	if s.pretty && !s.canonical {
		if _, err := io.WriteString(s.w, "\n"+s.indent(depth)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(s.w, "</"+n.name+">")
	return err
}

// soleTextChild reports whether n has exactly one child and it is a Text
// node, returning it.
func soleTextChild(n *Node) (*Node, bool) {
	c := n.FirstChild()
	if c == nil || c.NextSibling() != nil || c.Kind() != KindText {
		return nil, false
	}
	return c, true
}
