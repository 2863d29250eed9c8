package xml

// parser is the shared scanning state threaded through every node parser.
// It is not safe for concurrent use, matching spec §5's single-threaded
// core: all mutation of a buffer/cursor pair must be serialized by the
// caller.
type parser struct {
	buf []byte
	pos int
	cur cursor
	enc Encoding
	cfg *config
	doc *Document
}

// advanceTo moves p.pos to newPos, updating the row/column cursor over the
// consumed range. newPos must be >= p.pos.
func (p *parser) advanceTo(newPos int) {
	if newPos > p.pos {
		p.cur.advance(p.buf[p.pos:newPos], newPos-p.pos)
	}
	p.pos = newPos
}

func (p *parser) fail(code ErrorCode, msg string) error {
	e := newParseError(code, msg, p.cur)
	p.doc.setError(e)
	return e
}

func (p *parser) eof() bool { return p.pos >= len(p.buf) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.buf[p.pos]
}

// skipWS advances past whitespace (and a leading BOM, at position 0),
// updating the cursor.
func (p *parser) skipWS() {
	newPos := skipWhitespace(p.buf, p.pos, p.enc)
	if p.pos == 0 && p.enc == EncodingUTF8 && stringEqual(p.buf, 0, string(utf8BOM), false) {
		p.doc.hasBOM = true
	}
	p.advanceTo(newPos)
}

// Parse parses a complete XML document from buf and returns the resulting
// tree. A non-nil error is always also available via the returned
// Document's Error()/ErrorID()/ErrorRow()/ErrorCol() accessors.
func Parse(buf []byte, opts ...Option) (*Document, error) {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	doc := newDocument(cfg)
	p := &parser{
		buf: buf,
		cur: newCursor(cfg.tabSize),
		enc: cfg.defaultEncoding,
		cfg: cfg,
		doc: doc,
	}

	declSeen := false
	sawContent := false

	for {
		p.skipWS()
		if p.eof() {
			break
		}
		if p.peek() == 0 {
			// A NUL not at the very end of the buffer is malformed input;
			// one at the end is treated as a C-style terminator.
			if p.pos != len(p.buf)-1 {
				return doc, p.fail(ErrUnexpectedEOF, "embedded NUL byte")
			}
			break
		}

		kind, ok := p.identify()
		if !ok {
			return doc, p.fail(ErrGeneric, "unrecognized construct")
		}

		if kind == KindDeclaration && (declSeen || sawContent) {
			return doc, p.fail(ErrDocumentNonRoot, "declaration must be the first item in the document")
		}

		node, err := p.parseNode(kind)
		if err != nil {
			return doc, err
		}
		if node == nil {
			continue // text that condensed to nothing
		}

		doc.root.appendChild(node)
		if kind == KindDeclaration {
			declSeen = true
			if enc := node.encoding; enc != "" {
				if isUTF8EncodingName(enc) {
					p.enc = EncodingUTF8
				} else {
					p.enc = EncodingLegacy
				}
			}
		} else {
			sawContent = true
		}
	}

	doc.enc = p.enc

	if doc.err == nil && doc.RootElement() == nil {
		return doc, p.fail(ErrDocumentEmpty, "document has no root element")
	}

	if doc.err != nil {
		return doc, doc.err
	}
	return doc, nil
}

// parseNode dispatches to the kind-specific parser once identify() has
// already determined which one applies.
func (p *parser) parseNode(kind Kind) (*Node, error) {
	switch kind {
	case KindDeclaration:
		return p.parseDeclaration()
	case KindComment:
		return p.parseComment()
	case KindText:
		return p.parseTextNode()
	case KindElement:
		return p.parseElement()
	case KindUnknown:
		return p.parseUnknown()
	default:
		return nil, p.fail(ErrGeneric, "internal: unhandled node kind")
	}
}

// identify classifies the construct starting at p.pos, which is always
// either '<' (a bracketed construct) or the start of a text run (spec
// §4.3). When not positioned at '<', identify reports KindText: the run up
// to the next '<' is parsed as a Text node.
func (p *parser) identify() (Kind, bool) {
	if p.peek() != '<' {
		return KindText, true
	}
	if stringEqual(p.buf, p.pos, "<?xml", false) {
		return KindDeclaration, true
	}
	if stringEqual(p.buf, p.pos, "<!--", false) {
		return KindComment, true
	}
	if stringEqual(p.buf, p.pos, "<![CDATA[", false) {
		return KindText, true
	}
	if p.pos+1 < len(p.buf) && p.buf[p.pos+1] == '!' {
		return KindUnknown, true
	}
	if p.pos+1 < len(p.buf) {
		r, n := decodeRune(p.buf, p.pos+1, p.enc)
		if n > 0 && isNameStart(r, p.enc) {
			return KindElement, true
		}
	}
	return KindUnknown, true
}

func isUTF8EncodingName(s string) bool {
	switch s {
	case "UTF-8", "utf-8", "UTF8", "utf8", "Utf-8":
		return true
	}
	return len(s) >= 4 && (equalFoldASCII(s, "UTF-8") || equalFoldASCII(s, "UTF8"))
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}
