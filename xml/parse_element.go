package xml

// parseElement parses a complete "<name attrs...>...</name>" or
// "<name attrs.../>" construct, recursing into itself (via parseNode) for
// nested Elements (spec §4.4).
func (p *parser) parseElement() (*Node, error) {
	startRow, startCol := p.cur.Row(), p.cur.Column()
	p.advanceTo(p.pos + 1) // consume '<'

	name, newPos, ok := readName(p.buf, p.pos, p.enc)
	if !ok || name == "" {
		return nil, p.fail(ErrElementNameMissing, "expected element name after '<'")
	}
	p.advanceTo(newPos)

	n := newNode(KindElement)
	n.name = name
	n.row, n.col = startRow, startCol

	for {
		p.skipWS()
		if p.eof() {
			return nil, p.fail(ErrElementMalformed, "unexpected EOF in start tag of <"+name+">")
		}
		if stringEqual(p.buf, p.pos, "/>", false) {
			p.advanceTo(p.pos + 2)
			return n, nil
		}
		if p.peek() == '>' {
			p.advanceTo(p.pos + 1)
			return p.parseElementContent(n)
		}

		attrName, attrValue, err := p.parseAttribute()
		if err != nil {
			return nil, err
		}
		n.SetAttr(attrName, attrValue)
	}
}

// parseElementContent parses the children of an already-opened element up
// to and including its matching end tag.
func (p *parser) parseElementContent(n *Node) (*Node, error) {
	for {
		if p.eof() {
			return nil, p.fail(ErrEndTagMismatch, "unexpected EOF, expected </"+n.name+">")
		}
		if p.peek() == 0 {
			if p.pos != len(p.buf)-1 {
				return nil, p.fail(ErrUnexpectedEOF, "embedded NUL byte")
			}
			return nil, p.fail(ErrEndTagMismatch, "unexpected EOF, expected </"+n.name+">")
		}
		if p.peek() == '<' && p.pos+1 < len(p.buf) && p.buf[p.pos+1] == '/' {
			if err := p.parseEndTag(n.name); err != nil {
				return nil, err
			}
			return n, nil
		}

		kind, _ := p.identify()
		if kind == KindDeclaration {
			return nil, p.fail(ErrDocumentNonRoot, "declaration not valid inside element content")
		}
		child, err := p.parseNode(kind)
		if err != nil {
			return nil, err
		}
		if child != nil {
			n.appendChild(child)
		}
	}
}

func (p *parser) parseEndTag(expected string) error {
	p.advanceTo(p.pos + 2) // consume '</'
	name, newPos, ok := readName(p.buf, p.pos, p.enc)
	if !ok {
		return p.fail(ErrEndTagMismatch, "expected end-tag name")
	}
	p.advanceTo(newPos)
	if name != expected {
		return p.fail(ErrEndTagMismatch, "end tag </"+name+"> does not match start tag <"+expected+">")
	}
	p.skipWS()
	if p.peek() != '>' {
		return p.fail(ErrEndTagMismatch, "expected '>' to close end tag </"+expected+">")
	}
	p.advanceTo(p.pos + 1)
	return nil
}
