package xml

const declPrefix = "<?xml"
const declTerminator = "?>"

// parseDeclaration parses "<?xml version=... encoding=... standalone=...?>"
// (spec §4.7). The three attributes are optional, may appear in any order,
// and each may appear at most once.
func (p *parser) parseDeclaration() (*Node, error) {
	startRow, startCol := p.cur.Row(), p.cur.Column()
	p.advanceTo(p.pos + len(declPrefix))

	n := newNode(KindDeclaration)
	n.row, n.col = startRow, startCol

	seen := map[string]bool{}
	for {
		p.skipWS()
		if stringEqual(p.buf, p.pos, declTerminator, false) {
			p.advanceTo(p.pos + len(declTerminator))
			return n, nil
		}
		if p.eof() {
			return nil, p.fail(ErrDeclarationMalformed, "declaration not terminated by ?>")
		}

		name, value, err := p.parseAttribute()
		if err != nil {
			// Report the failure as a malformed declaration, replacing the
			// attribute error parseAttribute recorded, so the returned error
			// and the Document's error slot agree.
			p.doc.ClearError()
			return nil, p.fail(ErrDeclarationMalformed, "malformed declaration attribute")
		}

		switch name {
		case "version":
			if seen[name] {
				return nil, p.fail(ErrDeclarationMalformed, "duplicate version attribute")
			}
			n.version = value
		case "encoding":
			if seen[name] {
				return nil, p.fail(ErrDeclarationMalformed, "duplicate encoding attribute")
			}
			n.encoding = value
		case "standalone":
			if seen[name] {
				return nil, p.fail(ErrDeclarationMalformed, "duplicate standalone attribute")
			}
			n.standalone = value
		default:
			return nil, p.fail(ErrDeclarationMalformed, "unrecognized declaration attribute "+name)
		}
		seen[name] = true
	}
}
