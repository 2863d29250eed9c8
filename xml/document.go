package xml

// Document is the root of a parsed tree. It owns every descendant Node and
// records the toolkit's per-parse error state (spec §4.10's "error channel").
type Document struct {
	root    *Node
	err     *ParseError
	tabSize int
	hasBOM  bool
	enc     Encoding
}

func newDocument(cfg *config) *Document {
	return &Document{
		root:    newNode(KindDocument),
		tabSize: cfg.tabSize,
		enc:     cfg.defaultEncoding,
	}
}

// Root returns the synthetic Document node itself, whose children are the
// top-level parsed nodes: at most one Declaration, which must come first,
// then the root Element and any other top-level constructs. Parse requires
// at least one top-level Element; a second one is not rejected.
func (d *Document) Root() *Node { return d.root }

// RootElement returns the document's single root Element, or nil if parsing
// failed before one was found.
func (d *Document) RootElement() *Node {
	return d.root.FirstChildElement("")
}

// HasBOM reports whether a UTF-8 byte-order mark was consumed at the start
// of input.
func (d *Document) HasBOM() bool { return d.hasBOM }

// Encoding reports the encoding mode in effect at the end of parsing: the
// WithDefaultEncoding mode (UTF-8 unless set otherwise), switched to UTF-8
// or legacy pass-through by a Declaration's encoding attribute if present.
func (d *Document) Encoding() Encoding { return d.enc }

// Error returns the recorded parse error, or nil on success.
func (d *Document) Error() *ParseError { return d.err }

// ErrorID returns the recorded error's code, or ErrNone if there is none.
func (d *Document) ErrorID() ErrorCode {
	if d.err == nil {
		return ErrNone
	}
	return d.err.Code
}

// ErrorDesc returns the recorded error's human-readable message, or "".
func (d *Document) ErrorDesc() string {
	if d.err == nil {
		return ""
	}
	return d.err.Msg
}

// ErrorRow returns the 1-based row of the recorded error, or 0.
func (d *Document) ErrorRow() int {
	if d.err == nil {
		return 0
	}
	return d.err.Row
}

// ErrorCol returns the 1-based column of the recorded error, or 0.
func (d *Document) ErrorCol() int {
	if d.err == nil {
		return 0
	}
	return d.err.Col
}

// ClearError clears the recorded error, allowing the Document to be reused
// as a plain tree (parsing itself never resumes after an error).
func (d *Document) ClearError() { d.err = nil }

func (d *Document) setError(e *ParseError) {
	if d.err == nil {
		d.err = e
	}
}
