package xml

// Kind tags the variant a Node represents. The parser dispatches on Kind
// instead of using virtual method dispatch — see DESIGN.md's note on the
// "Polymorphic node hierarchy → tagged variant" redesign.
type Kind int

const (
	KindDocument Kind = iota
	KindElement
	KindText
	KindComment
	KindDeclaration
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "Document"
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	case KindDeclaration:
		return "Declaration"
	case KindUnknown:
		return "Unknown"
	default:
		return "Invalid"
	}
}

// Node is a single element of the parsed tree. Child edges are owning;
// parent and sibling edges are non-owning back-references computed from
// tree position, so a Node is safely garbage collected once unlinked from
// its parent's child list.
type Node struct {
	kind Kind

	parent                   *Node
	firstChild, lastChild    *Node
	prevSibling, nextSibling *Node

	// Element
	name  string
	attrs *AttributeSet

	// Text
	text  string
	cdata bool

	// Comment / Unknown verbatim payload
	raw string

	// Declaration
	version, encoding, standalone string

	row, col int // 1-based source location recorded at parse time

	tag any // opaque user payload, the supplemented analogue of TinyXML's userData
}

func newNode(kind Kind) *Node {
	return &Node{kind: kind}
}

// Kind reports which variant this node is.
func (n *Node) Kind() Kind { return n.kind }

// Parent returns the containing node, or nil for a Document root.
func (n *Node) Parent() *Node { return n.parent }

// FirstChild returns the first child, or nil if there are none.
func (n *Node) FirstChild() *Node { return n.firstChild }

// LastChild returns the last child, or nil if there are none.
func (n *Node) LastChild() *Node { return n.lastChild }

// NextSibling returns the next sibling in source order, or nil.
func (n *Node) NextSibling() *Node { return n.nextSibling }

// PrevSibling returns the previous sibling in source order, or nil.
func (n *Node) PrevSibling() *Node { return n.prevSibling }

// FirstChildNamed returns the first child Element whose tag name equals
// name, or nil. Children of other kinds are never matched.
func (n *Node) FirstChildNamed(name string) *Node {
	for c := n.firstChild; c != nil; c = c.nextSibling {
		if c.kind == KindElement && c.name == name {
			return c
		}
	}
	return nil
}

// NextSiblingNamed returns the next Element sibling named name, or nil.
func (n *Node) NextSiblingNamed(name string) *Node {
	for s := n.nextSibling; s != nil; s = s.nextSibling {
		if s.kind == KindElement && s.name == name {
			return s
		}
	}
	return nil
}

// PrevSiblingNamed returns the previous Element sibling named name, or nil.
func (n *Node) PrevSiblingNamed(name string) *Node {
	for s := n.prevSibling; s != nil; s = s.prevSibling {
		if s.kind == KindElement && s.name == name {
			return s
		}
	}
	return nil
}

// FirstChildElement returns the first child that is an Element, optionally
// restricted to a given tag name (pass "" for any tag).
func (n *Node) FirstChildElement(name string) *Node {
	for c := n.firstChild; c != nil; c = c.nextSibling {
		if c.kind == KindElement && (name == "" || c.name == name) {
			return c
		}
	}
	return nil
}

// ForEachChild calls fn for every child in source order, stopping early if
// fn returns false. name, if non-empty, restricts iteration to Elements
// with that tag name.
func (n *Node) ForEachChild(name string, fn func(*Node) bool) {
	for c := n.firstChild; c != nil; c = c.nextSibling {
		if name != "" && !(c.kind == KindElement && c.name == name) {
			continue
		}
		if !fn(c) {
			return
		}
	}
}

// Children returns a snapshot slice of all children in source order.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.firstChild; c != nil; c = c.nextSibling {
		out = append(out, c)
	}
	return out
}

// Row returns the 1-based source row recorded when this node was parsed.
func (n *Node) Row() int { return n.row }

// Column returns the 1-based source column recorded when this node was parsed.
func (n *Node) Column() int { return n.col }

// Tag returns the opaque payload attached via SetTag, or nil.
func (n *Node) Tag() any { return n.tag }

// SetTag attaches an opaque payload to the node for caller use (e.g. a
// resolved cache entry in the query engine). xmlkit never reads it itself.
func (n *Node) SetTag(v any) { n.tag = v }

// Value returns the kind-specific primary string: the tag name for an
// Element, the decoded text for Text, the interior for Comment, and the
// verbatim contents for Unknown. Document and Declaration return "".
func (n *Node) Value() string {
	switch n.kind {
	case KindElement:
		return n.name
	case KindText:
		return n.text
	case KindComment, KindUnknown:
		return n.raw
	}
	return ""
}

// SetValue sets the kind-specific primary string; see Value.
func (n *Node) SetValue(v string) {
	switch n.kind {
	case KindElement:
		n.name = v
	case KindText:
		n.text = v
	case KindComment, KindUnknown:
		n.raw = v
	}
}

// IsCDATA reports whether a Text node was sourced from a CDATA section.
func (n *Node) IsCDATA() bool { return n.kind == KindText && n.cdata }

// Declaration accessors.
func (n *Node) DeclVersion() string    { return n.version }
func (n *Node) DeclEncoding() string   { return n.encoding }
func (n *Node) DeclStandalone() string { return n.standalone }

// Element returns n and true if n is an Element, else nil and false.
func (n *Node) Element() (*Node, bool) { return kindGuard(n, KindElement) }

// Text returns n and true if n is a Text node, else nil and false.
func (n *Node) Text() (*Node, bool) { return kindGuard(n, KindText) }

// Comment returns n and true if n is a Comment, else nil and false.
func (n *Node) Comment() (*Node, bool) { return kindGuard(n, KindComment) }

// Declaration returns n and true if n is a Declaration, else nil and false.
func (n *Node) Declaration() (*Node, bool) { return kindGuard(n, KindDeclaration) }

// Unknown returns n and true if n is an Unknown construct, else nil and false.
func (n *Node) Unknown() (*Node, bool) { return kindGuard(n, KindUnknown) }

func kindGuard(n *Node, k Kind) (*Node, bool) {
	if n != nil && n.kind == k {
		return n, true
	}
	return nil, false
}

// Attr returns the value of attribute name and whether it is present. Only
// Elements carry attributes; any other kind reports not-found.
func (n *Node) Attr(name string) (string, bool) {
	if n.attrs == nil {
		return "", false
	}
	return n.attrs.Get(name)
}

// SetAttr sets attribute name to value, replacing any prior value while
// preserving the attribute's original position (or appending if new).
// Only meaningful on Elements.
func (n *Node) SetAttr(name, value string) {
	if n.attrs == nil {
		n.attrs = newAttributeSet()
	}
	n.attrs.Set(name, value)
}

// RemoveAttr removes attribute name, if present.
func (n *Node) RemoveAttr(name string) {
	if n.attrs != nil {
		n.attrs.Remove(name)
	}
}

// Attrs returns a snapshot slice of attributes in source/insertion order.
func (n *Node) Attrs() []*Attribute {
	if n.attrs == nil {
		return nil
	}
	return n.attrs.Slice()
}

// AttrLen returns the number of attributes on this node.
func (n *Node) AttrLen() int {
	if n.attrs == nil {
		return 0
	}
	return n.attrs.Len()
}

// appendChild links child as the new last child of n, setting up the
// parent/sibling back-references. child must not already be linked
// elsewhere.
func (n *Node) appendChild(child *Node) {
	child.parent = n
	child.prevSibling = n.lastChild
	child.nextSibling = nil
	if n.lastChild != nil {
		n.lastChild.nextSibling = child
	} else {
		n.firstChild = child
	}
	n.lastChild = child
}

// Attribute is one name/value pair on an Element, linked to its neighbors
// within the same element's attribute set.
type Attribute struct {
	name, value string
	prev, next  *Attribute
}

func (a *Attribute) Name() string     { return a.name }
func (a *Attribute) Value() string    { return a.value }
func (a *Attribute) Next() *Attribute { return a.next }
func (a *Attribute) Prev() *Attribute { return a.prev }

// AttributeSet is an ordered, name-indexed collection of Attributes. It
// preserves insertion order for iteration while offering O(1) lookup, and
// enforces name uniqueness (a later Set with the same name overwrites the
// value without changing position).
type AttributeSet struct {
	first, last *Attribute
	index       map[string]*Attribute
}

func newAttributeSet() *AttributeSet {
	return &AttributeSet{index: make(map[string]*Attribute)}
}

// Set inserts or overwrites the value for name.
func (s *AttributeSet) Set(name, value string) {
	if a, ok := s.index[name]; ok {
		a.value = value
		return
	}
	a := &Attribute{name: name, value: value}
	if s.last != nil {
		s.last.next = a
		a.prev = s.last
	} else {
		s.first = a
	}
	s.last = a
	s.index[name] = a
}

// Get returns the value for name and whether it was present.
func (s *AttributeSet) Get(name string) (string, bool) {
	a, ok := s.index[name]
	if !ok {
		return "", false
	}
	return a.value, true
}

// Remove deletes name from the set, relinking its neighbors.
func (s *AttributeSet) Remove(name string) {
	a, ok := s.index[name]
	if !ok {
		return
	}
	if a.prev != nil {
		a.prev.next = a.next
	} else {
		s.first = a.next
	}
	if a.next != nil {
		a.next.prev = a.prev
	} else {
		s.last = a.prev
	}
	delete(s.index, name)
}

// Len returns the number of attributes in the set.
func (s *AttributeSet) Len() int { return len(s.index) }

// First returns the first attribute in insertion order, or nil if empty.
func (s *AttributeSet) First() *Attribute { return s.first }

// Slice returns a snapshot of attributes in insertion order.
func (s *AttributeSet) Slice() []*Attribute {
	out := make([]*Attribute, 0, len(s.index))
	for a := s.first; a != nil; a = a.next {
		out = append(out, a)
	}
	return out
}
