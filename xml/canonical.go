package xml

import "sort"

// Canonicalize serializes doc using a restricted, deterministic form aimed
// at byte-stable comparison and signing pipelines: attributes sorted
// alphabetically by name, no self-closing empty elements (always
// "<name></name>"), and no pretty-print indentation or inter-node
// whitespace. This is a basic canonicalization — attribute order and
// self-closing suppression — grounded on the teacher's writeCanonical and
// the pack's standalone ucarion/c14n (sortattr), not a full implementation
// of the W3C XML-C14N recommendation (no namespace axis, since this
// toolkit is deliberately not namespace-aware per spec §1).
func Canonicalize(doc *Document) ([]byte, error) {
	s := &serializer{canonical: true}
	var buf countingBuffer
	s.w = &buf
	for c := doc.root.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Kind() == KindDeclaration {
			continue // canonical form omits the XML declaration, as C14N does
		}
		if err := s.writeNode(c, 0); err != nil {
			return nil, err
		}
	}
	return buf.b, nil
}

type countingBuffer struct{ b []byte }

func (c *countingBuffer) Write(p []byte) (int, error) {
	c.b = append(c.b, p...)
	return len(p), nil
}

// sortedAttrs returns attrs sorted alphabetically by name, the way C14N
// mandates canonical attribute ordering.
func sortedAttrs(attrs []*Attribute) []*Attribute {
	out := make([]*Attribute, len(attrs))
	copy(out, attrs)
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
