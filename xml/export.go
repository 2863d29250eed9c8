package xml

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"
)

// ToMap converts n into a JSON-friendly shape mirroring the teacher's
// MapXML output: an Element becomes a map with "@attr" keys for
// attributes and one entry per distinct child tag name (a single value,
// or a []any if the tag repeats); a sole Text child collapses the Element
// to its decoded string. Comments and Unknown nodes are omitted, matching
// the teacher's choice to keep the default shape free of document noise.
func ToMap(n *Node) any {
	switch n.Kind() {
	case KindText:
		return n.Value()
	case KindElement:
		return elementToMap(n)
	default:
		return nil
	}
}

func elementToMap(n *Node) any {
	out := map[string]any{}
	for _, a := range n.Attrs() {
		out["@"+a.Name()] = a.Value()
	}

	if only, ok := soleTextChild(n); ok && len(out) == 0 {
		return only.Value()
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c.Kind() {
		case KindText:
			if existing, ok := out["#text"]; ok {
				out["#text"] = existing.(string) + c.Value()
			} else {
				out["#text"] = c.Value()
			}
		case KindElement:
			val := elementToMap(c)
			if existing, ok := out[c.Value()]; ok {
				if list, ok := existing.([]any); ok {
					out[c.Value()] = append(list, val)
				} else {
					out[c.Value()] = []any{existing, val}
				}
			} else {
				out[c.Value()] = val
			}
		}
	}
	return out
}

// ToJSON renders n (typically a root Element) as a JSON string via ToMap.
func ToJSON(n *Node) (string, error) {
	b, err := json.Marshal(ToMap(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ToCSV writes nodes (typically repeated sibling Elements, e.g. matches of
// a QueryAll call) as CSV: one column per distinct direct child tag name
// across all nodes, columns sorted alphabetically for determinism, cell
// values taken from each node's same-named child text (adapted from the
// teacher's export.go ToCSV, using encoding/csv for RFC 4180 quoting
// instead of hand-rolled escaping).
func ToCSV(w io.Writer, nodes []*Node) error {
	if len(nodes) == 0 {
		return nil
	}

	headerSet := map[string]bool{}
	for _, n := range nodes {
		n.ForEachChild("", func(c *Node) bool {
			if c.Kind() == KindElement && !headerSet[c.Value()] {
				headerSet[c.Value()] = true
			}
			return true
		})
	}
	headers := make([]string, 0, len(headerSet))
	for h := range headerSet {
		headers = append(headers, h)
	}
	sort.Strings(headers)

	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, n := range nodes {
		row := make([]string, len(headers))
		for i, h := range headers {
			if child := n.FirstChildNamed(h); child != nil {
				row[i] = elementText(child)
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
