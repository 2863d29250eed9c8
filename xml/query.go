package xml

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// QueryFunction is a custom predicate usable in a query path via the
// "func:name" segment syntax, analogous to the teacher's
// RegisterQueryFunction/features_query.go.
type QueryFunction func(tagName string) bool

var (
	queryFunctionsMu sync.RWMutex
	queryFunctions   = map[string]QueryFunction{}
)

// RegisterQueryFunction registers fn under name for later use in query
// paths as "func:name".
func RegisterQueryFunction(name string, fn QueryFunction) {
	queryFunctionsMu.Lock()
	defer queryFunctionsMu.Unlock()
	queryFunctions[name] = fn
}

func getQueryFunction(name string) (QueryFunction, bool) {
	queryFunctionsMu.RLock()
	defer queryFunctionsMu.RUnlock()
	fn, ok := queryFunctions[name]
	return fn, ok
}

// QueryAll navigates the tree rooted at n following a slash-separated path,
// generalizing the teacher's OrderedMap-based QueryAll to the parsed Node
// tree (spec §6's "navigate ... optionally filtered by tag name" accessors,
// composed into a small path language):
//
//   - "a/b/c"       descend through child elements named a, then b, then c
//   - "a/*"         every child element of a, any name
//   - "//c"         every descendant element named c, at any depth
//   - "a[x=1]"      children named a whose attribute or child text x equals "1"
//   - "a[2]"        the third (0-based) child named a
//   - "a/func:name" children of a for which a registered QueryFunction matches
//
// An empty path returns []*Node{n}.
func QueryAll(n *Node, path string) ([]*Node, error) {
	if n == nil {
		return nil, fmt.Errorf("xmlkit: query on nil node")
	}
	if path == "" {
		return []*Node{n}, nil
	}
	if strings.HasPrefix(path, "//") {
		return findAllRecursively(n, strings.TrimPrefix(path, "//")), nil
	}

	candidates := []*Node{n}
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}
		key, filter, idx := parseQuerySegment(segment)

		var matched []*Node
		for _, c := range candidates {
			matched = append(matched, resolveSegment(c, key)...)
		}

		switch {
		case filter != nil:
			var kept []*Node
			for _, m := range matched {
				if matchFilter(m, filter) {
					kept = append(kept, m)
				}
			}
			matched = kept
		case idx >= 0:
			if idx < len(matched) {
				matched = matched[idx : idx+1]
			} else {
				matched = nil
			}
		}

		if len(matched) == 0 {
			return nil, nil
		}
		candidates = matched
	}
	return candidates, nil
}

// Query returns the first match of QueryAll, or an error if there is none.
func Query(n *Node, path string) (*Node, error) {
	res, err := QueryAll(n, path)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("xmlkit: no node matched %q", path)
	}
	return res[0], nil
}

// resolveSegment returns the children of c selected by one path key: a
// literal tag name, "*" for any Element child, "#text" for Text children,
// or "func:name" for a registered predicate over child tag names.
func resolveSegment(c *Node, key string) []*Node {
	switch {
	case key == "*":
		var out []*Node
		c.ForEachChild("", func(ch *Node) bool {
			if ch.Kind() == KindElement {
				out = append(out, ch)
			}
			return true
		})
		return out
	case key == "#text":
		var out []*Node
		c.ForEachChild("", func(ch *Node) bool {
			if ch.Kind() == KindText {
				out = append(out, ch)
			}
			return true
		})
		return out
	case strings.HasPrefix(key, "func:"):
		fn, ok := getQueryFunction(strings.TrimPrefix(key, "func:"))
		if !ok {
			return nil
		}
		var out []*Node
		c.ForEachChild("", func(ch *Node) bool {
			if ch.Kind() == KindElement && fn(ch.Value()) {
				out = append(out, ch)
			}
			return true
		})
		return out
	default:
		var out []*Node
		c.ForEachChild(key, func(ch *Node) bool {
			out = append(out, ch)
			return true
		})
		return out
	}
}

type filterParams struct {
	Key    string
	Op     string
	Val    string
	IsFunc bool
}

// parseQuerySegment splits "name[filter-or-index]" into its parts. Filters
// support the operators =, !=, >=, <=, >, < and the functions
// contains(k,'v')/starts-with(k,'v'); a bare integer is treated as an index.
func parseQuerySegment(seg string) (key string, fp *filterParams, idx int) {
	idx = -1
	key = seg
	i := strings.Index(seg, "[")
	if i <= 0 || !strings.HasSuffix(seg, "]") {
		return
	}
	key = seg[:i]
	inside := seg[i+1 : len(seg)-1]

	if strings.Contains(inside, "(") && strings.HasSuffix(inside, ")") {
		p := strings.Index(inside, "(")
		funcName := strings.TrimSpace(inside[:p])
		args := strings.SplitN(inside[p+1:len(inside)-1], ",", 2)
		if len(args) == 2 {
			fKey := strings.TrimSpace(args[0])
			fVal := strings.Trim(strings.TrimSpace(args[1]), `'"`)
			return key, &filterParams{Key: fKey, Op: funcName, Val: fVal, IsFunc: true}, -1
		}
	}

	for _, op := range []string{"!=", ">=", "<=", "=", ">", "<"} {
		if strings.Contains(inside, op) {
			parts := strings.SplitN(inside, op, 2)
			fKey := strings.TrimSpace(parts[0])
			fVal := strings.Trim(strings.TrimSpace(parts[1]), `'"`)
			return key, &filterParams{Key: fKey, Op: op, Val: fVal}, -1
		}
	}

	if v, err := strconv.Atoi(inside); err == nil {
		idx = v
	}
	return
}

// matchFilter evaluates fp against n: fp.Key is looked up first as an
// attribute ("@attr" forces this), then as the text of a same-named child
// element.
func matchFilter(n *Node, fp *filterParams) bool {
	actual, found := resolveFilterValue(n, fp.Key)
	if !found {
		return false
	}

	if fp.IsFunc {
		switch fp.Op {
		case "contains":
			return strings.Contains(actual, fp.Val)
		case "starts-with":
			return strings.HasPrefix(actual, fp.Val)
		}
		return false
	}

	switch fp.Op {
	case "=":
		return actual == fp.Val
	case "!=":
		return actual != fp.Val
	case ">", "<", ">=", "<=":
		numV, errV := strconv.ParseFloat(actual, 64)
		target, errT := strconv.ParseFloat(fp.Val, 64)
		if errV != nil || errT != nil {
			return false
		}
		switch fp.Op {
		case ">":
			return numV > target
		case "<":
			return numV < target
		case ">=":
			return numV >= target
		case "<=":
			return numV <= target
		}
	}
	return false
}

func resolveFilterValue(n *Node, key string) (string, bool) {
	if strings.HasPrefix(key, "@") {
		return n.Attr(strings.TrimPrefix(key, "@"))
	}
	if v, ok := n.Attr(key); ok {
		return v, true
	}
	if child := n.FirstChildNamed(key); child != nil {
		return elementText(child), true
	}
	return "", false
}

// elementText concatenates the decoded text of n's direct Text children.
func elementText(n *Node) string {
	var sb strings.Builder
	n.ForEachChild("", func(c *Node) bool {
		if c.Kind() == KindText {
			sb.WriteString(c.Value())
		}
		return true
	})
	return sb.String()
}

// findAllRecursively returns every descendant Element named targetName, at
// any depth, in document order (spec's "//name" deep-search form).
func findAllRecursively(n *Node, targetName string) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		for c := cur.FirstChild(); c != nil; c = c.NextSibling() {
			if c.Kind() == KindElement {
				if c.Value() == targetName {
					out = append(out, c)
				}
				walk(c)
			}
		}
	}
	walk(n)
	return out
}
