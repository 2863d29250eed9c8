package xml

import (
	"context"
	"io"
)

// StreamElements parses all of r and yields every descendant Element named
// tag over a channel, one at a time, respecting ctx cancellation on each
// send — the same context-aware blocking-send pattern as the teacher's
// Stream[T].IterWithContext, generalized from "decode a typed T via
// encoding/xml" to "walk a *Node via this package's own parser".
//
// Because the core parser builds the whole tree before returning (spec §2's
// data flow has no incremental token boundary exposed to callers), this is
// not a constant-memory reader for gigabyte files the way the teacher's
// token-level Stream[T] is; it is the channel-based consumption API,
// decoupling "parse" from "process one element at a time" for callers that
// want to range over a channel instead of a slice.
func StreamElements(ctx context.Context, r io.Reader, tag string, opts ...Option) (<-chan *Node, <-chan error) {
	out := make(chan *Node)
	errc := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errc)

		data, err := io.ReadAll(r)
		if err != nil {
			errc <- err
			return
		}
		doc, err := Parse(data, opts...)
		if err != nil {
			errc <- err
			return
		}

		matches := findAllRecursively(doc.Root(), tag)
		for _, n := range matches {
			select {
			case out <- n:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, errc
}
