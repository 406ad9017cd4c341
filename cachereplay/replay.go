package cachereplay

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/goliatone/go-cache-replay/kv"
)

// Replay reads the call counter and history lists recorded under opID and
// writes a formatted trace to w:
//
//	Cache.Store was called 2 times:
//	Cache.Store(*('foo',)) -> 41eff8a0-...
//	Cache.Store(*('bar',)) -> 9f2c7d11-...
//
// The store is an explicit dependency so replay inspects whatever database
// the caller hands it, typically the same one the Cache writes to.
//
// A missing or undecodable counter renders as the integer 0; the header is
// printed regardless. Input and output entries are paired positionally up to
// the length of the shorter list — if the lists ever desynchronize, excess
// entries on the longer side are silently dropped rather than reported. An
// individual entry that is not valid UTF-8 renders as the empty string for
// that entry only. Store-level failures abort the replay and propagate.
func Replay(ctx context.Context, store kv.Store, opID string, w io.Writer) error {
	raw, err := store.Get(ctx, opID)
	if err != nil {
		return err
	}

	count := 0
	if raw != nil && utf8.Valid(raw) {
		if n, err := strconv.Atoi(string(raw)); err == nil {
			count = n
		}
	}

	if _, err := fmt.Fprintf(w, "%s was called %d times:\n", opID, count); err != nil {
		return err
	}

	inputs, err := store.LRange(ctx, opID+inputsSuffix, 0, -1)
	if err != nil {
		return err
	}
	outputs, err := store.LRange(ctx, opID+outputsSuffix, 0, -1)
	if err != nil {
		return err
	}

	pairs := len(inputs)
	if len(outputs) < pairs {
		pairs = len(outputs)
	}

	for i := 0; i < pairs; i++ {
		in, out := inputs[i], outputs[i]
		if !utf8.ValidString(in) {
			in = ""
		}
		if !utf8.ValidString(out) {
			out = ""
		}
		if _, err := fmt.Fprintf(w, "%s(*%s) -> %s\n", opID, in, out); err != nil {
			return err
		}
	}
	return nil
}
