package cachereplay

import "context"

// storeOp is the signature shared by the core persist logic and every
// interceptor wrapped around it.
type storeOp func(ctx context.Context, value any) (string, error)

// withCallCount wraps next so that every invocation first increments the
// counter stored under opID. The increment is a single atomic store command;
// a failed increment aborts the call before next runs.
func (c *Cache) withCallCount(opID string, next storeOp) storeOp {
	return func(ctx context.Context, value any) (string, error) {
		if _, err := c.store.Incr(ctx, opID); err != nil {
			return "", err
		}
		return next(ctx, value)
	}
}

// withCallHistory wraps next so that the rendered argument tuple is appended
// to the opID ":inputs" list before next runs, and the returned key is
// appended to the ":outputs" list after it succeeds. Each successful call
// therefore adds exactly one entry to each list, at matching positions.
//
// The two appends and the wrapped operation are individually atomic store
// commands but are not serialized as a group: concurrent callers may
// interleave between them. That matches the counters' own guarantees and is
// left as is.
func (c *Cache) withCallHistory(opID string, next storeOp) storeOp {
	return func(ctx context.Context, value any) (string, error) {
		if _, err := c.store.RPush(ctx, opID+inputsSuffix, c.args.SerializeArgs(value)); err != nil {
			return "", err
		}

		key, err := next(ctx, value)
		if err != nil {
			return "", err
		}

		if _, err := c.store.RPush(ctx, opID+outputsSuffix, key); err != nil {
			return "", err
		}
		return key, nil
	}
}
