package docstore

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeCursor iterates a fixed document slice, optionally failing at a chosen
// point.
type fakeCursor struct {
	docs      []bson.M
	pos       int
	decodeErr error
	iterErr   error
	closed    bool
}

func (c *fakeCursor) Next(ctx context.Context) bool {
	if c.pos >= len(c.docs) {
		return false
	}
	c.pos++
	return true
}

func (c *fakeCursor) Decode(val any) error {
	if c.decodeErr != nil {
		return c.decodeErr
	}
	ptr, ok := val.(*bson.M)
	if !ok {
		return errors.New("unexpected decode target")
	}
	*ptr = c.docs[c.pos-1]
	return nil
}

func (c *fakeCursor) Err() error { return c.iterErr }

func (c *fakeCursor) Close(ctx context.Context) error {
	c.closed = true
	return nil
}

// fakeCollection hands out a fakeCursor and records Find invocations.
type fakeCollection struct {
	mu      sync.Mutex
	finds   int
	filters []any
	cursor  *fakeCursor
	findErr error
}

func (c *fakeCollection) Find(ctx context.Context, filter any) (Cursor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.finds++
	c.filters = append(c.filters, filter)
	if c.findErr != nil {
		return nil, c.findErr
	}
	return c.cursor, nil
}

func (c *fakeCollection) findCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.finds
}

func TestListAll_NilCollectionReturnsEmpty(t *testing.T) {
	docs, err := ListAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected empty result, got %d documents", len(docs))
	}
}

func TestListAll_ReturnsEveryDocumentInOrder(t *testing.T) {
	want := []bson.M{
		{"name": "first"},
		{"name": "second"},
		{"name": "third"},
	}
	cursor := &fakeCursor{docs: want}
	coll := &fakeCollection{cursor: cursor}

	docs, err := ListAll(context.Background(), coll)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if !reflect.DeepEqual(docs, want) {
		t.Errorf("expected %v, got %v", want, docs)
	}
	if !cursor.closed {
		t.Error("expected cursor to be closed")
	}
}

func TestListAll_EmptyCollection(t *testing.T) {
	coll := &fakeCollection{cursor: &fakeCursor{}}

	docs, err := ListAll(context.Background(), coll)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected no documents, got %d", len(docs))
	}
}

func TestListAll_QueriesWithEmptyFilter(t *testing.T) {
	coll := &fakeCollection{cursor: &fakeCursor{}}

	if _, err := ListAll(context.Background(), coll); err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}

	if len(coll.filters) != 1 {
		t.Fatalf("expected one Find call, got %d", len(coll.filters))
	}
	if !reflect.DeepEqual(coll.filters[0], bson.D{}) {
		t.Errorf("expected empty filter, got %v", coll.filters[0])
	}
}

func TestListAll_FindErrorPropagates(t *testing.T) {
	wantErr := errors.New("server selection timeout")
	coll := &fakeCollection{findErr: wantErr}

	_, err := ListAll(context.Background(), coll)
	if !errors.Is(err, wantErr) {
		t.Errorf("expected find error to propagate, got %v", err)
	}
}

func TestListAll_DecodeErrorPropagates(t *testing.T) {
	wantErr := errors.New("corrupt document")
	coll := &fakeCollection{cursor: &fakeCursor{
		docs:      []bson.M{{"name": "broken"}},
		decodeErr: wantErr,
	}}

	_, err := ListAll(context.Background(), coll)
	if !errors.Is(err, wantErr) {
		t.Errorf("expected decode error to propagate, got %v", err)
	}
}

func TestListAll_CursorErrorPropagates(t *testing.T) {
	wantErr := errors.New("cursor lost")
	coll := &fakeCollection{cursor: &fakeCursor{iterErr: wantErr}}

	_, err := ListAll(context.Background(), coll)
	if !errors.Is(err, wantErr) {
		t.Errorf("expected cursor error to propagate, got %v", err)
	}
}

func TestFromMongo_NilCollectionIsNilHandle(t *testing.T) {
	if coll := FromMongo(nil); coll != nil {
		t.Errorf("expected nil handle, got %v", coll)
	}
}
