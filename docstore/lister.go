package docstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Cursor is the iteration surface ListAll consumes. *mongo.Cursor satisfies
// it directly; tests provide fakes.
type Cursor interface {
	Next(ctx context.Context) bool
	Decode(val any) error
	Err() error
	Close(ctx context.Context) error
}

// Collection is a handle to a named document collection that can be queried
// with a filter. FromMongo adapts the real driver type.
type Collection interface {
	Find(ctx context.Context, filter any) (Cursor, error)
}

// ListAll returns every document in coll as a slice, in the collection's
// natural iteration order. No filtering, projection, or pagination is
// applied.
//
// A nil collection handle yields an empty result with no error. Query and
// decode failures from the underlying store propagate unmodified.
func ListAll(ctx context.Context, coll Collection) ([]bson.M, error) {
	if coll == nil {
		return nil, nil
	}

	cur, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []bson.M
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}
