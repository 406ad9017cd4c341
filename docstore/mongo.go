package docstore

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// mongoCollection adapts *mongo.Collection to the Collection contract.
type mongoCollection struct {
	coll *mongo.Collection
}

// FromMongo wraps a mongo-driver collection so it can be passed to ListAll
// and NewCachedLister. A nil input returns a nil Collection, which ListAll
// treats as the empty collection.
func FromMongo(coll *mongo.Collection) Collection {
	if coll == nil {
		return nil
	}
	return &mongoCollection{coll: coll}
}

func (m *mongoCollection) Find(ctx context.Context, filter any) (Cursor, error) {
	cur, err := m.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return cur, nil
}
