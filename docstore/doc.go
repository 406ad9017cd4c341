// Package docstore lists documents from a document-store collection.
//
// ListAll is the whole contract: give it a collection handle and it returns
// every document in natural order, or an empty result for a nil handle. The
// Collection and Cursor interfaces keep the lister testable without a
// server; FromMongo adapts a live *mongo.Collection.
//
// CachedLister layers an in-process read-through cache (viccon/sturdyc) over
// ListAll for callers that list the same collection repeatedly.
package docstore
