package mongobject

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Insert persists the given documents in the active collection. A single
// document goes through InsertOne, two or more through InsertMany. It
// returns true only when every document produced an identifier; no
// documents or an unresolved selection yield false without error.
func (f *Facade) Insert(ctx context.Context, docs ...any) (bool, error) {
	ll := f.getLogger("Insert")
	if len(docs) == 0 {
		return false, nil
	}
	ok, err := f.checkCollection(ctx)
	if err != nil || !ok {
		return false, err
	}
	if len(docs) == 1 {
		res, err := f.activeCollection().InsertOne(ctx, docs[0])
		if err != nil {
			return false, fmt.Errorf("error inserting document: %w", err)
		}
		return res.InsertedID != nil, nil
	}
	res, err := f.activeCollection().InsertMany(ctx, docs)
	if err != nil {
		return false, fmt.Errorf("error inserting documents: %w", err)
	}
	ll.Debugf("inserted %d of %d documents", len(res.InsertedIDs), len(docs))
	return len(res.InsertedIDs) == len(docs), nil
}

// Replace replaces documents matching the filter with the replacement
// document. With onlyOne it issues a single replacement and succeeds when
// exactly one document was modified. Otherwise it reissues single
// replacements until every matched document has been modified; an iteration
// that modifies nothing while matches remain is a failure. The loop has no
// iteration cap or backoff: concurrent writers that keep matching documents
// without allowing modification can keep it alive indefinitely.
func (f *Facade) Replace(ctx context.Context, filter, replacement bson.M, upsert, onlyOne bool) (bool, error) {
	ll := f.getLogger("Replace")
	ok, err := f.checkCollection(ctx)
	if err != nil || !ok {
		return false, err
	}
	if filter == nil {
		filter = bson.M{}
	}
	if replacement == nil {
		replacement = bson.M{}
	}
	coll := f.activeCollection()
	opts := options.Replace().SetUpsert(upsert)
	if onlyOne {
		res, err := coll.ReplaceOne(ctx, filter, replacement, opts)
		if err != nil {
			return false, fmt.Errorf("error replacing document: %w", err)
		}
		return res.ModifiedCount == 1, nil
	}
	for {
		res, err := coll.ReplaceOne(ctx, filter, replacement, opts)
		if err != nil {
			return false, fmt.Errorf("error replacing documents: %w", err)
		}
		if res.MatchedCount == res.ModifiedCount {
			return true, nil
		}
		if res.ModifiedCount == 0 {
			return false, nil
		}
		ll.Debugf("replace converging: matched %d, modified %d", res.MatchedCount, res.ModifiedCount)
	}
}

// Update applies the update specification to documents matching the filter.
// With onlyOne it succeeds when exactly one document was modified; in bulk
// mode the modified count must equal the matched count.
func (f *Facade) Update(ctx context.Context, filter, update bson.M, upsert, onlyOne bool) (bool, error) {
	ok, err := f.checkCollection(ctx)
	if err != nil || !ok {
		return false, err
	}
	if filter == nil {
		filter = bson.M{}
	}
	coll := f.activeCollection()
	if onlyOne {
		res, err := coll.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(upsert))
		if err != nil {
			return false, fmt.Errorf("error updating document: %w", err)
		}
		return res.ModifiedCount == 1, nil
	}
	res, err := coll.UpdateMany(ctx, filter, update, options.UpdateMany().SetUpsert(upsert))
	if err != nil {
		return false, fmt.Errorf("error updating documents: %w", err)
	}
	return res.ModifiedCount == res.MatchedCount, nil
}

// Delete removes documents matching the filter, a single one when onlyOne
// is set. It succeeds when at least one document was removed.
func (f *Facade) Delete(ctx context.Context, filter bson.M, onlyOne bool) (bool, error) {
	ok, err := f.checkCollection(ctx)
	if err != nil || !ok {
		return false, err
	}
	if filter == nil {
		filter = bson.M{}
	}
	coll := f.activeCollection()
	var deleted int64
	if onlyOne {
		res, err := coll.DeleteOne(ctx, filter)
		if err != nil {
			return false, fmt.Errorf("error deleting document: %w", err)
		}
		deleted = res.DeletedCount
	} else {
		res, err := coll.DeleteMany(ctx, filter)
		if err != nil {
			return false, fmt.Errorf("error deleting documents: %w", err)
		}
		deleted = res.DeletedCount
	}
	return deleted > 0, nil
}

// Count returns the number of documents matching the filter, honoring skip
// and limit. An unresolved selection yields the -1 sentinel without error.
func (f *Facade) Count(ctx context.Context, filter bson.M, skip, limit int64) (int64, error) {
	ok, err := f.checkCollection(ctx)
	if err != nil || !ok {
		return -1, err
	}
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Count()
	if skip > 0 {
		opts = opts.SetSkip(skip)
	}
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	n, err := f.activeCollection().CountDocuments(ctx, filter, opts)
	if err != nil {
		return -1, fmt.Errorf("error counting documents: %w", err)
	}
	return n, nil
}

// Distinct returns the distinct values of field among documents matching
// the filter. An unresolved selection yields an empty slice without error.
func (f *Facade) Distinct(ctx context.Context, field string, filter bson.M) ([]any, error) {
	ok, err := f.checkCollection(ctx)
	if err != nil || !ok {
		return []any{}, err
	}
	if filter == nil {
		filter = bson.M{}
	}
	values, err := f.activeCollection().Distinct(ctx, field, filter)
	if err != nil {
		return nil, fmt.Errorf("error getting distinct values: %w", err)
	}
	if values == nil {
		values = []any{}
	}
	return values, nil
}
