package mongobject

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Query holds the common read parameters shared by every find mode. Skip and
// Limit only apply where the underlying driver call supports them.
type Query struct {
	Filter     bson.M
	Projection any
	Sort       any
	Skip       int64
	Limit      int64
}

// ResultSet maps each document identifier to the remaining document fields,
// with the identifier field stripped from the value. Identifier values must
// be comparable BSON types.
type ResultSet map[any]bson.M

// FindMode selects how Find resolves documents. The mode set is closed; each
// variant carries exactly the parameters its driver call needs.
type FindMode interface {
	findMode()
}

// FindAll resolves every matching document.
type FindAll struct{}

// FindFirst resolves the first matching document.
type FindFirst struct{}

// FindFirstAndDelete resolves the first matching document and deletes it.
type FindFirstAndDelete struct{}

// FindFirstAndReplace resolves the first matching document and replaces it.
// ReturnBefore selects whether the pre- or post-replacement document is
// returned.
type FindFirstAndReplace struct {
	Replacement  bson.M
	Upsert       bool
	ReturnBefore bool
}

// FindFirstAndUpdate resolves the first matching document and applies the
// update specification. ReturnBefore selects whether the pre- or
// post-update document is returned.
type FindFirstAndUpdate struct {
	Update       bson.M
	Upsert       bool
	ReturnBefore bool
}

func (FindAll) findMode()             {}
func (FindFirst) findMode()           {}
func (FindFirstAndDelete) findMode()  {}
func (FindFirstAndReplace) findMode() {}
func (FindFirstAndUpdate) findMode()  {}

// Find resolves documents in the active collection according to the mode
// and flattens them into a ResultSet. A nil mode or an unresolved selection
// yields an empty ResultSet without error, as does an empty match.
func (f *Facade) Find(ctx context.Context, q Query, mode FindMode) (ResultSet, error) {
	result := ResultSet{}
	if mode == nil {
		return result, nil
	}
	ok, err := f.checkCollection(ctx)
	if err != nil || !ok {
		return result, err
	}
	filter := q.Filter
	if filter == nil {
		filter = bson.M{}
	}
	coll := f.activeCollection()
	switch m := mode.(type) {
	case FindAll:
		opts := options.Find()
		if q.Projection != nil {
			opts = opts.SetProjection(q.Projection)
		}
		if q.Sort != nil {
			opts = opts.SetSort(q.Sort)
		}
		if q.Skip > 0 {
			opts = opts.SetSkip(q.Skip)
		}
		if q.Limit > 0 {
			opts = opts.SetLimit(q.Limit)
		}
		cur, err := coll.Find(ctx, filter, opts)
		if err != nil {
			return nil, fmt.Errorf("error finding documents: %w", err)
		}
		var docs []bson.M
		if err := cur.All(ctx, &docs); err != nil {
			return nil, fmt.Errorf("error decoding documents: %w", err)
		}
		for _, doc := range docs {
			flattenInto(result, doc)
		}
		return result, nil
	case FindFirst:
		opts := options.FindOne()
		if q.Projection != nil {
			opts = opts.SetProjection(q.Projection)
		}
		if q.Sort != nil {
			opts = opts.SetSort(q.Sort)
		}
		if q.Skip > 0 {
			opts = opts.SetSkip(q.Skip)
		}
		return decodeSingle(result, coll.FindOne(ctx, filter, opts))
	case FindFirstAndDelete:
		opts := options.FindOneAndDelete()
		if q.Projection != nil {
			opts = opts.SetProjection(q.Projection)
		}
		if q.Sort != nil {
			opts = opts.SetSort(q.Sort)
		}
		return decodeSingle(result, coll.FindOneAndDelete(ctx, filter, opts))
	case FindFirstAndReplace:
		opts := options.FindOneAndReplace().
			SetUpsert(m.Upsert).
			SetReturnDocument(returnDocument(m.ReturnBefore))
		if q.Projection != nil {
			opts = opts.SetProjection(q.Projection)
		}
		if q.Sort != nil {
			opts = opts.SetSort(q.Sort)
		}
		replacement := m.Replacement
		if replacement == nil {
			replacement = bson.M{}
		}
		return decodeSingle(result, coll.FindOneAndReplace(ctx, filter, replacement, opts))
	case FindFirstAndUpdate:
		opts := options.FindOneAndUpdate().
			SetUpsert(m.Upsert).
			SetReturnDocument(returnDocument(m.ReturnBefore))
		if q.Projection != nil {
			opts = opts.SetProjection(q.Projection)
		}
		if q.Sort != nil {
			opts = opts.SetSort(q.Sort)
		}
		return decodeSingle(result, coll.FindOneAndUpdate(ctx, filter, m.Update, opts))
	default:
		return result, nil
	}
}

// flattenInto promotes the document identifier to the ResultSet key and
// strips it from the value. Documents without an identifier are skipped.
func flattenInto(rs ResultSet, doc bson.M) {
	id, ok := doc["_id"]
	if !ok {
		return
	}
	delete(doc, "_id")
	rs[id] = doc
}

// decodeSingle flattens a single-document driver result into rs. A missing
// document leaves rs empty, indistinguishable from an unresolved selection.
func decodeSingle(rs ResultSet, res *mongo.SingleResult) (ResultSet, error) {
	var doc bson.M
	if err := res.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return rs, nil
		}
		return nil, fmt.Errorf("error decoding document: %w", err)
	}
	flattenInto(rs, doc)
	return rs, nil
}

func returnDocument(before bool) options.ReturnDocument {
	if before {
		return options.Before
	}
	return options.After
}
