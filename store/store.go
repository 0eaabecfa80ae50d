// Package store provides a typed datastore over the facade's active
// database and collection, built on go-mongox.
package store

import (
	"context"
	"fmt"

	"github.com/chenmingyong0423/go-mongox/v2"
	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/mongobject/mongobject"
	"github.com/mongobject/mongobject/internal/errs"
	"github.com/mongobject/mongobject/internal/log"
)

// DataStore gives typed CRUD over one collection. T is the document struct
// type; methods work with *T, which should implement IMongoDoc.
type DataStore[T any] struct {
	coll ICollection[T]
}

// NewDataStore binds a typed datastore to the facade's active selection.
func NewDataStore[T any](f *mongobject.Facade) (*DataStore[T], error) {
	cl := f.Instance()
	if cl == nil {
		return nil, errors.New("facade has no active connection")
	}
	if f.Database() == "" || f.Collection() == "" {
		return nil, errors.New("facade has no active database/collection selection")
	}
	xCl := mongox.NewClient(cl.Raw(), &mongox.Config{})
	xColl := mongox.NewCollection[T](xCl.NewDatabase(f.Database()), f.Collection())
	return &DataStore[T]{coll: &Collection[T]{xColl: xColl}}, nil
}

// NewDataStoreWithCollection binds a typed datastore to an existing
// collection wrapper. Intended for tests.
func NewDataStoreWithCollection[T any](coll ICollection[T]) *DataStore[T] {
	return &DataStore[T]{coll: coll}
}

// Create inserts doc and sets its generated identifier when available.
func (s *DataStore[T]) Create(ctx context.Context, doc *T) (*T, error) {
	res, err := s.coll.Creator().InsertOne(ctx, doc)
	if err != nil {
		return nil, errs.NewMongoOpErr(err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		if d, ok := any(doc).(IMongoDoc); ok {
			d.SetID(id)
		}
	}
	s.getLogger("Create").Debug("document created")
	return doc, nil
}

// List returns every document matching the filter.
func (s *DataStore[T]) List(ctx context.Context, filter bson.D) ([]*T, error) {
	if filter == nil {
		filter = bson.D{}
	}
	docs, err := s.coll.Finder().Filter(filter).Find(ctx)
	if err != nil {
		return nil, errs.NewMongoOpErr(err)
	}
	return docs, nil
}

// Find returns the first document matching the filter.
func (s *DataStore[T]) Find(ctx context.Context, filter bson.D) (*T, error) {
	if filter == nil {
		filter = bson.D{}
	}
	doc, err := s.coll.Finder().Filter(filter).FindOne(ctx)
	if err != nil {
		return nil, errs.NewMongoOpErr(err)
	}
	return doc, nil
}

// Update applies the update specification to the first document matching
// the filter.
func (s *DataStore[T]) Update(ctx context.Context, filter, updates bson.D) error {
	res, err := s.coll.Updater().Filter(filter).Updates(updates).UpdateOne(ctx)
	if err != nil {
		return errs.NewMongoOpErr(err)
	}
	if res.MatchedCount == 0 {
		return errs.NewMongoNotFoundErr(filter)
	}
	return nil
}

// Delete removes the first document matching the filter.
func (s *DataStore[T]) Delete(ctx context.Context, filter bson.D) error {
	res, err := s.coll.Deleter().Filter(filter).DeleteOne(ctx)
	if err != nil {
		return errs.NewMongoOpErr(err)
	}
	if res.DeletedCount == 0 {
		return errs.NewMongoNotFoundErr(filter)
	}
	return nil
}

// Count returns the number of documents matching the filter.
func (s *DataStore[T]) Count(ctx context.Context, filter bson.D) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}
	n, err := s.coll.Finder().Filter(filter).Count(ctx)
	if err != nil {
		return 0, errs.NewMongoOpErr(err)
	}
	return n, nil
}

func (s *DataStore[T]) getLogger(fn string) *logrus.Entry {
	return log.GetLogger(log.StoreModule).WithField("func", fmt.Sprintf("%T.%s", s, fn))
}
