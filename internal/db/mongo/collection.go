package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/mongobject/mongobject/internal/errs"
)

// ICollection defines the interface for MongoDB collection operations.
// Methods mirror the driver surface the facade delegates to; driver option
// listers are passed through untouched.
//
//go:generate mockgen -source=collection.go -destination=../../../mocks/db/mongo/collection.go -package=mocks
type ICollection interface {
	InsertOne(ctx context.Context, document any) (*mongo.InsertOneResult, error)
	InsertMany(ctx context.Context, documents any) (*mongo.InsertManyResult, error)
	ReplaceOne(ctx context.Context, filter, replacement any, opts ...options.Lister[options.ReplaceOptions]) (*mongo.UpdateResult, error)
	UpdateOne(ctx context.Context, filter, update any, opts ...options.Lister[options.UpdateOneOptions]) (*mongo.UpdateResult, error)
	UpdateMany(ctx context.Context, filter, update any, opts ...options.Lister[options.UpdateManyOptions]) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter any) (*mongo.DeleteResult, error)
	DeleteMany(ctx context.Context, filter any) (*mongo.DeleteResult, error)
	Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
	FindOneAndDelete(ctx context.Context, filter any, opts ...options.Lister[options.FindOneAndDeleteOptions]) *mongo.SingleResult
	FindOneAndReplace(ctx context.Context, filter, replacement any, opts ...options.Lister[options.FindOneAndReplaceOptions]) *mongo.SingleResult
	FindOneAndUpdate(ctx context.Context, filter, update any, opts ...options.Lister[options.FindOneAndUpdateOptions]) *mongo.SingleResult
	CountDocuments(ctx context.Context, filter any, opts ...options.Lister[options.CountOptions]) (int64, error)

	// Distinct returns the decoded distinct values; the driver result type
	// cannot be constructed outside the driver, so decoding happens here.
	Distinct(ctx context.Context, fieldName string, filter any) ([]any, error)

	// Drop drops the collection.
	Drop(ctx context.Context) error
}

// Collection implements ICollection around a driver *mongo.Collection.
type Collection struct {
	coll *mongo.Collection
}

var _ ICollection = (*Collection)(nil)

func (c *Collection) InsertOne(ctx context.Context, document any) (*mongo.InsertOneResult, error) {
	return c.coll.InsertOne(ctx, document)
}

func (c *Collection) InsertMany(ctx context.Context, documents any) (*mongo.InsertManyResult, error) {
	return c.coll.InsertMany(ctx, documents)
}

func (c *Collection) ReplaceOne(ctx context.Context, filter, replacement any, opts ...options.Lister[options.ReplaceOptions]) (*mongo.UpdateResult, error) {
	return c.coll.ReplaceOne(ctx, filter, replacement, opts...)
}

func (c *Collection) UpdateOne(ctx context.Context, filter, update any, opts ...options.Lister[options.UpdateOneOptions]) (*mongo.UpdateResult, error) {
	return c.coll.UpdateOne(ctx, filter, update, opts...)
}

func (c *Collection) UpdateMany(ctx context.Context, filter, update any, opts ...options.Lister[options.UpdateManyOptions]) (*mongo.UpdateResult, error) {
	return c.coll.UpdateMany(ctx, filter, update, opts...)
}

func (c *Collection) DeleteOne(ctx context.Context, filter any) (*mongo.DeleteResult, error) {
	return c.coll.DeleteOne(ctx, filter)
}

func (c *Collection) DeleteMany(ctx context.Context, filter any) (*mongo.DeleteResult, error) {
	return c.coll.DeleteMany(ctx, filter)
}

func (c *Collection) Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error) {
	return c.coll.Find(ctx, filter, opts...)
}

func (c *Collection) FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult {
	return c.coll.FindOne(ctx, filter, opts...)
}

func (c *Collection) FindOneAndDelete(ctx context.Context, filter any, opts ...options.Lister[options.FindOneAndDeleteOptions]) *mongo.SingleResult {
	return c.coll.FindOneAndDelete(ctx, filter, opts...)
}

func (c *Collection) FindOneAndReplace(ctx context.Context, filter, replacement any, opts ...options.Lister[options.FindOneAndReplaceOptions]) *mongo.SingleResult {
	return c.coll.FindOneAndReplace(ctx, filter, replacement, opts...)
}

func (c *Collection) FindOneAndUpdate(ctx context.Context, filter, update any, opts ...options.Lister[options.FindOneAndUpdateOptions]) *mongo.SingleResult {
	return c.coll.FindOneAndUpdate(ctx, filter, update, opts...)
}

func (c *Collection) CountDocuments(ctx context.Context, filter any, opts ...options.Lister[options.CountOptions]) (int64, error) {
	return c.coll.CountDocuments(ctx, filter, opts...)
}

func (c *Collection) Distinct(ctx context.Context, fieldName string, filter any) ([]any, error) {
	if filter == nil {
		filter = bson.D{}
	}
	res := c.coll.Distinct(ctx, fieldName, filter)
	if err := res.Err(); err != nil {
		return nil, errs.NewMongoOpErr(err)
	}
	var values []any
	if err := res.Decode(&values); err != nil {
		return nil, errs.NewMongoDecodeErr(err)
	}
	return values, nil
}

func (c *Collection) Drop(ctx context.Context) error {
	return c.coll.Drop(ctx)
}
