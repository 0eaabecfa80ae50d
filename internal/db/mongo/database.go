package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// IDatabase defines the interface for MongoDB database operations.
//
//go:generate mockgen -source=database.go -destination=../../../mocks/db/mongo/database.go -package=mocks
type IDatabase interface {
	// Name returns the database name.
	Name() string

	// Collection returns a handle for the named collection.
	Collection(name string) ICollection

	// ListCollectionNames returns the names of the collections matching the filter.
	ListCollectionNames(ctx context.Context, filter any) ([]string, error)

	// CreateCollection explicitly creates the named collection.
	CreateCollection(ctx context.Context, name string) error

	// Drop drops the database.
	Drop(ctx context.Context) error
}

// Database implements IDatabase around a driver *mongo.Database.
type Database struct {
	db *mongo.Database
}

var _ IDatabase = (*Database)(nil)

func (d *Database) Name() string {
	return d.db.Name()
}

func (d *Database) Collection(name string) ICollection {
	return &Collection{coll: d.db.Collection(name)}
}

func (d *Database) ListCollectionNames(ctx context.Context, filter any) ([]string, error) {
	if filter == nil {
		filter = bson.D{}
	}
	return d.db.ListCollectionNames(ctx, filter)
}

func (d *Database) CreateCollection(ctx context.Context, name string) error {
	return d.db.CreateCollection(ctx, name)
}

func (d *Database) Drop(ctx context.Context) error {
	return d.db.Drop(ctx)
}
