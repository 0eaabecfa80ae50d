package store

import (
	"github.com/chenmingyong0423/go-mongox/v2"
	"github.com/chenmingyong0423/go-mongox/v2/aggregator"
	"github.com/chenmingyong0423/go-mongox/v2/creator"
	"github.com/chenmingyong0423/go-mongox/v2/deleter"
	"github.com/chenmingyong0423/go-mongox/v2/finder"
	"github.com/chenmingyong0423/go-mongox/v2/updater"
)

// ICollection exposes the typed collection operations through the go-mongox
// sub-interfaces.
//
//go:generate mockgen -source=collection.go -destination=../mocks/store/collection.go -package=mocks
type ICollection[T any] interface {
	// Aggregator returns an aggregator for building and executing aggregation pipelines.
	Aggregator() aggregator.IAggregator[T]

	// Creator returns a creator for inserting documents into the collection.
	Creator() creator.ICreator[T]

	// Deleter returns a deleter for removing documents from the collection.
	Deleter() deleter.IDeleter[T]

	// Finder returns a finder for querying and retrieving documents from the collection.
	Finder() finder.IFinder[T]

	// Updater returns an updater for modifying documents in the collection.
	Updater() updater.IUpdater[T]
}

// Collection implements ICollection around a go-mongox collection.
type Collection[T any] struct {
	xColl *mongox.Collection[T]
}

var _ ICollection[any] = (*Collection[any])(nil)

func (c *Collection[T]) Aggregator() aggregator.IAggregator[T] {
	return c.xColl.Aggregator()
}

func (c *Collection[T]) Creator() creator.ICreator[T] {
	return c.xColl.Creator()
}

func (c *Collection[T]) Deleter() deleter.IDeleter[T] {
	return c.xColl.Deleter()
}

func (c *Collection[T]) Finder() finder.IFinder[T] {
	return c.xColl.Finder()
}

func (c *Collection[T]) Updater() updater.IUpdater[T] {
	return c.xColl.Updater()
}
