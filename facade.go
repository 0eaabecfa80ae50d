// Package mongobject provides a convenience facade over the official MongoDB
// driver. A Facade owns one connection handle plus a mutable database and
// collection selection, and exposes passthrough CRUD operations that degrade
// to typed empty results when no selection resolves.
package mongobject

import (
	"context"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	mngo "github.com/mongobject/mongobject/internal/db/mongo"
	"github.com/mongobject/mongobject/internal/log"
)

// Config holds the construction parameters of a facade. Connection
// resolution precedence: URI, then Host+Port, then Host alone, then a local
// default. Database and Collection preselect the active target when set.
type Config struct {
	URI        string
	Host       string
	Port       int
	Database   string
	Collection string
}

// IFacade defines the facade surface.
//
//go:generate mockgen -source=facade.go -destination=mocks/facade/facade.go -package=mocks
type IFacade interface {
	Reconnect(ctx context.Context, opts mngo.ConnOptions) error
	Close(ctx context.Context) error
	Instance() mngo.IClient
	Info(ctx context.Context) (bson.M, error)
	SetDatabase(name string)
	Database() string
	SetCollection(name string)
	Collection() string
	ListDatabases(ctx context.Context, filter any) ([]string, error)
	ListCollections(ctx context.Context, filter any) ([]string, error)
	CreateDatabase(ctx context.Context, name string) error
	DropDatabase(ctx context.Context) error
	CreateCollection(ctx context.Context, name string) error
	DropCollection(ctx context.Context) error
	Insert(ctx context.Context, docs ...any) (bool, error)
	Replace(ctx context.Context, filter, replacement bson.M, upsert, onlyOne bool) (bool, error)
	Update(ctx context.Context, filter, update bson.M, upsert, onlyOne bool) (bool, error)
	Delete(ctx context.Context, filter bson.M, onlyOne bool) (bool, error)
	Find(ctx context.Context, q Query, mode FindMode) (ResultSet, error)
	Count(ctx context.Context, filter bson.M, skip, limit int64) (int64, error)
	Distinct(ctx context.Context, field string, filter bson.M) ([]any, error)
}

// Facade implements IFacade over a single client handle. The facade adds no
// locking of its own; the driver client is safe for concurrent use, but the
// selection setters are not synchronized.
type Facade struct {
	cl         mngo.IClient
	database   string
	collection string
}

var _ IFacade = (*Facade)(nil)

// New connects a facade using the Config resolution precedence. Transport
// encryption is always requested.
func New(ctx context.Context, cfg Config) (*Facade, error) {
	cl, err := mngo.Connect(ctx, mngo.ConnOptions{URI: cfg.URI, Host: cfg.Host, Port: cfg.Port}, false)
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongo: %w", err)
	}
	f := &Facade{cl: cl}
	f.SetDatabase(cfg.Database)
	f.SetCollection(cfg.Collection)
	return f, nil
}

// NewWithClient wraps an already-connected client. Intended for tests and
// for callers managing their own client lifecycle.
func NewWithClient(cl mngo.IClient, database, collection string) *Facade {
	return &Facade{cl: cl, database: database, collection: collection}
}

// Reconnect closes the current handle, if any, and opens a new one for the
// given connection parameters.
func (f *Facade) Reconnect(ctx context.Context, opts mngo.ConnOptions) error {
	ll := f.getLogger("Reconnect")
	if f.cl != nil {
		if err := f.cl.Disconnect(ctx); err != nil {
			ll.WithError(err).Warn("error disconnecting previous client")
		}
		f.cl = nil
	}
	cl, err := mngo.Connect(ctx, opts, false)
	if err != nil {
		return fmt.Errorf("error reconnecting to mongo: %w", err)
	}
	f.cl = cl
	ll.Debug("client replaced")
	return nil
}

// Close disconnects the current handle. Safe to call on a closed facade.
func (f *Facade) Close(ctx context.Context) error {
	if f.cl == nil {
		return nil
	}
	err := f.cl.Disconnect(ctx)
	f.cl = nil
	if err != nil {
		return fmt.Errorf("error disconnecting client: %w", err)
	}
	return nil
}

// Instance returns the wrapped client handle, or nil when closed.
func (f *Facade) Instance() mngo.IClient {
	return f.cl
}

// Info returns the server build information together with the active
// database and collection selection.
func (f *Facade) Info(ctx context.Context) (bson.M, error) {
	if f.cl == nil {
		return bson.M{}, nil
	}
	host, err := f.cl.ServerInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting server info: %w", err)
	}
	return bson.M{
		"host":       host,
		"database":   f.database,
		"collection": f.collection,
	}, nil
}

// SetDatabase selects the active database. An empty name keeps the previous
// selection.
func (f *Facade) SetDatabase(name string) {
	if name != "" {
		f.database = name
	}
}

// Database returns the active database name.
func (f *Facade) Database() string {
	return f.database
}

// SetCollection selects the active collection. An empty name keeps the
// previous selection.
func (f *Facade) SetCollection(name string) {
	if name != "" {
		f.collection = name
	}
}

// Collection returns the active collection name.
func (f *Facade) Collection() string {
	return f.collection
}

// ListDatabases returns the database names matching the filter. A closed
// facade yields an empty list.
func (f *Facade) ListDatabases(ctx context.Context, filter any) ([]string, error) {
	if f.cl == nil {
		return []string{}, nil
	}
	names, err := f.cl.ListDatabaseNames(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing databases: %w", err)
	}
	return names, nil
}

// ListCollections returns the collection names of the active database
// matching the filter. An unresolved database yields an empty list.
func (f *Facade) ListCollections(ctx context.Context, filter any) ([]string, error) {
	ok, err := f.checkDatabase(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}
	names, err := f.cl.Database(f.database).ListCollectionNames(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing collections: %w", err)
	}
	return names, nil
}

// CreateDatabase selects name as the active database unless it already
// exists on the server. MongoDB materializes a database with its first
// collection, so no server-side work happens here.
func (f *Facade) CreateDatabase(ctx context.Context, name string) error {
	if f.cl == nil || name == "" {
		return nil
	}
	names, err := f.cl.ListDatabaseNames(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("error listing databases: %w", err)
	}
	if slices.Contains(names, name) {
		return nil
	}
	f.SetDatabase(name)
	f.getLogger("CreateDatabase").WithField("database", name).Debug("database selected for creation")
	return nil
}

// DropDatabase drops the active database and clears both selections. The
// selections are cleared by direct assignment since the setters ignore
// empty values.
func (f *Facade) DropDatabase(ctx context.Context) error {
	ok, err := f.checkDatabase(ctx)
	if err != nil || !ok {
		return err
	}
	if err := f.cl.Database(f.database).Drop(ctx); err != nil {
		return fmt.Errorf("error dropping database: %w", err)
	}
	f.database = ""
	f.collection = ""
	return nil
}

// CreateCollection creates the named collection in the active database and
// selects it. Requires a database selection; the database itself
// materializes with the collection.
func (f *Facade) CreateCollection(ctx context.Context, name string) error {
	if f.cl == nil || f.database == "" || name == "" {
		return nil
	}
	if err := f.cl.Database(f.database).CreateCollection(ctx, name); err != nil {
		return fmt.Errorf("error creating collection: %w", err)
	}
	f.SetCollection(name)
	return nil
}

// DropCollection drops the active collection and clears its selection.
func (f *Facade) DropCollection(ctx context.Context) error {
	ok, err := f.checkCollection(ctx)
	if err != nil || !ok {
		return err
	}
	if err := f.activeCollection().Drop(ctx); err != nil {
		return fmt.Errorf("error dropping collection: %w", err)
	}
	f.collection = ""
	return nil
}

// checkDatabase reports whether the active database selection resolves to an
// existing database on the connected instance.
func (f *Facade) checkDatabase(ctx context.Context) (bool, error) {
	if f.cl == nil || f.database == "" {
		return false, nil
	}
	names, err := f.cl.ListDatabaseNames(ctx, bson.D{})
	if err != nil {
		return false, fmt.Errorf("error listing databases: %w", err)
	}
	return slices.Contains(names, f.database), nil
}

// checkCollection reports whether both selections resolve to existing
// entities. Evaluated before every data operation.
func (f *Facade) checkCollection(ctx context.Context) (bool, error) {
	if f.collection == "" {
		return false, nil
	}
	ok, err := f.checkDatabase(ctx)
	if err != nil || !ok {
		return false, err
	}
	names, err := f.cl.Database(f.database).ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return false, fmt.Errorf("error listing collections: %w", err)
	}
	return slices.Contains(names, f.collection), nil
}

func (f *Facade) activeCollection() mngo.ICollection {
	return f.cl.Database(f.database).Collection(f.collection)
}

func (f *Facade) getLogger(fn string) *logrus.Entry {
	return log.GetLogger(log.FacadeModule).WithField("func", fmt.Sprintf("%T.%s", f, fn))
}
