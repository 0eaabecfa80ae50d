// Package mongo wraps the official MongoDB driver behind small interfaces
// so the facade can be exercised against mocks.
package mongo

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/mongobject/mongobject/internal/errs"
)

// IClient defines the interface for MongoDB client operations.
// It is designed to be mockable for testing purposes.
//
//go:generate mockgen -source=mongo.go -destination=../../../mocks/db/mongo/mongo.go -package=mocks
type IClient interface {
	// Ping verifies the connection against the primary.
	Ping(ctx context.Context) error

	// Disconnect gracefully closes the MongoDB client connection.
	Disconnect(ctx context.Context) error

	// Database returns a handle for the named database.
	Database(name string) IDatabase

	// ListDatabaseNames returns the names of the databases matching the filter.
	ListDatabaseNames(ctx context.Context, filter any) ([]string, error)

	// ServerInfo returns the server build information document.
	ServerInfo(ctx context.Context) (bson.M, error)

	// Raw exposes the underlying driver client for typed layers built on top.
	Raw() *mongo.Client
}

// Client implements IClient around a driver *mongo.Client.
type Client struct {
	cl *mongo.Client
}

var _ IClient = (*Client)(nil)

func (c *Client) Ping(ctx context.Context) error {
	return c.cl.Ping(ctx, readpref.Primary())
}

func (c *Client) Disconnect(ctx context.Context) error {
	return c.cl.Disconnect(ctx)
}

func (c *Client) Database(name string) IDatabase {
	return &Database{db: c.cl.Database(name)}
}

func (c *Client) ListDatabaseNames(ctx context.Context, filter any) ([]string, error) {
	if filter == nil {
		filter = bson.D{}
	}
	return c.cl.ListDatabaseNames(ctx, filter)
}

func (c *Client) ServerInfo(ctx context.Context) (bson.M, error) {
	res := c.cl.Database("admin").RunCommand(ctx, bson.D{{Key: "buildInfo", Value: 1}})
	var info bson.M
	if err := res.Decode(&info); err != nil {
		return nil, errs.NewMongoOpErr(err)
	}
	return info, nil
}

func (c *Client) Raw() *mongo.Client {
	return c.cl
}

// ConnOptions holds the connection parameters of a facade. Resolution
// precedence: URI, then Host+Port, then Host alone, then a local default.
type ConnOptions struct {
	URI  string
	Host string
	Port int
}

const defaultURI = "mongodb://localhost:27017"

// BuildURI resolves ConnOptions into a connection string. A URI without a
// mongodb scheme is treated as a bare host.
func BuildURI(opts ConnOptions) string {
	switch {
	case strings.HasPrefix(opts.URI, "mongodb://") || strings.HasPrefix(opts.URI, "mongodb+srv://"):
		return opts.URI
	case opts.Host != "" && opts.Port != 0:
		return fmt.Sprintf("mongodb://%s:%d", opts.Host, opts.Port)
	case opts.Host != "":
		return fmt.Sprintf("mongodb://%s", opts.Host)
	case opts.URI != "":
		return fmt.Sprintf("mongodb://%s", opts.URI)
	default:
		return defaultURI
	}
}

// Connect opens a client for the resolved connection string. Transport
// encryption is always requested. When ping is true the connection is
// verified and torn down again on failure.
func Connect(ctx context.Context, opts ConnOptions, ping bool) (IClient, error) {
	clOpts := options.Client().
		ApplyURI(BuildURI(opts)).
		SetTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12})
	cl, err := mongo.Connect(clOpts)
	if err != nil {
		return nil, errs.NewMongoClientErr(err)
	}
	if ping {
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			// Ensure client is disconnected if ping fails to prevent resource leak
			if disconnectErr := cl.Disconnect(ctx); disconnectErr != nil {
				logrus.Warnf("Failed to disconnect client after ping failure: %v", disconnectErr)
			}
			return nil, errs.NewMongoClientErr(err)
		}
	}
	return &Client{cl: cl}, nil
}
