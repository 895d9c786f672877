package database

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gestorpme/gestor_backend/internal/apperrors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 5 * time.Second

// ConnectHook runs once after a successful connection, before the handle is
// published. Used to ensure indexes.
type ConnectHook func(ctx context.Context, db *mongo.Database) error

// Mongo is a shared handle to the document store. The connection is
// established lazily: if the store was unreachable at startup, the next
// request retries. All repositories receive this handle as an injected
// dependency; there is no package-level singleton.
type Mongo struct {
	uri       string
	dbName    string
	onConnect ConnectHook

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

// NewMongo creates an unconnected handle. An empty uri is allowed; every
// Database call will then report apperrors.ErrUnavailable.
func NewMongo(uri, dbName string) *Mongo {
	return &Mongo{uri: uri, dbName: dbName}
}

// OnConnect registers a hook to run after each successful (re)connection.
func (m *Mongo) OnConnect(hook ConnectHook) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onConnect = hook
}

// Connect eagerly establishes the connection. Failure leaves the handle in
// degraded mode rather than being fatal.
func (m *Mongo) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connectLocked(ctx)
}

// Database returns the connected database, dialing first if needed.
func (m *Mongo) Database(ctx context.Context) (*mongo.Database, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.connectLocked(ctx); err != nil {
		return nil, err
	}
	return m.db, nil
}

// Ping verifies the store is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.connectLocked(ctx); err != nil {
		return err
	}
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: store ping failed: %v", apperrors.ErrUnavailable, err)
	}
	return nil
}

// Connected reports whether a connection has been established.
func (m *Mongo) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.db != nil
}

// Close disconnects the client if connected.
func (m *Mongo) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.client == nil {
		return nil
	}
	err := m.client.Disconnect(ctx)
	m.client = nil
	m.db = nil
	return err
}

func (m *Mongo) connectLocked(ctx context.Context) error {
	if m.db != nil {
		return nil
	}
	if m.uri == "" {
		return fmt.Errorf("%w: document store connection string not configured", apperrors.ErrUnavailable)
	}

	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(m.uri))
	if err != nil {
		return fmt.Errorf("%w: failed to connect to document store: %v", apperrors.ErrUnavailable, err)
	}
	if err := client.Ping(dialCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("%w: failed to ping document store: %v", apperrors.ErrUnavailable, err)
	}

	db := client.Database(m.dbName)
	if m.onConnect != nil {
		if err := m.onConnect(dialCtx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return fmt.Errorf("post-connect hook failed: %w", err)
		}
	}

	m.client = client
	m.db = db
	slog.Info("Connected to document store", slog.String("database", m.dbName))
	return nil
}
