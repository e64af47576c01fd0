package snapstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/auditgauge/auditgauge/internal/contract"
	"github.com/auditgauge/auditgauge/schema"
)

const (
	mongoDatabase    = "auditgauge"
	mongoCollection  = SnapshotsTable
	mongoConnTimeout = 10 * time.Second
)

// mongoSnapshot is the persisted document shape.
type mongoSnapshot struct {
	CreatedAt    int64           `bson:"created_at"`
	Responses    map[string]int  `bson:"responses"`
	SubResponses map[string]bool `bson:"sub_responses"`
}

// MongoStore implements SnapshotStore on a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

var _ contract.SnapshotStore = &MongoStore{} // Compile-time check

// newMongoStore connects to MongoDB and verifies the connection.
func newMongoStore(connStr string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connStr))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Mongo store: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to connect to Mongo store: %w. Check that the server is running and the connection string is correct", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(mongoDatabase).Collection(mongoCollection),
	}, nil
}

// Save appends one snapshot document.
func (m *MongoStore) Save(ctx context.Context, snap *schema.Snapshot) error {
	doc := mongoSnapshot{
		CreatedAt:    snap.Timestamp.UnixNano(),
		Responses:    snap.Responses,
		SubResponses: snap.SubResponses,
	}
	if _, err := m.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// LoadLatest returns the snapshot with the highest created_at, breaking
// ties on insertion order via _id.
func (m *MongoStore) LoadLatest(ctx context.Context) (*schema.Snapshot, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	var doc mongoSnapshot
	err := m.coll.FindOne(ctx, bson.D{}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, schema.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load latest snapshot: %w", err)
	}

	snap := &schema.Snapshot{
		Timestamp:    time.Unix(0, doc.CreatedAt).UTC(),
		Responses:    doc.Responses,
		SubResponses: doc.SubResponses,
	}
	if snap.Responses == nil {
		snap.Responses = schema.ResponseSet{}
	}
	if snap.SubResponses == nil {
		snap.SubResponses = schema.SubResponseSet{}
	}
	return snap, nil
}

// Status returns diagnostics about the store.
func (m *MongoStore) Status(ctx context.Context) (schema.StoreStatus, error) {
	status := schema.StoreStatus{Backend: string(schema.MongoBackend)}

	if err := m.client.Ping(ctx, nil); err != nil {
		return status, nil
	}
	status.Connected = true

	count, err := m.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return status, fmt.Errorf("failed to count snapshots: %w", err)
	}
	status.TotalSnapshots = count
	if count == 0 {
		return status, nil
	}

	var doc mongoSnapshot
	oldestOpts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}})
	if err := m.coll.FindOne(ctx, bson.D{}, oldestOpts).Decode(&doc); err == nil {
		status.OldestSnapshot = time.Unix(0, doc.CreatedAt).UTC()
	}
	latestOpts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if err := m.coll.FindOne(ctx, bson.D{}, latestOpts).Decode(&doc); err == nil {
		status.LatestSnapshot = time.Unix(0, doc.CreatedAt).UTC()
	}
	return status, nil
}

// Clear removes all snapshot documents.
func (m *MongoStore) Clear(ctx context.Context) error {
	if _, err := m.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}
	return nil
}

// Close disconnects from the server.
func (m *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnTimeout)
	defer cancel()
	return m.client.Disconnect(ctx)
}
