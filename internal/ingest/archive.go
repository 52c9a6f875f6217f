package ingest

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Archiver keeps a copy of every inbound payload for audit and replay.
// Writes are best effort and never join the SQL transaction: an archive
// failure must not fail the request.
type Archiver struct {
	coll *mongo.Collection
}

func NewArchiver(client *mongo.Client, db, collection string) *Archiver {
	return &Archiver{coll: client.Database(db).Collection(collection)}
}

func (a *Archiver) Archive(ctx context.Context, tranID string, payload []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := a.coll.InsertOne(ctx, bson.M{
		"tran_id":     tranID,
		"payload":     string(payload),
		"received_at": time.Now(),
	})
	return err
}
