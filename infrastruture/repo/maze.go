package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mazeOpTimeout = 2 * time.Second
)

// MazeRepo stores generated mazes as documents.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	return &MazeRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// Save inserts the maze or replaces the document with the same ID.
func (r *MazeRepo) Save(ctx context.Context, m *dmn.Maze) error {
	ctx, cancel := context.WithTimeout(ctx, mazeOpTimeout)
	defer cancel()

	doc := m.Document()
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts); err != nil {
		return fmt.Errorf("saving maze %s: %w", m.ID, err)
	}
	return nil
}

// ByID retrieves a maze by its ID and validates the stored topology.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	ctx, cancel := context.WithTimeout(ctx, mazeOpTimeout)
	defer cancel()

	var doc dmn.MazeDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrMazeNotFound
		}
		return nil, fmt.Errorf("loading maze %s: %w", id, err)
	}
	return doc.Maze()
}
