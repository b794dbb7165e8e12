package repository

import (
	"context"
	"errors"

	"ai-tools-api/internal/domain/tool"
	"ai-tools-api/pkg/database"
	apperrors "ai-tools-api/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoToolRepository struct {
	collection *mongo.Collection
}

func NewToolRepository(db *mongo.Database) ToolRepository {
	return &MongoToolRepository{collection: db.Collection(database.ToolsCollection)}
}

func (r *MongoToolRepository) List(ctx context.Context, q ToolQuery) ([]tool.Tool, error) {
	filter := bson.M{}
	if q.Category != "" {
		filter["category"] = q.Category
	}

	opts := options.Find().
		SetSort(bson.D{{Key: q.SortField, Value: -1}}).
		SetLimit(q.Limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tools := make([]tool.Tool, 0)
	if err := cursor.All(ctx, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

func (r *MongoToolRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

func (r *MongoToolRepository) GetByID(ctx context.Context, id primitive.ObjectID) (tool.Tool, error) {
	var t tool.Tool
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return tool.Tool{}, apperrors.ErrNotFound
		}
		return tool.Tool{}, err
	}
	return t, nil
}
