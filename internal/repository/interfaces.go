package repository

import (
	"context"

	"ai-tools-api/internal/domain/tool"
	"ai-tools-api/internal/domain/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetByEmail(ctx context.Context, email string) (user.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (user.User, error)
}

// ToolQuery narrows and orders a catalog listing. An empty Category means no
// filter; SortField is applied as a descending sort and is expected to be
// validated by the caller.
type ToolQuery struct {
	Category  string
	SortField string
	Limit     int64
}

type ToolRepository interface {
	List(ctx context.Context, q ToolQuery) ([]tool.Tool, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (tool.Tool, error)
}
