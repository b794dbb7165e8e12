package services

import (
	"context"

	"ai-tools-api/internal/domain/tool"
	"ai-tools-api/internal/repository"
	apperrors "ai-tools-api/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultSortField orders listings when no (or an unknown) sort is requested.
const DefaultSortField = "popularityScore"

// MaxListResults caps every listing; there is no pagination cursor.
const MaxListResults = 50

// sortable fields are the numeric ones a descending sort makes sense on.
var sortableFields = map[string]bool{
	"popularityScore": true,
	"monthlyUsers":    true,
	"createdAt":       true,
}

type ToolService struct {
	toolRepo repository.ToolRepository
}

func NewToolService(toolRepo repository.ToolRepository) *ToolService {
	return &ToolService{toolRepo: toolRepo}
}

// List returns up to MaxListResults tools sorted descending on the requested
// field. category "all" or empty means no filter.
func (s *ToolService) List(ctx context.Context, category, sortField string) ([]tool.Tool, error) {
	if !sortableFields[sortField] {
		sortField = DefaultSortField
	}
	if category == "all" {
		category = ""
	}

	return s.toolRepo.List(ctx, repository.ToolQuery{
		Category:  category,
		SortField: sortField,
		Limit:     MaxListResults,
	})
}

// Categories returns each distinct category value exactly once.
func (s *ToolService) Categories(ctx context.Context) ([]string, error) {
	return s.toolRepo.DistinctCategories(ctx)
}

// GetByID looks up a single tool. A syntactically invalid id is a not-found,
// not a validation error: the route exposes ids only as opaque strings.
func (s *ToolService) GetByID(ctx context.Context, id string) (tool.Tool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return tool.Tool{}, apperrors.ErrNotFound
	}
	return s.toolRepo.GetByID(ctx, oid)
}
