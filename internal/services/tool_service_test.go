package services

import (
	"context"
	"testing"

	"ai-tools-api/internal/domain/tool"
	"ai-tools-api/internal/repository"
	apperrors "ai-tools-api/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeToolRepo struct {
	lastQuery  repository.ToolQuery
	tools      []tool.Tool
	categories []string
}

func (f *fakeToolRepo) List(_ context.Context, q repository.ToolQuery) ([]tool.Tool, error) {
	f.lastQuery = q
	return f.tools, nil
}

func (f *fakeToolRepo) DistinctCategories(_ context.Context) ([]string, error) {
	return f.categories, nil
}

func (f *fakeToolRepo) GetByID(_ context.Context, id primitive.ObjectID) (tool.Tool, error) {
	for _, t := range f.tools {
		if t.ID == id {
			return t, nil
		}
	}
	return tool.Tool{}, apperrors.ErrNotFound
}

func TestList_DefaultsAndWhitelist(t *testing.T) {
	t.Parallel()

	repo := &fakeToolRepo{}
	svc := NewToolService(repo)
	ctx := context.Background()

	_, err := svc.List(ctx, "", "popularityScore")
	require.NoError(t, err)
	assert.Equal(t, "popularityScore", repo.lastQuery.SortField)
	assert.Equal(t, int64(50), repo.lastQuery.Limit)

	_, err = svc.List(ctx, "", "monthlyUsers")
	require.NoError(t, err)
	assert.Equal(t, "monthlyUsers", repo.lastQuery.SortField)

	// Unknown sort fields fall back to popularity.
	_, err = svc.List(ctx, "", "password")
	require.NoError(t, err)
	assert.Equal(t, "popularityScore", repo.lastQuery.SortField)

	_, err = svc.List(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, "popularityScore", repo.lastQuery.SortField)
}

func TestList_CategoryFilter(t *testing.T) {
	t.Parallel()

	repo := &fakeToolRepo{}
	svc := NewToolService(repo)
	ctx := context.Background()

	_, err := svc.List(ctx, "Design", "")
	require.NoError(t, err)
	assert.Equal(t, "Design", repo.lastQuery.Category)

	// "all" and absent both mean unfiltered.
	_, err = svc.List(ctx, "all", "")
	require.NoError(t, err)
	assert.Equal(t, "", repo.lastQuery.Category)

	_, err = svc.List(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, "", repo.lastQuery.Category)
}

func TestGetByID(t *testing.T) {
	t.Parallel()

	known := tool.Tool{ID: primitive.NewObjectID(), Name: "Figma AI", Category: "Design"}
	repo := &fakeToolRepo{tools: []tool.Tool{known}}
	svc := NewToolService(repo)
	ctx := context.Background()

	got, err := svc.GetByID(ctx, known.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, known.Name, got.Name)

	_, err = svc.GetByID(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Unparsable ids are a not-found, not an internal error.
	_, err = svc.GetByID(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCategories(t *testing.T) {
	t.Parallel()

	repo := &fakeToolRepo{categories: []string{"Design", "Writing"}}
	svc := NewToolService(repo)

	got, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Design", "Writing"}, got)
}
