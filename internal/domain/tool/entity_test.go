package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTool() Tool {
	return Tool{
		Name:            "Figma AI",
		Category:        "Design",
		Description:     "Generative fills in the canvas.",
		PopularityScore: 75,
		MonthlyUsers:    5000000,
		Website:         "https://www.figma.com",
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validTool().Validate())

	cases := []struct {
		name   string
		mutate func(*Tool)
	}{
		{"missing name", func(x *Tool) { x.Name = "" }},
		{"unknown category", func(x *Tool) { x.Category = "Gaming" }},
		{"score too high", func(x *Tool) { x.PopularityScore = 101 }},
		{"score negative", func(x *Tool) { x.PopularityScore = -1 }},
		{"negative users", func(x *Tool) { x.MonthlyUsers = -1 }},
		{"missing website", func(x *Tool) { x.Website = "" }},
	}

	for _, tc := range cases {
		x := validTool()
		tc.mutate(&x)
		assert.Error(t, x.Validate(), tc.name)
	}
}

func TestIsValidCategory(t *testing.T) {
	t.Parallel()

	for _, c := range Categories {
		assert.True(t, IsValidCategory(c), c)
	}
	assert.False(t, IsValidCategory("design")) // case-sensitive
	assert.False(t, IsValidCategory(""))
}
