package httpdto

import (
	"time"

	"ai-tools-api/internal/domain/tool"
)

// ToolDTO mirrors the catalog document shape clients already consume,
// `_id` included.
type ToolDTO struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	PopularityScore int       `json:"popularityScore"`
	MonthlyUsers    int64     `json:"monthlyUsers"`
	Website         string    `json:"website"`
	Features        []string  `json:"features"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func NewToolDTO(t tool.Tool) ToolDTO {
	features := t.Features
	if features == nil {
		features = []string{}
	}
	return ToolDTO{
		ID:              t.ID.Hex(),
		Name:            t.Name,
		Category:        t.Category,
		Description:     t.Description,
		PopularityScore: t.PopularityScore,
		MonthlyUsers:    t.MonthlyUsers,
		Website:         t.Website,
		Features:        features,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func NewToolDTOs(tools []tool.Tool) []ToolDTO {
	dtos := make([]ToolDTO, len(tools))
	for i, t := range tools {
		dtos[i] = NewToolDTO(t)
	}
	return dtos
}
