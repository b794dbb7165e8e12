package tool

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories is the closed set of valid tool categories.
var Categories = []string{"Productivity", "Development", "Design", "Research", "Writing"}

// Tool represents a document in the aitools collection. Records are seeded or
// managed externally; this service only reads them.
type Tool struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Category        string             `bson:"category"`
	Description     string             `bson:"description"`
	PopularityScore int                `bson:"popularityScore"`
	MonthlyUsers    int64              `bson:"monthlyUsers"`
	Website         string             `bson:"website"`
	Features        []string           `bson:"features"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

// IsValidCategory reports whether c is one of the enumerated categories.
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Validate checks the document invariants. The document store does not enforce
// a schema, so writers (the seeder) call this before inserting.
func (t Tool) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	if !IsValidCategory(t.Category) {
		return fmt.Errorf("invalid category %q", t.Category)
	}
	if t.PopularityScore < 0 || t.PopularityScore > 100 {
		return fmt.Errorf("popularityScore %d out of range [0,100]", t.PopularityScore)
	}
	if t.MonthlyUsers < 0 {
		return fmt.Errorf("monthlyUsers must be non-negative")
	}
	if t.Website == "" {
		return fmt.Errorf("tool website is required")
	}
	return nil
}
