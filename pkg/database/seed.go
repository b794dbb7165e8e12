package database

import (
	"context"
	"fmt"
	"time"

	"ai-tools-api/internal/domain/tool"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SampleTools returns the starter catalog inserted by the seed command.
func SampleTools() []tool.Tool {
	now := time.Now()
	tools := []tool.Tool{
		{
			Name:            "ChatGPT",
			Category:        "Productivity",
			Description:     "Conversational assistant for drafting, summarizing and answering questions.",
			PopularityScore: 98,
			MonthlyUsers:    180000000,
			Website:         "https://chat.openai.com",
			Features:        []string{"Chat interface", "Code interpreter", "Custom instructions"},
		},
		{
			Name:            "GitHub Copilot",
			Category:        "Development",
			Description:     "In-editor code completion and chat trained on public repositories.",
			PopularityScore: 94,
			MonthlyUsers:    15000000,
			Website:         "https://github.com/features/copilot",
			Features:        []string{"Inline completions", "Chat", "Test generation"},
		},
		{
			Name:            "Midjourney",
			Category:        "Design",
			Description:     "Text-to-image generation with strong stylistic control.",
			PopularityScore: 91,
			MonthlyUsers:    16000000,
			Website:         "https://www.midjourney.com",
			Features:        []string{"Image generation", "Upscaling", "Style references"},
		},
		{
			Name:            "Perplexity",
			Category:        "Research",
			Description:     "Answer engine that cites its sources for every response.",
			PopularityScore: 87,
			MonthlyUsers:    10000000,
			Website:         "https://www.perplexity.ai",
			Features:        []string{"Cited answers", "Focus modes", "Collections"},
		},
		{
			Name:            "Jasper",
			Category:        "Writing",
			Description:     "Marketing copy generator with brand voice support.",
			PopularityScore: 78,
			MonthlyUsers:    1200000,
			Website:         "https://www.jasper.ai",
			Features:        []string{"Templates", "Brand voice", "SEO mode"},
		},
		{
			Name:            "Notion AI",
			Category:        "Productivity",
			Description:     "Writing and summarization assistant built into the Notion workspace.",
			PopularityScore: 85,
			MonthlyUsers:    4000000,
			Website:         "https://www.notion.so/product/ai",
			Features:        []string{"Summaries", "Action items", "Translation"},
		},
		{
			Name:            "Tabnine",
			Category:        "Development",
			Description:     "Privacy-focused code completion that can run on-premises.",
			PopularityScore: 72,
			MonthlyUsers:    1000000,
			Website:         "https://www.tabnine.com",
			Features:        []string{"Local models", "Team training", "IDE plugins"},
		},
		{
			Name:            "Canva Magic Studio",
			Category:        "Design",
			Description:     "Generative design tools inside the Canva editor.",
			PopularityScore: 83,
			MonthlyUsers:    30000000,
			Website:         "https://www.canva.com/magic",
			Features:        []string{"Magic Design", "Background removal", "Text to image"},
		},
		{
			Name:            "Elicit",
			Category:        "Research",
			Description:     "Literature review assistant that extracts claims from papers.",
			PopularityScore: 68,
			MonthlyUsers:    400000,
			Website:         "https://elicit.com",
			Features:        []string{"Paper search", "Data extraction", "Summaries"},
		},
		{
			Name:            "Grammarly",
			Category:        "Writing",
			Description:     "Grammar, tone and clarity suggestions across the browser.",
			PopularityScore: 89,
			MonthlyUsers:    30000000,
			Website:         "https://www.grammarly.com",
			Features:        []string{"Grammar checks", "Tone detection", "Rewrites"},
		},
	}

	for i := range tools {
		tools[i].CreatedAt = now
		tools[i].UpdatedAt = now
	}
	return tools
}

// SeedTools inserts the sample catalog when the collection is empty. Every
// document is validated first since the store enforces no schema.
func SeedTools(ctx context.Context, db *mongo.Database) (int, error) {
	collection := db.Collection(ToolsCollection)

	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count tools: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tools := SampleTools()
	docs := make([]interface{}, len(tools))
	for i, t := range tools {
		if err := t.Validate(); err != nil {
			return 0, fmt.Errorf("invalid seed tool %q: %w", t.Name, err)
		}
		docs[i] = t
	}

	res, err := collection.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("failed to insert tools: %w", err)
	}
	return len(res.InsertedIDs), nil
}
