package orchestrator

import (
	"fmt"
	"time"

	"eva-assistant/internal/model"
	"eva-assistant/pkg/gemini"
)

// buildSystemPrompt renders the persona with the current date and time
// so the model can resolve relative terms like "tomorrow at 5pm".
func buildSystemPrompt(timezone string) string {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return fmt.Sprintf(SystemPromptTemplate, time.Now().In(loc).Format(DateTimeFormat))
}

// historyToContents maps stored turns into model conversation contents.
// Roles outside human/ai (tool exchanges, drifted encodings) are left out
// of the prompt context.
func historyToContents(history []model.ChatMessage) []gemini.Content {
	contents := make([]gemini.Content, 0, len(history))
	for _, msg := range history {
		var role string
		switch msg.Role {
		case model.RoleHuman:
			role = "user"
		case model.RoleAI:
			role = "model"
		default:
			continue
		}
		contents = append(contents, gemini.Content{
			Role:  role,
			Parts: []gemini.Part{{Text: msg.Text}},
		})
	}
	return contents
}
