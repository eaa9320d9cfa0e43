package web

import (
	"fmt"

	"github.com/drivelens/drivelens/src/models"
)

// DocumentText flattens one extracted document for the prompt, headed
// by its file name so the model can tell documents apart.
func DocumentText(name, text string) string {
	return fmt.Sprintf("\n--- DOCUMENT: %s ---\n%s", name, text)
}

// AssemblePrompt builds the ordered part sequence for one model
// request: the user prompt always leads, then the extracted parts in
// the order the user selected their files.
func AssemblePrompt(prompt string, fileParts []models.Part) []models.Part {
	parts := make([]models.Part, 0, len(fileParts)+1)
	parts = append(parts, models.TextPart(prompt))
	return append(parts, fileParts...)
}
