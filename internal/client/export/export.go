// Package export renders a prediction result as shareable plain text and
// delivers it to a file or the system clipboard.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/careersync/careersync/internal/client/models"
)

// DefaultFileName is used when the user gives no target file.
const DefaultFileName = "career_suggestions.txt"

// writeClipboard is a test seam for clipboard access.
var writeClipboard = clipboard.WriteAll

// Render produces the fixed textual rendering of a result:
//
//	Top Careers:
//	Software Engineer (Score: 0.9), Data Scientist (Score: 0.8)
//	Reasoning: ...
//	Roadmap: step, step, step
func Render(p *models.Prediction) string {
	careers := make([]string, len(p.Careers))
	for i, c := range p.Careers {
		careers[i] = fmt.Sprintf("%s (Score: %s)", c.Career, models.FormatScore(c.Score))
	}
	return fmt.Sprintf("Top Careers:\n%s\nReasoning: %s\nRoadmap: %s",
		strings.Join(careers, ", "), p.Reasoning, strings.Join(p.Roadmap, ", "))
}

// WriteFile renders the result into path (DefaultFileName when empty).
func WriteFile(p *models.Prediction, path string) (string, error) {
	if path == "" {
		path = DefaultFileName
	}
	if err := os.WriteFile(path, []byte(Render(p)), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// Copy puts the rendered result on the system clipboard.
func Copy(p *models.Prediction) error {
	return writeClipboard(Render(p))
}
