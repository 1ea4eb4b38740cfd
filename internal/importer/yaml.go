package importer

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nissyi-gh/quadro/internal/board"
	"github.com/nissyi-gh/quadro/internal/model"
)

// YAMLTask represents a single task in the YAML input.
type YAMLTask struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Date        string `yaml:"date,omitempty"`
	Column      string `yaml:"column,omitempty"`
}

// YAMLInput represents the root structure of the YAML input.
type YAMLInput struct {
	Tasks []YAMLTask `yaml:"tasks"`
}

// Import parses a YAML string and adds its tasks to the board.
// The input is checked completely before any task is added.
// Returns the number of tasks created.
func Import(b *board.Board, yamlStr string) (int, error) {
	var input YAMLInput
	if err := yaml.Unmarshal([]byte(yamlStr), &input); err != nil {
		return 0, fmt.Errorf("YAML parse error: %w", err)
	}

	if len(input.Tasks) == 0 {
		return 0, fmt.Errorf("no tasks found in YAML")
	}

	columns := make([]model.Column, len(input.Tasks))
	for i, yt := range input.Tasks {
		title := strings.TrimSpace(yt.Title)
		if title == "" {
			return 0, fmt.Errorf("task %d: title is required", i+1)
		}
		if yt.Date != "" {
			if _, err := time.Parse(model.DateLayout, yt.Date); err != nil {
				return 0, fmt.Errorf("task %q: invalid date %q", title, yt.Date)
			}
		}
		c, err := model.ParseColumn(yt.Column)
		if err != nil {
			return 0, fmt.Errorf("task %q: %w", title, err)
		}
		columns[i] = c
		input.Tasks[i].Title = title
	}

	for i, yt := range input.Tasks {
		b.Add(board.Values{Title: yt.Title, Description: yt.Description, Date: yt.Date}, columns[i])
	}
	return len(input.Tasks), nil
}
