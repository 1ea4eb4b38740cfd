package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nissyi-gh/quadro/internal/board"
	"github.com/nissyi-gh/quadro/internal/importer"
	"github.com/nissyi-gh/quadro/internal/model"
)

func TestGenerateFromTask(t *testing.T) {
	task := model.Task{Title: "Mudança", Description: "apartamento novo", Date: "2024-04-01", Column: model.Todo}

	got := GenerateFromTask(task)

	assert.Contains(t, got, "- Título: Mudança")
	assert.Contains(t, got, "- Descrição: apartamento novo")
	assert.Contains(t, got, "- Data: 2024-04-01")
	assert.Contains(t, got, "- Coluna: todo")
}

func TestGenerateFromTaskSkipsEmptyFields(t *testing.T) {
	got := GenerateFromTask(model.Task{Title: "x", Column: model.Done})

	assert.NotContains(t, got, "Descrição:")
	assert.NotContains(t, got, "- Data:")
}

func TestExampleYAMLIsImportable(t *testing.T) {
	start := strings.Index(yamlFormat, "```yaml\n") + len("```yaml\n")
	end := strings.LastIndex(yamlFormat, "```")
	require.Greater(t, end, start)

	example := strings.ReplaceAll(yamlFormat[start:end], "YYYY-MM-DD", "2030-01-01")
	b := board.New(nil)
	n, err := importer.Import(b, example)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, GenerateNew(), "```yaml")
}
