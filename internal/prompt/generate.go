package prompt

import (
	"fmt"
	"strings"

	"github.com/nissyi-gh/quadro/internal/model"
)

const yamlFormat = `Responda no formato YAML abaixo. Envie apenas o bloco de código YAML, sem nenhum outro texto.

` + "```yaml" + `
tasks:
  - title: "Nome da tarefa"
    description: "Descrição detalhada da tarefa"
    date: "YYYY-MM-DD"
    column: "todo"
` + "```" + `

Campos:
- title: (obrigatório) título da tarefa
- description: (opcional) descrição detalhada
- date: (opcional) data de entrega (formato YYYY-MM-DD)
- column: (opcional) todo, done ou pendent (padrão: todo)`

// GenerateNew returns a prompt for creating new tasks from scratch.
func GenerateNew() string {
	return fmt.Sprintf(`Você é um assistente de gerenciamento de tarefas.
Divida o pedido do usuário em tarefas de tamanho adequado.

%s
`, yamlFormat)
}

// GenerateFromTask returns a prompt for breaking down an existing task.
func GenerateFromTask(task model.Task) string {
	var sb strings.Builder

	sb.WriteString("Você é um assistente de gerenciamento de tarefas.\n")
	sb.WriteString("Divida a tarefa abaixo em tarefas menores e mais concretas.\n\n")

	sb.WriteString("## Tarefa\n")
	sb.WriteString(fmt.Sprintf("- Título: %s\n", task.Title))
	if task.Description != "" {
		sb.WriteString(fmt.Sprintf("- Descrição: %s\n", task.Description))
	}
	if task.Date != "" {
		sb.WriteString(fmt.Sprintf("- Data: %s\n", task.Date))
	}
	sb.WriteString(fmt.Sprintf("- Coluna: %s\n", task.Column))

	sb.WriteString("\n")
	sb.WriteString(yamlFormat)
	sb.WriteString("\n")

	return sb.String()
}
