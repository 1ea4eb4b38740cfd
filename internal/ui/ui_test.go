package ui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nissyi-gh/quadro/internal/board"
	"github.com/nissyi-gh/quadro/internal/dates"
	"github.com/nissyi-gh/quadro/internal/i18n"
	"github.com/nissyi-gh/quadro/internal/model"
	"github.com/nissyi-gh/quadro/internal/store"
)

type memoryKV map[string]string

func (m memoryKV) Get(_ context.Context, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", fmt.Errorf("get %q: %w", key, store.ErrStorageEmpty)
	}
	return v, nil
}

func (m memoryKV) Set(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

func newTestModel(t *testing.T, b *board.Board, kv memoryKV) Model {
	t.Helper()
	tr, err := i18n.New("pt-BR")
	require.NoError(t, err)
	m := NewModel(Options{
		Board:      b,
		Storage:    kv,
		StorageKey: "tasks",
		Dates:      dates.New(),
		Translator: tr,
	})
	m.copy = func(string) error { return nil }
	m.paste = func() (string, error) { return "", errors.New("no clipboard") }
	return m
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "ctrl+s":
			msg = tea.KeyMsg{Type: tea.KeyCtrlS}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = press(t, m, string(r))
	}
	return m
}

func TestAddTaskThroughForm(t *testing.T) {
	b := board.New(nil)
	m := newTestModel(t, b, memoryKV{})

	m, _ = press(t, m, "a")
	require.Equal(t, stateForm, m.state)
	assert.Equal(t, i18n.ModalAddTitle, m.form.Title())

	m = typeText(t, m, "Buy milk")
	m, _ = press(t, m, "tab")
	m = typeText(t, m, "2%")
	m, _ = press(t, m, "ctrl+s")

	assert.Equal(t, stateBoard, m.state)
	todo := b.Tasks().Column(model.Todo)
	require.Len(t, todo, 1)
	assert.Equal(t, "Buy milk", todo[0].Title)
	assert.Equal(t, "2%", todo[0].Description)
	assert.Equal(t, "", todo[0].Date)
	assert.Contains(t, m.View(), "Buy milk")
	assert.Contains(t, m.View(), "Hoje")
}

func TestSubmitEmptyTitleKeepsFormOpen(t *testing.T) {
	b := board.New(nil)
	m := newTestModel(t, b, memoryKV{})

	m, _ = press(t, m, "a", "enter")

	assert.Equal(t, stateForm, m.state)
	assert.True(t, m.form.Validated)
	assert.Equal(t, 0, b.Tasks().Len())
	assert.Contains(t, m.View(), "Informe um título")
}

func TestEscClosesFormAndResetsWording(t *testing.T) {
	b := board.New(nil)
	b.Add(board.Values{Title: "edit me"}, model.Todo)
	m := newTestModel(t, b, memoryKV{})

	m, _ = press(t, m, "e")
	require.Equal(t, stateForm, m.state)
	assert.Equal(t, i18n.ModalEditTitle, m.form.Title())
	assert.Contains(t, m.View(), "Editar tarefa")
	assert.Equal(t, "edit me", m.titleInput.Value())

	m, _ = press(t, m, "esc")
	assert.Equal(t, stateBoard, m.state)
	assert.Equal(t, i18n.ModalAddTitle, m.form.Title())
	assert.Nil(t, m.form.Session())
}

func TestEditUpdatesSelectedTask(t *testing.T) {
	b := board.New(nil)
	b.Add(board.Values{Title: "first"}, model.Done)
	second := b.Add(board.Values{Title: "second"}, model.Done)
	m := newTestModel(t, b, memoryKV{})

	m, _ = press(t, m, "l", "j", "e")
	require.Equal(t, second.ID, m.form.Session().TaskID())
	m = typeText(t, m, "!")
	m, _ = press(t, m, "enter")

	got, ok := b.Tasks().Get(second.ID)
	require.True(t, ok)
	assert.Equal(t, "second!", got.Title)
	assert.Equal(t, model.Done, got.Column)
	assert.Equal(t, 2, b.Tasks().Len())
}

func TestAdvanceFadesAndCycles(t *testing.T) {
	b := board.New(nil)
	task := b.Add(board.Values{Title: "move"}, model.Todo)
	m := newTestModel(t, b, memoryKV{})

	m, cmd := press(t, m, "m")
	require.NotNil(t, cmd)
	assert.True(t, m.fading[task.ID])
	got, _ := b.Tasks().Get(task.ID)
	assert.Equal(t, model.Done, got.Column)

	next, _ := m.Update(fadeDoneMsg{id: task.ID})
	m = next.(Model)
	assert.False(t, m.fading[task.ID])

	m, _ = press(t, m, "l", "m", "l", "m")
	got, _ = b.Tasks().Get(task.ID)
	assert.Equal(t, model.Todo, got.Column)
	card, ok := m.view.Find(task.ID)
	require.True(t, ok)
	assert.Equal(t, "clock", card.AdvanceIcon())
}

func TestDeleteWithConfirm(t *testing.T) {
	b := board.New(nil)
	b.Add(board.Values{Title: "keep"}, model.Todo)
	b.Add(board.Values{Title: "drop"}, model.Todo)
	m := newTestModel(t, b, memoryKV{})

	m, _ = press(t, m, "j", "d")
	require.Equal(t, stateConfirm, m.state)
	assert.Contains(t, m.View(), "drop")

	m, _ = press(t, m, "n")
	assert.Equal(t, 2, b.Tasks().Len())

	m, _ = press(t, m, "d", "y")
	assert.Equal(t, stateBoard, m.state)
	tasks := b.Tasks().Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "keep", tasks[0].Title)
	assert.Equal(t, 0, m.row)
}

func TestToggleShowsDescription(t *testing.T) {
	b := board.New(nil)
	task := b.Add(board.Values{Title: "read", Description: "xyzzy"}, model.Todo)
	m := newTestModel(t, b, memoryKV{})

	assert.NotContains(t, m.View(), "xyzzy")

	m, _ = press(t, m, "enter")
	assert.True(t, m.expanded[task.ID])
	assert.Contains(t, m.View(), "xyzzy")

	m, _ = press(t, m, "enter")
	assert.NotContains(t, m.View(), "xyzzy")
}

func TestQuitSavesBoard(t *testing.T) {
	kv := memoryKV{}
	b := board.New(nil)
	b.Add(board.Values{Title: "persist me", Description: "d"}, model.Pendent)
	m := newTestModel(t, b, kv)

	m, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	require.NoError(t, m.SaveErr())

	restored := board.New(nil)
	require.NoError(t, restored.Load(context.Background(), kv, "tasks"))
	pendent := restored.Tasks().Column(model.Pendent)
	require.Len(t, pendent, 1)
	assert.Equal(t, "persist me", pendent[0].Title)
	assert.Equal(t, time.Now().Format(model.DateLayout), pendent[0].Date)
}

func TestImportFromClipboard(t *testing.T) {
	b := board.New(nil)
	m := newTestModel(t, b, memoryKV{})
	m.paste = func() (string, error) {
		return "tasks:\n  - title: one\n  - title: two\n    column: done\n", nil
	}

	m, _ = press(t, m, "i")

	assert.NoError(t, m.err)
	assert.Equal(t, 2, b.Tasks().Len())
	assert.Equal(t, "2 tarefas importadas", m.status)
}

func TestCopySelectedTask(t *testing.T) {
	b := board.New(nil)
	b.Add(board.Values{Title: "share", Description: "details"}, model.Todo)
	m := newTestModel(t, b, memoryKV{})
	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}

	m, _ = press(t, m, "y")

	assert.Equal(t, "share (Hoje)\ndetails", copied)
	assert.Equal(t, "Copiado para a área de transferência", m.status)
}

func TestVisibleKeepsSelectionOnScreen(t *testing.T) {
	cards := []string{"a\na", "b\nb", "c\nc", "d\nd"}

	assert.Equal(t, cards, visible(cards, 0, 0))
	assert.Equal(t, []string{"a\na", "b\nb"}, visible(cards, 0, 6))
	assert.Equal(t, []string{"c\nc", "d\nd"}, visible(cards, 3, 6))
}

func TestHelpLabelsAreTranslated(t *testing.T) {
	m := newTestModel(t, board.New(nil), memoryKV{})

	assert.Equal(t, "adicionar", m.keys.Add.Help().Desc)
	assert.Equal(t, "coluna anterior", m.keys.Left.Help().Desc)
	assert.Contains(t, m.View(), "salvar e sair")

	tr, err := i18n.New("en")
	require.NoError(t, err)
	en := NewModel(Options{Board: board.New(nil), Translator: tr})
	assert.Equal(t, "save & quit", en.keys.Quit.Help().Desc)
}
