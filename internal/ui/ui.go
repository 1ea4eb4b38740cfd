package ui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/nissyi-gh/quadro/internal/board"
	"github.com/nissyi-gh/quadro/internal/dates"
	"github.com/nissyi-gh/quadro/internal/form"
	"github.com/nissyi-gh/quadro/internal/i18n"
	"github.com/nissyi-gh/quadro/internal/importer"
	"github.com/nissyi-gh/quadro/internal/logging"
	"github.com/nissyi-gh/quadro/internal/model"
	"github.com/nissyi-gh/quadro/internal/prompt"
	"github.com/nissyi-gh/quadro/internal/render"
)

type appState int

const (
	stateBoard appState = iota
	stateForm
	stateConfirm
)

const fadeDuration = 100 * time.Millisecond

// Form fields in tab order.
const (
	fieldTitle = iota
	fieldDescription
	fieldDate
	fieldCount
)

var (
	appStyle     = lipgloss.NewStyle().Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	confirmStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	columnStyle  = lipgloss.NewStyle().Padding(0, 1)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	activeHeader = headerStyle.Foreground(lipgloss.Color("170")).Underline(true)
	modalStyle   = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("170"))
	labelStyle = lipgloss.NewStyle().Bold(true)
)

type extraKeyMap struct {
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Advance key.Binding
	Toggle  key.Binding
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Copy    key.Binding
	Prompt  key.Binding
	Import  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// newExtraKeyMap builds the board bindings with help labels translated by t.
func newExtraKeyMap(t func(string) string) extraKeyMap {
	return extraKeyMap{
		Add: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a/n", t(i18n.HelpAdd)),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", t(i18n.HelpEdit)),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", t(i18n.HelpDelete)),
		),
		Advance: key.NewBinding(
			key.WithKeys(" ", "space", "m"),
			key.WithHelp("space/m", t(i18n.HelpAdvance)),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", t(i18n.HelpDetails)),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", t(i18n.HelpPrevColumn)),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", t(i18n.HelpNextColumn)),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", t(i18n.HelpUp)),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", t(i18n.HelpDown)),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", t(i18n.HelpCopy)),
		),
		Prompt: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", t(i18n.HelpPrompt)),
		),
		Import: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", t(i18n.HelpImport)),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", t(i18n.HelpHelp)),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", t(i18n.HelpQuit)),
		),
	}
}

func (k extraKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Advance, k.Toggle, k.Help, k.Quit}
}

func (k extraKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Edit, k.Delete, k.Advance, k.Toggle},
		{k.Left, k.Right, k.Up, k.Down},
		{k.Copy, k.Prompt, k.Import},
		{k.Help, k.Quit},
	}
}

// Options are the collaborators of the board UI.
type Options struct {
	Board      *board.Board
	Storage    board.KV
	StorageKey string
	Dates      *dates.Formatter
	Translator *i18n.Translator
	Logger     *log.Logger
}

// Model is the top-level BubbleTea model for the board.
type Model struct {
	state      appState
	board      *board.Board
	storage    board.KV
	storageKey string
	dates      *dates.Formatter
	renderer   *render.Renderer
	view       *render.View
	tr         *i18n.Translator
	logger     *log.Logger

	form       *form.Form
	titleInput textinput.Model
	descInput  textarea.Model
	dateInput  dateInput
	focus      int

	keys     extraKeyMap
	help     help.Model
	col      int
	row      int
	expanded map[string]bool
	fading   map[string]bool

	copy  func(string) error
	paste func() (string, error)

	status  string
	err     error
	saveErr error
	width   int
	height  int
}

type fadeDoneMsg struct{ id string }

// NewModel creates the board UI. The board should already hold the tasks
// restored from storage.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Dates == nil {
		opts.Dates = dates.New()
	}

	ti := textinput.New()
	ti.Placeholder = "..."
	ti.CharLimit = 256

	ta := textarea.New()
	ta.Placeholder = "..."
	ta.CharLimit = 4096
	ta.SetHeight(4)
	ta.ShowLineNumbers = false

	m := Model{
		state:      stateBoard,
		board:      opts.Board,
		storage:    opts.Storage,
		storageKey: opts.StorageKey,
		dates:      opts.Dates,
		renderer:   render.NewRenderer(opts.Dates),
		tr:         opts.Translator,
		logger:     opts.Logger,
		form:       form.New(opts.Dates.Min()),
		titleInput: ti,
		descInput:  ta,
		dateInput:  newDateInput(time.Now),
		help:       help.New(),
		expanded:   make(map[string]bool),
		fading:     make(map[string]bool),
		copy:       clipboard.WriteAll,
		paste:      clipboard.ReadAll,
	}
	m.keys = newExtraKeyMap(m.t)
	m.refresh()
	return m
}

// SaveErr reports the error of the save performed on quit, if any.
func (m Model) SaveErr() error {
	return m.saveErr
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) t(id string) string {
	if m.tr == nil {
		return id
	}
	return m.tr.T(id)
}

// refresh re-projects the board and keeps the cursor inside the columns.
func (m *Model) refresh() {
	m.view = m.renderer.Project(m.board.Tasks())
	for id, open := range m.expanded {
		if !m.view.SetExpanded(id, open) {
			delete(m.expanded, id)
		}
	}
	n := len(m.view.Column(m.column()))
	if m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m Model) column() model.Column {
	return model.Columns()[m.col]
}

func (m Model) selectedCard() (render.Card, bool) {
	cards := m.view.Column(m.column())
	if m.row < 0 || m.row >= len(cards) {
		return render.Card{}, false
	}
	return cards[m.row], true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		w := m.modalWidth() - modalStyle.GetHorizontalFrameSize()
		m.titleInput.Width = w - 2
		m.descInput.SetWidth(w)
		return m, nil

	case fadeDoneMsg:
		delete(m.fading, msg.id)
		return m, nil
	}

	switch m.state {
	case stateForm:
		return m.updateForm(msg)
	case stateConfirm:
		return m.updateConfirm(msg)
	}
	return m.updateBoard(msg)
}

func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.status = ""

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.save()
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Left):
		m.col = (m.col + len(model.Columns()) - 1) % len(model.Columns())
		m.refresh()

	case key.Matches(keyMsg, m.keys.Right):
		m.col = (m.col + 1) % len(model.Columns())
		m.refresh()

	case key.Matches(keyMsg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.row < len(m.view.Column(m.column()))-1 {
			m.row++
		}

	case key.Matches(keyMsg, m.keys.Add):
		m.form.OpenAdd()
		return m, m.openForm()

	case key.Matches(keyMsg, m.keys.Edit):
		card, ok := m.selectedCard()
		if !ok {
			return m, nil
		}
		session, err := m.board.BeginEdit(card.TaskID)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.form.OpenEdit(session)
		return m, m.openForm()

	case key.Matches(keyMsg, m.keys.Delete):
		if _, ok := m.selectedCard(); ok {
			m.state = stateConfirm
		}

	case key.Matches(keyMsg, m.keys.Advance):
		card, ok := m.selectedCard()
		if !ok {
			return m, nil
		}
		if _, err := m.board.Advance(card.TaskID); err != nil {
			m.err = err
			return m, nil
		}
		m.fading[card.TaskID] = true
		m.refresh()
		id := card.TaskID
		return m, tea.Tick(fadeDuration, func(time.Time) tea.Msg { return fadeDoneMsg{id: id} })

	case key.Matches(keyMsg, m.keys.Toggle):
		if card, ok := m.selectedCard(); ok {
			m.expanded[card.TaskID] = m.view.Toggle(card.TaskID)
		}

	case key.Matches(keyMsg, m.keys.Copy):
		card, ok := m.selectedCard()
		if !ok {
			return m, nil
		}
		text := card.Title + " (" + card.DateLabel + ")"
		if card.Description != "" {
			text += "\n" + card.Description
		}
		m.copyText(text, i18n.Copied)

	case key.Matches(keyMsg, m.keys.Prompt):
		text := prompt.GenerateNew()
		if card, ok := m.selectedCard(); ok {
			if t, found := m.board.Tasks().Get(card.TaskID); found {
				text = prompt.GenerateFromTask(t)
			}
		}
		m.copyText(text, i18n.PromptCopied)

	case key.Matches(keyMsg, m.keys.Import):
		text, err := m.paste()
		if err != nil {
			m.err = err
			return m, nil
		}
		n, err := importer.Import(m.board, text)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.logger.Info("tasks imported", "count", n)
		m.err = nil
		m.refresh()
		if m.tr != nil {
			m.status = m.tr.Count(i18n.TasksImported, n)
		}
	}
	return m, nil
}

func (m *Model) copyText(text, okMsg string) {
	if err := m.copy(text); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.status = m.t(okMsg)
}

// save writes the board to storage. It runs once, when the board closes.
func (m *Model) save() {
	if m.storage == nil {
		return
	}
	if err := m.board.Save(context.Background(), m.storage, m.storageKey, m.dates); err != nil {
		m.logger.Error("save failed", "err", err)
		m.saveErr = err
	}
}

func (m *Model) openForm() tea.Cmd {
	m.state = stateForm
	m.titleInput.SetValue(m.form.Values.Title)
	m.descInput.SetValue(m.form.Values.Description)
	m.dateInput.Reset()
	m.dateInput.SetValue(m.form.Values.Date)
	return m.focusField(fieldTitle)
}

func (m *Model) focusField(field int) tea.Cmd {
	m.focus = field
	m.titleInput.Blur()
	m.descInput.Blur()
	m.dateInput.Blur()
	switch field {
	case fieldDescription:
		return m.descInput.Focus()
	case fieldDate:
		return m.dateInput.Focus()
	default:
		return m.titleInput.Focus()
	}
}

func (m *Model) closeForm() {
	m.form.Close()
	m.titleInput.Reset()
	m.descInput.Reset()
	m.dateInput.Reset()
	m.state = stateBoard
}

// syncForm copies the inputs into the form values.
func (m *Model) syncForm() {
	m.form.Values.Title = m.titleInput.Value()
	m.form.Values.Description = m.descInput.Value()
	m.form.Values.Date = ""
	if !m.dateInput.IsEmpty() {
		if v, err := m.dateInput.Value(); err == nil {
			m.form.Values.Date = v
		} else {
			m.form.Values.Date = m.dateInput.Raw()
		}
	}
}

func (m *Model) submit() {
	m.syncForm()
	err := m.form.Submit(func(v board.Values) {
		m.board.Add(v, model.Todo)
	})
	if errors.Is(err, form.ErrInvalid) {
		return
	}
	if err != nil {
		m.err = err
	} else {
		m.err = nil
	}
	m.closeForm()
	m.refresh()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.save()
			return m, tea.Quit
		case "esc":
			m.closeForm()
			return m, nil
		case "ctrl+s":
			m.submit()
			return m, nil
		case "enter":
			if m.focus != fieldDescription {
				m.submit()
				return m, nil
			}
		case "tab":
			return m, m.focusField((m.focus + 1) % fieldCount)
		case "shift+tab":
			return m, m.focusField((m.focus + fieldCount - 1) % fieldCount)
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldDescription:
		m.descInput, cmd = m.descInput.Update(msg)
	case fieldDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
	default:
		m.titleInput, cmd = m.titleInput.Update(msg)
	}
	if m.form.Validated {
		m.syncForm()
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.save()
			return m, tea.Quit
		case "y":
			if card, ok := m.selectedCard(); ok {
				m.board.Delete(card.TaskID)
				delete(m.expanded, card.TaskID)
			}
			m.state = stateBoard
			m.refresh()
			return m, nil
		case "n", "esc":
			m.state = stateBoard
			return m, nil
		}
	}
	return m, nil
}

func (m Model) modalWidth() int {
	w := m.width - appStyle.GetHorizontalFrameSize()
	if w > 64 {
		w = 64
	}
	if w < 30 {
		w = 30
	}
	return w
}

func (m Model) View() string {
	var errView string
	if m.err != nil {
		errView = "\n" + errorStyle.Render("Error: "+m.err.Error())
	}

	switch m.state {
	case stateForm:
		return appStyle.Render(m.formView() + errView)
	case stateConfirm:
		card, _ := m.selectedCard()
		return appStyle.Render(
			confirmStyle.Render(m.t(i18n.ConfirmDelete)) + "\n\n" +
				"  " + card.Title + "\n\n" +
				statusStyle.Render(m.t(i18n.ConfirmHint)) +
				errView,
		)
	}

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = statusStyle.Render(m.status) + "\n" + footer
	}
	body := m.boardView(m.height - appStyle.GetVerticalFrameSize() - lipgloss.Height(footer) - lipgloss.Height(errView) - 1)
	return appStyle.Render(body + errView + "\n" + footer)
}

var columnTitles = map[model.Column]string{
	model.Todo:    i18n.ColumnTodo,
	model.Done:    i18n.ColumnDone,
	model.Pendent: i18n.ColumnPendent,
}

func (m Model) boardView(height int) string {
	contentWidth := m.width - appStyle.GetHorizontalFrameSize()
	colWidth := contentWidth / len(model.Columns())
	if colWidth < 20 {
		colWidth = 20
	}
	cardWidth := colWidth - columnStyle.GetHorizontalFrameSize()

	cols := make([]string, 0, len(model.Columns()))
	for i, c := range model.Columns() {
		cards := m.view.Column(c)
		style := headerStyle
		if i == m.col {
			style = activeHeader
		}
		header := style.Render(m.t(columnTitles[c])) + statusStyle.Render(" "+strconv.Itoa(len(cards)))

		rendered := make([]string, len(cards))
		for j, card := range cards {
			rendered[j] = card.View(cardWidth, i == m.col && j == m.row, m.fading[card.TaskID])
		}
		selected := -1
		if i == m.col {
			selected = m.row
		}
		body := strings.Join(visible(rendered, selected, height-2), "\n")
		if len(cards) == 0 {
			body = statusStyle.Render(m.t(i18n.EmptyColumn))
		}
		cols = append(cols, columnStyle.Width(colWidth).Render(header+"\n\n"+body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// visible returns the cards that fit in height lines, scrolled so that the
// selected card is shown. A height of zero or less disables clipping.
func visible(cards []string, selected, height int) []string {
	if height <= 0 || len(cards) == 0 {
		return cards
	}
	start := 0
	if selected >= 0 {
		for start < selected && linesOf(cards[start:selected+1]) > height {
			start++
		}
	}
	end := start
	used := 0
	for end < len(cards) {
		h := lipgloss.Height(cards[end]) + 1
		if used+h > height && end > start {
			break
		}
		used += h
		end++
	}
	return cards[start:end]
}

func linesOf(cards []string) int {
	n := 0
	for _, c := range cards {
		n += lipgloss.Height(c) + 1
	}
	return n
}

func (m Model) formView() string {
	var fieldErrs map[string]string
	if m.form.Validated {
		fieldErrs = make(map[string]string)
		for _, fe := range m.form.Validate() {
			fieldErrs[fe.Field] = m.t(fe.Message)
		}
	}
	fieldErr := func(name string) string {
		if msg, ok := fieldErrs[name]; ok {
			return "\n" + errorStyle.Render(msg)
		}
		return ""
	}

	content := titleStyle.Render(m.t(m.form.Title())) + "\n\n" +
		labelStyle.Render(m.t(i18n.FieldTitle)) + "\n" + m.titleInput.View() + fieldErr("title") + "\n\n" +
		labelStyle.Render(m.t(i18n.FieldDescription)) + "\n" + m.descInput.View() + "\n\n" +
		labelStyle.Render(m.t(i18n.FieldDate)) + "  " + statusStyle.Render("≥ "+m.dates.Format(m.form.Min)) + "\n" +
		m.dateInput.View() + fieldErr("date") + "\n\n" +
		confirmStyle.Render("ctrl+s: "+m.t(m.form.Confirm())) + "  " + statusStyle.Render("esc: "+m.t(i18n.ModalCancel)) + "\n" +
		statusStyle.Render(m.t(i18n.FormHint))

	return modalStyle.Width(m.modalWidth() - modalStyle.GetHorizontalFrameSize()).Render(content)
}
