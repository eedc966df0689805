// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// Document keys the client understands. Any other field is kept untouched.
const (
	titleField     = "title"
	completedField = "completed"
)

const (
	statusTimeout = 3 * time.Second
	maxTitleWidth = 60
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
	modeError
)

type listModel struct {
	ctx     context.Context
	adapter adapter.TodoAdapter
	logger  *logger.Logger

	todos   []models.TodoItem
	idx     int
	loading bool
	busy    bool
	spinner spinner.Model
	input   textinput.Model
	mode    mode
	status  string
	errMsg  string
	overlay string
}

func newListModel(ctx context.Context, todoAdapter adapter.TodoAdapter, logger *logger.Logger) listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "What needs to be done?"
	in.CharLimit = 200

	return listModel{
		ctx:     ctx,
		adapter: todoAdapter,
		logger:  logger,
		loading: true,
		spinner: s,
		input:   in,
	}
}

func (m listModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), m.spinner.Tick)
}

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case todosLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.todos = msg.todos
		m.clampCursor()
		return m, nil
	case todoSavedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.status = msg.status
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), clearStatusAfter(statusTimeout))
	case todoDeletedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.status = "Deleted"
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), clearStatusAfter(statusTimeout))
	case copiedMsg:
		if msg.err != nil {
			return m.fail(fmt.Errorf("copy id: %w", msg.err))
		}
		m.status = "Copied " + msg.id
		return m, clearStatusAfter(statusTimeout)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.mode == modeAdd || m.mode == modeEdit {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m listModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case modeAdd, modeEdit:
		return m.updateInput(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	case modeError:
		if key.Matches(msg, keys.enter, keys.esc) {
			m.mode = modeBrowse
			m.overlay = ""
		}
		return m, nil
	}

	return m.updateBrowse(msg)
}

func (m listModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.todos)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(msg, keys.add):
		m.mode = modeAdd
		m.input.SetValue("")
		return m, m.input.Focus()
	}

	todo, ok := m.current()
	if !ok || m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.edit):
		m.mode = modeEdit
		m.input.SetValue(todoTitle(todo))
		m.input.CursorEnd()
		return m, m.input.Focus()
	case key.Matches(msg, keys.toggle):
		m.busy = true
		return m, m.cmdToggle(todo)
	case key.Matches(msg, keys.delete):
		m.mode = modeConfirmDelete
	case key.Matches(msg, keys.copy):
		return m, cmdCopy(todo.ID)
	}

	return m, nil
}

func (m listModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeBrowse
		m.input.Blur()
		m.input.SetValue("")
		return m, nil
	case key.Matches(msg, keys.enter):
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.status = "Title cannot be empty"
			return m, nil
		}

		editing := m.mode == modeEdit
		m.mode = modeBrowse
		m.input.Blur()
		m.input.SetValue("")
		m.busy = true

		if editing {
			todo, ok := m.current()
			if !ok {
				m.busy = false
				return m, nil
			}
			return m, m.cmdRename(todo.ID, title)
		}
		return m, m.cmdCreate(title)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m listModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = modeBrowse
		todo, ok := m.current()
		if !ok {
			return m, nil
		}
		m.busy = true
		return m, m.cmdDelete(todo.ID)
	case key.Matches(msg, keys.no):
		m.mode = modeBrowse
	}
	return m, nil
}

// fail shows err in an overlay and reloads the list, which may have changed
// under us.
func (m listModel) fail(err error) (tea.Model, tea.Cmd) {
	m.logger.Err(err).Msg("todo action failed")

	m.mode = modeError
	m.overlay = err.Error()
	m.loading = true
	return m, m.cmdLoad()
}

func (m *listModel) clampCursor() {
	if m.idx >= len(m.todos) {
		m.idx = len(m.todos) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) current() (models.TodoItem, bool) {
	if len(m.todos) == 0 || m.idx < 0 || m.idx >= len(m.todos) {
		return models.TodoItem{}, false
	}
	return m.todos[m.idx], true
}

func (m listModel) cmdLoad() tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		todos, err := a.ListTodos(ctx)
		return todosLoadedMsg{todos: todos, err: err}
	}
}

func (m listModel) cmdCreate(title string) tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		_, err := a.CreateTodo(ctx, map[string]any{titleField: title, completedField: false})
		return todoSavedMsg{status: "Added", err: err}
	}
}

func (m listModel) cmdToggle(todo models.TodoItem) tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		_, err := a.UpdateTodo(ctx, todo.ID, map[string]any{completedField: !isDone(todo)})
		return todoSavedMsg{status: "Updated", err: err}
	}
}

func (m listModel) cmdRename(id, title string) tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		_, err := a.UpdateTodo(ctx, id, map[string]any{titleField: title})
		return todoSavedMsg{status: "Renamed", err: err}
	}
}

func (m listModel) cmdDelete(id string) tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		return todoDeletedMsg{err: a.DeleteTodo(ctx, id)}
	}
}

func cmdCopy(id string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{id: id, err: writeClipboard(id)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func todoTitle(todo models.TodoItem) string {
	if title, ok := todo.Fields[titleField].(string); ok && strings.TrimSpace(title) != "" {
		return title
	}
	return "(untitled)"
}

func isDone(todo models.TodoItem) bool {
	done, _ := todo.Fields[completedField].(bool)
	return done
}
