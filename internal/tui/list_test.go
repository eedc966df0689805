package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func sampleTodos() []models.TodoItem {
	return []models.TodoItem{
		{ID: "0190a1b2-0000-7000-8000-00000000aaaa", Fields: map[string]any{"title": "buy milk", "completed": false}},
		{ID: "0190a1b2-0000-7000-8000-00000000bbbb", Fields: map[string]any{"title": "walk dog", "completed": true}},
	}
}

func newTestModel(t *testing.T) (listModel, *mock.MockTodoAdapter) {
	t.Helper()

	todoAdapter := mock.NewMockTodoAdapter(gomock.NewController(t))
	return newListModel(context.Background(), todoAdapter, logger.Nop()), todoAdapter
}

// loaded returns a model that already shows todos.
func loaded(t *testing.T, todos []models.TodoItem) (listModel, *mock.MockTodoAdapter) {
	t.Helper()

	m, todoAdapter := newTestModel(t)
	return update(t, m, todosLoadedMsg{todos: todos}), todoAdapter
}

func update(t *testing.T, m listModel, msg tea.Msg) listModel {
	t.Helper()

	next, _ := m.Update(msg)
	model, ok := next.(listModel)
	require.True(t, ok)
	return model
}

// press sends a key. Commands are returned, not run: the text input ones
// block on the cursor blink timer.
func press(t *testing.T, m listModel, k string) (listModel, tea.Cmd) {
	t.Helper()

	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}

	next, cmd := m.Update(msg)
	return next.(listModel), cmd
}

func exec(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func typeText(t *testing.T, m listModel, text string) listModel {
	t.Helper()

	for _, r := range text {
		m, _ = press(t, m, string(r))
	}
	return m
}

func TestListModel_InitLoadsTodos(t *testing.T) {
	m, todoAdapter := newTestModel(t)
	todoAdapter.EXPECT().ListTodos(gomock.Any()).Return(sampleTodos(), nil)

	msg := m.cmdLoad()()
	m = update(t, m, msg)

	assert.False(t, m.loading)
	assert.Len(t, m.todos, 2)
	view := m.View()
	assert.Contains(t, view, "buy milk")
	assert.Contains(t, view, "[x]")
	assert.Contains(t, view, "1/2 done")
}

func TestListModel_LoadError(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, todosLoadedMsg{err: errors.New("connection refused")})

	assert.Contains(t, m.View(), "connection refused")
}

func TestListModel_EmptyList(t *testing.T) {
	m, _ := loaded(t, []models.TodoItem{})

	assert.Contains(t, m.View(), "No todos yet")
}

func TestListModel_Navigation(t *testing.T) {
	m, _ := loaded(t, sampleTodos())

	m, _ = press(t, m, "down")
	assert.Equal(t, 1, m.idx)
	m, _ = press(t, m, "j")
	assert.Equal(t, 1, m.idx)
	m, _ = press(t, m, "up")
	assert.Equal(t, 0, m.idx)
	m, _ = press(t, m, "k")
	assert.Equal(t, 0, m.idx)
}

func TestListModel_CursorClampedAfterReload(t *testing.T) {
	m, _ := loaded(t, sampleTodos())
	m, _ = press(t, m, "down")

	m = update(t, m, todosLoadedMsg{todos: sampleTodos()[:1]})

	assert.Equal(t, 0, m.idx)
}

func TestListModel_AddTodo(t *testing.T) {
	m, todoAdapter := loaded(t, sampleTodos())
	todoAdapter.EXPECT().
		CreateTodo(gomock.Any(), map[string]any{"title": "call mom", "completed": false}).
		Return(models.TodoItem{ID: "new"}, nil)

	m, _ = press(t, m, "a")
	require.Equal(t, modeAdd, m.mode)
	m = typeText(t, m, "call mom")
	assert.Contains(t, m.View(), "New todo")

	m, cmd := press(t, m, "enter")
	assert.Equal(t, modeBrowse, m.mode)
	assert.True(t, m.busy)
	msg := exec(cmd)
	assert.Equal(t, todoSavedMsg{status: "Added"}, msg)

	m = update(t, m, msg)
	assert.False(t, m.busy)
	assert.True(t, m.loading)
	assert.Equal(t, "Added", m.status)
}

func TestListModel_AddRejectsEmptyTitle(t *testing.T) {
	m, _ := loaded(t, sampleTodos())

	m, _ = press(t, m, "a")
	m = typeText(t, m, "   ")
	m, cmd := press(t, m, "enter")

	assert.Nil(t, cmd)
	assert.Equal(t, modeAdd, m.mode)
	assert.Equal(t, "Title cannot be empty", m.status)
}

func TestListModel_AddCancelled(t *testing.T) {
	m, _ := loaded(t, sampleTodos())

	m, _ = press(t, m, "a")
	m = typeText(t, m, "q")
	m, _ = press(t, m, "esc")

	assert.Equal(t, modeBrowse, m.mode)
	assert.Empty(t, m.input.Value())
}

func TestListModel_ToggleDone(t *testing.T) {
	tests := []struct {
		name     string
		down     bool
		wantID   string
		wantDone bool
	}{
		{name: "open todo becomes done", wantID: "0190a1b2-0000-7000-8000-00000000aaaa", wantDone: true},
		{name: "done todo is reopened", down: true, wantID: "0190a1b2-0000-7000-8000-00000000bbbb", wantDone: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, todoAdapter := loaded(t, sampleTodos())
			todoAdapter.EXPECT().
				UpdateTodo(gomock.Any(), tt.wantID, map[string]any{"completed": tt.wantDone}).
				Return(models.TodoItem{}, nil)

			if tt.down {
				m, _ = press(t, m, "down")
			}
			_, cmd := press(t, m, " ")

			assert.Equal(t, todoSavedMsg{status: "Updated"}, exec(cmd))
		})
	}
}

func TestListModel_Rename(t *testing.T) {
	m, todoAdapter := loaded(t, sampleTodos())
	todoAdapter.EXPECT().
		UpdateTodo(gomock.Any(), "0190a1b2-0000-7000-8000-00000000aaaa", map[string]any{"title": "buy oat milk"}).
		Return(models.TodoItem{}, nil)

	m, _ = press(t, m, "e")
	require.Equal(t, modeEdit, m.mode)
	assert.Equal(t, "buy milk", m.input.Value())

	m.input.SetValue("buy oat milk")
	_, cmd := press(t, m, "enter")

	assert.Equal(t, todoSavedMsg{status: "Renamed"}, exec(cmd))
}

func TestListModel_Delete(t *testing.T) {
	m, todoAdapter := loaded(t, sampleTodos())
	todoAdapter.EXPECT().DeleteTodo(gomock.Any(), "0190a1b2-0000-7000-8000-00000000aaaa").Return(nil)

	m, _ = press(t, m, "d")
	require.Equal(t, modeConfirmDelete, m.mode)
	assert.Contains(t, m.View(), `Delete "buy milk"?`)

	m, cmd := press(t, m, "y")
	msg := exec(cmd)
	assert.Equal(t, todoDeletedMsg{}, msg)

	m = update(t, m, msg)
	assert.Equal(t, "Deleted", m.status)
	assert.True(t, m.loading)
}

func TestListModel_DeleteCancelled(t *testing.T) {
	m, _ := loaded(t, sampleTodos())

	m, _ = press(t, m, "d")
	m, cmd := press(t, m, "n")

	assert.Nil(t, cmd)
	assert.Equal(t, modeBrowse, m.mode)
}

func TestListModel_ActionErrorShowsOverlay(t *testing.T) {
	m, _ := loaded(t, sampleTodos())

	m = update(t, m, todoSavedMsg{err: adapter.ErrNotFound})
	require.Equal(t, modeError, m.mode)
	assert.Contains(t, m.View(), adapter.ErrNotFound.Error())

	m, _ = press(t, m, "esc")
	assert.Equal(t, modeBrowse, m.mode)
}

func TestListModel_CopyID(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m, _ := loaded(t, sampleTodos())
	m, cmd := press(t, m, "c")
	m = update(t, m, exec(cmd))

	assert.Equal(t, "0190a1b2-0000-7000-8000-00000000aaaa", copied)
	assert.Equal(t, "Copied 0190a1b2-0000-7000-8000-00000000aaaa", m.status)

	m = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestListModel_Quit(t *testing.T) {
	m, _ := loaded(t, sampleTodos())

	_, cmd := press(t, m, "q")
	assert.Equal(t, tea.QuitMsg{}, exec(cmd))

	// q is text while typing, ctrl+c still quits
	m, _ = press(t, m, "a")
	m, _ = press(t, m, "q")
	assert.Equal(t, modeAdd, m.mode)
	assert.Equal(t, "q", m.input.Value())

	_, cmd = press(t, m, "ctrl+c")
	assert.Equal(t, tea.QuitMsg{}, exec(cmd))
}

func TestActionsIgnoredOnEmptyList(t *testing.T) {
	m, _ := loaded(t, nil)

	for _, k := range []string{" ", "d", "e", "c"} {
		next, cmd := press(t, m, k)
		assert.Nil(t, cmd, k)
		assert.Equal(t, modeBrowse, next.mode, k)
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "молоко", fitText("молоко", 6))
}

func TestTodoTitle(t *testing.T) {
	assert.Equal(t, "x", todoTitle(models.TodoItem{Fields: map[string]any{"title": "x"}}))
	assert.Equal(t, "(untitled)", todoTitle(models.TodoItem{Fields: map[string]any{"title": 3}}))
	assert.Equal(t, "(untitled)", todoTitle(models.TodoItem{}))
}
