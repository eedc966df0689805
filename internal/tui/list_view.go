package tui

import (
	"fmt"
	"strings"
)

func (m listModel) View() string {
	header := m.header()

	switch m.mode {
	case modeConfirmDelete:
		todo, _ := m.current()
		return renderPage(header, confirmModel{message: todoTitle(todo)}.View(), "")
	case modeError:
		return renderPage(header, errorOverlayModel{message: m.overlay}.View(), "")
	}

	var b strings.Builder
	switch {
	case m.loading && len(m.todos) == 0:
		b.WriteString("Loading...\n")
	case len(m.todos) == 0:
		b.WriteString("No todos yet\n")
	default:
		for i, todo := range m.todos {
			b.WriteString(m.renderTodo(i == m.idx, todo.ID, todoTitle(todo), isDone(todo)))
			b.WriteString("\n")
		}
	}

	hotKeys := helpLine(keys.listHelp())
	if m.mode == modeAdd || m.mode == modeEdit {
		label := "New todo"
		if m.mode == modeEdit {
			label = "Rename"
		}
		b.WriteString("\n" + label + "\n" + m.input.View() + "\n")
		hotKeys = "enter save  esc cancel"
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage(header, b.String(), hotKeys)
}

func (m listModel) header() string {
	done := 0
	for _, todo := range m.todos {
		if isDone(todo) {
			done++
		}
	}

	header := fmt.Sprintf("Todos  %d/%d done", done, len(m.todos))
	if m.loading || m.busy {
		header += "  " + m.spinner.View()
	}
	return header
}

func (m listModel) renderTodo(selected bool, id, title string, done bool) string {
	box := "[ ]"
	text := fitText(title, maxTitleWidth)
	if done {
		box = "[x]"
		text = doneStyle.Render(text)
	}

	cursor := "  "
	if selected {
		cursor = selectedStyle.Render("> ")
	}

	return fmt.Sprintf("%s%s %s  %s", cursor, box, text, helpStyle.Render(shortID(id)))
}

// shortID keeps the random tail of a UUIDv7, the leading part is a timestamp
// shared by todos created close together.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}
