package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"github.com/saravenpi/inbox/internal/models"
)

func (m InboxModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.mode = models.ViewList
		m.err = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *InboxModel) updateDetailContent() {
	if m.mode != models.ViewDetail {
		return
	}

	message, err := m.store.Message(m.selected)
	if err != nil {
		m.err = err
		m.viewport.SetContent("")
		return
	}

	wrapWidth := m.viewport.Width
	if wrapWidth <= 0 {
		wrapWidth = 80
	}

	status := "unread"
	if message.Read {
		status = "read"
	}

	var content strings.Builder
	content.WriteString(messageHeaderStyle.Render(fmt.Sprintf("#%d • %s", m.selected+1, status)) + "\n\n")
	content.WriteString(messageBodyStyle.Render(wordwrap.String(message.Description, wrapWidth)) + "\n")

	m.viewport.SetContent(content.String())
}

func (m InboxModel) detailView() string {
	subject := ""
	if message, err := m.store.Message(m.selected); err == nil {
		subject = message.Subject
	}

	s := titleStyle.Render(fmt.Sprintf("✉ %s", subject)) + "\n"
	s += messageHeaderStyle.Render(m.list.Title) + "\n\n"

	if m.err != nil {
		s += errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n"
	}

	s += m.viewport.View() + "\n"

	scrollPercent := int(m.viewport.ScrollPercent() * 100)
	s += "\n" + helpStyle.Render(fmt.Sprintf("↑↓/jk: scroll • esc: back • q: quit • %d%%", scrollPercent))
	return s
}
