package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/saravenpi/inbox/internal/generator"
	"github.com/saravenpi/inbox/internal/models"
	"github.com/saravenpi/inbox/internal/store"
)

const unreadMarker = "● "

type messageItem struct {
	message models.Message
	index   int
}

func (i messageItem) FilterValue() string { return i.message.Subject }
func (i messageItem) Description() string { return i.message.Description }
func (i messageItem) Title() string {
	if i.message.Read {
		return "  " + i.message.Subject
	}
	return unreadMarker + i.message.Subject
}

type messagesGeneratedMsg struct {
	messages []models.Message
	err      error
}

// storeUpdatedMsg is sent after the store changes.
// The inbox re-reads the store on this message.
type storeUpdatedMsg struct{}

type InboxModel struct {
	store        *store.Store
	changes      chan struct{}
	unsubscribe  func()
	messageCount int
	description  string

	mode     models.ViewMode
	selected int
	list     list.Model
	viewport viewport.Model
	spinner  spinner.Model
	loading  bool
	err      error

	windowWidth  int
	windowHeight int
}

// NewInboxModel creates the inbox view bound to s. On Init it fills the
// store with messageCount generated messages.
func NewInboxModel(s *store.Store, messageCount int, description string) InboxModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusStyle

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("5")).
		Bold(true)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("8"))

	l := list.New([]list.Item{}, delegate, 80, 20)
	l.Title = inboxTitle(0, 0)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetKeys("q")

	vp := viewport.New(76, 20)

	changes := make(chan struct{}, 1)
	unsubscribe := s.Subscribe(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	return InboxModel{
		store:        s,
		changes:      changes,
		unsubscribe:  unsubscribe,
		messageCount: messageCount,
		description:  description,
		mode:         models.ViewList,
		list:         l,
		viewport:     vp,
		spinner:      sp,
		loading:      true,
		windowWidth:  80,
		windowHeight: 30,
	}
}

// Close detaches the model from its store. Copies of the model share the
// subscription, so closing any of them detaches all.
func (m InboxModel) Close() {
	m.unsubscribe()
}

func inboxTitle(count, unread int) string {
	return fmt.Sprintf("Inbox (%d messages, %d unread messages)", count, unread)
}

func (m InboxModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.generateMessagesCmd(), m.waitForChangeCmd())
}

func (m InboxModel) generateMessagesCmd() tea.Cmd {
	return func() tea.Msg {
		messages, err := generator.GenerateWithDescription(m.messageCount, m.description)
		return messagesGeneratedMsg{messages: messages, err: err}
	}
}

func (m InboxModel) waitForChangeCmd() tea.Cmd {
	return func() tea.Msg {
		<-m.changes
		return storeUpdatedMsg{}
	}
}

func (m InboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8
		m.updateDetailContent()
		return m, nil

	case messagesGeneratedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.store.SetMessages(msg.messages)
		return m, nil

	case storeUpdatedMsg:
		cmd := m.refresh()
		return m, tea.Batch(cmd, m.waitForChangeCmd())

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == models.ViewDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m InboxModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc":
		return m, nil

	case "enter":
		if m.loading {
			return m, nil
		}
		if item, ok := m.list.SelectedItem().(messageItem); ok {
			m.mode = models.ViewDetail
			m.selected = item.index
			m.err = m.store.MarkRead(item.index)
			m.updateDetailContent()
			m.viewport.GotoTop()
		}
		return m, nil

	case "x", " ":
		if m.loading {
			return m, nil
		}
		if item, ok := m.list.SelectedItem().(messageItem); ok {
			m.err = m.store.MarkRead(item.index)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// refresh re-reads the store into the list and the open message.
func (m *InboxModel) refresh() tea.Cmd {
	messages := m.store.Messages()
	items := make([]list.Item, len(messages))
	for i, message := range messages {
		items[i] = messageItem{message: message, index: i}
	}
	cmd := m.list.SetItems(items)
	m.list.Title = inboxTitle(m.store.MessageCount(), m.store.UnreadMessageCount())
	m.updateDetailContent()
	return cmd
}

func (m InboxModel) View() string {
	if m.loading && m.store.MessageCount() == 0 {
		return fmt.Sprintf("\n  %s Loading messages...\n", m.spinner.View())
	}

	if m.mode == models.ViewDetail {
		return m.detailView()
	}

	var s string
	if m.store.MessageCount() == 0 {
		s = titleStyle.Render(m.list.Title) + "\n\n"
		s += normalStyle.Render("  No messages.") + "\n"
	} else {
		s = m.list.View() + "\n"
	}

	if m.err != nil {
		s += errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	}

	s += helpStyle.Render("↑↓/jk: navigate • enter: open • x/space: mark read • q: quit")
	return s
}
