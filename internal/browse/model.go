// Package browse implements a read-only Bubble Tea view of the address book.
package browse

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MiniRonni/goit-web-hw-02/internal/book"
)

// chrome is the number of lines consumed by the title and help bars.
const chrome = 2

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1)
	helpStyle  = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// Model is the Bubble Tea model for browsing contacts. It is read-only:
// every mutation path stays in the command dispatcher.
type Model struct {
	book     *book.Book
	viewport viewport.Model
	width    int
	height   int
}

// NewModel creates a browse Model over b.
func NewModel(b *book.Book) Model {
	vp := viewport.New(0, 0)
	vp.SetContent(content(b))
	return Model{book: b, viewport: vp}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles window sizing, quit keys, and viewport scrolling.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chrome, 0)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the title bar, the scrollable contact list, and a help line.
func (m Model) View() string {
	title := titleStyle.Render(fmt.Sprintf("Address book (%d contacts)", m.book.Len()))
	help := helpStyle.Render("j/k scroll • q quit")
	return title + "\n" + m.viewport.View() + "\n" + help
}

// content renders one line per record in insertion order.
func content(b *book.Book) string {
	if b.Len() == 0 {
		return "No contacts saved."
	}
	return b.String()
}
