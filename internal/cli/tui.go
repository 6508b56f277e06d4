package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/graphkit/pkg/graph"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// NodeListModel - Interactive start node selection
// =============================================================================

// nodeItem is one row in the node picker.
type nodeItem struct {
	ID        string
	OutDegree int
}

// NodeListModel is the bubbletea model for interactive node selection.
type NodeListModel struct {
	Nodes    []nodeItem
	Cursor   int
	Selected string
	Height   int
	Offset   int
}

// NewNodeListModel creates a node list model from the graph's nodes,
// sorted by ID.
func NewNodeListModel(g *graph.Digraph) NodeListModel {
	ids := g.Nodes()
	slices.Sort(ids)

	items := make([]nodeItem, len(ids))
	for i, id := range ids {
		items[i] = nodeItem{ID: id, OutDegree: len(g.Successors(id))}
	}
	return NodeListModel{Nodes: items, Height: 15}
}

func (m NodeListModel) Init() tea.Cmd {
	return nil
}

func (m NodeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Nodes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Nodes) > 0 {
				m.Selected = m.Nodes[m.Cursor].ID
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m NodeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Start Node"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Nodes) {
		end = len(m.Nodes)
	}

	for i := m.Offset; i < end; i++ {
		n := m.Nodes[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		degree := fmt.Sprintf("%d out", n.OutDegree)
		line := fmt.Sprintf("%s%-30s %s", cursor, n.ID, listDimStyle.Render(degree))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else if n.OutDegree == 0 {
			b.WriteString(listDimStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Nodes))))

	return b.String()
}

// =============================================================================
// Picker
// =============================================================================

// pickNode runs the interactive node picker and returns the selected ID.
// An empty string means the user quit without selecting.
func pickNode(g *graph.Digraph) (string, error) {
	if g.NodeCount() == 0 {
		return "", fmt.Errorf("graph has no nodes")
	}

	p := tea.NewProgram(NewNodeListModel(g))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("node picker: %w", err)
	}

	m, ok := final.(NodeListModel)
	if !ok {
		return "", fmt.Errorf("node picker: unexpected model %T", final)
	}
	return m.Selected, nil
}
