package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/gitwatch/internal/config"
	"github.com/renato0307/gitwatch/internal/domain"
	"github.com/renato0307/gitwatch/internal/logging"
	"github.com/renato0307/gitwatch/internal/theme"
)

// DiffViewer lists the files of a diff and expands their patches on demand
type DiffViewer struct {
	changes    []domain.FileChange
	cursor     int
	expanded   []bool
	help       help.Model
	keys       KeyMap
	rowOffsets []int // content line of each file row
	summary    domain.DiffSummary
	title      string
	viewport   viewport.Model
	width      int
	height     int
}

// NewDiffViewer creates a diff viewer with every file collapsed
func NewDiffViewer(title string, changes []domain.FileChange, keys KeyMap) *DiffViewer {
	m := &DiffViewer{
		changes:  changes,
		expanded: make([]bool, len(changes)),
		help:     help.New(),
		keys:     keys,
		summary:  domain.Summarize(changes),
		title:    title,
		viewport: viewport.New(0, 0),
	}
	m.refresh()
	return m
}

// RunDiffViewer shows the viewer full screen until the user quits
func RunDiffViewer(title string, changes []domain.FileChange, customKeys config.KeyBindingsConfig) error {
	logging.Logger.Debug("Starting diff viewer", "files", len(changes))

	p := tea.NewProgram(NewDiffViewer(title, changes, NewKeyMap(customKeys)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running diff viewer: %w", err)
	}
	return nil
}

func (m *DiffViewer) Init() tea.Cmd {
	return nil
}

func (m *DiffViewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Toggle):
			if len(m.changes) > 0 {
				m.expanded[m.cursor] = !m.expanded[m.cursor]
				m.refresh()
			}
		case key.Matches(msg, m.keys.ExpandAll):
			m.setAll(true)
		case key.Matches(msg, m.keys.CollapseAll):
			m.setAll(false)
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
		}
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *DiffViewer) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), m.viewport.View(), m.footerView())
}

// Expanded reports whether the patch of file i is shown
func (m *DiffViewer) Expanded(i int) bool {
	return i >= 0 && i < len(m.expanded) && m.expanded[i]
}

// Cursor returns the index of the selected file
func (m *DiffViewer) Cursor() int {
	return m.cursor
}

func (m *DiffViewer) headerView() string {
	stats := fmt.Sprintf("%d files %s %s",
		m.summary.Files,
		theme.AdditionsStyle.Render(fmt.Sprintf("+%d", m.summary.Additions)),
		theme.DeletionsStyle.Render(fmt.Sprintf("-%d", m.summary.Deletions)))
	return theme.TitleStyle.Render(m.title) + "\n" + stats + "\n"
}

func (m *DiffViewer) footerView() string {
	m.help.Width = m.width
	return "\n" + m.help.View(m.keys)
}

func (m *DiffViewer) resize() {
	if m.width == 0 && m.height == 0 {
		return
	}
	height := m.height - lipgloss.Height(m.headerView()) - lipgloss.Height(m.footerView())
	if height < 1 {
		height = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = height
	m.refresh()
}

func (m *DiffViewer) moveCursor(delta int) {
	if len(m.changes) == 0 {
		return
	}
	m.cursor = max(0, min(len(m.changes)-1, m.cursor+delta))
	m.refresh()
}

func (m *DiffViewer) setAll(expanded bool) {
	for i := range m.expanded {
		m.expanded[i] = expanded
	}
	m.refresh()
}

// refresh re-renders the content and keeps the selected row visible
func (m *DiffViewer) refresh() {
	if len(m.changes) == 0 {
		m.rowOffsets = nil
		m.viewport.SetContent(theme.MutedStyle.Render("No changes found."))
		return
	}

	var lines []string
	m.rowOffsets = make([]int, len(m.changes))
	for i, change := range m.changes {
		m.rowOffsets[i] = len(lines)
		lines = append(lines, m.renderRow(i, change))
		if m.expanded[i] {
			lines = append(lines, renderPatch(change)...)
		}
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))

	if m.viewport.Height == 0 {
		return
	}
	row := m.rowOffsets[m.cursor]
	if row < m.viewport.YOffset {
		m.viewport.SetYOffset(row)
	} else if row >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(row - m.viewport.Height + 1)
	}
}

func (m *DiffViewer) renderRow(i int, change domain.FileChange) string {
	marker := "▸"
	if m.expanded[i] {
		marker = "▾"
	}

	row := fmt.Sprintf("%s %s %s %s %s",
		marker,
		change.ChangeType.Symbol(),
		change.DisplayPath(),
		theme.AdditionsStyle.Render(fmt.Sprintf("+%d", change.Additions)),
		theme.DeletionsStyle.Render(fmt.Sprintf("-%d", change.Deletions)))

	if i == m.cursor {
		return theme.SelectedStyle.Render(row)
	}
	return theme.NormalStyle.Render(row)
}

func renderPatch(change domain.FileChange) []string {
	if change.IsBinary {
		return []string{theme.PatchStyle.Render(theme.MutedStyle.Render("Binary file not shown"))}
	}
	if change.Patch == "" {
		return []string{theme.PatchStyle.Render(theme.MutedStyle.Render("No content changes"))}
	}

	raw := strings.Split(strings.TrimRight(change.Patch, "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		var styled string
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			styled = theme.MutedStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			styled = theme.HunkStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			styled = theme.AdditionsStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			styled = theme.DeletionsStyle.Render(line)
		default:
			styled = line
		}
		lines = append(lines, theme.PatchStyle.Render(styled))
	}
	return lines
}
