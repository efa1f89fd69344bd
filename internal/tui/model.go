package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/duocalvin/duosvg/internal/convert"
)

type Model struct {
	updates   <-chan convert.Update
	started   time.Time
	width     int
	stage     convert.Stage
	total     int
	done      int
	failed    int
	lastImage string
	quitting  bool
}

type doneMsg struct{}

type updateMsg convert.Update

func NewModel(updates <-chan convert.Update) Model {
	return Model{updates: updates, started: time.Now()}
}

func (m Model) Init() tea.Cmd {
	return listenForUpdates(m.updates)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updateMsg:
		u := convert.Update(msg)
		m.stage = u.Stage
		if u.Total > 0 {
			m.total = u.Total
		}
		if u.Done > m.done {
			m.done = u.Done
		}
		if u.Failed > m.failed {
			m.failed = u.Failed
		}
		if u.Image != "" {
			m.lastImage = u.Image
		}
		return m, listenForUpdates(m.updates)
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	barWidth := 40
	if m.width > 0 {
		barWidth = int(math.Min(60, float64(m.width-10)))
		if barWidth < 20 {
			barWidth = 20
		}
	}

	ratio := 0.0
	if m.total > 0 {
		ratio = float64(m.done) / float64(m.total)
		if ratio > 1 {
			ratio = 1
		}
	}

	elapsed := time.Since(m.started).Round(time.Millisecond)

	counts := labelStyle.Render(fmt.Sprintf("Images: %d/%d", m.done, m.total))
	if m.failed > 0 {
		counts += failStyle.Render(fmt.Sprintf("  failed:%d", m.failed))
	}

	lines := []string{
		titleStyle.Render("duosvg ✒"),
		stageStyle.Render(m.stage.String()),
		counts,
	}
	if m.lastImage != "" {
		lines = append(lines, dimStyle.Render("last: "+m.lastImage))
	}
	lines = append(lines,
		dimStyle.Render(fmt.Sprintf("Elapsed: %s", elapsed)),
		barStyle.Render(renderBar(barWidth, ratio)),
	)

	return strings.Join(lines, "\n")
}

func listenForUpdates(updates <-chan convert.Update) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return doneMsg{}
		}
		return updateMsg(update)
	}
}

func renderBar(width int, ratio float64) string {
	filled := int(math.Round(ratio * float64(width)))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	stageStyle = lipgloss.NewStyle().Foreground(ColorAccent2)
	labelStyle = lipgloss.NewStyle().Foreground(ColorInk)
	barStyle   = lipgloss.NewStyle().Foreground(ColorAccent)
	dimStyle   = lipgloss.NewStyle().Foreground(ColorDim)
	failStyle  = lipgloss.NewStyle().Foreground(ColorFail)
)
