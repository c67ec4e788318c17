// Package ui renders terminal output: a live progress view for builtin
// synthesis and aligned tables for the inspection commands.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tagcore/internal/buildpipeline"
)

type progressModel struct {
	title   string
	events  <-chan buildpipeline.Event
	spinner spinner.Model
	prog    progress.Model
	modules []moduleRow
	index   map[string]int
	failure error
	width   int
	done    bool
}

type moduleRow struct {
	name   string
	status string
	stage  buildpipeline.Stage
	note   string
}

type eventMsg buildpipeline.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that shows per-module
// synthesis progress until events is closed.
func NewProgressModel(title string, modules []string, events <-chan buildpipeline.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	rows := make([]moduleRow, 0, len(modules))
	index := make(map[string]int, len(modules))
	for i, name := range modules {
		rows = append(rows, moduleRow{name: name, status: "queued"})
		index[name] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		modules: rows,
		index:   index,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(buildpipeline.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = max(msg.Width-4, 10)
		}
		return m, nil
	case progress.FrameMsg:
		pm, cmd := m.prog.Update(msg)
		m.prog = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.modules) == 0 {
		return ""
	}
	header := m.title
	switch {
	case m.failure != nil:
		header = "failed: " + header
	case m.done:
		header = "done: " + header
	default:
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(header))
	b.WriteString("\n\n")

	nameWidth := max(m.width-statusWidth-16, 12)
	for _, row := range m.modules {
		status := styleStatus(row.status).Render(fmt.Sprintf("%*s", statusWidth, row.status))
		fmt.Fprintf(&b, "  %s %s", status, Truncate(row.name, nameWidth))
		if row.note != "" {
			b.WriteString("  " + lipgloss.NewStyle().Faint(true).Render(row.note))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteByte('\n')
	if m.failure != nil {
		b.WriteString(styleStatus("error").Render(m.failure.Error()))
		b.WriteByte('\n')
	}
	return b.String()
}

const statusWidth = 10

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev buildpipeline.Event) tea.Cmd {
	if ev.Module == "" {
		if ev.Status == buildpipeline.StatusError {
			m.failure = ev.Err
		}
		return nil
	}
	idx, ok := m.index[ev.Module]
	if !ok {
		return nil
	}
	row := &m.modules[idx]
	if label := statusLabel(ev.Stage, ev.Status); label != "" {
		row.status = label
	}
	if ev.Stage != "" {
		row.stage = ev.Stage
	}
	if ev.Status == buildpipeline.StatusDone && ev.Elapsed > 0 {
		row.note = ev.Elapsed.Round(time.Microsecond).String()
	}
	return m.prog.SetPercent(m.fraction())
}

func (m *progressModel) fraction() float64 {
	if len(m.modules) == 0 {
		return 0
	}
	total := 0.0
	for _, row := range m.modules {
		switch row.status {
		case "done", "error":
			total += 1
		default:
			total += progressFromStage(row.stage)
		}
	}
	return total / float64(len(m.modules))
}

func progressFromStage(stage buildpipeline.Stage) float64 {
	switch stage {
	case buildpipeline.StageLoad:
		return 0.2
	case buildpipeline.StageMerge:
		return 0.5
	case buildpipeline.StageVerify:
		return 0.8
	default:
		return 0
	}
}

func statusLabel(stage buildpipeline.Stage, status buildpipeline.Status) string {
	switch status {
	case buildpipeline.StatusQueued:
		return "queued"
	case buildpipeline.StatusDone:
		return "done"
	case buildpipeline.StatusError:
		return "error"
	case buildpipeline.StatusWorking:
		switch stage {
		case buildpipeline.StageLoad:
			return "loading"
		case buildpipeline.StageMerge:
			return "merging"
		case buildpipeline.StageVerify:
			return "verifying"
		}
	}
	return ""
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "done":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "error":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "loading", "merging", "verifying":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}
