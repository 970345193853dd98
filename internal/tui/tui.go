// Package tui provides the interactive terminal interface for tl: a
// period browser showing one report at a time.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/xolan/tl/internal/cli"
	"github.com/xolan/tl/internal/service"
	"github.com/xolan/tl/internal/tui/ui"
)

// Tab represents a period tab
type Tab int

const (
	TabDay Tab = iota
	TabWeek
	TabMonth
	TabYear
)

var tabPeriods = []service.Period{
	service.PeriodDay,
	service.PeriodWeek,
	service.PeriodMonth,
	service.PeriodYear,
}

var tabNames = []string{"Day", "Week", "Month", "Year"}

// reportMsg carries a freshly generated report into the update loop
type reportMsg struct {
	report *service.Report
	err    error
}

// Model is the root TUI model
type Model struct {
	services *service.Services

	activeTab Tab
	// offsets remembers the offset per tab so switching periods
	// doesn't lose your place
	offsets [4]int

	report *service.Report
	err    error

	width    int
	height   int
	showHelp bool

	styles ui.Styles
	keys   ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	return Model{
		services: services,
		styles:   ui.DefaultStyles(),
		keys:     ui.DefaultKeyMap(),
	}
}

// Run starts the TUI event loop and blocks until the user quits.
func Run(services *service.Services) error {
	program := tea.NewProgram(New(services), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.loadReport()
}

// loadReport generates the report for the active tab and offset
func (m Model) loadReport() tea.Cmd {
	period := tabPeriods[m.activeTab]
	offset := m.offsets[m.activeTab]
	return func() tea.Msg {
		report, err := m.services.Report.Generate(period, offset)
		return reportMsg{report: report, err: err}
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case reportMsg:
		m.report = msg.report
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.activeTab = (m.activeTab + 1) % Tab(len(tabPeriods))
			return m, m.loadReport()

		case key.Matches(msg, m.keys.PrevTab):
			m.activeTab = (m.activeTab + Tab(len(tabPeriods)) - 1) % Tab(len(tabPeriods))
			return m, m.loadReport()

		case key.Matches(msg, m.keys.Tab1):
			m.activeTab = TabDay
			return m, m.loadReport()

		case key.Matches(msg, m.keys.Tab2):
			m.activeTab = TabWeek
			return m, m.loadReport()

		case key.Matches(msg, m.keys.Tab3):
			m.activeTab = TabMonth
			return m, m.loadReport()

		case key.Matches(msg, m.keys.Tab4):
			m.activeTab = TabYear
			return m, m.loadReport()

		case key.Matches(msg, m.keys.Older):
			m.offsets[m.activeTab]--
			return m, m.loadReport()

		case key.Matches(msg, m.keys.Newer):
			m.offsets[m.activeTab]++
			return m, m.loadReport()

		case key.Matches(msg, m.keys.Current):
			m.offsets[m.activeTab] = 0
			return m, m.loadReport()

		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadReport()
		}
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(m.renderReport())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return m.styles.App.Render(b.String())
}

// renderTabs renders the period tab bar
func (m Model) renderTabs() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs[i] = m.styles.TabActive.Render(name)
		} else {
			tabs[i] = m.styles.TabInactive.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderReport renders the breakdown, total and expected comparison
// for the current report
func (m Model) renderReport() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.report == nil {
		return m.styles.Muted.Render("Loading...")
	}

	label := cli.PeriodLabel(m.report.Period, m.report.Offset)

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Report for %s (%d entries)", label, len(m.report.Entries))))
	b.WriteString("\n\n")

	if len(m.report.Entries) == 0 {
		b.WriteString(m.styles.Muted.Render("No entries in this period"))
		b.WriteString("\n")
		return b.String()
	}

	width := 0
	for _, row := range m.report.Breakdown {
		if lw := runewidth.StringWidth(row.Comment); lw > width {
			width = lw
		}
	}
	for _, row := range m.report.Breakdown {
		b.WriteString(m.styles.RowComment.Render(runewidth.FillRight(row.Comment, width)))
		b.WriteString("  ")
		b.WriteString(m.styles.RowValue.Render(cli.FormatDuration(row.Duration)))
		b.WriteString("\n")
	}

	extra := m.report.ExtraHours()
	extraStyle := m.styles.Positive
	if extra < 0 {
		extraStyle = m.styles.Negative
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Total.Render(fmt.Sprintf("Total:    %s", cli.FormatDuration(m.report.Total))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Expected: %s", cli.FormatHours(m.report.ExpectedHours)))
	b.WriteString("\n")
	b.WriteString(extraStyle.Render(fmt.Sprintf("Extra:    %s", cli.FormatSignedHours(extra))))
	b.WriteString("\n")

	return b.String()
}

// renderStatusBar renders the bottom key hint line, or the full help
func (m Model) renderStatusBar() string {
	if m.showHelp {
		return m.renderHelp()
	}
	return m.styles.StatusBar.Render("tab: period • ←/→: older/newer • 0: current • r: reload • ?: help • q: quit")
}

// renderHelp renders the expanded help view
func (m Model) renderHelp() string {
	bindings := []key.Binding{
		m.keys.NextTab, m.keys.PrevTab,
		m.keys.Tab1, m.keys.Tab2, m.keys.Tab3, m.keys.Tab4,
		m.keys.Older, m.keys.Newer, m.keys.Current,
		m.keys.Refresh, m.keys.Help, m.keys.Quit,
	}

	var b strings.Builder
	for _, binding := range bindings {
		b.WriteString(m.styles.HelpKey.Render(fmt.Sprintf("%-11s", binding.Help().Key)))
		b.WriteString(" ")
		b.WriteString(m.styles.HelpDesc.Render(binding.Help().Desc))
		b.WriteString("\n")
	}
	return b.String()
}
