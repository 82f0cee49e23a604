package analytics

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/classpulse/classpulse/internal/agent"
	"github.com/classpulse/classpulse/internal/router"
	"github.com/classpulse/classpulse/internal/screen"
	"github.com/classpulse/classpulse/internal/ui/components"
	"github.com/classpulse/classpulse/internal/ui/layout"
	"github.com/classpulse/classpulse/internal/ui/theme"
)

// AnalyticsScreen shows the end-of-session report.
type AnalyticsScreen struct {
	report *agent.Analytics
	status agent.SessionStatus
	offset int
}

var _ screen.Screen = (*AnalyticsScreen)(nil)
var _ screen.KeyHintProvider = (*AnalyticsScreen)(nil)

// New creates the report screen for a finished session.
func New(report *agent.Analytics, status agent.SessionStatus) *AnalyticsScreen {
	return &AnalyticsScreen{report: report, status: status}
}

func (a *AnalyticsScreen) Init() tea.Cmd {
	return nil
}

func (a *AnalyticsScreen) Title() string {
	return "Session Report"
}

func (a *AnalyticsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Done"},
	}
}

func (a *AnalyticsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return a, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if a.offset > 0 {
				a.offset--
			}
		case "down", "j":
			a.offset++
		}
	}
	return a, nil
}

func (a *AnalyticsScreen) View(width, height int) string {
	if a.report == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No report available."))
	}

	cw := components.ContentWidth(width)

	sections := []string{
		a.renderSummary(cw),
		a.renderStudents(cw),
	}
	if len(a.report.SubtopicOutcomes) > 0 {
		sections = append(sections, a.renderSubtopics(cw))
	}
	if len(a.report.AIInsights) > 0 {
		sections = append(sections, a.renderInsights(cw))
	}

	content := strings.Join(sections, "\n")

	lines := strings.Split(content, "\n")
	if a.offset > len(lines)-1 {
		a.offset = len(lines) - 1
	}
	visible := strings.Join(lines[a.offset:], "\n")

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, visible)
}

func (a *AnalyticsScreen) renderSummary(cw int) string {
	r := a.report
	s := r.Summary

	heading := "Session complete"
	if a.status == agent.StatusStopped {
		heading = "Session stopped"
	}

	meta := fmt.Sprintf("%s · %s · class %s",
		r.Metadata.Subject, r.Metadata.Topic, r.Metadata.ClassName)

	stats := fmt.Sprintf(
		"students %d  ·  questions %d  ·  average score %.0f%%  ·  pass rate %.0f%%  ·  mastery %.0f%%",
		s.TotalStudents, s.TotalQuestions, s.AverageScore, s.PassRate, r.MasteryPercentage)

	body := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(heading) +
		"\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta) +
		"\n\n" + lipgloss.NewStyle().Foreground(theme.Text).Render(stats)

	return components.SectionCard(body, cw)
}

func (a *AnalyticsScreen) renderStudents(cw int) string {
	var b strings.Builder

	header := fmt.Sprintf("%-24s %8s %8s %10s %8s", "Student", "Correct", "Total", "Avg time", "Band")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header))
	b.WriteString("\n")

	for i, st := range a.report.StudentStats {
		name := st.Name
		if name == "" {
			name = fmt.Sprintf("Student %d", i+1)
		}
		row := fmt.Sprintf("%-24s %8d %8d %9.1fs %8s",
			truncate(name, 24), st.CorrectAnswers, st.TotalQuestions,
			st.AverageResponseTime/1000, st.Performance)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch st.Performance {
		case agent.BandHigh:
			style = style.Foreground(theme.Success)
		case agent.BandLow:
			style = style.Foreground(theme.Error)
		}
		b.WriteString(style.Render(row))
		b.WriteString("\n")
	}

	return components.TitledCard("Students", strings.TrimRight(b.String(), "\n"), cw)
}

func (a *AnalyticsScreen) renderSubtopics(cw int) string {
	var b strings.Builder
	for _, o := range a.report.SubtopicOutcomes {
		marker := theme.Hint.Render("·")
		switch o.Status {
		case "passed":
			marker = theme.Good.Render("✓")
		case "failed":
			marker = theme.Bad.Render("✗")
		}
		line := fmt.Sprintf("%s %s  %d questions  %.0f%%",
			marker, o.Subtopic, o.QuestionsAsked, o.AverageScore)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}
	return components.TitledCard("Subtopics", strings.TrimRight(b.String(), "\n"), cw)
}

func (a *AnalyticsScreen) renderInsights(cw int) string {
	var b strings.Builder
	for _, insight := range a.report.AIInsights {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw-8).Render("• "+insight))
		b.WriteString("\n")
	}
	return components.TitledCard("Insights", strings.TrimRight(b.String(), "\n"), cw)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
