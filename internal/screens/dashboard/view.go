package dashboard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/classpulse/classpulse/internal/agent"
	"github.com/classpulse/classpulse/internal/ui/components"
	"github.com/classpulse/classpulse/internal/ui/theme"
)

func (d *DashboardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, d.renderMetrics(cw))

	switch {
	case d.confirmStop:
		sections = append(sections, renderConfirmStop(cw))
	case d.state.Explanation != nil:
		sections = append(sections, d.renderExplanation(cw))
	case d.state.Status == agent.StatusPausedForTeacher:
		sections = append(sections, d.renderIntervention(cw))
	case d.customActive:
		sections = append(sections, d.renderQuestion(cw), d.renderCustomPrompt(cw))
	default:
		sections = append(sections, d.renderQuestion(cw))
	}

	sections = append(sections, d.renderProgress(cw))

	if d.state.Err != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Width(cw).
			Render("Error: "+d.state.Err))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderMetrics shows the three class metrics side by side.
func (d *DashboardScreen) renderMetrics(cw int) string {
	third := cw / 3

	mastery := metricCell("Mastery", fmt.Sprintf("%.0f%%", d.state.MasteryPercentage), third)
	consistency := metricCell("Question consistency", fmt.Sprintf("%.0f%%", d.state.QuestionConsistency), third)

	dist := "-"
	if cc := d.state.ClassConsistency; cc != nil {
		dist = fmt.Sprintf("%d / %d / %d", cc.Distribution.High, cc.Distribution.Medium, cc.Distribution.Low)
	}
	spread := metricCell("High / Med / Low", dist, third)

	return components.SectionCard(lipgloss.JoinHorizontal(lipgloss.Top, mastery, consistency, spread), cw)
}

func metricCell(label, value string, w int) string {
	l := lipgloss.NewStyle().Foreground(theme.TextDim).Width(w).Align(lipgloss.Center).Render(label)
	v := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Width(w).Align(lipgloss.Center).Render(value)
	return l + "\n" + v
}

func (d *DashboardScreen) renderQuestion(cw int) string {
	q := d.state.CurrentQuestion

	if d.state.Loading {
		return components.TitledCard("Question",
			theme.Hint.Render("Waiting for the server..."), cw)
	}
	if q == nil {
		return components.TitledCard("Question",
			theme.Hint.Render("No question yet."), cw)
	}

	header := fmt.Sprintf("%s  ·  %s  ·  question %d  ·  %s",
		q.CurrentSubtopic, q.Difficulty, q.QuestionIndex+1, formatMs(d.remainingMs))

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(header))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw - 6).Render(q.Prompt))
	b.WriteString("\n\n")
	b.WriteString(components.NewOptionList(q.Options).View())

	return components.TitledCard("Question", b.String(), cw)
}

func (d *DashboardScreen) renderExplanation(cw int) string {
	exp := d.state.Explanation

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(exp.Explanation))
	if exp.CorrectAnswer != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Good.Render("Correct answer: " + exp.CorrectAnswer))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press Enter to continue"))

	return components.TitledCard("Explanation for the class", b.String(), cw)
}

func (d *DashboardScreen) renderIntervention(cw int) string {
	msg := d.state.InterventionMessage
	if msg == "" {
		msg = "The class needs your help before the session can continue."
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).Render("Session paused"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(msg))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press G when you are ready to resume"))

	return components.TitledCard("Teacher intervention", b.String(), cw)
}

func (d *DashboardScreen) renderCustomPrompt(cw int) string {
	return components.TitledCard("Custom batch", d.customInput.View(), cw)
}

// renderProgress shows class mastery, per-subtopic outcomes and session
// counters.
func (d *DashboardScreen) renderProgress(cw int) string {
	var b strings.Builder

	b.WriteString(components.NewProgressBar("Mastery", d.state.MasteryPercentage/100, true, cw-8).View())
	b.WriteString("\n\n")

	if len(d.state.SubtopicOutcomes) > 0 {
		for _, o := range d.state.SubtopicOutcomes {
			marker := theme.Hint.Render("·")
			switch o.Status {
			case "passed":
				marker = theme.Good.Render("✓")
			case "failed":
				marker = theme.Bad.Render("✗")
			}
			line := fmt.Sprintf("%s %s  %.0f%%", marker, o.Subtopic, o.AverageScore)
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	counters := fmt.Sprintf("questions %d  ·  interventions %d",
		d.state.QuestionsAsked, d.state.InterventionCount)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(counters))

	return components.TitledCard("Progress", b.String(), cw)
}

func renderConfirmStop(cw int) string {
	body := lipgloss.NewStyle().Foreground(theme.Text).
		Render("Stop this session for the whole class?") +
		"\n\n" + theme.Hint.Render("Y to stop, N to keep going")
	return components.TitledCard("Stop session", body, cw)
}
