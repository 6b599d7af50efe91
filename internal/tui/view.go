package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/benahmedanass/pomodoro/internal/core/schedule"
	"github.com/benahmedanass/pomodoro/internal/core/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.plan.Empty() {
		return m.emptyView()
	}

	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.activeView())
	b.WriteString("\n")

	if m.flash != "" {
		b.WriteString("\n")
		b.WriteString(styles.CueFlashStyle.Render(" " + m.flash + " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.listView())
	b.WriteString("\n")

	if m.renaming {
		b.WriteString("\n")
		b.WriteString(m.renameView())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	if m.help.ShowAll && m.deps.Build.Version != "" {
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle.Render("pomodoro " + m.deps.Build.Version))
	}

	return b.String()
}

func (m Model) emptyView() string {
	lines := []string{
		styles.TitleStyle.Render(styles.IconTomato + " pomodoro"),
		"",
		"No schedule for today.",
		styles.SubtitleStyle.Render("Run 'pomodoro generate' to plan your day."),
		"",
		m.help.View(m.keys),
	}
	return strings.Join(lines, "\n")
}

func (m Model) headerView() string {
	completed, total := schedule.WorkProgress(m.plan.Sessions)

	title := styles.TitleStyle.Render(styles.IconTomato + " pomodoro")
	date := styles.SubtitleStyle.Render(m.now.Format("Mon 2 Jan 15:04"))
	tally := styles.SubtitleStyle.Render(fmt.Sprintf("%d/%d work done", completed, total))

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", date, "  ", tally)
}

// activeView is the countdown block for the session containing now.
func (m Model) activeView() string {
	active, ok := schedule.ActiveAt(m.plan.Sessions, m.now)
	if !ok {
		return styles.SubtitleStyle.Render(m.idleLine())
	}

	label := active.Task
	style := styles.WorkStyle
	if !active.IsWork() {
		style = styles.BreakStyle
	}

	head := fmt.Sprintf("%s  %s remaining",
		style.Bold(true).Render(label),
		styles.CountdownStyle.Render(countdown(schedule.Remaining(active, m.now))),
	)

	return head + "\n" + m.bar.ViewAs(schedule.Progress(active, m.now))
}

// idleLine says where now falls relative to the plan's range.
func (m Model) idleLine() string {
	first := m.plan.Sessions[0]
	last := m.plan.Sessions[len(m.plan.Sessions)-1]

	switch {
	case m.now.Before(first.Start):
		return fmt.Sprintf("Day starts at %s (%s from now)",
			first.Start.Format("15:04"), countdown(first.Start.Sub(m.now)))
	case !m.now.Before(last.End):
		return "Day complete. Rest well."
	default:
		return "Between sessions."
	}
}

func (m Model) listView() string {
	var b strings.Builder

	for i, s := range m.plan.Sessions {
		b.WriteString(m.sessionLine(i, s))
		if i < len(m.plan.Sessions)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) sessionLine(i int, s schedule.Session) string {
	cursor := "  "
	if i == m.cursor {
		cursor = styles.SelectedRowStyle.Render("❯ ")
	}

	active := " "
	if s.Contains(m.now) {
		active = styles.ActiveRowStyle.Render("▶")
	}

	mark, markStyle := statusGlyph(s.Status)

	task := s.Task
	taskStyle := styles.PendingStyle
	switch {
	case s.Status == schedule.StatusCompleted:
		taskStyle = styles.DoneStyle
	case !s.IsWork():
		taskStyle = styles.BreakStyle
	}
	if i == m.cursor {
		taskStyle = taskStyle.Bold(true)
	}

	line := fmt.Sprintf("%s%s %s [%s] %s  %s",
		cursor,
		styles.MutedStyle.Render(fmt.Sprintf("%2d", i+1)),
		active,
		markStyle.Render(mark),
		styles.MutedStyle.Render(window(s.Start, s.End)),
		taskStyle.Render(task),
	)

	if s.IsWork() && s.Distractions > 0 {
		line += "  " + styles.DistractionStyle.Render(fmt.Sprintf("%s %d", styles.IconDistraction, s.Distractions))
	}

	return line
}

func statusGlyph(st schedule.Status) (string, lipgloss.Style) {
	switch st {
	case schedule.StatusCompleted:
		return styles.MarkDone, styles.DoneStyle
	case schedule.StatusNotApplicable:
		return styles.MarkSkipped, styles.SkippedStyle
	default:
		return styles.MarkPending, styles.PendingStyle
	}
}

func (m Model) renameView() string {
	body := styles.OverlayTitleStyle.Render("Rename task") + "\n\n" +
		m.renameInput.View() + "\n" +
		styles.OverlayHelpStyle.Render("enter save · esc cancel")
	return styles.OverlayStyle.Render(body)
}
