package console

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"journey_poster/internal/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5B8DEF")).
			Padding(0, 1)
)

const timeLayout = "2006-01-02 15:04"

func RenderDraft(draft *domain.Draft, totalDays int, generatedAt time.Time) string {
	title := "DAILY POST READY FOR REVIEW"
	if draft.Regenerated {
		title = "REGENERATED POST READY FOR REVIEW"
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		fmt.Sprintf("Day %d/%d | Topic: %s", draft.Day, totalDays, draft.Topic),
		labelStyle.Render(fmt.Sprintf("Category: %s | Difficulty: %s", draft.Category, draft.Difficulty)),
	)

	footer := labelStyle.Render(fmt.Sprintf("Character Count: %d | Generated At: %s",
		draft.CharCount, generatedAt.Format(timeLayout)))

	box := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", draft.Content, "", footer))

	commands := strings.Join([]string{
		"Commands:",
		"  [A]pprove - Post to LinkedIn",
		"  [R]eject  - Regenerate content",
		"  [E]dit    - Manually edit before posting",
		"  [S]kip    - Skip today's post",
		"  [Q]uit    - Exit without posting",
	}, "\n")

	return box + "\n\n" + commands
}

func RenderEdited(content string) string {
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("EDITED POST"),
		"",
		content,
	))
}

// StatusView is everything the status report shows.
type StatusView struct {
	Progress *domain.Progress
	Topic    *domain.CurriculumEntry
	Pending  *domain.PendingApproval
	Mock     bool
	Model    string
	Schedule string
}

func RenderStatus(v StatusView) string {
	p := v.Progress
	lines := []string{
		titleStyle.Render("JOURNEY STATUS"),
		fmt.Sprintf("Current Day:  %d/%d", min(p.CurrentDay, p.TotalDays), p.TotalDays),
		fmt.Sprintf("Total Posts:  %d", p.TotalPosts),
		fmt.Sprintf("Completion:   %.1f%%", p.CompletionPercentage),
		fmt.Sprintf("Status:       %s", p.Status),
		fmt.Sprintf("Started:      %s", formatTime(p.StartedAt)),
		fmt.Sprintf("Last Post:    %s", formatTime(p.LastPostDate)),
	}

	if p.Completed() {
		lines = append(lines, "", successStyle.Render("Journey complete!"))
	} else if v.Topic != nil {
		lines = append(lines, "",
			fmt.Sprintf("Today's Topic: %s", v.Topic.Topic),
			labelStyle.Render(fmt.Sprintf("Category: %s | Difficulty: %s", v.Topic.Category, v.Topic.Difficulty)),
		)
	}

	if v.Pending != nil {
		lines = append(lines, "",
			warnStyle.Render(fmt.Sprintf("Pending approved draft for day %d (%s), approved %s, not yet published.",
				v.Pending.Day, v.Pending.Topic, v.Pending.ApprovedAt.Format(timeLayout))),
		)
	}

	mode := "LinkedIn"
	if v.Mock {
		mode = "mock (no credentials)"
	}
	lines = append(lines, "", mutedStyle.Render(fmt.Sprintf("Publisher: %s", mode)))
	if v.Model != "" {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("Model: %s", v.Model)))
	}
	if v.Schedule != "" {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("Schedule: %s", v.Schedule)))
	}

	return boxStyle.Render(strings.Join(lines, "\n"))
}

// RenderHistory lists items newest first.
func RenderHistory(items []domain.PostedItem) string {
	if len(items) == 0 {
		return mutedStyle.Render("No posts yet.")
	}

	lines := []string{titleStyle.Render("RECENT POSTS")}
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		id := "-"
		if item.ExternalPostID != nil {
			id = *item.ExternalPostID
		}
		lines = append(lines,
			fmt.Sprintf("Day %d: %s", item.Day, item.Topic),
			labelStyle.Render(fmt.Sprintf("  %s | %d chars | %s", item.PostedAt.Format(timeLayout), item.CharCount, id)),
		)
	}
	return strings.Join(lines, "\n")
}

// RenderCurriculum groups entries by category in order of first
// appearance and marks each day posted, current or upcoming.
func RenderCurriculum(entries []domain.CurriculumEntry, posted []int, currentDay int) string {
	done := make(map[int]bool, len(posted))
	for _, day := range posted {
		done[day] = true
	}

	var categories []string
	byCategory := make(map[string][]domain.CurriculumEntry)
	for _, e := range entries {
		if _, ok := byCategory[e.Category]; !ok {
			categories = append(categories, e.Category)
		}
		byCategory[e.Category] = append(byCategory[e.Category], e)
	}

	lines := []string{titleStyle.Render("CURRICULUM")}
	for _, category := range categories {
		group := byCategory[category]
		sort.Slice(group, func(i, j int) bool { return group[i].Day < group[j].Day })

		lines = append(lines, "", labelStyle.Render(category))
		for _, e := range group {
			var mark string
			switch {
			case done[e.Day]:
				mark = successStyle.Render("✓")
			case e.Day == currentDay:
				mark = warnStyle.Render("→")
			default:
				mark = mutedStyle.Render("·")
			}
			lines = append(lines, fmt.Sprintf("  %s Day %2d: %s", mark, e.Day, e.Topic))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderResult reports how a workflow run ended.
func RenderResult(r *domain.RunResult) string {
	switch {
	case r.Posted():
		where := "LinkedIn"
		if r.Outcome.IsMock {
			where = "mock publisher"
		}
		return successStyle.Render(fmt.Sprintf("✓ Day %d posted to %s (id %s)", r.Day, where, r.Outcome.PostID))
	case r.Skipped():
		return warnStyle.Render(fmt.Sprintf("Day %d skipped.", r.Day))
	case r.QuitRequested:
		return mutedStyle.Render("Stopped without posting.")
	case errors.Is(r.Err, domain.ErrAlreadyPosted):
		return mutedStyle.Render(fmt.Sprintf("Day %d has already been posted.", r.Day))
	case r.Err != nil:
		msg := fmt.Sprintf("✗ Day %d failed at %s: %v", r.Day, r.Stage, r.Err)
		if r.Outcome != nil && r.Outcome.Detail != "" && !strings.Contains(msg, r.Outcome.Detail) {
			msg += "\n  " + r.Outcome.Detail
		}
		return errorStyle.Render(msg)
	default:
		return mutedStyle.Render(fmt.Sprintf("Day %d: run ended at %s.", r.Day, r.Stage))
	}
}

func RenderHelp() string {
	return strings.Join([]string{
		titleStyle.Render("COMMANDS"),
		"  generate (g)    Preview today's post without publishing",
		"  post (p)        Generate, review and publish today's post",
		"  status (s)      Show journey progress",
		"  history (h)     Show recent posts",
		"  schedule        Wait for the daily posting time",
		"  curriculum (c)  Show all topics",
		"  reset           Erase all progress",
		"  help            Show this help",
		"  quit (q)        Exit",
	}, "\n")
}

func RenderScheduleHelp() string {
	return strings.Join([]string{
		titleStyle.Render("SCHEDULED MODE"),
		"  status  Show journey progress",
		"  now     Run today's post immediately",
		"  help    Show this help",
		"  quit    Leave scheduled mode",
	}, "\n")
}

// RenderNextRun shows when the next scheduled run happens.
func RenderNextRun(next, now time.Time) string {
	wait := next.Sub(now).Round(time.Minute)
	return mutedStyle.Render(fmt.Sprintf("Next post at %s (in %s)", next.Format(timeLayout+" MST"), formatDuration(wait)))
}

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(timeLayout)
}
