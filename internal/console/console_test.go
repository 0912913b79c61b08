package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journey_poster/internal/domain"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestReadLine(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("approve\nmore examples\n"), &out, 90)
	ctx := context.Background()

	line, err := c.ReadLine(ctx, "Your choice: ")
	require.NoError(t, err)
	assert.Equal(t, "approve", line)

	line, err = c.ReadLine(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "more examples", line)

	_, err = c.ReadLine(ctx, "")
	assert.ErrorIs(t, err, io.EOF)

	assert.Contains(t, out.String(), "Your choice: ")
}

func TestReadLine_Cancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	c := New(pr, io.Discard, 90)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ReadLine(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShowDraft(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, 90)
	c.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }

	c.ShowDraft(&domain.Draft{
		Day:        7,
		Topic:      "Embeddings",
		Category:   "Foundations",
		Difficulty: domain.DifficultyIntermediate,
		Content:    "Words become vectors.",
		CharCount:  21,
	})

	text := out.String()
	assert.Contains(t, text, "DAILY POST READY FOR REVIEW")
	assert.Contains(t, text, "Day 7/90 | Topic: Embeddings")
	assert.Contains(t, text, "Category: Foundations | Difficulty: Intermediate")
	assert.Contains(t, text, "Words become vectors.")
	assert.Contains(t, text, "Character Count: 21")
	assert.Contains(t, text, "2026-03-01 10:00")
	assert.Contains(t, text, "[E]dit")
}

func TestRenderDraft_Regenerated(t *testing.T) {
	text := RenderDraft(&domain.Draft{Day: 1, Topic: "AI", Regenerated: true}, 90, time.Now())
	assert.Contains(t, text, "REGENERATED POST")
}

func TestRenderStatus(t *testing.T) {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	text := RenderStatus(StatusView{
		Progress: &domain.Progress{
			CurrentDay:           4,
			TotalPosts:           3,
			TotalDays:            90,
			StartedAt:            &started,
			Status:               domain.StatusPendingApproval,
			CompletionPercentage: 3.3,
		},
		Topic:   &domain.CurriculumEntry{Day: 4, Topic: "Transformers", Category: "Deep Learning", Difficulty: domain.DifficultyAdvanced},
		Pending: &domain.PendingApproval{Day: 4, Topic: "Transformers", ApprovedAt: started},
		Mock:    true,
		Model:   "llama3.2",
	})

	assert.Contains(t, text, "Current Day:  4/90")
	assert.Contains(t, text, "Completion:   3.3%")
	assert.Contains(t, text, "Today's Topic: Transformers")
	assert.Contains(t, text, "Pending approved draft for day 4")
	assert.Contains(t, text, "mock (no credentials)")
	assert.Contains(t, text, "Model: llama3.2")
	assert.Contains(t, text, "Last Post:    -")
}

func TestRenderStatus_Completed(t *testing.T) {
	text := RenderStatus(StatusView{
		Progress: &domain.Progress{CurrentDay: 91, TotalPosts: 90, TotalDays: 90, CompletionPercentage: 100},
	})

	assert.Contains(t, text, "Current Day:  90/90")
	assert.Contains(t, text, "Journey complete!")
}

func TestRenderHistory_NewestFirst(t *testing.T) {
	id := "urn:li:share:2"
	text := RenderHistory([]domain.PostedItem{
		{Day: 1, Topic: "What is AI?", CharCount: 900},
		{Day: 2, Topic: "Machine Learning", CharCount: 1200, ExternalPostID: &id},
	})

	assert.Less(t, strings.Index(text, "Day 2: Machine Learning"), strings.Index(text, "Day 1: What is AI?"))
	assert.Contains(t, text, id)
	assert.Contains(t, RenderHistory(nil), "No posts yet.")
}

func TestRenderCurriculum(t *testing.T) {
	text := RenderCurriculum([]domain.CurriculumEntry{
		{Day: 1, Topic: "What is AI?", Category: "Basics"},
		{Day: 2, Topic: "Neural Networks", Category: "Deep Learning"},
		{Day: 3, Topic: "Machine Learning", Category: "Basics"},
	}, []int{1}, 2)

	basics := strings.Index(text, "Basics")
	deep := strings.Index(text, "Deep Learning")
	assert.Less(t, basics, deep)
	assert.Less(t, strings.Index(text, "Day  3: Machine Learning"), deep)
	assert.Contains(t, text, "✓ Day  1: What is AI?")
	assert.Contains(t, text, "→ Day  2: Neural Networks")
	assert.Contains(t, text, "· Day  3: Machine Learning")
}

func TestRenderResult(t *testing.T) {
	tests := []struct {
		name   string
		result *domain.RunResult
		want   string
	}{
		{
			name: "posted",
			result: &domain.RunResult{Day: 1, Outcome: &domain.PublishOutcome{
				Action: domain.ActionPosted, Success: true, PostID: "mock_post_1", IsMock: true,
			}},
			want: "Day 1 posted to mock publisher (id mock_post_1)",
		},
		{
			name:   "skipped",
			result: &domain.RunResult{Day: 2, Outcome: &domain.PublishOutcome{Action: domain.ActionSkipped, Success: true}},
			want:   "Day 2 skipped.",
		},
		{
			name:   "quit",
			result: &domain.RunResult{Day: 3, QuitRequested: true},
			want:   "Stopped without posting.",
		},
		{
			name:   "already posted",
			result: &domain.RunResult{Day: 4, Err: domain.ErrAlreadyPosted},
			want:   "Day 4 has already been posted.",
		},
		{
			name: "publish failure",
			result: &domain.RunResult{
				Day:     5,
				Stage:   domain.StagePublishing,
				Err:     errors.New("create post: publish failed with status 401"),
				Outcome: &domain.PublishOutcome{Action: domain.ActionFailed, Detail: "Invalid access token"},
			},
			want: "Invalid access token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, RenderResult(tt.result), tt.want)
		})
	}
}

func TestRenderNextRun(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 15, 0, 0, time.UTC)
	next := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.Contains(t, RenderNextRun(next, now), "in 1h 45m")
	assert.Equal(t, "5m", formatDuration(5*time.Minute))
}
