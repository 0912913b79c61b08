package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"journey_poster/internal/cli/mocks"
	"journey_poster/internal/console"
	"journey_poster/internal/domain"
	"journey_poster/internal/service"
)

type AppTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	store   *mocks.MockStore
	runner  *mocks.MockRunner
	preview *mocks.MockPreviewer

	out    *bytes.Buffer
	logger *slog.Logger
	opts   Options
	ctx    context.Context
}

func (s *AppTestSuite) SetupSuite() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func (s *AppTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockStore(s.ctrl)
	s.runner = mocks.NewMockRunner(s.ctrl)
	s.preview = mocks.NewMockPreviewer(s.ctrl)

	s.out = &bytes.Buffer{}
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.opts = Options{
		TotalDays:   90,
		PostingTime: "10:00",
		Location:    time.UTC,
		Mock:        true,
		Model:       "llama3.2",
	}
	s.ctx = context.Background()
}

func (s *AppTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAppTestSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

// app builds an App whose console reads the given lines.
func (s *AppTestSuite) app(input ...string) *App {
	in := strings.NewReader(strings.Join(input, "\n") + "\n")
	con := console.New(in, s.out, s.opts.TotalDays)
	return New(s.store, s.runner, s.preview, con, s.logger, s.opts)
}

func postedResult(day int) *domain.RunResult {
	return &domain.RunResult{
		Day:   day,
		Stage: domain.StagePublishing,
		Outcome: &domain.PublishOutcome{
			Action:  domain.ActionPosted,
			Success: true,
			PostID:  "mock_post_1",
			IsMock:  true,
		},
	}
}

func (s *AppTestSuite) expectStatus(day int) {
	s.store.EXPECT().ProgressSnapshot(gomock.Any()).Return(&domain.Progress{
		CurrentDay: day,
		TotalPosts: day - 1,
		TotalDays:  90,
		Status:     domain.StatusActive,
	}, nil)
	s.store.EXPECT().TopicForDay(gomock.Any(), day).Return(&domain.CurriculumEntry{
		Day: day, Topic: "Machine Learning", Category: "Basics", Difficulty: domain.DifficultyBeginner,
	}, nil)
	s.store.EXPECT().PendingApproval(gomock.Any()).Return(nil, nil)
}

func (s *AppTestSuite) TestInteractive_StatusThenQuit() {
	s.expectStatus(2)

	err := s.app("s", "q").Interactive(s.ctx)

	s.NoError(err)
	s.Contains(s.out.String(), "JOURNEY STATUS")
	s.Contains(s.out.String(), "Today's Topic: Machine Learning")
	s.Contains(s.out.String(), "daily at 10:00 (UTC)")
	s.Contains(s.out.String(), "Goodbye!")
}

func (s *AppTestSuite) TestInteractive_EndOfInput() {
	err := s.app().Interactive(s.ctx)

	s.NoError(err)
}

func (s *AppTestSuite) TestInteractive_Post() {
	s.store.EXPECT().CurrentDay(gomock.Any()).Return(1, nil)
	s.runner.EXPECT().Run(gomock.Any(), service.RunOptions{}).Return(postedResult(1), nil)

	err := s.app("post", "quit").Interactive(s.ctx)

	s.NoError(err)
	s.Contains(s.out.String(), "Day 1 posted to mock publisher (id mock_post_1)")
}

func (s *AppTestSuite) TestInteractive_PostWhileRunning() {
	s.store.EXPECT().CurrentDay(gomock.Any()).Return(1, nil)
	s.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, domain.ErrRunInProgress)

	s.NoError(s.app("p", "q").Interactive(s.ctx))

	s.Contains(s.out.String(), "already in progress")
}

func (s *AppTestSuite) TestInteractive_PostJourneyComplete() {
	s.store.EXPECT().CurrentDay(gomock.Any()).Return(91, nil)

	s.NoError(s.app("p", "q").Interactive(s.ctx))

	s.Contains(s.out.String(), "Journey complete!")
}

func (s *AppTestSuite) TestInteractive_Generate() {
	s.store.EXPECT().CurrentDay(gomock.Any()).Return(3, nil)
	s.preview.EXPECT().Generate(gomock.Any(), 3).Return(&domain.Draft{
		Day: 3, Topic: "Neural Networks", Content: "Layers upon layers. #AI", CharCount: 23,
	}, nil)

	s.NoError(s.app("generate", "q").Interactive(s.ctx))

	s.Contains(s.out.String(), "Layers upon layers. #AI")
	s.Contains(s.out.String(), "Day 3/90")
}

func (s *AppTestSuite) TestInteractive_GenerateAlreadyPosted() {
	s.store.EXPECT().CurrentDay(gomock.Any()).Return(3, nil)
	s.preview.EXPECT().Generate(gomock.Any(), 3).Return(nil, domain.ErrAlreadyPosted)

	s.NoError(s.app("g", "q").Interactive(s.ctx))

	s.Contains(s.out.String(), "Day 3 has already been posted.")
}

func (s *AppTestSuite) TestInteractive_History() {
	s.store.EXPECT().RecentPosts(gomock.Any(), historySize).Return([]domain.PostedItem{
		{Day: 1, Topic: "What is AI?", CharCount: 900},
	}, nil)

	s.NoError(s.app("h", "q").Interactive(s.ctx))

	s.Contains(s.out.String(), "Day 1: What is AI?")
}

func (s *AppTestSuite) TestInteractive_Curriculum() {
	s.store.EXPECT().PostedDays(gomock.Any()).Return([]int{1}, nil)
	s.store.EXPECT().CurrentDay(gomock.Any()).Return(2, nil)
	s.store.EXPECT().AllTopics(gomock.Any()).Return([]domain.CurriculumEntry{
		{Day: 1, Topic: "What is AI?", Category: "Basics"},
		{Day: 2, Topic: "Machine Learning", Category: "Basics"},
	})

	s.NoError(s.app("c", "q").Interactive(s.ctx))

	s.Contains(s.out.String(), "Day  2: Machine Learning")
}

func (s *AppTestSuite) TestInteractive_ResetConfirmed() {
	s.store.EXPECT().ResetAll(gomock.Any()).Return(nil)

	s.NoError(s.app("reset", "yes", "q").Interactive(s.ctx))

	s.Contains(s.out.String(), "Progress reset.")
}

func (s *AppTestSuite) TestInteractive_ResetDeclined() {
	s.NoError(s.app("reset", "nope", "q").Interactive(s.ctx))

	s.Contains(s.out.String(), "Reset cancelled.")
}

func (s *AppTestSuite) TestInteractive_UnknownCommand() {
	s.NoError(s.app("dance", "q").Interactive(s.ctx))

	s.Contains(s.out.String(), `Unknown command "dance"`)
}

func (s *AppTestSuite) TestInteractive_StoreFailureKeepsLoop() {
	s.store.EXPECT().ProgressSnapshot(gomock.Any()).Return(nil, errors.New("corrupt data file"))
	s.store.EXPECT().RecentPosts(gomock.Any(), historySize).Return(nil, nil)

	s.NoError(s.app("status", "history", "q").Interactive(s.ctx))

	s.Contains(s.out.String(), "read progress: corrupt data file")
	s.Contains(s.out.String(), "No posts yet.")
}

func (s *AppTestSuite) TestExecute_PostUsesAutoApprove() {
	s.opts.AutoApprove = true
	s.store.EXPECT().CurrentDay(gomock.Any()).Return(1, nil)
	s.runner.EXPECT().Run(gomock.Any(), service.RunOptions{AutoApprove: true}).Return(postedResult(1), nil)

	s.NoError(s.app().Execute(s.ctx, "post"))
}

func (s *AppTestSuite) TestExecute_Status() {
	s.expectStatus(5)

	s.NoError(s.app().Execute(s.ctx, "STATUS"))

	s.Contains(s.out.String(), "Current Day:  5/90")
}

func (s *AppTestSuite) TestExecute_Unknown() {
	s.Error(s.app().Execute(s.ctx, "publish"))
}

func (s *AppTestSuite) TestSchedule_NowThenQuit() {
	s.opts.AutoApprove = true
	s.store.EXPECT().CurrentDay(gomock.Any()).Return(4, nil)
	s.runner.EXPECT().Run(gomock.Any(), service.RunOptions{AutoApprove: true}).Return(postedResult(4), nil)

	err := s.app("now", "quit").Schedule(s.ctx)

	s.NoError(err)
	s.Contains(s.out.String(), "Next post at")
	s.Contains(s.out.String(), "Day 4 posted")
	s.Contains(s.out.String(), "Leaving scheduled mode.")
}

func (s *AppTestSuite) TestSchedule_WaitsAfterInputCloses() {
	ctx, cancel := context.WithTimeout(s.ctx, 100*time.Millisecond)
	defer cancel()

	err := s.app().Schedule(ctx)

	s.ErrorIs(err, context.DeadlineExceeded)
}

func (s *AppTestSuite) TestSchedule_InvalidTime() {
	s.opts.PostingTime = "noon"

	s.Error(s.app().Schedule(s.ctx))
}
