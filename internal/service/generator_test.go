package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"journey_poster/internal/config"
	"journey_poster/internal/domain"
	"journey_poster/internal/service/mocks"
)

func testJourneyConfig() config.JourneyConfig {
	return config.JourneyConfig{
		TotalDays:        90,
		MinPostLength:    500,
		MaxPostLength:    3000,
		HashtagCount:     5,
		MaxRegenerations: 5,
		OnUnrecognized:   "approve",
	}
}

func testRetryConfig() config.RetryConfig {
	return config.RetryConfig{MaxRetries: 3, BackoffStep: time.Millisecond}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func dayOneEntry() *domain.CurriculumEntry {
	return &domain.CurriculumEntry{
		Day:        1,
		Topic:      "What is AI?",
		Category:   "Basics",
		Difficulty: domain.DifficultyBeginner,
		KeyPoints:  []string{"definition", "history"},
		StoryAngle: "A morning with a smart assistant",
	}
}

type GeneratorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	llm    *mocks.MockLLM
	topics *mocks.MockTopicStore

	generator *Generator
	ctx       context.Context
}

func (s *GeneratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.llm = mocks.NewMockLLM(s.ctrl)
	s.topics = mocks.NewMockTopicStore(s.ctrl)
	s.ctx = context.Background()

	s.generator = NewGenerator(s.llm, s.topics, testLogger(), testJourneyConfig(), testRetryConfig())
}

func (s *GeneratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) expectDayOne() {
	s.topics.EXPECT().TopicForDay(s.ctx, 1).Return(dayOneEntry(), nil)
	s.topics.EXPECT().IsDayPosted(s.ctx, 1).Return(false, nil)
	s.topics.EXPECT().RecentPostsSummary(s.ctx, 3).Return("This is the beginning of the 90-day AI journey!", nil)
}

func (s *GeneratorTestSuite) TestGenerate_Success() {
	s.expectDayOne()

	content := "Imagine waking up to an assistant that knows you.\n\n#AI #Learning"
	var got []domain.Message
	s.llm.EXPECT().Chat(s.ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, messages []domain.Message) (string, error) {
			got = messages
			return content, nil
		},
	)

	draft, err := s.generator.Generate(s.ctx, 1)

	s.Require().NoError(err)
	s.Equal(1, draft.Day)
	s.Equal("What is AI?", draft.Topic)
	s.Equal("Basics", draft.Category)
	s.Equal(domain.DifficultyBeginner, draft.Difficulty)
	s.Equal(content, draft.Content)
	s.Equal(utf8.RuneCountInString(content), draft.CharCount)
	s.False(draft.Regenerated)

	s.Require().Len(got, 2)
	s.Equal(domain.RoleSystem, got[0].Role)
	s.Equal(storySystemPrompt, got[0].Content)
	s.Equal(domain.RoleUser, got[1].Role)
	s.Contains(got[1].Content, "**Day**: 1 of 90")
	s.Contains(got[1].Content, "**Topic**: What is AI?")
	s.Contains(got[1].Content, "**Key Points to Cover**: definition, history")
	s.Contains(got[1].Content, "This is the beginning of the 90-day AI journey!")
	s.NotContains(got[1].Content, "Additional Feedback")
}

func (s *GeneratorTestSuite) TestGenerate_AppendsHashtags() {
	s.expectDayOne()

	body := "A story without any tags at the end."
	gomock.InOrder(
		s.llm.EXPECT().Chat(s.ctx, gomock.Any()).Return(body, nil),
		s.llm.EXPECT().Chat(s.ctx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, messages []domain.Message) (string, error) {
				s.Require().Len(messages, 1)
				s.Contains(messages[0].Content, "generate exactly 5 relevant")
				s.Contains(messages[0].Content, body)
				return "  #AI #MachineLearning  \n", nil
			},
		),
	)

	draft, err := s.generator.Generate(s.ctx, 1)

	s.Require().NoError(err)
	s.Equal(body+"\n\n---\n#AI #MachineLearning", draft.Content)
	s.True(HasTrailingHashtags(draft.Content))
}

func (s *GeneratorTestSuite) TestGenerate_TruncatesLongContent() {
	s.expectDayOne()

	long := strings.Repeat("a", 2500) + "\n\n" + strings.Repeat("b", 1000) + " #AI"
	s.llm.EXPECT().Chat(s.ctx, gomock.Any()).Return(long, nil)
	s.llm.EXPECT().Chat(s.ctx, gomock.Any()).Return("#AI", nil)

	draft, err := s.generator.Generate(s.ctx, 1)

	s.Require().NoError(err)
	s.True(strings.HasPrefix(draft.Content, strings.Repeat("a", 2500)+"\n\n---\n"))
	s.LessOrEqual(draft.CharCount, 3000)
}

func (s *GeneratorTestSuite) TestGenerate_TopicNotFound() {
	s.topics.EXPECT().TopicForDay(s.ctx, 42).Return(nil, fmt.Errorf("day 42: %w", domain.ErrTopicNotFound))

	draft, err := s.generator.Generate(s.ctx, 42)

	s.Nil(draft)
	s.ErrorIs(err, domain.ErrTopicNotFound)
}

func (s *GeneratorTestSuite) TestGenerate_AlreadyPosted() {
	s.topics.EXPECT().TopicForDay(s.ctx, 1).Return(dayOneEntry(), nil)
	s.topics.EXPECT().IsDayPosted(s.ctx, 1).Return(true, nil)

	draft, err := s.generator.Generate(s.ctx, 1)

	s.Nil(draft)
	s.ErrorIs(err, domain.ErrAlreadyPosted)
}

func (s *GeneratorTestSuite) TestRegenerate_WithFeedback() {
	s.expectDayOne()

	var got []domain.Message
	s.llm.EXPECT().Chat(s.ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, messages []domain.Message) (string, error) {
			got = messages
			return "A fresh take. #AI", nil
		},
	)

	draft, err := s.generator.Regenerate(s.ctx, 1, "more examples")

	s.Require().NoError(err)
	s.True(draft.Regenerated)
	s.Require().Len(got, 2)
	s.Equal(regenerateSystemPrompt, got[0].Content)
	s.True(strings.HasSuffix(got[1].Content,
		"\n\n## Additional Feedback:\nmore examples\n\nPlease incorporate this feedback in the new version."))
}

func (s *GeneratorTestSuite) TestRegenerate_AlreadyPosted() {
	s.topics.EXPECT().TopicForDay(s.ctx, 1).Return(dayOneEntry(), nil)
	s.topics.EXPECT().IsDayPosted(s.ctx, 1).Return(true, nil)

	_, err := s.generator.Regenerate(s.ctx, 1, "")

	s.ErrorIs(err, domain.ErrAlreadyPosted)
}

func (s *GeneratorTestSuite) TestGenerate_RetriesRateLimit() {
	s.expectDayOne()

	rateLimited := fmt.Errorf("chat: %w", domain.ErrRateLimited)
	gomock.InOrder(
		s.llm.EXPECT().Chat(s.ctx, gomock.Any()).Return("", rateLimited),
		s.llm.EXPECT().Chat(s.ctx, gomock.Any()).Return("", rateLimited),
		s.llm.EXPECT().Chat(s.ctx, gomock.Any()).Return("Finally. #AI", nil),
	)

	draft, err := s.generator.Generate(s.ctx, 1)

	s.Require().NoError(err)
	s.Equal("Finally. #AI", draft.Content)
}

func (s *GeneratorTestSuite) TestGenerate_RetriesExhausted() {
	s.expectDayOne()

	s.llm.EXPECT().Chat(s.ctx, gomock.Any()).Return("", domain.ErrRateLimited).Times(4)

	_, err := s.generator.Generate(s.ctx, 1)

	s.ErrorIs(err, domain.ErrRetriesExhausted)
}

func (s *GeneratorTestSuite) TestGenerate_OtherErrorNotRetried() {
	s.expectDayOne()

	s.llm.EXPECT().Chat(s.ctx, gomock.Any()).Return("", errors.New("connection refused")).Times(1)

	_, err := s.generator.Generate(s.ctx, 1)

	s.Require().Error(err)
	s.NotErrorIs(err, domain.ErrRetriesExhausted)
	s.Contains(err.Error(), "connection refused")
}

func (s *GeneratorTestSuite) TestGenerate_RetryStopsOnCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	s.topics.EXPECT().TopicForDay(ctx, 1).Return(dayOneEntry(), nil)
	s.topics.EXPECT().IsDayPosted(ctx, 1).Return(false, nil)
	s.topics.EXPECT().RecentPostsSummary(ctx, 3).Return("", nil)

	generator := NewGenerator(s.llm, s.topics, testLogger(), testJourneyConfig(),
		config.RetryConfig{MaxRetries: 3, BackoffStep: time.Hour})

	s.llm.EXPECT().Chat(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, messages []domain.Message) (string, error) {
			cancel()
			return "", domain.ErrRateLimited
		},
	)

	_, err := generator.Generate(ctx, 1)

	s.ErrorIs(err, context.Canceled)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		max     int
		want    string
	}{
		{
			name:    "within limit",
			content: "short post",
			max:     3000,
			want:    "short post",
		},
		{
			name:    "no paragraph break",
			content: strings.Repeat("a", 3500),
			max:     3000,
			want:    strings.Repeat("a", 2900),
		},
		{
			name:    "late paragraph break",
			content: strings.Repeat("a", 2500) + "\n\n" + strings.Repeat("b", 1000),
			max:     3000,
			want:    strings.Repeat("a", 2500),
		},
		{
			name:    "early paragraph break ignored",
			content: strings.Repeat("a", 300) + "\n\n" + strings.Repeat("b", 3200),
			max:     3000,
			want:    (strings.Repeat("a", 300) + "\n\n" + strings.Repeat("b", 3200))[:2900],
		},
		{
			name:    "multibyte characters",
			content: strings.Repeat("é", 3500),
			max:     3000,
			want:    strings.Repeat("é", 2900),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.content, tt.max)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), tt.max)
		})
	}
}

func TestHasTrailingHashtags(t *testing.T) {
	assert.True(t, HasTrailingHashtags("A post.\n\n#AI #ML"))
	assert.False(t, HasTrailingHashtags("A post without tags."))
	assert.False(t, HasTrailingHashtags("#early "+strings.Repeat("x", 250)))
	assert.True(t, HasTrailingHashtags(strings.Repeat("x", 250)+" #late"))
}
