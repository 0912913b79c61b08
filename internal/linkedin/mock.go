package linkedin

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"journey_poster/internal/domain"
)

// MockClient stands in for the real API when no credentials are
// configured. It hands out sequential ids mock_post_1, mock_post_2, ...
type MockClient struct {
	mu      sync.Mutex
	counter int
	logger  *slog.Logger
}

func NewMock(logger *slog.Logger) *MockClient {
	return &MockClient{logger: logger.With("component", "linkedin", "mock", true)}
}

func (m *MockClient) IsMock() bool {
	return true
}

func (m *MockClient) CreatePost(ctx context.Context, content string) (string, error) {
	m.mu.Lock()
	m.counter++
	id := fmt.Sprintf("mock_post_%d", m.counter)
	m.mu.Unlock()

	m.logger.Info("[MOCK] post would be created", "post_id", id, "preview", preview(content, 100))
	return id, nil
}

func (m *MockClient) VerifyCredentials(ctx context.Context) (*domain.Profile, error) {
	return &domain.Profile{ID: "mock_user", FirstName: "Test", LastName: "User"}, nil
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
