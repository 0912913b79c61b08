package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"journey_poster/internal/domain"
)

const maxLineSize = 1 << 20

// Console is the terminal side of the application. Input is read by a
// single goroutine and delivered line by line, so the command loop and the
// approval prompt can share it.
type Console struct {
	out       io.Writer
	lines     chan string
	totalDays int
	now       func() time.Time

	mu sync.Mutex
}

func New(in io.Reader, out io.Writer, totalDays int) *Console {
	c := &Console{
		out:       out,
		lines:     make(chan string),
		totalDays: totalDays,
		now:       time.Now,
	}
	go c.scan(in)
	return c
}

func (c *Console) scan(in io.Reader) {
	defer close(c.lines)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		c.lines <- scanner.Text()
	}
}

// Lines is closed when input reaches EOF.
func (c *Console) Lines() <-chan string {
	return c.lines
}

// ReadLine prints prompt and waits for the next input line. It returns
// io.EOF once input is exhausted.
func (c *Console) ReadLine(ctx context.Context, prompt string) (string, error) {
	if prompt != "" {
		c.write(promptStyle.Render(prompt))
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

func (c *Console) ShowDraft(draft *domain.Draft) {
	c.println(RenderDraft(draft, c.totalDays, c.now()))
}

func (c *Console) ShowEdited(content string) {
	c.println(RenderEdited(content))
}

func (c *Console) Notice(message string) {
	c.println(noticeStyle.Render(message))
}

func (c *Console) Success(message string) {
	c.println(successStyle.Render("✓ " + message))
}

func (c *Console) Error(message string) {
	c.println(errorStyle.Render("✗ " + message))
}

func (c *Console) Print(text string) {
	c.println(text)
}

func (c *Console) Printf(format string, args ...any) {
	c.println(fmt.Sprintf(format, args...))
}

func (c *Console) println(text string) {
	c.write(text + "\n")
}

func (c *Console) write(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.out, text)
}
