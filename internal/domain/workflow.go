package domain

import "time"

// Draft is generated, not yet approved content for one day.
type Draft struct {
	Day         int
	Topic       string
	Category    string
	Difficulty  Difficulty
	Content     string
	CharCount   int
	Regenerated bool
}

type DecisionKind string

const (
	DecisionApprove DecisionKind = "approve"
	DecisionReject  DecisionKind = "reject"
	DecisionSkip    DecisionKind = "skip"
	DecisionQuit    DecisionKind = "quit"
	DecisionError   DecisionKind = "error"
)

// Decision is the outcome of the approval step. Only the fields relevant to
// Kind are populated.
type Decision struct {
	Kind         DecisionKind
	Day          int
	Topic        string
	Content      string
	Feedback     string
	Edited       bool
	AutoApproved bool
	Message      string
}

func Approve(draft *Draft, content string) Decision {
	return Decision{Kind: DecisionApprove, Day: draft.Day, Topic: draft.Topic, Content: content}
}

func Reject(draft *Draft, feedback string) Decision {
	return Decision{Kind: DecisionReject, Day: draft.Day, Topic: draft.Topic, Feedback: feedback}
}

func Skip(draft *Draft) Decision {
	return Decision{Kind: DecisionSkip, Day: draft.Day, Topic: draft.Topic}
}

func Quit(draft *Draft) Decision {
	return Decision{Kind: DecisionQuit, Day: draft.Day, Topic: draft.Topic}
}

func Fail(message string) Decision {
	return Decision{Kind: DecisionError, Message: message}
}

type PublishAction string

const (
	ActionPosted     PublishAction = "posted"
	ActionSkipped    PublishAction = "skipped"
	ActionRegenerate PublishAction = "regenerate"
	ActionQuit       PublishAction = "quit"
	ActionFailed     PublishAction = "failed"
)

// PublishOutcome is what executing a Decision produced.
type PublishOutcome struct {
	Action   PublishAction
	Success  bool
	Day      int
	Topic    string
	PostID   string
	PostedAt time.Time
	IsMock   bool
	Feedback string
	Detail   string
	Err      error
}

// WorkflowContext is threaded through one run. It is passed by value; use the
// With* methods to derive the context for the next attempt.
type WorkflowContext struct {
	RunID       string
	Day         int
	AutoApprove bool
	Feedback    string
	Attempt     int
}

func (w WorkflowContext) WithFeedback(feedback string) WorkflowContext {
	w.Feedback = feedback
	w.Attempt++
	return w
}

// Regenerating reports whether this attempt follows a rejected draft.
func (w WorkflowContext) Regenerating() bool {
	return w.Attempt > 0
}

type Stage string

const (
	StageGenerating Stage = "generating_content"
	StageApproval   Stage = "awaiting_approval"
	StagePublishing Stage = "publishing"
)

// RunResult summarizes which stage ended a run and its payload.
type RunResult struct {
	RunID         string
	Day           int
	Stage         Stage
	Draft         *Draft
	Decision      *Decision
	Outcome       *PublishOutcome
	Regenerations int
	QuitRequested bool
	Err           error
	Duration      time.Duration
}

func (r *RunResult) Posted() bool {
	return r.Outcome != nil && r.Outcome.Action == ActionPosted && r.Outcome.Success
}

func (r *RunResult) Skipped() bool {
	return r.Outcome != nil && r.Outcome.Action == ActionSkipped
}

func (r *RunResult) Succeeded() bool {
	return r.Err == nil && (r.Posted() || r.Skipped())
}
