package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"journey_poster/internal/domain"
)

// UnrecognizedPolicy decides what an unrecognized review choice means.
type UnrecognizedPolicy string

const (
	UnrecognizedApprove  UnrecognizedPolicy = "approve"
	UnrecognizedReprompt UnrecognizedPolicy = "reprompt"
)

type ReviewAction string

const (
	ReviewApprove ReviewAction = "approve"
	ReviewReject  ReviewAction = "reject"
	ReviewEdit    ReviewAction = "edit"
	ReviewSkip    ReviewAction = "skip"
	ReviewQuit    ReviewAction = "quit"
)

const (
	editDone   = "END"
	editCancel = "CANCEL"
)

var reviewActions = map[string]ReviewAction{
	"a": ReviewApprove, "approve": ReviewApprove,
	"r": ReviewReject, "reject": ReviewReject,
	"e": ReviewEdit, "edit": ReviewEdit,
	"s": ReviewSkip, "skip": ReviewSkip,
	"q": ReviewQuit, "quit": ReviewQuit,
}

// ParseReviewAction maps a full action name or its first letter, in any
// case, to a ReviewAction.
func ParseReviewAction(input string) (ReviewAction, bool) {
	action, ok := reviewActions[strings.ToLower(strings.TrimSpace(input))]
	return action, ok
}

// ApprovalGate turns a draft into a Decision, either by asking a human or,
// in auto-approve mode, directly.
type ApprovalGate struct {
	prompter Prompter
	pending  PendingStore
	policy   UnrecognizedPolicy
	logger   *slog.Logger
	now      func() time.Time
}

func NewApprovalGate(prompter Prompter, pending PendingStore, logger *slog.Logger, policy UnrecognizedPolicy) *ApprovalGate {
	if policy == "" {
		policy = UnrecognizedApprove
	}
	return &ApprovalGate{
		prompter: prompter,
		pending:  pending,
		policy:   policy,
		logger:   logger.With("component", "approval"),
		now:      time.Now,
	}
}

func (a *ApprovalGate) Review(ctx context.Context, draft *domain.Draft, autoApprove bool) domain.Decision {
	if draft == nil {
		return domain.Fail("no draft to review")
	}

	if autoApprove {
		a.logger.Info("auto-approving draft", "day", draft.Day, "topic", draft.Topic)
		decision := a.approve(ctx, draft, draft.Content)
		decision.AutoApproved = decision.Kind == domain.DecisionApprove
		return decision
	}

	a.prompter.ShowDraft(draft)

	for {
		line, err := a.prompter.ReadLine(ctx, "Your choice: ")
		if err != nil {
			return a.inputError(draft, err)
		}

		action, ok := ParseReviewAction(line)
		if !ok {
			if a.policy == UnrecognizedReprompt {
				a.prompter.Notice(fmt.Sprintf("Unrecognized choice %q. Use approve, reject, edit, skip or quit.", strings.TrimSpace(line)))
				continue
			}
			a.logger.Warn("unrecognized choice, approving", "input", line)
			action = ReviewApprove
		}

		switch action {
		case ReviewApprove:
			return a.approve(ctx, draft, draft.Content)
		case ReviewReject:
			return a.reject(ctx, draft)
		case ReviewEdit:
			return a.edit(ctx, draft)
		case ReviewSkip:
			a.logger.Info("draft skipped", "day", draft.Day)
			return domain.Skip(draft)
		default:
			a.logger.Info("quit requested", "day", draft.Day)
			return domain.Quit(draft)
		}
	}
}

// approve persists the pending snapshot before returning, so an approved
// draft survives a crash before publish.
func (a *ApprovalGate) approve(ctx context.Context, draft *domain.Draft, content string) domain.Decision {
	snapshot := domain.PendingApproval{
		Content:    content,
		Day:        draft.Day,
		Topic:      draft.Topic,
		ApprovedAt: a.now(),
	}
	if err := a.pending.SetPendingApproval(ctx, snapshot); err != nil {
		a.logger.Error("failed to save pending approval", "day", draft.Day, "error", err)
		return domain.Fail(fmt.Sprintf("save pending approval: %v", err))
	}

	a.logger.Info("draft approved", "day", draft.Day, "char_count", draft.CharCount)
	return domain.Approve(draft, content)
}

func (a *ApprovalGate) reject(ctx context.Context, draft *domain.Draft) domain.Decision {
	feedback, err := a.prompter.ReadLine(ctx, "Feedback for regeneration (press Enter to skip): ")
	if err != nil && !errors.Is(err, io.EOF) {
		return domain.Fail(fmt.Sprintf("read feedback: %v", err))
	}

	feedback = strings.TrimSpace(feedback)
	a.logger.Info("draft rejected", "day", draft.Day, "feedback", feedback != "")
	return domain.Reject(draft, feedback)
}

func (a *ApprovalGate) edit(ctx context.Context, draft *domain.Draft) domain.Decision {
	a.prompter.Notice(fmt.Sprintf("Enter the new content. Finish with %s on its own line, or %s to keep the original.", editDone, editCancel))

	content, err := a.readEdit(ctx)
	if err != nil {
		return domain.Fail(fmt.Sprintf("read edit: %v", err))
	}
	if strings.TrimSpace(content) == "" {
		content = draft.Content
	}

	a.prompter.ShowEdited(content)

	post, err := a.confirm(ctx)
	if errors.Is(err, io.EOF) {
		return a.inputError(draft, err)
	}
	if err != nil {
		return domain.Fail(fmt.Sprintf("read confirmation: %v", err))
	}
	if !post {
		a.logger.Info("edited draft not confirmed", "day", draft.Day)
		return domain.Reject(draft, "")
	}

	decision := a.approve(ctx, draft, content)
	decision.Edited = decision.Kind == domain.DecisionApprove
	return decision
}

// confirm asks until the answer is yes, no or empty (yes).
func (a *ApprovalGate) confirm(ctx context.Context) (bool, error) {
	for {
		answer, err := a.prompter.ReadLine(ctx, "Post this version? [Y/n]: ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		a.prompter.Notice("Please answer y or n.")
	}
}

// readEdit returns "" when the edit is cancelled or input ends before the
// closing line, so the original content is kept.
func (a *ApprovalGate) readEdit(ctx context.Context) (string, error) {
	var lines []string
	for {
		line, err := a.prompter.ReadLine(ctx, "")
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		if err != nil {
			return "", err
		}

		switch strings.ToUpper(strings.TrimSpace(line)) {
		case editDone:
			return strings.Join(lines, "\n"), nil
		case editCancel:
			return "", nil
		}
		lines = append(lines, line)
	}
}

func (a *ApprovalGate) inputError(draft *domain.Draft, err error) domain.Decision {
	if errors.Is(err, io.EOF) {
		a.logger.Info("input closed, quitting", "day", draft.Day)
		return domain.Quit(draft)
	}
	return domain.Fail(fmt.Sprintf("read choice: %v", err))
}
