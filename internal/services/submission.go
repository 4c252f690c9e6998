package services

import (
	"context"
	"time"

	"aistudio-backend/internal/database"
	"aistudio-backend/internal/models"

	"go.uber.org/zap"
)

// Outcome is what a successful submission renders.
type Outcome struct {
	Result string
	// Message overrides the form's default success notice when set.
	Message string
}

// SubmitFunc performs the upstream call of one submission.
type SubmitFunc func(ctx context.Context) (Outcome, error)

type formNotices struct {
	successTitle, successMessage string
	failureTitle, failureMessage string
}

var notices = map[models.FormKind]formNotices{
	models.FormText: {
		successTitle:   "Success",
		successMessage: "Text generated successfully!",
		failureTitle:   "Error",
		failureMessage: "Failed to generate text. Please check your API key and try again.",
	},
	models.FormImage: {
		successTitle:   "Success",
		successMessage: "Image generated successfully!",
		failureTitle:   "Error",
		failureMessage: "Failed to generate image. Please check your API key and try again.",
	},
	models.FormPayment: {
		successTitle:   "Payment Successful!",
		successMessage: "Your purchase is complete.",
		failureTitle:   "Payment Failed",
		failureMessage: "Please check your Stripe configuration and try again.",
	},
}

// FailureMessage is the generic notice shown when kind's submission fails.
func FailureMessage(kind models.FormKind) string {
	return notices[kind].failureMessage
}

// FormKey identifies one form instance: a browser session plus the form kind.
func FormKey(sessionID string, kind models.FormKind) string {
	return sessionID + ":" + string(kind)
}

// SubmissionTracker runs the per-form state machine
// idle -> submitting -> success|failed -> submitting ...
// and allows at most one outstanding call per form instance.
type SubmissionTracker struct {
	store database.FormStore
	log   *zap.Logger
	now   func() time.Time
}

func NewSubmissionTracker(store database.FormStore, log *zap.Logger) *SubmissionTracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &SubmissionTracker{store: store, log: log, now: time.Now}
}

// State returns the current view state of the form without side effects.
func (t *SubmissionTracker) State(ctx context.Context, sessionID string, kind models.FormKind) (*models.FormState, error) {
	state, err := t.store.Load(ctx, FormKey(sessionID, kind))
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = models.NewFormState(kind)
	}
	return state, nil
}

// Consume returns the view state and clears its notice, so each notice is
// rendered once.
func (t *SubmissionTracker) Consume(ctx context.Context, sessionID string, kind models.FormKind) (*models.FormState, error) {
	var shown *models.FormState
	_, err := t.store.Update(ctx, FormKey(sessionID, kind), func(current *models.FormState) (*models.FormState, error) {
		if current == nil {
			shown = models.NewFormState(kind)
			return nil, nil
		}
		shown = copyState(current)
		if current.Notice == nil {
			return nil, nil
		}
		current.Notice = nil
		return current, nil
	})
	if err != nil {
		return nil, err
	}
	return shown, nil
}

// Reject records a validation notice without touching status or result. It
// is used when input fails local checks and no call is made.
func (t *SubmissionTracker) Reject(ctx context.Context, sessionID string, kind models.FormKind, message string) error {
	_, err := t.store.Update(ctx, FormKey(sessionID, kind), func(current *models.FormState) (*models.FormState, error) {
		if current == nil {
			current = models.NewFormState(kind)
		}
		current.Notice = &models.Notice{Level: models.NoticeError, Title: "Error", Message: message}
		current.UpdatedAt = t.now()
		return current, nil
	})
	return err
}

// Submit runs call for the form unless one is already outstanding, in which
// case it returns ErrSubmissionInFlight without calling. On success the
// result replaces the previous one; on failure the previous result is kept
// and a generic notice is recorded. The error of call is returned as is.
func (t *SubmissionTracker) Submit(ctx context.Context, sessionID string, kind models.FormKind, call SubmitFunc) (*models.FormState, error) {
	key := FormKey(sessionID, kind)

	acquired, err := t.store.Acquire(ctx, key)
	if err != nil {
		return nil, err
	}
	if !acquired {
		t.log.Warn("Submission rejected, call in flight", zap.String("form", key))
		return nil, ErrSubmissionInFlight
	}
	// The outcome is recorded even when the request context is gone.
	persistCtx := context.WithoutCancel(ctx)
	defer func() {
		if err := t.store.Release(persistCtx, key); err != nil {
			t.log.Error("Failed to release form guard", zap.String("form", key), zap.Error(err))
		}
	}()

	if _, err := t.store.Update(ctx, key, func(current *models.FormState) (*models.FormState, error) {
		if current == nil {
			current = models.NewFormState(kind)
		}
		current.Status = models.SubmissionSubmitting
		current.Notice = nil
		current.UpdatedAt = t.now()
		return current, nil
	}); err != nil {
		return nil, err
	}

	outcome, callErr := call(ctx)

	n := notices[kind]
	final, err := t.store.Update(persistCtx, key, func(current *models.FormState) (*models.FormState, error) {
		if current == nil {
			current = models.NewFormState(kind)
		}
		current.UpdatedAt = t.now()
		if callErr != nil {
			current.Status = models.SubmissionFailed
			current.Notice = &models.Notice{Level: models.NoticeError, Title: n.failureTitle, Message: n.failureMessage}
			return current, nil
		}
		message := outcome.Message
		if message == "" {
			message = n.successMessage
		}
		current.Status = models.SubmissionSuccess
		current.Result = outcome.Result
		current.Notice = &models.Notice{Level: models.NoticeSuccess, Title: n.successTitle, Message: message}
		return current, nil
	})
	if callErr != nil {
		t.log.Error("Submission failed", zap.String("form", key), zap.Error(callErr))
		if err != nil {
			t.log.Error("Failed to record submission failure", zap.String("form", key), zap.Error(err))
		}
		return final, callErr
	}
	if err != nil {
		return nil, err
	}
	return final, nil
}

func copyState(s *models.FormState) *models.FormState {
	out := *s
	if s.Notice != nil {
		notice := *s.Notice
		out.Notice = &notice
	}
	return &out
}
