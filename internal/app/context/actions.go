package context

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/plazasales/storefront/internal/platform/logging"
)

// ErrAlreadyCommitted is returned when staging or committing twice.
var ErrAlreadyCommitted = errors.New("request context already committed")

// Action is a staged write.
type Action interface {
	Name() string
	Do(ctx context.Context) error

	// Undo reverts a successful Do.
	Undo(ctx context.Context) error
}

// Func adapts functions into an Action. A nil UndoFn makes Undo a no-op.
type Func struct {
	Label  string
	DoFn   func(ctx context.Context) error
	UndoFn func(ctx context.Context) error
}

func (f Func) Name() string                   { return f.Label }
func (f Func) Do(ctx context.Context) error   { return f.DoFn(ctx) }
func (f Func) Undo(ctx context.Context) error {
	if f.UndoFn == nil {
		return nil
	}

	return f.UndoFn(ctx)
}

// CommitError reports the action that failed and any undo failures.
type CommitError struct {
	Action   string
	Err      error
	UndoErrs error
}

func (e *CommitError) Error() string {
	if e.UndoErrs != nil {
		return fmt.Sprintf("%s: %v (undo: %v)", e.Action, e.Err, e.UndoErrs)
	}

	return fmt.Sprintf("%s: %v", e.Action, e.Err)
}

// Unwrap returns the action's error so domain errors stay visible.
func (e *CommitError) Unwrap() error {
	return e.Err
}

// Stage appends an action to run on Commit.
func (rc *RequestContext) Stage(action Action) error {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}

	rc.actions = append(rc.actions, action)

	return nil
}

// Staged returns the names of the staged actions.
func (rc *RequestContext) Staged() []string {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	names := make([]string, len(rc.actions))
	for i, a := range rc.actions {
		names[i] = a.Name()
	}

	return names
}

// Commit runs the staged actions in order. If one fails, the completed
// ones are undone newest first and a *CommitError is returned. Undo runs
// even when ctx is already canceled.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}

	rc.committed = true

	for i, action := range rc.actions {
		if err := action.Do(ctx); err != nil {
			return &CommitError{
				Action:   action.Name(),
				Err:      err,
				UndoErrs: undo(context.WithoutCancel(ctx), rc.actions[:i]),
			}
		}
	}

	return nil
}

func undo(ctx context.Context, done []Action) error {
	var errs []error

	for i := len(done) - 1; i >= 0; i-- {
		if err := done[i].Undo(ctx); err != nil {
			logging.FromContext(ctx).WarnContext(ctx, "undo failed",
				slog.String("action", done[i].Name()),
				slog.Any("error", err),
			)

			errs = append(errs, fmt.Errorf("%s: %w", done[i].Name(), err))
		}
	}

	return errors.Join(errs...)
}
