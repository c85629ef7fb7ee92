package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/plazasales/storefront/internal/platform/logging"
)

// Multi-step flows such as a job application run as
// Validate → Perform → Verify → Respond. Nothing is written upstream before
// Validate passes, and Respond only runs once the written state is verified.

// Step names one phase of an operation.
type Step string

const (
	StepValidate Step = "validate"
	StepPerform  Step = "perform"
	StepVerify   Step = "verify"
	StepRespond  Step = "respond"
)

const tracerName = "github.com/plazasales/storefront/internal/app"

// ExecutionError records the operation and step that failed. The cause keeps
// its domain type so transport adapters still map it.
type ExecutionError struct {
	Operation string
	Step      Step
	Cause     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Operation, e.Step, e.Cause)
}

// Unwrap returns the cause for errors.Is/As.
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// FailedStep returns the step an execution error occurred in.
func FailedStep(err error) (Step, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}

// Operation is a flow split into steps. Nil steps are skipped.
type Operation[I, O any] struct {
	Name     string
	Validate func(ctx context.Context, in I) error
	Perform  func(ctx context.Context, in I) (O, error)
	Verify   func(ctx context.Context, in I, out O) error
	Respond  func(ctx context.Context, in I, out O) error
}

// Executor runs operations with a span and step-level logging.
type Executor struct {
	logger *slog.Logger
	tracer trace.Tracer
}

// NewExecutor creates an executor; a nil logger uses slog.Default.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

// Execute runs op for in and returns Perform's result.
func Execute[I, O any](ctx context.Context, exec *Executor, op Operation[I, O], in I) (out O, err error) {
	ctx, span := exec.tracer.Start(ctx, op.Name)
	defer span.End()

	logger := logging.FromContextOr(ctx, exec.logger).With(slog.String("operation", op.Name))
	start := time.Now()

	fail := func(step Step, cause error) error {
		span.SetAttributes(attribute.String("operation.failed_step", string(step)))
		span.RecordError(cause)
		span.SetStatus(codes.Error, string(step)+" failed")

		level := slog.LevelError
		if step == StepValidate {
			level = slog.LevelWarn
		}

		logger.Log(ctx, level, "operation step failed",
			slog.String("step", string(step)),
			slog.Any("error", cause),
		)

		return &ExecutionError{Operation: op.Name, Step: step, Cause: cause}
	}

	if op.Validate != nil {
		if err := op.Validate(ctx, in); err != nil {
			return out, fail(StepValidate, err)
		}
	}

	if op.Perform != nil {
		if out, err = op.Perform(ctx, in); err != nil {
			var zero O
			return zero, fail(StepPerform, err)
		}
	}

	if op.Verify != nil {
		if err := op.Verify(ctx, in, out); err != nil {
			var zero O
			return zero, fail(StepVerify, err)
		}
	}

	if op.Respond != nil {
		if err := op.Respond(ctx, in, out); err != nil {
			var zero O
			return zero, fail(StepRespond, err)
		}
	}

	logger.InfoContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return out, nil
}
