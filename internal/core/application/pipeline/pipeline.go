// Package pipeline composes the stages every use case request passes
// through: structural validation, handler execution, and translation of
// escaped errors into safe, uniform failure responses.
//
// Stages are chained explicitly by Execute rather than discovered at
// runtime, so the translation stage never needs to know the payload type.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ordering/internal/pkg/errs"
)

// Messages returned in place of internal error details. Raw domain and
// infrastructure errors are logged, never sent to the caller.
const (
	MsgValidationFailed = "Validation failed"
	MsgInvalidData      = "Invalid data provided. Please check your input and try again."
	MsgPersistence      = "Unable to save changes. Please try again later."
	MsgCancelled        = "The request was cancelled or timed out. Please try again."
	MsgUnexpected       = "An unexpected error occurred. Please try again later."
	MsgNotFound         = "Resource not found."
)

// Validator checks a request before the handler runs and returns the
// aggregated list of human-readable problems, or nil when the request
// is acceptable.
type Validator[Req any] interface {
	Validate(req Req) []string
}

// Handler executes the business operation for a validated request.
// Expected failures such as NotFound are returned as failure responses;
// returned errors are translated by the pipeline.
type Handler[Req any, T any] interface {
	Handle(ctx context.Context, req Req) (Response[T], error)
}

// Pipeline wraps a handler with validation and error translation.
// A nil validator skips the validation stage.
type Pipeline[Req any, T any] struct {
	name      string
	validator Validator[Req]
	handler   Handler[Req, T]
	logger    *slog.Logger
}

// New assembles a pipeline around a handler. The name identifies the
// request type in log records.
func New[Req any, T any](
	name string,
	validator Validator[Req],
	handler Handler[Req, T],
	logger *slog.Logger,
) Pipeline[Req, T] {
	return Pipeline[Req, T]{
		name:      name,
		validator: validator,
		handler:   handler,
		logger:    logger,
	}
}

// Execute runs the request through all stages and always returns a
// complete response envelope. Internal error types never escape.
func (p Pipeline[Req, T]) Execute(ctx context.Context, req Req) Response[T] {
	if p.validator != nil {
		if problems := p.validator.Validate(req); len(problems) > 0 {
			p.logger.Warn("request rejected by validation",
				slog.String("request", p.name),
				slog.Any("problems", problems),
			)
			return Failure[T](CodeValidationFailed, MsgValidationFailed, problems...)
		}
	}

	resp, err := p.handler.Handle(ctx, req)
	if err != nil {
		return p.translate(err)
	}

	return resp
}

func (p Pipeline[Req, T]) translate(err error) Response[T] {
	var transitionErr *errs.InvalidTransitionError

	switch {
	case errors.As(err, &transitionErr):
		p.logger.Warn("request rejected by domain",
			slog.String("request", p.name),
			slog.String("error", err.Error()),
		)
		return Failure[T](CodeBadRequest, fmt.Sprintf(
			"Cannot change order status from %s to %s.",
			transitionErr.From, transitionErr.To,
		))

	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		p.logger.Warn("request rejected by domain",
			slog.String("request", p.name),
			slog.String("error", err.Error()),
		)
		return Failure[T](CodeBadRequest, MsgInvalidData)

	case errors.Is(err, errs.ErrObjectNotFound):
		p.logger.Warn("requested object not found",
			slog.String("request", p.name),
			slog.String("error", err.Error()),
		)
		return Failure[T](CodeNotFound, MsgNotFound)

	case errors.Is(err, errs.ErrPersistenceFailed):
		p.logger.Error("persistence failure",
			slog.String("request", p.name),
			slog.String("error", err.Error()),
		)
		return Failure[T](CodeInternal, MsgPersistence)

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		p.logger.Warn("request cancelled",
			slog.String("request", p.name),
			slog.String("error", err.Error()),
		)
		return Failure[T](CodeUnavailable, MsgCancelled)

	default:
		p.logger.Error("unexpected failure",
			slog.String("request", p.name),
			slog.String("error", err.Error()),
		)
		return Failure[T](CodeInternal, MsgUnexpected)
	}
}
