package service

import (
	"context"
	"strings"
	"time"

	"github.com/jaekwang-park/userpool-auth/internal/autherr"
	"github.com/jaekwang-park/userpool-auth/internal/cognito"
)

// Outcomes reported to the Observer.
const (
	OutcomeSuccess    = "success"
	OutcomeValidation = "validation_error"
	OutcomeService    = "service_error"
	OutcomeUnknown    = "unknown_error"
)

// Observer receives the outcome of every facade call.
type Observer interface {
	ObserveOperation(operation, outcome string, duration time.Duration)
}

// operation describes one facade: how to validate its input, how to build the
// provider request, which exceptions the provider documents for it, and how to
// turn the provider response into the facade result.
type operation[In, Req, Resp, Out any] struct {
	name       cognito.Operation
	exceptions autherr.ExceptionSet
	validate   func(In) error
	request    func(s *AuthService, in In) *Req
	result     func(in In, resp *Resp) (Out, error)
}

// run validates, dispatches exactly one request and classifies any failure.
// Every error it returns is an *autherr.AuthError.
func (op operation[In, Req, Resp, Out]) run(ctx context.Context, s *AuthService, in In) (out Out, err error) {
	start := time.Now()
	defer func() {
		s.observe(op.name, err, time.Since(start))
	}()

	if op.validate != nil {
		if verr := op.validate(in); verr != nil {
			return out, verr
		}
	}

	var resp Resp
	if sendErr := s.dispatcher.Send(ctx, op.name, op.request(s, in), &resp); sendErr != nil {
		return out, autherr.Classify(sendErr, op.exceptions)
	}

	if op.result == nil {
		return out, nil
	}
	out, rerr := op.result(in, &resp)
	if rerr != nil {
		if authErr, ok := autherr.As(rerr); ok {
			return out, authErr
		}
		return out, autherr.NewUnknown(rerr)
	}
	return out, nil
}

func (s *AuthService) observe(op cognito.Operation, err error, d time.Duration) {
	if s.observer == nil {
		return
	}
	s.observer.ObserveOperation(string(op), outcomeOf(err), d)
}

func outcomeOf(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	authErr, ok := autherr.As(err)
	if !ok {
		return OutcomeUnknown
	}
	switch authErr.Kind {
	case autherr.KindValidation:
		return OutcomeValidation
	case autherr.KindService:
		return OutcomeService
	default:
		return OutcomeUnknown
	}
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}
