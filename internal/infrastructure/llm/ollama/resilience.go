package ollama

import (
	"context"
	"errors"

	"github.com/filewise-ai/filewise/internal/core/domain"
	"github.com/filewise-ai/filewise/internal/infrastructure/resilience"
)

var errNoEndpoint = errors.New("no completion endpoint configured")

func errMissingField(field string) error {
	return errors.New("missing required field " + field)
}

// classifyCompletionError decides which failures count against the circuit
// breaker. Caller cancellations do not; the upstream was never at fault.
func classifyCompletionError(err error) resilience.ErrorClassification {
	if err == nil {
		return resilience.ErrorClassification{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.ErrorClassification{RecordFailure: false}
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return resilience.ErrorClassification{RecordFailure: statusErr.StatusCode >= 500}
	}

	return resilience.ErrorClassification{RecordFailure: true}
}

// wrapTransportError maps any transport-level failure, including an open
// circuit, onto the unavailable kind the core routes on. Schema violations
// are classified separately at the parse site.
func wrapTransportError(operation string, err error) error {
	if err == nil {
		return nil
	}
	if domain.IsCompletionFailure(err) {
		return err
	}
	return domain.WrapError(domain.ErrCompletionUnavailable, operation, err)
}
