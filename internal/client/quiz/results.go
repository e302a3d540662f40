package quiz

import (
	"context"
	"errors"

	"github.com/mayurhapani/online-quiz-cli/internal/client/api"
	"github.com/mayurhapani/online-quiz-cli/internal/client/models"
)

// ErrMissingResultID means a result fetch was requested without an
// identifier.
var ErrMissingResultID = errors.New("missing result id")

// Results retrieves persisted grading results. It is independent of any
// Runner: a result can be viewed long after the attempt's in-memory
// state is gone. Fetch failures are terminal for the view; there is no
// retry.
type Results struct {
	client api.Client
}

func NewResults(client api.Client) *Results {
	return &Results{client: client}
}

// Fetch loads a result by id using the current session's credentials.
// Older backends omit the total; it is then derived from the
// per-question breakdown.
func (r *Results) Fetch(ctx context.Context, id string) (*models.Result, error) {
	if id == "" {
		return nil, ErrMissingResultID
	}

	result, err := r.client.Result(ctx, id)
	if err != nil {
		return nil, err
	}
	if result.Total == 0 {
		result.Total = len(result.PerQuestion)
	}
	return result, nil
}
