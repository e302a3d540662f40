package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mayurhapani/online-quiz-cli/internal/client/api"
)

// Quizzes lists the available quizzes. A network failure on this
// non-critical read degrades to an empty listing rather than failing the
// command.
func (a *App) Quizzes(ctx context.Context) error {
	if !a.guard() {
		return nil
	}

	quizzes, err := a.client.Quizzes(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			a.log.Warn(ctx, "quiz listing unavailable", "error", err)
			printlnFn("No quizzes available right now.")
			return nil
		}
		a.handleErr(ctx, err)
		return err
	}

	if len(quizzes) == 0 {
		printlnFn("No quizzes available right now.")
		return nil
	}
	printlnFn("Available quizzes:")
	for _, q := range quizzes {
		printlnFn(fmt.Sprintf("  %s  %s: %s", q.ID, q.Title, q.Description))
	}
	return nil
}
