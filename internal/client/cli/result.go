package cli

import (
	"context"
	"fmt"
)

// Result renders a persisted grading result by id.
func (a *App) Result(ctx context.Context, resultID string) error {
	if !a.guard() {
		return nil
	}
	return a.renderResult(ctx, resultID)
}

// renderResult is the read-only result view. Any fetch failure is
// terminal for the view; there is no retry.
func (a *App) renderResult(ctx context.Context, resultID string) error {
	result, err := a.results.Fetch(ctx, resultID)
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}

	printlnFn(fmt.Sprintf("Result %s: score %d / %d", result.ID, result.Score, result.Total))
	for i, g := range result.PerQuestion {
		verdict := "wrong"
		if g.Correct() {
			verdict = "correct"
		}
		printlnFn(fmt.Sprintf("  %d. %s", i+1, g.Question))
		printlnFn(fmt.Sprintf("     your answer: %s (%s, correct answer: %s)", g.UserAnswer, verdict, g.CorrectAnswer))
	}
	return nil
}
