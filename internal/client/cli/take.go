package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mayurhapani/online-quiz-cli/internal/client/models"
	"github.com/mayurhapani/online-quiz-cli/internal/client/quiz"
	"github.com/mayurhapani/online-quiz-cli/internal/logging"
)

// Take runs one quiz attempt end to end: load, traverse every question,
// then submit and land on the result view. Leaving the command before
// submission succeeds discards the attempt; a later 'take' starts fresh
// from question one.
func (a *App) Take(ctx context.Context, quizID string) error {
	if !a.guard(models.RoleStudent, models.RoleUser) {
		return nil
	}

	runner := quiz.NewRunner(a.client)
	log := a.log.With("quiz", quizID, "attempt", runner.AttemptID())

	if err := runner.Load(ctx, quizID); err != nil {
		a.handleErr(ctx, err)
		return err
	}

	q := runner.Quiz()
	total := len(q.Questions)
	printlnFn(fmt.Sprintf("%s: %s (%d questions)", q.Title, q.Description, total))
	log.Info(ctx, "attempt started", "questions", total)

	for runner.State() == quiz.StateInProgress {
		if err := a.askQuestion(runner, total); err != nil {
			return err
		}
	}

	printlnFn(fmt.Sprintf("All questions answered. Provisional score: %d / %d", runner.Score(), total))

	resultID, err := a.submitAttempt(ctx, runner, log)
	if err != nil {
		return err
	}

	log.Info(ctx, "attempt submitted", "result", resultID)
	return a.renderResult(ctx, resultID)
}

// askQuestion prompts for the current question until a valid selection
// is committed.
func (a *App) askQuestion(runner *quiz.Runner, total int) error {
	q := runner.Question()
	printlnFn(fmt.Sprintf("Question %d of %d: %s", runner.Index()+1, total, q.Text))
	for i, choice := range q.Choices {
		printlnFn(fmt.Sprintf("  %d) %s", i+1, choice))
	}

	for {
		input, err := getSimpleText(a.reader, "Your answer (number or text)", os.Stdout)
		if err != nil {
			return err
		}

		if err := runner.SelectAnswer(resolveChoice(q, input)); err != nil {
			printlnFn("Not one of the options, try again.")
			continue
		}
		if err := runner.Advance(); err != nil {
			if errors.Is(err, quiz.ErrNoSelection) {
				printlnFn("Pick an answer before moving on.")
				continue
			}
			return err
		}
		return nil
	}
}

// resolveChoice accepts either the 1-based option number or the exact
// option text.
func resolveChoice(q *models.Question, input string) string {
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(q.Choices) {
		return q.Choices[n-1]
	}
	return input
}

// submitAttempt drives the grading phase. A failed submission keeps the
// attempt in grading and offers one explicit retry per failure; it never
// retries on its own.
func (a *App) submitAttempt(ctx context.Context, runner *quiz.Runner, log logging.Logger) (string, error) {
	for {
		resultID, err := runner.Submit(ctx)
		if err == nil {
			return resultID, nil
		}

		log.Warn(ctx, "submission failed", "error", err)
		a.handleErr(ctx, err)
		if !a.isLoggedIn() {
			return "", err
		}

		answer, inputErr := getSimpleText(a.reader, "Submission failed. Type 'retry' to try again, anything else to abandon", os.Stdout)
		if inputErr != nil || answer != "retry" {
			printlnFn("Attempt abandoned.")
			return "", err
		}
	}
}
