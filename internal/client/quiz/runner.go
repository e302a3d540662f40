// Package quiz implements the per-attempt quiz state machine: sequential
// question traversal, answer capture, a provisional running score, and
// submission. A Runner is owned by exactly one caller and is discarded
// when the attempt is abandoned or completed; there is no resume.
package quiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mayurhapani/online-quiz-cli/internal/client/api"
	"github.com/mayurhapani/online-quiz-cli/internal/client/models"
)

// State is the lifecycle phase of an attempt.
type State int

const (
	// StateLoading: the quiz definition is not loaded yet (or loading
	// failed; see Err).
	StateLoading State = iota
	// StateInProgress: questions are being traversed.
	StateInProgress
	// StateGrading: every question is answered; the attempt awaits a
	// successful submission.
	StateGrading
	// StateCompleted: the submission was accepted. Terminal.
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateInProgress:
		return "in-progress"
	case StateGrading:
		return "grading"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

var (
	// ErrNoSelection means Advance was called before any choice was
	// selected for the current question. Caught client-side; no network
	// call is issued.
	ErrNoSelection = errors.New("no answer selected")

	// ErrUnknownChoice means the selected answer is not among the
	// current question's choices.
	ErrUnknownChoice = errors.New("choice not among question options")

	// ErrInvalidState means the operation is not defined for the
	// attempt's current state.
	ErrInvalidState = errors.New("operation not valid in current state")
)

// Runner drives one quiz attempt. Not safe for concurrent use; the
// attempt assumes a single active caller.
type Runner struct {
	client api.Client

	attemptID string
	quiz      *models.Quiz
	state     State
	index     int
	pending   string
	answers   []models.Answer
	score     int
	submitted bool
	resultID  string
	lastErr   error
}

// NewRunner creates an attempt in StateLoading. The attempt id is local
// only, used for log correlation; the persisted result gets its own
// identifier from the server.
func NewRunner(client api.Client) *Runner {
	return &Runner{client: client, attemptID: uuid.NewString(), state: StateLoading}
}

// Load fetches the quiz definition. On failure the runner stays in
// StateLoading with the error recorded; there is no automatic retry.
func (r *Runner) Load(ctx context.Context, quizID string) error {
	if r.state != StateLoading {
		return fmt.Errorf("%w: load in %s", ErrInvalidState, r.state)
	}

	quiz, err := r.client.Quiz(ctx, quizID)
	if err != nil {
		r.lastErr = err
		return err
	}
	if len(quiz.Questions) == 0 {
		r.lastErr = fmt.Errorf("quiz %s has no questions", quizID)
		return r.lastErr
	}

	r.quiz = quiz
	r.answers = make([]models.Answer, 0, len(quiz.Questions))
	r.state = StateInProgress
	r.lastErr = nil
	return nil
}

// Question returns the question at the current traversal position, or
// nil when the attempt is not in progress.
func (r *Runner) Question() *models.Question {
	if r.state != StateInProgress {
		return nil
	}
	return &r.quiz.Questions[r.index]
}

// SelectAnswer records a pending selection for the current question. It
// does not advance the attempt; selecting again overwrites the previous
// pending choice.
func (r *Runner) SelectAnswer(choice string) error {
	q := r.Question()
	if q == nil {
		return fmt.Errorf("%w: select in %s", ErrInvalidState, r.state)
	}
	for _, c := range q.Choices {
		if c == choice {
			r.pending = choice
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownChoice, choice)
}

// Advance commits the pending selection: it appends the answer, bumps
// the provisional score on an exact match, clears the selection, and
// either moves to the next question or, after the last one, transitions
// to StateGrading. It refuses an empty selection.
func (r *Runner) Advance() error {
	q := r.Question()
	if q == nil {
		return fmt.Errorf("%w: advance in %s", ErrInvalidState, r.state)
	}
	if r.pending == "" {
		return ErrNoSelection
	}

	r.answers = append(r.answers, models.Answer{QuestionID: q.ID, UserAnswer: r.pending})
	// Provisional only: when the backend omits correctAnswer for an
	// ungraded quiz, the running score stays at zero and the
	// server-graded result is the authority.
	if q.CorrectAnswer != "" && r.pending == q.CorrectAnswer {
		r.score++
	}
	r.pending = ""

	if r.index < len(r.quiz.Questions)-1 {
		r.index++
		return nil
	}
	r.state = StateGrading
	return nil
}

// Submit finalizes the attempt and posts the full answer sequence. On
// success the runner completes and returns the persisted result
// identifier. On failure the attempt remains in StateGrading with the
// error recorded; the caller may retry explicitly, never automatically.
func (r *Runner) Submit(ctx context.Context) (string, error) {
	if r.state != StateGrading {
		return "", fmt.Errorf("%w: submit in %s", ErrInvalidState, r.state)
	}

	r.submitted = true
	resultID, err := r.client.SubmitQuiz(ctx, r.quiz.ID, r.Answers())
	if err != nil {
		r.lastErr = err
		return "", err
	}

	r.resultID = resultID
	r.state = StateCompleted
	r.lastErr = nil
	return resultID, nil
}

// State returns the current lifecycle phase.
func (r *Runner) State() State { return r.state }

// Err returns the last load or submission error, if any.
func (r *Runner) Err() error { return r.lastErr }

// AttemptID returns the local attempt identifier.
func (r *Runner) AttemptID() string { return r.attemptID }

// Quiz returns the loaded definition, nil before a successful Load.
func (r *Runner) Quiz() *models.Quiz { return r.quiz }

// Index returns the 0-based position of the current question.
func (r *Runner) Index() int { return r.index }

// Score returns the provisional running score, always within
// [0, answered questions].
func (r *Runner) Score() int { return r.score }

// Submitted reports whether a submission has been issued.
func (r *Runner) Submitted() bool { return r.submitted }

// ResultID returns the persisted result identifier once completed.
func (r *Runner) ResultID() string { return r.resultID }

// Answers returns a copy of the answers committed so far, in question
// order.
func (r *Runner) Answers() []models.Answer {
	out := make([]models.Answer, len(r.answers))
	copy(out, r.answers)
	return out
}
