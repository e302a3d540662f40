package api

import (
	"context"

	"github.com/mayurhapani/online-quiz-cli/internal/client/models"
)

// Client is the backend surface consumed by the session manager, the
// quiz runner and the result viewer. Implementations attach the current
// session token to every authenticated call.
type Client interface {
	// SetToken attaches (or, with an empty string, detaches) the session
	// token used for authenticated calls.
	SetToken(token string)

	// Login exchanges credentials for a token and the user it belongs to.
	Login(ctx context.Context, email, password string) (string, models.User, error)

	// CurrentUser resolves the identity behind the attached token.
	CurrentUser(ctx context.Context) (models.User, error)

	// Logout asks the server to invalidate the attached token. Best
	// effort: the caller clears local state regardless of the outcome.
	Logout(ctx context.Context) error

	// Quizzes lists the available quizzes.
	Quizzes(ctx context.Context) ([]models.QuizSummary, error)

	// Quiz fetches a full quiz definition by id.
	Quiz(ctx context.Context, id string) (*models.Quiz, error)

	// SubmitQuiz posts a completed answer sequence and returns the
	// identifier of the persisted result.
	SubmitQuiz(ctx context.Context, quizID string, answers []models.Answer) (string, error)

	// Result fetches a persisted grading result by id.
	Result(ctx context.Context, id string) (*models.Result, error)

	// Close releases transport resources.
	Close() error
}
