package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayurhapani/online-quiz-cli/internal/client/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second)
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, success bool, message string, data any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
		"success": success,
		"message": message,
		"data":    data,
	}))
}

func TestLogin_DecodesTokenAndUser(t *testing.T) {
	var gotBody map[string]string
	var gotRequestID string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotRequestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		writeEnvelope(t, w, http.StatusOK, true, "", map[string]any{
			"token": "t1",
			"user":  map[string]string{"_id": "1", "name": "Ann", "role": "teacher"},
		})
	})

	token, user, err := c.Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, "t1", token)
	assert.Equal(t, models.User{ID: "1", Name: "Ann", Role: models.RoleTeacher}, user)
	assert.Equal(t, map[string]string{"email": "a@x.com", "password": "pw"}, gotBody)
	assert.NotEmpty(t, gotRequestID)
}

func TestLogin_MissingTokenIsServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, true, "", map[string]any{
			"user": map[string]string{"_id": "1", "name": "Ann", "role": "teacher"},
		})
	})

	_, _, err := c.Login(context.Background(), "a@x.com", "pw")
	require.ErrorIs(t, err, ErrServer)
}

func TestCurrentUser_SendsBearerToken(t *testing.T) {
	var gotAuth string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/getUser", r.URL.Path)
		gotAuth = r.Header.Get(AuthHeaderName)
		writeEnvelope(t, w, http.StatusOK, true, "", map[string]string{
			"_id": "1", "name": "Ann", "role": "teacher",
		})
	})
	c.SetToken("t1")

	user, err := c.CurrentUser(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer t1", gotAuth)
	assert.Equal(t, models.RoleTeacher, user.Role)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"401 maps to unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"404 maps to not found", http.StatusNotFound, ErrNotFound},
		{"500 maps to server error", http.StatusInternalServerError, ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(t, w, tt.status, false, "nope", nil)
			})

			_, err := c.CurrentUser(context.Background())
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRejectedEnvelope_IsServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, false, "quiz closed", nil)
	})

	_, err := c.Quizzes(context.Background())
	require.ErrorIs(t, err, ErrServer)
	assert.Contains(t, err.Error(), "quiz closed")
}

func TestTransportFailure_IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, time.Second)

	_, err := c.Quizzes(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestQuiz_FetchesDefinition(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/quizzes/quiz-1", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, true, "", map[string]any{
			"_id":   "quiz-1",
			"title": "Basics",
			"questions": []map[string]any{
				{"_id": "q1", "text": "First?", "choices": []string{"A", "B"}, "correctAnswer": "A"},
			},
		})
	})

	quiz, err := c.Quiz(context.Background(), "quiz-1")
	require.NoError(t, err)

	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, "A", quiz.Questions[0].CorrectAnswer)
}

func TestQuiz_ToleratesOmittedCorrectAnswer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, true, "", map[string]any{
			"_id":   "quiz-1",
			"title": "Basics",
			"questions": []map[string]any{
				{"_id": "q1", "text": "First?", "choices": []string{"A", "B"}},
			},
		})
	})

	quiz, err := c.Quiz(context.Background(), "quiz-1")
	require.NoError(t, err)
	assert.Empty(t, quiz.Questions[0].CorrectAnswer)
}

func TestSubmitQuiz_PostsAnswersAndReturnsReference(t *testing.T) {
	var gotBody struct {
		QuizID  string          `json:"quizId"`
		Answers []models.Answer `json:"answers"`
	}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/quizzes/submit", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeEnvelope(t, w, http.StatusOK, true, "", map[string]string{"_id": "res-9"})
	})

	answers := []models.Answer{{QuestionID: "q1", UserAnswer: "A"}}
	ref, err := c.SubmitQuiz(context.Background(), "quiz-1", answers)
	require.NoError(t, err)

	assert.Equal(t, "res-9", ref)
	assert.Equal(t, "quiz-1", gotBody.QuizID)
	assert.Equal(t, answers, gotBody.Answers)
}

func TestSubmitQuiz_FallsBackToQuizID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, true, "", map[string]string{})
	})

	ref, err := c.SubmitQuiz(context.Background(), "quiz-1", nil)
	require.NoError(t, err)
	assert.Equal(t, "quiz-1", ref)
}

func TestResult_FetchesBreakdown(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/responses/res-9", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, true, "", map[string]any{
			"_id":   "res-9",
			"score": 1,
			"answers": []map[string]string{
				{"question": "First?", "userAnswer": "A", "correctAnswer": "A"},
				{"question": "Second?", "userAnswer": "C", "correctAnswer": "B"},
			},
		})
	})

	result, err := c.Result(context.Background(), "res-9")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Score)
	require.Len(t, result.PerQuestion, 2)
	assert.False(t, result.PerQuestion[1].Correct())
}
