// Package api implements the client side of the quiz platform's REST
// interface. All responses share a {success, message, data} envelope;
// authenticated calls carry the session token as a bearer token.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mayurhapani/online-quiz-cli/internal/client/models"
)

// AuthHeaderName is the header carrying the session token.
const AuthHeaderName = "Authorization"

// requestIDHeaderName correlates client requests in backend logs.
const requestIDHeaderName = "X-Request-Id"

// envelope is the response wrapper used by every backend endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// HTTPClient is the concrete Client talking JSON over HTTP.
// The attached token is guarded because the session manager may swap it
// while a background watcher is issuing requests.
type HTTPClient struct {
	baseURL string
	hc      *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient creates a client for the backend at baseURL, e.g.
// "http://localhost:8080/api/v1". A zero timeout disables the client-side
// deadline; per-call deadlines still apply through the context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do issues one request and decodes the envelope's data into out (if non
// nil). Transport failures map to ErrUnavailable; HTTP statuses map to
// the sentinel taxonomy.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeaderName, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set(AuthHeaderName, "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading %s %s response: %v", ErrUnavailable, method, path, err)
	}

	var env envelope
	if len(raw) > 0 {
		// The envelope may be absent on some error responses; status
		// mapping below still applies in that case.
		_ = json.Unmarshal(raw, &env)
	}

	if err := mapStatus(resp.StatusCode, env.Message); err != nil {
		return err
	}
	if !env.Success {
		return fmt.Errorf("%w: %s", ErrServer, nonEmpty(env.Message, "request rejected"))
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
	}
	return nil
}

func mapStatus(code int, message string) error {
	switch {
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, nonEmpty(message, "authentication required"))
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, nonEmpty(message, "resource missing"))
	case code >= 400:
		return fmt.Errorf("%w: status %d: %s", ErrServer, code, nonEmpty(message, "request failed"))
	}
	return nil
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// loginData is the payload of a successful login.
type loginData struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, models.User, error) {
	body := map[string]string{"email": email, "password": password}

	var data loginData
	if err := c.do(ctx, http.MethodPost, "/users/login", body, &data); err != nil {
		return "", models.User{}, err
	}
	if data.Token == "" {
		return "", models.User{}, fmt.Errorf("%w: login response carried no token", ErrServer)
	}
	return data.Token, data.User, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/getUser", nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/users/logout", nil, nil)
}

func (c *HTTPClient) Quizzes(ctx context.Context) ([]models.QuizSummary, error) {
	var quizzes []models.QuizSummary
	if err := c.do(ctx, http.MethodGet, "/quizzes", nil, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (c *HTTPClient) Quiz(ctx context.Context, id string) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := c.do(ctx, http.MethodGet, "/quizzes/"+id, nil, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// submitData is the reference returned for a persisted attempt. Older
// backends return no body at all and results are addressed by quiz id.
type submitData struct {
	ID string `json:"_id"`
}

func (c *HTTPClient) SubmitQuiz(ctx context.Context, quizID string, answers []models.Answer) (string, error) {
	body := struct {
		QuizID  string          `json:"quizId"`
		Answers []models.Answer `json:"answers"`
	}{QuizID: quizID, Answers: answers}

	var data submitData
	if err := c.do(ctx, http.MethodPost, "/quizzes/submit", body, &data); err != nil {
		return "", err
	}
	if data.ID == "" {
		return quizID, nil
	}
	return data.ID, nil
}

func (c *HTTPClient) Result(ctx context.Context, id string) (*models.Result, error) {
	var result models.Result
	if err := c.do(ctx, http.MethodGet, "/responses/"+id, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Close is part of the Client contract; the HTTP transport keeps no
// resources beyond pooled connections.
func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}
