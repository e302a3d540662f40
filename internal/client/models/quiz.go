// Package models defines the domain types exchanged with the quiz
// platform backend. The wire format follows the backend's JSON shapes;
// identifiers use the backend's "_id" keys.
package models

// QuizSummary is a catalogue entry from the quiz listing endpoint. It
// deliberately omits questions; a quiz definition is fetched separately
// when an attempt starts.
type QuizSummary struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Quiz is a full quiz definition. It is immutable once fetched for an
// attempt: the runner never mutates it.
type Quiz struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// Question is one multiple-choice question. CorrectAnswer, when present,
// equals exactly one element of Choices. Newer backends omit it for an
// ungraded quiz; the client must tolerate its absence and defer scoring
// to the server-persisted result.
type Question struct {
	ID            string   `json:"_id"`
	Text          string   `json:"text"`
	Choices       []string `json:"choices"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
}

// Answer records the user's selection for one question. Exactly one is
// produced per question per attempt, in question order.
type Answer struct {
	QuestionID string `json:"questionId"`
	UserAnswer string `json:"userAnswer"`
}

// Result is the server-persisted, graded outcome of a submitted attempt.
// It is read-only on the client.
type Result struct {
	ID          string         `json:"_id"`
	Score       int            `json:"score"`
	Total       int            `json:"total"`
	PerQuestion []GradedAnswer `json:"answers"`
}

// GradedAnswer is one line of a result's per-question breakdown.
type GradedAnswer struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
}

// Correct reports whether the user's answer matched.
func (g GradedAnswer) Correct() bool {
	return g.UserAnswer == g.CorrectAnswer
}
