package engine

import (
	"context"
	"time"

	"github.com/ananya/practiq/internal/curriculum"
)

// SessionRecord is the storage-boundary shape of a practice session. The
// storage collaborator owns the durable row; this is its typed projection.
type SessionRecord struct {
	ID             string
	StudentID      string
	SubTopicID     string
	Hierarchy      curriculum.Hierarchy
	QuestionIDs    []string
	CurrentIndex   int
	TotalQuestions int
	AnsweredCount  int
	CorrectCount   int
	TimeSpentMs    int64
	XPEarned       *int
	CoinsEarned    *int
	Summary        string
	CreatedAt      time.Time
	CompletedAt    *time.Time
}

// Completed reports whether the session is terminal.
func (r SessionRecord) Completed() bool {
	return r.CompletedAt != nil
}

// AnswerRecord is one submitted answer. Append-only. QuestionID is empty when
// the source question was deleted after the answer was stored.
type AnswerRecord struct {
	SessionID   string
	QuestionID  string
	OptionIDs   []string
	Text        string
	Correct     bool
	TimeSpentMs int64
	CreatedAt   time.Time
}

// ProgressRecord says a question was presented to the student within a cycle.
type ProgressRecord struct {
	QuestionID  string
	CycleNumber int
}

// CreateSessionParams is the input to the atomic session create. The storage
// transaction derives the cycle number itself from the progress table, so a
// client-computed cycle never reaches the database.
type CreateSessionParams struct {
	SessionID   string
	StudentID   string
	SubTopicID  string
	Hierarchy   curriculum.Hierarchy
	QuestionIDs []string
}

// CompletionResult carries the server-computed final numbers. The storage
// collaborator recounts correct answers itself so a tampering client cannot
// inflate rewards.
type CompletionResult struct {
	XPEarned       int
	CoinsEarned    int
	CorrectCount   int
	TotalQuestions int
}

// Storage is the persistence collaborator contract. All operations are
// fallible; create and complete are all-or-nothing transactions.
type Storage interface {
	// CreateSessionAtomic persists the session row, its ordered question
	// list, and the per-question progress rows in one transaction,
	// computing the cycle number inside it. Nothing is created on failure.
	CreateSessionAtomic(ctx context.Context, p CreateSessionParams) (*SessionRecord, error)

	// InsertAnswer appends one answer row.
	InsertAnswer(ctx context.Context, a AnswerRecord) error

	// UpdateCurrentIndex persists the navigation position so a reload
	// resumes at the same question.
	UpdateCurrentIndex(ctx context.Context, sessionID string, index int) error

	// CompleteSessionAtomic finalizes the session and computes rewards in
	// one transaction. Returns ErrAlreadyCompleted for a terminal session.
	CompleteSessionAtomic(ctx context.Context, sessionID string) (*CompletionResult, error)

	// SetSessionSummary attaches late-arriving AI summary text to a
	// completed session.
	SetSessionSummary(ctx context.Context, sessionID, text string) error

	// FetchSession returns the session row or ErrNotFound.
	FetchSession(ctx context.Context, sessionID string) (*SessionRecord, error)

	// FetchAnswers returns all answers for a session in submission order.
	FetchAnswers(ctx context.Context, sessionID string) ([]AnswerRecord, error)

	// FetchProgress returns every (question, cycle) presentation recorded
	// for the student and sub-topic.
	FetchProgress(ctx context.Context, studentID, subTopicID string) ([]ProgressRecord, error)

	// RecentSessions returns the student's latest sessions, newest first.
	RecentSessions(ctx context.Context, studentID string, limit int) ([]SessionRecord, error)
}
