package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ananya/practiq/ent"
	"github.com/ananya/practiq/ent/practiceanswer"
	"github.com/ananya/practiq/ent/practicesession"
	"github.com/ananya/practiq/ent/questionprogress"
	"github.com/ananya/practiq/internal/curriculum"
	"github.com/ananya/practiq/internal/engine"
)

// Reward formula applied at completion.
const (
	xpPerCorrect    = 10
	coinsPerCorrect = 2
	completionBonus = 5
)

// SessionStore implements engine.Storage on the ent client.
type SessionStore struct {
	client *ent.Client
}

var _ engine.Storage = (*SessionStore)(nil)

// CreateSessionAtomic persists the session row and its per-question progress
// rows in one transaction. The cycle number is derived inside the
// transaction from the progress table, so concurrent creates for the same
// student cannot disagree about it: the unique progress index makes the
// loser fail instead of double-recording a question.
func (s *SessionStore) CreateSessionAtomic(ctx context.Context, p engine.CreateSessionParams) (*engine.SessionRecord, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	cycle, err := deriveCycle(ctx, tx, p)
	if err != nil {
		return nil, rollback(tx, err)
	}

	row, err := tx.PracticeSession.Create().
		SetSessionID(p.SessionID).
		SetStudentID(p.StudentID).
		SetSubTopicID(p.SubTopicID).
		SetGradeLevelID(p.Hierarchy.GradeLevelID).
		SetGradeLevelName(p.Hierarchy.GradeLevelName).
		SetSubjectID(p.Hierarchy.SubjectID).
		SetSubjectName(p.Hierarchy.SubjectName).
		SetTopicID(p.Hierarchy.TopicID).
		SetTopicName(p.Hierarchy.TopicName).
		SetSubTopicName(p.Hierarchy.SubTopicName).
		SetQuestionOrder(p.QuestionIDs).
		SetTotalQuestions(len(p.QuestionIDs)).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("create session: %w", err))
	}

	bulk := make([]*ent.QuestionProgressCreate, len(p.QuestionIDs))
	for i, qid := range p.QuestionIDs {
		bulk[i] = tx.QuestionProgress.Create().
			SetStudentID(p.StudentID).
			SetSubTopicID(p.SubTopicID).
			SetQuestionID(qid).
			SetCycleNumber(cycle)
	}
	if _, err := tx.QuestionProgress.CreateBulk(bulk...).Save(ctx); err != nil {
		return nil, rollback(tx, fmt.Errorf("record progress: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit session create: %w", err)
	}
	rec := sessionRecord(row)
	return &rec, nil
}

// deriveCycle inspects the progress table for the student and sub-topic. A
// selected question already recorded in the highest cycle means this session
// rolls the pool over into the next one.
func deriveCycle(ctx context.Context, tx *ent.Tx, p engine.CreateSessionParams) (int, error) {
	latest, err := tx.QuestionProgress.Query().
		Where(
			questionprogress.StudentID(p.StudentID),
			questionprogress.SubTopicID(p.SubTopicID),
		).
		Order(ent.Desc(questionprogress.FieldCycleNumber)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("query max cycle: %w", err)
	}
	maxCycle := latest.CycleNumber

	seen, err := tx.QuestionProgress.Query().
		Where(
			questionprogress.StudentID(p.StudentID),
			questionprogress.SubTopicID(p.SubTopicID),
			questionprogress.CycleNumber(maxCycle),
			questionprogress.QuestionIDIn(p.QuestionIDs...),
		).
		Exist(ctx)
	if err != nil {
		return 0, fmt.Errorf("check cycle rollover: %w", err)
	}
	if seen {
		return maxCycle + 1, nil
	}
	return maxCycle, nil
}

func (s *SessionStore) InsertAnswer(ctx context.Context, a engine.AnswerRecord) error {
	builder := s.client.PracticeAnswer.Create().
		SetSessionID(a.SessionID).
		SetQuestionID(a.QuestionID).
		SetText(a.Text).
		SetCorrect(a.Correct).
		SetTimeSpentMs(a.TimeSpentMs)
	if len(a.OptionIDs) > 0 {
		builder = builder.SetSelectedOptions(a.OptionIDs)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save answer: %w", err)
	}
	return nil
}

func (s *SessionStore) UpdateCurrentIndex(ctx context.Context, sessionID string, index int) error {
	n, err := s.client.PracticeSession.Update().
		Where(
			practicesession.SessionID(sessionID),
			practicesession.CompletedAtIsNil(),
		).
		SetCurrentIndex(index).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update current index: %w", err)
	}
	if n == 0 {
		return engine.ErrNotFound
	}
	return nil
}

// CompleteSessionAtomic finalizes the session. Correct answers are recounted
// from the answers table (latest answer per question wins) rather than
// trusting any client-side tally, and the rewards follow from that count.
func (s *SessionStore) CompleteSessionAtomic(ctx context.Context, sessionID string) (*engine.CompletionResult, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	row, err := tx.PracticeSession.Query().
		Where(practicesession.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, rollback(tx, engine.ErrNotFound)
		}
		return nil, rollback(tx, fmt.Errorf("query session: %w", err))
	}
	if row.CompletedAt != nil {
		return nil, rollback(tx, engine.ErrAlreadyCompleted)
	}

	answered, correct, timeSpent, err := tallyAnswers(ctx, tx, sessionID)
	if err != nil {
		return nil, rollback(tx, err)
	}

	xp := correct * xpPerCorrect
	coins := correct*coinsPerCorrect + completionBonus

	_, err = row.Update().
		SetCompletedAt(time.Now()).
		SetAnsweredCount(answered).
		SetCorrectCount(correct).
		SetTimeSpentMs(timeSpent).
		SetXpEarned(xp).
		SetCoinsEarned(coins).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("finalize session: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit completion: %w", err)
	}

	return &engine.CompletionResult{
		XPEarned:       xp,
		CoinsEarned:    coins,
		CorrectCount:   correct,
		TotalQuestions: row.TotalQuestions,
	}, nil
}

// tallyAnswers reduces the answer rows to per-question results, keeping the
// latest row when a question was answered more than once.
func tallyAnswers(ctx context.Context, tx *ent.Tx, sessionID string) (answered, correct int, timeSpent int64, err error) {
	rows, err := tx.PracticeAnswer.Query().
		Where(practiceanswer.SessionID(sessionID)).
		Order(ent.Asc(practiceanswer.FieldCreatedAt), ent.Asc(practiceanswer.FieldID)).
		All(ctx)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("query answers: %w", err)
	}

	latest := make(map[string]bool, len(rows))
	for _, r := range rows {
		latest[r.QuestionID] = r.Correct
		timeSpent += r.TimeSpentMs
	}
	for _, ok := range latest {
		answered++
		if ok {
			correct++
		}
	}
	return answered, correct, timeSpent, nil
}

func (s *SessionStore) SetSessionSummary(ctx context.Context, sessionID, text string) error {
	n, err := s.client.PracticeSession.Update().
		Where(practicesession.SessionID(sessionID)).
		SetSummary(text).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set summary: %w", err)
	}
	if n == 0 {
		return engine.ErrNotFound
	}
	return nil
}

func (s *SessionStore) FetchSession(ctx context.Context, sessionID string) (*engine.SessionRecord, error) {
	row, err := s.client.PracticeSession.Query().
		Where(practicesession.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, engine.ErrNotFound
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	rec := sessionRecord(row)

	// An in-progress session carries live counts derived from its answers;
	// a completed one already has them denormalized.
	if row.CompletedAt == nil {
		answers, err := s.FetchAnswers(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		latest := make(map[string]bool, len(answers))
		rec.TimeSpentMs = 0
		for _, a := range answers {
			latest[a.QuestionID] = a.Correct
			rec.TimeSpentMs += a.TimeSpentMs
		}
		rec.AnsweredCount = len(latest)
		rec.CorrectCount = 0
		for _, ok := range latest {
			if ok {
				rec.CorrectCount++
			}
		}
	}
	return &rec, nil
}

func (s *SessionStore) FetchAnswers(ctx context.Context, sessionID string) ([]engine.AnswerRecord, error) {
	rows, err := s.client.PracticeAnswer.Query().
		Where(practiceanswer.SessionID(sessionID)).
		Order(ent.Asc(practiceanswer.FieldCreatedAt), ent.Asc(practiceanswer.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}

	out := make([]engine.AnswerRecord, len(rows))
	for i, r := range rows {
		out[i] = engine.AnswerRecord{
			SessionID:   r.SessionID,
			QuestionID:  r.QuestionID,
			OptionIDs:   r.SelectedOptions,
			Text:        r.Text,
			Correct:     r.Correct,
			TimeSpentMs: r.TimeSpentMs,
			CreatedAt:   r.CreatedAt,
		}
	}
	return out, nil
}

func (s *SessionStore) FetchProgress(ctx context.Context, studentID, subTopicID string) ([]engine.ProgressRecord, error) {
	rows, err := s.client.QuestionProgress.Query().
		Where(
			questionprogress.StudentID(studentID),
			questionprogress.SubTopicID(subTopicID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}

	out := make([]engine.ProgressRecord, len(rows))
	for i, r := range rows {
		out[i] = engine.ProgressRecord{
			QuestionID:  r.QuestionID,
			CycleNumber: r.CycleNumber,
		}
	}
	return out, nil
}

func (s *SessionStore) RecentSessions(ctx context.Context, studentID string, limit int) ([]engine.SessionRecord, error) {
	rows, err := s.client.PracticeSession.Query().
		Where(practicesession.StudentID(studentID)).
		Order(ent.Desc(practicesession.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	out := make([]engine.SessionRecord, len(rows))
	for i, r := range rows {
		out[i] = sessionRecord(r)
	}
	return out, nil
}

func sessionRecord(row *ent.PracticeSession) engine.SessionRecord {
	return engine.SessionRecord{
		ID:         row.SessionID,
		StudentID:  row.StudentID,
		SubTopicID: row.SubTopicID,
		Hierarchy: curriculum.Hierarchy{
			GradeLevelID:   row.GradeLevelID,
			GradeLevelName: row.GradeLevelName,
			SubjectID:      row.SubjectID,
			SubjectName:    row.SubjectName,
			TopicID:        row.TopicID,
			TopicName:      row.TopicName,
			SubTopicID:     row.SubTopicID,
			SubTopicName:   row.SubTopicName,
		},
		QuestionIDs:    row.QuestionOrder,
		CurrentIndex:   row.CurrentIndex,
		TotalQuestions: row.TotalQuestions,
		AnsweredCount:  row.AnsweredCount,
		CorrectCount:   row.CorrectCount,
		TimeSpentMs:    row.TimeSpentMs,
		XPEarned:       row.XpEarned,
		CoinsEarned:    row.CoinsEarned,
		Summary:        row.Summary,
		CreatedAt:      row.CreatedAt,
		CompletedAt:    row.CompletedAt,
	}
}
