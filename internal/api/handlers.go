package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/ananya/practiq/internal/curriculum"
	"github.com/ananya/practiq/internal/engine"
	"github.com/ananya/practiq/internal/entitlement"
	"github.com/ananya/practiq/internal/identity"
	"github.com/ananya/practiq/internal/question"
)

// Handler owns the HTTP surface. It resolves the caller's engine from the
// registry and translates engine errors to status codes.
type Handler struct {
	engines   *Registry
	catalog   curriculum.Provider
	questions question.Provider
	gate      *entitlement.Gate
	secret    []byte
	tokenTTL  time.Duration
}

// NewHandler creates the API handler.
func NewHandler(engines *Registry, catalog curriculum.Provider, questions question.Provider, gate *entitlement.Gate, secret []byte, tokenTTL time.Duration) *Handler {
	return &Handler{
		engines:   engines,
		catalog:   catalog,
		questions: questions,
		gate:      gate,
		secret:    secret,
		tokenTTL:  tokenTTL,
	}
}

type loginRequest struct {
	StudentID string `json:"studentId"`
	Role      string `json:"role,omitempty"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login issues a signed token for the given student id. Credentials are the
// deployment's concern; this endpoint trusts the seeded ids it is given.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.StudentID == "" {
		respondError(w, http.StatusBadRequest, "studentId is required")
		return
	}

	role := identity.RoleStudent
	if req.Role == string(identity.RoleAdmin) {
		role = identity.RoleAdmin
	}
	token, err := IssueToken(h.secret, identity.User{ID: req.StudentID, Role: role}, h.tokenTTL)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	respondJSON(w, http.StatusOK, loginResponse{Token: token})
}

type subTopicView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type topicView struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	SubTopics []subTopicView `json:"subTopics"`
}

type subjectView struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Topics []topicView `json:"topics"`
}

type gradeLevelView struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Subjects []subjectView `json:"subjects"`
}

// Curriculum returns the full catalog tree.
func (h *Handler) Curriculum(w http.ResponseWriter, r *http.Request) {
	tree, err := h.catalog.FetchHierarchy(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "curriculum unavailable")
		return
	}

	grades := make([]gradeLevelView, 0, len(tree.GradeLevels))
	for _, g := range tree.GradeLevels {
		gv := gradeLevelView{ID: g.ID, Name: g.Name, Subjects: []subjectView{}}
		for _, s := range g.Subjects {
			sv := subjectView{ID: s.ID, Name: s.Name, Topics: []topicView{}}
			for _, t := range s.Topics {
				tv := topicView{ID: t.ID, Name: t.Name, SubTopics: []subTopicView{}}
				for _, st := range t.SubTopics {
					tv.SubTopics = append(tv.SubTopics, subTopicView{ID: st.ID, Name: st.Name})
				}
				sv.Topics = append(sv.Topics, tv)
			}
			gv.Subjects = append(gv.Subjects, sv)
		}
		grades = append(grades, gv)
	}
	respondJSON(w, http.StatusOK, map[string]any{"gradeLevels": grades})
}

type adminOptionView struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl,omitempty"`
	Correct  bool   `json:"correct"`
}

type adminQuestionView struct {
	ID              string            `json:"id"`
	Type            string            `json:"type"`
	Prompt          string            `json:"prompt"`
	ImageURL        string            `json:"imageUrl,omitempty"`
	Explanation     string            `json:"explanation,omitempty"`
	CanonicalAnswer string            `json:"canonicalAnswer,omitempty"`
	Options         []adminOptionView `json:"options,omitempty"`
}

// SubTopicQuestions returns a sub-topic's pool with answers, for admins.
func (h *Handler) SubTopicQuestions(w http.ResponseWriter, r *http.Request) {
	subTopicID := mux.Vars(r)["id"]
	pool, err := h.questions.PoolForSubTopic(r.Context(), subTopicID)
	if err != nil {
		respondError(w, http.StatusBadGateway, "question bank unavailable")
		return
	}

	out := make([]adminQuestionView, len(pool))
	for i, q := range pool {
		qv := adminQuestionView{
			ID:              q.ID,
			Type:            string(q.Type),
			Prompt:          q.Prompt,
			ImageURL:        q.ImageURL,
			Explanation:     q.Explanation,
			CanonicalAnswer: q.CanonicalAnswer,
		}
		for _, o := range q.Options {
			qv.Options = append(qv.Options, adminOptionView{
				ID: o.ID, Text: o.Text, ImageURL: o.ImageURL, Correct: o.Correct,
			})
		}
		out[i] = qv
	}
	respondJSON(w, http.StatusOK, map[string]any{"questions": out})
}

type startRequest struct {
	SubTopicID string `json:"subTopicId"`
	Count      int    `json:"count"`
}

// StartSession begins a new practice session for the caller.
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	view, err := h.engines.ForStudent(user.ID).Start(r.Context(), req.SubTopicID, req.Count)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, sessionViewJSON(view))
}

// CurrentSession returns the caller's active session view.
func (h *Handler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	view, ok := h.engines.ForStudent(user.ID).Current(r.Context())
	if !ok {
		respondError(w, http.StatusNotFound, "no active session")
		return
	}
	respondJSON(w, http.StatusOK, sessionViewJSON(view))
}

type answerRequest struct {
	OptionIDs   []string `json:"optionIds,omitempty"`
	Text        string   `json:"text,omitempty"`
	TimeSpentMs int64    `json:"timeSpentMs"`
}

type answerResponse struct {
	Correct          bool     `json:"correct"`
	Explanation      string   `json:"explanation,omitempty"`
	CorrectOptionIDs []string `json:"correctOptionIds,omitempty"`
	CanonicalAnswer  string   `json:"canonicalAnswer,omitempty"`
}

// SubmitAnswer evaluates an answer to the current question. Free tier gets
// the bare verdict; paid tiers see the full reveal.
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	sel := question.Selection{OptionIDs: req.OptionIDs, Text: req.Text}
	res, err := h.engines.ForStudent(user.ID).SubmitAnswer(r.Context(), sel, req.TimeSpentMs)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	resp := answerResponse{Correct: res.Correct}
	if h.gate.Status(r.Context(), user.ID).DetailedResults {
		resp.Explanation = res.Explanation
		resp.CorrectOptionIDs = res.CorrectOptionIDs
		resp.CanonicalAnswer = res.CanonicalAnswer
	}
	respondJSON(w, http.StatusOK, resp)
}

type navigateRequest struct {
	Op    string `json:"op"`
	Index int    `json:"index"`
}

type navigateResponse struct {
	Moved        bool `json:"moved"`
	CurrentIndex int  `json:"currentIndex"`
}

// Navigate moves within the active session's question list.
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	eng := h.engines.ForStudent(user.ID)
	var moved bool
	switch req.Op {
	case "next":
		moved = eng.NextQuestion(r.Context())
	case "prev":
		moved = eng.PreviousQuestion(r.Context())
	case "goto":
		moved = eng.GoToQuestion(r.Context(), req.Index)
	default:
		respondError(w, http.StatusBadRequest, "op must be next, prev, or goto")
		return
	}

	view, ok := eng.Current(r.Context())
	if !ok {
		respondError(w, http.StatusNotFound, "no active session")
		return
	}
	respondJSON(w, http.StatusOK, navigateResponse{
		Moved:        moved,
		CurrentIndex: view.Session.CurrentIndex,
	})
}

type completionResponse struct {
	XPEarned       int `json:"xpEarned"`
	CoinsEarned    int `json:"coinsEarned"`
	CorrectCount   int `json:"correctCount"`
	TotalQuestions int `json:"totalQuestions"`
}

// CompleteSession finalizes the caller's active session.
func (h *Handler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	res, err := h.engines.ForStudent(user.ID).CompleteSession(r.Context())
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, completionResponse{
		XPEarned:       res.XPEarned,
		CoinsEarned:    res.CoinsEarned,
		CorrectCount:   res.CorrectCount,
		TotalQuestions: res.TotalQuestions,
	})
}

// EndSession discards the caller's in-memory session state. The stored
// session stays resumable.
func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	h.engines.ForStudent(user.ID).EndSession()
	w.WriteHeader(http.StatusNoContent)
}

// ResumeSession reopens an unfinished session by id.
func (h *Handler) ResumeSession(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	sessionID := mux.Vars(r)["id"]
	view, err := h.engines.ForStudent(user.ID).ResumeSession(r.Context(), sessionID)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sessionViewJSON(view))
}

type historyEntry struct {
	ID             string     `json:"id"`
	SubTopicID     string     `json:"subTopicId"`
	SubTopicName   string     `json:"subTopicName"`
	TotalQuestions int        `json:"totalQuestions"`
	CorrectCount   int        `json:"correctCount"`
	XPEarned       *int       `json:"xpEarned,omitempty"`
	CoinsEarned    *int       `json:"coinsEarned,omitempty"`
	Summary        string     `json:"summary,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

// History returns the caller's recent sessions, newest first.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	records, err := h.engines.ForStudent(user.ID).History(r.Context(), limit)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	out := make([]historyEntry, len(records))
	for i, rec := range records {
		out[i] = historyEntry{
			ID:             rec.ID,
			SubTopicID:     rec.SubTopicID,
			SubTopicName:   rec.Hierarchy.SubTopicName,
			TotalQuestions: rec.TotalQuestions,
			CorrectCount:   rec.CorrectCount,
			XPEarned:       rec.XPEarned,
			CoinsEarned:    rec.CoinsEarned,
			Summary:        rec.Summary,
			CreatedAt:      rec.CreatedAt,
			CompletedAt:    rec.CompletedAt,
		}
	}
	respondJSON(w, http.StatusOK, map[string]any{"sessions": out})
}

type entitlementResponse struct {
	Tier            string `json:"tier"`
	SessionsToday   int    `json:"sessionsToday"`
	SessionLimit    int    `json:"sessionLimit"`
	Remaining       int    `json:"remaining"`
	CanStart        bool   `json:"canStart"`
	DetailedResults bool   `json:"detailedResults"`
	AISummary       bool   `json:"aiSummary"`
}

// Entitlement returns the caller's tier and limit snapshot.
func (h *Handler) Entitlement(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	status := h.gate.Status(r.Context(), user.ID)
	lim := h.gate.CheckSessionLimit(r.Context(), user.ID)
	respondJSON(w, http.StatusOK, entitlementResponse{
		Tier:            string(lim.Tier),
		SessionsToday:   lim.SessionsToday,
		SessionLimit:    lim.SessionLimit,
		Remaining:       lim.Remaining,
		CanStart:        lim.CanStart,
		DetailedResults: status.DetailedResults,
		AISummary:       status.AISummary,
	})
}

type optionView struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// questionView deliberately omits correctness flags, explanations, and
// canonical answers: those only leave the server through the answer reveal.
type questionView struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Prompt   string       `json:"prompt"`
	ImageURL string       `json:"imageUrl,omitempty"`
	Options  []optionView `json:"options,omitempty"`
}

type answerView struct {
	QuestionID  string   `json:"questionId"`
	OptionIDs   []string `json:"optionIds,omitempty"`
	Text        string   `json:"text,omitempty"`
	Correct     bool     `json:"correct"`
	TimeSpentMs int64    `json:"timeSpentMs"`
}

type sessionView struct {
	ID             string         `json:"id"`
	SubTopicID     string         `json:"subTopicId"`
	GradeLevelName string         `json:"gradeLevelName"`
	SubjectName    string         `json:"subjectName"`
	TopicName      string         `json:"topicName"`
	SubTopicName   string         `json:"subTopicName"`
	CurrentIndex   int            `json:"currentIndex"`
	TotalQuestions int            `json:"totalQuestions"`
	AnsweredCount  int            `json:"answeredCount"`
	CorrectCount   int            `json:"correctCount"`
	Questions      []questionView `json:"questions"`
	Answers        []answerView   `json:"answers"`
	SessionsToday  int            `json:"sessionsToday"`
	SessionLimit   int            `json:"sessionLimit"`
}

func sessionViewJSON(view *engine.ActiveView) sessionView {
	out := sessionView{
		ID:             view.Session.ID,
		SubTopicID:     view.Session.SubTopicID,
		GradeLevelName: view.Session.Hierarchy.GradeLevelName,
		SubjectName:    view.Session.Hierarchy.SubjectName,
		TopicName:      view.Session.Hierarchy.TopicName,
		SubTopicName:   view.Session.Hierarchy.SubTopicName,
		CurrentIndex:   view.Session.CurrentIndex,
		TotalQuestions: view.Session.TotalQuestions,
		AnsweredCount:  view.Session.AnsweredCount,
		CorrectCount:   view.Session.CorrectCount,
		Questions:      []questionView{},
		Answers:        []answerView{},
		SessionsToday:  view.Limit.SessionsToday,
		SessionLimit:   view.Limit.SessionLimit,
	}
	for _, q := range view.Questions {
		qv := questionView{
			ID:       q.ID,
			Type:     string(q.Type),
			Prompt:   q.Prompt,
			ImageURL: q.ImageURL,
		}
		for _, o := range q.Options {
			qv.Options = append(qv.Options, optionView{ID: o.ID, Text: o.Text, ImageURL: o.ImageURL})
		}
		out.Questions = append(out.Questions, qv)
	}
	for _, q := range view.Questions {
		a, ok := view.Answers[q.ID]
		if !ok {
			continue
		}
		out.Answers = append(out.Answers, answerView{
			QuestionID:  a.QuestionID,
			OptionIDs:   a.OptionIDs,
			Text:        a.Text,
			Correct:     a.Correct,
			TimeSpentMs: a.TimeSpentMs,
		})
	}
	return out
}

// respondEngineError maps engine error kinds to HTTP status codes.
func respondEngineError(w http.ResponseWriter, err error) {
	var (
		limitErr      *engine.LimitError
		validationErr *engine.ValidationError
		remoteErr     *engine.RemoteError
	)
	switch {
	case errors.As(err, &limitErr):
		respondJSON(w, http.StatusTooManyRequests, map[string]any{
			"error":         limitErr.Error(),
			"sessionLimit":  limitErr.SessionLimit,
			"sessionsToday": limitErr.SessionsToday,
			"remaining":     limitErr.RemainingSessions,
		})
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, engine.ErrUnauthenticated):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, engine.ErrUnauthorized):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, engine.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, engine.ErrAlreadyCompleted),
		errors.Is(err, engine.ErrEmptyPool),
		errors.Is(err, engine.ErrSessionActive):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, engine.ErrNoActiveSession):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &remoteErr):
		respondError(w, http.StatusBadGateway, "upstream failure")
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func respondJSON(w http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"response encoding failure"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)
}

func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{"error": message})
}
