// Package api exposes the practice engine over HTTP with JWT bearer auth.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the API routes. Everything under /api except login sits
// behind the auth middleware.
func NewRouter(h *Handler, secret []byte) *mux.Router {
	r := mux.NewRouter()

	open := r.PathPrefix("/api").Subrouter()
	open.HandleFunc("/login", h.Login).Methods(http.MethodPost)

	authed := r.PathPrefix("/api").Subrouter()
	authed.Use(Auth(secret))
	authed.HandleFunc("/curriculum", h.Curriculum).Methods(http.MethodGet)
	authed.HandleFunc("/subtopics/{id}/questions", requireAdmin(h.SubTopicQuestions)).Methods(http.MethodGet)
	authed.HandleFunc("/sessions", requireStudent(h.StartSession)).Methods(http.MethodPost)
	authed.HandleFunc("/sessions", h.History).Methods(http.MethodGet)
	authed.HandleFunc("/sessions/current", h.CurrentSession).Methods(http.MethodGet)
	authed.HandleFunc("/sessions/current", requireStudent(h.EndSession)).Methods(http.MethodDelete)
	authed.HandleFunc("/sessions/current/answers", requireStudent(h.SubmitAnswer)).Methods(http.MethodPost)
	authed.HandleFunc("/sessions/current/navigate", requireStudent(h.Navigate)).Methods(http.MethodPost)
	authed.HandleFunc("/sessions/current/complete", requireStudent(h.CompleteSession)).Methods(http.MethodPost)
	authed.HandleFunc("/sessions/{id}/resume", requireStudent(h.ResumeSession)).Methods(http.MethodPost)
	authed.HandleFunc("/entitlement", h.Entitlement).Methods(http.MethodGet)

	return r
}
