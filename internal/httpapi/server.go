package httpapi

import (
	"net/http"

	"credgate/authd/internal/auth"
	"credgate/authd/internal/store"
)

type Server struct {
	engine *auth.Engine
	store  store.Store
	mux    *http.ServeMux
}

func NewServer(engine *auth.Engine, st store.Store) *Server {
	s := &Server{
		engine: engine,
		store:  st,
		mux:    http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	h = recoverMiddleware(h)
	h = requestIDMiddleware(h)
	h = loggingMiddleware(h)
	return h
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)

	s.mux.HandleFunc("/api/auth/register", s.handleRegister)
	s.mux.HandleFunc("/api/auth/login", s.handleLogin)

	s.mux.HandleFunc("/api/users", s.requireToken(s.handleUsers))
}
