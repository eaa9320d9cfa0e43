// Package web is the interactive surface: one page with a file
// multi-selector, a prompt box, a trigger, and the reply display. All
// work happens synchronously inside the request handlers.
package web

import (
	"context"
	"embed"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/oauth2"

	"github.com/drivelens/drivelens/src/auth"
	"github.com/drivelens/drivelens/src/drive"
	"github.com/drivelens/drivelens/src/models"
)

const (
	SessionCookie = "drivelens_session"

	HTTPReadTimeout = 10 * time.Second
	// Model calls run inside the request, so the write timeout covers them.
	HTTPWriteTimeout = 180 * time.Second
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// DriveService is the slice of the Drive client the handlers need;
// tests substitute a fake.
type DriveService interface {
	ListFiles(ctx context.Context) ([]drive.FileRecord, error)
	Download(ctx context.Context, id string) ([]byte, error)
}

// Params wires a Server. Flow may be nil when ConfigErr is set; the
// page then renders the configuration error inline and the auth flow
// never starts.
type Params struct {
	Flow      *auth.Flow
	Agent     models.Agent
	ConfigErr error
	Sessions  *auth.SessionStore
	// DriveFor overrides Drive client construction (tests).
	DriveFor func(ctx context.Context, tok *oauth2.Token) (DriveService, error)
}

type Server struct {
	flow      *auth.Flow
	agent     models.Agent
	configErr error
	sessions  *auth.SessionStore
	driveFor  func(ctx context.Context, tok *oauth2.Token) (DriveService, error)
	router    *mux.Router
}

func NewServer(p Params) *Server {
	s := &Server{
		flow:      p.Flow,
		agent:     p.Agent,
		configErr: p.ConfigErr,
		sessions:  p.Sessions,
		driveFor:  p.DriveFor,
	}
	if s.sessions == nil {
		s.sessions = auth.NewSessionStore()
	}
	if s.driveFor == nil {
		s.driveFor = s.newDriveClient
	}

	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/oauth2/callback", s.handleCallback).Methods(http.MethodGet)
	r.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost)
	r.HandleFunc("/logout", s.handleLogout).Methods(http.MethodGet)
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe blocks serving the UI on addr.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  HTTPReadTimeout,
		WriteTimeout: HTTPWriteTimeout,
	}
	log.Printf("[web] listening on %s", addr)
	return srv.ListenAndServe()
}

func (s *Server) newDriveClient(ctx context.Context, tok *oauth2.Token) (DriveService, error) {
	return drive.NewClient(ctx, s.flow.HTTPClient(ctx, tok))
}

// sessionID returns the request's session, minting one (and setting the
// cookie) when absent.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := s.sessions.New()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (s *Server) render(w http.ResponseWriter, data *pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		log.Printf("[web] rendering page: %v", err)
	}
}
