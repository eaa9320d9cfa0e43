package web

import (
	"fmt"
	"net/http"

	"github.com/drivelens/drivelens/src/drive"
	"github.com/drivelens/drivelens/src/extract"
	"github.com/drivelens/drivelens/src/models"
)

// ErrorReplyPrefix marks a model-call failure rendered as the reply
// text. The return channel does not otherwise encode failure, so
// consumers checking the reply look for this prefix.
const ErrorReplyPrefix = "ERROR: could not generate a response: "

// pageData feeds the single page template through all of its states.
type pageData struct {
	ConfigError string
	AuthURL     string
	Authed      bool
	Files       []drive.FileRecord
	ListError   string
	Prompt      string
	Statuses    []string
	Warnings    []string
	Reply       string
	HasReply    bool
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)

	if s.configErr != nil {
		s.render(w, &pageData{ConfigError: s.configErr.Error()})
		return
	}

	tok, ok := s.sessions.Token(id)
	if !ok {
		state := s.sessions.BeginAuth(id)
		s.render(w, &pageData{AuthURL: s.flow.AuthURL(state)})
		return
	}

	svc, err := s.driveFor(r.Context(), tok)
	if err != nil {
		s.render(w, &pageData{Authed: true, ListError: err.Error()})
		return
	}
	files, err := svc.ListFiles(r.Context())
	if err != nil {
		s.render(w, &pageData{Authed: true, ListError: err.Error()})
		return
	}
	s.render(w, &pageData{Authed: true, Files: files})
}

func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	if s.configErr != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	id := s.sessionID(w, r)

	q := r.URL.Query()
	code := q.Get("code")
	if code == "" {
		http.Error(w, "authorization code missing", http.StatusBadRequest)
		return
	}

	tok, err := s.flow.Exchange(r.Context(), code)
	if err != nil {
		http.Error(w, fmt.Sprintf("authorization failed: %v", err), http.StatusBadGateway)
		return
	}
	if !s.sessions.CompleteAuth(id, q.Get("state"), tok) {
		http.Error(w, "state mismatch", http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	tok, ok := s.sessions.Token(id)
	if !ok || s.configErr != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}
	prompt := r.PostForm.Get("prompt")
	selected := r.PostForm["file"]
	if prompt == "" || len(selected) == 0 {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	svc, err := s.driveFor(r.Context(), tok)
	if err != nil {
		s.render(w, &pageData{Authed: true, ListError: err.Error()})
		return
	}
	files, err := svc.ListFiles(r.Context())
	if err != nil {
		s.render(w, &pageData{Authed: true, ListError: err.Error()})
		return
	}
	byID := make(map[string]drive.FileRecord, len(files))
	for _, f := range files {
		byID[f.ID] = f
	}

	data := &pageData{Authed: true, Files: files, Prompt: prompt}

	// Strictly one file at a time, in submitted form order (checkbox
	// order on the page, not click order).
	var fileParts []models.Part
	for _, fid := range selected {
		rec, ok := byID[fid]
		if !ok {
			data.Warnings = append(data.Warnings, fmt.Sprintf("Skipping unknown file id: %s", fid))
			continue
		}
		raw, err := svc.Download(r.Context(), rec.ID)
		if err != nil {
			data.Warnings = append(data.Warnings,
				fmt.Sprintf("Skipping %s: %v", rec.Name, err))
			continue
		}
		content := extract.FromBytes(rec.Name, rec.MediaType, raw)
		switch content.Kind {
		case extract.KindText:
			fileParts = append(fileParts, models.TextPart(DocumentText(rec.Name, content.Text)))
			data.Statuses = append(data.Statuses, fmt.Sprintf("Processed: %s", rec.Name))
		case extract.KindImage:
			fileParts = append(fileParts, models.ImagePart(content.MIME, content.Data))
			data.Statuses = append(data.Statuses, fmt.Sprintf("Processed: %s", rec.Name))
		default:
			data.Warnings = append(data.Warnings,
				fmt.Sprintf("Skipping unsupported file: %s (%s)", rec.Name, content.Reason))
		}
	}

	// Nothing usable: no model call, just the warnings.
	if len(fileParts) == 0 {
		s.render(w, data)
		return
	}

	parts := AssemblePrompt(prompt, fileParts)
	data.HasReply = true
	if s.agent == nil {
		data.Reply = ErrorReplyPrefix + "no model provider is configured"
	} else if reply, err := s.agent.GenerateWithParts(r.Context(), parts); err != nil {
		data.Reply = fmt.Sprintf("%s%v", ErrorReplyPrefix, err)
	} else {
		data.Reply = reply
	}
	s.render(w, data)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(SessionCookie); err == nil {
		s.sessions.Drop(c.Value)
	}
	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "", Path: "/", MaxAge: -1})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
