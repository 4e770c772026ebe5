package api

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"careerpilot/internal/assistant"
	"careerpilot/pkg/errors"
	"careerpilot/pkg/logger"
	"careerpilot/pkg/types"
)

// Server is the session's interactive surface. It serves exactly one
// session: the assistant it wraps owns all the state there is.
type Server struct {
	port      int
	assistant *assistant.Assistant
}

func NewServer(port int, a *assistant.Assistant) *Server {
	return &Server{
		port:      port,
		assistant: a,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/resume", chain(s.handleResume, http.MethodPost))
	mux.HandleFunc("/api/job", chain(s.handleJob, http.MethodPost))
	mux.HandleFunc("/api/score", chain(s.handleScore, http.MethodGet))
	mux.HandleFunc("/api/analyze", chain(s.handleAnalyze, http.MethodPost))
	mux.HandleFunc("/api/cover-letter", chain(s.handleMode(types.ModeCoverLetter), http.MethodPost))
	mux.HandleFunc("/api/linkedin", chain(s.handleMode(types.ModeLinkedIn), http.MethodPost))
	mux.HandleFunc("/api/interview", chain(s.handleMode(types.ModeInterview), http.MethodPost))
	mux.HandleFunc("/api/versions", chain(s.handleVersions, http.MethodGet, http.MethodPost))
	mux.HandleFunc("/api/versions/export", chain(s.handleExport, http.MethodPost))
	mux.HandleFunc("/api/chat", chain(s.handleChat, http.MethodGet, http.MethodPost, http.MethodDelete))
	return mux
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("starting session server", "port", s.port)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	var (
		text string
		card types.ScoreCard
		err  error
	)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			respondErr(w, r, errors.ErrBadRequest("failed to parse upload"))
			return
		}
		file, header, formErr := r.FormFile("file")
		if formErr != nil {
			respondErr(w, r, errors.ErrBadRequest("no resume file provided"))
			return
		}
		defer file.Close()

		data, readErr := io.ReadAll(file)
		if readErr != nil {
			respondErr(w, r, errors.ErrBadRequest("failed to read upload"))
			return
		}
		text, card, err = s.assistant.LoadResume(header.Filename, data)
	} else {
		if parseErr := r.ParseForm(); parseErr != nil {
			respondErr(w, r, errors.ErrBadRequest("failed to parse form"))
			return
		}
		text = r.FormValue("resumeText")
		if err = s.assistant.SetResumeText(text); err == nil {
			card, err = s.assistant.Score()
		}
	}
	if err != nil {
		respondErr(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]any{
		"resume_text": text,
		"score":       card,
	})
}

func (s *Server) handleJob(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondErr(w, r, errors.ErrBadRequest("failed to parse form"))
		return
	}
	jobDesc := r.FormValue("jobDescText")
	if jobDesc == "" {
		respondErr(w, r, errors.ErrBadRequest("no job description provided"))
		return
	}
	s.assistant.SetJobDescription(jobDesc)
	RespondWithJSON(w, http.StatusOK, map[string]string{
		"job_description": s.assistant.Store().JobDescription(),
	})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	card, err := s.assistant.Score()
	if err != nil {
		respondErr(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, card)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Question string `json:"question"`
	}
	if err := decodeBody(r, &request); err != nil {
		respondErr(w, r, err)
		return
	}

	result, err := s.assistant.Analyze(r.Context(), request.Question)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, result)
}

func (s *Server) handleMode(mode types.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := s.assistant.Generate(r.Context(), mode)
		if err != nil {
			respondErr(w, r, err)
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]string{
			"mode":    string(mode),
			"content": content,
		})
	}
}

func (s *Server) handleVersions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if label := r.URL.Query().Get("label"); label != "" {
			text, ok := s.assistant.Store().Version(label)
			if !ok {
				respondErr(w, r, errors.ErrNotFound(fmt.Sprintf("no saved version %q", label)))
				return
			}
			RespondWithJSON(w, http.StatusOK, types.ResumeVersion{Label: label, Text: text})
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]any{
			"versions": s.assistant.Store().Versions(),
		})
	case http.MethodPost:
		var request types.ResumeVersion
		if err := decodeBody(r, &request); err != nil {
			respondErr(w, r, err)
			return
		}
		overwritten, err := s.assistant.SaveVersion(request.Label, request.Text)
		if err != nil {
			respondErr(w, r, err)
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]any{
			"label":       request.Label,
			"overwritten": overwritten,
		})
	}
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Label  string `json:"label"`
		Format string `json:"format"`
	}
	if err := decodeBody(r, &request); err != nil {
		respondErr(w, r, err)
		return
	}
	if request.Format == "" {
		request.Format = "pdf"
	}

	data, err := s.assistant.ExportVersion(request.Label, request.Format)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	contentType := "application/pdf"
	if request.Format == "docx" {
		contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", request.Label+"."+request.Format))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		RespondWithJSON(w, http.StatusOK, map[string]any{
			"turns": s.assistant.Store().Turns(),
		})
	case http.MethodPost:
		var request struct {
			Message string `json:"message"`
		}
		if err := decodeBody(r, &request); err != nil {
			respondErr(w, r, err)
			return
		}
		if strings.TrimSpace(request.Message) == "" {
			respondErr(w, r, errors.ErrBadRequest("message is empty"))
			return
		}
		reply := s.assistant.Chat(r.Context(), request.Message)
		RespondWithJSON(w, http.StatusOK, map[string]string{"reply": reply})
	case http.MethodDelete:
		s.assistant.Store().ClearChat()
		RespondWithJSON(w, http.StatusOK, map[string]bool{"cleared": true})
	}
}

func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && err != io.EOF {
		return errors.ErrBadRequest("invalid request body")
	}
	return nil
}

func respondErr(w http.ResponseWriter, r *http.Request, err error) {
	requestID := logger.GetRequestID(r.Context())
	RespondWithError(w, toApiError(err).WithRequestID(requestID))
}

// toApiError converts the typed failure kinds into user-visible errors at
// the outermost boundary. Decode failures keep the raw model output so
// the client can show it for inspection.
func toApiError(err error) *errors.ApiError {
	var apiErr *errors.ApiError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}
	var decodeErr *errors.DecodeError
	if stderrors.As(err, &decodeErr) {
		return errors.ErrLLMContract(decodeErr.Reason).WithRaw(decodeErr.Raw)
	}
	var transportErr *errors.TransportError
	if stderrors.As(err, &transportErr) {
		return errors.ErrLLMUnavailable(transportErr.Error())
	}
	var extractErr *errors.ExtractionError
	if stderrors.As(err, &extractErr) {
		return errors.ErrBadRequest(extractErr.Reason)
	}
	return errors.ErrInternalServer(err.Error())
}
