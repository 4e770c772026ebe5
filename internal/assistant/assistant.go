package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"careerpilot/internal/cleaner"
	"careerpilot/internal/decode"
	"careerpilot/internal/extract"
	"careerpilot/internal/prompt"
	"careerpilot/internal/render"
	"careerpilot/internal/score"
	"careerpilot/internal/session"
	"careerpilot/pkg/errors"
	"careerpilot/pkg/types"
)

const generationTimeout = 60 * time.Second

// Generator is the one completion dependency the assistant needs.
// *llm.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, prompt string, params types.GenerationParams) (string, error)
}

// Assistant dispatches user actions over the session state: one action,
// one sequential pipeline, no state of its own beyond the store it owns.
type Assistant struct {
	gen      Generator
	store    *session.Store
	renderer *render.Renderer
}

func New(gen Generator, store *session.Store, renderer *render.Renderer) *Assistant {
	return &Assistant{
		gen:      gen,
		store:    store,
		renderer: renderer,
	}
}

func (a *Assistant) Store() *session.Store {
	return a.store
}

// LoadResume extracts text from an uploaded document, makes it the
// session resume and returns it with its heuristic score.
func (a *Assistant) LoadResume(filename string, data []byte) (string, types.ScoreCard, error) {
	text, err := extract.Text(filename, data)
	if err != nil {
		return "", types.ScoreCard{}, err
	}
	a.store.SetResume(text)
	slog.Info("resume loaded", "filename", filename, "text_length", len(text))
	return text, score.Score(text), nil
}

// SetResumeText accepts pasted resume text directly, bypassing document
// extraction.
func (a *Assistant) SetResumeText(text string) error {
	if isBlank(text) {
		return errors.ErrBadRequest("resume text is empty")
	}
	a.store.SetResume(text)
	return nil
}

func (a *Assistant) SetJobDescription(text string) {
	a.store.SetJobDescription(cleaner.JobDescription(text))
}

func (a *Assistant) Score() (types.ScoreCard, error) {
	resume, err := a.resume()
	if err != nil {
		return types.ScoreCard{}, err
	}
	return score.Score(resume), nil
}

// Analyze runs the strict-JSON mode: prompt, one generation round trip,
// strict decode. A decode failure comes back as *errors.DecodeError with
// the raw text preserved; no partial result is ever synthesized.
func (a *Assistant) Analyze(ctx context.Context, question string) (*types.AnalysisResult, error) {
	resume, err := a.resume()
	if err != nil {
		return nil, err
	}

	p := prompt.Build(resume, a.store.JobDescription(), question, types.ModeAnalyze)
	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	raw, err := a.gen.Generate(ctx, p, prompt.Params(types.ModeAnalyze))
	if err != nil {
		return nil, err
	}
	return decode.Analysis(raw)
}

// Generate runs one of the free-text modes. The response contract is the
// identity: whatever the model said is the artifact.
func (a *Assistant) Generate(ctx context.Context, mode types.Mode) (string, error) {
	if !prompt.Known(mode) || prompt.ContractFor(mode) != prompt.ContractText {
		return "", errors.ErrBadRequest(fmt.Sprintf("unknown generation mode %q", mode))
	}
	resume, err := a.resume()
	if err != nil {
		return "", err
	}

	p := prompt.Build(resume, a.store.JobDescription(), "", mode)
	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	return a.gen.Generate(ctx, p, prompt.Params(mode))
}

// Chat answers a free-form question about the resume. The user turn is
// appended before the call and an assistant turn after it no matter what
// happened: a failed call stores the error text as the reply, so the log
// always holds a response for every question.
func (a *Assistant) Chat(ctx context.Context, message string) string {
	a.store.AppendTurn(types.RoleUser, message)

	reply := a.answer(ctx, message)
	a.store.AppendTurn(types.RoleAssistant, reply)
	return reply
}

func (a *Assistant) answer(ctx context.Context, message string) string {
	resume, err := a.resume()
	if err != nil {
		return "I need a resume first. Upload a file or paste the text, then ask again."
	}

	p := prompt.Build(resume, a.store.JobDescription(), message, types.ModeAnalyze)
	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	raw, err := a.gen.Generate(ctx, p, prompt.ChatParams())
	if err != nil {
		return fmt.Sprintf("Oops, something went wrong: %v", err)
	}
	return raw
}

// SaveVersion stores a rewritten resume under a label, last write wins.
func (a *Assistant) SaveVersion(label, text string) (bool, error) {
	if isBlank(label) {
		return false, errors.ErrBadRequest("version label is empty")
	}
	if isBlank(text) {
		return false, errors.ErrBadRequest("version text is empty")
	}
	overwritten := a.store.SaveVersion(label, text)
	slog.Info("resume version saved", "label", label, "overwritten", overwritten)
	return overwritten, nil
}

// ExportVersion renders a saved version as PDF or DOCX bytes.
func (a *Assistant) ExportVersion(label, format string) ([]byte, error) {
	text, ok := a.store.Version(label)
	if !ok {
		return nil, errors.ErrNotFound(fmt.Sprintf("no saved version %q", label))
	}
	return a.renderer.Export(text, format)
}

func (a *Assistant) resume() (string, error) {
	resume := a.store.Resume()
	if isBlank(resume) {
		return "", errors.ErrBadRequest("no resume loaded; upload a file or paste text first")
	}
	return resume, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
