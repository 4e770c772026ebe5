package types

import "time"

// Mode selects the generation intent. Each mode has its own prompt
// instructions and response contract in internal/prompt.
type Mode string

const (
	ModeAnalyze     Mode = "analyze"
	ModeCoverLetter Mode = "cover_letter"
	ModeLinkedIn    Mode = "linkedin"
	ModeInterview   Mode = "interview"
)

// GenerationParams tune a single completion request. A zero Temperature
// means "use the provider default".
type GenerationParams struct {
	Temperature float32
	MaxTokens   int
}

// AnalysisResult is the structured outcome of an analyze-mode request.
// Every field is optional; the model may leave any of them empty.
type AnalysisResult struct {
	Assessment       string   `json:"assessment"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	RewrittenBullets []string `json:"rewritten_bullets"`
	JobTitles        []string `json:"job_titles"`
	FreelanceIdeas   []string `json:"freelance_ideas"`
	Keywords         []string `json:"keywords"`
	RewrittenResume  string   `json:"rewritten_resume"`
	BulletResume     string   `json:"bullet_resume"`
	EmailSummary     string   `json:"email_summary"`
}

// ScoreCard is the keyword-heuristic resume score. Total is always the
// sum of the three categories.
type ScoreCard struct {
	Contact    int `json:"contact"`
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Total      int `json:"total"`
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatTurn is one message in the running conversation log.
type ChatTurn struct {
	Role    Role      `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// ResumeVersion is a user-labeled snapshot of a rewritten resume.
type ResumeVersion struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}
