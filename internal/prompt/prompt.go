package prompt

import (
	"strings"

	"careerpilot/pkg/types"
)

// Contract says how a mode's response must be decoded.
type Contract int

const (
	// ContractText responses are taken as-is.
	ContractText Contract = iota
	// ContractJSON responses must parse as a strict JSON object.
	ContractJSON
)

type modeSpec struct {
	Instruction string
	Contract    Contract
	Temperature float32
	MaxTokens   int
}

const maxOutputTokens = 512

// Adding a mode means adding a row here; nothing else dispatches on the
// mode value.
var modes = map[types.Mode]modeSpec{
	types.ModeAnalyze: {
		Instruction: "Analyze the resume and return ONLY valid JSON (no markdown, no explanation, no code block) with keys: " +
			"assessment, strengths, weaknesses, rewritten_bullets, job_titles, freelance_ideas, keywords, rewritten_resume, bullet_resume, email_summary.",
		Contract:    ContractJSON,
		Temperature: 0.2,
		MaxTokens:   maxOutputTokens,
	},
	types.ModeCoverLetter: {
		Instruction: "Generate a tailored cover letter based on the resume and job description. Use a professional tone.",
		Contract:    ContractText,
		MaxTokens:   maxOutputTokens,
	},
	types.ModeLinkedIn: {
		Instruction: "Suggest LinkedIn headline, summary, and experience section updates based on the resume.",
		Contract:    ContractText,
		MaxTokens:   maxOutputTokens,
	},
	types.ModeInterview: {
		Instruction: "Generate 5 personalized interview questions and suggested answers based on the resume and job description.",
		Contract:    ContractText,
		MaxTokens:   maxOutputTokens,
	},
}

func Known(mode types.Mode) bool {
	_, ok := modes[mode]
	return ok
}

func ContractFor(mode types.Mode) Contract {
	return modes[mode].Contract
}

func Params(mode types.Mode) types.GenerationParams {
	spec := modes[mode]
	return types.GenerationParams{
		Temperature: spec.Temperature,
		MaxTokens:   spec.MaxTokens,
	}
}

// ChatParams are for conversational turns: default temperature, same
// output ceiling as the generation modes.
func ChatParams() types.GenerationParams {
	return types.GenerationParams{MaxTokens: maxOutputTokens}
}

// Build composes the single prompt for one generation request. The order
// is fixed: preamble, mode instructions, job description (if any), user
// question (if any), resume text last. The model conditions most heavily
// on trailing context, so the resume always closes the prompt.
func Build(resumeText, jobDescription, userQuestion string, mode types.Mode) string {
	var b strings.Builder
	b.WriteString("You are an expert career assistant. Mode: ")
	b.WriteString(string(mode))
	b.WriteString(".\nPlease keep your response as concise as possible.\n")
	b.WriteString(modes[mode].Instruction)
	b.WriteString("\n")
	if jobDescription != "" {
		b.WriteString("Job Description:\n")
		b.WriteString(jobDescription)
		b.WriteString("\n")
	}
	if userQuestion != "" {
		b.WriteString("User Question:\n")
		b.WriteString(userQuestion)
		b.WriteString("\n")
	}
	b.WriteString("Resume Text:\n")
	b.WriteString(resumeText)
	return b.String()
}
