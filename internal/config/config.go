package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Provider    string `yaml:"provider"`
	OpenAIModel string `yaml:"openai_model"`
	GeminiModel string `yaml:"gemini_model"`
	Port        int    `yaml:"port"`
	PandocPath  string `yaml:"pandoc_path"`

	// Secrets come only from the environment.
	OpenAIKey string `yaml:"-"`
	GeminiKey string `yaml:"-"`
}

func defaults() *Config {
	return &Config{
		Provider:    ProviderOpenAI,
		OpenAIModel: "gpt-3.5-turbo",
		GeminiModel: "gemini-2.0-flash",
		Port:        8080,
		PandocPath:  "pandoc",
	}
}

// Load reads an optional YAML config file and overlays environment
// variables on top. A missing file is fine; a broken one is not.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %w", v, err)
		}
		cfg.Port = port
	}
	cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.GeminiKey = os.Getenv("GEMINI_KEY")

	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY not set in environment")
		}
	case ProviderGemini:
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_KEY not set in environment")
		}
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}

	return cfg, nil
}
