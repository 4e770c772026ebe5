package render

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

// Renderer turns a finished text artifact into a downloadable document by
// shelling out to pandoc. The core only hands off plain text and reads
// back bytes; layout is pandoc's problem.
type Renderer struct {
	pandoc string
}

func New(pandocPath string) *Renderer {
	return &Renderer{pandoc: pandocPath}
}

func (r *Renderer) Export(text, format string) ([]byte, error) {
	if format != "pdf" && format != "docx" {
		return nil, fmt.Errorf("unsupported export format %q", format)
	}

	dir, err := os.MkdirTemp("", "careerpilot-export-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(dir)

	srcPath := filepath.Join(dir, "artifact.txt")
	if err := os.WriteFile(srcPath, []byte(text), 0644); err != nil {
		return nil, fmt.Errorf("failed to write artifact text: %w", err)
	}

	outPath := filepath.Join(dir, "artifact."+format)
	cmd := exec.Command(r.pandoc, srcPath, "-o", outPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		slog.Error("pandoc command failed", "error", err, "output", string(output))
		return nil, fmt.Errorf("pandoc command failed: %w, output: %s", err, string(output))
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("expected output not found at %s: %w", outPath, err)
	}
	return data, nil
}
