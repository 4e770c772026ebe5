package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"careerpilot/pkg/errors"
)

// Text pulls plain text out of an uploaded resume document. Supported
// containers are PDF, DOCX and plain text. A document that parses but
// yields only whitespace is an extraction failure: an empty resume must
// never reach the prompt builder.
func Text(filename string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = pdfText(data)
	case ".docx":
		text, err = docxText(data)
	case ".txt", "":
		text = string(data)
	default:
		return "", &errors.ExtractionError{
			Reason: fmt.Sprintf("unsupported file type %q", filepath.Ext(filename)),
		}
	}
	if err != nil {
		return "", &errors.ExtractionError{Reason: err.Error()}
	}
	if strings.TrimSpace(text) == "" {
		return "", &errors.ExtractionError{Reason: "no usable text in document"}
	}
	return text, nil
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		b.WriteString(text)
	}
	return b.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
