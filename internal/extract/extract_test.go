package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpilot/pkg/errors"
)

func TestTextPlainPassthrough(t *testing.T) {
	text, err := Text("resume.txt", []byte("Jane Doe\nexperience"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nexperience", text)
}

func TestTextNoExtensionTreatedAsPlain(t *testing.T) {
	text, err := Text("resume", []byte("pasted text"))
	require.NoError(t, err)
	assert.Equal(t, "pasted text", text)
}

func TestTextWhitespaceOnlyFails(t *testing.T) {
	_, err := Text("resume.txt", []byte("  \n\t "))

	var extractErr *errors.ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Contains(t, extractErr.Reason, "no usable text")
}

func TestTextUnsupportedType(t *testing.T) {
	_, err := Text("resume.odt", []byte("whatever"))

	var extractErr *errors.ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Contains(t, extractErr.Reason, "unsupported file type")
}

func TestTextCorruptPDF(t *testing.T) {
	_, err := Text("resume.pdf", []byte("not a pdf"))

	var extractErr *errors.ExtractionError
	require.ErrorAs(t, err, &extractErr)
}
