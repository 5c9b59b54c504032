package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestExtractText_PlainText(t *testing.T) {
	parser := NewResumeParserService()

	path := writeTempFile(t, "resume.txt", []byte("Jane Doe\nSoftware Engineer\n"))

	text, err := parser.ExtractText(path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSoftware Engineer\n", text)
}

func TestExtractText_MarkdownTreatedAsText(t *testing.T) {
	parser := NewResumeParserService()

	path := writeTempFile(t, "resume.md", []byte("# Jane Doe\n\n- Go\n- SQL\n"))

	text, err := parser.ExtractText(path)

	require.NoError(t, err)
	assert.Contains(t, text, "# Jane Doe")
}

func TestExtractText_InvalidUTF8(t *testing.T) {
	parser := NewResumeParserService()

	path := writeTempFile(t, "resume.docx", []byte{0xff, 0xfe, 0x00, 0x41})

	_, err := parser.ExtractText(path)

	assert.Error(t, err)
}

func TestExtractText_MissingFile(t *testing.T) {
	parser := NewResumeParserService()

	_, err := parser.ExtractText(filepath.Join(t.TempDir(), "nope.txt"))

	assert.Error(t, err)
}

func TestExtractText_CorruptPDF(t *testing.T) {
	parser := NewResumeParserService()

	path := writeTempFile(t, "resume.pdf", []byte("this is not a pdf"))

	_, err := parser.ExtractText(path)

	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	in := "  Jane Doe  \n\n\n  Engineer \n\n"
	assert.Equal(t, "Jane Doe\nEngineer", CleanText(in))
}
