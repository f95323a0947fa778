package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner fakes pdftoppm by writing page images and tesseract by returning
// canned text per page.
type stubRunner struct {
	pages    int
	pageText map[string]string
	calls    []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name)
	switch name {
	case "pdftoppm":
		prefix := args[len(args)-1]
		for i := 1; i <= s.pages; i++ {
			p := fmt.Sprintf("%s-%d.png", prefix, i)
			if err := os.WriteFile(p, []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case "tesseract":
		base := filepath.Base(args[0])
		if txt, ok := s.pageText[base]; ok {
			return []byte(txt), nil, nil
		}
		return []byte("fallback text"), nil, nil
	}
	return nil, nil, fmt.Errorf("unexpected command %q", name)
}

func TestExtract_PDFMultiPage(t *testing.T) {
	runner := &stubRunner{
		pages: 2,
		pageText: map[string]string{
			"page-1.png": "Yhteensä: 203,75 EUR\r\n\r\n\r\n",
			"page-2.png": "Mittarilukema: 387551",
		},
	}
	e := NewExtractor(Config{}, nil)
	e.runner = runner

	res, err := e.Extract(context.Background(), "/tmp/receipt.pdf")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, "pdf-ocr", res.Method)
	assert.Equal(t, "fin+eng", res.Language)
	assert.Contains(t, res.Text, "Yhteensä: 203,75 EUR")
	assert.Contains(t, res.Text, "Mittarilukema: 387551")
	assert.Contains(t, res.Text, "\f")
}

func TestExtract_Image(t *testing.T) {
	runner := &stubRunner{pageText: map[string]string{"kuitti.png": "EUROMASTER 89,90 €"}}
	e := NewExtractor(Config{}, nil)
	e.runner = runner

	res, err := e.Extract(context.Background(), "/tmp/kuitti.png")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, "EUROMASTER 89,90 €", res.Text)
	assert.Equal(t, []string{"tesseract"}, runner.calls)
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), "/tmp/file.docx")
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	in := "line one  \r\nline two\r\n\r\n\r\n\r\nline three\n"
	assert.Equal(t, "line one\nline two\n\nline three", Normalize(in))
}
