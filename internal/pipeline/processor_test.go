package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkarvonen/huoltokirja/constants"
	"github.com/tkarvonen/huoltokirja/internal/common"
	"github.com/tkarvonen/huoltokirja/internal/entity"
	"github.com/tkarvonen/huoltokirja/internal/extract"
	"github.com/tkarvonen/huoltokirja/internal/llm"
	"github.com/tkarvonen/huoltokirja/internal/parser"
)

type stubOCR struct {
	text string
	err  error
}

func (s stubOCR) Extract(context.Context, string) (extract.TextExtractionResult, error) {
	if s.err != nil {
		return extract.TextExtractionResult{}, s.err
	}
	return extract.TextExtractionResult{
		Text: s.text, Pages: 1, Method: "pdf-ocr", Language: "fin+eng",
	}, nil
}

type stubLLM struct {
	fields entity.FieldSet
	err    error
	calls  int
}

func (s *stubLLM) ExtractFields(context.Context, llm.ExtractRequest) (entity.FieldSet, []byte, error) {
	s.calls++
	return s.fields, nil, s.err
}

type recordedRun struct {
	doc    entity.Document
	mode   constants.PipelineMode
	status constants.RunStatus
}

type stubIndex struct {
	runs []recordedRun
}

func (s *stubIndex) RecordRun(_ context.Context, doc entity.Document, _ *entity.ExtractionResult, mode constants.PipelineMode, status constants.RunStatus) error {
	s.runs = append(s.runs, recordedRun{doc: doc, mode: mode, status: status})
	return nil
}

func newTestProcessor(t *testing.T, ocr extract.TextExtractor, fallback llm.FieldExtractor, index RunIndex) (*Processor, string) {
	t.Helper()
	outDir := t.TempDir()
	opts := parser.DefaultOptions()
	return NewProcessor(
		nil,
		ocr,
		parser.New(parser.DefaultRules(opts), nil),
		parser.NewVendorExtractor(opts, nil),
		fallback,
		NewArtifactStore(outDir),
		index,
	), outDir
}

func writeSource(t *testing.T, name string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 stub"), 0o644))
	return path
}

// serviceText carries every required field, so patterns alone complete it.
const serviceText = "Järvenpään Automajor\nLaskunro 12345678\nLaskupvm 15.03.21\nMittarilkm 2387551\nMAKSETTAVA YHTEENSÄ 203,75\n"

// noAmountText lacks any parseable total, leaving a required field for the
// fallback to fill.
const noAmountText = "Järvenpään Automajor\nLaskunro 12345678\nLaskupvm 15.03.21\nMittarilkm 2387551\n"

func TestProcessDocument_FullPipelineMerge(t *testing.T) {
	fallback := &stubLLM{fields: entity.FieldSet{
		constants.FieldDate:            "2099-01-01", // must not overwrite the pattern value
		constants.FieldAmount:          203.75,
		constants.FieldWorkDescription: []string{"Huolto"},
	}}
	index := &stubIndex{}
	p, _ := newTestProcessor(t, stubOCR{text: noAmountText}, fallback, index)

	res, err := p.ProcessDocument(context.Background(), writeSource(t, "huolto.pdf"), RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, fallback.calls)

	// Pattern values win; the fallback only fills gaps.
	assert.Equal(t, "2021-03-15", res.FinalData.String(constants.FieldDate))
	assert.Equal(t, 203.75, res.FinalData[constants.FieldAmount])
	assert.Equal(t, []string{"Huolto"}, res.FinalData.Strings(constants.FieldWorkDescription))
	assert.Equal(t, constants.StepParsing, res.Metadata.FieldSources[constants.FieldDate])
	assert.Equal(t, constants.StepLLM, res.Metadata.FieldSources[constants.FieldAmount])
	assert.Equal(t, constants.StepLLM, res.Metadata.FieldSources[constants.FieldWorkDescription])

	// Odometer repair applied through the vendor routine.
	km, ok := res.FinalData.Int(constants.FieldOdometerKM)
	require.True(t, ok)
	assert.Equal(t, 387551, km)

	require.Len(t, index.runs, 1)
	assert.Equal(t, constants.RunStatusPersisted, index.runs[0].status)
	assert.Contains(t, index.runs[0].doc.FileHash, "sha256:")
}

func TestProcessDocument_FallbackSkippedWhenRequiredComplete(t *testing.T) {
	fallback := &stubLLM{fields: entity.FieldSet{constants.FieldWorkDescription: []string{"Huolto"}}}
	p, _ := newTestProcessor(t, stubOCR{text: serviceText}, fallback, nil)

	res, err := p.ProcessDocument(context.Background(), writeSource(t, "huolto.pdf"), RunOptions{})
	require.NoError(t, err)

	// date, amount and company were all pattern-extracted, so the expensive
	// fallback must not run even though optional fields are still missing.
	assert.Equal(t, 0, fallback.calls)
	assert.Empty(t, res.FinalData.Missing(constants.RequiredFields))
	for f, src := range res.Metadata.FieldSources {
		assert.Equal(t, constants.StepParsing, src, f)
	}
}

func TestProcessDocument_EmptyOCRShortCircuits(t *testing.T) {
	index := &stubIndex{}
	fallback := &stubLLM{}
	p, _ := newTestProcessor(t, stubOCR{text: ""}, fallback, index)

	res, err := p.ProcessDocument(context.Background(), writeSource(t, "tyhja.pdf"), RunOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNoText))

	assert.Empty(t, res.FinalData)
	assert.NotEmpty(t, res.Metadata.Error)
	assert.Equal(t, 0, fallback.calls)
	require.Len(t, index.runs, 1)
	assert.Equal(t, constants.RunStatusFailed, index.runs[0].status)
}

func TestProcessDocument_LLMFailureIsNotFatal(t *testing.T) {
	fallback := &stubLLM{err: errors.New("api down")}
	p, _ := newTestProcessor(t, stubOCR{text: noAmountText}, fallback, nil)

	res, err := p.ProcessDocument(context.Background(), writeSource(t, "huolto.pdf"), RunOptions{})
	require.NoError(t, err)

	// Pattern results stand on their own when the fallback errors out.
	assert.Equal(t, "2021-03-15", res.FinalData.String(constants.FieldDate))
	assert.False(t, res.FinalData.Has(constants.FieldAmount))
	var llmStep *entity.ProcessingStep
	for i := range res.ProcessingSteps {
		if res.ProcessingSteps[i].StepName == constants.StepLLM {
			llmStep = &res.ProcessingSteps[i]
		}
	}
	require.NotNil(t, llmStep)
	assert.Equal(t, "api down", llmStep.Error)
}

func TestProcessDocument_Idempotent(t *testing.T) {
	fallback := &stubLLM{fields: entity.FieldSet{}}
	p, outDir := newTestProcessor(t, stubOCR{text: serviceText}, fallback, nil)
	src := writeSource(t, "huolto.pdf")

	_, err := p.ProcessDocument(context.Background(), src, RunOptions{})
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(outDir, "huolto", "data.json"))
	require.NoError(t, err)
	callsAfterFirst := fallback.calls

	// A second run without force must not touch the artifact or rerun stages.
	_, err = p.ProcessDocument(context.Background(), src, RunOptions{})
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(outDir, "huolto", "data.json"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, callsAfterFirst, fallback.calls)
}

func TestProcessDocument_OCROnlyMode(t *testing.T) {
	index := &stubIndex{}
	fallback := &stubLLM{}
	p, _ := newTestProcessor(t, stubOCR{text: serviceText}, fallback, index)

	res, err := p.ProcessDocument(context.Background(), writeSource(t, "huolto.pdf"), RunOptions{Mode: constants.ModeOCROnly})
	require.NoError(t, err)

	assert.Empty(t, res.FinalData)
	require.Len(t, res.ProcessingSteps, 1)
	assert.Equal(t, constants.StepOCR, res.ProcessingSteps[0].StepName)
	assert.Equal(t, 0, fallback.calls)
	require.Len(t, index.runs, 1)
	assert.Equal(t, constants.RunStatusOCRDone, index.runs[0].status)
}

func TestProcessDocument_PatternOnlyMode(t *testing.T) {
	index := &stubIndex{}
	fallback := &stubLLM{}
	p, _ := newTestProcessor(t, stubOCR{text: serviceText}, fallback, index)

	res, err := p.ProcessDocument(context.Background(), writeSource(t, "huolto.pdf"), RunOptions{Mode: constants.ModePatternOnly})
	require.NoError(t, err)

	assert.Equal(t, 0, fallback.calls)
	assert.Equal(t, 203.75, res.FinalData[constants.FieldAmount])
	require.Len(t, index.runs, 1)
	assert.Equal(t, constants.RunStatusPatternDone, index.runs[0].status)
}

func TestProcessDocument_LLMOnlyMode(t *testing.T) {
	index := &stubIndex{}
	fallback := &stubLLM{fields: entity.FieldSet{
		constants.FieldDate:    "2021-03-15",
		constants.FieldAmount:  203.75,
		constants.FieldCompany: "Järvenpään Automajor Oy",
	}}
	p, _ := newTestProcessor(t, stubOCR{text: serviceText}, fallback, index)

	res, err := p.ProcessDocument(context.Background(), writeSource(t, "huolto.pdf"), RunOptions{Mode: constants.ModeLLMOnly})
	require.NoError(t, err)

	assert.Equal(t, 1, fallback.calls)
	assert.Equal(t, constants.StepLLM, res.Metadata.FieldSources[constants.FieldAmount])
	for _, step := range res.ProcessingSteps {
		assert.NotEqual(t, constants.StepParsing, step.StepName)
	}
	require.Len(t, index.runs, 1)
	assert.Equal(t, constants.RunStatusFallbackDone, index.runs[0].status)
}

func TestProcessDocument_VendorReceiptsPersistedPerPage(t *testing.T) {
	// Two issuers across two OCR pages, separated by the rasterizer's
	// form-feed marker.
	text := serviceText + "\n\f\n" + "VEHO AUTOTALOT\nLaskun numero: 87654321\nPäivämäärä: 12.11.2015\nYhteensä: 412,90 EUR\n"
	p, outDir := newTestProcessor(t, stubOCR{text: text}, nil, nil)

	res, err := p.ProcessDocument(context.Background(), writeSource(t, "nippu.pdf"), RunOptions{Mode: constants.ModePatternOnly})
	require.NoError(t, err)

	var parsing *entity.ProcessingStep
	for i := range res.ProcessingSteps {
		if res.ProcessingSteps[i].StepName == constants.StepParsing {
			parsing = &res.ProcessingSteps[i]
		}
	}
	require.NotNil(t, parsing)

	receipts, ok := parsing.Output["vendor_receipts"].([]*entity.VendorReceipt)
	require.True(t, ok)
	require.Len(t, receipts, 2)

	assert.Equal(t, 1, receipts[0].PageNumber)
	assert.Equal(t, "Järvenpään Automajor Oy", receipts[0].Company)
	assert.Equal(t, float32(0.8), receipts[0].Confidence)
	assert.Equal(t, constants.ReceiptTypeService, receipts[0].Type)

	assert.Equal(t, 2, receipts[1].PageNumber)
	assert.Equal(t, "Veho Autotalot Oy", receipts[1].Company)
	require.NotNil(t, receipts[1].InvoiceNumber)
	assert.Equal(t, "87654321", *receipts[1].InvoiceNumber)

	// The records reach the artifact, not just the in-memory result.
	raw, err := os.ReadFile(filepath.Join(outDir, "nippu", "data.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"vendor_receipts"`)
	assert.Contains(t, string(raw), `"confidence_score"`)
	assert.Contains(t, string(raw), `"page_number": 2`)
}

func TestProcessDirectory(t *testing.T) {
	fallback := &stubLLM{fields: entity.FieldSet{}}
	p, outDir := newTestProcessor(t, stubOCR{text: serviceText}, fallback, nil)

	srcDir := t.TempDir()
	for _, name := range []string{"a.pdf", "b.pdf", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(srcDir, name), []byte("x"), 0o644))
	}

	res, err := p.ProcessDirectory(context.Background(), srcDir, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, BatchResult{Processed: 2}, res)

	// Second pass skips both.
	res, err = p.ProcessDirectory(context.Background(), srcDir, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, BatchResult{Skipped: 2}, res)

	assert.DirExists(t, filepath.Join(outDir, "a"))
	assert.DirExists(t, filepath.Join(outDir, "b"))
}

func TestArtifactStore_RoundTrip(t *testing.T) {
	store := NewArtifactStore(t.TempDir())
	res := &entity.ExtractionResult{
		FinalData: entity.FieldSet{constants.FieldAmount: 89.9},
		Metadata:  entity.Metadata{SourceFile: "kuitti.pdf"},
	}
	require.NoError(t, store.SaveResult("kuitti.pdf", res))
	require.True(t, store.Exists("kuitti.pdf"))

	got, err := store.LoadResult("kuitti.pdf")
	require.NoError(t, err)
	assert.Equal(t, "kuitti.pdf", got.Metadata.SourceFile)

	amt, ok := got.FinalData.Float(constants.FieldAmount)
	require.True(t, ok)
	assert.Equal(t, 89.9, amt)
}
