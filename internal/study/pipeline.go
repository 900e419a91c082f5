package study

import (
	"context"
	"errors"

	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/domain/commonModels"
	"github.com/akolanti/StudyAPI/internal/metrics"
	"github.com/akolanti/StudyAPI/internal/study/extract"
	"github.com/akolanti/StudyAPI/internal/study/flashcards"
	"github.com/akolanti/StudyAPI/internal/study/summarize"
	"github.com/akolanti/StudyAPI/internal/study/textproc"
)

// Pipeline bundles the three text stages with the limits from the pipeline config.
// It is shared by the worker jobs and the command line tool.
type Pipeline struct {
	extractor    *extract.Extractor
	summarizer   *summarize.Summarizer
	maxCards     int
	maxTextRunes int
}

func NewPipeline(cfg config.Pipeline) *Pipeline {
	return NewPipelineWithParser(cfg, extract.PDFParser{})
}

func NewPipelineWithParser(cfg config.Pipeline, parser extract.Parser) *Pipeline {
	return &Pipeline{
		extractor:    extract.NewExtractorWithParser(parser, cfg.PageTimeout),
		summarizer:   summarize.NewSummarizer(cfg.SummaryPerSection, cfg.SummaryFallback),
		maxCards:     cfg.MaxCards,
		maxTextRunes: cfg.MaxTextRunes,
	}
}

// Text extracts and size-bounds the text of an uploaded document.
func (p *Pipeline) Text(ctx context.Context, doc commonModels.RawDocument) (string, error) {
	text, err := p.extractor.Document(ctx, doc)

	outcome := "ok"
	var extractionErr *extract.ExtractionError
	switch {
	case errors.As(err, &extractionErr):
		outcome = "unreadable"
	case err != nil:
		outcome = "error"
	case text == "":
		outcome = "empty"
	}
	metrics.CaptureDocumentExtraction(string(extract.GetDocType(doc.Name)), outcome)

	if err != nil {
		return "", err
	}
	return textproc.Clamp(text, p.maxTextRunes), nil
}

func (p *Pipeline) Summary(text string) string {
	return p.summarizer.Summarize(text)
}

// Cards generates up to count flashcards; count outside 1..max uses the configured max.
func (p *Pipeline) Cards(text string, count int) []flashcards.Card {
	if count <= 0 || count > p.maxCards {
		count = p.maxCards
	}
	return flashcards.Generate(text, count)
}
