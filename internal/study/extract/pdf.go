package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/metrics"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
	"github.com/dslipak/pdf"
)

// PageSource yields the text of one page at a time; pages fail independently.
type PageSource interface {
	NumPage() int
	PageText(n int) (string, error)
}

type Parser interface {
	Open(data []byte) (PageSource, error)
}

type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return e.Reason
	}
	return e.Reason + ": " + e.Err.Error()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

var errPageTimeout = errors.New("page extraction timed out")

type Extractor struct {
	parser      Parser
	pageTimeout time.Duration
}

func NewExtractor(pageTimeout time.Duration) *Extractor {
	return NewExtractorWithParser(PDFParser{}, pageTimeout)
}

func NewExtractorWithParser(parser Parser, pageTimeout time.Duration) *Extractor {
	if pageTimeout <= 0 {
		pageTimeout = config.DefaultPageTimeout
	}
	return &Extractor{parser: parser, pageTimeout: pageTimeout}
}

// Extract returns the cleaned text of every page of a pdf. Empty input gives empty
// text. A page that fails or times out contributes an empty line instead of aborting.
func (e *Extractor) Extract(ctx context.Context, data []byte) (string, error) {
	logger := logger_i.NewLogger("Text Extraction").WithTrace(ctx)
	if len(data) == 0 {
		return "", nil
	}

	src, err := e.parser.Open(data)
	if err != nil {
		logger.Error("failed opening pdf", "error", err)
		return "", &ExtractionError{Reason: "could not parse pdf", Err: err}
	}

	numPages := src.NumPage()
	logger.Debug("extracting pdf", "pages", numPages)
	pages := make([]string, 0, numPages)
	for n := 1; n <= numPages; n++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := e.protectExtract(ctx, src, n)
		if err != nil {
			logger.Warn("error parsing page content, using empty page", "page", n, "error", err)
			metrics.IncrementPageExtractionFailures()
			text = ""
		}
		pages = append(pages, text)
	}
	return Clean(strings.Join(pages, "\n")), nil
}

func (e *Extractor) protectExtract(ctx context.Context, src PageSource, n int) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resChan <- result{err: fmt.Errorf("page %d panicked: %v", n, r)}
			}
		}()
		content, err := src.PageText(n)
		resChan <- result{content, err}
	}()

	timer := time.NewTimer(e.pageTimeout)
	defer timer.Stop()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-timer.C:
		return "", errPageTimeout
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// PDFParser reads pdfs with github.com/dslipak/pdf. The library panics on some
// malformed input, so every call into it is guarded.
type PDFParser struct{}

func (PDFParser) Open(data []byte) (src PageSource, err error) {
	defer func() {
		if r := recover(); r != nil {
			src, err = nil, fmt.Errorf("pdf reader panicked: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	return &pdfPages{data: data, count: reader.NumPage()}, nil
}

// pdfPages gives every PageText call its own reader. A page that outlives its timeout
// keeps running in the background and must not share parser state with later pages.
type pdfPages struct {
	data  []byte
	count int
}

func (p *pdfPages) NumPage() int {
	return p.count
}

func (p *pdfPages) pageReader() (*pdf.Reader, error) {
	return pdf.NewReader(bytes.NewReader(p.data), int64(len(p.data)))
}

func (p *pdfPages) PageText(n int) (string, error) {
	reader, err := p.pageReader()
	if err != nil {
		return "", err
	}
	page := reader.Page(n)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}
