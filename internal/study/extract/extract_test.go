package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/akolanti/StudyAPI/internal/domain/commonModels"
)

// --- Fakes ---

type fakeParser struct {
	src PageSource
	err error
}

func (f fakeParser) Open(data []byte) (PageSource, error) {
	return f.src, f.err
}

type fakePages struct {
	pages   []string
	onPage2 func() (string, error)
}

func (f *fakePages) NumPage() int { return len(f.pages) }

func (f *fakePages) PageText(n int) (string, error) {
	if n == 2 && f.onPage2 != nil {
		return f.onPage2()
	}
	return f.pages[n-1], nil
}

// minimalPDF writes a one page pdf showing text in Helvetica.
func minimalPDF(text string) []byte {
	content := fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return b.Bytes()
}

// --- Unit Tests ---

func TestExtract_EmptyInput(t *testing.T) {
	e := NewExtractorWithParser(fakeParser{err: errors.New("should not be called")}, time.Second)
	got, err := e.Extract(context.Background(), nil)
	if err != nil || got != "" {
		t.Errorf("Extract(nil) = %q, %v; want empty, nil", got, err)
	}
}

func TestExtract_BadPageIsSkipped(t *testing.T) {
	tests := []struct {
		name    string
		onPage2 func() (string, error)
	}{
		{"error", func() (string, error) { return "", errors.New("corrupt stream") }},
		{"panic", func() (string, error) { panic("bad xref") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakePages{pages: []string{"First page.", "", "Third page."}, onPage2: tt.onPage2}
			e := NewExtractorWithParser(fakeParser{src: src}, time.Second)

			got, err := e.Extract(context.Background(), []byte("pdf"))
			if err != nil {
				t.Fatalf("Extract returned error: %v", err)
			}
			if got != "First page.\n\nThird page." {
				t.Errorf("Extract = %q", got)
			}
		})
	}
}

func TestExtract_PageTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	src := &fakePages{
		pages: []string{"Fast page.", "", "Also fast."},
		onPage2: func() (string, error) {
			<-release
			return "late", nil
		},
	}
	e := NewExtractorWithParser(fakeParser{src: src}, 20*time.Millisecond)

	got, err := e.Extract(context.Background(), []byte("pdf"))
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if strings.Contains(got, "late") || !strings.Contains(got, "Also fast.") {
		t.Errorf("Extract = %q", got)
	}
}

func TestExtract_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := NewExtractorWithParser(fakeParser{src: &fakePages{pages: []string{"a"}}}, time.Second)

	if _, err := e.Extract(ctx, []byte("pdf")); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestExtract_UnparseableInput(t *testing.T) {
	e := NewExtractor(time.Second)
	_, err := e.Extract(context.Background(), []byte("this is not a pdf document at all"))

	var extractionErr *ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
}

func TestExtract_RealPDF(t *testing.T) {
	e := NewExtractor(time.Second)
	got, err := e.Extract(context.Background(), minimalPDF("Hello World"))
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if !strings.Contains(got, "Hello") {
		t.Errorf("Extract = %q; want it to contain Hello", got)
	}
}

func TestPDFParser_PagesDoNotShareReader(t *testing.T) {
	src, err := PDFParser{}.Open(minimalPDF("Hello World"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	pages := src.(*pdfPages)

	first, err := pages.pageReader()
	if err != nil {
		t.Fatalf("pageReader returned error: %v", err)
	}
	second, err := pages.pageReader()
	if err != nil {
		t.Fatalf("pageReader returned error: %v", err)
	}
	if first == second {
		t.Error("each page call should get its own reader")
	}

	var wg sync.WaitGroup
	texts := make([]string, 4)
	for i := range texts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			texts[i], _ = pages.PageText(1)
		}(i)
	}
	wg.Wait()
	for i, text := range texts {
		if !strings.Contains(text, "Hello") {
			t.Errorf("concurrent read %d = %q; want it to contain Hello", i, text)
		}
	}
}

func TestClean(t *testing.T) {
	in := "  \n\n  Title  \n\n\n\nBody line one   \n   Body line two\n\n\n  "
	want := "Title\n\nBody line one\nBody line two"
	if got := Clean(in); got != want {
		t.Errorf("Clean = %q; want %q", got, want)
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"single",
		"\r\n a \r\n\r\n\r\n b \r c",
		"\n\n\n x \n\n\n\n y \n\n\n",
		"  tabs\t\t\n\t\n\t\nend  ",
	}
	for _, in := range inputs {
		once := Clean(in)
		if twice := Clean(once); twice != once {
			t.Errorf("Clean not idempotent for %q: %q then %q", in, once, twice)
		}
		if strings.Contains(once, "\n\n\n") {
			t.Errorf("Clean(%q) kept a blank run: %q", in, once)
		}
	}
}

func TestGetDocType(t *testing.T) {
	tests := []struct {
		path     string
		expected commonModels.DocType
	}{
		{"test.pdf", commonModels.PDF},
		{"DOC.DOCX", commonModels.DOCX},
		{"lab.odt", commonModels.DOCX},
		{"notes.txt", commonModels.TXT},
		{"image.png", commonModels.ERR},
		{"noext", commonModels.ERR},
	}

	for _, tt := range tests {
		if got := GetDocType(tt.path); got != tt.expected {
			t.Errorf("GetDocType(%s) = %v; want %v", tt.path, got, tt.expected)
		}
	}
}

func TestDocument_Dispatch(t *testing.T) {
	src := &fakePages{pages: []string{"Slide one"}}
	e := NewExtractorWithParser(fakeParser{src: src}, time.Second)

	got, err := e.Document(context.Background(), commonModels.RawDocument{Name: "Lecture.PDF", Data: []byte("pdf")})
	if err != nil || got != "Slide one" {
		t.Errorf("Document(pdf) = %q, %v", got, err)
	}

	_, err = e.Document(context.Background(), commonModels.RawDocument{Name: "photo.png", Data: []byte{1}})
	var extractionErr *ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Errorf("expected ExtractionError for png, got %v", err)
	}

	got, err = e.Document(context.Background(), commonModels.RawDocument{Name: "empty.txt"})
	if err != nil || got != "" {
		t.Errorf("Document(empty txt) = %q, %v", got, err)
	}
}
