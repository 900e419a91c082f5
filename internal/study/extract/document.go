package extract

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/akolanti/StudyAPI/internal/domain/commonModels"
	"github.com/lu4p/cat"
)

func GetDocType(name string) commonModels.DocType {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return commonModels.PDF
	case ".docx", ".odt", ".rtf":
		return commonModels.DOCX
	case ".txt":
		return commonModels.TXT
	default:
		return commonModels.ERR
	}
}

// Document extracts the text of an upload, choosing the reader from its file name.
// Office and plain text files go through github.com/lu4p/cat.
func (e *Extractor) Document(ctx context.Context, doc commonModels.RawDocument) (string, error) {
	switch GetDocType(doc.Name) {
	case commonModels.PDF:
		return e.Extract(ctx, doc.Data)
	case commonModels.DOCX, commonModels.TXT:
		if len(doc.Data) == 0 {
			return "", nil
		}
		text, err := cat.FromBytes(doc.Data)
		if err != nil {
			return "", &ExtractionError{Reason: "could not read document", Err: err}
		}
		return Clean(text), nil
	default:
		return "", &ExtractionError{Reason: "unsupported document type " + filepath.Ext(doc.Name)}
	}
}
