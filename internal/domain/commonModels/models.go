package commonModels

type DocType string

var PDF DocType = "PDF"
var DOCX DocType = "DOCX"
var TXT DocType = "TXT"
var ERR DocType = "ERROR"

// RawDocument is an uploaded file as handed to text extraction. It lives for one call.
type RawDocument struct {
	Name string
	Data []byte
}
