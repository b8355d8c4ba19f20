// Package extract converts uploaded resume documents into plain text.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MIME types accepted by Text.
const (
	TypePDF   = "application/pdf"
	TypeDocx  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	TypePlain = "text/plain"
)

// Document holds the text pulled out of an uploaded file.
type Document struct {
	Text  string
	Kind  string // "pdf", "docx", or "text"
	Pages int    // PDF page count; 0 for other kinds
}

// DocumentError indicates the document could not be opened, typically an
// encrypted or corrupt file.
type DocumentError struct {
	Kind  string
	Cause error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("cannot open %s document (encrypted or corrupt): %v", e.Kind, e.Cause)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// UnsupportedTypeError indicates an upload with a MIME type we do not handle.
type UnsupportedTypeError struct {
	ContentType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.ContentType)
}

// Text extracts plain text from document bytes based on the declared content type.
func Text(data []byte, contentType string) (*Document, error) {
	// Strip any "; charset=..." suffix browsers attach.
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}

	switch strings.TrimSpace(contentType) {
	case TypePDF:
		return pdfText(data)
	case TypeDocx:
		return docxText(data)
	case TypePlain:
		return &Document{Text: string(data), Kind: "text"}, nil
	default:
		return nil, &UnsupportedTypeError{ContentType: contentType}
	}
}

func pdfText(data []byte) (*Document, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &DocumentError{Kind: "pdf", Cause: err}
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Pages with undecodable content streams are skipped; a fully
			// unreadable document surfaces as empty text downstream.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n\n")
	}

	return &Document{Text: sb.String(), Kind: "pdf", Pages: numPages}, nil
}

func docxText(data []byte) (*Document, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &DocumentError{Kind: "docx", Cause: err}
	}
	defer doc.Close()

	return &Document{Text: doc.Editable().GetContent(), Kind: "docx"}, nil
}
