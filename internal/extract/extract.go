// Package extract pulls plain text out of resume documents on disk.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

var (
	paragraphEnd = regexp.MustCompile(`</w:p>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
)

// Supported reports whether FromFile can read files with this name.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".pdf", ".docx":
		return true
	default:
		return false
	}
}

// FromFile returns the text of a .txt, .md, .pdf or .docx file.
func FromFile(path string) (string, error) {
	if !Supported(path) {
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	text, err := FromBytes(filepath.Ext(path), data)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", path, err)
	}
	return text, nil
}

// FromBytes extracts text given a file extension such as ".pdf".
func FromBytes(ext string, data []byte) (string, error) {
	switch strings.ToLower(ext) {
	case ".txt", ".md":
		return string(data), nil

	case ".pdf":
		return extractPDFText(data)

	case ".docx":
		return extractDocxText(data)

	default:
		return "", fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}
}

func extractPDFText(data []byte) (_ string, err error) {
	// the pdf reader panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to read pdf: %v", r)
		}
	}()

	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	// GetContent returns the document XML, not text.
	content := doc.Editable().GetContent()
	content = paragraphEnd.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}

// Document is one file from a resume directory.
type Document struct {
	Name string
	Text string
	Err  error
}

// Dir reads every supported file in dir, sorted by name. Files that fail to
// extract keep their position with Err set and empty Text.
func Dir(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !Supported(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	documents := make([]Document, 0, len(names))
	for _, name := range names {
		text, err := FromFile(filepath.Join(dir, name))
		documents = append(documents, Document{Name: name, Text: text, Err: err})
	}
	return documents, nil
}

// Texts returns the text of each document in order, for ranking.
func Texts(documents []Document) []string {
	texts := make([]string, len(documents))
	for i, doc := range documents {
		texts[i] = doc.Text
	}
	return texts
}
