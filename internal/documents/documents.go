// Package documents reads the text of CVs and job postings from files.
package documents

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFormat is returned for file extensions other than .pdf, .docx, .txt and .md.
var ErrUnsupportedFormat = errors.New("unsupported document format")

var (
	xmlTags      = regexp.MustCompile(`<[^>]+>`)
	spaceRuns    = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRuns  = regexp.MustCompile(`\n{3,}`)
	paragraphEnd = strings.NewReplacer("</w:p>", "\n", "<w:tab/>", "\t", "<w:br/>", "\n")
)

// ReadFile returns the plain text of the document at path.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return Read(filepath.Base(path), data)
}

// Read extracts plain text from data, choosing the format by the extension of name.
func Read(name string, data []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".pdf":
		text, err = readPDF(data)
	case ".docx":
		text, err = readDocx(data)
	case ".txt", ".md", "":
		text = string(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return "", fmt.Errorf("extract text from %s: %w", name, err)
	}

	return cleanText(text), nil
}

func readPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func readDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return docxText(doc.Editable().GetContent()), nil
}

// docxText turns the document.xml body into text, one line per paragraph.
func docxText(content string) string {
	content = paragraphEnd.Replace(content)
	content = xmlTags.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}

func cleanText(s string) string {
	s = strings.ToValidUTF8(s, "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = spaceRuns.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")

	s = newlineRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
