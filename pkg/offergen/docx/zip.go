package docx

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// DocumentPart is the main body part of a Word package.
const DocumentPart = "word/document.xml"

// ErrNotDocx is returned for zip files without a Word document body.
var ErrNotDocx = errors.New("docx: word/document.xml not found")

// readZipFile returns the content of a package part, or nil when absent.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// isTextPart reports whether a package part carries document text that can hold placeholders.
func isTextPart(name string) bool {
	if name == DocumentPart || name == "word/footnotes.xml" || name == "word/endnotes.xml" {
		return true
	}
	dir, file := path.Split(name)
	if dir != "word/" || !strings.HasSuffix(file, ".xml") {
		return false
	}
	return strings.HasPrefix(file, "header") || strings.HasPrefix(file, "footer")
}

// textParts reads every text part of a package, document body first.
func textParts(r *zip.Reader) ([][]byte, error) {
	body, err := readZipFile(r, DocumentPart)
	if err != nil {
		return nil, fmt.Errorf("docx: read %s: %w", DocumentPart, err)
	}
	if body == nil {
		return nil, ErrNotDocx
	}

	parts := [][]byte{body}
	for _, f := range r.File {
		if f.Name == DocumentPart || !isTextPart(f.Name) {
			continue
		}
		data, err := readZipFile(r, f.Name)
		if err != nil {
			return nil, fmt.Errorf("docx: read %s: %w", f.Name, err)
		}
		parts = append(parts, data)
	}
	return parts, nil
}
