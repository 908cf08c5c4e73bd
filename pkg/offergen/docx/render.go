// Package docx fills {{ name }} placeholders in Word (.docx) templates.
//
// A .docx file is a zip package; only the parts carrying document text
// (body, headers, footers, foot- and endnotes) are rewritten, every other
// part is copied byte for byte.
package docx

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Renderer writes filled copies of .docx templates.
type Renderer struct {
	// OnMissing, when set, receives the placeholders of a template that had no value.
	OnMissing func(template string, names []string)
}

// Render fills templatePath with values and writes the result to outPath.
// The output is written to a temporary file in the same directory and renamed
// into place, so a failed render never leaves a partial file behind.
func (r Renderer) Render(templatePath, outPath string, values map[string]string) (err error) {
	zr, err := zip.OpenReader(templatePath)
	if err != nil {
		return fmt.Errorf("docx: open template: %w", err)
	}
	defer zr.Close()

	if body, err := readZipFile(&zr.Reader, DocumentPart); err != nil {
		return fmt.Errorf("docx: read %s: %w", DocumentPart, err)
	} else if body == nil {
		return ErrNotDocx
	}

	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".offergen-*.docx")
	if err != nil {
		return fmt.Errorf("docx: create output: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	zw := zip.NewWriter(tmp)
	var missing []string
	for _, f := range zr.File {
		if !isTextPart(f.Name) {
			if err := zw.Copy(f); err != nil {
				return fmt.Errorf("docx: copy %s: %w", f.Name, err)
			}
			continue
		}

		data, err := readZipFile(&zr.Reader, f.Name)
		if err != nil {
			return fmt.Errorf("docx: read %s: %w", f.Name, err)
		}
		merged, partMissing := Merge(data, values)
		missing = appendNew(missing, partMissing)

		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: f.Modified,
		})
		if err != nil {
			return fmt.Errorf("docx: write %s: %w", f.Name, err)
		}
		if _, err := w.Write(merged); err != nil {
			return fmt.Errorf("docx: write %s: %w", f.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("docx: finish package: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("docx: chmod output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("docx: close output: %w", err)
	}
	if err := os.Rename(tmp.Name(), outPath); err != nil {
		return fmt.Errorf("docx: save output: %w", err)
	}

	if len(missing) > 0 && r.OnMissing != nil {
		r.OnMissing(templatePath, missing)
	}
	return nil
}

// Placeholders lists the placeholder names a template references, in order of first appearance.
func Placeholders(templatePath string) ([]string, error) {
	zr, err := zip.OpenReader(templatePath)
	if err != nil {
		return nil, fmt.Errorf("docx: open template: %w", err)
	}
	defer zr.Close()

	parts, err := textParts(&zr.Reader)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for _, part := range parts {
		out = append(out, names(part, seen)...)
	}
	return out, nil
}

// Text returns the plain text of the document body, one line per paragraph.
// Paragraphs nested in text boxes get their own line after the enclosing one.
func Text(docPath string) (string, error) {
	zr, err := zip.OpenReader(docPath)
	if err != nil {
		return "", fmt.Errorf("docx: open: %w", err)
	}
	defer zr.Close()

	body, err := readZipFile(&zr.Reader, DocumentPart)
	if err != nil {
		return "", fmt.Errorf("docx: read %s: %w", DocumentPart, err)
	}
	if body == nil {
		return "", ErrNotDocx
	}

	var lines []string
	for _, p := range paragraphs(body) {
		lines = append(lines, p.text(body))
	}
	return strings.Join(lines, "\n"), nil
}

func appendNew(dst, src []string) []string {
	for _, s := range src {
		found := false
		for _, d := range dst {
			if d == s {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, s)
		}
	}
	return dst
}
