package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

// Format tags the source file kind of a loaded transcript.
type Format string

const (
	FormatPlain Format = "txt"
	FormatDocx  Format = "docx"
)

// Transcript is the raw text of one interview file.
type Transcript struct {
	Path   string
	Format Format
	Text   string
}

// UnsupportedFormatError reports a file whose extension is not a
// recognized transcript or codebook format.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Path)
}

// Supported reports whether the file has a loadable transcript extension.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".docx":
		return true
	}
	return false
}

// Load reads a transcript file into a single text blob. Plain text is
// read as-is; docx files are reduced to their paragraph text joined by
// newlines, dropping all formatting, tables and embedded objects.
func Load(path string) (*Transcript, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read transcript: %w", err)
		}
		return &Transcript{Path: path, Format: FormatPlain, Text: string(data)}, nil

	case ".docx":
		text, err := loadDocx(path)
		if err != nil {
			return nil, err
		}
		return &Transcript{Path: path, Format: FormatDocx, Text: text}, nil

	default:
		return nil, &UnsupportedFormatError{Path: path}
	}
}

func loadDocx(path string) (string, error) {
	doc, err := godocx.OpenDocument(path)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var lines []string
	for _, child := range doc.Document.Body.Children {
		if child.Para == nil {
			continue
		}
		lines = append(lines, paragraphText(child.Para))
	}

	return strings.Join(lines, "\n"), nil
}

func paragraphText(p *docx.Paragraph) string {
	var b strings.Builder
	for _, pc := range p.GetCT().Children {
		if pc.Run == nil {
			continue
		}
		for _, rc := range pc.Run.Children {
			if rc.Text != nil {
				b.WriteString(rc.Text.Text)
			}
		}
	}
	return b.String()
}
