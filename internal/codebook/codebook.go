// Package codebook loads the researcher-defined theme codes used to
// label quotes.
package codebook

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ThemeCode is one row of the codebook.
type ThemeCode struct {
	Code       string
	Definition string
}

// Codebook is the ordered set of theme codes for a run. It is loaded
// once and shared read-only across all transcripts.
type Codebook struct {
	Path    string
	Entries []ThemeCode
}

// MissingColumnError reports a codebook table that lacks a required
// column, or a row with an empty value in one. Row is 1-based and 0
// when the header itself is missing the column.
type MissingColumnError struct {
	Path   string
	Column string
	Row    int
}

func (e *MissingColumnError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("codebook %s: missing required column %q", e.Path, e.Column)
	}
	return fmt.Sprintf("codebook %s: row %d has no value for column %q", e.Path, e.Row, e.Column)
}

// UnsupportedFormatError reports a codebook file extension with no parser.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported codebook format: %s", e.Path)
}

// Load reads a codebook table. The extension picks the parser: .xlsx is
// read as a spreadsheet, .csv as delimited text. The table must carry
// the columns "code" and "definition" and no row may leave either empty.
func Load(path string) (*Codebook, error) {
	var (
		rows [][]string
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readSheet(path)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, &UnsupportedFormatError{Path: path}
	}
	if err != nil {
		return nil, err
	}

	return fromRows(path, rows)
}

// Prompt renders the codebook as the bullet-list block embedded in the
// model's system prompt, one "- code: definition" line per entry in
// table order.
func (c *Codebook) Prompt() string {
	lines := make([]string, 0, len(c.Entries))
	for _, e := range c.Entries {
		lines = append(lines, fmt.Sprintf("- %s: %s", e.Code, e.Definition))
	}
	return strings.Join(lines, "\n")
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open codebook: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read codebook %s: %w", filepath.Base(path), err)
	}
	return rows, nil
}

func readSheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open codebook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("codebook %s has no sheets", filepath.Base(path))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read codebook %s: %w", filepath.Base(path), err)
	}
	return rows, nil
}

func fromRows(path string, rows [][]string) (*Codebook, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("codebook %s is empty", filepath.Base(path))
	}

	codeIdx, defIdx := -1, -1
	for i, cell := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "code":
			codeIdx = i
		case "definition":
			defIdx = i
		}
	}
	if codeIdx < 0 {
		return nil, &MissingColumnError{Path: path, Column: "code"}
	}
	if defIdx < 0 {
		return nil, &MissingColumnError{Path: path, Column: "definition"}
	}

	cb := &Codebook{Path: path}
	for i, row := range rows[1:] {
		code := cellAt(row, codeIdx)
		def := cellAt(row, defIdx)

		// Row numbering counts the header.
		if code == "" {
			return nil, &MissingColumnError{Path: path, Column: "code", Row: i + 2}
		}
		if def == "" {
			return nil, &MissingColumnError{Path: path, Column: "definition", Row: i + 2}
		}

		cb.Entries = append(cb.Entries, ThemeCode{Code: code, Definition: def})
	}

	if len(cb.Entries) == 0 {
		return nil, fmt.Errorf("codebook %s has no code rows", filepath.Base(path))
	}

	return cb, nil
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
