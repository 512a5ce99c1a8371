package codebook

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "themes.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, "code,definition\nA,foo\nB,bar\n")

	cb, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cb.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(cb.Entries))
	}
	if cb.Entries[0].Code != "A" || cb.Entries[0].Definition != "foo" {
		t.Errorf("Entries[0] = %+v, want {A foo}", cb.Entries[0])
	}

	want := "- A: foo\n- B: bar"
	if got := cb.Prompt(); got != want {
		t.Errorf("Prompt() = %q, want %q", got, want)
	}
}

func TestLoadCSVExtraColumns(t *testing.T) {
	// Column order and extra columns must not matter.
	path := writeCSV(t, "id,definition,code\n1,foo,A\n2,bar,B\n")

	cb, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cb.Prompt(); got != "- A: foo\n- B: bar" {
		t.Errorf("Prompt() = %q", got)
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	path := writeCSV(t, "code,description\nA,foo\n")

	_, err := Load(path)
	var mce *MissingColumnError
	if !errors.As(err, &mce) {
		t.Fatalf("Load() error = %v, want *MissingColumnError", err)
	}
	if mce.Column != "definition" || mce.Row != 0 {
		t.Errorf("error = %+v, want missing header column definition", mce)
	}
}

func TestLoadCSVEmptyCell(t *testing.T) {
	path := writeCSV(t, "code,definition\nA,foo\nB,\n")

	_, err := Load(path)
	var mce *MissingColumnError
	if !errors.As(err, &mce) {
		t.Fatalf("Load() error = %v, want *MissingColumnError", err)
	}
	if mce.Column != "definition" || mce.Row != 3 {
		t.Errorf("error = %+v, want definition missing at row 3", mce)
	}
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := map[string]string{
		"A1": "code", "B1": "definition",
		"A2": "A", "B2": "foo",
		"A3": "B", "B3": "bar",
	}
	for ref, val := range cells {
		if err := f.SetCellValue(sheet, ref, val); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	cb, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cb.Prompt(); got != "- A: foo\n- B: bar" {
		t.Errorf("Prompt() = %q, want %q", got, "- A: foo\n- B: bar")
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.ods")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("Load() error = %v, want *UnsupportedFormatError", err)
	}
}

func TestLoadEmptyTable(t *testing.T) {
	path := writeCSV(t, "code,definition\n")
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on a codebook with no rows")
	}
}
