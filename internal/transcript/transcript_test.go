package transcript

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gomutex/godocx"
)

func TestLoadPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "interview.txt")
	content := "Interviewer: How are you?\nParticipant: I am fine.\n"

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	tr, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tr.Format != FormatPlain {
		t.Errorf("Format = %v, want %v", tr.Format, FormatPlain)
	}
	if tr.Text != content {
		t.Errorf("Text = %q, want %q", tr.Text, content)
	}
}

func TestLoadDocx(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "interview.docx")

	doc, err := godocx.NewDocument()
	if err != nil {
		t.Fatal(err)
	}
	doc.AddParagraph("Interviewer: How are you?")
	doc.AddParagraph("Participant: I am fine.")
	if err := doc.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	tr, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tr.Format != FormatDocx {
		t.Errorf("Format = %v, want %v", tr.Format, FormatDocx)
	}

	want := "Interviewer: How are you?\nParticipant: I am fine."
	if tr.Text != want {
		t.Errorf("Text = %q, want %q", tr.Text, want)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "interview.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("Load() error = %v, want *UnsupportedFormatError", err)
	}
	if ufe.Path != path {
		t.Errorf("Path = %v, want %v", ufe.Path, path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.txt", true},
		{"a.TXT", true},
		{"a.docx", true},
		{"notes.md", false},
		{"a.pdf", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := Supported(tt.path); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
