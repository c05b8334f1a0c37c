package controllers

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractKeywordSkills(t *testing.T) {
	text := "Built APIs with Python and Flask, deployed on AWS with Docker."
	got := ExtractKeywordSkills(text, commonSkills)

	want := map[string]bool{"python": true, "aws": true, "docker": true, "flask": true}
	if len(got) != len(want) {
		t.Fatalf("expected %d skills, got %v", len(want), got)
	}
	for _, s := range got {
		if !want[s] {
			t.Fatalf("unexpected skill %q in %v", s, got)
		}
	}
}

func TestExtractKeywordSkillsNoHits(t *testing.T) {
	if got := ExtractKeywordSkills("worked in sales and marketing", commonSkills); len(got) != 0 {
		t.Fatalf("expected no skills, got %v", got)
	}
}

func TestStoredResumePathNaming(t *testing.T) {
	path := StoredResumePath(42, "resume.pdf")
	if filepath.Base(path) != "42_resume.pdf" {
		t.Fatalf("expected 42_resume.pdf, got %q", path)
	}
}

func TestStoredResumePathStripsDirectories(t *testing.T) {
	path := StoredResumePath(7, "../../etc/passwd")
	if strings.Contains(path, "..") {
		t.Fatalf("expected traversal components to be stripped, got %q", path)
	}
	if filepath.Base(path) != "7_passwd" {
		t.Fatalf("expected 7_passwd, got %q", path)
	}
}

func TestResumeInputTypeAcceptsResumeFormats(t *testing.T) {
	for _, name := range []string{"cv.pdf", "cv.PDF", "cv.docx", "cv.DOCX"} {
		if _, err := resumeInputType(name); err != nil {
			t.Fatalf("expected %q to be accepted, got %v", name, err)
		}
	}
}

func TestResumeInputTypeRejectsPlainText(t *testing.T) {
	for _, name := range []string{"cv.txt", "cv.TXT", "cv.png", "cv"} {
		if _, err := resumeInputType(name); err == nil {
			t.Fatalf("expected %q to be rejected", name)
		}
	}
}

// writeDOCX builds a minimal word-processing archive with the given body text.
func writeDOCX(t *testing.T, path, text string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	doc, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	xml := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>` +
		text + `</w:t></w:r></w:p></w:body></w:document>`
	if _, err := doc.Write([]byte(xml)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestReadStoredResumeDOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "3_resume.docx")
	writeDOCX(t, path, "Senior Go developer")

	got, err := readStoredResume(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Senior Go developer" {
		t.Fatalf("expected extracted body text, got %q", got)
	}
}

func TestReadStoredResumeRejectsPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "3_notes.txt")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readStoredResume(path); err == nil {
		t.Fatal("expected a stored .txt file to be rejected")
	}
}

func TestReadStoredResumeMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "3_resume.pdf")
	if _, err := readStoredResume(path); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestBuildSkillExtractionPromptIncludesResume(t *testing.T) {
	prompt := BuildSkillExtractionPrompt("ten years of Go")
	if !strings.Contains(prompt, "ten years of Go") {
		t.Fatalf("prompt does not contain the resume text")
	}
	if !strings.Contains(prompt, `"skill"`) || !strings.Contains(prompt, `"proficiency"`) {
		t.Fatalf("prompt does not describe the expected JSON structure")
	}
}
