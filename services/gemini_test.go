package services

import "testing"

func TestCleanJSONResponseStripsFence(t *testing.T) {
	raw := "```json\n[{\"skill\": \"aws\", \"proficiency\": 6}]\n```"
	want := `[{"skill": "aws", "proficiency": 6}]`
	if got := CleanJSONResponse(raw); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCleanJSONResponseBareFence(t *testing.T) {
	raw := "```\n{\"title\": \"Docker Basics\"}\n```"
	want := `{"title": "Docker Basics"}`
	if got := CleanJSONResponse(raw); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCleanJSONResponsePlain(t *testing.T) {
	raw := `  [1, 2, 3]  `
	if got := CleanJSONResponse(raw); got != "[1, 2, 3]" {
		t.Fatalf("got %q", got)
	}
}
