package controllers

import (
	"strings"
	"testing"

	"github.com/poolhub/consultant-pool-backend/models"
)

func TestMatchScoreCountsWholeWords(t *testing.T) {
	jd := "Looking for a Python developer with AWS experience."
	skills := []models.Skill{
		{Name: "python"},
		{Name: "aws"},
		{Name: "docker"},
	}
	if got := MatchScore(jd, skills); got != 2 {
		t.Fatalf("expected score 2, got %d", got)
	}
}

func TestMatchScoreCaseInsensitive(t *testing.T) {
	skills := []models.Skill{{Name: "Kubernetes"}}
	if got := MatchScore("we run KUBERNETES in production", skills); got != 1 {
		t.Fatalf("expected score 1, got %d", got)
	}
}

func TestMatchScoreNoSkills(t *testing.T) {
	if got := MatchScore("anything at all", nil); got != 0 {
		t.Fatalf("expected score 0, got %d", got)
	}
}

func TestBuildMatchEmailBodyListsMatches(t *testing.T) {
	body := BuildMatchEmailBody([]profileMatch{
		{Name: "Ana", MatchScore: 3, Skills: []string{"python", "aws"}},
		{Name: "Ben", MatchScore: 1, Skills: []string{"sql"}},
	})

	if !strings.Contains(body, "<li>Ana (score 3): python, aws</li>") {
		t.Fatalf("missing first match entry in %q", body)
	}
	if !strings.Contains(body, "<li>Ben (score 1): sql</li>") {
		t.Fatalf("missing second match entry in %q", body)
	}
	if strings.Contains(body, "—") {
		t.Fatalf("body contains an em dash: %q", body)
	}
}
