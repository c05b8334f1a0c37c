package controllers

import (
	"strings"
	"testing"

	"github.com/poolhub/consultant-pool-backend/models"
)

func TestMissingSkillsForRole(t *testing.T) {
	skills := []models.Skill{
		{Name: "Python", Proficiency: 8},
		{Name: "git", Proficiency: 5},
	}
	missing, modules := MissingSkillsForRole("python_developer", skills)

	if len(missing) != 2 {
		t.Fatalf("expected 2 missing skills, got %v", missing)
	}
	if missing[0] != "flask" || missing[1] != "sql" {
		t.Fatalf("unexpected missing skills: %v", missing)
	}
	if modules[0] != "Flask Crash Course" || modules[1] != "SQL for Developers" {
		t.Fatalf("unexpected modules: %v", modules)
	}
}

func TestMissingSkillsForUnknownRole(t *testing.T) {
	missing, modules := MissingSkillsForRole("rust_developer", nil)
	if missing != nil || modules != nil {
		t.Fatalf("expected nil for unknown role, got %v / %v", missing, modules)
	}
}

func TestCourseRecommendationPromptListsSkills(t *testing.T) {
	skills := []models.Skill{
		{Name: "aws", Proficiency: 6},
		{Name: "python", Proficiency: 3},
	}
	prompt := BuildCourseRecommendationPrompt(skills)

	if !strings.Contains(prompt, "aws (proficiency 6/10)") {
		t.Fatalf("prompt missing aws line:\n%s", prompt)
	}
	if !strings.Contains(prompt, "python (proficiency 3/10)") {
		t.Fatalf("prompt missing python line:\n%s", prompt)
	}
}

func TestCertificatePromptStructure(t *testing.T) {
	prompt := BuildCertificatePrompt("Certificate of Completion")
	for _, field := range []string{`"title"`, `"provider"`, `"completedDate"`} {
		if !strings.Contains(prompt, field) {
			t.Fatalf("prompt missing field %s", field)
		}
	}
}
