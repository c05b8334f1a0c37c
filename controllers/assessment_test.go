package controllers

import "testing"

func TestScoreAnswersFullMatch(t *testing.T) {
	key := []string{"a", "b", "c", "a", "d"}
	score, percentage := ScoreAnswers([]string{"a", "b", "c", "a", "d"}, key)
	if score != 5 {
		t.Fatalf("expected score 5, got %d", score)
	}
	if percentage != 100 {
		t.Fatalf("expected 100%%, got %v", percentage)
	}
}

func TestScoreAnswersPartialSubmission(t *testing.T) {
	key := []string{"a", "b", "c", "a", "d"}
	// only the provided positions are scored; percentage is still over the key length
	score, percentage := ScoreAnswers([]string{"a", "b"}, key)
	if score != 2 {
		t.Fatalf("expected score 2, got %d", score)
	}
	if percentage != 40 {
		t.Fatalf("expected 40%%, got %v", percentage)
	}
}

func TestScoreAnswersExtraAnswersIgnored(t *testing.T) {
	key := []string{"a", "b"}
	score, _ := ScoreAnswers([]string{"a", "b", "c", "d", "e"}, key)
	if score != 2 {
		t.Fatalf("expected extra answers to be ignored, got score %d", score)
	}
}

func TestScoreAnswersNoMatches(t *testing.T) {
	key := []string{"a", "b", "c"}
	score, percentage := ScoreAnswers([]string{"d", "d", "d"}, key)
	if score != 0 || percentage != 0 {
		t.Fatalf("expected zero score, got score=%d percentage=%v", score, percentage)
	}
}
