package controllers

import (
	"testing"

	"github.com/poolhub/consultant-pool-backend/models"
)

func TestWorkflowProgress(t *testing.T) {
	cases := map[string]int{
		models.TrainingNotStarted: 20,
		models.TrainingInProgress: 70,
		models.TrainingCompleted:  100,
		"unknown":                 0,
		"":                        0,
	}
	for status, want := range cases {
		if got := WorkflowProgress(status); got != want {
			t.Fatalf("WorkflowProgress(%q) = %d, want %d", status, got, want)
		}
	}
}
