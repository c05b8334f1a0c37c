package controllers

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/poolhub/consultant-pool-backend/models"
)

func sampleConsultant() *models.User {
	return &models.User{
		Name:           "Ada",
		Email:          "ada@example.com",
		Role:           models.RoleConsultant,
		Department:     "Engineering",
		Status:         models.StatusBench,
		ResumeStatus:   "updated",
		TrainingStatus: models.TrainingInProgress,
		Skills: []models.Skill{
			{Name: "aws", Proficiency: 6},
			{Name: "python", Proficiency: 3},
		},
	}
}

func TestReportHeaderOrder(t *testing.T) {
	want := "Name,Email,Department,Status,Resume Status,Training Status,Attendance Rate,Skills"
	if got := strings.Join(ReportHeader, ","); got != want {
		t.Fatalf("header order changed: %q", got)
	}
}

func TestReportRowFields(t *testing.T) {
	row := ReportRow(sampleConsultant(), "66.7%")
	if len(row) != len(ReportHeader) {
		t.Fatalf("row has %d fields, header has %d", len(row), len(ReportHeader))
	}
	if row[0] != "Ada" || row[1] != "ada@example.com" || row[6] != "66.7%" {
		t.Fatalf("unexpected row: %v", row)
	}
	if row[7] != "aws, python" {
		t.Fatalf("expected joined skills, got %q", row[7])
	}
}

func TestReportCSVSingleDataRow(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write(ReportHeader)
	w.Write(ReportRow(sampleConsultant(), "0%"))
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading report back: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + exactly one data row, got %d rows", len(records))
	}
}
