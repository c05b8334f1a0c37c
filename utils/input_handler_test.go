package utils

import (
	"testing"

	"github.com/poolhub/consultant-pool-backend/services"
)

func TestGetInputTypeFromExt(t *testing.T) {
	cases := map[string]services.InputType{
		".pdf":  services.InputPDF,
		".PDF":  services.InputPDF,
		".docx": services.InputDOCX,
		".txt":  services.InputTXT,
	}
	for ext, want := range cases {
		got, err := GetInputTypeFromExt(ext)
		if err != nil {
			t.Fatalf("GetInputTypeFromExt(%q) error: %v", ext, err)
		}
		if got != want {
			t.Fatalf("GetInputTypeFromExt(%q) = %q, want %q", ext, got, want)
		}
	}
}

func TestGetInputTypeFromExtUnsupported(t *testing.T) {
	if _, err := GetInputTypeFromExt(".exe"); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}
