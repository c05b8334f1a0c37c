package utils

import (
	"errors"
	"strings"

	"github.com/poolhub/consultant-pool-backend/services"
)

// GetInputTypeFromExt maps a file extension to a document input type.
func GetInputTypeFromExt(ext string) (services.InputType, error) {
	switch strings.ToLower(ext) {
	case ".pdf":
		return services.InputPDF, nil
	case ".docx":
		return services.InputDOCX, nil
	case ".txt":
		return services.InputTXT, nil
	default:
		return "", errors.New("unsupported file format")
	}
}
