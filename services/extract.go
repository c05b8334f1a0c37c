package services

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

type InputType string

const (
	InputPDF  InputType = "pdf"
	InputDOCX InputType = "docx"
	InputTXT  InputType = "txt"
)

// InputSource wraps an uploaded document together with its detected type.
type InputSource struct {
	Type       InputType
	FileHeader *multipart.FileHeader
}

// ExtractText pulls plain text out of an uploaded PDF, DOCX or TXT document.
func ExtractText(src InputSource) (string, error) {
	switch src.Type {
	case InputPDF:
		file, err := src.FileHeader.Open()
		if err != nil {
			return "", err
		}
		defer file.Close()
		return ExtractTextFromPDF(file)
	case InputDOCX:
		return ExtractTextFromDOCX(src.FileHeader)
	case InputTXT:
		return ExtractTextFromTXT(src.FileHeader)
	default:
		return "", fmt.Errorf("unsupported input type: %s", src.Type)
	}
}

func ExtractTextFromPDF(file io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return "", fmt.Errorf("reading PDF failed: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		return "", fmt.Errorf("cannot create PDF reader: %w", err)
	}

	var textBuilder bytes.Buffer
	pages := reader.NumPage()
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(content)
	}

	return textBuilder.String(), nil
}

// ExtractTextFromPDFFile reads a PDF already stored on disk.
func ExtractTextFromPDFFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return ExtractTextFromPDF(f)
}

func ExtractTextFromDOCX(fileHeader *multipart.FileHeader) (string, error) {
	tmpFile, err := os.CreateTemp("", "upload-*.docx")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmpFile.Name())
	defer tmpFile.Close()

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	if _, err := io.Copy(tmpFile, src); err != nil {
		return "", err
	}

	return extractDOCXPath(tmpFile.Name())
}

// ExtractTextFromDOCXFile reads a DOCX already stored on disk.
func ExtractTextFromDOCXFile(path string) (string, error) {
	return extractDOCXPath(path)
}

func extractDOCXPath(path string) (string, error) {
	// a .docx is a zip archive; the body lives in word/document.xml
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer r.Close()

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("word/document.xml not found in archive")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	// collect the <w:t> text runs
	var buf bytes.Buffer
	decoder := xml.NewDecoder(rc)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch se := tok.(type) {
		case xml.StartElement:
			if se.Name.Local == "t" {
				var text string
				if err := decoder.DecodeElement(&text, &se); err == nil {
					buf.WriteString(text + " ")
				}
			}
		}
	}

	return strings.TrimSpace(buf.String()), nil
}

func ExtractTextFromTXT(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(file)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
