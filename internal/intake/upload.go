package intake

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

// MaxUploadSize caps resume uploads at 5 MB, checked before any read.
const MaxUploadSize = 5 << 20

// Upload rejection messages shown to the user. PDF and Word documents are
// accepted for selection but text extraction is plain-text only.
var (
	ErrFileTooLarge    = errors.New("File size must be less than 5MB")
	ErrPDFNotSupported = errors.New("PDF parsing requires additional setup. Please copy and paste your resume text, or upload a .txt file.")
	ErrDocNotSupported = errors.New("DOCX parsing requires additional setup. Please copy and paste your resume text, or upload a .txt file.")
	ErrUnreadableFile  = errors.New("Unable to read file. Please upload a .txt file or paste your resume text.")
)

// CheckFile validates the upload by name and declared size only, so an
// oversized or unsupported file is rejected without reading a byte.
func CheckFile(filename string, size int64) error {
	if size > MaxUploadSize {
		return ErrFileTooLarge
	}

	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return ErrPDFNotSupported
	case strings.HasSuffix(name, ".docx"), strings.HasSuffix(name, ".doc"):
		return ErrDocNotSupported
	}
	return nil
}

// ExtractText reads the upload as plain text. Files that are not valid
// text still get a best-effort attempt, matching the form behavior of
// trying to read unknown types before giving up.
func ExtractText(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize))
	if err != nil {
		return "", ErrUnreadableFile
	}
	if !utf8.Valid(data) {
		return "", ErrUnreadableFile
	}
	return string(data), nil
}
