package constants

import "strings"

// AllowedExtensions holds the default decoded-text extensions accepted by
// ingestion. Binary formats (pdf, images) are out of scope: the upstream
// text-acquisition subsystem decodes those before they reach us.
var AllowedExtensions = map[string]struct{}{
	"txt":  {},
	"text": {},
	"md":   {},
	"ocr":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
