package constants

import "strings"

// DocType is the document category produced by the upstream classifier.
type DocType string

const (
	DocTypeInvoice  DocType = "invoice"
	DocTypeContract DocType = "contract"
	DocTypeResume   DocType = "resume"
	DocTypeLegal    DocType = "legal"
	DocTypeReport   DocType = "report"
	DocTypeUnknown  DocType = "unknown"
)

var allDocTypes = []DocType{
	DocTypeInvoice,
	DocTypeContract,
	DocTypeResume,
	DocTypeLegal,
	DocTypeReport,
	DocTypeUnknown,
}

func DocTypesAsStrings() []string {
	result := make([]string, len(allDocTypes))
	for i, dt := range allDocTypes {
		result[i] = string(dt)
	}
	return result
}

// ParseDocType canonicalizes a classifier label. Unrecognized labels map to
// DocTypeUnknown with ok=false.
func ParseDocType(input string) (DocType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]DocType{
		"legal_doc":      DocTypeLegal,
		"legal_document": DocTypeLegal,
		"cv":             DocTypeResume,
		"agreement":      DocTypeContract,
		"bill":           DocTypeInvoice,
		"receipt":        DocTypeInvoice,
	}
	if dt, ok := synonyms[normalized]; ok {
		return dt, true
	}

	for _, dt := range allDocTypes {
		if normalized == string(dt) {
			return dt, true
		}
	}
	return DocTypeUnknown, false
}
