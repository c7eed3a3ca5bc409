package analysis

import "strings"

// DetectText extracts the handwriting transcription from a detection
// response: the first quoted substring if any, otherwise the full text with
// all quote characters removed.
func DetectText(text string) string {
	trimmed := strings.TrimSpace(text)
	if m := quotedReg.FindStringSubmatch(trimmed); m != nil {
		return m[1]
	}
	cleaned := strings.NewReplacer(`"`, "", `'`, "").Replace(trimmed)
	return strings.TrimSpace(cleaned)
}
