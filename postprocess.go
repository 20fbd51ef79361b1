package entitysdk

import (
	"regexp"
	"strings"
)

// ──────────────────────────────────────────────
// Response post-processing — clean raw generation output
// ──────────────────────────────────────────────

const (
	// Commentary longer than this is cut back to the last sentence boundary,
	// provided the boundary sits past minSentenceCut.
	maxCommentaryRunes = 500
	minSentenceCut     = 200

	silenceMarker = "..."
)

// Matches a leading "Name:" speaker prefix the model sometimes adds,
// e.g. "Venom: We could eat him." -> "We could eat him."
var speakerPrefixRe = regexp.MustCompile(`^[A-Za-z\s]+:\s*`)

// CleanResponse normalizes raw generation output into commentary text.
// Returns ("", false) when the result is silence: the explicit silence
// marker, or anything shorter than 3 characters after cleaning.
func CleanResponse(raw string) (string, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" || cleaned == silenceMarker {
		return "", false
	}

	// Strip one layer of wrapping quotes.
	if len(cleaned) >= 2 {
		first, last := cleaned[0], cleaned[len(cleaned)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			cleaned = strings.TrimSpace(cleaned[1 : len(cleaned)-1])
		}
	}

	cleaned = speakerPrefixRe.ReplaceAllString(cleaned, "")

	// Strip bold/italic markers.
	cleaned = strings.ReplaceAll(cleaned, "**", "")
	cleaned = strings.ReplaceAll(cleaned, "*", "")

	// Cap length — commentary should be brief.
	runes := []rune(cleaned)
	if len(runes) > maxCommentaryRunes {
		head := runes[:maxCommentaryRunes]
		cutoff := lastIndexRune(head, '.')
		if cutoff > minSentenceCut {
			cleaned = string(head[:cutoff+1])
		} else {
			cleaned = string(head) + "..."
		}
	}

	if cleaned == silenceMarker || len([]rune(cleaned)) < 3 {
		return "", false
	}
	return cleaned, true
}

func lastIndexRune(runes []rune, r rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == r {
			return i
		}
	}
	return -1
}
