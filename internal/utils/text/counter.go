// Package text provides small text-processing helpers shared across the
// editorial domain, such as character counting for field length limits.
package text

// CountRunes counts Unicode characters (runes) in the given text. Headlines
// and subtitles may contain multi-byte characters, so length limits are
// enforced on runes rather than bytes.
//
// Examples:
//
//	CountRunes("hello")    // returns 5
//	CountRunes("héllo")    // returns 5, not 6
//	CountRunes("")         // returns 0
func CountRunes(text string) int {
	return len([]rune(text))
}
