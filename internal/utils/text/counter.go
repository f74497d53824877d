// Package text provides utilities for text processing and analysis.
package text

// CountRunes counts the number of Unicode characters (runes) in the given
// text. It correctly handles multi-byte characters including Japanese and
// emoji by counting runes instead of bytes. The content extractor's minimum
// length gate counts characters, so byte length would over-count CJK pages.
//
// Examples:
//
//	CountRunes("hello")    // 5
//	CountRunes("こんにちは")  // 5
func CountRunes(text string) int {
	return len([]rune(text))
}
