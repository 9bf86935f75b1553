package core

import "regexp"

// HyphenSentinel replaces runs of hyphens so that hyphenated compounds survive tokenization.
const HyphenSentinel = "-0"

var (
	hyphenRun = regexp.MustCompile(`-+`)
	// ASCII punctuation except the apostrophe and the hyphen.
	punctRun    = regexp.MustCompile("[!\"#$%&()*+,./:;<=>?@\\[\\\\\\]^_`{|}~]+")
	contraction = regexp.MustCompile(`(?:'(?:[tdsm]|[vr]e|ll))+\b`)
)

// Normalize rewrites raw text before tokenization: hyphen runs become the
// sentinel, other punctuation becomes a space and contraction suffixes are dropped.
func Normalize(text string) string {
	text = hyphenRun.ReplaceAllString(text, HyphenSentinel)
	text = punctRun.ReplaceAllString(text, " ")
	return contraction.ReplaceAllString(text, "")
}
