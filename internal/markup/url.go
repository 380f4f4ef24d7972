package markup

import (
	"regexp"
	"strings"
)

// vendorHost anchors root-relative image paths. All known digialm response
// sheets serve their assets from here.
const vendorHost = "https://ssc.digialm.com"

var (
	basePathRe = regexp.MustCompile(`src="(/per/g\d+/pub/\d+/touchstone/)`)
	baseAbsRe  = regexp.MustCompile(`src="(https?://[^"]+/touchstone/)`)

	hindiTokenRe   = regexp.MustCompile(`(?i)_hi\.`)
	englishTokenRe = regexp.MustCompile(`(?i)_en\.`)
)

// DetectBaseURL sniffs the raw markup for the vendor's asset directory so
// that relative image references can be resolved later. Runs on the raw
// string, before any tree parsing.
func DetectBaseURL(raw string) string {
	if m := basePathRe.FindStringSubmatch(raw); m != nil {
		return vendorHost + m[1]
	}
	if m := baseAbsRe.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return vendorHost
}

// ResolveImageURL makes an image src usable outside the source document.
// Absolute and data URLs pass through, root-relative paths are pinned to the
// vendor host, and anything else is taken relative to the detected base.
// Empty in, empty out.
func ResolveImageURL(src, baseURL string) string {
	if src == "" {
		return ""
	}
	if strings.HasPrefix(src, "http") || strings.HasPrefix(src, "data:") {
		return src
	}
	if strings.HasPrefix(src, "/") {
		return vendorHost + src
	}
	return baseURL + src
}

// BilingualPair derives the Hindi/English sibling URLs from a language
// suffix in the filename (`_HI.` / `_EN.` in any case, immediately before
// the extension). The sibling keeps the letter case of the original token,
// so round-tripping through the derived sibling restores the input. URLs
// without a recognizable suffix yield an empty pair.
func BilingualPair(url string) (hindi, english string) {
	if url == "" {
		return "", ""
	}
	if loc := hindiTokenRe.FindStringIndex(url); loc != nil {
		return url, url[:loc[0]] + swapLangToken(url[loc[0]:loc[1]], "en") + url[loc[1]:]
	}
	if loc := englishTokenRe.FindStringIndex(url); loc != nil {
		return url[:loc[0]] + swapLangToken(url[loc[0]:loc[1]], "hi") + url[loc[1]:], url
	}
	return "", ""
}

// swapLangToken turns a matched "_hi." / "_HI." token into the other
// language, copying the case of each original letter.
func swapLangToken(matched, lang string) string {
	out := []byte{'_', lang[0], lang[1], '.'}
	for i := 1; i <= 2; i++ {
		if matched[i] >= 'A' && matched[i] <= 'Z' {
			out[i] = out[i] - 'a' + 'A'
		}
	}
	return string(out)
}
