package markup

import "testing"

func TestResolveImageURL(t *testing.T) {
	base := "https://ssc.digialm.com/per/g27/pub/2207/touchstone/"
	tests := []struct {
		name, src, want string
	}{
		{"empty", "", ""},
		{"absolute", "https://cdn.example.com/q1.jpg", "https://cdn.example.com/q1.jpg"},
		{"data url", "data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
		{"root relative", "/per/g27/pub/2207/touchstone/Q1.jpg", "https://ssc.digialm.com/per/g27/pub/2207/touchstone/Q1.jpg"},
		{"relative", "AssessmentQPHTMLMode1/Q1.jpg", base + "AssessmentQPHTMLMode1/Q1.jpg"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveImageURL(tc.src, base); got != tc.want {
				t.Errorf("ResolveImageURL(%q) = %q, want %q", tc.src, got, tc.want)
			}
		})
	}
}

func TestDetectBaseURL(t *testing.T) {
	tests := []struct {
		name, raw, want string
	}{
		{
			"vendor path",
			`<img src="/per/g27/pub/2207/touchstone/AssessmentQPHTMLMode1/q.jpg">`,
			"https://ssc.digialm.com/per/g27/pub/2207/touchstone/",
		},
		{
			"absolute touchstone",
			`<img src="https://mirror.example.com/files/touchstone/q.jpg">`,
			"https://mirror.example.com/files/touchstone/",
		},
		{"no marker", `<p>hello</p>`, "https://ssc.digialm.com"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectBaseURL(tc.raw); got != tc.want {
				t.Errorf("DetectBaseURL = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBilingualPair(t *testing.T) {
	tests := []struct {
		name, url, hindi, english string
	}{
		{"upper hindi", "https://x/OC123_HI.jpg", "https://x/OC123_HI.jpg", "https://x/OC123_EN.jpg"},
		{"lower hindi", "https://x/oc123_hi.png", "https://x/oc123_hi.png", "https://x/oc123_en.png"},
		{"upper english", "https://x/OC123_EN.jpg", "https://x/OC123_HI.jpg", "https://x/OC123_EN.jpg"},
		{"lower english", "https://x/oc123_en.png", "https://x/oc123_hi.png", "https://x/oc123_en.png"},
		{"no token", "https://x/oc123.png", "", ""},
		{"empty", "", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hi, en := BilingualPair(tc.url)
			if hi != tc.hindi || en != tc.english {
				t.Errorf("BilingualPair(%q) = (%q, %q), want (%q, %q)", tc.url, hi, en, tc.hindi, tc.english)
			}
		})
	}
}

// Deriving the pair from a derived sibling must restore the original URL,
// whatever the case of the language token.
func TestBilingualPair_RoundTrip(t *testing.T) {
	for _, url := range []string{
		"https://x/Q12_HI.jpg",
		"https://x/Q12_hi.jpg",
		"https://x/Q12_EN.jpg",
		"https://x/q12_en.jpeg",
	} {
		hi1, en1 := BilingualPair(url)
		hi2, _ := BilingualPair(en1)
		if hi2 != hi1 {
			t.Errorf("round trip via english broke for %q: %q != %q", url, hi2, hi1)
		}
		_, en2 := BilingualPair(hi1)
		if en2 != en1 {
			t.Errorf("round trip via hindi broke for %q: %q != %q", url, en2, en1)
		}
	}
}
