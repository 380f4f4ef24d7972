package markup

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// parseFragment wraps a fragment in a td and returns that td node.
func parseFragment(t *testing.T, fragment string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader("<table><tr><td id=\"frag\">" + fragment + "</td></tr></table>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	td := First(doc, func(n *html.Node) bool {
		return IsElement(n, "td") && Attr(n, "id") == "frag"
	})
	if td == nil {
		t.Fatal("fragment td not found")
	}
	return td
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name, fragment, want string
	}{
		{"plain", "What is 2 + 2?", "What is 2 + 2?"},
		{"image removed", `before <img src="x.jpg"> after`, "before  after"},
		{"br to newline", "line one<br>line two", "line one\nline two"},
		{"tabs to newline", "Statement I\tStatement II", "Statement I\nStatement II"},
		{"sup squared", "area in cm<sup>2</sup>", "area in cm²"},
		{"sup cubed", "volume in m<sup>3</sup>", "volume in m³"},
		{"sup ordinal", "the 4<sup>th</sup> term", "the 4th term"},
		{"sup other", "x<sup>4</sup> + 1", "x^4 + 1"},
		{"comment stripped", "keep <!-- office junk --> this", "keep  this"},
		{"brace block stripped", "text {mso-style-parent:\"\";} more", "text  more"},
		{"empty result", `<img src="only.jpg">`, ""},
		{"blank lines dropped", "a<br><br>   <br>b", "a\nb"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractText(parseFragment(t, tc.fragment))
			want := cleanLines(tc.want)
			if got != want {
				t.Errorf("ExtractText = %q, want %q", got, want)
			}
		})
	}
}

func TestExtractText_NilNode(t *testing.T) {
	if got := ExtractText(nil); got != "" {
		t.Errorf("ExtractText(nil) = %q", got)
	}
}

// The source tree must not be altered by extraction.
func TestExtractText_DoesNotMutate(t *testing.T) {
	td := parseFragment(t, `q text <img src="x.jpg"> cm<sup>2</sup>`)
	before := len(ByTag(td, "img")) + len(ByTag(td, "sup"))
	_ = ExtractText(td)
	after := len(ByTag(td, "img")) + len(ByTag(td, "sup"))
	if before != after {
		t.Fatalf("extraction mutated the tree: %d nodes before, %d after", before, after)
	}
}

func TestExtractText_AutoWrap(t *testing.T) {
	long := "The committee met on Monday. It decided nothing of importance that day. Further sessions were planned for the following week pending quorum requirements being met. (See annexure for details.)"
	got := ExtractText(parseFragment(t, long))
	if !strings.Contains(got, "Monday.\nIt decided") {
		t.Errorf("expected wrap after sentence terminator, got %q", got)
	}
	if !strings.Contains(got, "met.\n(See annexure") {
		t.Errorf("expected wrap before parenthesis, got %q", got)
	}

	short := "One sentence. Another one."
	if got := ExtractText(parseFragment(t, short)); strings.Contains(got, "\n") {
		t.Errorf("short text must not be wrapped: %q", got)
	}

	// Already multi-line text is left alone regardless of length.
	multi := strings.Repeat("alpha beta. Gamma delta ", 10) + "<br>tail"
	if got := ExtractText(parseFragment(t, multi)); strings.Count(got, "\n") != 1 {
		t.Errorf("multi-line text must keep its single break: %q", got)
	}
}

// The wrap heuristic splits after abbreviations too. That is the accepted
// source behavior, pinned here so nobody "fixes" it silently.
func TestExtractText_AutoWrapSplitsAbbreviations(t *testing.T) {
	long := "According to Dr. Sharma the reaction completes in under four minutes at room temperature when the catalyst concentration is held constant throughout the experiment run."
	if len(long) < 160 {
		t.Fatal("fixture must be at least 160 chars")
	}
	got := ExtractText(parseFragment(t, long))
	if !strings.Contains(got, "Dr.\nSharma") {
		t.Errorf("abbreviation split behavior changed: %q", got)
	}
}

func TestExtractOptionText(t *testing.T) {
	tests := []struct {
		name, fragment, want string
	}{
		{"digit marker", "1. forty two", "forty two"},
		{"letter marker", "B) the moon", "the moon"},
		{"lowercase letter colon", "c: something", "something"},
		{"marker once only", "2. 3. nested", "3. nested"},
		{"no marker", "just text", "just text"},
		{"marker with sup", "4. area cm<sup>2</sup>", "area cm²"},
		{"image removed", `1. <img src="opt.jpg">`, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractOptionText(parseFragment(t, tc.fragment)); got != tc.want {
				t.Errorf("ExtractOptionText = %q, want %q", got, tc.want)
			}
		})
	}
}
