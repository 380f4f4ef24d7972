// Package examcfg is the static catalog of supported exam layouts: which
// subject sections an exam has, how many questions each holds and what a
// correct or wrong answer is worth. The scorer maps sequential question
// indexes onto sections through the derived ranges; nothing here is mutable
// at runtime.
package examcfg

// Subject is one named section of an exam paper.
type Subject struct {
	Name           string  `json:"name"`
	Part           string  `json:"part"`
	TotalQuestions int     `json:"total_questions"`
	MaxMarks       float64 `json:"max_marks"`
	CorrectMarks   float64 `json:"correct_marks"`
	NegativeMarks  float64 `json:"negative_marks"`
	// Qualifying sections are scored but stay out of the grand total.
	Qualifying bool `json:"qualifying,omitempty"`
}

// Layout is a full exam definition. Subjects are ordered; question-index
// ranges are always derived from that order, never stored.
type Layout struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	TotalQuestions int       `json:"total_questions"`
	MaxMarks       float64   `json:"max_marks"`
	Subjects       []Subject `json:"subjects"`
}

// Category groups layouts for listing UIs.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// SectionRange is a subject with its cumulative 1-based question range.
type SectionRange struct {
	Part          string
	Subject       string
	Start         int // inclusive
	End           int // inclusive
	CorrectMarks  float64
	NegativeMarks float64
	MaxMarks      float64
	Qualifying    bool
}

// DefaultLayoutID is used whenever a caller supplies no exam type or an
// unrecognized one.
const DefaultLayoutID = "SSC_CGL_MAINS"

// Lookup returns the layout for an exam id, or false when the id is unknown.
// There is no error path: callers fall back to Default().
func Lookup(id string) (Layout, bool) {
	for _, l := range layouts {
		if l.ID == id {
			return l, true
		}
	}
	return Layout{}, false
}

// Default returns the fallback layout.
func Default() Layout {
	l, _ := Lookup(DefaultLayoutID)
	return l
}

// All returns every configured layout in catalog order.
func All() []Layout { return layouts }

// Categories returns the listing groups in display order.
func Categories() []Category { return categories }

// ByCategory returns the layouts belonging to one category.
func ByCategory(categoryID string) []Layout {
	var out []Layout
	for _, l := range layouts {
		if l.Category == categoryID {
			out = append(out, l)
		}
	}
	return out
}

// Ranges walks the layout's subjects in order, assigning each the next
// contiguous block of 1-based question indexes.
func Ranges(l Layout) []SectionRange {
	out := make([]SectionRange, 0, len(l.Subjects))
	cursor := 1
	for _, s := range l.Subjects {
		start := cursor
		end := cursor + s.TotalQuestions - 1
		cursor = end + 1
		out = append(out, SectionRange{
			Part:          s.Part,
			Subject:       s.Name,
			Start:         start,
			End:           end,
			CorrectMarks:  s.CorrectMarks,
			NegativeMarks: s.NegativeMarks,
			MaxMarks:      s.MaxMarks,
			Qualifying:    s.Qualifying,
		})
	}
	return out
}
