package parse

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/score-sight/scoresight/internal/markup"
	"github.com/score-sight/scoresight/internal/scorecard"
)

// Label variants seen across vendors, matched case-sensitively after
// trimming and stripping a trailing colon.
var candidateLabels = map[string]func(*scorecard.Candidate, string){
	"Roll Number":      func(c *scorecard.Candidate, v string) { c.RollNumber = v },
	"Roll No":          func(c *scorecard.Candidate, v string) { c.RollNumber = v },
	"Roll No.":         func(c *scorecard.Candidate, v string) { c.RollNumber = v },
	"Candidate Name":   func(c *scorecard.Candidate, v string) { c.CandidateName = v },
	"Participant Name": func(c *scorecard.Candidate, v string) { c.CandidateName = v },
	"Name":             func(c *scorecard.Candidate, v string) { c.CandidateName = v },
	"Venue Name":       func(c *scorecard.Candidate, v string) { c.VenueName = v },
	"Centre Name":      func(c *scorecard.Candidate, v string) { c.VenueName = v },
	"Test Center Name": func(c *scorecard.Candidate, v string) { c.VenueName = v },
	"Exam Date":        func(c *scorecard.Candidate, v string) { c.ExamDate = v },
	"Test Date":        func(c *scorecard.Candidate, v string) { c.ExamDate = v },
	"Examination Date": func(c *scorecard.Candidate, v string) { c.ExamDate = v },
	"Exam Time":        func(c *scorecard.Candidate, v string) { c.ExamTime = v },
	"Test Time":        func(c *scorecard.Candidate, v string) { c.ExamTime = v },
	"Shift":            func(c *scorecard.Candidate, v string) { c.ExamTime = v },
	"Exam Shift":       func(c *scorecard.Candidate, v string) { c.ExamTime = v },
	"Subject":          func(c *scorecard.Candidate, v string) { c.Subject = v },
	"Exam Level":       func(c *scorecard.Candidate, v string) { c.Subject = v },
	"Post Name":        func(c *scorecard.Candidate, v string) { c.Subject = v },
}

// extractCandidateInfo scans every table for label/value rows. The first
// table that matched at least one label and produced a roll number or a name
// wins; missing fields stay empty strings. No such table means no candidate
// info, which is fine.
func extractCandidateInfo(doc *html.Node) *scorecard.Candidate {
	for _, table := range markup.ByTag(doc, "table") {
		var info scorecard.Candidate
		found := false
		for _, tr := range markup.ByTag(table, "tr") {
			tds := markup.ByTag(tr, "td")
			if len(tds) < 2 {
				continue
			}
			key := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(markup.Text(tds[0])), ":"))
			value := strings.TrimSpace(markup.Text(tds[1]))
			if set, ok := candidateLabels[key]; ok && value != "" {
				set(&info, value)
				found = true
			}
		}
		if found && (info.RollNumber != "" || info.CandidateName != "") {
			return &info
		}
	}
	return nil
}
