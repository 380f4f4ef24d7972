// Package scoring assigns questions to their catalog sections, applies the
// bonus/correct/wrong/unattempted state machine and aggregates section and
// grand totals. It is pure arithmetic over already-extracted records; nothing
// here touches the source document.
package scoring

import (
	"math"

	"github.com/score-sight/scoresight/internal/examcfg"
	"github.com/score-sight/scoresight/internal/scorecard"
)

// SectionInfo is the slice of catalog data a single question needs.
type SectionInfo struct {
	Part          string
	Subject       string
	CorrectMarks  float64
	NegativeMarks float64
}

// SectionFor maps a sequential 1-based question index to its owning section.
// A nil layout falls back to the default catalog entry; an index beyond every
// configured range yields a generic unknown tuple. Never fails: a broken
// layout must not take the whole parse down.
func SectionFor(seqIndex int, layout *examcfg.Layout) SectionInfo {
	if layout == nil {
		def := examcfg.Default()
		for _, r := range examcfg.Ranges(def) {
			if seqIndex >= r.Start && seqIndex <= r.End {
				return SectionInfo{Part: r.Part, Subject: r.Subject, CorrectMarks: r.CorrectMarks, NegativeMarks: r.NegativeMarks}
			}
		}
		return SectionInfo{Part: "?", Subject: "Unknown", CorrectMarks: 3, NegativeMarks: 1}
	}
	for _, r := range examcfg.Ranges(*layout) {
		if seqIndex >= r.Start && seqIndex <= r.End {
			return SectionInfo{Part: r.Part, Subject: r.Subject, CorrectMarks: r.CorrectMarks, NegativeMarks: r.NegativeMarks}
		}
	}
	return SectionInfo{Part: "?", Subject: "Unknown", CorrectMarks: 1, NegativeMarks: 0.25}
}

// Outcome is the scored result of one question.
type Outcome struct {
	Status scorecard.Status
	Marks  float64 // rounded to 3 decimals
}

// Score evaluates the per-question state machine. A question with no correct
// option is bonus and earns full marks regardless of choice.
func Score(chosen, correct *int, info SectionInfo) Outcome {
	switch {
	case correct == nil:
		return Outcome{Status: scorecard.StatusBonus, Marks: Round3(info.CorrectMarks)}
	case chosen != nil && *chosen == *correct:
		return Outcome{Status: scorecard.StatusCorrect, Marks: Round3(info.CorrectMarks)}
	case chosen != nil:
		return Outcome{Status: scorecard.StatusWrong, Marks: Round3(-info.NegativeMarks)}
	default:
		return Outcome{Status: scorecard.StatusUnattempted, Marks: 0}
	}
}

// Round3 guards stored marks against fractional negative-mark residue
// (0.333-style configurations).
func Round3(v float64) float64 { return math.Round(v*1000) / 1000 }

// Round1 is the section/grand total precision.
func Round1(v float64) float64 { return math.Round(v*10) / 10 }

// Aggregate groups the flat question list into section results per the
// layout's ranges and computes grand totals. The at-most-one qualifying
// section is returned separately and excluded from every total.
func Aggregate(questions []scorecard.Question, layout *examcfg.Layout) (sections []scorecard.Section, qualifying *scorecard.Section, totals Totals) {
	l := examcfg.Default()
	if layout != nil {
		l = *layout
	}
	for _, r := range examcfg.Ranges(l) {
		sec := scorecard.Section{
			Part:             r.Part,
			Subject:          r.Subject,
			TotalQuestions:   r.End - r.Start + 1,
			MarksPerCorrect:  r.CorrectMarks,
			NegativePerWrong: r.NegativeMarks,
			MaxMarks:         r.MaxMarks,
			Qualifying:       r.Qualifying,
		}
		for _, q := range questions {
			if q.QuestionNumber < r.Start || q.QuestionNumber > r.End {
				continue
			}
			switch q.Status {
			case scorecard.StatusCorrect:
				sec.Correct++
			case scorecard.StatusWrong:
				sec.Wrong++
			case scorecard.StatusUnattempted:
				sec.Skipped++
			case scorecard.StatusBonus:
				sec.Bonus++
			}
		}
		score := float64(sec.Correct)*r.CorrectMarks + float64(sec.Bonus)*r.CorrectMarks - float64(sec.Wrong)*r.NegativeMarks
		sec.Score = Round1(score)

		if r.Qualifying {
			q := sec
			qualifying = &q
			continue
		}
		sections = append(sections, sec)
	}

	for _, s := range sections {
		totals.Correct += s.Correct
		totals.Wrong += s.Wrong
		totals.Skipped += s.Skipped
		totals.Score += s.Score
		totals.MaxMarks += s.MaxMarks
	}
	totals.Score = Round1(totals.Score)
	return sections, qualifying, totals
}

// Totals are the grand totals over non-qualifying sections.
type Totals struct {
	Correct  int
	Wrong    int
	Skipped  int
	Score    float64
	MaxMarks float64
}
