// Package parse turns a vendor response-sheet HTML export into the canonical
// scorecard model. Two markup dialects are supported: the class-marker layout
// (AssessmentQPHTMLMode1, answer cells tagged rightAns/wrngAns) and the
// color-coded layout (ViewCandResponse, answers carried by row bgcolor).
// Extraction is best effort throughout: anything that does not look like the
// expected structure is skipped, never fatal.
package parse

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/score-sight/scoresight/internal/examcfg"
	"github.com/score-sight/scoresight/internal/markup"
	"github.com/score-sight/scoresight/internal/scorecard"
	"github.com/score-sight/scoresight/internal/scoring"
)

// ErrUnparseable is the only error Parse returns: the input could not be
// read as a document at all. Missing tables, rows or candidate info degrade
// to empty values instead.
var ErrUnparseable = errors.New("unparseable document")

// extractor is one dialect strategy. Both produce the same flat sequential
// question list; the scorer does not care which one ran.
type extractor func(doc *html.Node, baseURL string, layout *examcfg.Layout) []scorecard.Question

// Parse converts raw response-sheet markup into a scorecard. examTypeID
// selects the layout from the catalog; empty or unknown ids fall back to the
// default layout.
func Parse(raw string, examTypeID string) (*scorecard.Data, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrUnparseable
	}
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}

	baseURL := markup.DetectBaseURL(raw)
	candidate := extractCandidateInfo(doc)

	var layout *examcfg.Layout
	if examTypeID != "" {
		if l, ok := examcfg.Lookup(examTypeID); ok {
			layout = &l
		}
	}

	questions := detectFormat(raw)(doc, baseURL, layout)
	return assemble(questions, baseURL, candidate, layout), nil
}

// detectFormat sniffs the raw markup before any tree walking. The color-coded
// dialect is recognizable by its page marker or by its answer colors; every
// other document goes through the class-marker path.
func detectFormat(raw string) extractor {
	if strings.Contains(raw, "ViewCandResponse") ||
		strings.Contains(raw, `bgcolor="green"`) ||
		strings.Contains(raw, `bgcolor="red"`) {
		return extractViewCandQuestions
	}
	return extractAssessmentQuestions
}

func assemble(questions []scorecard.Question, baseURL string, candidate *scorecard.Candidate, layout *examcfg.Layout) *scorecard.Data {
	resolved := layout
	if resolved == nil {
		def := examcfg.Default()
		resolved = &def
	}
	sections, qualifying, totals := scoring.Aggregate(questions, resolved)
	return &scorecard.Data{
		CandidateInfo:     candidate,
		Sections:          sections,
		Questions:         questions,
		TotalCorrect:      totals.Correct,
		TotalWrong:        totals.Wrong,
		TotalSkipped:      totals.Skipped,
		TotalScore:        totals.Score,
		TotalMaxMarks:     totals.MaxMarks,
		QualifyingSection: qualifying,
		BaseURL:           baseURL,
		ExamLayout:        resolved,
	}
}

// buildQuestion attaches section data, runs the state machine and derives the
// bilingual image pair. Shared by both extractors.
func buildQuestion(seq, sectionQNum int, chosen, correct *int, imageURL, text string, options []scorecard.Option, layout *examcfg.Layout) scorecard.Question {
	info := scoring.SectionFor(seq, layout)
	out := scoring.Score(chosen, correct, info)
	hindi, english := markup.BilingualPair(imageURL)
	return scorecard.Question{
		QuestionNumber:        seq,
		SectionQuestionNumber: sectionQNum,
		Part:                  info.Part,
		Subject:               info.Subject,
		Status:                out.Status,
		ChosenOption:          chosen,
		CorrectOption:         correct,
		MarksAwarded:          out.Marks,
		QuestionImageURL:      imageURL,
		QuestionImageHindi:    hindi,
		QuestionImageEnglish:  english,
		QuestionText:          text,
		Options:               options,
	}
}
