// Package scorecard holds the canonical data model produced by the parse
// pipeline. Everything here is built once per parse and read-only afterwards;
// renderers and the archive store never mutate it.
package scorecard

import "github.com/score-sight/scoresight/internal/examcfg"

// Status of a single question under the scoring state machine.
type Status string

const (
	StatusCorrect     Status = "correct"
	StatusWrong       Status = "wrong"
	StatusUnattempted Status = "unattempted"
	// StatusBonus marks a question the vendor voided: no option is flagged
	// correct in the source, and full marks are awarded regardless of choice.
	StatusBonus Status = "bonus"
)

// Option is one answer choice of a question. OptionNumber is 1-based and
// stable across language variants.
type Option struct {
	OptionNumber int    `json:"option_number"`
	ImageURL     string `json:"image_url,omitempty"`
	Text         string `json:"text,omitempty"`
	IsCorrect    bool   `json:"is_correct"`
	IsChosen     bool   `json:"is_chosen"`
}

// Question is the atomic unit of the model.
//
// QuestionNumber is the sequential 1-based index in document order and is the
// sole key into the section-range catalog. SectionQuestionNumber is whatever
// number the vendor printed next to the question; display only.
type Question struct {
	QuestionNumber        int     `json:"question_number"`
	SectionQuestionNumber int     `json:"section_question_number"`
	Part                  string  `json:"part"`
	Subject               string  `json:"subject"`
	Status                Status  `json:"status"`
	ChosenOption          *int    `json:"chosen_option"`
	CorrectOption         *int    `json:"correct_option"`
	MarksAwarded          float64 `json:"marks_awarded"` // rounded to 3 decimals
	QuestionImageURL      string  `json:"question_image_url,omitempty"`
	QuestionImageHindi    string  `json:"question_image_url_hindi,omitempty"`
	QuestionImageEnglish  string  `json:"question_image_url_english,omitempty"`
	QuestionText          string  `json:"question_text,omitempty"`
	Options               []Option `json:"options"`
}

// Section is the per-section aggregate.
type Section struct {
	Part           string  `json:"part"`
	Subject        string  `json:"subject"`
	TotalQuestions int     `json:"total_questions"`
	Correct        int     `json:"correct"`
	Wrong          int     `json:"wrong"`
	Skipped        int     `json:"skipped"`
	Bonus          int     `json:"bonus"`
	MarksPerCorrect  float64 `json:"marks_per_correct"`
	NegativePerWrong float64 `json:"negative_per_wrong"`
	MaxMarks       float64 `json:"max_marks"`
	Score          float64 `json:"score"` // rounded to 1 decimal
	Qualifying     bool    `json:"qualifying,omitempty"`
}

// Candidate identity fields scraped from the header table. Missing fields are
// empty strings, not omissions.
type Candidate struct {
	RollNumber    string `json:"roll_number"`
	CandidateName string `json:"candidate_name"`
	VenueName     string `json:"venue_name"`
	ExamDate      string `json:"exam_date"`
	ExamTime      string `json:"exam_time"`
	Subject       string `json:"subject"`
}

// Data is the canonical output of one parse call. Grand totals exclude the
// qualifying section.
type Data struct {
	CandidateInfo     *Candidate      `json:"candidate_info"`
	Sections          []Section       `json:"sections"`
	Questions         []Question      `json:"questions"`
	TotalCorrect      int             `json:"total_correct"`
	TotalWrong        int             `json:"total_wrong"`
	TotalSkipped      int             `json:"total_skipped"`
	TotalScore        float64         `json:"total_score"`
	TotalMaxMarks     float64         `json:"total_max_marks"`
	QualifyingSection *Section        `json:"qualifying_section"`
	BaseURL           string          `json:"base_url"`
	ExamLayout        *examcfg.Layout `json:"exam_layout"`
}
