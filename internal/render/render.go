// Package render turns a parsed scorecard into self-contained HTML documents:
// a full review sheet, an answer key and an interactive quiz. Renderers only
// read the scorecard; they can run in any order against the same Data.
package render

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/score-sight/scoresight/internal/scorecard"
)

// Language selects which per-question image variant a document embeds.
type Language string

const (
	LangHindi     Language = "hindi"
	LangEnglish   Language = "english"
	LangBilingual Language = "bilingual"
)

// Mode selects the document flavor.
type Mode string

const (
	// ModeResponseSheet is the full review document: candidate info,
	// section table and every question with chosen/correct indicators.
	ModeResponseSheet Mode = "response-sheet"
	// ModeAnswerKey shows questions and correct answers only.
	ModeAnswerKey Mode = "answer-key"
	// ModeQuiz is the clickable practice document with a reveal action.
	ModeQuiz Mode = "quiz"
)

// ParseLanguage validates a language string, defaulting empty to bilingual.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LangHindi, LangEnglish, LangBilingual:
		return Language(s), nil
	case "":
		return LangBilingual, nil
	}
	return "", fmt.Errorf("unknown language %q", s)
}

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeResponseSheet, ModeAnswerKey, ModeQuiz:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown render mode %q", s)
}

// Render produces one self-contained HTML document.
func Render(data *scorecard.Data, lang Language, mode Mode) (string, error) {
	var tmpl *template.Template
	switch mode {
	case ModeResponseSheet:
		tmpl = responseSheetTmpl
	case ModeAnswerKey:
		tmpl = answerKeyTmpl
	case ModeQuiz:
		tmpl = quizTmpl
	default:
		return "", fmt.Errorf("unknown render mode %q", mode)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, buildView(data, lang)); err != nil {
		return "", err
	}
	return b.String(), nil
}

type docView struct {
	Data           *scorecard.Data
	Lang           Language
	AllSections    []sectionView
	TotalQuestions int // non-qualifying, matching the grand totals
}

// sectionView pairs a section aggregate with its questions for rendering.
// Questions are grouped by part in document order.
type sectionView struct {
	scorecard.Section
	Questions []scorecard.Question
}

func buildView(data *scorecard.Data, lang Language) docView {
	view := docView{Data: data, Lang: lang}
	byPart := make(map[string][]scorecard.Question)
	for _, q := range data.Questions {
		byPart[q.Part] = append(byPart[q.Part], q)
	}
	for _, s := range data.Sections {
		view.AllSections = append(view.AllSections, sectionView{Section: s, Questions: byPart[s.Part]})
		view.TotalQuestions += s.TotalQuestions
	}
	if qs := data.QualifyingSection; qs != nil {
		view.AllSections = append(view.AllSections, sectionView{Section: *qs, Questions: byPart[qs.Part]})
	}
	return view
}

// langImage is one image block to embed for a question.
type langImage struct {
	Label string // "Hindi" / "English" in bilingual mode, "" otherwise
	URL   string
}

// questionImages picks the image variants the language mode asks for,
// falling back to the generic image when no language-specific one exists.
func questionImages(q scorecard.Question, lang Language) []langImage {
	if lang == LangBilingual {
		var out []langImage
		if q.QuestionImageHindi != "" {
			out = append(out, langImage{Label: "Hindi", URL: q.QuestionImageHindi})
		}
		if q.QuestionImageEnglish != "" {
			out = append(out, langImage{Label: "English", URL: q.QuestionImageEnglish})
		}
		if out == nil && q.QuestionImageURL != "" {
			out = append(out, langImage{URL: q.QuestionImageURL})
		}
		return out
	}

	url := q.QuestionImageURL
	if lang == LangEnglish && q.QuestionImageEnglish != "" {
		url = q.QuestionImageEnglish
	}
	if lang == LangHindi && q.QuestionImageHindi != "" {
		url = q.QuestionImageHindi
	}
	if url == "" {
		return nil
	}
	return []langImage{{URL: url}}
}

type mediaView struct {
	Q    scorecard.Question
	Lang Language
}

// optionLetter maps 1-based option numbers to the labels candidates see.
func optionLetter(n int) string {
	if n < 1 || n > 26 {
		return strconv.Itoa(n)
	}
	return string(rune('A' + n - 1))
}

var tmplFuncs = template.FuncMap{
	"questionImages": questionImages,
	"media": func(q scorecard.Question, lang Language) mediaView {
		return mediaView{Q: q, Lang: lang}
	},
	"optionLabel": optionLetter,
	"correctLabel": func(q scorecard.Question) string {
		if q.CorrectOption == nil {
			return ""
		}
		return optionLetter(*q.CorrectOption)
	},
	"displayNum": func(q scorecard.Question) int {
		if q.SectionQuestionNumber > 0 {
			return q.SectionQuestionNumber
		}
		return q.QuestionNumber
	},
	"num": formatNum,
	"marks": func(v float64) string {
		if v > 0 {
			return "+" + formatNum(v)
		}
		return formatNum(v)
	},
	"marksClass": func(v float64) string {
		switch {
		case v > 0:
			return "marks-positive"
		case v < 0:
			return "marks-negative"
		}
		return "marks-zero"
	},
	"optionClass": func(q scorecard.Question, opt scorecard.Option) string {
		class := "option"
		wrongChosen := opt.IsChosen && !opt.IsCorrect
		if opt.IsCorrect {
			class += " correct-answer"
		}
		if wrongChosen {
			class += " wrong-chosen"
		}
		if opt.IsCorrect && q.Status == scorecard.StatusWrong && !wrongChosen {
			class += " highlight-correct"
		}
		return class
	},
	"nl2br": func(s string) template.HTML {
		escaped := template.HTMLEscapeString(s)
		return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
	},
}

// formatNum renders scores the short way: 2 not 2.000, -0.5 not -0.500.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mustParse(name string, pages ...string) *template.Template {
	t := template.New(name).Funcs(tmplFuncs)
	for _, p := range pages {
		t = template.Must(t.Parse(p))
	}
	return t
}

var (
	responseSheetTmpl = mustParse("response-sheet", imagesPartial, responseSheetPage)
	answerKeyTmpl     = mustParse("answer-key", imagesPartial, answerKeyPage)
	quizTmpl          = mustParse("quiz", imagesPartial, quizPage)
)
