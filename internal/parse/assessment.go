package parse

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/score-sight/scoresight/internal/examcfg"
	"github.com/score-sight/scoresight/internal/markup"
	"github.com/score-sight/scoresight/internal/scorecard"
)

var (
	displayNumRe = regexp.MustCompile(`Q\.(\d+)`)
	optNumRe     = regexp.MustCompile(`^(\d+)\.`)
)

// extractAssessmentQuestions walks the class-marker dialect: one td.rw per
// question, holding a questionRowTbl (body + answer cells) and a menu-tbl
// (status / chosen option). Rows missing either table are not questions and
// do not advance the sequential index.
func extractAssessmentQuestions(doc *html.Node, baseURL string, layout *examcfg.Layout) []scorecard.Question {
	var questions []scorecard.Question
	seq := 0

	rows := markup.FindAll(doc, func(n *html.Node) bool {
		return markup.IsElement(n, "td") && markup.HasClass(n, "rw")
	})
	for _, row := range rows {
		questionTbl := markup.First(row, func(n *html.Node) bool {
			return markup.IsElement(n, "table") && markup.HasClass(n, "questionRowTbl")
		})
		menuTbl := markup.First(row, func(n *html.Node) bool {
			return markup.IsElement(n, "table") && markup.HasClass(n, "menu-tbl")
		})
		if questionTbl == nil || menuTbl == nil {
			continue
		}
		seq++

		sectionQNum := 0
		qNumTd := markup.First(questionTbl, func(n *html.Node) bool {
			return markup.IsElement(n, "td") && markup.HasClass(n, "bold") && markup.Attr(n, "valign") == "top"
		})
		if qNumTd != nil {
			if m := displayNumRe.FindStringSubmatch(strings.TrimSpace(markup.Text(qNumTd))); m != nil {
				sectionQNum, _ = strconv.Atoi(m[1])
			}
		}

		imageURL, text := questionBody(questionTbl, baseURL)
		chosen := chosenFromMenu(menuTbl)
		options, correct := answerOptions(questionTbl, baseURL, chosen)

		questions = append(questions, buildQuestion(seq, sectionQNum, chosen, correct, imageURL, text, options, layout))
	}
	return questions
}

// questionBody finds the first left-aligned bold cell. An embedded image wins
// over text; no text is recorded from a cell that carries one.
func questionBody(questionTbl *html.Node, baseURL string) (imageURL, text string) {
	for _, tr := range markup.ByTag(questionTbl, "tr") {
		td := markup.First(tr, func(n *html.Node) bool {
			return markup.IsElement(n, "td") && markup.HasClass(n, "bold") &&
				strings.Contains(markup.Attr(n, "style"), "text-align: left")
		})
		if td == nil {
			continue
		}
		if img := markup.FirstByTag(td, "img"); img != nil {
			return markup.ResolveImageURL(markup.Attr(img, "src"), baseURL), ""
		}
		if t := markup.ExtractText(td); len(t) > 5 {
			return "", t
		}
		return "", ""
	}
	return "", ""
}

// chosenFromMenu reads the "Chosen Option" label/value pair out of the menu
// table. Values that fail to parse as a positive number mean unattempted.
func chosenFromMenu(menuTbl *html.Node) *int {
	var chosen *int
	for _, tr := range markup.ByTag(menuTbl, "tr") {
		tds := markup.ByTag(tr, "td")
		if len(tds) < 2 {
			continue
		}
		label := strings.TrimSpace(markup.Text(tds[0]))
		value := strings.TrimSpace(markup.Text(tds[1]))
		if strings.Contains(label, "Chosen Option") {
			if num, err := strconv.Atoi(value); err == nil && num > 0 {
				chosen = &num
			}
		}
	}
	return chosen
}

// answerOptions collects the rightAns/wrngAns cells. The presence of any
// rightAns cell decides between a normal and a bonus question, so the correct
// option stays nil when none is found. Tick/cross indicator assets are not
// option images.
func answerOptions(questionTbl *html.Node, baseURL string, chosen *int) (options []scorecard.Option, correct *int) {
	cells := markup.FindAll(questionTbl, func(n *html.Node) bool {
		return markup.IsElement(n, "td") && (markup.HasClass(n, "rightAns") || markup.HasClass(n, "wrngAns"))
	})
	for _, td := range cells {
		m := optNumRe.FindStringSubmatch(strings.TrimSpace(markup.Text(td)))
		if m == nil {
			continue
		}
		optNum, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		isRight := markup.HasClass(td, "rightAns")
		if isRight {
			n := optNum
			correct = &n
		}

		var imageURL string
		for _, img := range markup.ByTag(td, "img") {
			src := markup.Attr(img, "src")
			if strings.Contains(src, "tick.png") || strings.Contains(src, "cross.png") {
				continue
			}
			imageURL = markup.ResolveImageURL(src, baseURL)
			break
		}

		options = append(options, scorecard.Option{
			OptionNumber: optNum,
			ImageURL:     imageURL,
			Text:         markup.ExtractOptionText(td),
			IsCorrect:    isRight,
			IsChosen:     chosen != nil && *chosen == optNum,
		})
	}
	return options, correct
}
