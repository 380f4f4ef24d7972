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

var qNoRe = regexp.MustCompile(`(?i)Q\.?\s*No[:\s]*(\d+)`)

// extractViewCandQuestions walks the color-coded dialect: a question anchor
// row ("Q. No: 12") followed by up to five option rows, with correctness and
// choice carried by row background color. Green and yellow mark the correct
// option, red marks the chosen one; a red row that is not also green is an
// implicit wrong answer.
func extractViewCandQuestions(doc *html.Node, baseURL string, layout *examcfg.Layout) []scorecard.Question {
	var questions []scorecard.Question
	seq := 0

	for _, table := range markup.ByTag(doc, "table") {
		rows := markup.ByTag(table, "tr")
		i := 0
		for i < len(rows) {
			row := rows[i]
			var text string
			if td := markup.FirstByTag(row, "td"); td != nil {
				text = strings.TrimSpace(markup.Text(td))
			}
			m := qNoRe.FindStringSubmatch(text)
			if m == nil {
				m = displayNumRe.FindStringSubmatch(text)
			}
			if m == nil {
				i++
				continue
			}

			seq++
			var imageURL string
			if img := markup.FirstByTag(row, "img"); img != nil {
				imageURL = markup.ResolveImageURL(markup.Attr(img, "src"), baseURL)
			}

			options, correct, chosen, next := optionRows(rows, i+1, baseURL)

			// Some vendor instances render a correctly answered question as a
			// single green row with no red highlight anywhere. Observed
			// heuristic, kept as-is: with no red row but a correct option,
			// treat the correct option as the chosen one.
			if chosen == nil && correct != nil {
				for k := range options {
					if options[k].IsCorrect {
						n := options[k].OptionNumber
						chosen = &n
						options[k].IsChosen = true
						break
					}
				}
			}

			sectionQNum := seq
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				sectionQNum = n
			}

			questions = append(questions, buildQuestion(seq, sectionQNum, chosen, correct, imageURL, "", options, layout))
			i = next
		}
	}
	return questions
}

// optionRows consumes consecutive option rows starting at index from. A row
// that does not begin with "<digit>." ends the scan; fewer than five options
// is valid.
func optionRows(rows []*html.Node, from int, baseURL string) (options []scorecard.Option, correct, chosen *int, next int) {
	j := from
	for j < len(rows) && len(options) < 5 {
		optRow := rows[j]
		optTd := markup.FirstByTag(optRow, "td")
		var optText string
		if optTd != nil {
			optText = strings.TrimSpace(markup.Text(optTd))
		}
		m := optNumRe.FindStringSubmatch(optText)
		if m == nil {
			break
		}
		optNum, err := strconv.Atoi(m[1])
		if err != nil {
			break
		}

		bg := strings.ToLower(markup.Attr(optRow, "bgcolor"))
		isGreen := bg == "green" || bg == "#00ff00" || bg == "lime"
		isYellow := bg == "yellow" || bg == "#ffff00"
		isRed := bg == "red" || bg == "#ff0000"

		isCorrect := isGreen || isYellow
		if isCorrect {
			n := optNum
			correct = &n
		}
		if isRed {
			n := optNum
			chosen = &n
		}

		var imageURL string
		if img := markup.FirstByTag(optRow, "img"); img != nil {
			imageURL = markup.ResolveImageURL(markup.Attr(img, "src"), baseURL)
		}

		options = append(options, scorecard.Option{
			OptionNumber: optNum,
			ImageURL:     imageURL,
			Text:         markup.ExtractOptionText(optTd),
			IsCorrect:    isCorrect,
			IsChosen:     isRed,
		})
		j++
	}
	return options, correct, chosen, j
}
