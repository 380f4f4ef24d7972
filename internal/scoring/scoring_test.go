package scoring

import (
	"encoding/json"
	"testing"

	"github.com/score-sight/scoresight/internal/examcfg"
	"github.com/score-sight/scoresight/internal/scorecard"
)

func intp(v int) *int { return &v }

func TestScore_StateMachine(t *testing.T) {
	info := SectionInfo{Part: "A", Subject: "Maths", CorrectMarks: 2, NegativeMarks: 0.5}
	tests := []struct {
		name            string
		chosen, correct *int
		status          scorecard.Status
		marks           float64
	}{
		{"correct", intp(3), intp(3), scorecard.StatusCorrect, 2},
		{"wrong", intp(1), intp(3), scorecard.StatusWrong, -0.5},
		{"unattempted", nil, intp(3), scorecard.StatusUnattempted, 0},
		{"bonus no correct option", nil, nil, scorecard.StatusBonus, 2},
		{"bonus even when chosen", intp(2), nil, scorecard.StatusBonus, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.chosen, tc.correct, info)
			if got.Status != tc.status || got.Marks != tc.marks {
				t.Errorf("Score = {%s %v}, want {%s %v}", got.Status, got.Marks, tc.status, tc.marks)
			}
		})
	}
}

// Fractional negative marks must be stored to exactly 3 decimals.
func TestScore_Rounding(t *testing.T) {
	info := SectionInfo{CorrectMarks: 1, NegativeMarks: 0.333}
	got := Score(intp(1), intp(2), info)
	if got.Marks != -0.333 {
		t.Errorf("marks = %v, want -0.333", got.Marks)
	}
	if Round3(-0.333*3) != -0.999 {
		t.Errorf("Round3(-0.999) = %v", Round3(-0.333*3))
	}
}

func TestSectionFor(t *testing.T) {
	layout, _ := examcfg.Lookup("SSC_CGL_PRE")

	if got := SectionFor(1, &layout); got.Part != "A" {
		t.Errorf("index 1 mapped to part %q", got.Part)
	}
	if got := SectionFor(25, &layout); got.Part != "A" {
		t.Errorf("index 25 mapped to part %q", got.Part)
	}
	if got := SectionFor(26, &layout); got.Part != "B" {
		t.Errorf("index 26 mapped to part %q", got.Part)
	}
	if got := SectionFor(100, &layout); got.Part != "D" {
		t.Errorf("index 100 mapped to part %q", got.Part)
	}

	// Beyond every range: generic unknown tuple, not a failure.
	if got := SectionFor(101, &layout); got.Part != "?" || got.Subject != "Unknown" || got.CorrectMarks != 1 || got.NegativeMarks != 0.25 {
		t.Errorf("overflow index mapped to %+v", got)
	}

	// Nil layout: default catalog entry.
	if got := SectionFor(1, nil); got.Part != "A" || got.CorrectMarks != 3 {
		t.Errorf("nil layout mapped index 1 to %+v", got)
	}
	if got := SectionFor(10_000, nil); got.Part != "?" || got.CorrectMarks != 3 || got.NegativeMarks != 1 {
		t.Errorf("nil layout overflow mapped to %+v", got)
	}
}

// buildQuestions produces n questions whose status is decided by pick.
func buildQuestions(n int, layout *examcfg.Layout, pick func(i int) (chosen, correct *int)) []scorecard.Question {
	qs := make([]scorecard.Question, 0, n)
	for i := 1; i <= n; i++ {
		chosen, correct := pick(i)
		info := SectionFor(i, layout)
		out := Score(chosen, correct, info)
		qs = append(qs, scorecard.Question{
			QuestionNumber: i,
			Part:           info.Part,
			Subject:        info.Subject,
			Status:         out.Status,
			ChosenOption:   chosen,
			CorrectOption:  correct,
			MarksAwarded:   out.Marks,
		})
	}
	return qs
}

// Spec scenario: four 25-question sections at 2 / -0.5. Q1-25 correct,
// 26-50 wrong, 51-75 unattempted, 76-100 bonus.
func TestAggregate_CGLPreScenario(t *testing.T) {
	layout, _ := examcfg.Lookup("SSC_CGL_PRE")
	qs := buildQuestions(100, &layout, func(i int) (*int, *int) {
		switch {
		case i <= 25:
			return intp(1), intp(1)
		case i <= 50:
			return intp(1), intp(2)
		case i <= 75:
			return nil, intp(1)
		default:
			return nil, nil
		}
	})

	sections, qualifying, totals := Aggregate(qs, &layout)
	if qualifying != nil {
		t.Fatalf("CGL prelims has no qualifying section, got %+v", qualifying)
	}
	wantScores := []float64{50.0, -12.5, 0.0, 50.0}
	if len(sections) != len(wantScores) {
		t.Fatalf("got %d sections, want %d", len(sections), len(wantScores))
	}
	for i, want := range wantScores {
		if sections[i].Score != want {
			t.Errorf("section %d score = %v, want %v", i, sections[i].Score, want)
		}
	}
	if totals.Score != 87.5 {
		t.Errorf("total score = %v, want 87.5", totals.Score)
	}
	if totals.MaxMarks != 200 {
		t.Errorf("max marks = %v, want 200", totals.MaxMarks)
	}
	if totals.Correct != 25 || totals.Wrong != 25 || totals.Skipped != 25 {
		t.Errorf("counts = %d/%d/%d, want 25/25/25", totals.Correct, totals.Wrong, totals.Skipped)
	}
}

// The qualifying section is reported separately and never folded into grand
// totals.
func TestAggregate_QualifyingExcluded(t *testing.T) {
	layout, _ := examcfg.Lookup("SSC_CGL_MAINS") // part E (131-150) is qualifying
	qs := buildQuestions(150, &layout, func(i int) (*int, *int) {
		return intp(1), intp(1) // everything correct
	})

	sections, qualifying, totals := Aggregate(qs, &layout)
	if qualifying == nil {
		t.Fatal("expected a qualifying section")
	}
	if qualifying.Part != "E" || qualifying.Correct != 20 || qualifying.Score != 60.0 {
		t.Errorf("qualifying = %+v", qualifying)
	}
	for _, s := range sections {
		if s.Part == "E" {
			t.Error("qualifying section leaked into the section list")
		}
	}
	if totals.Correct != 130 {
		t.Errorf("total correct = %d, want 130 (qualifying excluded)", totals.Correct)
	}
	if totals.Score != 390.0 || totals.MaxMarks != 390.0 {
		t.Errorf("totals = %v/%v, want 390.0/390.0", totals.Score, totals.MaxMarks)
	}
}

// Re-running aggregation over the same input must be byte-identical.
func TestAggregate_Deterministic(t *testing.T) {
	layout, _ := examcfg.Lookup("RRB_NTPC_CBT2") // 0.333 negative marks
	qs := buildQuestions(120, &layout, func(i int) (*int, *int) {
		if i%3 == 0 {
			return intp(2), intp(1)
		}
		return intp(1), intp(1)
	})

	s1, q1, t1 := Aggregate(qs, &layout)
	s2, q2, t2 := Aggregate(qs, &layout)
	b1, _ := json.Marshal(struct {
		S []scorecard.Section
		Q *scorecard.Section
		T Totals
	}{s1, q1, t1})
	b2, _ := json.Marshal(struct {
		S []scorecard.Section
		Q *scorecard.Section
		T Totals
	}{s2, q2, t2})
	if string(b1) != string(b2) {
		t.Error("aggregation is not deterministic")
	}
}
