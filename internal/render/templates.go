package render

const imagesPartial = `{{define "question-media"}}
{{- range questionImages .Q .Lang}}
<div class="question-image">{{if .Label}}<div class="lang-label">{{.Label}}</div>{{end}}<img src="{{.URL}}" alt="Question" loading="lazy"></div>
{{- end}}
{{- with .Q.QuestionText}}<div class="question-text">{{nl2br .}}</div>{{end}}
{{- end}}`

const baseCSS = `
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Roboto, Arial, sans-serif; background: #f4f6f8; color: #1f2933; line-height: 1.5; }
.container { max-width: 900px; margin: 0 auto; padding: 16px; }
.doc-header { text-align: center; padding: 20px 0; border-bottom: 3px solid #2563eb; margin-bottom: 20px; }
.doc-header h1 { font-size: 1.5rem; color: #1e3a8a; }
.doc-header .subtitle { color: #64748b; font-size: 0.95rem; margin-top: 4px; }
section { background: #fff; border-radius: 8px; padding: 16px; margin-bottom: 20px; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
section h2 { font-size: 1.1rem; color: #1e3a8a; margin-bottom: 12px; }
table { width: 100%; border-collapse: collapse; }
th, td { padding: 8px 10px; text-align: left; border-bottom: 1px solid #e2e8f0; }
thead th { background: #eff6ff; color: #1e3a8a; }
.qual-badge { background: #fef3c7; color: #92400e; font-size: 0.75rem; padding: 2px 8px; border-radius: 10px; vertical-align: middle; }
.question-card { border: 1px solid #e2e8f0; border-radius: 8px; padding: 12px; margin-bottom: 14px; background: #fff; }
.question-head { display: flex; align-items: center; gap: 10px; margin-bottom: 10px; }
.q-number { font-weight: 700; color: #1e3a8a; }
.question-image img { max-width: 100%; height: auto; border: 1px solid #e2e8f0; border-radius: 4px; margin: 6px 0; }
.lang-label { font-size: 0.75rem; color: #64748b; text-transform: uppercase; letter-spacing: 0.05em; }
.question-text { white-space: normal; margin: 6px 0; }
.option { display: flex; align-items: center; gap: 8px; padding: 6px 10px; border: 1px solid #e2e8f0; border-radius: 6px; margin: 4px 0; }
.option img { max-height: 60px; }
.opt-label { font-weight: 700; min-width: 1.5em; }
.opt-tag { font-size: 0.7rem; padding: 1px 8px; border-radius: 10px; margin-left: auto; }
.opt-tag.chosen { background: #dbeafe; color: #1e40af; }
.opt-tag.correct { background: #dcfce7; color: #166534; }
`

const reviewCSS = `
.status-badge { font-size: 0.75rem; padding: 2px 10px; border-radius: 10px; text-transform: capitalize; }
.status-badge.correct { background: #dcfce7; color: #166534; }
.status-badge.wrong { background: #fee2e2; color: #991b1b; }
.status-badge.unattempted { background: #f1f5f9; color: #475569; }
.status-badge.bonus { background: #fef3c7; color: #92400e; }
.marks-positive { color: #16a34a; font-weight: 700; margin-left: auto; }
.marks-negative { color: #dc2626; font-weight: 700; margin-left: auto; }
.marks-zero { color: #64748b; font-weight: 700; margin-left: auto; }
.option.correct-answer { border-color: #16a34a; background: #f0fdf4; }
.option.wrong-chosen { border-color: #dc2626; background: #fef2f2; }
.option.highlight-correct { box-shadow: 0 0 0 2px #bbf7d0; }
tr.qualifying td { color: #92400e; }
tr.grand-total td { font-weight: 700; border-top: 2px solid #2563eb; }
`

const quizCSS = `
.option { cursor: pointer; transition: background 0.15s; }
.option:hover { background: #eff6ff; }
.question-card.answered .option { cursor: default; }
.option.picked { border-color: #2563eb; }
.option.right { border-color: #16a34a; background: #f0fdf4; }
.option.wrong { border-color: #dc2626; background: #fef2f2; }
.reveal-btn { margin-top: 8px; padding: 6px 14px; border: 1px solid #2563eb; border-radius: 6px; background: #fff; color: #2563eb; cursor: pointer; }
.reveal-btn:hover { background: #eff6ff; }
.bonus-note { font-size: 0.8rem; color: #92400e; margin-top: 6px; display: none; }
.question-card.bonus .bonus-note { display: block; }
`

const quizScript = `
function revealCorrect(card) {
  var correct = card.getAttribute('data-correct');
  if (!correct) { card.classList.add('bonus'); return; }
  var opts = card.querySelectorAll('.option');
  for (var i = 0; i < opts.length; i++) {
    if (opts[i].getAttribute('data-opt') === correct) opts[i].classList.add('right');
  }
}
function selectOption(el) {
  var card = el.closest('.question-card');
  if (card.classList.contains('answered')) return;
  card.classList.add('answered');
  el.classList.add('picked');
  var correct = card.getAttribute('data-correct');
  if (!correct) { card.classList.add('bonus'); return; }
  if (el.getAttribute('data-opt') === correct) {
    el.classList.add('right');
  } else {
    el.classList.add('wrong');
    revealCorrect(card);
  }
}
function showAnswer(btn) {
  var card = btn.closest('.question-card');
  card.classList.add('answered');
  revealCorrect(card);
}
`

const responseSheetPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Response Sheet{{with .Data.CandidateInfo}}{{with .RollNumber}} - {{.}}{{end}}{{end}}</title>
<style>` + baseCSS + reviewCSS + `</style>
</head>
<body>
<div class="container">
<header class="doc-header">
<h1>{{if .Data.ExamLayout}}{{.Data.ExamLayout.Name}}{{else}}Response Sheet{{end}}</h1>
<div class="subtitle">Response Sheet with Answer Key</div>
</header>
{{with .Data.CandidateInfo}}
<section class="candidate-card">
<h2>Candidate Details</h2>
<table>
{{if .RollNumber}}<tr><th>Roll Number</th><td>{{.RollNumber}}</td></tr>{{end}}
{{if .CandidateName}}<tr><th>Candidate Name</th><td>{{.CandidateName}}</td></tr>{{end}}
{{if .VenueName}}<tr><th>Venue</th><td>{{.VenueName}}</td></tr>{{end}}
{{if .ExamDate}}<tr><th>Exam Date</th><td>{{.ExamDate}}</td></tr>{{end}}
{{if .ExamTime}}<tr><th>Exam Time</th><td>{{.ExamTime}}</td></tr>{{end}}
{{if .Subject}}<tr><th>Subject</th><td>{{.Subject}}</td></tr>{{end}}
</table>
</section>
{{end}}
<section class="summary-card">
<h2>Score Summary</h2>
<table>
<thead><tr><th>Section</th><th>Questions</th><th>Correct</th><th>Wrong</th><th>Skipped</th><th>Score</th></tr></thead>
<tbody>
{{range .AllSections}}<tr{{if .Qualifying}} class="qualifying"{{end}}><td>{{if .Part}}Part {{.Part}}: {{end}}{{.Subject}}{{if .Qualifying}} (Qualifying){{end}}</td><td>{{.TotalQuestions}}</td><td>{{.Correct}}</td><td>{{.Wrong}}</td><td>{{.Skipped}}</td><td>{{num .Score}} / {{num .MaxMarks}}</td></tr>
{{end}}<tr class="grand-total"><td>Total</td><td>{{.TotalQuestions}}</td><td>{{.Data.TotalCorrect}}</td><td>{{.Data.TotalWrong}}</td><td>{{.Data.TotalSkipped}}</td><td>{{num .Data.TotalScore}} / {{num .Data.TotalMaxMarks}}</td></tr>
</tbody>
</table>
</section>
{{range .AllSections}}
<section class="section-block">
<h2>{{.Subject}}{{if .Qualifying}} <span class="qual-badge">Qualifying</span>{{end}}</h2>
{{range .Questions}}{{$q := .}}
<div class="question-card status-{{.Status}}">
<div class="question-head">
<span class="q-number">Q.{{displayNum .}}</span>
<span class="status-badge {{.Status}}">{{.Status}}</span>
<span class="{{marksClass .MarksAwarded}}">{{marks .MarksAwarded}}</span>
</div>
{{template "question-media" (media . $.Lang)}}
<div class="options">
{{range .Options}}<div class="{{optionClass $q .}}">
<span class="opt-label">{{optionLabel .OptionNumber}}.</span>
{{if .ImageURL}}<img src="{{.ImageURL}}" alt="Option {{optionLabel .OptionNumber}}" loading="lazy">{{end}}
{{- with .Text}}<span class="opt-text">{{.}}</span>{{end}}
{{- if .IsChosen}}<span class="opt-tag chosen">Your answer</span>{{end}}
{{- if .IsCorrect}}<span class="opt-tag correct">Correct</span>{{end}}
</div>
{{end}}</div>
</div>
{{end}}</section>
{{end}}</div>
</body>
</html>
`

const answerKeyPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Answer Key{{if .Data.ExamLayout}} - {{.Data.ExamLayout.Name}}{{end}}</title>
<style>` + baseCSS + `
.answer-line { margin-top: 8px; font-weight: 700; color: #166534; }
.answer-line.bonus { color: #92400e; }
</style>
</head>
<body>
<div class="container">
<header class="doc-header">
<h1>{{if .Data.ExamLayout}}{{.Data.ExamLayout.Name}}{{else}}Answer Key{{end}}</h1>
<div class="subtitle">Answer Key</div>
</header>
{{range .AllSections}}
<section class="section-block">
<h2>{{.Subject}}{{if .Qualifying}} <span class="qual-badge">Qualifying</span>{{end}}</h2>
{{range .Questions}}
<div class="question-card">
<div class="question-head"><span class="q-number">Q.{{displayNum .}}</span></div>
{{template "question-media" (media . $.Lang)}}
<div class="options">
{{range .Options}}<div class="option{{if .IsCorrect}} correct-answer{{end}}">
<span class="opt-label">{{optionLabel .OptionNumber}}.</span>
{{if .ImageURL}}<img src="{{.ImageURL}}" alt="Option {{optionLabel .OptionNumber}}" loading="lazy">{{end}}
{{- with .Text}}<span class="opt-text">{{.}}</span>{{end}}
{{- if .IsCorrect}}<span class="opt-tag correct">Correct</span>{{end}}
</div>
{{end}}</div>
{{if correctLabel .}}<div class="answer-line">Answer: {{correctLabel .}}</div>{{else}}<div class="answer-line bonus">Bonus question (all candidates awarded marks)</div>{{end}}
</div>
{{end}}</section>
{{end}}</div>
</body>
</html>
`

const quizPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Practice Quiz{{if .Data.ExamLayout}} - {{.Data.ExamLayout.Name}}{{end}}</title>
<style>` + baseCSS + quizCSS + `</style>
</head>
<body>
<div class="container">
<header class="doc-header">
<h1>{{if .Data.ExamLayout}}{{.Data.ExamLayout.Name}}{{else}}Practice Quiz{{end}}</h1>
<div class="subtitle">Tap an option to answer, or reveal the key</div>
</header>
{{range .AllSections}}
<section class="section-block">
<h2>{{.Subject}}{{if .Qualifying}} <span class="qual-badge">Qualifying</span>{{end}}</h2>
{{range .Questions}}
<div class="question-card" data-correct="{{correctLabel .}}">
<div class="question-head"><span class="q-number">Q.{{displayNum .}}</span></div>
{{template "question-media" (media . $.Lang)}}
<div class="options">
{{range .Options}}<div class="option" data-opt="{{optionLabel .OptionNumber}}" onclick="selectOption(this)">
<span class="opt-label">{{optionLabel .OptionNumber}}.</span>
{{if .ImageURL}}<img src="{{.ImageURL}}" alt="Option {{optionLabel .OptionNumber}}" loading="lazy">{{end}}
{{- with .Text}}<span class="opt-text">{{.}}</span>{{end}}
</div>
{{end}}</div>
<button class="reveal-btn" onclick="showAnswer(this)">Show Answer</button>
<div class="bonus-note">Bonus question: every option earns full marks.</div>
</div>
{{end}}</section>
{{end}}</div>
<script>` + quizScript + `</script>
</body>
</html>
`
