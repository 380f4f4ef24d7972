package scorecard

import "errors"

// ErrNotFound is returned when a scorecard id does not exist in the archive.
var ErrNotFound = errors.New("scorecard not found")

// Record is one archived parse result. ListRecords returns summaries with a
// nil Data; Get hydrates the full document.
type Record struct {
	ID            string  `json:"id"`
	ExamType      string  `json:"exam_type"`
	RollNumber    string  `json:"roll_number"`
	CandidateName string  `json:"candidate_name"`
	TotalScore    float64 `json:"total_score"`
	MaxMarks      float64 `json:"max_marks"`
	CreatedAt     int64   `json:"created_at"`
	Data          *Data   `json:"data,omitempty"`
}

// Store archives parsed scorecards. Parsing itself never touches a Store;
// only the HTTP gateway persists results.
type Store interface {
	Put(r Record) error
	Get(id string) (Record, error)
	List() ([]Record, error)
}

// NewRecord builds the archive row for a parsed document.
func NewRecord(id, examType string, data *Data, createdAt int64) Record {
	r := Record{
		ID:        id,
		ExamType:  examType,
		CreatedAt: createdAt,
		Data:      data,
	}
	if data != nil {
		r.TotalScore = data.TotalScore
		r.MaxMarks = data.TotalMaxMarks
		if data.CandidateInfo != nil {
			r.RollNumber = data.CandidateInfo.RollNumber
			r.CandidateName = data.CandidateInfo.CandidateName
		}
	}
	return r
}
