package scorecard

import (
	"database/sql"
	"encoding/json"
	"errors"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) Put(r Record) error {
	dj, err := json.Marshal(r.Data)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO scorecards (id,exam_type,roll_number,candidate_name,total_score,max_marks,data_json,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET exam_type=EXCLUDED.exam_type, roll_number=EXCLUDED.roll_number,
			candidate_name=EXCLUDED.candidate_name, total_score=EXCLUDED.total_score,
			max_marks=EXCLUDED.max_marks, data_json=EXCLUDED.data_json`,
		r.ID, r.ExamType, r.RollNumber, r.CandidateName, r.TotalScore, r.MaxMarks, string(dj), r.CreatedAt)
	return err
}

func (s *SQLStore) Get(id string) (Record, error) {
	row := s.db.QueryRow(`SELECT id,exam_type,roll_number,candidate_name,total_score,max_marks,data_json,created_at
		FROM scorecards WHERE id=$1`, id)
	var r Record
	var djson string
	if err := row.Scan(&r.ID, &r.ExamType, &r.RollNumber, &r.CandidateName, &r.TotalScore, &r.MaxMarks, &djson, &r.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	if err := json.Unmarshal([]byte(djson), &r.Data); err != nil {
		return Record{}, err
	}
	return r, nil
}

func (s *SQLStore) List() ([]Record, error) {
	rows, err := s.db.Query(`SELECT id,exam_type,roll_number,candidate_name,total_score,max_marks,created_at
		FROM scorecards ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.ExamType, &r.RollNumber, &r.CandidateName, &r.TotalScore, &r.MaxMarks, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
