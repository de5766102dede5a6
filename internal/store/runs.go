package store

import (
	"fmt"
	"time"

	"github.com/pdstack5770/GSTR-2B-RECO/internal/model"
)

// Run is one completed reconciliation in the audit log.
type Run struct {
	ID         string        `json:"id"`
	BooksFile  string        `json:"booksFile"`
	Gstr2bFile string        `json:"gstr2bFile"`
	ReportType string        `json:"reportType"`
	Summary    model.Summary `json:"summary"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// CreateRun records a completed reconciliation.
func (s *Store) CreateRun(run *Run) error {
	_, err := s.db.Exec(`
		INSERT INTO recon_runs (
			id, books_file, gstr2b_file, report_type,
			total_in_books, total_in_gstr2b,
			matched, partially_matched, only_in_books, only_in_gstr2b
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID, run.BooksFile, run.Gstr2bFile, run.ReportType,
		run.Summary.TotalInBooks, run.Summary.TotalInGstr2b,
		run.Summary.Matched, run.Summary.PartiallyMatched,
		run.Summary.OnlyInBooks, run.Summary.OnlyInGstr2b,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
		SELECT id, books_file, gstr2b_file, report_type,
		       total_in_books, total_in_gstr2b,
		       matched, partially_matched, only_in_books, only_in_gstr2b,
		       created_at
		FROM recon_runs
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	out := make([]*Run, 0, limit)
	for rows.Next() {
		run := &Run{}
		if err := rows.Scan(
			&run.ID, &run.BooksFile, &run.Gstr2bFile, &run.ReportType,
			&run.Summary.TotalInBooks, &run.Summary.TotalInGstr2b,
			&run.Summary.Matched, &run.Summary.PartiallyMatched,
			&run.Summary.OnlyInBooks, &run.Summary.OnlyInGstr2b,
			&run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		out = append(out, run)
	}
	return out, rows.Err()
}
