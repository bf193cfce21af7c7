package sqlite

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/katalystvc/lead-capture-service/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS leads (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT NOT NULL,
	company TEXT,
	role TEXT,
	phone TEXT,
	topic TEXT NOT NULL,
	notes TEXT,
	consent INTEGER NOT NULL,
	source_page TEXT,
	utm_source TEXT,
	utm_medium TEXT,
	utm_campaign TEXT,
	utm_term TEXT,
	utm_content TEXT,
	submission_time TEXT NOT NULL
)`

const insertLead = `
INSERT INTO leads (
	first_name, last_name, email, company, role, phone, topic, notes, consent,
	source_page, utm_source, utm_medium, utm_campaign, utm_term, utm_content,
	submission_time
) VALUES (
	:first_name, :last_name, :email, :company, :role, :phone, :topic, :notes, :consent,
	:source_page, :utm_source, :utm_medium, :utm_campaign, :utm_term, :utm_content,
	:submission_time
)`

// Repository implements repository.LeadRepository on a SQLite database file.
type Repository struct {
	db   *sqlx.DB
	path string
	log  *zap.Logger
}

// NewRepository opens (or creates on first write) the SQLite database at path.
func NewRepository(path string, log *zap.Logger) (*Repository, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite allows a single writer at a time; one connection keeps
	// concurrent handlers from racing into SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	return &Repository{
		db:   db,
		path: path,
		log:  log,
	}, nil
}

// Init creates the leads table if it doesn't exist. Existing rows are
// left untouched.
func (r *Repository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create leads table: %w", err)
	}

	r.log.Info("SQLite schema initialized", zap.String("path", r.path))
	return nil
}

// Insert appends a lead in a single statement. The identifier comes from
// the AUTOINCREMENT column; the submission time is stamped here, not by
// the caller.
func (r *Repository) Insert(ctx context.Context, lead *domain.Lead) (int64, error) {
	lead.SubmissionTime = time.Now().Format(time.RFC3339)

	res, err := r.db.NamedExecContext(ctx, insertLead, lead)
	if err != nil {
		return 0, fmt.Errorf("failed to insert lead: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read assigned lead id: %w", err)
	}

	lead.ID = id
	return id, nil
}

// ListAll returns every lead, most recent first.
func (r *Repository) ListAll(ctx context.Context) ([]domain.Lead, error) {
	leads := []domain.Lead{}
	err := r.db.SelectContext(ctx, &leads,
		`SELECT * FROM leads ORDER BY submission_time DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	return leads, nil
}

// Count returns the total number of stored leads.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM leads`); err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}

	return count, nil
}

// Exists reports whether the database file has been created on disk.
func (r *Repository) Exists() bool {
	_, err := os.Stat(r.path)
	return err == nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}
