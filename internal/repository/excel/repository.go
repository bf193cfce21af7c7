package excel

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/katalystvc/lead-capture-service/internal/domain"
)

const sheetName = "Leads"

var headers = []string{
	"Timestamp", "Lead ID", "First Name", "Last Name", "Email", "Company",
	"Role", "Phone", "Topic", "Notes", "Consent", "Source Page",
	"UTM Source", "UTM Medium", "UTM Campaign", "UTM Term", "UTM Content",
}

// Repository implements repository.LeadRepository on a single .xlsx
// workbook with one header row and one row per lead.
//
// Every insert opens the workbook, reads all existing rows to compute the
// next identifier, appends one row and rewrites the whole file. That O(n)
// cost per append is the contract of this backend, not an accident: the
// file layout (header row, fixed column order) is consumed directly by
// humans opening it in a spreadsheet. The mutex serializes writers within
// this process; nothing protects against a second process.
type Repository struct {
	mu   sync.Mutex
	path string
	log  *zap.Logger
}

// NewRepository creates an excel-backed repository writing to path.
func NewRepository(path string, log *zap.Logger) *Repository {
	return &Repository{
		path: path,
		log:  log,
	}
}

// Init creates the workbook with its header row if it doesn't exist yet.
// An existing file is left exactly as it is.
func (r *Repository) Init(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := os.Stat(r.path); err == nil {
		return nil
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name leads sheet: %w", err)
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header %q: %w", header, err)
		}

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to resolve header column: %w", err)
		}
		width := float64(len(header) + 2)
		if width < 15 {
			width = 15
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err := f.SaveAs(r.path); err != nil {
		return fmt.Errorf("failed to create workbook: %w", err)
	}

	r.log.Info("Created new leads workbook", zap.String("path", r.path))
	return nil
}

// Insert appends one row. The next identifier is read from the last
// existing row's Lead ID column and incremented, 1 when only the header
// row exists.
func (r *Repository) Insert(_ context.Context, lead *domain.Lead) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return 0, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("failed to read workbook rows: %w", err)
	}

	id := int64(1)
	if len(rows) > 1 {
		last, err := strconv.ParseInt(cellAt(rows[len(rows)-1], 1), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse last lead id: %w", err)
		}
		id = last + 1
	}

	lead.ID = id
	lead.SubmissionTime = time.Now().Format(time.RFC3339)

	consent := "No"
	if lead.Consent {
		consent = "Yes"
	}

	row := []interface{}{
		lead.SubmissionTime, lead.ID, lead.FirstName, lead.LastName,
		lead.Email, lead.Company, lead.Role, lead.Phone, lead.Topic,
		lead.Notes, consent, lead.SourcePage, lead.UTMSource,
		lead.UTMMedium, lead.UTMCampaign, lead.UTMTerm, lead.UTMContent,
	}

	next := len(rows) + 1
	for i, value := range row {
		cell, err := excelize.CoordinatesToCellName(i+1, next)
		if err != nil {
			return 0, fmt.Errorf("failed to resolve cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return 0, fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}

	if err := f.Save(); err != nil {
		return 0, fmt.Errorf("failed to save workbook: %w", err)
	}

	return id, nil
}

// ListAll returns every lead in insertion order.
func (r *Repository) ListAll(_ context.Context) ([]domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook rows: %w", err)
	}

	leads := []domain.Lead{}
	for i, row := range rows {
		if i == 0 {
			continue
		}

		id, err := strconv.ParseInt(cellAt(row, 1), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse lead id in row %d: %w", i+1, err)
		}

		leads = append(leads, domain.Lead{
			ID:             id,
			SubmissionTime: cellAt(row, 0),
			FirstName:      cellAt(row, 2),
			LastName:       cellAt(row, 3),
			Email:          cellAt(row, 4),
			Company:        cellAt(row, 5),
			Role:           cellAt(row, 6),
			Phone:          cellAt(row, 7),
			Topic:          cellAt(row, 8),
			Notes:          cellAt(row, 9),
			Consent:        cellAt(row, 10) == "Yes",
			SourcePage:     cellAt(row, 11),
			UTMSource:      cellAt(row, 12),
			UTMMedium:      cellAt(row, 13),
			UTMCampaign:    cellAt(row, 14),
			UTMTerm:        cellAt(row, 15),
			UTMContent:     cellAt(row, 16),
		})
	}

	return leads, nil
}

// Count returns rows minus the header row, floored at zero.
func (r *Repository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return 0, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return 0, fmt.Errorf("failed to read workbook rows: %w", err)
	}

	count := int64(len(rows)) - 1
	if count < 0 {
		count = 0
	}

	return count, nil
}

// Exists reports whether the workbook has been created on disk.
func (r *Repository) Exists() bool {
	_, err := os.Stat(r.path)
	return err == nil
}

// Close is a no-op; the workbook is opened and closed per operation.
func (r *Repository) Close() error {
	return nil
}

// cellAt reads a cell by index, tolerating the trailing-empty-cell
// trimming GetRows performs.
func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}
