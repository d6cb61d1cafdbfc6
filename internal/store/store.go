// =============================================================================
// Trucking Delivery Tracker - Record Store
// =============================================================================
//
// The record store keeps delivery records in a comma-separated file with a
// fixed header:
//
//   date,mileage,load_type,delivery_details
//   01-12-2024,200,Refrigerated,Delivery to Cold Storage
//
// OPERATIONS:
//   - Initialize : make sure the file exists and holds at least the header
//   - Load       : read the whole table
//   - Append     : read the whole table, add one row, rewrite the file
//
// RECOVERY:
//   A missing, empty, or unparseable file is never reported as a failure.
//   It is replaced by a file holding only the header. Unparseable files are
//   copied to the archive directory first so hand-edited data is not lost.
//   Only real I/O failures (permissions, full disk) are returned as errors.
//
// CONCURRENCY:
//   None. Two processes appending at the same time race, and the last full
//   rewrite wins.
//
// =============================================================================

package store

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ginjaninja78/trucking-delivery-tracker/internal/logging"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/types"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/validation"
	"github.com/ginjaninja78/trucking-delivery-tracker/pkg/utils"
)

// Options configures a Store.
type Options struct {
	// Path is the CSV data file.
	Path string

	// ArchiveDir receives copies of unparseable files before they are
	// reinitialized. Empty disables backups.
	ArchiveDir string

	// Logger reports recovery actions. Nil means no logging.
	Logger logging.Logger
}

// Store is a CSV-backed delivery record store.
type Store struct {
	path       string
	archiveDir string
	logger     logging.Logger
}

// New creates a Store. It does not touch the file system; call Initialize.
func New(opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	return &Store{
		path:       opts.Path,
		archiveDir: opts.ArchiveDir,
		logger:     logger,
	}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// =============================================================================
// OPERATIONS
// =============================================================================

// Initialize makes sure the backing file exists and can be read. A missing,
// empty, or unparseable file is replaced with a header-only file.
func (s *Store) Initialize() error {
	_, err := s.Load()
	return err
}

// Load returns the full table. A missing, empty, or unparseable file is
// reinitialized and an empty table with the fixed header is returned.
func (s *Store) Load() (*Table, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Info("%s not found. Creating a new file...", s.path)
		return s.reset()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	table, err := parse(data)
	switch {
	case errors.Is(err, errEmpty):
		s.logger.Info("%s is empty. Initializing with default columns...", s.path)
		return s.reset()
	case err != nil:
		s.backup(err)
		return s.reset()
	}

	s.logger.Debug("loaded %d record(s) from %s", table.Len(), s.path)
	return table, nil
}

// Append validates r, adds it as the last row, and rewrites the file.
// If the file is missing it is created first, so r becomes the only row.
func (s *Store) Append(r types.DeliveryRecord) error {
	if errs := validation.ValidateRecord(r); len(errs) > 0 {
		s.logger.Warn("rejected record for %s: %s", s.path, validation.FormatErrors(errs))
		return fmt.Errorf("refusing to store invalid record: %w", errs[0])
	}

	table, err := s.Load()
	if err != nil {
		return err
	}

	updated := table.withSchemaColumns()
	updated.Rows = append(updated.Rows, updated.rowFor(r))

	if err := s.write(updated); err != nil {
		return err
	}

	s.logger.Debug("appended record dated %s to %s (%d rows)", r.Date, s.path, updated.Len())
	return nil
}

// =============================================================================
// FILE HANDLING
// =============================================================================

var errEmpty = errors.New("data file is empty")

// reset writes a header-only file and returns the matching empty table.
func (s *Store) reset() (*Table, error) {
	table := NewTable()
	if err := s.write(table); err != nil {
		return nil, err
	}
	return table, nil
}

// backup copies an unparseable file aside before it is overwritten.
func (s *Store) backup(cause error) {
	if s.archiveDir == "" {
		s.logger.Warn("%s could not be parsed (%v). Reinitializing with default columns...", s.path, cause)
		return
	}

	backupPath, err := utils.BackupFile(s.path, s.archiveDir)
	if err != nil {
		s.logger.Error("%s could not be parsed (%v) and backup failed: %v. Reinitializing anyway...", s.path, cause, err)
		return
	}
	s.logger.Warn("%s could not be parsed (%v). Backed up to %s. Reinitializing with default columns...", s.path, cause, backupPath)
}

// write replaces the backing file with the full table.
func (s *Store) write(table *Table) error {
	err := utils.WriteFileAtomic(s.path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(table.Header); err != nil {
			return err
		}
		if err := cw.WriteAll(table.Rows); err != nil {
			return err
		}
		return cw.Error()
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// parse decodes file content into a Table.
//
// The first non-blank record is the header. Rows shorter than the header are
// padded with empty cells; rows longer than the header make the file
// unparseable. Blank lines are skipped.
func parse(data []byte) (*Table, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmpty
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	all, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	var records [][]string
	for _, rec := range all {
		if !isRowEmpty(rec) {
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return nil, errEmpty
	}

	header := cleanHeader(records[0])
	table := &Table{Header: header, Rows: make([][]string, 0, len(records)-1)}

	for i, rec := range records[1:] {
		if len(rec) > len(header) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", i+2, len(rec), len(header))
		}
		table.Rows = append(table.Rows, padRow(rec, len(header)))
	}

	return table, nil
}

// cleanHeader trims whitespace and a leading byte order mark.
func cleanHeader(header []string) []string {
	cleaned := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		cleaned[i] = strings.TrimSpace(h)
	}
	return cleaned
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
