// Package catalog reads the machine catalog and vendor table from flat files.
// Every call re-reads the file, so edits are picked up on the next request.
package catalog

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kailas-cloud/machine-advisor/internal/domain"
)

// Store loads catalog data from a JSON machines file and a CSV vendors file.
type Store struct {
	machinesPath string
	vendorsPath  string
}

// New creates a file-backed catalog store.
func New(machinesPath, vendorsPath string) *Store {
	return &Store{
		machinesPath: filepath.Clean(machinesPath),
		vendorsPath:  filepath.Clean(vendorsPath),
	}
}

// LoadMachines reads the machine catalog in file order.
func (s *Store) LoadMachines(_ context.Context) ([]domain.Machine, error) {
	data, err := os.ReadFile(s.machinesPath)
	if err != nil {
		return nil, fmt.Errorf("read machines %s: %w: %w", s.machinesPath, domain.ErrCatalogUnavailable, err)
	}

	var machines []domain.Machine
	if err := json.Unmarshal(data, &machines); err != nil {
		return nil, fmt.Errorf("parse machines %s: %w: %w", s.machinesPath, domain.ErrCatalogUnavailable, err)
	}
	return machines, nil
}

// LoadVendors reads the vendor table keyed by its id column.
func (s *Store) LoadVendors(_ context.Context) (domain.VendorTable, error) {
	f, err := os.Open(s.vendorsPath)
	if err != nil {
		return domain.VendorTable{}, fmt.Errorf("open vendors %s: %w: %w", s.vendorsPath, domain.ErrCatalogUnavailable, err)
	}
	defer func() { _ = f.Close() }()

	table, err := ReadVendors(f)
	if err != nil {
		return domain.VendorTable{}, fmt.Errorf("parse vendors %s: %w: %w", s.vendorsPath, domain.ErrCatalogUnavailable, err)
	}
	return table, nil
}

// Ping reports whether both catalog files are readable.
func (s *Store) Ping(_ context.Context) error {
	for _, p := range []string{s.machinesPath, s.vendorsPath} {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("stat %s: %w", p, err)
		}
	}
	return nil
}

// ReadVendors parses a vendor CSV with a header row. The id column is required.
func ReadVendors(r io.Reader) (domain.VendorTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return domain.VendorTable{}, errors.New("empty vendor table")
		}
		return domain.VendorTable{}, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff") // spreadsheet exports
	}

	idCol := -1
	for i, h := range header {
		if h == domain.VendorFieldID {
			idCol = i
			break
		}
	}
	if idCol < 0 {
		return domain.VendorTable{}, fmt.Errorf("missing %q column", domain.VendorFieldID)
	}

	table := domain.NewVendorTable()
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.VendorTable{}, fmt.Errorf("read row %d: %w", line, err)
		}
		if len(row) <= idCol {
			return domain.VendorTable{}, fmt.Errorf("row %d: missing %q value", line, domain.VendorFieldID)
		}

		fields := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(row) {
				fields[h] = row[i]
			} else {
				fields[h] = ""
			}
		}
		table.Put(domain.VendorFromFields(fields))
	}
	return table, nil
}
