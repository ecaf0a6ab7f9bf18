package seeds

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DistrictWriter is the slice of the store seeding needs.
type DistrictWriter interface {
	EnsureDistrict(state, district string) error
}

var titleCaser = cases.Title(language.English)

// SeedDistricts loads canonical district names from a one-column CSV
// (header row, then one name per line) and ensures each exists for state.
// Names are trimmed and title-cased so inconsistent casing in the source
// file cannot split a district into two registry rows. Returns the number
// of names processed.
func SeedDistricts(w DistrictWriter, state, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return 0, err
	}
	if len(records) < 2 {
		return 0, errors.New("csv has no data rows")
	}

	count := 0
	for i, rec := range records[1:] {
		if len(rec) == 0 {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(rec[0], "\ufeff"))
		if name == "" {
			continue
		}
		name = titleCaser.String(strings.ToLower(name))
		if err := w.EnsureDistrict(state, name); err != nil {
			return count, fmt.Errorf("row %d: ensure district %q: %w", i+2, name, err)
		}
		count++
	}

	return count, nil
}
