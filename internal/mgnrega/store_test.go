package mgnrega

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore opens a throwaway sqlite-backed store. Each test gets its
// own database file under t.TempDir, so tests stay independent.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	store := NewStore(gdb)
	if err := store.AutoMigrate(); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return store
}

// TestEnsureDistrictIdempotent verifies that inserting the same
// (state, district) pair twice leaves exactly one row and raises no
// conflict.
func TestEnsureDistrictIdempotent(t *testing.T) {
	store := newTestStore(t)

	if err := store.EnsureDistrict("Uttar Pradesh", "Lucknow"); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := store.EnsureDistrict("Uttar Pradesh", "Lucknow"); err != nil {
		t.Fatalf("second insert: %v", err)
	}

	rows, err := store.ListDistricts("Uttar Pradesh")
	if err != nil {
		t.Fatalf("list districts: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 district row, got %d", len(rows))
	}
}

// TestEnsureDistrictScopedByState verifies that the same district name in
// two states yields two rows.
func TestEnsureDistrictScopedByState(t *testing.T) {
	store := newTestStore(t)

	if err := store.EnsureDistrict("Uttar Pradesh", "Hamirpur"); err != nil {
		t.Fatalf("insert UP: %v", err)
	}
	if err := store.EnsureDistrict("Himachal Pradesh", "Hamirpur"); err != nil {
		t.Fatalf("insert HP: %v", err)
	}

	up, err := store.ListDistricts("Uttar Pradesh")
	if err != nil {
		t.Fatalf("list UP: %v", err)
	}
	if len(up) != 1 {
		t.Errorf("expected 1 UP district, got %d", len(up))
	}
}

// TestUpsertMeasurementOverwrites verifies that re-inserting the same
// (state, district, month) key replaces all three metric values and leaves
// exactly one row.
func TestUpsertMeasurementOverwrites(t *testing.T) {
	store := newTestStore(t)

	if err := store.UpsertMeasurement("Uttar Pradesh", "Lucknow", "2024-01", 1000, 10000, 1200000); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := store.UpsertMeasurement("Uttar Pradesh", "Lucknow", "2024-01", 500, 5000, 600000); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	rows, err := store.SeriesForDistrict("Uttar Pradesh", "Lucknow")
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	got := rows[0]
	if got.JobsGenerated != 500 || got.PersonDays != 5000 || got.WagesPaid != 600000 {
		t.Errorf("expected second insert's values, got %+v", got)
	}
}

// TestSeriesOrdering verifies that the series comes back ascending by month
// regardless of insertion order.
func TestSeriesOrdering(t *testing.T) {
	store := newTestStore(t)

	months := []string{"2024-03", "2024-01", "2024-02"}
	for _, m := range months {
		if err := store.UpsertMeasurement("Uttar Pradesh", "Varanasi", m, 100, 1000, 120000); err != nil {
			t.Fatalf("upsert %s: %v", m, err)
		}
	}

	rows, err := store.SeriesForDistrict("Uttar Pradesh", "Varanasi")
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	want := []string{"2024-01", "2024-02", "2024-03"}
	for i, m := range want {
		if rows[i].Month != m {
			t.Errorf("row %d: expected month %s, got %s", i, m, rows[i].Month)
		}
	}
}

// TestListDistrictsSorted verifies lexicographic ordering by district name.
func TestListDistrictsSorted(t *testing.T) {
	store := newTestStore(t)

	for _, d := range []string{"Varanasi", "Agra", "Lucknow"} {
		if err := store.EnsureDistrict("Uttar Pradesh", d); err != nil {
			t.Fatalf("insert %s: %v", d, err)
		}
	}

	names, err := store.ListDistrictNames("Uttar Pradesh")
	if err != nil {
		t.Fatalf("list names: %v", err)
	}
	want := []string{"Agra", "Lucknow", "Varanasi"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], names[i])
		}
	}
}

// TestSeriesForUnknownDistrictID verifies that an unknown id yields an
// empty series, not an error.
func TestSeriesForUnknownDistrictID(t *testing.T) {
	store := newTestStore(t)

	rows, err := store.SeriesForDistrictID(9999)
	if err != nil {
		t.Fatalf("expected no error for unknown id, got %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected empty series, got %d rows", len(rows))
	}
}

// TestSeriesForDistrictID verifies the id path resolves through the
// registry to the same series as the name path.
func TestSeriesForDistrictID(t *testing.T) {
	store := newTestStore(t)

	if err := store.EnsureDistrict("Uttar Pradesh", "Gorakhpur"); err != nil {
		t.Fatalf("ensure district: %v", err)
	}
	if err := store.UpsertMeasurement("Uttar Pradesh", "Gorakhpur", "2024-05", 1500, 15000, 1800000); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	districts, err := store.ListDistricts("Uttar Pradesh")
	if err != nil {
		t.Fatalf("list districts: %v", err)
	}
	if len(districts) != 1 {
		t.Fatalf("expected 1 district, got %d", len(districts))
	}

	rows, err := store.SeriesForDistrictID(districts[0].ID)
	if err != nil {
		t.Fatalf("series by id: %v", err)
	}
	if len(rows) != 1 || rows[0].Month != "2024-05" || rows[0].JobsGenerated != 1500 {
		t.Errorf("unexpected series: %+v", rows)
	}
}
