package mgnrega

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store owns the districts and measurements tables. It is constructed once
// in main and passed to everything that needs it.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(&District{}, &Measurement{})
}

// EnsureDistrict inserts the (state, district) pair if absent. Duplicate
// inserts are a no-op; uniqueness conflicts never reach the caller.
func (s *Store) EnsureDistrict(state, district string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "state"}, {Name: "district"}},
		DoNothing: true,
	}).Create(&District{State: state, District: district}).Error
}

// DistrictRow is the compact shape the district list endpoint returns.
type DistrictRow struct {
	ID       uint   `json:"id"`
	District string `json:"district"`
}

// ListDistricts returns {id, district} for every district in state, ordered
// lexicographically by district name.
func (s *Store) ListDistricts(state string) ([]DistrictRow, error) {
	var rows []DistrictRow
	err := s.db.Model(&District{}).
		Select("id", "district").
		Where("state = ?", state).
		Order("district").
		Scan(&rows).Error
	return rows, err
}

// ListDistrictNames returns district names in the same order as
// ListDistricts. The reconciler scans this list, so the ordering is part of
// its tie-breaking behavior.
func (s *Store) ListDistrictNames(state string) ([]string, error) {
	var names []string
	err := s.db.Model(&District{}).
		Where("state = ?", state).
		Order("district").
		Pluck("district", &names).Error
	return names, err
}

// DistrictByID returns the district row, or nil when the id is unknown.
// An unknown id is not an error.
func (s *Store) DistrictByID(id uint) (*District, error) {
	var d District
	err := s.db.First(&d, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// UpsertMeasurement writes one (state, district, month) row. On conflict
// every metric column takes the new value; nothing from the old row
// survives.
func (s *Store) UpsertMeasurement(state, district, month string, jobs, personDays int64, wages float64) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "state"}, {Name: "district"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"jobs_generated", "person_days", "wages_paid"}),
	}).Create(&Measurement{
		State:         state,
		District:      district,
		Month:         month,
		JobsGenerated: jobs,
		PersonDays:    personDays,
		WagesPaid:     wages,
	}).Error
}

// MeasurementRow is one point of a district time series.
type MeasurementRow struct {
	Month         string  `json:"month"`
	JobsGenerated int64   `json:"jobs_generated"`
	PersonDays    int64   `json:"person_days"`
	WagesPaid     float64 `json:"wages_paid"`
}

// SeriesForDistrict returns the measurement series ascending by month.
// Month tokens are "YYYY-MM", so lexical order is chronological order.
func (s *Store) SeriesForDistrict(state, district string) ([]MeasurementRow, error) {
	var rows []MeasurementRow
	err := s.db.Model(&Measurement{}).
		Select("month", "jobs_generated", "person_days", "wages_paid").
		Where("state = ? AND district = ?", state, district).
		Order("month").
		Scan(&rows).Error
	return rows, err
}

// SeriesForDistrictID resolves the district first. An unknown id yields an
// empty series rather than an error.
func (s *Store) SeriesForDistrictID(id uint) ([]MeasurementRow, error) {
	d, err := s.DistrictByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return []MeasurementRow{}, nil
	}
	return s.SeriesForDistrict(d.State, d.District)
}
