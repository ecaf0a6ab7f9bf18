package mgnrega

// District is one canonical (state, district) pair. Rows are created by
// ingestion or seeding, never updated or deleted in normal operation.
type District struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	State    string `json:"state" gorm:"index:uniq_state_district,unique"`
	District string `json:"district" gorm:"index:uniq_state_district,unique"`
}

// Measurement is one district-month observation. The (state, district,
// month) triple is unique; re-ingesting a month overwrites all three
// metric columns.
type Measurement struct {
	ID            uint    `json:"-" gorm:"primaryKey"`
	State         string  `json:"-" gorm:"index:uniq_state_district_month,unique"`
	District      string  `json:"-" gorm:"index:uniq_state_district_month,unique"`
	Month         string  `json:"month" gorm:"index:uniq_state_district_month,unique"`
	JobsGenerated int64   `json:"jobs_generated"`
	PersonDays    int64   `json:"person_days"`
	WagesPaid     float64 `json:"wages_paid"`
}

func (District) TableName() string {
	return "districts"
}

func (Measurement) TableName() string {
	return "measurements"
}
