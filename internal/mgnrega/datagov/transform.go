package datagov

import (
	"strconv"
	"strings"

	"github.com/OurVoiceOurRights/OVR-Backend/internal/mgnrega/source"
)

// Ordered field-name aliases per logical field, first present wins. The
// upstream dataset has shipped all of these spellings at one time or
// another, so extraction stays defensive: a record is never rejected, only
// defaulted.
var (
	districtAliases  = []string{"district", "district_name", "District"}
	monthAliases     = []string{"month", "period", "Month"}
	jobsAliases      = []string{"jobs_generated", "jobs", "Quantity"}
	personDayAliases = []string{"person_days", "persondays"}
	wagesAliases     = []string{"wages_paid", "wages"}
)

// Sentinels for records missing identity fields. Such rows are still
// written; rejecting them is not this layer's call.
const (
	DefaultDistrict = "Unknown"
	DefaultMonth    = "2024-01"
)

// transformRecord maps one raw upstream row onto the fields the pipeline
// stores.
func transformRecord(rec map[string]any) source.Record {
	return source.Record{
		District:      stringField(rec, DefaultDistrict, districtAliases...),
		Month:         stringField(rec, DefaultMonth, monthAliases...),
		JobsGenerated: intField(rec, jobsAliases...),
		PersonDays:    intField(rec, personDayAliases...),
		WagesPaid:     floatField(rec, wagesAliases...),
	}
}

func stringField(rec map[string]any, def string, aliases ...string) string {
	for _, key := range aliases {
		if v, ok := rec[key]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return def
}

// intField reads the first present alias as an integer. JSON numbers and
// numeric strings both appear in the wild; anything unparsable defaults to
// zero.
func intField(rec map[string]any, aliases ...string) int64 {
	for _, key := range aliases {
		v, ok := rec[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return int64(n)
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return int64(f)
			}
		}
	}
	return 0
}

func floatField(rec map[string]any, aliases ...string) float64 {
	for _, key := range aliases {
		v, ok := rec[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return f
			}
		}
	}
	return 0
}
