package demo

import (
	"context"
	"math/rand"

	"github.com/OurVoiceOurRights/OVR-Backend/internal/mgnrega/source"
)

// Districts and Months are the fixed demo universe. The formula gives each
// district a rising series with bounded jitter so the dashboard shows a
// readable trend without any external data.
var (
	Districts = []string{"Lucknow", "Varanasi", "Kanpur Nagar", "Prayagraj", "Gorakhpur"}
	Months    = []string{
		"2024-01", "2024-02", "2024-03", "2024-04", "2024-05",
		"2024-06", "2024-07", "2024-08", "2024-09", "2024-10",
	}
)

// Source generates synthetic district stats when no data.gov.in resource is
// configured, so the service is runnable offline. It holds no state; the
// scheduler and the fetch-now handler may call it concurrently.
type Source struct{}

func init() {
	source.Register(source.TypeDemo, func(source.Config) (source.Source, error) {
		return New(), nil
	})
}

func New() *Source {
	return &Source{}
}

// Name returns the source name for logging purposes.
func (s *Source) Name() string {
	return "demo"
}

// FetchDistrictStats produces one record per (district, month) pair.
// Jobs sit in the hundreds-to-low-thousands range; person days and wages
// derive from jobs by fixed multipliers.
func (s *Source) FetchDistrictStats(_ context.Context, _ string) ([]source.Record, error) {
	out := make([]source.Record, 0, len(Districts)*len(Months))
	for _, d := range Districts {
		for i, m := range Months {
			base := int64(1000 + i*100 + rand.Intn(200))
			out = append(out, source.Record{
				District:      d,
				Month:         m,
				JobsGenerated: base,
				PersonDays:    base * 10,
				WagesPaid:     float64(base) * 1200,
			})
		}
	}
	return out, nil
}
