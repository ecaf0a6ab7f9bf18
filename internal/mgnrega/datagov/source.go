package datagov

import (
	"context"

	"github.com/OurVoiceOurRights/OVR-Backend/internal/mgnrega/source"
)

// DataGovSource implements source.Source against the data.gov.in API.
type DataGovSource struct {
	client *Client
}

func init() {
	source.Register(source.TypeDataGov, func(cfg source.Config) (source.Source, error) {
		return &DataGovSource{
			client: NewClient(cfg.ResourceID, cfg.APIKey, cfg.Endpoint, cfg.Timeout),
		}, nil
	})
}

// Name returns the source name for logging purposes.
func (s *DataGovSource) Name() string {
	return "datagov"
}

// FetchDistrictStats fetches and transforms district-month records for one
// state.
func (s *DataGovSource) FetchDistrictStats(ctx context.Context, state string) ([]source.Record, error) {
	raw, err := s.client.FetchRecords(ctx, state)
	if err != nil {
		return nil, err
	}

	out := make([]source.Record, 0, len(raw))
	for _, rec := range raw {
		out = append(out, transformRecord(rec))
	}
	return out, nil
}
