package services

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"querykeys/internal/downstream"
	"querykeys/internal/models"
	"querykeys/pkg/categorizer"
)

// ProcessResult is the outcome of forwarding a query's keywords downstream.
type ProcessResult struct {
	Status       string
	Keywords     categorizer.Result
	NodeResponse json.RawMessage
}

// Processor is what the HTTP and CLI layers need from the service.
type Processor interface {
	Extract(query string) (categorizer.Result, error)
	Process(ctx context.Context, query string) (*ProcessResult, error)
}

var _ Processor = (*ProcessService)(nil)

type ProcessService struct {
	categorizer categorizer.QueryCategorizer
	searcher    downstream.Searcher
}

func NewProcessService(qc categorizer.QueryCategorizer, s downstream.Searcher) *ProcessService {
	return &ProcessService{
		categorizer: qc,
		searcher:    s,
	}
}

// Extract runs keyword extraction only. It returns models.ErrNoKeywords when
// nothing matched.
func (s *ProcessService) Extract(query string) (categorizer.Result, error) {
	keywords := s.categorizer.Extract(query)
	if keywords.Empty() {
		return keywords, models.ErrNoKeywords
	}
	return keywords, nil
}

// Process extracts keywords from query and forwards them to the search
// service. The only error it returns is models.ErrNoKeywords, in which case no
// downstream call is made. Downstream failures are folded into the result as
// an {"error": "..."} payload with StatusError.
func (s *ProcessService) Process(ctx context.Context, query string) (*ProcessResult, error) {
	keywords, err := s.Extract(query)
	if err != nil {
		return nil, err
	}

	result := &ProcessResult{Keywords: keywords}

	resp, err := s.searcher.Search(ctx, keywords)
	if err != nil {
		log.WithFields(log.Fields{
			"request_id": downstream.RequestIDFromContext(ctx),
			"keywords":   map[string]string(keywords),
		}).Warnf("Error communicating with search service: %v", err)
		result.NodeResponse = errorPayload(err)
		result.Status = models.StatusError
		return result, nil
	}

	log.WithField("request_id", downstream.RequestIDFromContext(ctx)).Debugf("Response from search service: %s", resp.Body)
	result.NodeResponse = resp.Body
	result.Status = models.StatusSuccess
	if resp.HasError() {
		result.Status = models.StatusError
	}
	return result, nil
}

func errorPayload(err error) json.RawMessage {
	payload, mErr := json.Marshal(map[string]string{"error": err.Error()})
	if mErr != nil {
		return json.RawMessage(fmt.Sprintf(`{"error":%q}`, "downstream request failed"))
	}
	return payload
}
