// Package service implements best-effort live parts pricing.
package service

import (
	"context"

	"github.com/pistalo01/japanese-car-vin-decoder/internal/pricing/transport"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/logger"
)

// Searcher is the upstream pricing API.
type Searcher interface {
	SearchParts(ctx context.Context, q transport.Query) ([]transport.Part, error)
}

// Service wraps the pricing client. Pricing is additive: every failure,
// including a disabled integration, collapses to an empty result so the
// static catalog answer is never blocked.
type Service struct {
	client  Searcher
	enabled bool
	log     *logger.Logger
}

// New creates a new pricing service.
func New(client Searcher, enabled bool, log *logger.Logger) *Service {
	return &Service{
		client:  client,
		enabled: enabled,
		log:     log,
	}
}

// LivePricing returns live priced parts for the query, or an empty slice.
func (s *Service) LivePricing(ctx context.Context, q transport.Query) []transport.Part {
	if s == nil || !s.enabled {
		return nil
	}

	parts, err := s.client.SearchParts(ctx, q)
	if err != nil {
		s.log.UpstreamError("partstech", "LivePricing", err)
		return nil
	}

	return parts
}
