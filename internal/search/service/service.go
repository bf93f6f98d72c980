// Package service implements the unified VIN / engine-code search router.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pistalo01/japanese-car-vin-decoder/internal/knowledge/repository"
	knowledgesvc "github.com/pistalo01/japanese-car-vin-decoder/internal/knowledge/service"
	pricingsvc "github.com/pistalo01/japanese-car-vin-decoder/internal/pricing/service"
	pricingtransport "github.com/pistalo01/japanese-car-vin-decoder/internal/pricing/transport"
	"github.com/pistalo01/japanese-car-vin-decoder/internal/search/transport"
	vindecodesvc "github.com/pistalo01/japanese-car-vin-decoder/internal/vindecode/service"
	vintransport "github.com/pistalo01/japanese-car-vin-decoder/internal/vindecode/transport"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/apperr"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/logger"
)

// Search type labels used in the response envelope.
const (
	SearchTypeVIN        = "vin"
	SearchTypeEngineCode = "engine_code"
)

// livePricingCategory is the catalog key live quotes are unioned under.
const livePricingCategory = "live_pricing"

// Service routes a free-form search input to the VIN or engine-code flow.
type Service struct {
	knowledge *knowledgesvc.Service
	decode    *vindecodesvc.Service
	pricing   *pricingsvc.Service
	log       *logger.Logger
}

// New creates a new search service.
func New(knowledge *knowledgesvc.Service, decode *vindecodesvc.Service, pricing *pricingsvc.Service, log *logger.Logger) *Service {
	return &Service{
		knowledge: knowledge,
		decode:    decode,
		pricing:   pricing,
		log:       log,
	}
}

// Classify decides which flow an input belongs to. Exactly 17 characters is
// always a VIN, even when the string would also match an engine-code
// pattern; the length check runs first and that ordering is load-bearing.
func (s *Service) Classify(input string) string {
	if len(strings.TrimSpace(input)) == 17 {
		return SearchTypeVIN
	}
	return SearchTypeEngineCode
}

// Search resolves the input through the flow Classify picked and returns
// the search type together with the flow's data payload.
func (s *Service) Search(ctx context.Context, input string) (string, any, error) {
	input = strings.TrimSpace(input)

	if s.Classify(input) == SearchTypeVIN {
		info, err := s.DecodeVIN(ctx, input)
		if err != nil {
			return SearchTypeVIN, nil, err
		}
		return SearchTypeVIN, info, nil
	}

	data, err := s.EngineByCode(ctx, input)
	if err != nil {
		return SearchTypeEngineCode, nil, err
	}
	return SearchTypeEngineCode, data, nil
}

// DecodeVIN decodes a VIN and unions live pricing into its parts catalog.
func (s *Service) DecodeVIN(ctx context.Context, vin string) (*vintransport.VehicleInfo, error) {
	info, err := s.decode.Decode(ctx, vin)
	if err != nil {
		s.log.SearchEvent(SearchTypeVIN, vin, false, err.Error())
		return nil, err
	}

	info.PartsCompatibility = s.withLivePricing(ctx,
		pricingtransport.Query{VIN: info.VIN}, info.PartsCompatibility)

	s.log.SearchEvent(SearchTypeVIN, info.VIN, true, "")
	return &info, nil
}

// EngineByCode extracts an engine code from the input, resolves it against
// the knowledge base and unions live pricing into the parts catalog.
func (s *Service) EngineByCode(ctx context.Context, input string) (*transport.EngineData, error) {
	code, ok := ExtractEngineCode(input, s.knowledge.Repository().HasEngine)
	if !ok {
		s.log.SearchEvent(SearchTypeEngineCode, input, false, "no engine code pattern matched")
		return nil, apperr.
			InvalidInput(fmt.Sprintf("Engine code not found: %s", input)).
			WithSuggestion(s.knowledge.EngineCodeSuggestion())
	}

	profile, catalog, err := s.knowledge.ResolveEngine(code)
	if err != nil {
		return nil, err
	}

	catalog = s.withLivePricing(ctx, pricingtransport.Query{Keyword: profile.EngineCode}, catalog)

	s.log.SearchEvent(SearchTypeEngineCode, profile.EngineCode, true, "")

	return &transport.EngineData{
		SearchType:         SearchTypeEngineCode,
		EngineCode:         profile.EngineCode,
		EngineInfo:         profile,
		PartsCompatibility: catalog,
		TotalParts:         catalog.TotalParts(),
		PartsCategories:    catalog.Categories(),
	}, nil
}

// withLivePricing unions live quotes into a copy of the catalog under the
// live_pricing category. The stored catalog is never mutated; repeated
// lookups must keep returning identical data.
func (s *Service) withLivePricing(ctx context.Context, q pricingtransport.Query, catalog repository.PartsCatalog) repository.PartsCatalog {
	parts := s.pricing.LivePricing(ctx, q)
	if len(parts) == 0 {
		return catalog
	}

	merged := make(repository.PartsCatalog, len(catalog)+1)
	for category, records := range catalog {
		merged[category] = records
	}

	live := make(map[string]repository.PartRecord, len(parts))
	for _, p := range parts {
		key := partKey(p.PartName)
		if _, exists := live[key]; exists {
			key = key + "_" + strings.ToLower(p.PartNumber)
		}
		live[key] = repository.PartRecord{
			PartName:           p.PartName,
			PartNumber:         p.PartNumber,
			Brand:              p.Brand,
			PriceRange:         p.Price,
			CompatibilityNotes: "Live quote from " + p.Supplier,
		}
	}
	merged[livePricingCategory] = live

	return merged
}

func partKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}
