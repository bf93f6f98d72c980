package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pistalo01/japanese-car-vin-decoder/internal/knowledge/repository"
	knowledgesvc "github.com/pistalo01/japanese-car-vin-decoder/internal/knowledge/service"
	"github.com/pistalo01/japanese-car-vin-decoder/internal/vindecode/transport"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/apperr"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/logger"
)

type fakeDecoder struct {
	decoded map[string]string
	err     error
}

func (f *fakeDecoder) DecodeVin(ctx context.Context, vin string) (map[string]string, error) {
	return f.decoded, f.err
}

func (f *fakeDecoder) Recalls(ctx context.Context, vin string) ([]transport.Recall, error) {
	return nil, errors.New("not implemented")
}

type testConfig struct {
	recalls bool
}

func (c testConfig) GetNHTSABaseURL() string        { return "http://unused" }
func (c testConfig) GetNHTSATimeout() time.Duration { return time.Second }
func (c testConfig) IsRecallLookupEnabled() bool    { return c.recalls }

func newService(t *testing.T, decoder Decoder) *Service {
	t.Helper()
	repo, err := repository.New()
	if err != nil {
		t.Fatalf("load knowledge base: %v", err)
	}
	log := logger.New("development")
	return New(decoder, knowledgesvc.New(repo, log), testConfig{}, log)
}

func TestDecode_MapsProviderFields(t *testing.T) {
	decoder := &fakeDecoder{decoded: map[string]string{
		"Make":                               "TOYOTA",
		"Model":                              "Camry",
		"Model Year":                         "2005",
		"Engine Model":                       "2AZ-FE",
		"Transmission Style":                 "Automatic",
		"Drive Type":                         "FWD",
		"Body Class":                         "Sedan",
		"Fuel Type - Primary":                "Gasoline",
		"Doors":                              "4",
		"Anti-lock Braking System (ABS)":     "Standard",
		"Electronic Stability Control (ESC)": "Standard",
	}}

	info, err := newService(t, decoder).Decode(context.Background(), "4T1BE32K25U056789")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if info.VIN != "4T1BE32K25U056789" {
		t.Fatalf("expected VIN echoed back, got %q", info.VIN)
	}
	if info.Make != "TOYOTA" || info.Model != "Camry" || info.Year != "2005" {
		t.Fatalf("unexpected vehicle identity: %+v", info)
	}
	if info.Engine != "2AZ-FE" {
		t.Fatalf("expected engine 2AZ-FE, got %q", info.Engine)
	}
	// Absent provider fields stay empty, never error.
	if info.Trim != "" || info.Seats != "" {
		t.Fatalf("expected absent fields empty, got trim=%q seats=%q", info.Trim, info.Seats)
	}
	if len(info.SafetyFeatures) != 2 || info.SafetyFeatures[0] != "ABS" || info.SafetyFeatures[1] != "ESC" {
		t.Fatalf("unexpected safety features: %v", info.SafetyFeatures)
	}
}

func TestDecode_EnrichesFromKnowledgeBase(t *testing.T) {
	decoder := &fakeDecoder{decoded: map[string]string{
		"Make":       "TOYOTA",
		"Model":      "CAMRY",
		"Model Year": "2005",
	}}

	info, err := newService(t, decoder).Decode(context.Background(), "4T1BE32K25U056789")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, part := range info.PartsCompatibility["engine_parts"] {
		if part.PartNumber == "17801-0P010" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected detailed catalog for TOYOTA/CAMRY/2005")
	}
	if len(info.MaintenanceSchedule) == 0 {
		t.Fatal("expected maintenance schedule")
	}
}

func TestDecode_GenericFallbackOnUnknownVehicle(t *testing.T) {
	decoder := &fakeDecoder{decoded: map[string]string{
		"Make":       "TOYOTA",
		"Model":      "CAMRY",
		"Model Year": "1999",
	}}

	info, err := newService(t, decoder).Decode(context.Background(), "4T1BE32K2XU056789")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, part := range info.PartsCompatibility["engine"] {
		if part.PartNumber != "Generic" {
			t.Fatalf("expected generic parts, got %q", part.PartNumber)
		}
	}
}

func TestDecode_InvalidVin(t *testing.T) {
	svc := newService(t, &fakeDecoder{})

	_, err := svc.Decode(context.Background(), "TOOSHORT")
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Kind != apperr.KindInvalidVin {
		t.Fatalf("expected KindInvalidVin, got %v", err)
	}
	if ae.Suggestion == "" {
		t.Fatal("expected a suggestion for invalid VINs")
	}
}

func TestDecode_UpstreamUnavailable(t *testing.T) {
	svc := newService(t, &fakeDecoder{err: errors.New("connect timeout")})

	_, err := svc.Decode(context.Background(), "4T1BE32K25U056789")
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Kind != apperr.KindDecodeUnavailable {
		t.Fatalf("expected KindDecodeUnavailable, got %v", err)
	}
}

func TestDecode_EmptyResult(t *testing.T) {
	svc := newService(t, &fakeDecoder{decoded: map[string]string{}})

	_, err := svc.Decode(context.Background(), "4T1BE32K25U056789")
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Kind != apperr.KindDecodeEmpty {
		t.Fatalf("expected KindDecodeEmpty, got %v", err)
	}
}
