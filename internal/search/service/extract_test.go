package service

import "testing"

func knownCodes(codes ...string) func(string) bool {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return func(code string) bool {
		_, ok := set[code]
		return ok
	}
}

func TestExtractEngineCode_SerialPrefix(t *testing.T) {
	code, ok := ExtractEngineCode("D16W73005025", knownCodes())
	if !ok {
		t.Fatalf("expected extraction to succeed")
	}
	if code != "D16W7" {
		t.Fatalf("expected D16W7, got %q", code)
	}
}

func TestExtractEngineCode_PatternBeatsTableFallback(t *testing.T) {
	// D16W73005025 is not a table key but contains a pattern match;
	// the pattern path must win before the verbatim fallback is tried.
	code, ok := ExtractEngineCode("D16W73005025", knownCodes("D16W73005025"))
	if !ok || code != "D16W7" {
		t.Fatalf("expected D16W7 via pattern, got %q (ok=%v)", code, ok)
	}
}

func TestExtractEngineCode_KnownCodeMatchesDirectly(t *testing.T) {
	code, ok := ExtractEngineCode("d16w7", knownCodes("D16W7"))
	if !ok {
		t.Fatalf("expected extraction to succeed")
	}
	if code != "D16W7" {
		t.Fatalf("expected D16W7, got %q", code)
	}
}

func TestExtractEngineCode_TableFallback(t *testing.T) {
	// EJ205 matches none of the regex shapes; only the verbatim table
	// membership check can accept it.
	code, ok := ExtractEngineCode("ej205", knownCodes("EJ205"))
	if !ok {
		t.Fatalf("expected fallback to accept known code")
	}
	if code != "EJ205" {
		t.Fatalf("expected EJ205, got %q", code)
	}

	if _, ok := ExtractEngineCode("ej205", knownCodes()); ok {
		t.Fatal("unknown non-pattern input must not extract")
	}
}

func TestExtractEngineCode_ToyotaShapes(t *testing.T) {
	cases := map[string]string{
		"1ZZ-FE":        "1ZZ-FE",
		"2az-fe":        "2AZ-FE",
		"1ZZFE":         "1ZZFE",
		"engine 2AZ-FE": "2AZ-FE",
	}
	for input, want := range cases {
		code, ok := ExtractEngineCode(input, knownCodes())
		if !ok || code != want {
			t.Errorf("ExtractEngineCode(%q) = %q (ok=%v), want %q", input, code, ok, want)
		}
	}
}

func TestExtractEngineCode_HondaFamilies(t *testing.T) {
	cases := map[string]string{
		"B18C1": "B18C1",
		"H22A1": "H22A1",
		"F20B":  "F20B",
		"K24A2": "K24A2",
	}
	for input, want := range cases {
		code, ok := ExtractEngineCode(input, knownCodes())
		if !ok || code != want {
			t.Errorf("ExtractEngineCode(%q) = %q (ok=%v), want %q", input, code, ok, want)
		}
	}
}

func TestExtractEngineCode_NoMatch(t *testing.T) {
	if code, ok := ExtractEngineCode("not-a-real-code", knownCodes("D16W7")); ok {
		t.Fatalf("expected no match, got %q", code)
	}
	if code, ok := ExtractEngineCode("", knownCodes()); ok {
		t.Fatalf("expected no match for empty input, got %q", code)
	}
}
