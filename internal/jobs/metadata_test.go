package jobs_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stmtkit/stmtkit/internal/jobs"
)

func TestParseMetadata(t *testing.T) {
	raw := []byte(`{
		"pages_processed": 4,
		"extraction_method": "table",
		"confidence": 0.92,
		"partial": false,
		"warnings": ["page 3 skewed"],
		"totals": {"debits": "812.44"}
	}`)

	m, err := jobs.ParseMetadata(raw)
	if err != nil {
		t.Fatalf("ParseMetadata() error = %v", err)
	}

	if n, ok := m["pages_processed"].NumberValue(); !ok || n.String() != "4" {
		t.Errorf("pages_processed = %v, want number 4", m["pages_processed"])
	}
	if s, ok := m["extraction_method"].StringValue(); !ok || s != "table" {
		t.Errorf("extraction_method = %v, want string table", m["extraction_method"])
	}
	if b, ok := m["partial"].BoolValue(); !ok || b {
		t.Errorf("partial = %v, want bool false", m["partial"])
	}
	if a, ok := m["warnings"].ArrayValue(); !ok || len(a) != 1 {
		t.Errorf("warnings = %v, want one-element array", m["warnings"])
	}
	if o, ok := m["totals"].ObjectValue(); !ok || len(o) != 1 {
		t.Errorf("totals = %v, want one-field object", m["totals"])
	}
}

func TestParseMetadata_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{pages:"},
		{"top-level array", `[1, 2]`},
		{"top-level string", `"notes"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := jobs.ParseMetadata([]byte(tt.raw)); err == nil {
				t.Errorf("ParseMetadata(%s) error = nil, want error", tt.raw)
			}
		})
	}
}

func TestMetadata_NumberPrecisionSurvivesRoundTrip(t *testing.T) {
	raw := []byte(`{"total_amount": 99999999.99, "big_id": 9007199254740993}`)

	m, err := jobs.ParseMetadata(raw)
	if err != nil {
		t.Fatalf("ParseMetadata() error = %v", err)
	}

	out, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	for _, lexeme := range []string{"99999999.99", "9007199254740993"} {
		if !strings.Contains(string(out), lexeme) {
			t.Errorf("Marshal() = %s, want lexeme %s preserved", out, lexeme)
		}
	}
}

func TestMetadata_Constructors(t *testing.T) {
	m := jobs.Metadata{
		"method":     jobs.String("table"),
		"pages":      jobs.Int(4),
		"confidence": jobs.Float(0.92),
		"partial":    jobs.Bool(true),
		"missing":    jobs.Null(),
		"warnings":   jobs.Array(jobs.String("skewed")),
	}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	parsed, err := jobs.ParseMetadata(data)
	if err != nil {
		t.Fatalf("ParseMetadata() error = %v", err)
	}

	if parsed["missing"].Kind() != jobs.KindNull {
		t.Errorf("missing kind = %v, want KindNull", parsed["missing"].Kind())
	}
	if n, _ := parsed["pages"].NumberValue(); n.String() != "4" {
		t.Errorf("pages = %s, want 4", n)
	}
}

func TestMetadata_ToMap(t *testing.T) {
	m := jobs.Metadata{
		"pages":      jobs.Int(4),
		"confidence": jobs.Float(0.92),
		"method":     jobs.String("table"),
	}

	plain := m.ToMap()

	if plain["pages"] != int64(4) {
		t.Errorf("pages = %v (%T), want int64 4", plain["pages"], plain["pages"])
	}
	if plain["confidence"] != 0.92 {
		t.Errorf("confidence = %v, want 0.92", plain["confidence"])
	}
	if plain["method"] != "table" {
		t.Errorf("method = %v, want table", plain["method"])
	}
}

func TestMetadata_ScanValue(t *testing.T) {
	var m jobs.Metadata

	if err := m.Scan([]byte(`{"pages_processed": 2}`)); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if n, ok := m["pages_processed"].NumberValue(); !ok || n.String() != "2" {
		t.Errorf("Scan() pages_processed = %v, want 2", m["pages_processed"])
	}

	if err := m.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	if len(m) != 0 {
		t.Errorf("Scan(nil) = %v, want empty metadata", m)
	}

	var empty jobs.Metadata
	v, err := empty.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if string(v.([]byte)) != "{}" {
		t.Errorf("Value() on nil metadata = %s, want {}", v)
	}
}
