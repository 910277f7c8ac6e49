package jsonutil

import (
	"bytes"
	"strings"
	"testing"
)

type mappingDoc struct {
	SourceFramework string  `json:"source_framework"`
	SourceControl   string  `json:"source_control"`
	TargetFramework string  `json:"target_framework"`
	TargetControl   string  `json:"target_control"`
	Confidence      float64 `json:"confidence"`
	Verified        bool    `json:"verified"`
}

var sampleMapping = mappingDoc{
	SourceFramework: "soc2",
	SourceControl:   "CC6.1",
	TargetFramework: "iso27001",
	TargetControl:   "A.9.1.1",
	Confidence:      0.8,
	Verified:        true,
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	data, err := Marshal(sampleMapping)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !bytes.Contains(data, []byte(`"source_control":"CC6.1"`)) {
		t.Errorf("Marshal() = %s, missing source_control", data)
	}

	var got mappingDoc
	if err := Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got != sampleMapping {
		t.Errorf("round trip = %+v, want %+v", got, sampleMapping)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	var got mappingDoc
	if err := Unmarshal([]byte(`{not json`), &got); err == nil {
		t.Error("Unmarshal() expected error for invalid JSON")
	}
}

func TestMarshalIndent(t *testing.T) {
	data, err := MarshalIndent(sampleMapping, "", "  ")
	if err != nil {
		t.Fatalf("MarshalIndent() error = %v", err)
	}
	s := string(data)
	if !strings.Contains(s, "\n") || !strings.Contains(s, `  "`) {
		t.Errorf("MarshalIndent() output not indented:\n%s", s)
	}
}

func TestStreamEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewStreamEncoder(&buf)

	if err := enc.Encode(sampleMapping); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := enc.Encode(sampleMapping); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Errorf("expected one JSON document per line, got %d lines", len(lines))
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("Encode() should end each document with a newline")
	}
}

func TestStreamDecoder(t *testing.T) {
	input := `{"source_framework":"soc2","source_control":"CC1.1"}`
	dec := NewStreamDecoder(strings.NewReader(input))

	var got mappingDoc
	if err := dec.Decode(&got); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.SourceControl != "CC1.1" {
		t.Errorf("Decode() = %+v, want source control CC1.1", got)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{`{"confidence":0.9}`, true},
		{`[]`, true},
		{`null`, true},
		{`{confidence:0.9}`, false},
		{``, false},
		{`{`, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Valid([]byte(tt.input)); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
