package answer

import (
	"encoding/json"
	"testing"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name     string
		a        Answer
		expected Kind
	}{
		{"text", Text("hello"), KindText},
		{"markdown", Markdown("## hello"), KindMarkdown},
		{"json", JSON(map[string]interface{}{"k": "v"}), KindJSON},
		{"zero value defaults to text", Answer{}, KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Kind(); got != tt.expected {
				t.Errorf("expected kind %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := Text("Paris").String(); got != "Paris" {
		t.Errorf("expected %q, got %q", "Paris", got)
	}
	if got := Markdown("**Paris**").String(); got != "**Paris**" {
		t.Errorf("expected %q, got %q", "**Paris**", got)
	}

	j := JSON(map[string]interface{}{"city": "Paris"})
	if got := j.String(); got != `{"city":"Paris"}` {
		t.Errorf("expected serialized JSON, got %q", got)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Answer
		expected bool
	}{
		{"same text", Text("Paris"), Text("Paris"), true},
		{"different text", Text("Paris"), Text("Berlin"), false},
		{"text vs markdown never equal", Text("Paris"), Markdown("Paris"), false},
		{"same markdown", Markdown("## x"), Markdown("## x"), true},
		{"same json", JSON(map[string]interface{}{"k": 1.0}), JSON(map[string]interface{}{"k": 1.0}), true},
		{"different json", JSON(map[string]interface{}{"k": 1.0}), JSON(map[string]interface{}{"k": 2.0}), false},
		{"text vs json", Text("{}"), JSON(map[string]interface{}{}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.expected {
				t.Errorf("Equal = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestIsEmpty(t *testing.T) {
	if !Text("").IsEmpty() {
		t.Error("expected empty text answer to be empty")
	}
	if Text("x").IsEmpty() {
		t.Error("expected non-empty text answer to be non-empty")
	}
	if !JSON(nil).IsEmpty() {
		t.Error("expected nil JSON answer to be empty")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		a    Answer
	}{
		{"text", Text("Paris")},
		{"markdown", Markdown("## Jupiter")},
		{"json", JSON(map[string]interface{}{"value": 100.0, "unit": "C"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.a)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}

			var back Answer
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}

			if !back.Equal(tt.a) {
				t.Errorf("round trip changed answer: %v -> %v", tt.a, back)
			}
		})
	}
}

func TestUnmarshalLegacyBareString(t *testing.T) {
	var a Answer
	if err := json.Unmarshal([]byte(`"Paris"`), &a); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if a.Kind() != KindText {
		t.Errorf("expected text kind, got %q", a.Kind())
	}
	if a.String() != "Paris" {
		t.Errorf("expected %q, got %q", "Paris", a.String())
	}
}

func TestUnmarshalTagged(t *testing.T) {
	var md Answer
	if err := json.Unmarshal([]byte(`{"markdown":"## Title"}`), &md); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if md.Kind() != KindMarkdown || md.String() != "## Title" {
		t.Errorf("unexpected markdown answer: kind=%q text=%q", md.Kind(), md.String())
	}

	var j Answer
	if err := json.Unmarshal([]byte(`{"json":{"city":"Paris"}}`), &j); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if j.Kind() != KindJSON {
		t.Errorf("expected json kind, got %q", j.Kind())
	}
	if j.Value() == nil {
		t.Error("expected non-nil JSON value")
	}
}
