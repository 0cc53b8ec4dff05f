package yaml_test

import (
	"testing"

	"github.com/zoobzio/numcode"
	"github.com/zoobzio/numcode/yaml"
)

func TestYAML_ContentType(t *testing.T) {
	if got := yaml.New().ContentType(); got != "application/yaml" {
		t.Errorf("ContentType() = %q, want %q", got, "application/yaml")
	}
}

func TestYAML_ResourceRoundTrip(t *testing.T) {
	f := yaml.New()
	res := numcode.Resource{
		Author:    "tester",
		Timestamp: 1700000000,
		Mapping:   map[string]int{"a": 1, "b": 2},
	}

	data, err := f.Marshal(res)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var got numcode.Resource
	if err := f.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got.Author != res.Author || got.Mapping["a"] != 1 {
		t.Errorf("round trip = %+v, want %+v", got, res)
	}
}
