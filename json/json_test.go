package json

import (
	"errors"
	"testing"

	"github.com/zoobzio/parsefetch"
	pftest "github.com/zoobzio/parsefetch/testing"
)

type profile struct {
	Name  string   `json:"name"`
	Tags  []string `json:"tags"`
	Score float64  `json:"score"`
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/json" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/json")
	}
}

func TestBind_StructuredBody(t *testing.T) {
	resp := pftest.Response("application/json", []byte(`{"name":"ada","tags":["x","y"],"score":9.5}`))

	got, err := parsefetch.Parse(t.Context(), resp, parsefetch.Options[profile]{
		Validator: parsefetch.As[profile](New()),
	})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got.Name != "ada" || len(got.Tags) != 2 || got.Score != 9.5 {
		t.Errorf("Parse() = %+v", got)
	}
}

func TestBind_TextBody(t *testing.T) {
	// A JSON document served as text/plain still binds through the codec.
	resp := pftest.Response("text/plain", []byte(`{"name":"grace"}`))

	got, err := parsefetch.Parse(t.Context(), resp, parsefetch.Options[profile]{
		Validator: parsefetch.As[profile](New()),
	})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got.Name != "grace" {
		t.Errorf("Name = %q, want %q", got.Name, "grace")
	}
}

func TestBind_TypeMismatch(t *testing.T) {
	resp := pftest.Response("application/json", []byte(`{"name":42}`))

	res := parsefetch.SafeParse(t.Context(), resp, parsefetch.Options[profile]{
		Validator: parsefetch.As[profile](New()),
	})
	if res.Success {
		t.Fatal("SafeParse() should fail on a type mismatch")
	}
	if !errors.Is(res.Err(), parsefetch.ErrBind) {
		t.Errorf("error = %v, want ErrBind", res.Err())
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	data, err := c.Marshal(profile{Name: "test", Score: 1})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored profile
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored.Name != "test" || restored.Score != 1 {
		t.Errorf("round-trip failed: got %+v", restored)
	}
}
