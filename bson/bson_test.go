package bson

import (
	"testing"

	"github.com/zoobzio/parsefetch"
	pftest "github.com/zoobzio/parsefetch/testing"
)

type account struct {
	ID      string `bson:"_id"`
	Balance int64  `bson:"balance"`
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/bson" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/bson")
	}
}

func TestBind(t *testing.T) {
	payload, err := New().Marshal(account{ID: "acc-1", Balance: 1200})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	resp := pftest.Response("application/bson", payload)

	got, err := parsefetch.Parse(t.Context(), resp, parsefetch.Options[account]{
		Validator: parsefetch.As[account](New()),
	})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got.ID != "acc-1" || got.Balance != 1200 {
		t.Errorf("Parse() = %+v", got)
	}
}

func TestBind_Invalid(t *testing.T) {
	resp := pftest.Response("application/bson", []byte("not bson"))

	_, err := parsefetch.Parse(t.Context(), resp, parsefetch.Options[account]{
		Validator: parsefetch.As[account](New()),
	})
	if err == nil {
		t.Fatal("Parse() should fail on invalid BSON")
	}
}
