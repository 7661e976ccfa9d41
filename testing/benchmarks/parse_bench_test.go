package benchmarks

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/zoobzio/parsefetch"
	pftest "github.com/zoobzio/parsefetch/testing"
	"github.com/zoobzio/parsefetch/yaml"
)

type Account struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Email   string   `json:"email" yaml:"email"`
	Roles   []string `json:"roles" yaml:"roles"`
	Created string   `json:"created" yaml:"created"`
}

var (
	accountJSON = []byte(`{"id":"123","name":"Alice","email":"alice@example.com","roles":["admin","ops"],"created":"2023-12-25T00:00:00Z"}`)
	accountYAML = []byte("id: \"123\"\nname: Alice\nemail: alice@example.com\nroles: [admin, ops]\ncreated: \"2023-12-25T00:00:00Z\"\n")
)

func BenchmarkSafeParse_JSON_Untyped(b *testing.B) {
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		_ = parsefetch.SafeParse(ctx, pftest.Response("application/json", accountJSON), parsefetch.Options[any]{})
	}
}

func BenchmarkSafeParse_JSON_Typed(b *testing.B) {
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		_ = parsefetch.SafeParse(ctx, pftest.Response("application/json", accountJSON), parsefetch.Options[Account]{})
	}
}

func BenchmarkSafeParse_JSON_Reviver(b *testing.B) {
	ctx := context.Background()
	opts := parsefetch.Options[any]{
		Reviver: func(key string, value any) any {
			if s, ok := value.(string); ok && key == "created" {
				if t, err := time.Parse(time.RFC3339, s); err == nil {
					return t
				}
			}
			return value
		},
	}
	for i := 0; i < b.N; i++ {
		_ = parsefetch.SafeParse(ctx, pftest.Response("application/json", accountJSON), opts)
	}
}

func BenchmarkSafeParse_JSON_Pluck(b *testing.B) {
	ctx := context.Background()
	opts := parsefetch.Options[[]string]{Validator: parsefetch.Pluck[[]string]("roles")}
	for i := 0; i < b.N; i++ {
		_ = parsefetch.SafeParse(ctx, pftest.Response("application/json", accountJSON), opts)
	}
}

func BenchmarkSafeParse_YAML_Typed(b *testing.B) {
	parsefetch.ResetCodecs()
	parsefetch.RegisterCodec(yaml.New())
	b.Cleanup(parsefetch.ResetCodecs)

	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = parsefetch.SafeParse(ctx, pftest.Response("application/yaml", accountYAML), parsefetch.Options[Account]{})
	}
}

func BenchmarkSafeParse_Text(b *testing.B) {
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		_ = parsefetch.SafeParse(ctx, pftest.Response("text/plain", accountJSON), parsefetch.Options[string]{})
	}
}

func BenchmarkSafeParse_HTTPError(b *testing.B) {
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		_ = parsefetch.SafeParse(ctx, pftest.StatusResponse(http.StatusServiceUnavailable, "", nil), parsefetch.Options[any]{})
	}
}

func BenchmarkDecorator_FetchParse(b *testing.B) {
	client := parsefetch.Decorate(func(context.Context, *http.Request) (*http.Response, error) {
		return pftest.Response("application/json", accountJSON), nil
	})
	req := pftest.Request("http://example.invalid/accounts/123")
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = parsefetch.ParsePending(client.Fetch(ctx, req), parsefetch.Options[Account]{})
	}
}

func BenchmarkSelectStrategy(b *testing.B) {
	tags := []string{
		"application/json; charset=utf-8",
		"text/html",
		"application/x-www-form-urlencoded",
		"image/png",
		"application/unknown",
	}
	for i := 0; i < b.N; i++ {
		_ = parsefetch.SelectStrategy(tags[i%len(tags)])
	}
}
