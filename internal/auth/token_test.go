package auth_test

import (
	"net/http/httptest"
	"testing"

	"jobboard/api-service/internal/auth"
)

func TestBearerToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"standard", "Bearer abc-123", "abc-123"},
		{"lowercase scheme", "bearer abc-123", "abc-123"},
		{"extra whitespace", "Bearer   abc-123", "abc-123"},
		{"missing header", "", ""},
		{"wrong scheme", "Basic abc-123", ""},
		{"scheme only", "Bearer ", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/companies", nil)
			if c.header != "" {
				r.Header.Set("Authorization", c.header)
			}
			if got := auth.BearerToken(r); got != c.want {
				t.Errorf("BearerToken(%q) = %q, want %q", c.header, got, c.want)
			}
		})
	}
}
