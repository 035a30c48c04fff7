package main

import "testing"

func TestCORSConfigAllowsListedOrigins(t *testing.T) {
	cfg := corsConfig([]string{"http://localhost:5173"})

	cases := map[string]bool{
		"":                      true,
		"http://localhost:5173": true,
		"http://evil.example":   false,
	}
	for origin, want := range cases {
		if got := cfg.AllowOriginFunc(origin); got != want {
			t.Errorf("AllowOriginFunc(%q) = %v, want %v", origin, got, want)
		}
	}
	if !cfg.AllowCredentials {
		t.Error("credentials must be allowed")
	}
}
