package domain

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "valid integer", raw: "1000", want: "1000"},
		{name: "valid decimal", raw: "999.99", want: "999.99"},
		{name: "trims whitespace", raw: " 42.50 ", want: "42.5"},
		{name: "zero rejected", raw: "0", wantErr: ErrInvalidAmount},
		{name: "negative rejected", raw: "-5", wantErr: ErrInvalidAmount},
		{name: "not a number", raw: "abc", wantErr: ErrInvalidAmount},
		{name: "empty", raw: "", wantErr: ErrInvalidAmount},
		{name: "above maximum", raw: "1000000000001", wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseAmount(tt.raw)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if amount.String() != tt.want {
				t.Errorf("amount = %s, want %s", amount, tt.want)
			}
		})
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "valid rate", raw: "18", want: "18"},
		{name: "zero allowed", raw: "0", want: "0"},
		{name: "fractional rate", raw: "12.5", want: "12.5"},
		{name: "negative rejected", raw: "-1", wantErr: ErrInvalidRate},
		{name: "not a number", raw: "five", wantErr: ErrInvalidRate},
		{name: "empty", raw: "", wantErr: ErrInvalidRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := ParseRate(tt.raw)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rate.String() != tt.want {
				t.Errorf("rate = %s, want %s", rate, tt.want)
			}
		})
	}
}
