package message

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "plain text passes through",
			input: "hello",
			want:  "hello",
		},
		{
			name:  "surrounding whitespace is trimmed",
			input: "  hi  ",
			want:  "hi",
		},
		{
			name:  "inner whitespace is kept",
			input: "\thello world \n",
			want:  "hello world",
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: ErrEmptyText,
		},
		{
			name:    "whitespace only",
			input:   " \t\n ",
			wantErr: ErrEmptyText,
		},
		{
			name:  "exactly max length",
			input: strings.Repeat("a", MaxTextLen),
			want:  strings.Repeat("a", MaxTextLen),
		},
		{
			name:    "one over max length",
			input:   strings.Repeat("a", MaxTextLen+1),
			wantErr: ErrTextTooLong,
		},
		{
			name:  "max length counted in runes not bytes",
			input: strings.Repeat("é", MaxTextLen),
			want:  strings.Repeat("é", MaxTextLen),
		},
		{
			name:  "trim happens before the length check",
			input: "  " + strings.Repeat("a", MaxTextLen) + "  ",
			want:  strings.Repeat("a", MaxTextLen),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateText(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestValidateTextDeterministic(t *testing.T) {
	// Same input must always yield the same outcome.
	for i := 0; i < 3; i++ {
		got, err := ValidateText("  stable  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "stable" {
			t.Errorf("expected %q, got %q", "stable", got)
		}
	}
}
