package render

import "testing"

func TestTrimTrailingNewline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "no newline", in: "Hello, World!", want: "Hello, World!"},
		{name: "single newline", in: "Hello, World!\n", want: "Hello, World!"},
		{name: "crlf", in: "Hello\r\n", want: "Hello"},
		{name: "only one trimmed", in: "Hello\n\n", want: "Hello\n"},
		{name: "empty", in: "", want: ""},
		{name: "inner newlines kept", in: "a\nb\n", want: "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimTrailingNewline(tt.in); got != tt.want {
				t.Fatalf("TrimTrailingNewline(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFinalize(t *testing.T) {
	if got := Finalize("<p>x</p>\n", OutputOptions{}); got != "<p>x</p>" {
		t.Fatalf("default options should trim newline, got %q", got)
	}
	if got := Finalize("<p>x</p>\n", OutputOptions{KeepTrailingNewline: true}); got != "<p>x</p>\n" {
		t.Fatalf("keep trailing newline ignored, got %q", got)
	}
	if got := Finalize("<p>x</p>\n", OutputOptions{Sanitize: SanitizeStrict}); got != "x" {
		t.Fatalf("strict sanitize, got %q", got)
	}
}

func TestParseSanitizePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    SanitizePolicy
		wantErr bool
	}{
		{in: "", want: SanitizeNone},
		{in: "none", want: SanitizeNone},
		{in: " UGC ", want: SanitizeUGC},
		{in: "strict", want: SanitizeStrict},
		{in: "paranoid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSanitizePolicy(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseSanitizePolicy(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizePolicyApply(t *testing.T) {
	input := `<p onclick="steal()">hi</p><script>alert(1)</script>`

	if got := SanitizeNone.Apply(input); got != input {
		t.Fatalf("none policy altered output: %q", got)
	}
	if got := SanitizePolicy("").Apply(input); got != input {
		t.Fatalf("zero policy altered output: %q", got)
	}
	if got := SanitizeUGC.Apply(input); got != "<p>hi</p>" {
		t.Fatalf("ugc policy, got %q", got)
	}
	if got := SanitizeStrict.Apply(input); got != "hi" {
		t.Fatalf("strict policy, got %q", got)
	}
}
