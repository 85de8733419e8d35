package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		want      cliFlags
		wantPos   []string
		wantUsage bool
	}{
		{
			name:    "positional only",
			args:    []string{"pdfoverlay", "in.pdf", "out.pdf", "{}"},
			wantPos: []string{"in.pdf", "out.pdf", "{}"},
		},
		{
			name:    "all flags",
			args:    []string{"pdfoverlay", "-c", "house", "--dpi", "144", "-v", "in.pdf", "out.png", "{}"},
			want:    cliFlags{config: "house", dpi: 144, dpiChanged: true, verbose: true},
			wantPos: []string{"in.pdf", "out.png", "{}"},
		},
		{
			name:    "interspersed",
			args:    []string{"pdfoverlay", "in.pdf", "--verbose", "out.pdf", "{}"},
			want:    cliFlags{verbose: true},
			wantPos: []string{"in.pdf", "out.pdf", "{}"},
		},
		{
			name:    "terminator allows dash paths",
			args:    []string{"pdfoverlay", "--", "-in.pdf", "out.pdf", "{}"},
			wantPos: []string{"-in.pdf", "out.pdf", "{}"},
		},
		{
			name: "help",
			args: []string{"pdfoverlay", "-h"},
			want: cliFlags{help: true},
		},
		{
			name: "version",
			args: []string{"pdfoverlay", "--version"},
			want: cliFlags{version: true},
		},
		{name: "unknown flag", args: []string{"pdfoverlay", "--nope"}, wantUsage: true},
		{name: "dpi not a number", args: []string{"pdfoverlay", "--dpi", "high"}, wantUsage: true},
		{name: "config missing value", args: []string{"pdfoverlay", "-c"}, wantUsage: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, pos, err := parseFlags(tt.args)
			if tt.wantUsage {
				if !errors.Is(err, ErrUsage) {
					t.Fatalf("parseFlags() error = %v, want ErrUsage", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, *got, cmp.AllowUnexported(cliFlags{})); diff != "" {
				t.Errorf("flags mismatch (-want +got):\n%s", diff)
			}
			if len(pos) == 0 && len(tt.wantPos) == 0 {
				return
			}
			if diff := cmp.Diff(tt.wantPos, pos); diff != "" {
				t.Errorf("positional mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
