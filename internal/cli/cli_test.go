package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReadParams(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Params
		wantErr error
	}{
		{
			name:  "Values on separate lines",
			input: "100000000\n4\n",
			want:  Params{Subintervals: 100000000, Workers: 4},
		},
		{
			name:  "Values on one line",
			input: "  8 3",
			want:  Params{Subintervals: 8, Workers: 3},
		},
		{
			name:  "Negative worker count parses",
			input: "10\n-2\n",
			want:  Params{Subintervals: 10, Workers: -2},
		},
		{
			name:    "Non-numeric N",
			input:   "abc\n4\n",
			wantErr: ErrInvalidInput,
		},
		{
			name:    "Negative N",
			input:   "-5\n4\n",
			wantErr: ErrInvalidInput,
		},
		{
			name:    "N out of range",
			input:   "18446744073709551616\n4\n",
			wantErr: ErrInvalidInput,
		},
		{
			name:    "T out of range",
			input:   "10\n99999999999\n",
			wantErr: ErrInvalidInput,
		},
		{
			name:    "Missing T",
			input:   "10\n",
			wantErr: ErrInvalidInput,
		},
		{
			name:    "Empty input",
			input:   "",
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := ReadParams(strings.NewReader(tt.input), &out)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ReadParams() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadParams() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadParams() = %+v, want %+v", got, tt.want)
			}
			if out.String() != PromptSubintervals+PromptWorkers {
				t.Errorf("prompts = %q", out.String())
			}
		})
	}
}

func TestRun(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var out, errOut bytes.Buffer
		code := Run(strings.NewReader("1\n1\n"), &out, &errOut)
		if code != 0 {
			t.Fatalf("Run() = %d, stderr = %q", code, errOut.String())
		}

		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("Run() printed %d lines: %q", len(lines), out.String())
		}
		wantPi := PromptSubintervals + PromptWorkers + "Oszacowana wartosc pi: 3.4641"
		if lines[0] != wantPi {
			t.Errorf("first line = %q, want %q", lines[0], wantPi)
		}
		if !strings.HasPrefix(lines[1], "Czas obliczen: ") || !strings.HasSuffix(lines[1], " s") {
			t.Errorf("second line = %q", lines[1])
		}
		if errOut.Len() != 0 {
			t.Errorf("unexpected stderr output: %q", errOut.String())
		}
	})

	t.Run("Invalid input", func(t *testing.T) {
		var out, errOut bytes.Buffer
		if code := Run(strings.NewReader("x\n"), &out, &errOut); code == 0 {
			t.Errorf("Run() = 0 for non-numeric input")
		}
		if !strings.Contains(errOut.String(), ErrInvalidInput.Error()) {
			t.Errorf("stderr = %q", errOut.String())
		}
	})

	t.Run("Invalid argument", func(t *testing.T) {
		var out, errOut bytes.Buffer
		if code := Run(strings.NewReader("10\n0\n"), &out, &errOut); code == 0 {
			t.Errorf("Run() = 0 for zero workers")
		}
		if !strings.Contains(errOut.String(), "invalid argument") {
			t.Errorf("stderr = %q", errOut.String())
		}
		if strings.Contains(out.String(), "Oszacowana") {
			t.Errorf("estimate printed on failure: %q", out.String())
		}
	})
}

func TestFormatFloat(t *testing.T) {
	tests := map[float64]string{
		3.141592653589793:  "3.14159",
		3.4641016151377544: "3.4641",
		0.000012:           "1.2e-05",
		2:                  "2",
	}
	for v, want := range tests {
		if got := FormatFloat(v); got != want {
			t.Errorf("FormatFloat(%v) = %q, want %q", v, got, want)
		}
	}
}
