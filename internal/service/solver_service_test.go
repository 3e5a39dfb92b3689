package service

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/agbru/vieta/internal/errors"
	"github.com/agbru/vieta/internal/input"
	"github.com/agbru/vieta/internal/logging"
	"github.com/agbru/vieta/internal/vieta"
)

// mockLoader implements ProblemLoader for testing.
type mockLoader struct {
	problem *vieta.Problem
	err     error
	calls   int
}

func (m *mockLoader) Load(string) (*vieta.Problem, error) {
	m.calls++
	return m.problem, m.err
}

func TestNewSolverService(t *testing.T) {
	t.Parallel()
	svc := NewSolverService(vieta.NewRegistry(), &mockLoader{}, nil)
	if svc == nil {
		t.Fatal("expected non-nil service")
	}
	if svc.logger == nil {
		t.Error("nil logger should be replaced by a nop logger")
	}
}

func TestSolve(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		engine     string
		loader     *mockLoader
		wantConst  string
		wantErr    bool
		wantLoaded bool
	}{
		{
			name:   "Successful evaluation",
			engine: "sequential",
			loader: &mockLoader{problem: &vieta.Problem{
				N: 3, K: big.NewInt(2),
				Roots: []vieta.EncodedRoot{{ID: "a", Base: 16, Value: "a"}, {ID: "b", Base: 8, Value: "10"}, {ID: "c", Base: 10, Value: "1"}},
			}},
			wantConst:  "-160",
			wantLoaded: true,
		},
		{
			name:       "Tree engine",
			engine:     "tree",
			loader:     &mockLoader{problem: &vieta.Problem{N: 0, K: big.NewInt(5)}},
			wantConst:  "5",
			wantLoaded: true,
		},
		{
			name:       "Unknown engine is reported before loading",
			engine:     "abacus",
			loader:     &mockLoader{problem: &vieta.Problem{N: 0, K: big.NewInt(5)}},
			wantErr:    true,
			wantLoaded: false,
		},
		{
			name:       "Loader error",
			engine:     "sequential",
			loader:     &mockLoader{err: apperrors.MissingFieldError{Field: "keys"}},
			wantErr:    true,
			wantLoaded: true,
		},
		{
			name:   "Invalid digit",
			engine: "sequential",
			loader: &mockLoader{problem: &vieta.Problem{
				N: 1, K: big.NewInt(1),
				Roots: []vieta.EncodedRoot{{ID: "r", Base: 10, Value: "g"}},
			}},
			wantErr:    true,
			wantLoaded: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewSolverService(vieta.NewRegistry(), tt.loader, nil)
			res, err := svc.Solve(context.Background(), tt.engine, "input.json")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Solve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if (tt.loader.calls > 0) != tt.wantLoaded {
				t.Errorf("loader called %d times, wantLoaded %v", tt.loader.calls, tt.wantLoaded)
			}
			if tt.wantErr {
				if res != nil {
					t.Error("no result may be returned on failure")
				}
				return
			}
			if res.Constant.String() != tt.wantConst {
				t.Errorf("constant = %s, want %s", res.Constant, tt.wantConst)
			}
			if res.Engine != tt.engine {
				t.Errorf("engine = %q, want %q", res.Engine, tt.engine)
			}
		})
	}
}

func TestSolve_ErrorClasses(t *testing.T) {
	t.Parallel()
	svc := NewSolverService(vieta.NewRegistry(), &mockLoader{}, nil)
	_, err := svc.Solve(context.Background(), "abacus", "input.json")
	if apperrors.ExitCodeFor(err) != apperrors.ExitErrorConfig {
		t.Errorf("unknown engine exit code = %d, want %d", apperrors.ExitCodeFor(err), apperrors.ExitErrorConfig)
	}

	svc = NewSolverService(vieta.NewRegistry(), &mockLoader{problem: &vieta.Problem{
		N: 1, K: big.NewInt(1),
		Roots: []vieta.EncodedRoot{{ID: "r", Base: 2, Value: "2"}},
	}}, nil)
	_, err = svc.Solve(context.Background(), "sequential", "input.json")
	var digitErr apperrors.InvalidDigitError
	if !errors.As(err, &digitErr) {
		t.Fatalf("expected InvalidDigitError, got %v", err)
	}
	if apperrors.ExitCodeFor(err) != apperrors.ExitErrorInvalidDigit {
		t.Errorf("invalid digit exit code = %d", apperrors.ExitCodeFor(err))
	}
}

func TestSolve_WithInputLoader(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "input.json")
	doc := `{"keys":{"n":2,"k":"1"},"r1":{"base":"10","value":"4"},"r2":{"base":"2","value":"11"}}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	logger := logging.NewLogger(&logs, "vieta", "info")
	svc := NewSolverService(vieta.NewRegistry(), input.Loader{}, logger)
	res, err := svc.Solve(context.Background(), "sequential", path)
	if err != nil {
		t.Fatalf("Solve() unexpected error: %v", err)
	}
	if res.Constant.Int64() != 12 {
		t.Errorf("constant = %s, want 12", res.Constant)
	}
	if !strings.Contains(logs.String(), `"message":"input loaded"`) {
		t.Errorf("expected an info record, got %q", logs.String())
	}
}

func TestSolve_MissingFile(t *testing.T) {
	t.Parallel()
	var logs bytes.Buffer
	svc := NewSolverService(vieta.NewRegistry(), input.Loader{}, logging.NewLogger(&logs, "vieta", "error"))
	_, err := svc.Solve(context.Background(), "sequential", filepath.Join(t.TempDir(), "missing.json"))
	if apperrors.ExitCodeFor(err) != apperrors.ExitErrorInputUnavailable {
		t.Errorf("exit code = %d, want %d", apperrors.ExitCodeFor(err), apperrors.ExitErrorInputUnavailable)
	}
	if !strings.Contains(logs.String(), "failed to load input") {
		t.Errorf("expected an error record, got %q", logs.String())
	}
}
