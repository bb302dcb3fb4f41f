package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestDefault_LoadsEmbeddedCatalogue verifies the shipped content decodes and validates.
func TestDefault_LoadsEmbeddedCatalogue(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if c.Club.Name != "IRONCORE" {
		t.Errorf("club name = %q, want IRONCORE", c.Club.Name)
	}
	if len(c.Programs) != 4 {
		t.Errorf("expected 4 programs, got %d", len(c.Programs))
	}
	if len(c.Trainers) != 6 {
		t.Errorf("expected 6 trainers, got %d", len(c.Trainers))
	}
	if len(c.Plans) != 4 {
		t.Errorf("expected 4 plans, got %d", len(c.Plans))
	}

	featured := 0
	for _, p := range c.Plans {
		if p.Featured {
			featured++
		}
	}
	if featured != 1 {
		t.Errorf("expected exactly 1 featured plan, got %d", featured)
	}
	if !c.Plans[3].IsCustom() {
		t.Errorf("expected TEAM plan to be custom priced")
	}
	if len(c.Nutrition.Services) == 0 || len(c.Nutrition.Phases) == 0 {
		t.Error("expected nutrition services and phases")
	}
}

// TestDecode_RejectsUnknownFields verifies typos in an override file are caught.
func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("club:\n  name: X\n  colour: red\n"))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

// TestDecode_Validation verifies catalogue invariants.
func TestDecode_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"no club name", "programs: [{id: a}]\nplans: [{id: p}]\n", ErrNoClubName},
		{"no programs", "club: {name: X}\nplans: [{id: p}]\n", ErrNoPrograms},
		{"no plans", "club: {name: X}\nprograms: [{id: a}]\n", ErrNoPlans},
		{"duplicate plan", "club: {name: X}\nprograms: [{id: a}]\nplans: [{id: p}, {id: p}]\n", ErrDuplicatePlan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.yaml))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestLoad_FromFile verifies an override file replaces the embedded catalogue.
func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	data := "club: {name: TESTGYM}\nprograms: [{id: a, title: A}]\nplans: [{id: p, price: '10'}]\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Club.Name != "TESTGYM" {
		t.Errorf("club name = %q, want TESTGYM", c.Club.Name)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
