package signup

import (
	"errors"
	"strings"
	"testing"
)

func validRegistration() Registration {
	return Registration{
		Name:     "Ava Stone",
		Email:    "ava@example.com",
		Password: "hunter2hunter2",
		Goals:    []string{GoalStrength, GoalWellness},
		Level:    LevelIntermediate,
		Age:      29,
		WeightKg: 64.5,
	}
}

// TestRegistration_Validate verifies each step's rules and the step each error maps to.
func TestRegistration_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(r *Registration)
		wantErr  error
		wantStep int
	}{
		{"valid", func(r *Registration) {}, nil, 0},
		{"profile optional fields empty", func(r *Registration) { r.Age, r.WeightKg = 0, 0 }, nil, 0},
		{"blank name", func(r *Registration) { r.Name = "  " }, ErrEmptyName, StepAccount},
		{"long name", func(r *Registration) { r.Name = strings.Repeat("a", 101) }, ErrNameTooLong, StepAccount},
		{"email without at", func(r *Registration) { r.Email = "ava.example.com" }, ErrInvalidEmail, StepAccount},
		{"email with nothing after at", func(r *Registration) { r.Email = "ava@" }, ErrInvalidEmail, StepAccount},
		{"short password", func(r *Registration) { r.Password = "short" }, ErrPasswordTooShort, StepAccount},
		{"long password", func(r *Registration) { r.Password = strings.Repeat("p", 73) }, ErrPasswordTooLong, StepAccount},
		{"no goals", func(r *Registration) { r.Goals = nil }, ErrNoGoals, StepGoals},
		{"unknown goal", func(r *Registration) { r.Goals = []string{"yoga"} }, ErrInvalidGoal, StepGoals},
		{"no level", func(r *Registration) { r.Level = "" }, ErrInvalidLevel, StepProfile},
		{"young", func(r *Registration) { r.Age = 12 }, ErrAgeOutOfRange, StepProfile},
		{"heavy", func(r *Registration) { r.WeightKg = 251 }, ErrWeightOutOfRange, StepProfile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRegistration()
			tt.mutate(&r)
			err := r.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
			if got := StepOf(err); got != tt.wantStep {
				t.Errorf("StepOf = %d, want %d", got, tt.wantStep)
			}
		})
	}
}

// TestRegistration_FirstStepWins verifies errors are reported in form order.
func TestRegistration_FirstStepWins(t *testing.T) {
	r := Registration{Email: "x"}
	if err := r.Validate(); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Validate() = %v, want ErrEmptyName", err)
	}
}

// TestRegistration_Labels verifies the display helpers.
func TestRegistration_Labels(t *testing.T) {
	r := validRegistration()
	if got := strings.Join(r.GoalLabels(), ", "); got != "Strength, Wellness" {
		t.Errorf("GoalLabels = %q", got)
	}
	if r.LevelLabel() != "Intermediate" {
		t.Errorf("LevelLabel = %q", r.LevelLabel())
	}
	if !r.HasGoal(GoalWellness) || r.HasGoal(GoalMuscle) {
		t.Error("HasGoal mismatch")
	}
}

// TestLogin_Validate verifies the sign-in fields.
func TestLogin_Validate(t *testing.T) {
	if err := (&Login{Email: "ava@example.com", Password: "x"}).Validate(); err != nil {
		t.Errorf("valid login: %v", err)
	}
	if err := (&Login{Email: "nope", Password: "x"}).Validate(); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("bad email = %v", err)
	}
	if err := (&Login{Email: "ava@example.com"}).Validate(); !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("empty password = %v", err)
	}
	if StepOf(errors.New("other")) != 0 {
		t.Error("StepOf(unrelated) should be 0")
	}
}
