package macro_test

import (
	"errors"
	"math"
	"testing"

	"ironcore/internal/domain/macro"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestCompute_ReferenceCases checks worked examples against the Mifflin-St Jeor formula.
func TestCompute_ReferenceCases(t *testing.T) {
	tests := []struct {
		name    string
		gender  macro.Gender
		weight  float64
		bodyFat float64
		goal    macro.Goal
		want    macro.Result
	}{
		{
			// BMR = 820 + 1062.5 - 140 + 5 = 1747.5
			name: "male muscle building", gender: macro.GenderMale, weight: 82, bodyFat: 15, goal: macro.GoalMuscleBuilding,
			want: macro.Result{LeanBodyMassKg: 69.7, ProteinMinG: 112, ProteinMaxG: 153, TDEEKcal: 2709},
		},
		{
			// BMR = 600 + 1062.5 - 140 - 161 = 1361.5
			name: "female strength", gender: macro.GenderFemale, weight: 60, bodyFat: 25, goal: macro.GoalStrength,
			want: macro.Result{LeanBodyMassKg: 45.0, ProteinMinG: 72, ProteinMaxG: 90, TDEEKcal: 2110},
		},
		{
			// LBM 72, 72*1.4 = 100.8, 72*1.8 = 129.6
			name: "male calisthenics", gender: macro.GenderMale, weight: 80, bodyFat: 10, goal: macro.GoalCalisthenics,
			want: macro.Result{LeanBodyMassKg: 72.0, ProteinMinG: 101, ProteinMaxG: 130, TDEEKcal: 2678},
		},
		{
			// 70.1 * 0.5 is stored as 35.0499..., so the tenth rounds down
			name: "lbm just below tie", gender: macro.GenderMale, weight: 70.1, bodyFat: 50, goal: macro.GoalStrength,
			want: macro.Result{LeanBodyMassKg: 35.0, ProteinMinG: 56, ProteinMaxG: 70, TDEEKcal: 2524},
		},
		{
			name: "lbm 70.3 at 50%", gender: macro.GenderMale, weight: 70.3, bodyFat: 50, goal: macro.GoalStrength,
			want: macro.Result{LeanBodyMassKg: 35.1, ProteinMinG: 56, ProteinMaxG: 70, TDEEKcal: 2527},
		},
		{
			name: "lbm 80.3 at 50%", gender: macro.GenderMale, weight: 80.3, bodyFat: 50, goal: macro.GoalStrength,
			want: macro.Result{LeanBodyMassKg: 40.1, ProteinMinG: 64, ProteinMaxG: 80, TDEEKcal: 2682},
		},
		{
			name: "lbm 90.1 at 50%", gender: macro.GenderMale, weight: 90.1, bodyFat: 50, goal: macro.GoalStrength,
			want: macro.Result{LeanBodyMassKg: 45.0, ProteinMinG: 72, ProteinMaxG: 90, TDEEKcal: 2834},
		},
		{
			// 35.25 is exact in binary, so the tie goes up
			name: "lbm exact tie", gender: macro.GenderMale, weight: 70.5, bodyFat: 50, goal: macro.GoalStrength,
			want: macro.Result{LeanBodyMassKg: 35.3, ProteinMinG: 56, ProteinMaxG: 71, TDEEKcal: 2530},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := macro.Compute(tt.gender, tt.weight, tt.bodyFat, tt.goal)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !approxEqual(got.LeanBodyMassKg, tt.want.LeanBodyMassKg) {
				t.Errorf("LeanBodyMassKg = %v, want %v", got.LeanBodyMassKg, tt.want.LeanBodyMassKg)
			}
			if got.ProteinMinG != tt.want.ProteinMinG {
				t.Errorf("ProteinMinG = %d, want %d", got.ProteinMinG, tt.want.ProteinMinG)
			}
			if got.ProteinMaxG != tt.want.ProteinMaxG {
				t.Errorf("ProteinMaxG = %d, want %d", got.ProteinMaxG, tt.want.ProteinMaxG)
			}
			if got.TDEEKcal != tt.want.TDEEKcal {
				t.Errorf("TDEEKcal = %d, want %d", got.TDEEKcal, tt.want.TDEEKcal)
			}
		})
	}
}

// TestBMR_GenderConstants verifies the +5 / -161 branch.
func TestBMR_GenderConstants(t *testing.T) {
	male, err := macro.BMR(macro.GenderMale, 82)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	female, err := macro.BMR(macro.GenderFemale, 82)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(male, 1747.5) {
		t.Errorf("male BMR = %v, want 1747.5", male)
	}
	if !approxEqual(male-female, 166) {
		t.Errorf("male - female BMR = %v, want 166", male-female)
	}
	if _, err := macro.BMR("Other", 82); !errors.Is(err, macro.ErrUnknownGender) {
		t.Errorf("expected ErrUnknownGender, got %v", err)
	}
}

// TestCompute_Idempotent verifies repeated calls return identical results.
func TestCompute_Idempotent(t *testing.T) {
	first, err := macro.Compute(macro.GenderFemale, 67.3, 22.5, macro.GoalCalisthenics)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := macro.Compute(macro.GenderFemale, 67.3, 22.5, macro.GoalCalisthenics)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("call %d = %+v, want %+v", i, again, first)
		}
	}
}

// TestCompute_InvalidInput verifies that bad numbers never produce a result.
func TestCompute_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		weight  float64
		bodyFat float64
	}{
		{"NaN body fat", 80, math.NaN()},
		{"NaN weight", math.NaN(), 15},
		{"infinite weight", math.Inf(1), 15},
		{"zero weight", 0, 15},
		{"zero body fat", 80, 0},
		{"negative weight", -80, 15},
		{"body fat 100", 80, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := macro.Compute(macro.GenderMale, tt.weight, tt.bodyFat, macro.GoalStrength)
			if !errors.Is(err, macro.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if got != (macro.Result{}) {
				t.Errorf("expected zero result, got %+v", got)
			}
		})
	}
}

// TestCompute_UnknownGoal verifies goals outside the table are rejected.
func TestCompute_UnknownGoal(t *testing.T) {
	if _, err := macro.Compute(macro.GenderMale, 80, 15, "Yoga"); !errors.Is(err, macro.ErrUnknownGoal) {
		t.Errorf("expected ErrUnknownGoal, got %v", err)
	}
}

// TestParseInput covers form-string parsing.
func TestParseInput(t *testing.T) {
	tests := []struct {
		name    string
		gender  string
		weight  string
		bodyFat string
		goal    string
		wantErr error
	}{
		{"valid", "Male", "82", "15", "Muscle Building", nil},
		{"valid with spaces", "Female", " 60.5 ", "25", "Strength", nil},
		{"empty weight", "Male", "", "15", "Strength", macro.ErrInvalidInput},
		{"empty body fat", "Male", "82", "", "Strength", macro.ErrInvalidInput},
		{"NaN body fat", "Male", "82", "NaN", "Strength", macro.ErrInvalidInput},
		{"Inf weight", "Male", "Inf", "15", "Strength", macro.ErrInvalidInput},
		{"text weight", "Male", "heavy", "15", "Strength", macro.ErrInvalidInput},
		{"bad gender", "Robot", "82", "15", "Strength", macro.ErrUnknownGender},
		{"bad goal", "Male", "82", "15", "Fat Loss", macro.ErrUnknownGoal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := macro.ParseInput(tt.gender, tt.weight, tt.bodyFat, tt.goal)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseInput() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestCompute_BodyFatMonotonic verifies more body fat lowers LBM and protein.
func TestCompute_BodyFatMonotonic(t *testing.T) {
	for _, goal := range macro.ValidGoals {
		prev, err := macro.Compute(macro.GenderMale, 90, 5, goal)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for bf := 10.0; bf < 60; bf += 5 {
			cur, err := macro.Compute(macro.GenderMale, 90, bf, goal)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cur.LeanBodyMassKg >= prev.LeanBodyMassKg {
				t.Errorf("%s bf=%v: LBM %v not below %v", goal, bf, cur.LeanBodyMassKg, prev.LeanBodyMassKg)
			}
			if cur.ProteinMinG >= prev.ProteinMinG {
				t.Errorf("%s bf=%v: ProteinMinG %d not below %d", goal, bf, cur.ProteinMinG, prev.ProteinMinG)
			}
			if cur.ProteinMaxG >= prev.ProteinMaxG {
				t.Errorf("%s bf=%v: ProteinMaxG %d not below %d", goal, bf, cur.ProteinMaxG, prev.ProteinMaxG)
			}
			prev = cur
		}
	}
}

// TestCompute_GoalDoesNotAffectTDEE verifies goal only changes protein bounds.
func TestCompute_GoalDoesNotAffectTDEE(t *testing.T) {
	var tdee, lbm []float64
	for _, goal := range macro.ValidGoals {
		r, err := macro.Compute(macro.GenderFemale, 58, 28, goal)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tdee = append(tdee, float64(r.TDEEKcal))
		lbm = append(lbm, r.LeanBodyMassKg)
	}
	for i := 1; i < len(tdee); i++ {
		if tdee[i] != tdee[0] || lbm[i] != lbm[0] {
			t.Errorf("goal %s changed TDEE/LBM: %v/%v vs %v/%v", macro.ValidGoals[i], tdee[i], lbm[i], tdee[0], lbm[0])
		}
	}
}

// TestResult_Gauges verifies bar levels are scaled and clamped.
func TestResult_Gauges(t *testing.T) {
	r := macro.Result{LeanBodyMassKg: 69.7, ProteinMinG: 112, ProteinMaxG: 153, TDEEKcal: 2709}
	g := r.Gauges(82)
	if g.ProteinPct != 51 {
		t.Errorf("ProteinPct = %d, want 51", g.ProteinPct)
	}
	if g.LeanBodyMassPct != 85 {
		t.Errorf("LeanBodyMassPct = %d, want 85", g.LeanBodyMassPct)
	}
	if g.TDEEPct != 68 {
		t.Errorf("TDEEPct = %d, want 68", g.TDEEPct)
	}

	big := macro.Result{ProteinMaxG: 450, TDEEKcal: 5200, LeanBodyMassKg: 120}
	g = big.Gauges(130)
	if g.ProteinPct != 100 || g.TDEEPct != 100 {
		t.Errorf("expected clamped gauges, got %+v", g)
	}
}
