package macro

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Gender selects the Mifflin-St Jeor constant.
type Gender string

// Gender constants
const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Goal selects the protein multiplier bounds.
type Goal string

// Goal constants
const (
	GoalMuscleBuilding Goal = "Muscle Building"
	GoalStrength       Goal = "Strength"
	GoalCalisthenics   Goal = "Calisthenics"
)

// ValidGenders and ValidGoals list the options offered by the calculator form, in display order.
var (
	ValidGenders = []Gender{GenderMale, GenderFemale}
	ValidGoals   = []Goal{GoalMuscleBuilding, GoalStrength, GoalCalisthenics}
)

// BMR assumptions. Height and age are not collected from the user.
const (
	AssumedHeightCm = 170.0
	AssumedAgeYears = 28.0
	ActivityFactor  = 1.55 // moderately active
)

// Gauge scale ceilings used by the result bars.
const (
	ProteinGaugeMaxG = 300
	TDEEGaugeMaxKcal = 4000
)

// Domain errors
var (
	ErrInvalidInput  = errors.New("please enter valid weight and body fat values")
	ErrUnknownGender = errors.New("gender must be one of: Male, Female")
	ErrUnknownGoal   = errors.New("goal must be one of: Muscle Building, Strength, Calisthenics")
)

// Multiplier is the protein g/kg-of-LBM range for a goal.
type Multiplier struct {
	Min float64
	Max float64
}

var proteinMultipliers = map[Goal]Multiplier{
	GoalMuscleBuilding: {Min: 1.6, Max: 2.2},
	GoalStrength:       {Min: 1.6, Max: 2.0},
	GoalCalisthenics:   {Min: 1.4, Max: 1.8},
}

// MultiplierFor returns the protein multiplier bounds for a goal.
// PRE: none
// POST: ok is false for goals outside ValidGoals
func MultiplierFor(g Goal) (Multiplier, bool) {
	m, ok := proteinMultipliers[g]
	return m, ok
}

// Input is a parsed calculator submission.
type Input struct {
	Gender         Gender
	BodyweightKg   float64
	BodyFatPercent float64
	Goal           Goal
}

// Result is the computed macro estimate.
type Result struct {
	LeanBodyMassKg float64 // rounded to 1 decimal
	ProteinMinG    int
	ProteinMaxG    int
	TDEEKcal       int
}

// Gauges holds the 0-100 fill levels for the result bars.
type Gauges struct {
	LeanBodyMassPct int
	ProteinPct      int
	TDEEPct         int
}

// ParseGender converts a form value to a Gender.
func ParseGender(s string) (Gender, error) {
	for _, g := range ValidGenders {
		if string(g) == s {
			return g, nil
		}
	}
	return "", ErrUnknownGender
}

// ParseGoal converts a form value to a Goal.
func ParseGoal(s string) (Goal, error) {
	for _, g := range ValidGoals {
		if string(g) == s {
			return g, nil
		}
	}
	return "", ErrUnknownGoal
}

// ParseInput converts raw form strings into an Input.
// PRE: none
// POST: returns ErrInvalidInput if weight or body fat is missing, non-numeric,
// non-finite or not positive; ErrUnknownGender/ErrUnknownGoal for bad enums
func ParseInput(gender, weight, bodyFat, goal string) (Input, error) {
	g, err := ParseGender(gender)
	if err != nil {
		return Input{}, err
	}
	gl, err := ParseGoal(goal)
	if err != nil {
		return Input{}, err
	}
	w, err := parsePositive(weight)
	if err != nil {
		return Input{}, err
	}
	bf, err := parsePositive(bodyFat)
	if err != nil {
		return Input{}, err
	}
	return Input{Gender: g, BodyweightKg: w, BodyFatPercent: bf, Goal: gl}, nil
}

func parsePositive(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidInput
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidInput
	}
	if !validNumber(v) {
		return 0, ErrInvalidInput
	}
	return v, nil
}

func validNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// Compute derives lean body mass, protein range and TDEE.
// PRE: none
// POST: returns ErrInvalidInput (and a zero Result) unless bodyweight is
// positive and finite and body fat is in (0, 100)
// INVARIANT: goal affects only the protein bounds; gender and bodyweight only TDEE and LBM
func Compute(gender Gender, bodyweightKg, bodyFatPercent float64, goal Goal) (Result, error) {
	if !validNumber(bodyweightKg) || !validNumber(bodyFatPercent) || bodyFatPercent >= 100 {
		return Result{}, ErrInvalidInput
	}
	mult, ok := MultiplierFor(goal)
	if !ok {
		return Result{}, ErrUnknownGoal
	}
	bmr, err := BMR(gender, bodyweightKg)
	if err != nil {
		return Result{}, err
	}

	lbm := LeanBodyMass(bodyweightKg, bodyFatPercent)
	return Result{
		LeanBodyMassKg: roundTenths(lbm),
		ProteinMinG:    roundHalfUp(lbm * mult.Min),
		ProteinMaxG:    roundHalfUp(lbm * mult.Max),
		TDEEKcal:       roundHalfUp(bmr * ActivityFactor),
	}, nil
}

// ComputeInput is Compute over a parsed Input.
func ComputeInput(in Input) (Result, error) {
	return Compute(in.Gender, in.BodyweightKg, in.BodyFatPercent, in.Goal)
}

// LeanBodyMass returns bodyweight minus fat mass, unrounded.
func LeanBodyMass(bodyweightKg, bodyFatPercent float64) float64 {
	return bodyweightKg * (1 - bodyFatPercent/100)
}

// BMR returns the Mifflin-St Jeor basal metabolic rate using the assumed height and age.
// PRE: bodyweightKg > 0
// POST: returns ErrUnknownGender for genders outside ValidGenders
func BMR(gender Gender, bodyweightKg float64) (float64, error) {
	base := 10*bodyweightKg + 6.25*AssumedHeightCm - 5*AssumedAgeYears
	switch gender {
	case GenderMale:
		return base + 5, nil
	case GenderFemale:
		return base - 161, nil
	default:
		return 0, ErrUnknownGender
	}
}

// Gauges returns the bar fill levels for a result against the submitted bodyweight.
// PRE: r came from Compute with the same bodyweight
// POST: every value is clamped to [0, 100]
func (r Result) Gauges(bodyweightKg float64) Gauges {
	g := Gauges{
		ProteinPct: clampPct(roundHalfUp(float64(r.ProteinMaxG) / ProteinGaugeMaxG * 100)),
		TDEEPct:    clampPct(roundHalfUp(float64(r.TDEEKcal) / TDEEGaugeMaxKcal * 100)),
	}
	if bodyweightKg > 0 {
		g.LeanBodyMassPct = clampPct(roundHalfUp(r.LeanBodyMassKg / bodyweightKg * 100))
	}
	return g
}

// roundHalfUp rounds half toward positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// roundTenths rounds the exact binary value of v to one decimal, exact ties upward.
// 70.1*0.5 is stored just below 35.05 and becomes 35.0; 35.25 is exact and becomes 35.3.
// PRE: v >= 0 and finite
func roundTenths(v float64) float64 {
	s := new(big.Rat).SetFloat64(v).FloatString(1)
	out, _ := strconv.ParseFloat(s, 64)
	return out
}

func clampPct(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
