package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"ironcore/internal/domain/macro"
)

// Outcome labels recorded per calculation.
const (
	MacroOutcomeOK      = "ok"
	MacroOutcomeInvalid = "invalid"
)

// MacroRecorder counts calculator submissions.
type MacroRecorder interface {
	CountMacroCalculation(goal, outcome string)
}

// CalculateMacrosInput carries the raw form values.
type CalculateMacrosInput struct {
	Gender  string
	Weight  string
	BodyFat string
	Goal    string
}

// CalculateMacrosResult carries the estimate and its display gauges.
type CalculateMacrosResult struct {
	Input  macro.Input
	Result macro.Result
	Gauges macro.Gauges
}

// CalculateMacrosDeps holds dependencies for CalculateMacros.
type CalculateMacrosDeps struct {
	Recorder MacroRecorder // optional
}

// ExecuteCalculateMacros parses the calculator form and computes the estimate.
// PRE: none
// POST: Returns the estimate, or macro.ErrInvalidInput for unusable numbers,
// or macro.ErrUnknownGender / macro.ErrUnknownGoal for values the form never offers
// INVARIANT: No state is written; the same input always yields the same result
func ExecuteCalculateMacros(_ context.Context, input CalculateMacrosInput, deps CalculateMacrosDeps) (CalculateMacrosResult, error) {
	in, err := macro.ParseInput(input.Gender, input.Weight, input.BodyFat, input.Goal)
	if err != nil {
		record(deps.Recorder, input.Goal, MacroOutcomeInvalid)
		if errors.Is(err, macro.ErrInvalidInput) {
			slog.Debug("macro_rejected", "reason", "invalid_numbers")
		} else {
			slog.Info("macro_rejected", "reason", err.Error())
		}
		return CalculateMacrosResult{}, err
	}

	res, err := macro.ComputeInput(in)
	if err != nil {
		record(deps.Recorder, string(in.Goal), MacroOutcomeInvalid)
		return CalculateMacrosResult{}, err
	}

	record(deps.Recorder, string(in.Goal), MacroOutcomeOK)
	slog.Debug("macro_calculated",
		"gender", in.Gender,
		"goal", in.Goal,
		"lbm_kg", res.LeanBodyMassKg,
		"tdee_kcal", res.TDEEKcal,
	)
	return CalculateMacrosResult{
		Input:  in,
		Result: res,
		Gauges: res.Gauges(in.BodyweightKg),
	}, nil
}

func record(r MacroRecorder, goal, outcome string) {
	if r == nil {
		return
	}
	if _, err := macro.ParseGoal(goal); err != nil {
		goal = "unknown"
	}
	r.CountMacroCalculation(goal, outcome)
}
