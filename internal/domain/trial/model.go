package trial

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength  = 100
	MaxPhoneLength = 32
	MaxEmailLength = 254
)

// Goal constants. IDs are the values posted by the trial form.
const (
	GoalMuscle   = "muscle"
	GoalFatLoss  = "fatloss"
	GoalStrength = "strength"
	GoalAthlete  = "athlete"
)

// Experience constants
const (
	ExperienceBeginner     = "Beginner"
	ExperienceIntermediate = "Intermediate"
	ExperienceAdvanced     = "Advanced"
)

// Training time constants
const (
	TimeMorning = "Morning"
	TimeEvening = "Evening"
)

// GoalOption describes a goal card on the trial form.
type GoalOption struct {
	ID    string
	Icon  string
	Title string
	Sub   string
}

// Goals lists the goal cards in display order.
var Goals = []GoalOption{
	{ID: GoalMuscle, Icon: "◈", Title: "MUSCLE BUILDING", Sub: "Hypertrophy & mass protocols"},
	{ID: GoalFatLoss, Icon: "◉", Title: "FAT LOSS", Sub: "Precision cut & recomp"},
	{ID: GoalStrength, Icon: "▲", Title: "STRENGTH", Sub: "Powerlifting & maximal output"},
	{ID: GoalAthlete, Icon: "◆", Title: "ATHLETE PERFORMANCE", Sub: "Sport-specific conditioning"},
}

// ExperienceLevels and TrainingTimes list the toggle options in display order.
var (
	ExperienceLevels = []string{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced}
	TrainingTimes    = []string{TimeMorning, TimeEvening}
)

// Domain errors
var (
	ErrMissingGoal       = errors.New("select a goal to continue")
	ErrInvalidGoal       = errors.New("goal must be one of: muscle, fatloss, strength, athlete")
	ErrEmptyName         = errors.New("full name is required")
	ErrNameTooLong       = errors.New("full name cannot exceed 100 characters")
	ErrEmptyPhone        = errors.New("phone number is required")
	ErrPhoneTooLong      = errors.New("phone number cannot exceed 32 characters")
	ErrInvalidExperience = errors.New("training experience must be one of: Beginner, Intermediate, Advanced")
	ErrInvalidTime       = errors.New("training time must be one of: Morning, Evening")
	ErrInvalidEmail      = errors.New("email must contain '@'")
)

// Request is a free-trial sign-up.
type Request struct {
	ID           string
	Goal         string
	Name         string
	Phone        string
	Email        string // optional; confirmation is sent when present
	Experience   string
	TrainingTime string
	RequestedAt  time.Time
}

// Validate checks if the Request has valid data.
// PRE: Request struct is populated
// POST: Returns the first violation in form order, nil if valid
func (r *Request) Validate() error {
	if r.Goal == "" {
		return ErrMissingGoal
	}
	if _, ok := GoalByID(r.Goal); !ok {
		return ErrInvalidGoal
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if len(r.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if strings.TrimSpace(r.Phone) == "" {
		return ErrEmptyPhone
	}
	if len(r.Phone) > MaxPhoneLength {
		return ErrPhoneTooLong
	}
	if !oneOf(ExperienceLevels, r.Experience) {
		return ErrInvalidExperience
	}
	if !oneOf(TrainingTimes, r.TrainingTime) {
		return ErrInvalidTime
	}
	if r.Email != "" && (len(r.Email) > MaxEmailLength || !strings.Contains(r.Email, "@")) {
		return ErrInvalidEmail
	}
	return nil
}

// GoalByID looks up a goal card.
func GoalByID(id string) (GoalOption, bool) {
	for _, g := range Goals {
		if g.ID == id {
			return g, true
		}
	}
	return GoalOption{}, false
}

// GoalTitle returns the display title of the request's goal, or the raw ID.
func (r *Request) GoalTitle() string {
	if g, ok := GoalByID(r.Goal); ok {
		return g.Title
	}
	return r.Goal
}

func oneOf(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
