package signup

import (
	"errors"
	"strings"

	"ironcore/internal/domain/user"
)

// Limits for the join form.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
	MinAge            = 13
	MaxAge            = 100
	MinWeightKg       = 30
	MaxWeightKg       = 250
)

// Steps of the join form, in display order.
const (
	StepAccount = 1
	StepGoals   = 2
	StepProfile = 3
)

// StepLabels names each step for the stepper bar.
var StepLabels = []string{"Account", "Goals", "Profile"}

// Goal IDs posted by the goal chips.
const (
	GoalStrength    = "strength"
	GoalFatLoss     = "fat-loss"
	GoalEndurance   = "endurance"
	GoalFlexibility = "flexibility"
	GoalMuscle      = "muscle"
	GoalWellness    = "wellness"
)

// Level IDs posted by the level chips.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelAthlete      = "athlete"
)

// Option is one selectable chip.
type Option struct {
	ID    string
	Label string
}

// Goals and Levels list the chips in display order.
var (
	Goals = []Option{
		{GoalStrength, "Strength"},
		{GoalFatLoss, "Fat Loss"},
		{GoalEndurance, "Endurance"},
		{GoalFlexibility, "Flexibility"},
		{GoalMuscle, "Build Muscle"},
		{GoalWellness, "Wellness"},
	}
	Levels = []Option{
		{LevelBeginner, "Beginner"},
		{LevelIntermediate, "Intermediate"},
		{LevelAdvanced, "Advanced"},
		{LevelAthlete, "Athlete"},
	}
)

// Domain errors
var (
	ErrEmptyName        = errors.New("full name is required")
	ErrNameTooLong      = errors.New("full name cannot exceed 100 characters")
	ErrInvalidEmail     = errors.New("enter a valid email address")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong  = errors.New("password cannot exceed 72 characters")
	ErrEmptyPassword    = errors.New("password is required")
	ErrNoGoals          = errors.New("pick at least one goal")
	ErrInvalidGoal      = errors.New("unknown goal")
	ErrInvalidLevel     = errors.New("select your training level")
	ErrAgeOutOfRange    = errors.New("age must be between 13 and 100")
	ErrWeightOutOfRange = errors.New("weight must be between 30 and 250 kg")
)

var stepOfErr = map[error]int{
	ErrEmptyName:        StepAccount,
	ErrNameTooLong:      StepAccount,
	ErrInvalidEmail:     StepAccount,
	ErrPasswordTooShort: StepAccount,
	ErrPasswordTooLong:  StepAccount,
	ErrEmptyPassword:    StepAccount,
	ErrNoGoals:          StepGoals,
	ErrInvalidGoal:      StepGoals,
	ErrInvalidLevel:     StepProfile,
	ErrAgeOutOfRange:    StepProfile,
	ErrWeightOutOfRange: StepProfile,
}

// StepOf returns the form step an error belongs to, or 0 if it is not a join form error.
func StepOf(err error) int {
	for target, step := range stepOfErr {
		if errors.Is(err, target) {
			return step
		}
	}
	return 0
}

// Registration is a completed join form. Age and WeightKg are optional (0 = not given).
type Registration struct {
	Name     string
	Email    string
	Password string
	Goals    []string
	Level    string
	Age      int
	WeightKg float64
}

// Validate checks every step in order.
// PRE: Registration struct is populated
// POST: Returns the first violation in form order, nil if valid
func (r *Registration) Validate() error {
	if err := r.ValidateAccount(); err != nil {
		return err
	}
	if err := r.ValidateGoals(); err != nil {
		return err
	}
	return r.ValidateProfile()
}

// ValidateAccount checks step 1.
func (r *Registration) ValidateAccount() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if len(r.Name) > user.MaxNameLength {
		return ErrNameTooLong
	}
	if !validEmail(r.Email) {
		return ErrInvalidEmail
	}
	if len(r.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(r.Password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

// ValidateGoals checks step 2.
func (r *Registration) ValidateGoals() error {
	if len(r.Goals) == 0 {
		return ErrNoGoals
	}
	for _, g := range r.Goals {
		if !hasOption(Goals, g) {
			return ErrInvalidGoal
		}
	}
	return nil
}

// ValidateProfile checks step 3.
func (r *Registration) ValidateProfile() error {
	if !hasOption(Levels, r.Level) {
		return ErrInvalidLevel
	}
	if r.Age != 0 && (r.Age < MinAge || r.Age > MaxAge) {
		return ErrAgeOutOfRange
	}
	if r.WeightKg != 0 && (r.WeightKg < MinWeightKg || r.WeightKg > MaxWeightKg) {
		return ErrWeightOutOfRange
	}
	return nil
}

// HasGoal reports whether id was picked. Used to re-check chips after a failed submit.
func (r *Registration) HasGoal(id string) bool {
	for _, g := range r.Goals {
		if g == id {
			return true
		}
	}
	return false
}

// GoalLabels returns the picked goals as display labels.
func (r *Registration) GoalLabels() []string {
	out := make([]string, 0, len(r.Goals))
	for _, g := range r.Goals {
		if o, ok := optionByID(Goals, g); ok {
			out = append(out, o.Label)
		}
	}
	return out
}

// LevelLabel returns the display label for the picked level.
func (r *Registration) LevelLabel() string {
	o, _ := optionByID(Levels, r.Level)
	return o.Label
}

// Login is the member sign-in form.
type Login struct {
	Email    string
	Password string
}

// Validate checks the sign-in fields.
func (l *Login) Validate() error {
	if !validEmail(l.Email) {
		return ErrInvalidEmail
	}
	if l.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func validEmail(e string) bool {
	e = strings.TrimSpace(e)
	at := strings.Index(e, "@")
	return at > 0 && at < len(e)-1 && len(e) <= user.MaxEmailLength
}

func hasOption(opts []Option, id string) bool {
	_, ok := optionByID(opts, id)
	return ok
}

func optionByID(opts []Option, id string) (Option, bool) {
	for _, o := range opts {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}
