package bonusmalus

import (
	"fmt"

	"bonus-malus/internal/validation"
)

// Usage is the usage class of the insured vehicle.
type Usage int

const (
	UsagePrivate      Usage = 0
	UsageProfessional Usage = 1
)

func (u Usage) String() string {
	switch u {
	case UsagePrivate:
		return "PRIVATE"
	case UsageProfessional:
		return "PROFESSIONAL"
	default:
		return fmt.Sprintf("Usage(%d)", int(u))
	}
}

const (
	CodeInvalidDrivingYears     = "INVALID_DRIVING_YEARS"
	CodeInvalidAccidentsAtFault = "INVALID_ACCIDENTS_AT_FAULT"
	CodeInvalidUsage            = "INVALID_USAGE"
	CodeInvalidScoreInput       = "INVALID_SCORE_INPUT"

	MaxAccidentsAtFault = 2
)

// ScoreInput is the driving history a score is computed from.
// Fields are only reachable through accessors so every write is validated.
type ScoreInput struct {
	drivingYears     int
	accidentsAtFault int
	usage            Usage
}

// NewScoreInput validates all three fields; the first failure aborts construction.
func NewScoreInput(drivingYears, accidentsAtFault int, usage Usage) (*ScoreInput, error) {
	if err := ValidateDrivingYears(drivingYears); err != nil {
		return nil, err
	}
	if err := ValidateAccidentsAtFault(accidentsAtFault); err != nil {
		return nil, err
	}
	if err := ValidateUsage(usage); err != nil {
		return nil, err
	}
	return &ScoreInput{
		drivingYears:     drivingYears,
		accidentsAtFault: accidentsAtFault,
		usage:            usage,
	}, nil
}

func (s *ScoreInput) DrivingYears() int     { return s.drivingYears }
func (s *ScoreInput) AccidentsAtFault() int { return s.accidentsAtFault }
func (s *ScoreInput) Usage() Usage          { return s.usage }

func (s *ScoreInput) SetDrivingYears(n int) error {
	if err := ValidateDrivingYears(n); err != nil {
		return err
	}
	s.drivingYears = n
	return nil
}

func (s *ScoreInput) SetAccidentsAtFault(n int) error {
	if err := ValidateAccidentsAtFault(n); err != nil {
		return err
	}
	s.accidentsAtFault = n
	return nil
}

func (s *ScoreInput) SetUsage(u Usage) error {
	if err := ValidateUsage(u); err != nil {
		return err
	}
	s.usage = u
	return nil
}

// Clone returns an independent copy.
func (s *ScoreInput) Clone() *ScoreInput {
	c := *s
	return &c
}

// BonusMalus computes the score for this input.
func (s *ScoreInput) BonusMalus() int {
	return Calculate(s)
}

func ValidateDrivingYears(n int) error {
	if n < 0 {
		return validation.Field("driving_years", CodeInvalidDrivingYears,
			"amount of driving years must be a non-negative number")
	}
	return nil
}

func ValidateAccidentsAtFault(n int) error {
	if n < 0 || n > MaxAccidentsAtFault {
		return validation.Field("accidents_at_fault", CodeInvalidAccidentsAtFault,
			fmt.Sprintf("amount of accidents at fault must be between 0 and %d", MaxAccidentsAtFault))
	}
	return nil
}

func ValidateUsage(u Usage) error {
	if u != UsagePrivate && u != UsageProfessional {
		return validation.Field("usage", CodeInvalidUsage, "usage must be 0 (private) or 1 (professional)")
	}
	return nil
}

// Validate is the structural check run wherever a ScoreInput changes owner.
// A nil input is an invalid object; field values are re-checked so a zero-value
// or hand-built ScoreInput cannot slip past construction rules.
func Validate(in *ScoreInput) (*ScoreInput, error) {
	if in == nil {
		return nil, validation.Object("score_input", CodeInvalidScoreInput, "invalid score input object")
	}
	if err := ValidateDrivingYears(in.drivingYears); err != nil {
		return nil, err
	}
	if err := ValidateAccidentsAtFault(in.accidentsAtFault); err != nil {
		return nil, err
	}
	if err := ValidateUsage(in.usage); err != nil {
		return nil, err
	}
	return in, nil
}
