// Package client models the insured person a bonus-malus score is issued for.
package client

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"bonus-malus/internal/bonusmalus"
	"bonus-malus/internal/validation"
)

const (
	MaxFirstNameLength = 20
	MaxLastNameLength  = 50
	MinAge             = 18
	MaxAge             = 80

	CodeInvalidFirstName = "INVALID_FIRST_NAME"
	CodeInvalidLastName  = "INVALID_LAST_NAME"
	CodeInvalidAge       = "INVALID_AGE"
)

// Kind distinguishes private from professional clients. Both behave the same today.
type Kind string

const (
	KindPrivate      Kind = "PRIVATE"
	KindProfessional Kind = "PROFESSIONAL"
)

// KindFor returns the client kind selected by a usage class.
func KindFor(u bonusmalus.Usage) Kind {
	if u == bonusmalus.UsagePrivate {
		return KindPrivate
	}
	return KindProfessional
}

// Client owns its ScoreInput exclusively: it keeps a private copy and hands out copies.
type Client struct {
	firstName  string
	lastName   string
	age        int
	scoreInput *bonusmalus.ScoreInput
}

func New(firstName, lastName string, age int, scoreInput *bonusmalus.ScoreInput) (*Client, error) {
	if err := ValidateFirstName(firstName); err != nil {
		return nil, err
	}
	if err := ValidateLastName(lastName); err != nil {
		return nil, err
	}
	if err := ValidateAge(age); err != nil {
		return nil, err
	}
	in, err := bonusmalus.Validate(scoreInput)
	if err != nil {
		return nil, err
	}
	return &Client{
		firstName:  firstName,
		lastName:   lastName,
		age:        age,
		scoreInput: in.Clone(),
	}, nil
}

func (c *Client) FirstName() string { return c.firstName }
func (c *Client) LastName() string  { return c.lastName }
func (c *Client) Age() int          { return c.age }

// ScoreInput returns a copy; changes to it do not affect the client.
func (c *Client) ScoreInput() *bonusmalus.ScoreInput { return c.scoreInput.Clone() }

// Kind is derived from the owned usage class so it cannot drift from it.
func (c *Client) Kind() Kind { return KindFor(c.scoreInput.Usage()) }

// Score is the client's bonus-malus.
func (c *Client) Score() int { return bonusmalus.Calculate(c.scoreInput) }

func (c *Client) SetFirstName(firstName string) error {
	if err := ValidateFirstName(firstName); err != nil {
		return err
	}
	c.firstName = firstName
	return nil
}

func (c *Client) SetLastName(lastName string) error {
	if err := ValidateLastName(lastName); err != nil {
		return err
	}
	c.lastName = lastName
	return nil
}

func (c *Client) SetAge(age int) error {
	if err := ValidateAge(age); err != nil {
		return err
	}
	c.age = age
	return nil
}

func (c *Client) SetScoreInput(scoreInput *bonusmalus.ScoreInput) error {
	in, err := bonusmalus.Validate(scoreInput)
	if err != nil {
		return err
	}
	c.scoreInput = in.Clone()
	return nil
}

func ValidateFirstName(name string) error {
	return validateName(name, "first_name", CodeInvalidFirstName, MaxFirstNameLength)
}

func ValidateLastName(name string) error {
	return validateName(name, "last_name", CodeInvalidLastName, MaxLastNameLength)
}

func validateName(name, field, code string, maxLen int) error {
	if strings.TrimSpace(name) == "" || utf8.RuneCountInString(name) > maxLen {
		return validation.Field(field, code,
			fmt.Sprintf("must be a non-empty string with a maximum size of %d characters", maxLen))
	}
	return nil
}

func ValidateAge(age int) error {
	if age < MinAge || age > MaxAge {
		return validation.Field("age", CodeInvalidAge,
			fmt.Sprintf("age must be an integer between %d and %d", MinAge, MaxAge))
	}
	return nil
}
