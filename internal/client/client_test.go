package client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bonus-malus/internal/bonusmalus"
	"bonus-malus/internal/validation"
)

func mustScoreInput(t *testing.T, years, accidents int, usage bonusmalus.Usage) *bonusmalus.ScoreInput {
	t.Helper()
	in, err := bonusmalus.NewScoreInput(years, accidents, usage)
	require.NoError(t, err)
	return in
}

func TestNew(t *testing.T) {
	c, err := New("Jane", "Doe", 30, mustScoreInput(t, 5, 0, bonusmalus.UsagePrivate))
	require.NoError(t, err)

	assert.Equal(t, "Jane", c.FirstName())
	assert.Equal(t, "Doe", c.LastName())
	assert.Equal(t, 30, c.Age())
	assert.Equal(t, KindPrivate, c.Kind())
	assert.Equal(t, 9, c.Score())
}

func TestNewRejectsInvalidFields(t *testing.T) {
	valid := mustScoreInput(t, 5, 0, bonusmalus.UsagePrivate)

	cases := []struct {
		name  string
		first string
		last  string
		age   int
		code  string
	}{
		{"empty first name", "", "Doe", 30, CodeInvalidFirstName},
		{"blank first name", "   ", "Doe", 30, CodeInvalidFirstName},
		{"first name too long", strings.Repeat("a", 21), "Doe", 30, CodeInvalidFirstName},
		{"empty last name", "Jane", "", 30, CodeInvalidLastName},
		{"last name too long", "Jane", strings.Repeat("b", 51), 30, CodeInvalidLastName},
		{"too young", "Jane", "Doe", 17, CodeInvalidAge},
		{"too old", "Jane", "Doe", 81, CodeInvalidAge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := New(tc.first, tc.last, tc.age, valid)

			assert.Nil(t, c)
			require.ErrorIs(t, err, validation.ErrInvalidField)
			assert.Equal(t, tc.code, validation.CodeOf(err))
		})
	}
}

func TestNameAndAgeBoundaries(t *testing.T) {
	in := mustScoreInput(t, 0, 0, bonusmalus.UsagePrivate)

	_, err := New(strings.Repeat("a", 20), strings.Repeat("b", 50), 18, in)
	require.NoError(t, err)

	_, err = New("Zoë", "Müller", 80, in)
	require.NoError(t, err)
}

func TestNewRejectsMissingScoreInput(t *testing.T) {
	c, err := New("Jane", "Doe", 30, nil)

	assert.Nil(t, c)
	require.ErrorIs(t, err, validation.ErrInvalidObject)
	assert.Equal(t, bonusmalus.CodeInvalidScoreInput, validation.CodeOf(err))
}

func TestSettersValidate(t *testing.T) {
	c, err := New("Jane", "Doe", 30, mustScoreInput(t, 5, 0, bonusmalus.UsagePrivate))
	require.NoError(t, err)

	require.NoError(t, c.SetFirstName("John"))
	require.NoError(t, c.SetLastName("Smith"))
	require.NoError(t, c.SetAge(45))

	assert.ErrorIs(t, c.SetFirstName(""), validation.ErrInvalidField)
	assert.ErrorIs(t, c.SetLastName(strings.Repeat("x", 60)), validation.ErrInvalidField)
	assert.ErrorIs(t, c.SetAge(12), validation.ErrInvalidField)
	assert.ErrorIs(t, c.SetScoreInput(nil), validation.ErrInvalidObject)

	assert.Equal(t, "John", c.FirstName())
	assert.Equal(t, "Smith", c.LastName())
	assert.Equal(t, 45, c.Age())
	assert.Equal(t, 9, c.Score())
}

func TestSetScoreInputSwitchesKind(t *testing.T) {
	c, err := New("Jane", "Doe", 30, mustScoreInput(t, 5, 0, bonusmalus.UsagePrivate))
	require.NoError(t, err)

	require.NoError(t, c.SetScoreInput(mustScoreInput(t, 0, 1, bonusmalus.UsageProfessional)))

	assert.Equal(t, KindProfessional, c.Kind())
	assert.Equal(t, 16, c.Score())
}

func TestClientOwnsItsScoreInput(t *testing.T) {
	in := mustScoreInput(t, 5, 0, bonusmalus.UsagePrivate)
	c, err := New("Jane", "Doe", 30, in)
	require.NoError(t, err)

	require.NoError(t, in.SetDrivingYears(20))
	assert.Equal(t, 5, c.ScoreInput().DrivingYears())

	out := c.ScoreInput()
	require.NoError(t, out.SetAccidentsAtFault(2))
	assert.Equal(t, 0, c.ScoreInput().AccidentsAtFault())
	assert.Equal(t, 9, c.Score())
}

func TestKindFor(t *testing.T) {
	assert.Equal(t, KindPrivate, KindFor(bonusmalus.UsagePrivate))
	assert.Equal(t, KindProfessional, KindFor(bonusmalus.UsageProfessional))
}
