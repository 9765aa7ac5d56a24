package main

import (
	"bytes"
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bonus-malus/internal/model"
)

func runCLI(t *testing.T, args ...string) (*model.CalculationResponse, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs(args)

	err := root.Execute()

	var resp model.CalculationResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	return &resp, err
}

func TestCalcSuccess(t *testing.T) {
	resp, err := runCLI(t, "calc",
		"--first-name", "Jane", "--last-name", "Doe", "--age", "30",
		"--driving-years", "0", "--accidents", "1", "--usage", "1")

	require.NoError(t, err)
	assert.Equal(t, model.OutcomeSuccess, resp.CalculationMetadata.CalculationOutcome)
	assert.Equal(t, 16, *resp.CalculationResult.BonusMalus)
	assert.Equal(t, "PROFESSIONAL", resp.CalculationResult.Client.ClientType)
}

func TestCalcFailureExitCode(t *testing.T) {
	resp, err := runCLI(t, "calc",
		"--first-name", "Jane", "--last-name", "Doe", "--age", "30",
		"--driving-years=-1")

	var ee *exitErr
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, exitCodeFailure, ee.code)
	assert.Equal(t, model.OutcomeFailure, resp.CalculationMetadata.CalculationOutcome)
	assert.Equal(t, "INVALID_DRIVING_YEARS", resp.CalculationResult.Messages[0].Code)
}
