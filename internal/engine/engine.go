package engine

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"bonus-malus/internal/bonusmalus"
	"bonus-malus/internal/client"
	"bonus-malus/internal/model"
	"bonus-malus/internal/validation"
)

func Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	var messages []model.CalculationMessage
	outcome := model.OutcomeSuccess

	c, err := buildClient(req)
	if err != nil {
		messages = append(messages, criticalMessage(len(messages), err))
		outcome = model.OutcomeFailure
	}

	var result model.CalculationResult
	if c != nil {
		score := c.Score()
		switch score {
		case bonusmalus.MaxScore:
			messages = append(messages, model.CalculationMessage{
				ID:      len(messages),
				Level:   model.LevelWarning,
				Code:    "MAXIMUM_MALUS_REACHED",
				Message: "Score is capped at the maximum malus",
			})
		case bonusmalus.MinScore:
			messages = append(messages, model.CalculationMessage{
				ID:      len(messages),
				Level:   model.LevelWarning,
				Code:    "MINIMUM_BONUS_REACHED",
				Message: "Score is at the minimum bonus",
			})
		}
		result.Client = toView(c)
		result.BonusMalus = &score
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if messages == nil {
		messages = []model.CalculationMessage{}
	}
	result.Messages = messages

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: result,
	}
}

// buildClient mirrors the form flow: score input first, then the client that owns it.
func buildClient(req *model.CalculationRequest) (*client.Client, error) {
	years, err := required(req.DrivingYears, "driving_years", bonusmalus.CodeInvalidDrivingYears)
	if err != nil {
		return nil, err
	}
	accidents, err := required(req.AccidentsAtFault, "accidents_at_fault", bonusmalus.CodeInvalidAccidentsAtFault)
	if err != nil {
		return nil, err
	}
	usage, err := required(req.Usage, "usage", bonusmalus.CodeInvalidUsage)
	if err != nil {
		return nil, err
	}
	in, err := bonusmalus.NewScoreInput(years, accidents, bonusmalus.Usage(usage))
	if err != nil {
		return nil, err
	}

	age, err := required(req.Age, "age", client.CodeInvalidAge)
	if err != nil {
		return nil, err
	}
	return client.New(req.FirstName, req.LastName, age, in)
}

func required(v *int, field, code string) (int, error) {
	if v == nil {
		return 0, validation.Field(field, code, "must be a number")
	}
	return *v, nil
}

func criticalMessage(id int, err error) model.CalculationMessage {
	msg := model.CalculationMessage{
		ID:      id,
		Level:   model.LevelCritical,
		Code:    validation.CodeOf(err),
		Message: err.Error(),
	}
	var fe *validation.InvalidFieldError
	if errors.As(err, &fe) {
		msg.Field = fe.Field
		msg.Message = fe.Reason
	}
	if msg.Code == "" {
		msg.Code = "CALCULATION_FAILED"
	}
	return msg
}

func toView(c *client.Client) *model.ClientView {
	in := c.ScoreInput()
	return &model.ClientView{
		FirstName:  c.FirstName(),
		LastName:   c.LastName(),
		Age:        c.Age(),
		ClientType: string(c.Kind()),
		ScoreInput: model.ScoreInputView{
			DrivingYears:     in.DrivingYears(),
			AccidentsAtFault: in.AccidentsAtFault(),
			Usage:            int(in.Usage()),
			UsageClass:       in.Usage().String(),
		},
	}
}
