package model

// ClientView is the validated client as returned to callers.
type ClientView struct {
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Age        int            `json:"age"`
	ClientType string         `json:"client_type"`
	ScoreInput ScoreInputView `json:"score_input"`
}

type ScoreInputView struct {
	DrivingYears     int    `json:"driving_years"`
	AccidentsAtFault int    `json:"accidents_at_fault"`
	Usage            int    `json:"usage"`
	UsageClass       string `json:"usage_class"`
}
