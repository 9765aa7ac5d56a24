package model

// CalculationRequest carries one form submission. Numeric fields are pointers so
// a missing value can be told apart from zero.
type CalculationRequest struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Age              *int   `json:"age"`
	DrivingYears     *int   `json:"driving_years"`
	AccidentsAtFault *int   `json:"accidents_at_fault"`
	Usage            *int   `json:"usage"`
}
