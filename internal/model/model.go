package model

// Environment represents the runtime environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// Scope identifies who a request acts on behalf of.
// Every tool execution is performed for exactly one user and,
// when known, one wedding.
type Scope struct {
	UserID    string
	WeddingID string
}

// PlanningStage is the coarse phase of wedding planning a couple is in.
// Used only to pick follow-up suggestions, never to gate tools.
type PlanningStage string

const (
	StageJustEngaged  PlanningStage = "just_engaged"
	StageBooking      PlanningStage = "booking"
	StageFinalizing   PlanningStage = "finalizing"
	StageWeddingMonth PlanningStage = "wedding_month"
)
