package constants

// Centralized constants for env keys, routes and API messages.
const (
	// Environment variable keys
	EnvConfigPath = "SIMCORE_CONFIG"
	EnvDBPath     = "SIMCORE_DB"
)

// Routes used by the backend router
const (
	RouteAPIPrefix = "/api"
	RouteSimulate  = "/simulate"
	RouteRuns      = "/runs"
	RouteRunByUUID = "/runs/:runID"
	RouteVersion   = "/version"
	RouteHealthz   = "/healthz"
)

// Common JSON response keys
const (
	JSONKeyError  = "error"
	JSONKeyStatus = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest    = "Invalid request"
	ErrRunNotFound       = "Run not found"
	ErrFailedFetchRuns   = "Failed to fetch runs"
	ErrFailedRunBattles  = "Failed to run battles"
	ErrEnemyPoolRequired = "At least one enemy fleet is required"
)

// Logging field names
const (
	LogFieldRunID = "run_id"
	LogFieldCount = "count"
	LogFieldSeed  = "seed"
	LogFieldAddr  = "addr"
)
