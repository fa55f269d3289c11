package consts

const (
	// Default low-balance alert threshold (currency units).
	DefaultLowThreshold = "1000.00"

	// Fallback lookback window when no transaction events exist yet.
	DefaultLookbackDays = 90

	// Cron worker defaults
	DefaultWorkerNumber  = 1
	DefaultIntervalInSec = 60

	// Time budget for one recalculation run.
	DefaultRecalcTimeoutInSec = 120

	// Bounded retry for side-effect-free reads.
	DefaultReadRetryAttempts = 3
	DefaultReadRetryBaseInMs = 100

	// Postgres advisory lock key guarding recalculation, shared by every
	// instance pointed at the same database.
	RecalculationLockKey int64 = 815042

	// Default chart windows
	DefaultDailyCashFlowDays    = 30
	DefaultMonthlyCashFlowCount = 12
)
