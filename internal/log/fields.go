package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldPath        = "path"
	FieldBackend     = "backend"
	FieldMonth       = "month"
	FieldYear        = "year"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldAmountCents = "amount_cents"
	FieldBudgetCents = "budget_cents"
	FieldSpentCents  = "spent_cents"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentCLI     = "cli"
	ComponentTracker = "tracker"
	ComponentStore   = "store"
	ComponentBackend = "backend"
	ComponentAlert   = "alert"
	ComponentReport  = "report"
	ComponentChart   = "chart"
)
