package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldRunID         = "run_id"
	FieldOperation     = "operation"
	FieldError         = "error"
	FieldSuccess       = "success"
	FieldDuration      = "duration_ms"
	FieldSource        = "source"
	FieldRecordCount   = "record_count"
	FieldRejectedCount = "rejected_count"
	FieldTransactionID = "transaction_id"
	FieldCustomerID    = "customer_id"
	FieldCategory      = "category"
	FieldAmountCents   = "amount_cents"
	FieldSaleDate      = "sale_date"
	FieldSheetsRef     = "sheets_ref"
	FieldQueue         = "queue"
	FieldExchange      = "exchange"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentAnalysis = "analysis"
	ComponentValidate = "validate"
	ComponentStore    = "store"
	ComponentSource   = "source"
	ComponentAMQP     = "amqp"
	ComponentWorker   = "worker"
	ComponentExport   = "export"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpValidate = "validate"
	OpBuild    = "build"
	OpReport   = "report"
	OpPublish  = "publish"
	OpConsume  = "consume"
	OpExport   = "export"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithRunID adds run ID field
func (f LogFields) WithRunID(runID string) LogFields {
	f[FieldRunID] = runID
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithRunCounts adds record and rejection counts
func (f LogFields) WithRunCounts(recordCount, rejectedCount int) LogFields {
	f[FieldRecordCount] = recordCount
	f[FieldRejectedCount] = rejectedCount
	return f
}

// Args flattens the fields into slog key-value arguments.
func (f LogFields) Args() []any {
	args := make([]any, 0, len(f)*2)
	for k, v := range f {
		args = append(args, k, v)
	}
	return args
}
