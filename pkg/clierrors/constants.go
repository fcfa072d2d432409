package clierrors

const (
	MsgInvalidTaskID       = "invalidTaskID"
	MsgInvalidDescription  = "invalidDescription"
	MsgInvalidDeadline     = "invalidDeadline"
	MsgInvalidExportFormat = "invalidExportFormat"
	MsgInvalidInput        = "invalidInput"
	MsgDatabaseError       = "databaseError"
)
