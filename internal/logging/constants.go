package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps log output easy to filter.
const (
	FieldComponent  = "component"
	FieldCategory   = "category"
	FieldDirection  = "direction"
	FieldAmount     = "amount"
	FieldDate       = "date"
	FieldKeyword    = "keyword"
	FieldPattern    = "pattern"
	FieldConfidence = "confidence"
	FieldCount      = "count"
	FieldWindow     = "window"
	FieldQuery      = "query"
	FieldMerchant   = "merchant"
	FieldFile       = "file_path"
	FieldError      = "error"
)
