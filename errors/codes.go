package errors

// ErrorCode identifies an error class in API responses
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0
	ErrorCode_HTTP_OK     ErrorCode = 1

	// General
	ErrorCode_INTERNAL          ErrorCode = 100
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 101
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 102
	ErrorCode_VALIDATION_FAILED ErrorCode = 103

	// Meetings and tasks
	ErrorCode_TRANSCRIPT_REQUIRED    ErrorCode = 200
	ErrorCode_MEETING_NOT_FOUND      ErrorCode = 201
	ErrorCode_TASK_NOT_FOUND         ErrorCode = 202
	ErrorCode_SEARCH_QUERY_REQUIRED  ErrorCode = 203
	ErrorCode_INVALID_CALENDAR_RANGE ErrorCode = 204

	// Storage
	ErrorCode_STORE_UNAVAILABLE ErrorCode = 300
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:            "UNSPECIFIED",
	ErrorCode_HTTP_OK:                "HTTP_OK",
	ErrorCode_INTERNAL:               "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:       "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:        "INVALID_PAYLOAD",
	ErrorCode_VALIDATION_FAILED:      "VALIDATION_FAILED",
	ErrorCode_TRANSCRIPT_REQUIRED:    "TRANSCRIPT_REQUIRED",
	ErrorCode_MEETING_NOT_FOUND:      "MEETING_NOT_FOUND",
	ErrorCode_TASK_NOT_FOUND:         "TASK_NOT_FOUND",
	ErrorCode_SEARCH_QUERY_REQUIRED:  "SEARCH_QUERY_REQUIRED",
	ErrorCode_INVALID_CALENDAR_RANGE: "INVALID_CALENDAR_RANGE",
	ErrorCode_STORE_UNAVAILABLE:      "STORE_UNAVAILABLE",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText renders the code by name in JSON bodies
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
