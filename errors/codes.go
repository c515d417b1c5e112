package errors

// ErrorCode identifies an application error category.
type ErrorCode int32

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_HTTP_OK
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_VALIDATION_FAILED
	ErrorCode_FILE_UPLOAD_FAILED
	ErrorCode_AUDIO_PROCESSING_FAILED
	ErrorCode_TRANSCRIPTION_FAILED
	ErrorCode_NLP_PROCESSING_FAILED
	ErrorCode_ANALYSIS_FAILED
	ErrorCode_REQUEST_TIMEOUT
)

var codeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                 "UNKNOWN",
	ErrorCode_HTTP_OK:                 "HTTP_OK",
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:        "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:               "NOT_FOUND",
	ErrorCode_VALIDATION_FAILED:       "VALIDATION_FAILED",
	ErrorCode_FILE_UPLOAD_FAILED:      "FILE_UPLOAD_FAILED",
	ErrorCode_AUDIO_PROCESSING_FAILED: "AUDIO_PROCESSING_FAILED",
	ErrorCode_TRANSCRIPTION_FAILED:    "TRANSCRIPTION_FAILED",
	ErrorCode_NLP_PROCESSING_FAILED:   "NLP_PROCESSING_FAILED",
	ErrorCode_ANALYSIS_FAILED:         "ANALYSIS_FAILED",
	ErrorCode_REQUEST_TIMEOUT:         "REQUEST_TIMEOUT",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
