package dto

// Response is the envelope of every API response
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *Meta      `json:"meta,omitempty"`
}

// ErrorInfo describes a failed request
type ErrorInfo struct {
	Code      string             `json:"code"`
	Message   string             `json:"message"`
	RequestID string             `json:"request_id,omitempty"`
	Details   []ValidationDetail `json:"details,omitempty"`
}

// ValidationDetail is a single invalid field
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Meta is the pagination of a list response
type Meta struct {
	Count  int64 `json:"count"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

// DeleteResponse acknowledges a delete, soft delete or restore
type DeleteResponse struct {
	IDs     []string `json:"ids"`
	Object  string   `json:"object"`
	Deleted bool     `json:"deleted"`
	// LinkableKeys holds the linkable keys of the touched records, when requested
	LinkableKeys map[string][]string `json:"linkable_keys,omitempty"`
}

// NewSuccessResponse wraps data in a success envelope
func NewSuccessResponse(data any) Response {
	return Response{Success: true, Data: data}
}

// NewListResponse wraps a page of records and its pagination
func NewListResponse(data any, count int64, offset, limit int) Response {
	return Response{
		Success: true,
		Data:    data,
		Meta:    &Meta{Count: count, Offset: offset, Limit: limit},
	}
}

// NewErrorResponse creates an error envelope
func NewErrorResponse(code, message, requestID string) Response {
	return Response{
		Error: &ErrorInfo{Code: code, Message: message, RequestID: requestID},
	}
}

// NewValidationErrorResponse creates an error envelope listing invalid fields
func NewValidationErrorResponse(message, requestID string, details []ValidationDetail) Response {
	resp := NewErrorResponse(ErrCodeValidation, message, requestID)
	resp.Error.Details = details
	return resp
}
