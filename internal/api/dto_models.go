package api

// ErrorResponse is the generic error body returned by every endpoint.
// Code is a stable machine-readable identifier; Message is user-facing.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse acknowledges a write that produced no resource id.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CreatedResponse acknowledges a write and carries the new resource id
// under a caller-chosen key, e.g. {"success": true, "taskId": "..."}.
func CreatedResponse(idKey, id string) map[string]interface{} {
	return map[string]interface{}{
		"success": true,
		idKey:     id,
	}
}
