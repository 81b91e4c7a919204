package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// DebugResult and DebugError are the bodies of the debug reset/seed routes.
type DebugResult struct {
	Success bool `json:"success"`
}

type DebugError struct {
	Error string `json:"error"`
}
