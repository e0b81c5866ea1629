package domain

// Response is the uniform API envelope. Data is omitted on failures and on
// operations that return nothing.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}
