package transport

// Envelope wraps every JSON response. Success responses carry Data; error
// responses carry a machine-readable Code and a human-readable Error.
type Envelope struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func NewSuccess(data interface{}) Envelope {
	return Envelope{Status: "success", Data: data}
}

func NewError(code, message string) Envelope {
	return Envelope{Status: "error", Code: code, Error: message}
}
