package response

// Envelope is the uniform JSON wrapper returned by the API:
// {success, data|message} plus an optional count on list endpoints.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   int         `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Data wraps a payload in a successful envelope.
func Data(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// List wraps a collection payload with its length.
func List(count int, data interface{}) Envelope {
	return Envelope{Success: true, Count: count, Data: data}
}

// Message wraps a human-readable success message.
func Message(msg string) Envelope {
	return Envelope{Success: true, Message: msg}
}

// Error wraps a failure message.
func Error(msg string) Envelope {
	return Envelope{Success: false, Message: msg}
}
