package room

// PayloadIn is a message received from a connected client
type PayloadIn struct {
	// Action is the requested table action: "draw" or "reset"
	Action string `json:"action"`

	// Context is an opaque client token echoed back in the response
	Context string `json:"context"`
}

// Response is a message sent to a connected client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data,omitempty"`
	Context string      `json:"context,omitempty"`
}

func newErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
