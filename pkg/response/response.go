package response

type Body struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(status, message string, data interface{}) Body {
	return Body{
		Status:  status,
		Message: message,
		Data:    data,
	}
}

func Error(status, message string, data interface{}) Body {
	return Body{
		Status:  status,
		Message: message,
		Data:    data,
	}
}
