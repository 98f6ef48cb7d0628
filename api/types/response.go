package types

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
