package types

import "fmt"

// CustomError is a typed handler failure carried to the global Fiber error
// handler, which renders it as the {message} body the browser client expects.
// Code is the HTTP status; Type names the failing operation for logs.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}
