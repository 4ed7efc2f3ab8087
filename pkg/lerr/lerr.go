package lerr

import "fmt"

// Result is the body of an error response, shaped the way serverless action runtimes
// report failures.
type Result struct {
	Message string `json:"error"`
	// request or activation id the error relates to
	Code string `json:"code,omitempty"`
}

func (e Result) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("error %s(%s)", e.Code, e.Message)
}
