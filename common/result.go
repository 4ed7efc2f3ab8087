package common

import (
	"net/http"

	"github.com/cprates/lgreet/pkg/lerr"
)

// ReqIDKey is the context key under which the request id is stored.
type ReqIDKey struct{}

// Result is the result of a call to a service API method.
type Result struct {
	// Maps directly to HTTP status codes
	Status int
	ReqID  string
	Result []byte // JSON
	Err    *lerr.Result
}

func errRes(status int, msg, reqID string) Result {
	return Result{
		Status: status,
		ReqID:  reqID,
		Err: &lerr.Result{
			Message: msg,
			Code:    reqID,
		},
	}
}

// ErrInvalidParameterValueRes generates an invalid parameter error.
func ErrInvalidParameterValueRes(msg, reqID string) Result {
	return errRes(http.StatusBadRequest, msg, reqID)
}

// ErrForbiddenRes is for requests the runtime refuses in its current state, like a second
// initialization.
func ErrForbiddenRes(msg, reqID string) Result {
	return errRes(http.StatusForbidden, msg, reqID)
}

// ErrNotFoundRes generates a not found error.
func ErrNotFoundRes(msg, reqID string) Result {
	return errRes(http.StatusNotFound, msg, reqID)
}

// ErrConflictRes generates a conflict error for resources that already exist.
func ErrConflictRes(msg, reqID string) Result {
	return errRes(http.StatusConflict, msg, reqID)
}

// ErrInternalErrorRes is for make our life easier when generating internal error results.
func ErrInternalErrorRes(msg, reqID string) Result {
	return errRes(http.StatusInternalServerError, msg, reqID)
}

// SuccessRes is for make our life easier when generating a success result.
func SuccessRes(res []byte, reqID string) Result {
	return Result{
		Status: http.StatusOK,
		ReqID:  reqID,
		Result: res,
	}
}

// CreatedRes is a success result for a newly created resource.
func CreatedRes(res []byte, reqID string) Result {
	return Result{
		Status: http.StatusCreated,
		ReqID:  reqID,
		Result: res,
	}
}
