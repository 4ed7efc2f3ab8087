package laction

// ReqResult of a request process
type ReqResult struct {
	Data interface{}
	Err  error
	// extra data to be used by some errors like custom messages
	ErrData interface{}
}

// Request is used to interact with the LAction processor.
type Request struct {
	action string
	id     string
	// request params
	params interface{}
	// channel to read the request result from
	resC chan *ReqResult
}

// ReqCreateAction is for create an action.
type ReqCreateAction struct {
	Name    string `json:"name"`
	Key     string `json:"key"`
	Version string `json:"version"`
}

// ReqActionName is for actions addressing an action by name.
type ReqActionName struct {
	Name string
}

// ReqInvokeAction is for invoke an action.
type ReqInvokeAction struct {
	Name string
	// generated if empty
	ActivationID string
	Payload      map[string]interface{}
}

// NewReq returns a new Request to interact with the LAction Processor.
func NewReq(action, reqID string, params interface{}) Request {
	return Request{
		action: action,
		id:     reqID,
		params: params,
		resC:   make(chan *ReqResult),
	}
}

// PushReq pushes a Request to the LAction Processor.
func PushReq(pC chan Request, action, reqID string, params interface{}) *ReqResult {

	rq := NewReq(action, reqID, params)
	pC <- rq
	return <-rq.resC
}
