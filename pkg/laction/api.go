package laction

import (
	"context"
	"encoding/json"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/cprates/lgreet/common"
)

// API is the receiver for all LAction API methods.
type API struct {
	controller *LAction
	pushC      chan Request
	stopC      chan struct{}
}

// Launch creates and launches a LAction instance.
func Launch(namespace string, out io.Writer, logger *log.Entry) *API {

	ctl := New(namespace, out, logger)
	stopC := make(chan struct{})
	go ctl.Process(stopC)

	return &API{
		controller: ctl,
		pushC:      ctl.PushC,
		stopC:      stopC,
	}
}

// Shutdown stops the LAction processor. The API must not be used afterwards.
func (a API) Shutdown() {
	close(a.stopC)
}

// Namespace returns the namespace actions are created in.
func (a API) Namespace() string {
	return a.controller.Namespace
}

func reqID(ctx context.Context) string {
	id, _ := ctx.Value(common.ReqIDKey{}).(string)
	return id
}

// errRes maps controller errors to results.
func errRes(res *ReqResult, reqID string) common.Result {

	msg, ok := res.ErrData.(string)
	if !ok {
		msg = res.Err.Error()
	}

	switch res.Err {
	case ErrActionNotFound:
		return common.ErrNotFoundRes(msg, reqID)
	case ErrActionAlreadyExist:
		return common.ErrConflictRes(msg, reqID)
	case ErrInvalidKey, ErrEmptyName:
		return common.ErrInvalidParameterValueRes(msg, reqID)
	default:
		return common.ErrInternalErrorRes(msg, reqID)
	}
}

func jsonRes(data interface{}, reqID string, okF func([]byte, string) common.Result) common.Result {

	buf, err := json.Marshal(data)
	if err != nil {
		return common.ErrInternalErrorRes(err.Error(), reqID)
	}

	return okF(buf, reqID)
}

// CreateAction creates a new action running the greeting generator variant params.Key.
func (a API) CreateAction(ctx context.Context, params ReqCreateAction) common.Result {

	reqID := reqID(ctx)

	res := PushReq(a.pushC, "CreateAction", reqID, params)
	if res.Err != nil {
		return errRes(res, reqID)
	}

	return jsonRes(res.Data, reqID, common.CreatedRes)
}

// GetAction describes an action.
func (a API) GetAction(ctx context.Context, name string) common.Result {

	reqID := reqID(ctx)

	res := PushReq(a.pushC, "GetAction", reqID, ReqActionName{Name: name})
	if res.Err != nil {
		return errRes(res, reqID)
	}

	return jsonRes(res.Data, reqID, common.SuccessRes)
}

// ListActions describes every action, sorted by name.
func (a API) ListActions(ctx context.Context) common.Result {

	reqID := reqID(ctx)

	res := PushReq(a.pushC, "ListActions", reqID, nil)
	if res.Err != nil {
		return errRes(res, reqID)
	}

	return jsonRes(res.Data, reqID, common.SuccessRes)
}

// DeleteAction deletes an action, returning its last description.
func (a API) DeleteAction(ctx context.Context, name string) common.Result {

	reqID := reqID(ctx)

	res := PushReq(a.pushC, "DeleteAction", reqID, ReqActionName{Name: name})
	if res.Err != nil {
		return errRes(res, reqID)
	}

	return jsonRes(res.Data, reqID, common.SuccessRes)
}

// InvokeAction runs an action. If resultOnly is set the body is the action's result,
// otherwise it is the whole Activation.
func (a API) InvokeAction(
	ctx context.Context,
	params ReqInvokeAction,
	resultOnly bool,
) common.Result {

	reqID := reqID(ctx)

	res := PushReq(a.pushC, "InvokeAction", reqID, params)
	if res.Err != nil {
		return errRes(res, reqID)
	}

	activation := res.Data.(Activation)
	if resultOnly {
		return jsonRes(activation.Response.Result, reqID, common.SuccessRes)
	}

	return jsonRes(activation, reqID, common.SuccessRes)
}
