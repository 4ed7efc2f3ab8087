package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/cprates/lgreet/common"
	"github.com/cprates/lgreet/pkg/laction"
	"github.com/cprates/lgreet/pkg/params"
)

// defaultNamespace addresses the namespace of the caller.
const defaultNamespace = "_"

// InstallActions installs the actions management API.
func InstallActions(router *mux.Router, api *laction.API) {

	log.Println("Installing actions API")

	root := "/api/v1/namespaces/{namespace}/actions"
	sub := router.PathPrefix(root).Subrouter()

	sub.HandleFunc("", commonDispatcher(listActions(api))).Methods(http.MethodGet)
	sub.HandleFunc("/", commonDispatcher(listActions(api))).Methods(http.MethodGet)
	sub.HandleFunc("/{name:.+}", commonDispatcher(getAction(api))).Methods(http.MethodGet)
	sub.HandleFunc("/{name:.+}", commonDispatcher(createAction(api))).Methods(http.MethodPut)
	sub.HandleFunc("/{name:.+}", commonDispatcher(deleteAction(api))).Methods(http.MethodDelete)
	sub.HandleFunc("/{name:.+}", commonDispatcher(invokeAction(api))).Methods(http.MethodPost)
}

func checkNamespace(api *laction.API, vars map[string]string, reqID string) *common.Result {

	ns := vars["namespace"]
	if ns == defaultNamespace || ns == api.Namespace() {
		return nil
	}

	res := common.ErrNotFoundRes("namespace not found: "+ns, reqID)
	return &res
}

func listActions(api *laction.API) dispatchFunc {
	return func(
		ctx context.Context,
		reqID string,
		r *http.Request,
		body map[string]interface{},
		vars map[string]string,
	) common.Result {
		if res := checkNamespace(api, vars, reqID); res != nil {
			return *res
		}
		return api.ListActions(ctx)
	}
}

func getAction(api *laction.API) dispatchFunc {
	return func(
		ctx context.Context,
		reqID string,
		r *http.Request,
		body map[string]interface{},
		vars map[string]string,
	) common.Result {
		if res := checkNamespace(api, vars, reqID); res != nil {
			return *res
		}
		return api.GetAction(ctx, vars["name"])
	}
}

func createAction(api *laction.API) dispatchFunc {
	return func(
		ctx context.Context,
		reqID string,
		r *http.Request,
		body map[string]interface{},
		vars map[string]string,
	) common.Result {
		if res := checkNamespace(api, vars, reqID); res != nil {
			return *res
		}

		log.Debugf("Creating action %q, %s", vars["name"], reqID)

		return api.CreateAction(
			ctx,
			laction.ReqCreateAction{
				Name:    vars["name"],
				Key:     params.ValString("key", "", body),
				Version: params.ValString("version", "", body),
			},
		)
	}
}

func deleteAction(api *laction.API) dispatchFunc {
	return func(
		ctx context.Context,
		reqID string,
		r *http.Request,
		body map[string]interface{},
		vars map[string]string,
	) common.Result {
		if res := checkNamespace(api, vars, reqID); res != nil {
			return *res
		}
		return api.DeleteAction(ctx, vars["name"])
	}
}

// invokeAction runs an action with the request body as its input. With result=true only
// the action's result is returned.
func invokeAction(api *laction.API) dispatchFunc {
	return func(
		ctx context.Context,
		reqID string,
		r *http.Request,
		body map[string]interface{},
		vars map[string]string,
	) common.Result {
		if res := checkNamespace(api, vars, reqID); res != nil {
			return *res
		}

		query := map[string]interface{}{}
		for k, v := range r.URL.Query() {
			query[k] = v[0]
		}
		resultOnly, err := params.ValBool("result", false, query)
		if err != nil {
			return common.ErrInvalidParameterValueRes(err.Error(), reqID)
		}

		return api.InvokeAction(
			ctx,
			laction.ReqInvokeAction{Name: vars["name"], Payload: body},
			resultOnly,
		)
	}
}
