package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/cprates/lgreet/common"
)

// ReqIDHeader carries the request id back to the caller.
const ReqIDHeader = "X-Request-Id"

type dispatchFunc func(
	ctx context.Context,
	reqID string,
	r *http.Request,
	body map[string]interface{},
	vars map[string]string,
) common.Result

// commonDispatcher returns a function that tags the request with a new id, decodes the JSON
// object in the body and writes the result of dispatcherF.
func commonDispatcher(dispatcherF dispatchFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")

		u, err := uuid.NewRandom()
		if err != nil {
			log.Errorln("Unexpected error", err)
			onInternalErr(w, "")
			return
		}
		reqID := u.String()
		w.Header().Set(ReqIDHeader, reqID)

		log.Debugf("Req %s %q, %s", r.Method, r.RequestURI, reqID)

		raw, err := ioutil.ReadAll(r.Body)
		if err != nil {
			log.Errorln("Failed to read body,", reqID, err)
			onInternalErr(w, reqID)
			return
		}

		body, err := decodeBody(raw)
		if err != nil {
			log.Debugln("Invalid body,", reqID, err)
			onInvalidBody(w, reqID)
			return
		}

		ctx := context.WithValue(r.Context(), common.ReqIDKey{}, reqID)
		res := dispatcherF(ctx, reqID, r, body, mux.Vars(r))
		if res.Err != nil {
			log.Debugln("Failed serving req", reqID, res.Err)
			onLgreetErr(w, res)
			return
		}

		w.WriteHeader(res.Status)
		_, err = w.Write(res.Result)
		if err != nil {
			log.Errorln("Unexpected error, request", reqID, err)
		}
	}
}

// decodeBody decodes a JSON object. An empty body is an empty object.
func decodeBody(raw []byte) (map[string]interface{}, error) {

	body := map[string]interface{}{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return body, nil
	}

	err := json.Unmarshal(raw, &body)
	if err != nil {
		return nil, err
	}
	// literal null
	if body == nil {
		body = map[string]interface{}{}
	}

	return body, nil
}
