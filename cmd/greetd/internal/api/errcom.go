package api

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/cprates/lgreet/common"
	"github.com/cprates/lgreet/pkg/lerr"
)

func onLgreetErr(w http.ResponseWriter, r common.Result) {
	writeErr(w, r.Status, *r.Err)
}

func onInvalidBody(w http.ResponseWriter, reqID string) {

	err := lerr.Result{
		Message: "The request content was malformed: expected a JSON object",
		Code:    reqID,
	}
	writeErr(w, http.StatusBadRequest, err)
}

func onInternalErr(w http.ResponseWriter, reqID string) {

	err := lerr.Result{
		Message: "Internal error",
		Code:    reqID,
	}
	writeErr(w, http.StatusInternalServerError, err)
}

func writeErr(w http.ResponseWriter, status int, err lerr.Result) {

	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	if err := enc.Encode(err); err != nil {
		log.Errorln("Unexpected error encoding error message,", err)
	}
}
