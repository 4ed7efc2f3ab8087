package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/cprates/lgreet/common"
	"github.com/cprates/lgreet/pkg/laction"
	"github.com/cprates/lgreet/pkg/params"
)

// ActivationSentinel is written to stdout and stderr after every activation so the log
// collector can split the streams per activation.
const ActivationSentinel = "XXX_THE_END_OF_A_WHISK_ACTIVATION_XXX"

// ActionProxy serves the /init and /run endpoints of an action runtime. It hosts exactly one
// action, chosen by the first /init.
type ActionProxy struct {
	api *laction.API
	// defaults for /init when the caller doesn't set them
	defaultName string
	defaultKey  string
	stdout      io.Writer
	stderr      io.Writer

	mu     sync.Mutex
	action string
}

// InstallActionProxy installs the action runtime endpoints.
func InstallActionProxy(
	router *mux.Router,
	api *laction.API,
	defaultName, defaultKey string,
	stdout, stderr io.Writer,
) *ActionProxy {

	log.Println("Installing action proxy")

	p := &ActionProxy{
		api:         api,
		defaultName: defaultName,
		defaultKey:  defaultKey,
		stdout:      stdout,
		stderr:      stderr,
	}
	router.HandleFunc("/init", commonDispatcher(p.init)).Methods(http.MethodPost)
	router.HandleFunc("/run", commonDispatcher(p.run)).Methods(http.MethodPost)

	return p
}

// Action returns the name of the hosted action, empty if not initialized yet.
func (p *ActionProxy) Action() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.action
}

func (p *ActionProxy) init(
	ctx context.Context,
	reqID string,
	r *http.Request,
	body map[string]interface{},
	vars map[string]string,
) common.Result {

	value, err := params.ValMap("value", body)
	if err != nil {
		return common.ErrInvalidParameterValueRes(err.Error(), reqID)
	}

	binary, err := params.ValBool("binary", false, value)
	if err != nil {
		return common.ErrInvalidParameterValueRes(err.Error(), reqID)
	}
	if binary {
		return common.ErrInvalidParameterValueRes("binary actions are not supported", reqID)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.action != "" {
		return common.ErrForbiddenRes("Cannot initialize the action more than once.", reqID)
	}

	name := params.ValString("name", p.defaultName, value)
	key := params.ValString("key", p.defaultKey, value)

	log.Debugf("Initializing action %q with key %q, %s", name, key, reqID)

	res := p.api.CreateAction(ctx, laction.ReqCreateAction{Name: name, Key: key})
	if res.Err != nil {
		return res
	}
	p.action = name

	return common.SuccessRes([]byte(`{"ok":true}`), reqID)
}

func (p *ActionProxy) run(
	ctx context.Context,
	reqID string,
	r *http.Request,
	body map[string]interface{},
	vars map[string]string,
) common.Result {

	name := p.Action()
	if name == "" {
		return common.ErrForbiddenRes("action not initialized", reqID)
	}

	value, err := params.ValMap("value", body)
	if err != nil {
		return common.ErrInvalidParameterValueRes(err.Error(), reqID)
	}

	res := p.api.InvokeAction(
		ctx,
		laction.ReqInvokeAction{
			Name:         name,
			ActivationID: params.ValString("activation_id", "", body),
			Payload:      value,
		},
		true,
	)

	for _, w := range []io.Writer{p.stdout, p.stderr} {
		if _, err := fmt.Fprintln(w, ActivationSentinel); err != nil {
			log.Errorln("Failed to write activation sentinel,", reqID, err)
		}
	}

	return res
}
