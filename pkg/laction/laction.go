package laction

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/cprates/lgreet/pkg/greeting"
)

// DefaultVersion is set on actions created without a version.
const DefaultVersion = "0.0.1"

var (
	// ErrActionAlreadyExist is for when creating an action with a name already in use.
	ErrActionAlreadyExist = errors.New("already exist")
	// ErrActionNotFound is for when the given action does not exist.
	ErrActionNotFound = errors.New("not found")
	// ErrInvalidKey is for when the action's key is not a recognized one.
	ErrInvalidKey = errors.New("invalid key")
	// ErrEmptyName is for when the action name is missing.
	ErrEmptyName = errors.New("empty name")
)

// LAction represents an instance of the lAction core. It owns every deployed action and
// serves one request at a time from PushC.
type LAction struct {
	Namespace string

	actions map[string]*action // by action name
	out     io.Writer
	logger  *log.Entry
	now     func() time.Time

	PushC chan Request
}

// New returns a ready to use instance of LAction. Action generators write to out.
func New(namespace string, out io.Writer, logger *log.Entry) *LAction {
	return &LAction{
		Namespace: namespace,
		actions:   map[string]*action{},
		out:       out,
		logger:    logger,
		now:       time.Now,
		PushC:     make(chan Request),
	}
}

// Process requests from the API until stopC is closed.
func (l *LAction) Process(stopC <-chan struct{}) {

forloop:
	for {
		select {
		case req := <-l.PushC:
			switch req.action {
			case "CreateAction":
				l.createAction(req)
			case "GetAction":
				l.getAction(req)
			case "ListActions":
				l.listActions(req)
			case "DeleteAction":
				l.deleteAction(req)
			case "InvokeAction":
				l.invokeAction(req)
			default:
				req.resC <- &ReqResult{Err: fmt.Errorf("%q not implemented", req.action)}
			}
		case <-stopC:
			break forloop
		}
	}

	l.logger.Println("Shutting down LAction...")
}

func (l *LAction) createAction(req Request) {
	params := req.params.(ReqCreateAction)

	if params.Name == "" {
		req.resC <- &ReqResult{Err: ErrEmptyName, ErrData: "action name is required"}
		return
	}

	if _, exists := l.actions[params.Name]; exists {
		req.resC <- &ReqResult{
			Err:     ErrActionAlreadyExist,
			ErrData: "action already exist: " + params.Name,
		}
		return
	}

	gen, err := greeting.New(greeting.Config{KeyName: params.Key}, l.out)
	if err != nil {
		req.resC <- &ReqResult{Err: ErrInvalidKey, ErrData: err.Error()}
		return
	}

	u, err := uuid.NewRandom()
	if err != nil {
		req.resC <- &ReqResult{Err: err}
		return
	}

	version := params.Version
	if version == "" {
		version = DefaultVersion
	}

	a := &action{
		name:      params.Name,
		namespace: l.Namespace,
		version:   version,
		revID:     u.String(),
		created:   l.now(),
		generator: gen,
	}
	l.actions[a.name] = a

	l.logger.Debugf("Created action %q reading %q, %s", a.name, gen.Key(), req.id)

	req.resC <- &ReqResult{Data: a.desc()}
}

func (l *LAction) getAction(req Request) {
	params := req.params.(ReqActionName)

	a, exists := l.actions[params.Name]
	if !exists {
		req.resC <- &ReqResult{
			Err:     ErrActionNotFound,
			ErrData: "action not found: " + params.Name,
		}
		return
	}

	req.resC <- &ReqResult{Data: a.desc()}
}

func (l *LAction) listActions(req Request) {

	descs := make([]ActionDesc, 0, len(l.actions))
	for _, a := range l.actions {
		descs = append(descs, a.desc())
	}
	sort.Slice(descs, func(i, j int) bool { return descs[i].Name < descs[j].Name })

	req.resC <- &ReqResult{Data: descs}
}

func (l *LAction) deleteAction(req Request) {
	params := req.params.(ReqActionName)

	a, exists := l.actions[params.Name]
	if !exists {
		req.resC <- &ReqResult{
			Err:     ErrActionNotFound,
			ErrData: "action not found: " + params.Name,
		}
		return
	}
	delete(l.actions, params.Name)

	l.logger.Debugf("Deleted action %q, %s", params.Name, req.id)

	req.resC <- &ReqResult{Data: a.desc()}
}

func (l *LAction) invokeAction(req Request) {
	params := req.params.(ReqInvokeAction)

	a, exists := l.actions[params.Name]
	if !exists {
		req.resC <- &ReqResult{
			Err:     ErrActionNotFound,
			ErrData: "action not found: " + params.Name,
		}
		return
	}

	activationID := params.ActivationID
	if activationID == "" {
		u, err := uuid.NewRandom()
		if err != nil {
			req.resC <- &ReqResult{Err: err}
			return
		}
		activationID = u.String()
	}

	l.logger.Debugf("Invoking action %q, activation %s, %s", a.name, activationID, req.id)

	start := l.now()
	result := a.generator.Generate(params.Payload)
	end := l.now()

	req.resC <- &ReqResult{
		Data: Activation{
			ActivationID: activationID,
			Name:         a.name,
			Namespace:    a.namespace,
			Version:      a.version,
			Start:        millis(start),
			End:          millis(end),
			Duration:     millis(end) - millis(start),
			Response: Response{
				Success: true,
				Result:  result,
			},
		},
	}
}
