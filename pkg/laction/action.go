package laction

import (
	"time"

	"github.com/cprates/lgreet/pkg/greeting"
)

type action struct {
	name      string
	namespace string
	version   string
	revID     string
	created   time.Time
	generator *greeting.Generator
}

// ActionDesc describes a deployed action.
type ActionDesc struct {
	Name       string `json:"name"`
	Namespace  string `json:"namespace"`
	Key        string `json:"key"`
	Version    string `json:"version"`
	RevisionID string `json:"revisionId"`
	// ms since epoch
	Created int64 `json:"created"`
}

// Activation is the record of one action invocation.
type Activation struct {
	ActivationID string `json:"activationId"`
	Name         string `json:"name"`
	Namespace    string `json:"namespace"`
	Version      string `json:"version"`
	// ms since epoch
	Start    int64    `json:"start"`
	End      int64    `json:"end"`
	Duration int64    `json:"duration"`
	Response Response `json:"response"`
}

// Response of an activation.
type Response struct {
	Success bool              `json:"success"`
	Result  map[string]string `json:"result"`
}

func (a *action) desc() ActionDesc {
	return ActionDesc{
		Name:       a.name,
		Namespace:  a.namespace,
		Key:        a.generator.Key(),
		Version:    a.version,
		RevisionID: a.revID,
		Created:    millis(a.created),
	}
}

func millis(t time.Time) int64 {
	return t.UnixNano() / int64(time.Millisecond)
}
