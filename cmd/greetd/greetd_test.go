package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/cprates/lgreet/pkg/laction"
)

const testManifest = `
packages:
  hello:
    actions:
      helloworld:
        key: name
      hellomessage:
        key: message
        version: 0.0.2
`

func TestDeploy(t *testing.T) {
	dir, err := ioutil.TempDir("", "lgreet")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "manifest.yaml")
	if err := ioutil.WriteFile(path, []byte(testManifest), 0644); err != nil {
		t.Fatal(err)
	}

	l := log.New()
	l.Out = ioutil.Discard
	actions := laction.Launch("guest", &bytes.Buffer{}, log.NewEntry(l))
	defer actions.Shutdown()

	if err := deploy(actions, path); err != nil {
		t.Fatalf("unexpected error %s", err)
	}

	var descs []laction.ActionDesc
	if err := json.Unmarshal(actions.ListActions(context.Background()).Result, &descs); err != nil {
		t.Fatal(err)
	}
	var got [][2]string
	for _, d := range descs {
		got = append(got, [2]string{d.Name, d.Key})
	}
	expected := [][2]string{{"hello/hellomessage", "message"}, {"hello/helloworld", "name"}}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	// deploying again conflicts with the existing actions
	if err := deploy(actions, path); err == nil {
		t.Errorf("expects an error deploying twice")
	}

	if err := deploy(actions, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Errorf("expects an error for a missing manifest")
	}
}

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	expected := map[string]interface{}{
		"service.addr":      ":8080",
		"service.namespace": "guest",
		"action.name":       "hello",
		"action.key":        "name",
		"manifest":          "",
		"debug":             false,
	}
	for k, e := range expected {
		if got := v.Get(k); got != e {
			t.Errorf("%s expects %v, got %v", k, e, got)
		}
	}
}
