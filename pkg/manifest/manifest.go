package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cprates/lgreet/pkg/greeting"
)

// Manifest declares the actions to deploy, grouped by package.
type Manifest struct {
	Packages map[string]Package `yaml:"packages"`
}

// Package groups actions.
type Package struct {
	Actions map[string]ActionSpec `yaml:"actions"`
}

// ActionSpec configures one action.
type ActionSpec struct {
	Key     string `yaml:"key"`
	Version string `yaml:"version"`
}

// Action is a flattened ActionSpec.
type Action struct {
	Package string
	Name    string
	Key     string
	Version string
}

// ErrEmptyName is for packages or actions without a name.
var ErrEmptyName = errors.New("empty name")

// QualifiedName returns package/name.
func (a Action) QualifiedName() string {
	return a.Package + "/" + a.Name
}

// Load parses and validates a manifest.
func Load(r io.Reader) (*Manifest, error) {

	m := &Manifest{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding manifest: %s", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// LoadFile is Load for the file at path.
func LoadFile(path string) (*Manifest, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Validate checks every package and action has a name and every key is recognized. An
// empty key is valid and means the default one.
func (m *Manifest) Validate() error {

	for pName, p := range m.Packages {
		if pName == "" {
			return fmt.Errorf("package: %s", ErrEmptyName)
		}
		for aName, a := range p.Actions {
			if aName == "" {
				return fmt.Errorf("action in package %q: %s", pName, ErrEmptyName)
			}
			if a.Key != "" && !greeting.ValidKey(a.Key) {
				return fmt.Errorf(
					"action %s/%s: %s: %q", pName, aName, greeting.ErrUnknownKey, a.Key,
				)
			}
		}
	}

	return nil
}

// Actions returns all actions sorted by package and then by name.
func (m *Manifest) Actions() []Action {

	var actions []Action
	for pName, p := range m.Packages {
		for aName, a := range p.Actions {
			actions = append(actions, Action{
				Package: pName,
				Name:    aName,
				Key:     a.Key,
				Version: a.Version,
			})
		}
	}

	sort.Slice(actions, func(i, j int) bool {
		if actions[i].Package != actions[j].Package {
			return actions[i].Package < actions[j].Package
		}
		return actions[i].Name < actions[j].Name
	})

	return actions
}
