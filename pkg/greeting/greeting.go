// Package greeting builds the greeting returned by the hello actions.
//
// A Generator is configured with the name of the input key holding the subject. Two keys
// are recognized, "name" and "message", matching the two deployed flavours of the action.
package greeting

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cprates/lgreet/pkg/params"
)

const (
	// KeyName makes the generator read the subject from "name".
	KeyName = "name"
	// KeyMessage makes the generator read the subject from "message".
	KeyMessage = "message"

	// DefaultSubject is used when the input has no subject.
	DefaultSubject = "stranger"
	// ResultKey is the only key of a generated result.
	ResultKey = "greeting"
)

// ErrUnknownKey is for when the configured key is not one of the recognized ones.
var ErrUnknownKey = errors.New("unknown key name")

// Keys lists the recognized key names.
var Keys = []string{KeyName, KeyMessage}

// Config selects the generator variant.
type Config struct {
	// KeyName is the input key holding the subject. Defaults to KeyName.
	KeyName string `json:"key_name" yaml:"key_name"`
}

// Generator produces greetings. It holds no mutable state.
type Generator struct {
	key string
	out io.Writer
}

// ValidKey reports whether k is a recognized key name.
func ValidKey(k string) bool {
	for _, key := range Keys {
		if key == k {
			return true
		}
	}
	return false
}

// New returns a Generator for the given config. Every greeting is also written to out, or
// to stdout if out is nil.
func New(cfg Config, out io.Writer) (*Generator, error) {

	key := cfg.KeyName
	if key == "" {
		key = KeyName
	}
	if !ValidKey(key) {
		return nil, fmt.Errorf("%s: %q", ErrUnknownKey, cfg.KeyName)
	}

	if out == nil {
		out = os.Stdout
	}

	return &Generator{key: key, out: out}, nil
}

// Key returns the input key this generator reads the subject from.
func (g *Generator) Key() string {
	return g.key
}

// Generate returns {"greeting": "Hello <subject>!"}. Any input is accepted.
func (g *Generator) Generate(input map[string]interface{}) map[string]string {

	greeting := Greet(params.ValString(g.key, DefaultSubject, input))
	// informational only
	_, _ = fmt.Fprintln(g.out, greeting)

	return map[string]string{ResultKey: greeting}
}

// Greet formats the greeting for subject.
func Greet(subject string) string {
	return "Hello " + subject + "!"
}
