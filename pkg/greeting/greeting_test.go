package greeting

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {

	testsSet := []struct {
		description string
		cfg         Config
		//
		expectedKey string
		expectErr   bool
	}{
		{"Tests empty key defaults to name", Config{}, KeyName, false},
		{"Tests name variant", Config{KeyName: "name"}, KeyName, false},
		{"Tests message variant", Config{KeyName: "message"}, KeyMessage, false},
		{"Tests unknown key", Config{KeyName: "subject"}, "", true},
		{"Tests keys are case sensitive", Config{KeyName: "Name"}, "", true},
	}

	for _, test := range testsSet {
		g, err := New(test.cfg, &bytes.Buffer{})
		if test.expectErr {
			if err == nil {
				t.Errorf("%s. Expects an error", test.description)
			} else if !strings.HasPrefix(err.Error(), ErrUnknownKey.Error()) {
				t.Errorf("%s. Unexpected error %q", test.description, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s. Unexpected error %q", test.description, err)
			continue
		}

		if g.Key() != test.expectedKey {
			t.Errorf("%s. Expects key %q, got %q", test.description, test.expectedKey, g.Key())
		}
	}
}

func TestGenerate(t *testing.T) {

	testsSet := []struct {
		description string
		key         string
		input       map[string]interface{}
		//
		expected map[string]string
	}{
		{
			"Tests name variant with a name",
			KeyName,
			map[string]interface{}{"name": "Ada"},
			map[string]string{"greeting": "Hello Ada!"},
		},
		{
			"Tests name variant with empty input",
			KeyName,
			map[string]interface{}{},
			map[string]string{"greeting": "Hello stranger!"},
		},
		{
			"Tests message variant with a message",
			KeyMessage,
			map[string]interface{}{"message": "World"},
			map[string]string{"greeting": "Hello World!"},
		},
		{
			"Tests message variant ignores other keys",
			KeyMessage,
			map[string]interface{}{"other": float64(1)},
			map[string]string{"greeting": "Hello stranger!"},
		},
		{
			"Tests name variant ignores message",
			KeyName,
			map[string]interface{}{"message": "World"},
			map[string]string{"greeting": "Hello stranger!"},
		},
		{
			"Tests nil input",
			KeyName,
			nil,
			map[string]string{"greeting": "Hello stranger!"},
		},
		{
			"Tests non string subject is coerced",
			KeyName,
			map[string]interface{}{"name": float64(7)},
			map[string]string{"greeting": "Hello 7!"},
		},
		{
			"Tests null subject falls back to default",
			KeyMessage,
			map[string]interface{}{"message": nil},
			map[string]string{"greeting": "Hello stranger!"},
		},
	}

	for _, test := range testsSet {
		out := &bytes.Buffer{}
		g, err := New(Config{KeyName: test.key}, out)
		if err != nil {
			t.Fatalf("%s. Unexpected error %q", test.description, err)
		}

		res := g.Generate(test.input)
		if diff := cmp.Diff(test.expected, res); diff != "" {
			t.Errorf("%s. Mismatch (-want +got):\n%s", test.description, diff)
		}

		if out.String() != test.expected["greeting"]+"\n" {
			t.Errorf(
				"%s. Expects output %q, got %q",
				test.description, test.expected["greeting"]+"\n", out.String(),
			)
		}
	}
}

// Same input, same output, no matter how many times.
func TestGenerateIdempotent(t *testing.T) {
	out := &bytes.Buffer{}
	g, err := New(Config{KeyName: KeyName}, out)
	if err != nil {
		t.Fatal(err)
	}

	input := map[string]interface{}{"name": "Ada"}
	first := g.Generate(input)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, g.Generate(input)); diff != "" {
			t.Fatalf("call %d differs (-first +got):\n%s", i, diff)
		}
	}

	if lines := strings.Count(out.String(), "Hello Ada!\n"); lines != 6 {
		t.Errorf("expects 6 greetings written, got %d", lines)
	}
	if diff := cmp.Diff(map[string]interface{}{"name": "Ada"}, input); diff != "" {
		t.Errorf("input was modified (-want +got):\n%s", diff)
	}
}
