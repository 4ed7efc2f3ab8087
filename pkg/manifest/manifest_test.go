package manifest

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {

	testsSet := []struct {
		description string
		doc         string
		//
		expected    []Action
		expectedErr string
	}{
		{
			"Tests an empty document",
			"",
			nil,
			"",
		},
		{
			"Tests both variants are flattened and sorted",
			`
packages:
  hello:
    actions:
      hellomessage:
        key: message
        version: 0.0.2
      helloworld:
        key: name
  demo:
    actions:
      greet: {}
`,
			[]Action{
				{Package: "demo", Name: "greet"},
				{Package: "hello", Name: "hellomessage", Key: "message", Version: "0.0.2"},
				{Package: "hello", Name: "helloworld", Key: "name"},
			},
			"",
		},
		{
			"Tests unknown key name",
			`
packages:
  hello:
    actions:
      helloworld:
        key: subject
`,
			nil,
			`action hello/helloworld: unknown key name: "subject"`,
		},
		{
			"Tests unknown fields are rejected",
			`
packages:
  hello:
    actions:
      helloworld:
        runtime: go
`,
			nil,
			"decoding manifest:",
		},
	}

	for _, test := range testsSet {
		m, err := Load(strings.NewReader(test.doc))
		if test.expectedErr != "" || err != nil {
			if err == nil || !strings.HasPrefix(err.Error(), test.expectedErr) {
				t.Errorf(
					"Error mismatch. %s. Expects %q, got %v",
					test.description, test.expectedErr, err,
				)
			}
			continue
		}

		if diff := cmp.Diff(test.expected, m.Actions()); diff != "" {
			t.Errorf("%s. Mismatch (-want +got):\n%s", test.description, diff)
		}
	}
}

func TestQualifiedName(t *testing.T) {
	a := Action{Package: "hello", Name: "helloworld"}
	if a.QualifiedName() != "hello/helloworld" {
		t.Errorf("expects hello/helloworld, got %q", a.QualifiedName())
	}
}
