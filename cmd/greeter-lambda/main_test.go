package main

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/go-cmp/cmp"
)

func TestHandler(t *testing.T) {

	tests := []struct {
		name   string
		key    string
		input  map[string]interface{}
		expect map[string]string
	}{
		{"NameVariant", "name", map[string]interface{}{"name": "Ada"}, map[string]string{"greeting": "Hello Ada!"}},
		{"NameVariantEmpty", "name", map[string]interface{}{}, map[string]string{"greeting": "Hello stranger!"}},
		{"MessageVariant", "message", map[string]interface{}{"message": "World"}, map[string]string{"greeting": "Hello World!"}},
		{"MessageVariantOther", "message", map[string]interface{}{"other": 1}, map[string]string{"greeting": "Hello stranger!"}},
	}

	ctx := lambdacontext.NewContext(
		context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-1"},
	)
	for _, test := range tests {
		h, err := newHandler(test.key)
		if err != nil {
			t.Fatalf("%s unexpected error %s", test.name, err)
		}

		res, err := h(ctx, test.input)
		if err != nil {
			t.Errorf("%s unexpected error %s", test.name, err)
			continue
		}
		if diff := cmp.Diff(test.expect, res); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", test.name, diff)
		}
	}
}

func TestHandlerUnknownKey(t *testing.T) {
	if _, err := newHandler("subject"); err == nil {
		t.Errorf("expects an error for an unknown key")
	}
}
