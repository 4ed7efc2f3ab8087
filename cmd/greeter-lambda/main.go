package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/cprates/lgreet/pkg/greeting"
)

type handlerFunc func(ctx context.Context, input map[string]interface{}) (map[string]string, error)

// newHandler returns the Lambda handler for the variant reading the subject from key.
func newHandler(key string) (handlerFunc, error) {

	g, err := greeting.New(greeting.Config{KeyName: key}, os.Stdout)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, input map[string]interface{}) (map[string]string, error) {
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			log.Debugln("Handling request", lc.AwsRequestID)
		}
		return g.Generate(input), nil
	}, nil
}

func main() {

	viper.SetDefault("greeting_key", greeting.KeyName)
	viper.SetDefault("debug", false)
	viper.AutomaticEnv()

	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
	log.SetFormatter(&log.JSONFormatter{})

	h, err := newHandler(viper.GetString("greeting_key"))
	if err != nil {
		log.Fatalln("Invalid configuration,", err)
	}

	lambda.Start(h)
}
