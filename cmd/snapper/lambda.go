package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"mercator-hq/snapper/pkg/cli"
	"mercator-hq/snapper/pkg/invoke"
)

// runningInLambda reports whether the process was started by the Lambda
// runtime.
func runningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_RUNTIME_API") != ""
}

// startLambda serves invocations until the runtime stops the process. The
// configuration is read once per execution environment.
func startLambda() {
	cfg, err := loadConfig(os.Getenv("SNAPPER_CONFIG"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}

	a, err := newApp(context.Background(), cfg, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}

	handler := invoke.NewHandler(a.runner, cfg.Policy(), a.tracer, a.logger)
	lambda.Start(handler.Invoke)
}
