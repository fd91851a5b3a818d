// Command lambda runs the API per-invocation behind API Gateway. The
// application instance and its store connection are constructed on the first
// invocation of an execution context and reused afterwards; nothing is torn
// down between invocations.
package main

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	app "github.com/celery8911/nest-aws/internal/app"
	"github.com/celery8911/nest-aws/internal/app/httpapi"
	"github.com/celery8911/nest-aws/pkg/logger"
)

var (
	adapterMu sync.Mutex
	adapter   *httpadapter.HandlerAdapter

	log = logger.NewDefault("lambda")
)

// getAdapter returns the cached event adapter, building the application on
// the cold start.
func getAdapter() (*httpadapter.HandlerAdapter, error) {
	adapterMu.Lock()
	defer adapterMu.Unlock()

	if adapter != nil {
		return adapter, nil
	}

	application, err := app.Instance(app.Options{})
	if err != nil {
		return nil, err
	}
	log.Info("application initialised for this execution context")

	adapter = httpadapter.New(httpapi.NewServerHandler(application, application.Config(), application.Log()))
	return adapter, nil
}

// handle translates one API Gateway event. No fault may propagate past this
// boundary: any unhandled error or panic becomes a 500 JSON body carrying
// the invocation's request ID.
func handle(ctx context.Context, event events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, _ error) {
	requestID := ""
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		requestID = lc.AwsRequestID
	}

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("panic in handler: %v", r)
			resp = internalErrorResponse(requestID)
		}
	}()

	a, err := getAdapter()
	if err != nil {
		log.WithError(err).Error("initialise application")
		return internalErrorResponse(requestID), nil
	}

	log.Debugf("request %s %s (aws request id %s)", event.HTTPMethod, event.Path, requestID)

	resp, err = a.ProxyWithContext(ctx, event)
	if err != nil {
		log.WithError(err).Error("proxy event")
		return internalErrorResponse(requestID), nil
	}
	return resp, nil
}

func internalErrorResponse(requestID string) events.APIGatewayProxyResponse {
	body, _ := json.Marshal(map[string]string{
		"error":     "internal server error",
		"requestId": requestID,
	})
	return events.APIGatewayProxyResponse{
		StatusCode: 500,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}

func main() {
	lambda.Start(handle)
}
