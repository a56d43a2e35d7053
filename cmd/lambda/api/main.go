package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"marketplace-api/internal/config"
	"marketplace-api/pkg/httpapi"
	"marketplace-api/pkg/server"
)

var container *server.Container

// init runs once per cold start so the DynamoDB client and route table are
// reused across invocations.
func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	container, err = server.NewContainer(context.Background(), cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// Convert the API Gateway event to the normalized request exactly once
	req := &httpapi.Request{
		Method:     event.HTTPMethod,
		Path:       event.Path,
		Headers:    event.Headers,
		Query:      event.QueryStringParameters,
		PathParams: event.PathParameters,
		Body:       []byte(event.Body),
	}

	resp := container.Router.Dispatch(ctx, req)

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}, nil
}

func main() {
	awslambda.Start(handler)
}
