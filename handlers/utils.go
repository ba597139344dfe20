package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"serverless-crud/app"
	"serverless-crud/models"

	"github.com/aws/aws-lambda-go/events"
)

// Handler is the signature shared by every users function. It is accepted as is by lambda.Start.
type Handler func(ctx context.Context, event events.APIGatewayProxyRequest) (models.Response, error)

// MethodError is returned, not folded into the envelope, when a handler is
// invoked with the wrong HTTP method. The invocation layer reports it as a fault.
type MethodError struct {
	Handler  string
	Expected string
	Received string
}

func (e *MethodError) Error() string {
	return fmt.Sprintf("%s only accepts %s method, you tried: %q", e.Handler, e.Expected, e.Received)
}

var (
	ErrMissingID   = errors.New("path parameter id is required")
	ErrInvalidID   = errors.New("path parameter id must be a positive integer")
	ErrMissingBody = errors.New("request body is required")
)

func checkMethod(handler, expected string, event events.APIGatewayProxyRequest) error {
	if event.HTTPMethod != expected {
		return &MethodError{Handler: handler, Expected: expected, Received: event.HTTPMethod}
	}
	return nil
}

// newResponse is the envelope every handler starts from; only a successful
// repository call replaces it.
func newResponse() models.Response {
	return models.Response{
		StatusCode: 500,
		Body:       models.EmptyBody,
	}
}

func jsonResponse(status int, payload any) (models.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return models.Response{}, fmt.Errorf("failed to encode response: %w", err)
	}
	return models.Response{StatusCode: status, Body: string(body)}, nil
}

// failed attaches err to the 500 envelope and logs it
func failed(a *app.App, handler string, event events.APIGatewayProxyRequest, response models.Response, err error) models.Response {
	a.Logger.Error("API Error",
		"handler", handler,
		"method", event.HTTPMethod,
		"path", event.Path,
		"error", err,
	)
	response.Error = err.Error()
	return response
}

func logResponse(a *app.App, handler string, event events.APIGatewayProxyRequest, response models.Response) {
	a.Logger.Info("users request",
		"handler", handler,
		"path", event.Path,
		"status", response.StatusCode,
		"body", response.Body,
	)
}

func pathID(event events.APIGatewayProxyRequest) (int64, error) {
	raw, ok := event.PathParameters["id"]
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, ErrMissingID
	}

	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

// decodeUserRequest reads and validates the JSON body of create and update calls
func decodeUserRequest(a *app.App, event events.APIGatewayProxyRequest) (models.UserRequest, error) {
	var req models.UserRequest

	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return req, fmt.Errorf("invalid request body: %w", err)
		}
		body = string(decoded)
	}

	if strings.TrimSpace(body) == "" {
		return req, ErrMissingBody
	}
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return req, fmt.Errorf("invalid request body: %w", err)
	}
	if err := a.Validator.Validate(&req); err != nil {
		return req, err
	}

	req.Name = strings.TrimSpace(req.Name)
	return req, nil
}
