package trigger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"serverless-crud/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/fatih/color"
)

var ErrFunctionFailed = errors.New("function returned an error")

// Invoker is the part of the Lambda API the client needs.
type Invoker interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// Client invokes deployed users functions with synthetic events and prints
// the envelope they return.
type Client struct {
	invoker Invoker
	out     io.Writer

	success *color.Color
	failure *color.Color
}

func New(invoker Invoker, out io.Writer) *Client {
	return &Client{
		invoker: invoker,
		out:     out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
}

// NewClient builds a client from the shared AWS config. Empty region or
// profile fall back to the SDK's own resolution.
func NewClient(ctx context.Context, region, profile string, out io.Writer) (*Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	if profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return New(lambda.NewFromConfig(cfg), out), nil
}

// Invoke sends payload to function and decodes the returned envelope.
func (c *Client) Invoke(ctx context.Context, function string, payload Payload) (models.Response, error) {
	var response models.Response

	raw, err := json.Marshal(payload)
	if err != nil {
		return response, fmt.Errorf("failed to encode payload: %w", err)
	}

	fmt.Fprintf(c.out, "Requesting %s with: %s\n", function, raw)

	out, err := c.invoker.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: aws.String(function),
		Payload:      raw,
	})
	if err != nil {
		c.failure.Fprintf(c.out, "Error running %s: %v\n", function, err)
		return response, fmt.Errorf("invoke %s: %w", function, err)
	}

	if out.FunctionError != nil {
		c.failure.Fprintf(c.out, "Error running %s: %s\n", function, out.Payload)
		return response, fmt.Errorf("%w: %s: %s", ErrFunctionFailed, aws.ToString(out.FunctionError), out.Payload)
	}

	if err := json.Unmarshal(out.Payload, &response); err != nil {
		c.failure.Fprintf(c.out, "Error running %s: %v\n", function, err)
		return response, fmt.Errorf("failed to decode response of %s: %w", function, err)
	}

	pretty, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return response, fmt.Errorf("failed to encode response: %w", err)
	}

	if response.Error != "" {
		c.failure.Fprintf(c.out, "Error running %s\n%s\n", function, pretty)
	} else {
		c.success.Fprintf(c.out, "Success running %s\n%s\n", function, pretty)
	}

	return response, nil
}
