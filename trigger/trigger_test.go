package trigger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"serverless-crud/models"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInvoker struct {
	input  *lambda.InvokeInput
	output *lambda.InvokeOutput
	err    error
}

func (f *fakeInvoker) Invoke(_ context.Context, params *lambda.InvokeInput, _ ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	f.input = params
	return f.output, f.err
}

func TestPayloadDefaults(t *testing.T) {
	tests := []struct {
		name     string
		payload  Payload
		expected string
	}{
		{"create table", CreateTable(), `{"httpMethod":"GET"}`},
		{"get all", GetAllItems(), `{"httpMethod":"GET"}`},
		{"get by id", GetByID(""), `{"httpMethod":"GET","pathParameters":{"id":"1"}}`},
		{"create", CreateItem(""), `{"httpMethod":"POST","body":"{\"name\":\"John Doe\"}"}`},
		{"update", UpdateItem("", ""), `{"httpMethod":"PUT","pathParameters":{"id":"1"},"body":"{\"name\":\"Jane Doe\"}"}`},
		{"delete", DeleteItem(""), `{"httpMethod":"DELETE","pathParameters":{"id":"1"}}`},
		{"explicit args", UpdateItem("7", "Ada"), `{"httpMethod":"PUT","pathParameters":{"id":"7"},"body":"{\"name\":\"Ada\"}"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.payload)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(raw))
		})
	}
}

func TestPayloadDecodesAsProxyEvent(t *testing.T) {
	raw, err := json.Marshal(UpdateItem("3", "Ada"))
	require.NoError(t, err)

	var event events.APIGatewayProxyRequest
	require.NoError(t, json.Unmarshal(raw, &event))

	assert.Equal(t, "PUT", event.HTTPMethod)
	assert.Equal(t, "3", event.PathParameters["id"])
	assert.JSONEq(t, `{"name":"Ada"}`, event.Body)
}

func TestInvokeDecodesEnvelope(t *testing.T) {
	invoker := &fakeInvoker{output: &lambda.InvokeOutput{
		StatusCode: 200,
		Payload:    []byte(`{"statusCode":201,"body":"{\"userId\":4}"}`),
	}}
	var out bytes.Buffer
	client := New(invoker, &out)

	response, err := client.Invoke(context.Background(), CreateItemFunction, CreateItem("Ada"))
	require.NoError(t, err)

	assert.Equal(t, models.Response{StatusCode: 201, Body: `{"userId":4}`}, response)
	assert.Equal(t, CreateItemFunction, aws.ToString(invoker.input.FunctionName))
	assert.JSONEq(t, `{"httpMethod":"POST","body":"{\"name\":\"Ada\"}"}`, string(invoker.input.Payload))
	assert.Contains(t, out.String(), "Success running CreateItemLambdaFunction")
}

func TestInvokeReportsEnvelopeError(t *testing.T) {
	invoker := &fakeInvoker{output: &lambda.InvokeOutput{
		Payload: []byte(`{"statusCode":500,"body":"{}","error":"boom"}`),
	}}
	var out bytes.Buffer

	response, err := New(invoker, &out).Invoke(context.Background(), GetAllItemsFunction, GetAllItems())
	require.NoError(t, err)

	assert.Equal(t, 500, response.StatusCode)
	assert.Equal(t, "boom", response.Error)
	assert.Contains(t, out.String(), "Error running GetAllItemsLambdaFunction")
}

func TestInvokeFunctionError(t *testing.T) {
	invoker := &fakeInvoker{output: &lambda.InvokeOutput{
		FunctionError: aws.String("Unhandled"),
		Payload:       []byte(`{"errorMessage":"getAllItems only accepts GET method, you tried: \"POST\""}`),
	}}
	var out bytes.Buffer

	_, err := New(invoker, &out).Invoke(context.Background(), GetAllItemsFunction, GetAllItems())
	assert.ErrorIs(t, err, ErrFunctionFailed)
	assert.Contains(t, err.Error(), "Unhandled")
	assert.Contains(t, out.String(), "Error running")
}

func TestInvokeTransportError(t *testing.T) {
	invoker := &fakeInvoker{err: errors.New("no credentials")}
	var out bytes.Buffer

	_, err := New(invoker, &out).Invoke(context.Background(), DeleteItemFunction, DeleteItem("2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no credentials")
	assert.Contains(t, out.String(), "Error running DeleteItemLambdaFunction")
}
