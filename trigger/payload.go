package trigger

import (
	"encoding/json"
	"net/http"

	"serverless-crud/models"
)

// Default names of the deployed functions. Stacks that suffix the physical
// name need --function on the command line.
const (
	CreateTableFunction = "CreateTableLambdaFunction"
	GetAllItemsFunction = "GetAllItemsLambdaFunction"
	GetByIDFunction     = "GetByIdLambdaFunction"
	CreateItemFunction  = "CreateItemLambdaFunction"
	UpdateItemFunction  = "UpdateItemLambdaFunction"
	DeleteItemFunction  = "DeleteItemLambdaFunction"
)

const (
	DefaultID          = "1"
	DefaultCreateName  = "John Doe"
	DefaultUpdatedName = "Jane Doe"
)

// Payload is the subset of an API Gateway proxy event the users handlers read.
type Payload struct {
	HTTPMethod     string            `json:"httpMethod"`
	PathParameters map[string]string `json:"pathParameters,omitempty"`
	Body           string            `json:"body,omitempty"`
}

func CreateTable() Payload {
	return Payload{HTTPMethod: http.MethodGet}
}

func GetAllItems() Payload {
	return Payload{HTTPMethod: http.MethodGet}
}

func GetByID(id string) Payload {
	return Payload{
		HTTPMethod:     http.MethodGet,
		PathParameters: idParam(id),
	}
}

func CreateItem(name string) Payload {
	return Payload{
		HTTPMethod: http.MethodPost,
		Body:       userBody(orDefault(name, DefaultCreateName)),
	}
}

func UpdateItem(id, name string) Payload {
	return Payload{
		HTTPMethod:     http.MethodPut,
		PathParameters: idParam(id),
		Body:           userBody(orDefault(name, DefaultUpdatedName)),
	}
}

func DeleteItem(id string) Payload {
	return Payload{
		HTTPMethod:     http.MethodDelete,
		PathParameters: idParam(id),
	}
}

func idParam(id string) map[string]string {
	return map[string]string{"id": orDefault(id, DefaultID)}
}

func userBody(name string) string {
	// a struct of one string field always marshals
	raw, _ := json.Marshal(models.UserRequest{Name: name})
	return string(raw)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
