package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"serverless-crud/app"
	"serverless-crud/models"

	"github.com/aws/aws-lambda-go/events"
)

// Names of the deployable functions, as passed to ByName.
const (
	NameCreateTable = "createTable"
	NameGetAllItems = "getAllItems"
	NameGetByID     = "getById"
	NameCreateItem  = "createItem"
	NameUpdateItem  = "updateItem"
	NameDeleteItem  = "deleteItem"
	NameRouter      = "router"
)

// ByName builds the handler a single-purpose function should serve.
func ByName(a *app.App, name string) (Handler, bool) {
	switch name {
	case NameCreateTable:
		return CreateTable(a), true
	case NameGetAllItems:
		return GetAllItems(a), true
	case NameGetByID:
		return GetByID(a), true
	case NameCreateItem:
		return CreateItem(a), true
	case NameUpdateItem:
		return UpdateItem(a), true
	case NameDeleteItem:
		return DeleteItem(a), true
	case NameRouter:
		return Router(a), true
	default:
		return nil, false
	}
}

// Router serves every users route from one function behind a /{proxy+} integration.
func Router(a *app.App) Handler {
	table := CreateTable(a)
	list := GetAllItems(a)
	get := GetByID(a)
	create := CreateItem(a)
	update := UpdateItem(a)
	remove := DeleteItem(a)

	return func(ctx context.Context, event events.APIGatewayProxyRequest) (models.Response, error) {
		path := strings.TrimSuffix(event.Path, "/")

		switch {
		case path == "/create-users-table":
			if event.HTTPMethod == http.MethodGet {
				return table(ctx, event)
			}

		case path == "/users":
			switch event.HTTPMethod {
			case http.MethodGet:
				return list(ctx, event)
			case http.MethodPost:
				return create(ctx, event)
			}

		case strings.HasPrefix(path, "/users/"):
			id := strings.TrimPrefix(path, "/users/")
			if id == "" || strings.Contains(id, "/") {
				return routeResponse(a, event, http.StatusNotFound, "Not Found")
			}
			event = withPathID(event, id)

			switch event.HTTPMethod {
			case http.MethodGet:
				return get(ctx, event)
			case http.MethodPut:
				return update(ctx, event)
			case http.MethodDelete:
				return remove(ctx, event)
			}

		default:
			return routeResponse(a, event, http.StatusNotFound, "Not Found")
		}

		return routeResponse(a, event, http.StatusMethodNotAllowed,
			fmt.Sprintf("Method Not Allowed: %s", event.HTTPMethod))
	}
}

// withPathID fills pathParameters.id from the path without touching the caller's map
func withPathID(event events.APIGatewayProxyRequest, id string) events.APIGatewayProxyRequest {
	if event.PathParameters["id"] != "" {
		return event
	}

	params := make(map[string]string, len(event.PathParameters)+1)
	for k, v := range event.PathParameters {
		params[k] = v
	}
	params["id"] = id
	event.PathParameters = params
	return event
}

func routeResponse(a *app.App, event events.APIGatewayProxyRequest, status int, message string) (models.Response, error) {
	response, err := jsonResponse(status, map[string]string{"message": message})
	if err != nil {
		return models.Response{}, err
	}
	logResponse(a, NameRouter, event, response)
	return response, nil
}
