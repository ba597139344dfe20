package handlers

import (
	"context"
	"net/http"

	"serverless-crud/app"
	"serverless-crud/models"

	"github.com/aws/aws-lambda-go/events"
)

type operation func(ctx context.Context, a *app.App, event events.APIGatewayProxyRequest) (models.Response, error)

// users wraps an operation with the method check, the 500 fallback and response logging
func users(a *app.App, name, method string, op operation) Handler {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (models.Response, error) {
		response := newResponse()

		if err := checkMethod(name, method, event); err != nil {
			return models.Response{}, err
		}

		if result, err := op(ctx, a, event); err != nil {
			response = failed(a, name, event, response, err)
		} else {
			response = result
		}

		logResponse(a, name, event, response)
		return response, nil
	}
}

// CreateTable creates the users table.
// GET /create-users-table
func CreateTable(a *app.App) Handler {
	return users(a, NameCreateTable, http.MethodGet, createTable)
}

// GetAllItems lists every user.
// GET /users
func GetAllItems(a *app.App) Handler {
	return users(a, NameGetAllItems, http.MethodGet, getAllItems)
}

// GetByID fetches one user. A missing user is an empty 200 payload.
// GET /users/{id}
func GetByID(a *app.App) Handler {
	return users(a, NameGetByID, http.MethodGet, getByID)
}

// CreateItem inserts a user and returns its new id.
// POST /users
func CreateItem(a *app.App) Handler {
	return users(a, NameCreateItem, http.MethodPost, createItem)
}

// UpdateItem renames a user. A missing id is not reported.
// PUT /users/{id}
func UpdateItem(a *app.App) Handler {
	return users(a, NameUpdateItem, http.MethodPut, updateItem)
}

// DeleteItem removes a user. A missing id is not reported.
// DELETE /users/{id}
func DeleteItem(a *app.App) Handler {
	return users(a, NameDeleteItem, http.MethodDelete, deleteItem)
}

func createTable(ctx context.Context, a *app.App, _ events.APIGatewayProxyRequest) (models.Response, error) {
	if err := a.Users.Init(ctx); err != nil {
		return models.Response{}, err
	}
	if err := a.Users.CreateTable(ctx); err != nil {
		return models.Response{}, err
	}
	return models.Response{StatusCode: http.StatusCreated, Body: models.EmptyBody}, nil
}

func getAllItems(ctx context.Context, a *app.App, _ events.APIGatewayProxyRequest) (models.Response, error) {
	if err := a.Users.Init(ctx); err != nil {
		return models.Response{}, err
	}
	list, err := a.Users.GetAllItems(ctx)
	if err != nil {
		return models.Response{}, err
	}
	return jsonResponse(http.StatusOK, list)
}

func getByID(ctx context.Context, a *app.App, event events.APIGatewayProxyRequest) (models.Response, error) {
	id, err := pathID(event)
	if err != nil {
		return models.Response{}, err
	}
	if err := a.Users.Init(ctx); err != nil {
		return models.Response{}, err
	}
	user, err := a.Users.GetByID(ctx, id)
	if err != nil {
		return models.Response{}, err
	}
	if user == nil {
		return models.Response{StatusCode: http.StatusOK, Body: models.EmptyBody}, nil
	}
	return jsonResponse(http.StatusOK, user)
}

func createItem(ctx context.Context, a *app.App, event events.APIGatewayProxyRequest) (models.Response, error) {
	req, err := decodeUserRequest(a, event)
	if err != nil {
		return models.Response{}, err
	}
	if err := a.Users.Init(ctx); err != nil {
		return models.Response{}, err
	}
	id, err := a.Users.Create(ctx, req.Name)
	if err != nil {
		return models.Response{}, err
	}
	return jsonResponse(http.StatusCreated, models.CreatedUser{UserID: id})
}

func updateItem(ctx context.Context, a *app.App, event events.APIGatewayProxyRequest) (models.Response, error) {
	id, err := pathID(event)
	if err != nil {
		return models.Response{}, err
	}
	req, err := decodeUserRequest(a, event)
	if err != nil {
		return models.Response{}, err
	}
	if err := a.Users.Init(ctx); err != nil {
		return models.Response{}, err
	}
	if err := a.Users.Update(ctx, models.User{ID: id, Name: req.Name}); err != nil {
		return models.Response{}, err
	}
	return models.Response{StatusCode: http.StatusOK, Body: models.EmptyBody}, nil
}

func deleteItem(ctx context.Context, a *app.App, event events.APIGatewayProxyRequest) (models.Response, error) {
	id, err := pathID(event)
	if err != nil {
		return models.Response{}, err
	}
	if err := a.Users.Init(ctx); err != nil {
		return models.Response{}, err
	}
	if err := a.Users.Delete(ctx, id); err != nil {
		return models.Response{}, err
	}
	return models.Response{StatusCode: http.StatusOK, Body: models.EmptyBody}, nil
}
