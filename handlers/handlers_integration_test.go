package handlers_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"serverless-crud/app"
	"serverless-crud/database"
	"serverless-crud/handlers"
	"serverless-crud/models"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary sqlite database and returns an app wired to it
func setupTestDB(t *testing.T) (*app.App, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "serverless-crud-test-*")
	require.NoError(t, err, "Failed to create temp directory")

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	factory := database.NewFactory(database.Options{
		Kind: database.KindSQLite,
		Path: filepath.Join(tmpDir, "test.db"),
	}, logger)

	repo, err := database.NewUserRepository(factory, "users")
	require.NoError(t, err)

	application := app.New(repo, logger)

	cleanup := func() {
		factory.Close()
		os.RemoveAll(tmpDir)
	}

	return application, cleanup
}

func invoke(t *testing.T, h handlers.Handler, event events.APIGatewayProxyRequest) models.Response {
	t.Helper()
	response, err := h(context.Background(), event)
	require.NoError(t, err)
	return response
}

func TestUsersEndToEnd(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()

	createTable := handlers.CreateTable(application)
	getAll := handlers.GetAllItems(application)
	getByID := handlers.GetByID(application)
	create := handlers.CreateItem(application)
	update := handlers.UpdateItem(application)
	remove := handlers.DeleteItem(application)

	t.Run("Create table twice", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			response := invoke(t, createTable, events.APIGatewayProxyRequest{HTTPMethod: "GET"})
			assert.Equal(t, models.Response{StatusCode: 201, Body: "{}"}, response)
		}
	})

	t.Run("Empty table lists as []", func(t *testing.T) {
		response := invoke(t, getAll, events.APIGatewayProxyRequest{HTTPMethod: "GET"})
		assert.Equal(t, models.Response{StatusCode: 200, Body: "[]"}, response)
	})

	var userID int64

	t.Run("Create then read back", func(t *testing.T) {
		response := invoke(t, create, events.APIGatewayProxyRequest{
			HTTPMethod: "POST",
			Body:       `{"name":"John Doe"}`,
		})
		require.Equal(t, 201, response.StatusCode, response.Error)

		var created models.CreatedUser
		require.NoError(t, json.Unmarshal([]byte(response.Body), &created))
		userID = created.UserID
		assert.Equal(t, `{"userId":`+strconv.FormatInt(userID, 10)+`}`, response.Body)

		response = invoke(t, getByID, events.APIGatewayProxyRequest{
			HTTPMethod:     "GET",
			PathParameters: map[string]string{"id": strconv.FormatInt(userID, 10)},
		})
		assert.Equal(t, 200, response.StatusCode)
		assert.Equal(t, `{"id":`+strconv.FormatInt(userID, 10)+`,"name":"John Doe"}`, response.Body)
	})

	t.Run("Update is reflected by getById", func(t *testing.T) {
		id := strconv.FormatInt(userID, 10)

		response := invoke(t, update, events.APIGatewayProxyRequest{
			HTTPMethod:     "PUT",
			PathParameters: map[string]string{"id": id},
			Body:           `{"name":"Jane Doe"}`,
		})
		assert.Equal(t, models.Response{StatusCode: 200, Body: "{}"}, response)

		response = invoke(t, getByID, events.APIGatewayProxyRequest{
			HTTPMethod:     "GET",
			PathParameters: map[string]string{"id": id},
		})
		assert.JSONEq(t, `{"id":`+id+`,"name":"Jane Doe"}`, response.Body)
	})

	t.Run("Update and delete of a missing id succeed without effect", func(t *testing.T) {
		response := invoke(t, update, events.APIGatewayProxyRequest{
			HTTPMethod:     "PUT",
			PathParameters: map[string]string{"id": "999"},
			Body:           `{"name":"Nobody"}`,
		})
		assert.Equal(t, 200, response.StatusCode)

		response = invoke(t, remove, events.APIGatewayProxyRequest{
			HTTPMethod:     "DELETE",
			PathParameters: map[string]string{"id": "999"},
		})
		assert.Equal(t, 200, response.StatusCode)

		response = invoke(t, getAll, events.APIGatewayProxyRequest{HTTPMethod: "GET"})
		var users []models.User
		require.NoError(t, json.Unmarshal([]byte(response.Body), &users))
		assert.Len(t, users, 1)
	})

	t.Run("Delete then getById is empty", func(t *testing.T) {
		id := strconv.FormatInt(userID, 10)

		response := invoke(t, remove, events.APIGatewayProxyRequest{
			HTTPMethod:     "DELETE",
			PathParameters: map[string]string{"id": id},
		})
		assert.Equal(t, 200, response.StatusCode)

		response = invoke(t, getByID, events.APIGatewayProxyRequest{
			HTTPMethod:     "GET",
			PathParameters: map[string]string{"id": id},
		})
		assert.Equal(t, models.Response{StatusCode: 200, Body: "{}"}, response)
	})
}

func TestHandlersBeforeCreateTable(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()

	response := invoke(t, handlers.GetAllItems(application), events.APIGatewayProxyRequest{HTTPMethod: "GET"})

	assert.Equal(t, 500, response.StatusCode)
	assert.Equal(t, "{}", response.Body)
	assert.Contains(t, response.Error, "no such table")
}

func TestHandlersWithUnsupportedBackend(t *testing.T) {
	factory := database.NewFactory(database.Options{Kind: database.KindDynamoDB}, nil)
	repo, err := database.NewUserRepository(factory, "users")
	require.NoError(t, err)

	application := app.New(repo, nil)

	response := invoke(t, handlers.GetAllItems(application), events.APIGatewayProxyRequest{HTTPMethod: "GET"})

	assert.Equal(t, 500, response.StatusCode)
	assert.Contains(t, response.Error, database.ErrBackendNotSupported.Error())
}
