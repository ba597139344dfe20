package setup

import (
	"errors"

	"serverless-crud/app"
	"serverless-crud/handlers"
	"serverless-crud/middleware"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes exposes the users handlers over HTTP for local development
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	fiberApp.Get("/create-users-table", Gateway(handlers.CreateTable(application)))

	users := fiberApp.Group("/users")
	users.Get("/", Gateway(handlers.GetAllItems(application)))
	users.Post("/", Gateway(handlers.CreateItem(application)))
	users.Get("/:id", Gateway(handlers.GetByID(application)))
	users.Put("/:id", Gateway(handlers.UpdateItem(application)))
	users.Delete("/:id", Gateway(handlers.DeleteItem(application)))
}

// Gateway invokes h with the event API Gateway would have built for this request
// and writes the returned envelope back as the HTTP response.
func Gateway(h handlers.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		response, err := h(c.UserContext(), proxyRequest(c))
		if err != nil {
			var methodErr *handlers.MethodError
			if errors.As(err, &methodErr) {
				return fiber.NewError(fiber.StatusMethodNotAllowed, methodErr.Error())
			}
			return err
		}

		c.Status(response.StatusCode)
		if response.Error != "" {
			return c.JSON(fiber.Map{"error": response.Error})
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(response.Body)
	}
}

func proxyRequest(c *fiber.Ctx) events.APIGatewayProxyRequest {
	headers := make(map[string]string)
	multiHeaders := c.GetReqHeaders()
	for k, v := range multiHeaders {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	return events.APIGatewayProxyRequest{
		Resource:              c.Route().Path,
		Path:                  c.Path(),
		HTTPMethod:            c.Method(),
		Headers:               headers,
		MultiValueHeaders:     multiHeaders,
		QueryStringParameters: c.Queries(),
		PathParameters:        c.AllParams(),
		Body:                  string(c.Body()),
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:  middleware.GetRequestID(c),
			Stage:      "local",
			Path:       c.Path(),
			HTTPMethod: c.Method(),
			Protocol:   c.Protocol(),
		},
	}
}
