package models

// User is a row of the users table. The id is assigned by the store.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserRequest is the JSON body accepted by the create and update handlers.
type UserRequest struct {
	Name string `json:"name" validate:"required,notblank,max=255"`
}

// CreatedUser is the body returned after a successful create.
type CreatedUser struct {
	UserID int64 `json:"userId"`
}

// Response is the envelope every users handler returns. Body is always JSON text.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
	Error      string `json:"error,omitempty"`
}

// EmptyBody is the JSON encoding of an empty payload.
const EmptyBody = "{}"
