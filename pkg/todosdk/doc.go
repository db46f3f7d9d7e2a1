/*
Package todosdk is a Go client for the todo service.

A Client covers the public endpoints. Logging in returns a Session that
carries the bearer token for the authenticated ones:

	client := todosdk.NewClient("http://localhost:8080")

	if _, err := client.Register(ctx, todosdk.RegisterRequest{...}); err != nil {
		return err
	}

	session, err := client.Login(ctx, "jane@example.com", "Secret#1")
	if err != nil {
		return err
	}

	todo, err := session.CreateTodo(ctx, todosdk.CreateTodoRequest{Title: "Buy milk"})

Every non-success response is returned as an *APIError carrying the HTTP status
and the envelope message. Sessions do not refresh: once the token expires the
server answers 401 and the caller logs in again.

The request and response types double as the server's wire types, so the
envelope shape is defined exactly once.
*/
package todosdk
