// Package client contains the client-side transport and local storage
// bootstrap of diarykeeper.
//
// Client is the transport-agnostic contract to the journal backend:
// registration and login, profile reads and updates, entry creation and
// presigned upload slots. GRPCClient implements it over gRPC, injecting the
// access token via an interceptor and mapping status codes to ErrUnauthorized
// and ErrUnavailable.
//
// InitDatabase opens the local SQLite store and applies the embedded goose
// migrations.
package client
