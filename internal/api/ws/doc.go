// Package ws runs the interactive shell over WebSocket connections.
//
// Each connection binds a fresh shell to an existing navigation session:
// one text frame in is one command line, one JSON frame out is its
// output. Closing the connection leaves the session and its cursor
// intact.
package ws
