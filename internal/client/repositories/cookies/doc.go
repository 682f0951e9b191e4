// Package cookies persists the HTTP cookies the API hands out, so an
// existing server session survives a client restart the way it does in a
// browser. Values are stored verbatim and never interpreted.
//
// Repository is the row-level contract with a SQLite implementation;
// Store groups writes into transactions for the cookie jar.
package cookies
