// Package client talks to the remote authentication API.
//
// # Overview
//
//  1. Client is the transport-agnostic contract the session store uses:
//     Me, Login, Register, UpdateUser, DeleteUser, Logout.
//  2. HTTPClient implements it with JSON over HTTP. Requests are
//     credential-bearing: the session cookie travels in the cookie jar and is
//     never read by this package.
//  3. PersistentJar keeps the jar's cookies in SQLite between runs, and
//     InitDatabase/RunMigrations prepare that database.
//
// # Responses
//
// Successful user responses may be a bare user object or a {"user": {...}}
// envelope. Both are normalized here so callers only ever see models.User.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx responses become *APIError,
// carrying the server's message and field errors when the body had them.
// A 401 APIError matches ErrUnauthorized with errors.Is.
//
// No call is retried and no client-side timeout is applied; callers bound
// calls with their context.
package client
