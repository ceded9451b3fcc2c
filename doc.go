// Package edulearn provides the high-level entry point of the EduLearn client.
//
// NewClient wires the pieces found in the sub-packages together: a session
// store (client/auth/store), the authenticated request gateway
// (client/auth/transport), the password flow (client/auth/flow) and the typed
// REST client (client).
//
// Example:
//
//	cli, _ := edulearn.NewClient(ctx, &edulearn.ClientOptions{URL: "http://127.0.0.1:8000/api/v1/", Store: "memory://"})
//	_ = cli.Auth.Login(ctx, "student@edulearn.dev", "secret")
//	courses, _ := cli.API.MyCourses(ctx, "")
//
// Once the refresh token is rejected every API call fails with an error
// matching transport.ErrSessionExpired and the stored session is gone.
package edulearn
