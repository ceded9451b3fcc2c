// Package client implements a typed Go client for the EduLearn REST API.
//
// The client itself is unaware of tokens: authentication is the job of the
// http.RoundTripper it is built with, normally a transport.RoundTripper from
// the auth/transport sub-package which attaches the access token and refreshes
// it once on a 401 response.
//
// Example:
//
//	gateway, _ := transport.New(transport.WithStore(aStore), transport.WithRefreshURL(refreshURL))
//	cli := client.New("http://127.0.0.1:8000/api/v1/", client.WithTransport(gateway))
//	courses, err := cli.ListCourses(ctx, nil)
//
// Non-2xx responses are returned as *HTTPError. When the session can no
// longer be refreshed the returned error matches transport.ErrSessionExpired.
package client
