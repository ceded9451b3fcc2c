package cli

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/edulearn/client/auth/flow"
	"github.com/viant/edulearn/client/auth/mock"
)

type harness struct {
	t       *testing.T
	service *mock.Service
	global  []string
}

func newHarness(t *testing.T, options ...mock.Option) *harness {
	t.Setenv("EDULEARN_PASSWORD", "")
	service := mock.New(options...)
	server := httptest.NewServer(service.Handler())
	t.Cleanup(server.Close)
	return &harness{
		t:       t,
		service: service,
		global: []string{
			"--env=",
			"--url", server.URL + "/api/v1/",
			"--store", filepath.Join(t.TempDir(), "session.json"),
			"--log-level", "error",
		},
	}
}

func (h *harness) run(stdin string, args ...string) (string, error) {
	out := &bytes.Buffer{}
	err := RunWithIO(context.Background(), append(append([]string{}, h.global...), args...), strings.NewReader(stdin), out)
	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run("", args...)
	require.NoError(h.t, err, strings.Join(args, " "))
	return out
}

func TestRun_Session(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.mustRun("status"), "not logged in")
	_, err := h.run("", "login", "-e", mock.DemoEmail, "-p", "wrong")
	assert.ErrorIs(t, err, flow.ErrInvalidCredentials)

	out, err := h.run(mock.DemoPassword+"\n", "login", "-e", mock.DemoEmail)
	require.NoError(t, err)
	assert.Contains(t, out, "logged in as Ada Lovelace")
	assert.Contains(t, h.mustRun("status"), "access token expires")
	assert.Contains(t, h.mustRun("status", "--verify"), "access token verified")

	h.service.ExpireAccessTokens()
	assert.Contains(t, h.mustRun("status", "--verify"), "access token rejected")
	assert.Contains(t, h.mustRun("whoami"), "Ada Lovelace <student@edulearn.dev>")

	h.service.ExpireAccessTokens()
	h.service.RevokeRefreshTokens()
	_, err = h.run("", "whoami")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginRequired)
	assert.Contains(t, err.Error(), "edulearn login")
	assert.Contains(t, h.mustRun("status"), "not logged in")
}

func TestRun_StatusExpiredToken(t *testing.T) {
	h := newHarness(t, mock.WithAccessTTL(5*time.Second))
	h.mustRun("login", "-e", mock.DemoEmail, "-p", mock.DemoPassword)

	assert.Contains(t, h.mustRun("status"), "access token expired")
	assert.Contains(t, h.mustRun("whoami"), "Ada Lovelace")
}

func TestRun_Learning(t *testing.T) {
	h := newHarness(t)
	h.mustRun("login", "-e", mock.DemoEmail, "-p", mock.DemoPassword)

	assert.Contains(t, h.mustRun("courses"), "go-fundamentals")
	assert.NotContains(t, h.mustRun("courses", "--level", "intermediate"), "go-fundamentals")
	assert.Contains(t, h.mustRun("course", "go-fundamentals"), "Use goroutines and channels")
	assert.Contains(t, h.mustRun("lessons", "go-fundamentals"), "hello-go")
	assert.Contains(t, h.mustRun("enroll", "go-fundamentals"), "enrolled in go-fundamentals")
	assert.Contains(t, h.mustRun("my-courses"), "Go Fundamentals")
	assert.Contains(t, h.mustRun("complete", "go-fundamentals", "hello-go"), "course progress: 33%")
	assert.Contains(t, h.mustRun("progress"), "Go Fundamentals")
	assert.Contains(t, h.mustRun("recommend"), "machine-learning-basics")
	assert.Contains(t, h.mustRun("chat", "what", "is", "a", "goroutine"), `"what is a goroutine"`)

	_, err := h.run("", "enroll", "go-fundamentals")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already enrolled")

	assert.Contains(t, h.mustRun("logout"), "logged out")
	_, err = h.run("", "whoami")
	assert.ErrorIs(t, err, ErrLoginRequired)
}

func TestRun_Register(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun("register", "-e", "grace@edulearn.dev", "-n", "grace", "-p", "cobol-1959", "--first-name", "Grace")
	assert.Contains(t, out, "registered grace")
	assert.Contains(t, h.mustRun("login", "-e", "grace@edulearn.dev", "-p", "cobol-1959"), "logged in as Grace")
}

func TestRun_InvalidArgs(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("", "unknown-command")
	assert.Error(t, err)
	_, err = h.run("", "course")
	assert.Error(t, err)
	_, err = h.run("")
	assert.Error(t, err)
}
