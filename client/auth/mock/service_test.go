package mock

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/edulearn/schema"
)

func call(t *testing.T, server *httptest.Server, method, path, token string, body, out interface{}) int {
	t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req, err := http.NewRequest(method, server.URL+"/api/v1/"+path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestService_TokenLifecycle(t *testing.T) {
	service := New()
	server := httptest.NewServer(service.Handler())
	defer server.Close()

	pair := &schema.TokenPair{}
	status := call(t, server, http.MethodPost, "users/token/", "", &schema.Credentials{Email: DemoEmail, Password: DemoPassword}, pair)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	user := &schema.User{}
	assert.Equal(t, http.StatusOK, call(t, server, http.MethodGet, "users/me/", pair.Access, nil, user))
	assert.Equal(t, DemoEmail, user.Email)
	assert.Equal(t, http.StatusUnauthorized, call(t, server, http.MethodGet, "users/me/", "", nil, nil))

	service.ExpireAccessTokens()
	assert.Equal(t, http.StatusUnauthorized, call(t, server, http.MethodGet, "users/me/", pair.Access, nil, nil))
	assert.Equal(t, http.StatusUnauthorized, call(t, server, http.MethodPost, "users/token/verify/", "", map[string]string{"token": pair.Access}, nil))

	refreshed := map[string]string{}
	assert.Equal(t, http.StatusOK, call(t, server, http.MethodPost, "users/token/refresh/", "", map[string]string{"refresh": pair.Refresh}, &refreshed))
	assert.Equal(t, http.StatusOK, call(t, server, http.MethodGet, "users/me/", refreshed["access"], nil, nil))

	service.RevokeRefreshTokens()
	assert.Equal(t, http.StatusUnauthorized, call(t, server, http.MethodPost, "users/token/refresh/", "", map[string]string{"refresh": pair.Refresh}, nil))

	stats := service.Stats()
	assert.EqualValues(t, 1, stats.Logins)
	assert.EqualValues(t, 2, stats.Refreshes)
	assert.EqualValues(t, 1, stats.RejectedRefreshes)
	assert.EqualValues(t, 2, stats.Unauthorized)
}

func TestService_Login(t *testing.T) {
	server := httptest.NewServer(New().Handler())
	defer server.Close()

	testCases := []struct {
		description string
		credentials *schema.Credentials
		expect      int
	}{
		{description: "valid", credentials: &schema.Credentials{Email: InstructorEmail, Password: InstructorPassword}, expect: http.StatusOK},
		{description: "wrong password", credentials: &schema.Credentials{Email: DemoEmail, Password: "nope"}, expect: http.StatusUnauthorized},
		{description: "unknown account", credentials: &schema.Credentials{Email: "ghost@edulearn.dev", Password: "x"}, expect: http.StatusUnauthorized},
		{description: "missing fields", credentials: &schema.Credentials{}, expect: http.StatusBadRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expect, call(t, server, http.MethodPost, "users/token/", "", tc.credentials, nil))
		})
	}
}

func TestService_EnrollAndComplete(t *testing.T) {
	server := httptest.NewServer(New().Handler())
	defer server.Close()
	pair := &schema.TokenPair{}
	require.Equal(t, http.StatusOK, call(t, server, http.MethodPost, "users/token/", "", &schema.Credentials{Email: DemoEmail, Password: DemoPassword}, pair))

	assert.Equal(t, http.StatusBadRequest, call(t, server, http.MethodPost, "courses/go-fundamentals/lessons/types/mark_complete/", pair.Access, nil, nil))
	assert.Equal(t, http.StatusCreated, call(t, server, http.MethodPost, "courses/go-fundamentals/enroll/", pair.Access, nil, nil))
	assert.Equal(t, http.StatusBadRequest, call(t, server, http.MethodPost, "courses/go-fundamentals/enroll/", pair.Access, nil, nil))
	assert.Equal(t, http.StatusNotFound, call(t, server, http.MethodPost, "courses/unknown/enroll/", pair.Access, nil, nil))

	completion := &schema.LessonCompletion{}
	assert.Equal(t, http.StatusOK, call(t, server, http.MethodPost, "courses/go-fundamentals/lessons/types/mark_complete/", pair.Access, nil, completion))
	assert.InDelta(t, 33.33, completion.Progress, 0.01)

	result := &schema.QuizResult{}
	submission := &schema.QuizSubmission{QuizID: 1, TimeTaken: 60, Responses: []schema.QuestionResponse{
		{QuestionID: 1, AnswerIDs: []int{1}},
		{QuestionID: 2, AnswerIDs: []int{4}},
	}}
	assert.Equal(t, http.StatusOK, call(t, server, http.MethodPost, "courses/lessons/1/quizzes/1/submit/", pair.Access, submission, result))
	assert.EqualValues(t, 50, result.Score)
}

func TestService_Register(t *testing.T) {
	server := httptest.NewServer(New().Handler())
	defer server.Close()

	registration := func(email, password, confirm string) *schema.Registration {
		return &schema.Registration{Email: email, Username: "grace", Password: password, PasswordConfirm: confirm}
	}
	testCases := []struct {
		description  string
		registration *schema.Registration
		expect       int
	}{
		{description: "valid", registration: registration("grace@edulearn.dev", "cobol-1959", "cobol-1959"), expect: http.StatusCreated},
		{description: "existing email", registration: registration(DemoEmail, "cobol-1959", "cobol-1959"), expect: http.StatusBadRequest},
		{description: "confirmation mismatch", registration: registration("linus@edulearn.dev", "cobol-1959", "cobol"), expect: http.StatusBadRequest},
		{description: "password too long", registration: registration("ken@edulearn.dev", strings.Repeat("x", 80), strings.Repeat("x", 80)), expect: http.StatusBadRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expect, call(t, server, http.MethodPost, "users/", "", tc.registration, nil))
		})
	}
	assert.Equal(t, http.StatusOK, call(t, server, http.MethodPost, "users/token/", "", &schema.Credentials{Email: "grace@edulearn.dev", Password: "cobol-1959"}, nil))
}
