package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/viant/edulearn/client/auth/store"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// phase tracks how many times a call has been dispatched; a call is replayed
// at most once.
type phase int

const (
	initialPhase phase = iota
	retriedPhase
)

// sharedRefreshTimeout bounds a shared refresh, which does not follow any caller's context.
const sharedRefreshTimeout = 30 * time.Second

type RoundTripper struct {
	store         store.Store
	refresher     Refresher
	refreshURL    string
	transport     http.RoundTripper
	logger        *zap.SugaredLogger
	onExpired     func(ctx context.Context)
	sharedRefresh bool
	group         singleflight.Group
}

func New(options ...Option) (*RoundTripper, error) {
	ret := &RoundTripper{
		transport: http.DefaultTransport,
		store:     store.NewMemoryStore(),
		logger:    zap.NewNop().Sugar(),
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.refresher == nil {
		if ret.refreshURL == "" {
			return nil, errors.New("refresher or refresh URL is required")
		}
		// the refresh call bypasses this round tripper
		ret.refresher = NewRefresher(ret.refreshURL, &http.Client{Transport: ret.transport})
	}
	return ret, nil
}

func (r *RoundTripper) Store() store.Store {
	return r.store
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	body, err := readBody(req)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	requestID := req.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = getRequestID(ctx)
	}
	session, ok, err := r.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	var accessToken string
	if ok {
		accessToken = session.AccessToken
	}
	return r.send(ctx, req, body, requestID, accessToken, initialPhase)
}

func (r *RoundTripper) send(ctx context.Context, req *http.Request, body []byte, requestID, accessToken string, attempt phase) (*http.Response, error) {
	outbound := clone(req, body)
	outbound.Header.Set(RequestIDHeader, requestID)
	if accessToken != "" {
		outbound.Header.Set("Authorization", "Bearer "+accessToken)
	}
	resp, err := r.transport.RoundTrip(outbound)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	discard(resp)
	if attempt == retriedPhase {
		return nil, r.expire(ctx, requestID, errRetryUnauthorized)
	}

	session, ok, err := r.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if !ok {
		return nil, r.expire(ctx, requestID, ErrNoRefreshToken)
	}
	r.logger.Debugw("access token rejected, refreshing", "requestID", requestID, "method", req.Method, "url", req.URL.String())
	refreshed, err := r.refresh(ctx, session.RefreshToken)
	if err != nil {
		// an abandoned call says nothing about the refresh token
		if ctxErr := ctx.Err(); ctxErr != nil {
			r.logger.Debugw("refresh abandoned", "requestID", requestID, "error", err)
			return nil, ctxErr
		}
		return nil, r.expire(ctx, requestID, err)
	}
	if err = r.store.Save(ctx, refreshed, session.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to save refreshed session: %w", err)
	}
	return r.send(ctx, req, body, requestID, refreshed, retriedPhase)
}

func (r *RoundTripper) refresh(ctx context.Context, refreshToken string) (string, error) {
	if !r.sharedRefresh {
		return r.refresher.Refresh(ctx, refreshToken)
	}
	// the flight outlives any single caller; each caller waits on its own context
	flight := r.group.DoChan(refreshToken, func() (interface{}, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedRefreshTimeout)
		defer cancel()
		return r.refresher.Refresh(flightCtx, refreshToken)
	})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result := <-flight:
		if result.Err != nil {
			return "", result.Err
		}
		if result.Shared {
			r.logger.Debugw("shared access token refresh")
		}
		return result.Val.(string), nil
	}
}

// expire clears the session after a terminal authentication failure.
func (r *RoundTripper) expire(ctx context.Context, requestID string, cause error) error {
	r.logger.Warnw("session expired", "requestID", requestID, "cause", cause.Error())
	if err := r.store.Clear(ctx); err != nil {
		r.logger.Errorw("failed to clear session", "requestID", requestID, "error", err)
	}
	if r.onExpired != nil {
		r.onExpired(ctx)
	}
	return fmt.Errorf("%w: %w", ErrSessionExpired, cause)
}
