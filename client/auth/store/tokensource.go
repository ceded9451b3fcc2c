package store

import (
	"context"
	"errors"

	"golang.org/x/oauth2"
)

// ErrNoSession is returned by a token source when the store is empty.
var ErrNoSession = errors.New("no session")

type tokenSource struct {
	ctx   context.Context
	store Store
}

// Token returns the current access token. It never refreshes; rotation is the
// gateway's job.
func (t *tokenSource) Token() (*oauth2.Token, error) {
	session, ok, err := t.store.Read(t.ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoSession
	}
	return session.Token(), nil
}

// TokenSource adapts a store to oauth2.TokenSource
func TokenSource(ctx context.Context, store Store) oauth2.TokenSource {
	return &tokenSource{ctx: ctx, store: store}
}
