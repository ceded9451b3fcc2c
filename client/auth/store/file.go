package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// FileStore persists the session as a JSON document with two named entries
// (access_token, refresh_token). The location is any afs URL, a plain path
// resolves to the local file system.
type FileStore struct {
	mu  sync.RWMutex
	URL string
	fs  afs.Service
}

// NewFileStore creates a Store that persists the session at the given URL.
func NewFileStore(URL string) *FileStore {
	return &FileStore{URL: URL, fs: afs.New()}
}

func (f *FileStore) Save(ctx context.Context, accessToken, refreshToken string) error {
	session, err := NewSession(accessToken, refreshToken)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err = f.replace(ctx, data); err != nil {
		return fmt.Errorf("failed to save session %v: %w", f.URL, err)
	}
	return nil
}

// replace writes data next to the session and moves it over the session, so
// readers in other processes see either the old or the new document.
func (f *FileStore) replace(ctx context.Context, data []byte) error {
	tmp := f.URL + "." + uuid.NewString() + ".tmp"
	if err := f.fs.Upload(ctx, tmp, 0o600, bytes.NewReader(data)); err != nil {
		return err
	}
	var err error
	if url.Scheme(f.URL, file.Scheme) == file.Scheme {
		// afs Move removes the destination before renaming
		err = os.Rename(file.Path(tmp), file.Path(f.URL))
	} else {
		err = f.fs.Move(ctx, tmp, f.URL)
	}
	if err != nil {
		_ = f.fs.Delete(ctx, tmp)
	}
	return err
}

func (f *FileStore) Read(ctx context.Context) (*Session, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check session %v: %w", f.URL, err)
	}
	if !exists {
		return nil, false, nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load session %v: %w", f.URL, err)
	}
	session := &Session{}
	if err = json.Unmarshal(data, session); err != nil {
		return nil, false, fmt.Errorf("invalid session %v: %w", f.URL, err)
	}
	// a document holding only one token is treated as no session
	if session.AccessToken == "" || session.RefreshToken == "" {
		return nil, false, nil
	}
	return session, true, nil
}

func (f *FileStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil || !exists {
		return err
	}
	return f.fs.Delete(ctx, f.URL)
}
