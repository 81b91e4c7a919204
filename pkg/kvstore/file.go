package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 10 * time.Millisecond

// FileBackend stores every key in one JSON object on disk. An advisory file lock
// keeps a write from tearing a concurrent read; it does not order writers, so
// two processes still resolve to whichever wrote last.
type FileBackend struct {
	path string
	mu   sync.Mutex
	lock *flock.Flock
}

func NewFileBackend(path string) (*FileBackend, error) {
	if path == "" {
		return nil, errors.New("storage file path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FileBackend{
		path: path,
		lock: flock.New(path + ".lock"),
	}, nil
}

func (f *FileBackend) Path() string {
	return f.path
}

func (f *FileBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var (
		value []byte
		found bool
	)
	err := f.withLock(ctx, false, func() error {
		doc, err := f.read()
		if err != nil {
			return err
		}
		raw, ok := doc[key]
		value, found = raw, ok
		return nil
	})
	return value, found, err
}

func (f *FileBackend) Set(ctx context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("value for %q is not valid json", key)
	}
	return f.withLock(ctx, true, func() error {
		doc, err := f.read()
		if err != nil {
			// A corrupt document is replaced rather than blocking every write.
			doc = map[string]json.RawMessage{}
		}
		doc[key] = json.RawMessage(value)
		return f.write(doc)
	})
}

func (f *FileBackend) Delete(ctx context.Context, keys ...string) error {
	return f.withLock(ctx, true, func() error {
		doc, err := f.read()
		if err != nil {
			return err
		}
		for _, key := range keys {
			delete(doc, key)
		}
		return f.write(doc)
	})
}

func (f *FileBackend) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := f.withLock(ctx, false, func() error {
		doc, err := f.read()
		if err != nil {
			return err
		}
		keys = make([]string, 0, len(doc))
		for key := range doc {
			keys = append(keys, key)
		}
		return nil
	})
	return keys, err
}

func (f *FileBackend) Ping(ctx context.Context) error {
	return f.withLock(ctx, false, func() error {
		_, err := os.Stat(filepath.Dir(f.path))
		return err
	})
}

func (f *FileBackend) Close() error {
	return nil
}

func (f *FileBackend) withLock(ctx context.Context, exclusive bool, fn func() error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var (
		ok  bool
		err error
	)
	if exclusive {
		ok, err = f.lock.TryLockContext(ctx, lockRetryDelay)
	} else {
		ok, err = f.lock.TryRLockContext(ctx, lockRetryDelay)
	}
	if err != nil {
		return fmt.Errorf("acquire storage lock: %w", err)
	}
	if !ok {
		return errors.New("storage lock not acquired")
	}
	defer func() { _ = f.lock.Unlock() }()

	return fn()
}

func (f *FileBackend) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read storage file: %w", err)
	}
	doc := map[string]json.RawMessage{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode storage file: %w", err)
	}
	return doc, nil
}

func (f *FileBackend) write(doc map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage file: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp storage file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write temp storage file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp storage file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace storage file: %w", err)
	}
	return nil
}
