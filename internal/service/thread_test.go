package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonbb/anonbb/internal/config"
	"github.com/anonbb/anonbb/internal/domain"
	internal_errors "github.com/anonbb/anonbb/internal/errors"
)

// --- Mocks ---

// fakeGuard is a deterministic stand-in for the bcrypt guard.
type fakeGuard struct {
	hashFunc   func(password string) (string, error)
	verifyFunc func(password, hash string) bool
}

func (g *fakeGuard) Hash(password string) (string, error) {
	if g.hashFunc != nil {
		return g.hashFunc(password)
	}
	return "hashed:" + password, nil
}

func (g *fakeGuard) Verify(password, hash string) bool {
	if g.verifyFunc != nil {
		return g.verifyFunc(password, hash)
	}
	return "hashed:"+password == hash
}

// MockThreadStorage mocks the ThreadStorage interface.
type MockThreadStorage struct {
	createThreadFunc  func(board domain.BoardName, thread domain.Thread) error
	getThreadFunc     func(board domain.BoardName, id domain.ThreadId) (domain.Thread, error)
	recentThreadsFunc func(board domain.BoardName, limit int) ([]domain.Thread, error)
	deleteThreadFunc  func(board domain.BoardName, id domain.ThreadId) error
	reportThreadFunc  func(board domain.BoardName, id domain.ThreadId) error

	deleteCalled bool
	reportCalled bool
}

func (m *MockThreadStorage) CreateThread(board domain.BoardName, thread domain.Thread) error {
	if m.createThreadFunc != nil {
		return m.createThreadFunc(board, thread)
	}
	return nil
}

func (m *MockThreadStorage) GetThread(board domain.BoardName, id domain.ThreadId) (domain.Thread, error) {
	if m.getThreadFunc != nil {
		return m.getThreadFunc(board, id)
	}
	return domain.Thread{Id: id}, nil
}

func (m *MockThreadStorage) RecentThreads(board domain.BoardName, limit int) ([]domain.Thread, error) {
	if m.recentThreadsFunc != nil {
		return m.recentThreadsFunc(board, limit)
	}
	return nil, nil
}

func (m *MockThreadStorage) DeleteThread(board domain.BoardName, id domain.ThreadId) error {
	m.deleteCalled = true
	if m.deleteThreadFunc != nil {
		return m.deleteThreadFunc(board, id)
	}
	return nil
}

func (m *MockThreadStorage) ReportThread(board domain.BoardName, id domain.ThreadId) error {
	m.reportCalled = true
	if m.reportThreadFunc != nil {
		return m.reportThreadFunc(board, id)
	}
	return nil
}

func testPublicConfig() config.Public {
	return config.Public{RecentThreads: 10, TailReplies: 3}
}

// --- Tests ---

func TestThreadCreate(t *testing.T) {
	creation := domain.ThreadCreationData{Board: "b", Text: "hello", DeletePassword: "pw"}

	t.Run("successful creation", func(t *testing.T) {
		storage := &MockThreadStorage{}
		service := NewThread(storage, &fakeGuard{}, testPublicConfig())
		var stored domain.Thread
		storage.createThreadFunc = func(board domain.BoardName, thread domain.Thread) error {
			assert.Equal(t, "b", board)
			stored = thread
			return nil
		}

		created, err := service.Create(creation)

		require.NoError(t, err)
		assert.Equal(t, stored, created)
		assert.NotEmpty(t, created.Id)
		assert.Equal(t, "hello", created.Text)
		assert.Equal(t, "hashed:pw", created.DeletePasswordHash)
		assert.True(t, created.BumpedOn.Equal(created.CreatedOn), "bump time starts at creation time")
		assert.False(t, created.Reported)
		assert.Empty(t, created.Replies)
		assert.WithinDuration(t, time.Now().UTC(), created.CreatedOn, 5*time.Second)
	})

	t.Run("html is stripped from text", func(t *testing.T) {
		storage := &MockThreadStorage{}
		service := NewThread(storage, &fakeGuard{}, testPublicConfig())

		created, err := service.Create(domain.ThreadCreationData{Board: "b", Text: "<script>x</script>hi", DeletePassword: "pw"})

		require.NoError(t, err)
		assert.Equal(t, "hi", created.Text)
	})

	t.Run("markup-only text is rejected", func(t *testing.T) {
		storage := &MockThreadStorage{}
		createCalled := false
		storage.createThreadFunc = func(domain.BoardName, domain.Thread) error {
			createCalled = true
			return nil
		}
		service := NewThread(storage, &fakeGuard{}, testPublicConfig())

		_, err := service.Create(domain.ThreadCreationData{Board: "b", Text: "<b></b>", DeletePassword: "pw"})

		require.Error(t, err)
		assert.True(t, internal_errors.IsValidation(err))
		assert.Equal(t, "invalid text", err.Error())
		assert.False(t, createCalled, "an empty-text thread must never be persisted")
	})

	t.Run("entity characters round-trip unchanged", func(t *testing.T) {
		storage := &MockThreadStorage{}
		service := NewThread(storage, &fakeGuard{}, testPublicConfig())

		created, err := service.Create(domain.ThreadCreationData{Board: "b", Text: "Tom & Jerry", DeletePassword: "pw"})

		require.NoError(t, err)
		assert.Equal(t, "Tom & Jerry", created.Text)
	})

	t.Run("hash error aborts before storage", func(t *testing.T) {
		storage := &MockThreadStorage{}
		hashErr := errors.New("hash failed")
		guard := &fakeGuard{hashFunc: func(string) (string, error) { return "", hashErr }}
		service := NewThread(storage, guard, testPublicConfig())
		createCalled := false
		storage.createThreadFunc = func(domain.BoardName, domain.Thread) error {
			createCalled = true
			return nil
		}

		_, err := service.Create(creation)

		require.Error(t, err)
		assert.True(t, errors.Is(err, hashErr))
		assert.False(t, createCalled, "storage must not be touched when hashing fails")
	})

	t.Run("storage error propagates", func(t *testing.T) {
		storage := &MockThreadStorage{}
		storageErr := errors.New("db connection lost")
		storage.createThreadFunc = func(domain.BoardName, domain.Thread) error { return storageErr }
		service := NewThread(storage, &fakeGuard{}, testPublicConfig())

		_, err := service.Create(creation)

		require.Error(t, err)
		assert.True(t, errors.Is(err, storageErr))
	})
}

func TestThreadRecent(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	fullThread := domain.Thread{
		Id:                 "t1",
		Text:               "op",
		CreatedOn:          base,
		BumpedOn:           base.Add(5 * time.Minute),
		DeletePasswordHash: "secret",
		Reported:           true,
		ReplyCount:         5,
		Replies: []domain.Reply{
			{Id: "r1", CreatedOn: base.Add(1 * time.Minute), DeletePasswordHash: "h1"},
			{Id: "r2", CreatedOn: base.Add(2 * time.Minute), DeletePasswordHash: "h2"},
			{Id: "r3", CreatedOn: base.Add(3 * time.Minute), DeletePasswordHash: "h3"},
			{Id: "r4", CreatedOn: base.Add(4 * time.Minute), DeletePasswordHash: "h4"},
			{Id: "r5", CreatedOn: base.Add(5 * time.Minute), DeletePasswordHash: "h5"},
		},
	}

	t.Run("strips moderation fields and truncates replies", func(t *testing.T) {
		storage := &MockThreadStorage{}
		storage.recentThreadsFunc = func(board domain.BoardName, limit int) ([]domain.Thread, error) {
			assert.Equal(t, "b", board)
			assert.Equal(t, 10, limit, "listing limit comes from config")
			return []domain.Thread{fullThread}, nil
		}
		service := NewThread(storage, &fakeGuard{}, testPublicConfig())

		threads, err := service.Recent("b")

		require.NoError(t, err)
		require.Len(t, threads, 1)
		got := threads[0]
		assert.Empty(t, got.DeletePasswordHash)
		assert.False(t, got.Reported)
		require.Len(t, got.Replies, 3, "replies cut to configured tail")
		assert.Equal(t, "r3", got.Replies[0].Id)
		assert.Equal(t, "r5", got.Replies[2].Id)
		for _, r := range got.Replies {
			assert.Empty(t, r.DeletePasswordHash)
			assert.False(t, r.Reported)
		}
		assert.Equal(t, 5, got.ReplyCount, "true reply total survives truncation")
	})

	t.Run("storage error propagates", func(t *testing.T) {
		storage := &MockThreadStorage{}
		storageErr := errors.New("query failed")
		storage.recentThreadsFunc = func(domain.BoardName, int) ([]domain.Thread, error) { return nil, storageErr }
		service := NewThread(storage, &fakeGuard{}, testPublicConfig())

		_, err := service.Recent("b")

		require.Error(t, err)
		assert.True(t, errors.Is(err, storageErr))
	})
}

func TestThreadGet(t *testing.T) {
	t.Run("returns redacted thread", func(t *testing.T) {
		storage := &MockThreadStorage{}
		storage.getThreadFunc = func(board domain.BoardName, id domain.ThreadId) (domain.Thread, error) {
			return domain.Thread{
				Id:                 id,
				DeletePasswordHash: "secret",
				Reported:           true,
				Replies:            []domain.Reply{{Id: "r1", DeletePasswordHash: "rh", Reported: true}},
			}, nil
		}
		service := NewThread(storage, &fakeGuard{}, testPublicConfig())

		thread, err := service.Get("b", "t1")

		require.NoError(t, err)
		assert.Empty(t, thread.DeletePasswordHash)
		assert.False(t, thread.Reported)
		require.Len(t, thread.Replies, 1, "full get keeps all replies")
		assert.Empty(t, thread.Replies[0].DeletePasswordHash)
		assert.False(t, thread.Replies[0].Reported)
	})

	t.Run("not found propagates", func(t *testing.T) {
		storage := &MockThreadStorage{}
		storage.getThreadFunc = func(board domain.BoardName, id domain.ThreadId) (domain.Thread, error) {
			return domain.Thread{}, internal_errors.NotFound("thread", id)
		}
		service := NewThread(storage, &fakeGuard{}, testPublicConfig())

		_, err := service.Get("b", "missing")

		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}

func TestThreadDelete(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		storage := &MockThreadStorage{}
		storage.getThreadFunc = func(board domain.BoardName, id domain.ThreadId) (domain.Thread, error) {
			return domain.Thread{Id: id, DeletePasswordHash: "hashed:pw"}, nil
		}
		service := NewThread(storage, &fakeGuard{}, testPublicConfig())

		err := service.Delete("b", "t1", "pw")

		require.NoError(t, err)
		assert.True(t, storage.deleteCalled)
	})

	t.Run("wrong password is forbidden", func(t *testing.T) {
		storage := &MockThreadStorage{}
		storage.getThreadFunc = func(board domain.BoardName, id domain.ThreadId) (domain.Thread, error) {
			return domain.Thread{Id: id, DeletePasswordHash: "hashed:pw"}, nil
		}
		service := NewThread(storage, &fakeGuard{}, testPublicConfig())

		err := service.Delete("b", "t1", "wrong")

		require.Error(t, err)
		assert.True(t, internal_errors.IsForbidden(err))
		assert.Equal(t, "incorrect password", err.Error())
		assert.False(t, storage.deleteCalled, "nothing is deleted on a failed password check")
	})

	t.Run("missing thread is not found", func(t *testing.T) {
		storage := &MockThreadStorage{}
		storage.getThreadFunc = func(board domain.BoardName, id domain.ThreadId) (domain.Thread, error) {
			return domain.Thread{}, internal_errors.NotFound("thread", id)
		}
		verifyCalled := false
		guard := &fakeGuard{verifyFunc: func(string, string) bool {
			verifyCalled = true
			return true
		}}
		service := NewThread(storage, guard, testPublicConfig())

		err := service.Delete("b", "missing", "pw")

		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
		assert.False(t, verifyCalled)
		assert.False(t, storage.deleteCalled)
	})
}

func TestThreadReport(t *testing.T) {
	t.Run("delegates to storage", func(t *testing.T) {
		storage := &MockThreadStorage{}
		storage.reportThreadFunc = func(board domain.BoardName, id domain.ThreadId) error {
			assert.Equal(t, "b", board)
			assert.Equal(t, "t1", id)
			return nil
		}
		service := NewThread(storage, &fakeGuard{}, testPublicConfig())

		err := service.Report("b", "t1")

		require.NoError(t, err)
		assert.True(t, storage.reportCalled)
	})

	t.Run("not found propagates", func(t *testing.T) {
		storage := &MockThreadStorage{}
		storage.reportThreadFunc = func(board domain.BoardName, id domain.ThreadId) error {
			return internal_errors.NotFound("thread", id)
		}
		service := NewThread(storage, &fakeGuard{}, testPublicConfig())

		err := service.Report("b", "missing")

		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}
