package service

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"blog-essentials/internal/client"
	"blog-essentials/internal/store"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockClient is a mock implementation of client.Client
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Get(ctx context.Context, path string) (*client.Response, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Response), args.Error(1)
}

func (m *MockClient) Post(ctx context.Context, path string, body interface{}) (*client.Response, error) {
	args := m.Called(ctx, path, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Response), args.Error(1)
}

// make sure MockClient implements client.Client
var _ client.Client = (*MockClient)(nil)

// make sure *store.Store satisfies StateStore
var _ StateStore = (*store.Store)(nil)

func jsonResponse(t *testing.T, v interface{}) *client.Response {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return &client.Response{Status: http.StatusOK, Data: data}
}

// countingStore records how often a full snapshot is taken.
type countingStore struct {
	*store.Store
	snapshots int32
}

func (c *countingStore) GetState() store.State {
	atomic.AddInt32(&c.snapshots, 1)
	return c.Store.GetState()
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(nil)
	t.Cleanup(s.Close)
	return s
}
