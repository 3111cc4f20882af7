package cli

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldpos/jrdclient/internal/client/api"
	"github.com/goldpos/jrdclient/internal/client/cache"
	"github.com/goldpos/jrdclient/internal/client/iocli"
	"github.com/goldpos/jrdclient/internal/client/mutate"
	"github.com/goldpos/jrdclient/internal/client/storage"
	"github.com/goldpos/jrdclient/internal/config"
)

// newSilentIO - IO мок, собирающий вывод в буфер
func newSilentIO() (*iocli.IOMock, *strings.Builder) {
	var out strings.Builder
	mock := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {},
		PrintfFunc:  func(format string, a ...any) {},
		WriteFunc: func(p []byte) (int, error) {
			return out.Write(p)
		},
	}
	return mock, &out
}

// fakeSessions - хранилище сессии в памяти
type fakeSessions struct {
	data *storage.SessionData
}

func (f *fakeSessions) SaveSession(_ context.Context, s *storage.SessionData) error {
	f.data = s
	return nil
}

func (f *fakeSessions) GetSession(_ context.Context) (*storage.SessionData, error) {
	if f.data == nil {
		return nil, storage.ErrSessionNotFound
	}
	return f.data, nil
}

func (f *fakeSessions) DeleteSession(_ context.Context) error {
	f.data = nil
	return nil
}

func TestCli_runStatus_NotAuthenticated(t *testing.T) {
	mockIO, _ := newSilentIO()
	c := &Cli{io: mockIO, sessions: &fakeSessions{}}

	require.NoError(t, c.runStatus(context.Background()))

	hasNotAuth := false
	for _, call := range mockIO.PrintlnCalls() {
		for _, arg := range call.A {
			if str, ok := arg.(string); ok && strings.Contains(str, "Not authenticated") {
				hasNotAuth = true
			}
		}
	}
	assert.True(t, hasNotAuth)
}

func TestCli_runStatus_Authenticated(t *testing.T) {
	mockIO, _ := newSilentIO()
	sessions := &fakeSessions{data: &storage.SessionData{
		Username: "cashier",
		Cookies:  []storage.SessionCookie{{Name: "sid", Value: "opaque"}},
		SavedAt:  1700000000000,
	}}
	c := &Cli{io: mockIO, sessions: sessions}

	require.NoError(t, c.runStatus(context.Background()))

	hasUsername := false
	for _, call := range mockIO.PrintfCalls() {
		if strings.Contains(call.Format, "Username") {
			hasUsername = true
			require.Len(t, call.A, 1)
			assert.Equal(t, "cashier", call.A[0])
		}
	}
	assert.True(t, hasUsername)
}

func TestCli_runLogin(t *testing.T) {
	var loginReq map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&loginReq))
		http.SetCookie(w, &http.Cookie{Name: "sid", Value: "abc"})
		_ = json.NewEncoder(w).Encode(map[string]string{"username": loginReq["username"]})
	}))
	defer server.Close()

	apiClient, err := api.NewClient(server.URL, slog.Default())
	require.NoError(t, err)

	mockIO, _ := newSilentIO()
	mockIO.ReadInputFunc = func(prompt string) (string, error) { return "cashier", nil }
	mockIO.ReadPasswordFunc = func(prompt string) (string, error) { return "secret", nil }

	var persisted string
	c := &Cli{
		apiClient: apiClient,
		io:        mockIO,
		persistSession: func(ctx context.Context, username string) error {
			persisted = username
			return nil
		},
	}

	require.NoError(t, c.runLogin(context.Background()))

	assert.Equal(t, "cashier", loginReq["username"])
	assert.Equal(t, "secret", loginReq["password"])
	assert.Equal(t, "cashier", persisted)
}

func TestCli_runLogin_EmptyUsername(t *testing.T) {
	mockIO, _ := newSilentIO()
	mockIO.ReadInputFunc = func(prompt string) (string, error) { return "", nil }

	c := &Cli{io: mockIO}

	err := c.runLogin(context.Background())
	assert.ErrorContains(t, err, "username cannot be empty")
}

func TestCli_runLogout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/logout", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	apiClient, err := api.NewClient(server.URL, slog.Default())
	require.NoError(t, err)

	mockIO, _ := newSilentIO()
	sessions := &fakeSessions{data: &storage.SessionData{Username: "cashier"}}
	c := &Cli{
		apiClient: apiClient,
		io:        mockIO,
		sessions:  sessions,
		logger:    slog.Default(),
	}

	require.NoError(t, c.runLogout(context.Background()))
	assert.Nil(t, sessions.data)
}

func TestCli_render_DeviceList(t *testing.T) {
	mockIO, out := newSilentIO()
	c := &Cli{io: mockIO}

	devices := testDevices()
	require.NoError(t, c.render(deviceListTemplate, devices))

	rendered := out.String()
	assert.Contains(t, rendered, "esp-1")
	// 15 dBm по шкале ридера это 58%
	assert.Contains(t, rendered, "15 dBm (58%)")
}

func TestCli_render_EmptyDeviceList(t *testing.T) {
	mockIO, out := newSilentIO()
	c := &Cli{io: mockIO}

	require.NoError(t, c.render(deviceListTemplate, nil))
	assert.Contains(t, out.String(), "No modules known yet")
}

func TestParseOnOff(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"on", true, false},
		{"off", false, false},
		{"true", true, false},
		{"0", false, false},
		{"yes", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseOnOff(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Device ключи не доверяют кэшу: каждое чтение ходит на сервер.
// Магазинные ключи кэшируются в пределах StaleTime.
func TestRegisterFetchers_DeviceKeysAlwaysRefetch(t *testing.T) {
	var deviceCalls, productCalls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/jrd/devices":
			deviceCalls.Add(1)
			_, _ = w.Write([]byte(`[{"id":"esp-1"}]`))
		case "/api/products":
			productCalls.Add(1)
			_, _ = w.Write([]byte(`[]`))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	apiClient, err := api.NewClient(server.URL, nil)
	require.NoError(t, err)

	store := cache.NewStore(nil)
	ctrl := mutate.NewController(store, nil, nil)
	c := &Cli{
		apiClient:  apiClient,
		store:      store,
		controller: ctrl,
		cfg: &config.Config{
			Cache: config.CacheConfig{StaleTime: time.Minute, Retry: 1},
		},
		serialModulesKey: cache.NewKey("serial", "modules"),
		serialScansKey:   cache.NewKey("serial", "scan-results"),
		productsKey:      cache.NewKey("shop", "products"),
		invoicesKey:      cache.NewKey("shop", "invoices"),
		salesKey:         cache.NewKey("shop", "sales"),
		goldKey:          cache.NewKey("shop", "gold-rate"),
	}
	c.registerFetchers()

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		_, err := store.Fetch(ctx, ctrl.DevicesKey)
		require.NoError(t, err)
		_, err = store.Fetch(ctx, c.productsKey)
		require.NoError(t, err)
	}

	assert.EqualValues(t, 2, deviceCalls.Load())
	assert.EqualValues(t, 1, productCalls.Load())
}
