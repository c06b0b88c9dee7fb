package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbarbosa/mesasync/models"
)

func newTestRemoteStore(serverURL string) *httpRemoteStore {
	r := NewHTTPRemoteStore(HTTPClientConfig{
		BaseURL:   serverURL,
		CompanyID: "empresa-1",
		Timeout:   5 * time.Second,
	})
	return r.(*httpRemoteStore)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "joao", creds.Login)

		w.Header().Set("Authorization", "Bearer token-abc")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestRemoteStore(srv.URL)
	token, err := a.Login(context.Background(), models.Credentials{Login: "joao", Password: "s3cr3t"})

	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
	assert.Equal(t, "token-abc", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestRemoteStore(srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Login: "joao"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── FetchDocuments ──────────────────────────────────────────────────────────

func TestFetchDocuments_Unrestricted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/companies/empresa-1/collections/clientes/documents", r.URL.Path)
		assert.Equal(t, "1000", r.URL.Query().Get("updatedAfter"))
		assert.False(t, r.URL.Query().Has("routeIds"))
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Document{
			{"id": 1, "rota_id": 7, "nome": "Bar do Zé", "lastModified": 1500},
		})
	}))
	defer srv.Close()

	a := newTestRemoteStore(srv.URL)
	a.SetToken("token-abc")

	docs, bytes, err := a.FetchDocuments(context.Background(), "clientes", DocumentQuery{UpdatedAfter: 1000})

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, int64(1), docs[0].ID())
	assert.Greater(t, bytes, int64(0))
}

func TestFetchDocuments_ChunksRouteFilter(t *testing.T) {
	var gotRouteParams []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRouteParams = append(gotRouteParams, r.URL.Query().Get("routeIds"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	routes := make([]int64, 0, 23)
	for i := int64(1); i <= 23; i++ {
		routes = append(routes, i)
	}

	a := newTestRemoteStore(srv.URL)
	_, _, err := a.FetchDocuments(context.Background(), "acertos", DocumentQuery{RouteIDs: routes})

	require.NoError(t, err)
	require.Len(t, gotRouteParams, 3)
	assert.Equal(t, "1,2,3,4,5,6,7,8,9,10", gotRouteParams[0])
	assert.Equal(t, "11,12,13,14,15,16,17,18,19,20", gotRouteParams[1])
	assert.Equal(t, "21,22,23", gotRouteParams[2])
}

func TestFetchDocuments_MergesChunksKeepingFreshest(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		// the unscoped doc id=100 comes back with both chunks, second
		// copy fresher
		if calls == 1 {
			_, _ = w.Write([]byte(`[{"id":100,"lastModified":500},{"id":1,"rota_id":1,"lastModified":900}]`))
			return
		}
		_, _ = w.Write([]byte(`[{"id":100,"lastModified":700}]`))
	}))
	defer srv.Close()

	routes := make([]int64, 0, 11)
	for i := int64(1); i <= 11; i++ {
		routes = append(routes, i)
	}

	a := newTestRemoteStore(srv.URL)
	docs, _, err := a.FetchDocuments(context.Background(), "clientes", DocumentQuery{RouteIDs: routes})

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, int64(100), docs[0].ID())
	assert.Equal(t, int64(700), docs[0].LastModified())
	assert.Equal(t, int64(1), docs[1].ID())
}

func TestFetchDocuments_EmptyGrantListStillQueries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, r.URL.Query().Has("routeIds"))
		assert.Equal(t, "", r.URL.Query().Get("routeIds"))
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	a := newTestRemoteStore(srv.URL)
	docs, _, err := a.FetchDocuments(context.Background(), "clientes", DocumentQuery{RouteIDs: []int64{}})

	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestFetchDocuments_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	a := newTestRemoteStore(srv.URL)
	_, _, err := a.FetchDocuments(context.Background(), "clientes", DocumentQuery{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 500")
}

func TestFetchDocuments_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	a := newTestRemoteStore(srv.URL)
	_, _, err := a.FetchDocuments(context.Background(), "clientes", DocumentQuery{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteTimeout)
}

// ── PushDocuments ───────────────────────────────────────────────────────────

func TestPushDocuments_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/companies/empresa-1/collections/despesas/documents", r.URL.Path)

		var docs []models.Document
		require.NoError(t, json.NewDecoder(r.Body).Decode(&docs))
		require.Len(t, docs, 2)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestRemoteStore(srv.URL)
	bytes, err := a.PushDocuments(context.Background(), "despesas", []models.Document{
		{"id": 1, "valor": 2500, "lastModified": 900},
		{"id": 2, "valor": 1200, "lastModified": 950},
	})

	require.NoError(t, err)
	assert.Greater(t, bytes, int64(0))
}

func TestPushDocuments_EmptyBatchIsNoop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty batch")
	}))
	defer srv.Close()

	a := newTestRemoteStore(srv.URL)
	bytes, err := a.PushDocuments(context.Background(), "despesas", nil)

	require.NoError(t, err)
	assert.Zero(t, bytes)
}

func TestPushDocuments_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestRemoteStore(srv.URL)
	_, err := a.PushDocuments(context.Background(), "despesas", []models.Document{{"id": 1}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc", "abc", false},
		{"missing token", "Bearer", "", true},
		{"empty", "", "", true},
		{"extra spaces", "Bearer  abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBearerToken(tt.header)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChunkRoutes(t *testing.T) {
	chunks := chunkRoutes([]int64{1, 2, 3}, 2)
	require.Len(t, chunks, 2)
	assert.Equal(t, []int64{1, 2}, chunks[0])
	assert.Equal(t, []int64{3}, chunks[1])

	chunks = chunkRoutes(nil, 2)
	require.Len(t, chunks, 1)
	assert.Empty(t, chunks[0])
}

func TestJoinRoutes(t *testing.T) {
	assert.Equal(t, "7,12,30", joinRoutes([]int64{7, 12, 30}))
	assert.Equal(t, "", joinRoutes(nil))
	assert.False(t, strings.Contains(joinRoutes([]int64{7}), ","))
}
