package appwrite

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryStrings(t *testing.T) {
	assert.JSONEq(t, `{"method":"equal","attribute":"status","values":["AVAILABLE"]}`,
		Equal("status", "AVAILABLE"))
	assert.JSONEq(t, `{"method":"orderDesc","attribute":"$createdAt"}`,
		OrderDesc("$createdAt"))
	assert.JSONEq(t, `{"method":"limit","values":[12]}`, Limit(12))
}

func TestListDocuments(t *testing.T) {
	var gotPath string
	var gotQueries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQueries = r.URL.Query()["queries[]"]
		_, _ = w.Write([]byte(`{"total":2,"documents":[{"$id":"a"},{"$id":"b"}]}`))
	}))
	defer srv.Close()

	d := NewServerDatabases(srv.URL, "proj", "key")
	require.NotNil(t, d)

	out, err := d.ListDocuments(context.Background(), "mealshare_db", "food_listings",
		Equal("status", "AVAILABLE"), OrderDesc("$createdAt"), Limit(12))
	require.NoError(t, err)

	assert.Equal(t, "/databases/mealshare_db/collections/food_listings/documents", gotPath)
	assert.Len(t, gotQueries, 3)
	assert.Equal(t, int64(2), out.Total)
	assert.Len(t, out.Documents, 2)
}

func TestListDocuments_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code":500,"message":"Server Error","type":"general_unknown"}`))
	}))
	defer srv.Close()

	d := NewServerDatabases(srv.URL, "proj", "key")
	_, err := d.ListDocuments(context.Background(), "db", "col")
	require.Error(t, err)
}
