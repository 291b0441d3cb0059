package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	route  string
	status int
}

type recordingObserver struct {
	seen []observation
}

func (o *recordingObserver) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	o.seen = append(o.seen, observation{method, route, status})
}

func TestMetricsMiddleware(t *testing.T) {
	observer := &recordingObserver{}

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(observer))
	r.HandleFunc("/api/slots", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	r.HandleFunc("/api/book", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}).Methods(http.MethodPost)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/slots", nil),
		httptest.NewRequest(http.MethodPost, "/api/book", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Len(t, observer.seen, 2)
	assert.Equal(t, observation{http.MethodGet, "/api/slots", http.StatusOK}, observer.seen[0])
	assert.Equal(t, observation{http.MethodPost, "/api/book", http.StatusConflict}, observer.seen[1])
}
