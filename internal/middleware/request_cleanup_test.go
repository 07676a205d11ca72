package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackingBody struct {
	reader io.Reader
	read   int64
	closed bool
}

func (b *trackingBody) Read(p []byte) (int, error) {
	n, err := b.reader.Read(p)
	b.read += int64(n)
	return n, err
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

func TestDrainAndCloseRequest(t *testing.T) {
	for _, tc := range []struct {
		name         string
		bodySize     int
		expectedRead int64
	}{
		{name: "small body drained fully", bodySize: 1024, expectedRead: 1024},
		{name: "large body drained up to the cap", bodySize: 3 * maxDrainBytes, expectedRead: maxDrainBytes},
	} {
		t.Run(tc.name, func(t *testing.T) {
			body := &trackingBody{reader: bytes.NewReader(make([]byte, tc.bodySize))}
			req := httptest.NewRequest(http.MethodPost, "/workouts", nil)
			req.Body = body

			nextCalled := false
			handler := DrainAndCloseRequest()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusBadRequest)
			}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.True(t, nextCalled)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tc.expectedRead, body.read)
			assert.True(t, body.closed)
		})
	}
}

func TestDrainAndCloseRequest_NoBody(t *testing.T) {
	handler := DrainAndCloseRequest()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/stats", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
