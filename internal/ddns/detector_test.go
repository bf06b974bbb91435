package ddns

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPDetector_Detect(t *testing.T) {
	t.Parallel()

	t.Run("parses a plain-text address", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("192.0.2.10\n"))
		}))
		defer server.Close()

		detector := NewHTTPDetector(server.URL)

		addr, err := detector.Detect(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "192.0.2.10", addr.String())
		assert.True(t, addr.Is4())
	})

	t.Run("parses an IPv6 address", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("2001:db8::1"))
		}))
		defer server.Close()

		detector := NewHTTPDetector(server.URL)

		addr, err := detector.Detect(context.Background())
		require.NoError(t, err)
		assert.True(t, addr.Is6())
	})

	t.Run("non-200 status fails detection", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		detector := NewHTTPDetector(server.URL)

		_, err := detector.Detect(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDetectionFailed)
	})

	t.Run("garbage body fails to parse", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not an address</html>"))
		}))
		defer server.Close()

		detector := NewHTTPDetector(server.URL)

		_, err := detector.Detect(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing detected address")
	})
}
