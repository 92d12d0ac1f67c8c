package security

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCorrelationIDPassthrough(t *testing.T) {
	inbound := uuid.NewString()

	var seen string
	h := CorrelationID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CorrelationIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(CorrelationIDHeader, inbound)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, inbound, seen)
	require.Equal(t, inbound, rec.Header().Get(CorrelationIDHeader))
}

func TestCorrelationIDReplacesNonUUID(t *testing.T) {
	h := CorrelationID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(CorrelationIDHeader, "<script>nope</script>")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	minted := rec.Header().Get(CorrelationIDHeader)
	require.NotEqual(t, "<script>nope</script>", minted)
	_, err := uuid.Parse(minted)
	require.NoError(t, err)
}
