package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapDefaults(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	require.NotNil(t, w)
	assert.Equal(t, http.StatusOK, w.StatusCode())
	assert.Equal(t, 0, w.BytesWritten())
	assert.False(t, w.headerWritten)
}

func TestStatusCodeRecorded(t *testing.T) {
	for _, code := range []int{
		http.StatusOK,
		http.StatusCreated,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusInternalServerError,
	} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			rec := httptest.NewRecorder()
			w := Wrap(rec)

			w.WriteHeader(code)

			assert.Equal(t, code, w.StatusCode())
			assert.Equal(t, code, rec.Code)
		})
	}
}

func TestWriteHeaderOnlyFirstCallCounts(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.StatusCode())
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestBytesWrittenAccumulates(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	assert.Equal(t, 0, w.BytesWritten())

	n1, err := w.Write([]byte(`{"id":"a-1",`))
	require.NoError(t, err)
	n2, err := w.Write([]byte(`"status":"draft"}`))
	require.NoError(t, err)

	assert.Equal(t, n1+n2, w.BytesWritten())
	assert.Equal(t, `{"id":"a-1","status":"draft"}`, rec.Body.String())
}

func TestWriteImpliesOK(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	_, err := w.Write([]byte("published"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.StatusCode())
	assert.True(t, w.headerWritten)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmptyWriteStillFlushesHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	n, err := w.Write(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, n)
	assert.Equal(t, 0, w.BytesWritten())
	assert.True(t, w.headerWritten)
}

func TestUnwrapReturnsUnderlyingWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	assert.Equal(t, http.ResponseWriter(rec), w.Unwrap())
}

func TestMetricsVisibleAfterhandlerRuns(t *testing.T) {
	// The logging middleware wraps before dispatch and reads the counters
	// after the handler returns; this mirrors that flow.
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"a-7"}`))
	})

	rec := httptest.NewRecorder()
	w := Wrap(rec)
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/articles", nil))

	assert.Equal(t, http.StatusCreated, w.StatusCode())
	assert.Equal(t, len(`{"id":"a-7"}`), w.BytesWritten())
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `{"id":"a-7"}`, rec.Body.String())
}
