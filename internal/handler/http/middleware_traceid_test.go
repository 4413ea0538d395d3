package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/idea-backlog/internal/logger"
	"github.com/MKhiriev/idea-backlog/internal/utils"
)

type fixedTraceIDs string

func (f fixedTraceIDs) Generate() string { return string(f) }

// newTraceHandler создаёт Handler с логгером, пишущим в buf.
func newTraceHandler(buf *bytes.Buffer, ids traceIDGenerator) *Handler {
	return &Handler{
		logger:   &logger.Logger{Logger: zerolog.New(buf)},
		traceIDs: ids,
	}
}

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

// ---- Таблица: заголовок ответа X-Trace-ID ----

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
		generated      string
		wantTraceID    string
	}{
		{
			name:           "trace ID from request header is reused",
			requestTraceID: "my-custom-trace-id",
			generated:      "unused",
			wantTraceID:    "my-custom-trace-id",
		},
		{
			name:        "no trace ID in request — generated",
			generated:   "generated-id",
			wantTraceID: "generated-id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTraceHandler(&buf, fixedTraceIDs(tt.generated))

			rr, req := executeWithTraceID(h, tt.requestTraceID)

			require.NotNil(t, req, "next handler must be called")
			assert.Equal(t, tt.wantTraceID, rr.Header().Get(traceIDHeader))

			// логгер в контексте несёт trace_id
			logger.FromRequest(req).Info().Msg("inside")
			assert.Contains(t, buf.String(), `"trace_id":"`+tt.wantTraceID+`"`)
		})
	}
}

func TestWithTraceID_GeneratesUUIDv7(t *testing.T) {
	var buf bytes.Buffer
	h := newTraceHandler(&buf, utils.NewUUIDGenerator())

	rr, _ := executeWithTraceID(h, "")

	id, err := uuid.Parse(rr.Header().Get(traceIDHeader))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestWithTraceID_DoesNotMutateParentLogger(t *testing.T) {
	var buf bytes.Buffer
	h := newTraceHandler(&buf, fixedTraceIDs("abc"))

	executeWithTraceID(h, "")
	buf.Reset()

	h.logger.Info().Msg("parent")
	assert.NotContains(t, buf.String(), "trace_id")
}
