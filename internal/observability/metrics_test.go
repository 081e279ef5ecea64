package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRecordRequest(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/api/posts", "GET", 200, 5*time.Millisecond)
	m.RecordRequest("/api/posts", "GET", 200, 7*time.Millisecond)
	m.RecordRequest("/api/posts", "GET", 401, time.Millisecond)

	assert.Equal(t, int64(2), m.RequestTotal("/api/posts", "GET", 200))
	assert.Equal(t, int64(1), m.RequestTotal("/api/posts", "GET", 401))
	assert.Equal(t, int64(0), m.RequestTotal("/api/post", "POST", 201))
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics

	m.RecordRequest("/x", "GET", 200, 0)
	m.RecordError("/x", "GET", "NOT_FOUND")
	assert.Equal(t, int64(0), m.RequestTotal("/x", "GET", 200))
}
