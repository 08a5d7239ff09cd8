package limiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMethodLimiterKeyAndBuckets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := NewMethodLimiter().AddBuckets(
		BucketRule{Key: "POST /notes", FillInterval: time.Hour, Capacity: 2, Quantum: 1},
		BucketRule{Key: "GET /notes", Capacity: 0},
	)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/notes/", nil)
	key := l.Key(c)
	assert.Equal(t, "POST /notes", key)

	bucket, ok := l.GetBucket(key)
	assert.True(t, ok)
	assert.Equal(t, int64(1), bucket.TakeAvailable(1))
	assert.Equal(t, int64(1), bucket.TakeAvailable(1))
	assert.Equal(t, int64(0), bucket.TakeAvailable(1))

	_, ok = l.GetBucket("GET /notes")
	assert.False(t, ok, "zero capacity rules are skipped")
}
