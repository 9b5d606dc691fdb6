package articles

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, cookie string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/articles/gold-outlook", nil)
	if cookie != "" {
		c.Request.Header.Set("Cookie", freeViewsCookie+"="+cookie)
	}
	return c, w
}

func TestCookieCounterStartsAtZero(t *testing.T) {
	c, _ := newTestContext(t, "")
	cc := NewCookieCounter(c)
	assert.Equal(t, 0, cc.Count())
}

func TestCookieCounterReadsExistingValue(t *testing.T) {
	c, _ := newTestContext(t, "2")
	cc := NewCookieCounter(c)
	assert.Equal(t, 2, cc.Count())
}

func TestCookieCounterIgnoresGarbage(t *testing.T) {
	c, _ := newTestContext(t, "lots")
	assert.Equal(t, 0, NewCookieCounter(c).Count())

	c, _ = newTestContext(t, "-4")
	assert.Equal(t, 0, NewCookieCounter(c).Count())
}

func TestCookieCounterIncrementPersists(t *testing.T) {
	c, w := newTestContext(t, "2")
	cc := NewCookieCounter(c)

	require.Equal(t, 3, cc.Increment())
	assert.Equal(t, 3, cc.Count())

	setCookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, setCookie, freeViewsCookie+"=3")
}
