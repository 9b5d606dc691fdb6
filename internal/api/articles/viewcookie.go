package articles

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// freeViewsCookie is the browser-local free-view counter. No expiry beyond
// the ten-year max-age, no server-side copy: the quota is advisory and an
// adversarial client clearing the cookie simply resets it.
const (
	freeViewsCookie = "free_views"
	cookieMaxAge    = 10 * 365 * 24 * 3600
)

// CookieCounter adapts the free_views cookie to access.Counter.
type CookieCounter struct {
	c *gin.Context
	n int
}

func NewCookieCounter(c *gin.Context) *CookieCounter {
	n := 0
	if raw, err := c.Cookie(freeViewsCookie); err == nil {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			n = v
		}
	}
	return &CookieCounter{c: c, n: n}
}

func (cc *CookieCounter) Count() int { return cc.n }

func (cc *CookieCounter) Increment() int {
	cc.n++
	cc.c.SetCookie(
		freeViewsCookie,
		strconv.Itoa(cc.n),
		cookieMaxAge,
		"/",
		"",
		false,
		false, // readable client-side; the SPA shows remaining quota
	)
	return cc.n
}
