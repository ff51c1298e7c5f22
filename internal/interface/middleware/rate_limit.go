package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/growth-sessions/pkg/response"
)

const rateLimitPrefix = "gs:rl:"

// KeyFunc builds the counter key for a request.
type KeyFunc func(c *gin.Context) string

// AllowFunc returns true for requests that bypass the limit.
type AllowFunc func(*gin.Context) bool

// KeyByIP limits per client address.
func KeyByIP() KeyFunc {
	return func(c *gin.Context) string {
		return rateLimitPrefix + "ip:" + ipFromCtx(c)
	}
}

// KeyByIPAndPath limits per client address and route, so one noisy endpoint does not eat
// the budget of the others.
func KeyByIPAndPath() KeyFunc {
	return func(c *gin.Context) string {
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		return rateLimitPrefix + "path:" + path + ":ip:" + ipFromCtx(c)
	}
}

// KeyByUserID limits signed-in users by id and guests by address.
func KeyByUserID() KeyFunc {
	return func(c *gin.Context) string {
		if uid := UserID(c); uid != nil {
			return rateLimitPrefix + "user:" + strconv.FormatInt(*uid, 10)
		}
		return rateLimitPrefix + "user:anon:ip:" + ipFromCtx(c)
	}
}

// Counts the hit, starts the window on the first one and returns {count, remaining ms}.
var hitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("PTTL", KEYS[1])}
`)

// RateLimit counts requests per key in a fixed window. It sets the X-RateLimit-* headers,
// skips OPTIONS and anything allow accepts, and fails open when Redis is unavailable.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, keyFn KeyFunc, allow AllowFunc) gin.HandlerFunc {
	if rdb == nil || limit <= 0 || window <= 0 || keyFn == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, http.MethodOptions) || (allow != nil && allow(c)) {
			c.Next()
			return
		}

		res, err := hitScript.Run(c.Request.Context(), rdb, []string{keyFn(c)}, window.Milliseconds()).Int64Slice()
		if err != nil || len(res) != 2 {
			c.Next()
			return
		}
		count := int(res[0])
		resetSec := 0
		if res[1] > 0 {
			resetSec = int((time.Duration(res[1]) * time.Millisecond).Round(time.Second).Seconds())
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(max(limit-count, 0)))
		c.Header("X-RateLimit-Reset", strconv.Itoa(resetSec))

		if count > limit {
			if resetSec > 0 {
				c.Header("Retry-After", strconv.Itoa(resetSec))
			}
			response.Error[any](c, http.StatusTooManyRequests, "rate limit exceeded", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
