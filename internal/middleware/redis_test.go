package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/resort-booking/internal/config"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	m := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return m, rdb
}

func cacheConfig() config.CacheConfig {
	return config.CacheConfig{
		Enabled:      true,
		Methods:      map[string]bool{http.MethodGet: true},
		TTL:          time.Minute,
		KeyStrategy:  "route_query",
		Prefix:       "catalog",
		MaxBodyBytes: 1 << 20,
	}
}

func TestRedisCache_HitReplaysBodyWithFreshRequestID(t *testing.T) {
	_, rdb := newRedis(t)
	calls := 0
	e := echo.New()
	e.Use(echomw.RequestID())
	e.GET("/v1/resorts", func(c echo.Context) error {
		calls++
		c.Response().Header().Set("X-Handler-Only", "secret")
		return c.JSON(http.StatusOK, echo.Map{"items": []string{"Oceanview Paradise Resort"}})
	}, NewRedisCache(cacheConfig(), rdb, nil))

	var ids []string
	var bodies []string
	for i, want := range []string{"MISS", "HIT"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/resorts", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, rec.Code)
		}
		if got := rec.Header().Get("X-Cache"); got != want {
			t.Errorf("request %d: X-Cache = %q, want %q", i, got, want)
		}
		if ct := rec.Header().Get(echo.HeaderContentType); ct != echo.MIMEApplicationJSON {
			t.Errorf("request %d: Content-Type = %q", i, ct)
		}
		ids = append(ids, rec.Header().Get(echo.HeaderXRequestID))
		bodies = append(bodies, rec.Body.String())
		if i == 1 && rec.Header().Get("X-Handler-Only") != "" {
			t.Error("non-representation header replayed from cache")
		}
	}
	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
	if bodies[0] != bodies[1] {
		t.Errorf("cached body %q differs from original %q", bodies[1], bodies[0])
	}
	if ids[0] == "" || ids[1] == "" || ids[0] == ids[1] {
		t.Errorf("request ids = %q, want two distinct ids", ids)
	}
}

func TestRedisCache_SkipsErrorsAndOversizedBodies(t *testing.T) {
	m, rdb := newRedis(t)
	cfg := cacheConfig()
	cfg.MaxBodyBytes = 8
	e := echo.New()
	e.GET("/missing", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "resort not found"})
	}, NewRedisCache(cfg, rdb, nil))
	e.GET("/big", func(c echo.Context) error {
		return c.String(http.StatusOK, "this body is longer than eight bytes")
	}, NewRedisCache(cfg, rdb, nil))

	for _, path := range []string{"/missing", "/big"} {
		for i := 0; i < 2; i++ {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			if got := rec.Header().Get("X-Cache"); got != "MISS" {
				t.Errorf("%s request %d: X-Cache = %q, want MISS", path, i, got)
			}
		}
	}
	if keys := m.Keys(); len(keys) != 0 {
		t.Errorf("unexpected cache entries: %v", keys)
	}
}

func TestRedisCache_RedisDownPassesThrough(t *testing.T) {
	m, rdb := newRedis(t)
	m.Close()
	e := echo.New()
	e.GET("/v1/resorts", func(c echo.Context) error { return c.String(http.StatusOK, "ok") },
		NewRedisCache(cacheConfig(), rdb, nil))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/resorts", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestTokenBucket_AllowsThenRejects(t *testing.T) {
	_, rdb := newRedis(t)
	cfg := config.RateLimitConfig{
		Enabled:        true,
		Capacity:       2,
		RefillTokens:   1,
		RefillInterval: time.Hour,
		TTL:            2 * time.Hour,
		KeyStrategy:    "ip_session_route",
		Prefix:         "rl",
		Debug:          true,
	}
	e := echo.New()
	e.POST("/v1/booking-sessions/:id/dates", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, NewTokenBucket(cfg, rdb, nil))

	send := func(session string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/booking-sessions/"+session+"/dates", nil)
		req.Header.Set(echo.HeaderXRealIP, "198.51.100.4")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	for i, wantRemaining := range []string{"1", "0"} {
		rec := send("s1")
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, rec.Code)
		}
		if got := rec.Header().Get("X-RateLimit-Remaining"); got != wantRemaining {
			t.Errorf("request %d: remaining = %q, want %q", i, got, wantRemaining)
		}
	}

	rec := send("s1")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("third request: status %d, want 429", rec.Code)
	}
	secs, err := strconv.Atoi(rec.Header().Get("Retry-After"))
	if err != nil || secs < 3590 || secs > 3600 {
		t.Errorf("Retry-After = %q, want about one refill interval", rec.Header().Get("Retry-After"))
	}

	// another session has its own bucket
	if rec := send("s2"); rec.Code != http.StatusOK {
		t.Errorf("other session: status %d", rec.Code)
	}
}

func TestTokenBucket_Refills(t *testing.T) {
	_, rdb := newRedis(t)
	cfg := config.RateLimitConfig{
		Enabled:        true,
		Capacity:       1,
		RefillTokens:   1,
		RefillInterval: 50 * time.Millisecond,
		TTL:            time.Minute,
		KeyStrategy:    "ip",
		Prefix:         "rl",
	}
	e := echo.New()
	e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, NewTokenBucket(cfg, rdb, nil))
	get := func() int {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
		return rec.Code
	}

	if get() != http.StatusOK {
		t.Fatal("first request rejected")
	}
	if get() != http.StatusTooManyRequests {
		t.Fatal("second request should be limited")
	}
	time.Sleep(120 * time.Millisecond)
	if code := get(); code != http.StatusOK {
		t.Errorf("after refill: status %d", code)
	}
}

func TestTokenBucket_RedisDownPassesThrough(t *testing.T) {
	m, rdb := newRedis(t)
	m.Close()
	cfg := config.RateLimitConfig{Enabled: true, Capacity: 1, RefillTokens: 1, RefillInterval: time.Second, TTL: time.Minute}
	e := echo.New()
	e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, NewTokenBucket(cfg, rdb, nil))
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("request %d: status %d", i, rec.Code)
		}
	}
}
