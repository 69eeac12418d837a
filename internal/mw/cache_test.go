package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
)

func TestCacheMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := cache.New(time.Minute, time.Minute)
	r := gin.New()
	r.Use(Cache(store, time.Minute))

	hits := 0
	value := "one"
	r.GET("/value", func(c *gin.Context) {
		hits++
		c.String(http.StatusOK, value)
	})
	r.PUT("/value", func(c *gin.Context) {
		value = "two"
		c.Status(http.StatusOK)
	})
	r.PUT("/reject", func(c *gin.Context) {
		c.Status(http.StatusBadRequest)
	})

	get := func() string {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/value", nil)
		r.ServeHTTP(w, req)
		return w.Body.String()
	}
	put := func(path string) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, path, nil)
		r.ServeHTTP(w, req)
	}

	assert.Equal(t, "one", get())
	assert.Equal(t, "one", get())
	assert.Equal(t, 1, hits, "second read should come from the cache")

	// A failed mutation leaves the cache alone.
	put("/reject")
	assert.Equal(t, "one", get())
	assert.Equal(t, 1, hits)

	// A successful mutation flushes it.
	put("/value")
	assert.Equal(t, "two", get())
	assert.Equal(t, 2, hits)
}
