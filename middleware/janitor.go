package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Ixollozi/clothing-shop/janitor"
)

// CartJanitor piggybacks the stale-cart sweep on incoming traffic. The
// sweeper's own throttle keeps the table scan at most once per interval;
// running it in a goroutine keeps requests from ever waiting on it.
func CartJanitor(s *janitor.Sweeper) gin.HandlerFunc {
	return func(c *gin.Context) {
		go s.MaybeSweep()
		c.Next()
	}
}
