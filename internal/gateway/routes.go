package gateway

import (
	"github.com/gin-gonic/gin"
)

// Transforms holds the per-route transforms for one client family. Zero
// value means full passthrough (the web gateway).
type Transforms struct {
	// Book applies to successful book read responses
	Book Transform
	// Customer applies to successful customer read responses
	Customer Transform
}

// MobileTransforms are the response transforms the mobile gateway applies.
func MobileTransforms() Transforms {
	return Transforms{
		Book:     TransformBook,
		Customer: FilterCustomer,
	}
}

// RegisterRoutes wires the proxied book and customer routes onto a router
// group. Reads apply the family's transform; writes are proxied as-is.
func (g *Gateway) RegisterRoutes(r gin.IRouter, t Transforms) {
	r.POST("/books", func(c *gin.Context) { g.Forward(c, nil) })
	r.PUT("/books/:isbn", func(c *gin.Context) { g.Forward(c, nil) })
	r.GET("/books/:isbn", func(c *gin.Context) { g.Forward(c, t.Book) })
	r.GET("/books/isbn/:isbn", func(c *gin.Context) { g.Forward(c, t.Book) })

	r.POST("/customers", func(c *gin.Context) { g.Forward(c, nil) })
	r.GET("/customers/:id", func(c *gin.Context) { g.Forward(c, t.Customer) })
	r.GET("/customers", func(c *gin.Context) {
		if c.Query("userId") == "" {
			c.JSON(400, gin.H{"message": "Missing required query parameter 'userId'"})
			return
		}
		g.Forward(c, t.Customer)
	})
}
