// Package api exposes the HTTP handlers of the book and customer
// backends. Every error response uses the shared {"message": ...} shape.
package api

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/galaxybooks/bookstore-backend/internal/domain"
	"github.com/galaxybooks/bookstore-backend/internal/service"
	"github.com/galaxybooks/bookstore-backend/internal/storage"
)

// Handlers aggregates all HTTP handlers
type Handlers struct {
	services *service.Services
	logger   *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(services *service.Services, logger *zap.Logger) *Handlers {
	return &Handlers{
		services: services,
		logger:   logger.Named("handlers"),
	}
}

// Status handles the health check endpoint
func Status(c *gin.Context) {
	c.JSON(200, gin.H{"status": "OK"})
}

// RegisterBookRoutes adds the book routes to a router group
func (h *Handlers) RegisterBookRoutes(r gin.IRouter) {
	r.POST("/books", h.CreateBook)
	r.GET("/books/:isbn", h.GetBook)
	r.GET("/books/isbn/:isbn", h.GetBook)
	r.PUT("/books/:isbn", h.UpdateBook)
}

// RegisterCustomerRoutes adds the customer routes to a router group
func (h *Handlers) RegisterCustomerRoutes(r gin.IRouter) {
	r.POST("/customers", h.CreateCustomer)
	r.GET("/customers/:id", h.GetCustomer)
	r.GET("/customers", h.GetCustomerByUserID)
}

// CreateBook handles POST /books
func (h *Handlers) CreateBook(c *gin.Context) {
	var book domain.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.JSON(400, gin.H{"message": "Malformed request body"})
		return
	}

	err := h.services.Books.Create(c.Request.Context(), &book)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			c.JSON(400, gin.H{"message": err.Error()})
		case errors.Is(err, storage.ErrAlreadyExists):
			c.JSON(422, gin.H{"message": "A book with this ISBN already exists in the system."})
		default:
			h.logger.Error("Failed to create book", zap.Error(err))
			c.JSON(500, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.Header("Location", fmt.Sprintf("/books/%s", book.ISBN))
	c.JSON(201, book)
}

// GetBook handles GET /books/{isbn} and GET /books/isbn/{isbn}
func (h *Handlers) GetBook(c *gin.Context) {
	isbn := c.Param("isbn")

	book, err := h.services.Books.GetByISBN(c.Request.Context(), isbn)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(404, gin.H{"message": "Book not found"})
			return
		}
		h.logger.Error("Failed to get book", zap.Error(err))
		c.JSON(500, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(200, book)
}

// UpdateBook handles PUT /books/{isbn}
func (h *Handlers) UpdateBook(c *gin.Context) {
	isbn := c.Param("isbn")

	var book domain.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.JSON(400, gin.H{"message": "Malformed request body"})
		return
	}

	if book.ISBN != isbn {
		c.JSON(400, gin.H{"message": "ISBN in path must match ISBN in body"})
		return
	}

	err := h.services.Books.Update(c.Request.Context(), &book)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			c.JSON(400, gin.H{"message": err.Error()})
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(404, gin.H{"message": "Book not found"})
		default:
			h.logger.Error("Failed to update book", zap.Error(err))
			c.JSON(500, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(200, book)
}

// CreateCustomer handles POST /customers
func (h *Handlers) CreateCustomer(c *gin.Context) {
	var customer domain.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(400, gin.H{"message": "Malformed request body"})
		return
	}

	err := h.services.Customers.Create(c.Request.Context(), &customer)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			c.JSON(400, gin.H{"message": err.Error()})
		case errors.Is(err, storage.ErrAlreadyExists):
			c.JSON(422, gin.H{"message": "This user ID already exists in the system."})
		default:
			h.logger.Error("Failed to create customer", zap.Error(err))
			c.JSON(500, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.Header("Location", fmt.Sprintf("/customers/%d", customer.ID))
	c.JSON(201, customer)
}

// GetCustomer handles GET /customers/{id}
func (h *Handlers) GetCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid customer ID format"})
		return
	}
	if id <= 0 {
		c.JSON(400, gin.H{"message": "Customer ID must be a positive integer"})
		return
	}

	customer, err := h.services.Customers.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(404, gin.H{"message": "Customer not found"})
			return
		}
		h.logger.Error("Failed to get customer", zap.Error(err))
		c.JSON(500, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(200, customer)
}

// GetCustomerByUserID handles GET /customers?userId=<email>
func (h *Handlers) GetCustomerByUserID(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(400, gin.H{"message": "Missing required query parameter 'userId'"})
		return
	}
	if !domain.ValidEmail(userID) {
		c.JSON(400, gin.H{"message": "Invalid email format"})
		return
	}

	customer, err := h.services.Customers.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(404, gin.H{"message": "Customer not found"})
			return
		}
		h.logger.Error("Failed to get customer", zap.Error(err))
		c.JSON(500, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(200, customer)
}
