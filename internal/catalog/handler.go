package catalog

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sherlinsilvia14/MKV-co/internal/db"
	"github.com/Sherlinsilvia14/MKV-co/internal/domain/product"
)

type Store interface {
	Create(ctx context.Context, d product.Draft) (product.Product, error)
	ListAll(ctx context.Context) ([]product.Product, error)
	GetByID(ctx context.Context, id int64) (product.Product, error)
}

type Handler struct {
	store  Store
	images ImageSaver
}

func NewHandler(store Store, images ImageSaver) *Handler {
	return &Handler{store: store, images: images}
}

// Public: full catalog newest-first, narrowed by optional query params
// (category, price_min, price_max, fabric).
func (h *Handler) List(c *gin.Context) {
	items, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		if db.Unavailable(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not connected"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}
	c.JSON(http.StatusOK, Filter(items, specFromQuery(c)))
}

func specFromQuery(c *gin.Context) FilterSpec {
	spec := FilterSpec{
		Category: c.DefaultQuery("category", CategoryAll),
		PriceMin: 0,
		PriceMax: math.Inf(1),
		Fabrics:  c.QueryArray("fabric"),
	}
	if v := c.Query("price_min"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			spec.PriceMin = n
		}
	}
	if v := c.Query("price_max"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			spec.PriceMax = n
		}
	}
	return spec
}

// Public: single product by id.
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Product ID"})
		return
	}

	p, err := h.store.GetByID(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Admin: add a product with its image (multipart form).
func (h *Handler) Create(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	name := c.PostForm("name")
	category := c.PostForm("category")
	if err != nil || price < 0 || name == "" || category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	imageURL, err := h.images.Save(c, fh)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	p, err := h.store.Create(c.Request.Context(), product.Draft{
		Name:        name,
		Description: c.PostForm("description"),
		Price:       price,
		Category:    category,
		ImageURL:    imageURL,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully", "product": p})
}
