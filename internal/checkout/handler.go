package checkout

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sherlinsilvia14/MKV-co/internal/domain/cart"
	"github.com/Sherlinsilvia14/MKV-co/internal/domain/product"
)

type Handler struct {
	composer Composer
}

func NewHandler(composer Composer) *Handler {
	return &Handler{composer: composer}
}

type lineReq struct {
	ProductID int64   `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity" binding:"required"`
}

type cartOrderReq struct {
	Lines   []lineReq `json:"lines" binding:"required"`
	Address string    `json:"address"`
}

type itemOrderReq struct {
	ProductID int64   `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity" binding:"required"`
	Address   string  `json:"address"`
}

// CartOrder renders the whole cart snapshot into a WhatsApp order link.
// Nothing is stored; the client opens the returned url itself.
func (h *Handler) CartOrder(c *gin.Context) {
	var req cartOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	crt := cart.New()
	for _, ln := range req.Lines {
		crt.AddOrIncrement(product.Product{ID: ln.ProductID, Name: ln.Name, Price: ln.Price}, ln.Quantity)
	}

	ord, err := h.composer.ComposeCartOrder(crt, req.Address, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ord)
}

// ItemOrder is the buy-now variant for a single product.
func (h *Handler) ItemOrder(c *gin.Context) {
	var req itemOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ord, err := h.composer.ComposeSingleItemOrder(
		product.Product{ID: req.ProductID, Name: req.Name, Price: req.Price},
		req.Quantity, req.Address,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ord)
}
