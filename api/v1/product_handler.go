package v1

import (
	"net/http"
	"strconv"

	"github.com/ayushbenny/shopping-cart/internal/service"
	"github.com/ayushbenny/shopping-cart/internal/types"
	"github.com/ayushbenny/shopping-cart/pkg/e"
	"github.com/ayushbenny/shopping-cart/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ProductHandler 商品目录 HTTP 处理器
type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// RegisterPublicRoutes 商品浏览无需登录
func (h *ProductHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.SearchProducts)
		products.GET("/:id", h.GetProduct)
	}
}

// RegisterProtectedRoutes 商品维护需要 JWT
func (h *ProductHandler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.POST("", h.CreateProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.PATCH("/:id", h.PatchProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}

// CreateProduct 创建商品
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req types.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindingError(c, err)
		return
	}

	resp, err := h.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		logger.Error("创建商品失败", "error", err, "product_name", req.ProductName)
		InternalError(c)
		return
	}

	status := HTTPStatus(resp.Code)
	if resp.Code == e.SUCCESS {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}

// GetProduct 获取商品详情
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.productService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		logger.Error("获取商品失败", "error", err, "product_id", productID)
		InternalError(c)
		return
	}

	c.JSON(HTTPStatus(resp.Code), resp)
}

// SearchProducts 按名称/价格区间检索商品
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	var query types.SearchProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		BindingError(c, err)
		return
	}

	resp, err := h.productService.SearchProducts(c.Request.Context(), &query)
	if err != nil {
		logger.Error("检索商品失败", "error", err)
		InternalError(c)
		return
	}

	c.JSON(HTTPStatus(resp.Code), resp)
}

// UpdateProduct PUT 全量更新
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID, ok := pathID(c)
	if !ok {
		return
	}

	var req types.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindingError(c, err)
		return
	}

	resp, err := h.productService.UpdateProduct(c.Request.Context(), productID, &req)
	if err != nil {
		logger.Error("更新商品失败", "error", err, "product_id", productID)
		InternalError(c)
		return
	}

	c.JSON(HTTPStatus(resp.Code), resp)
}

// PatchProduct PATCH 局部更新
func (h *ProductHandler) PatchProduct(c *gin.Context) {
	productID, ok := pathID(c)
	if !ok {
		return
	}

	var req types.PatchProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindingError(c, err)
		return
	}

	resp, err := h.productService.PatchProduct(c.Request.Context(), productID, &req)
	if err != nil {
		logger.Error("更新商品失败", "error", err, "product_id", productID)
		InternalError(c)
		return
	}

	c.JSON(HTTPStatus(resp.Code), resp)
}

// DeleteProduct 软删除商品
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.productService.DeleteProduct(c.Request.Context(), productID)
	if err != nil {
		logger.Error("删除商品失败", "error", err, "product_id", productID)
		InternalError(c)
		return
	}

	c.JSON(HTTPStatus(resp.Code), resp)
}

// pathID 解析路径中的:id，非法时直接写应答
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    e.INVALID_PARAMS,
			"message": e.GetMsg(e.INVALID_PARAMS),
		})
		return 0, false
	}
	return id, true
}
