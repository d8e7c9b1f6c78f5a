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

// OrderHandler 订单 HTTP 处理器
type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// RegisterRoutes 注册订单相关路由（需 JWT）
// 统一规范：不在 handler 内再创建分组或添加限流
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.CreateOrder)
	rg.GET("", h.GetOrders)
	rg.PUT("", h.UpdateOrder)
}

// CreateOrder 创建订单
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req types.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindingError(c, err)
		return
	}

	resp, err := h.orderService.CreateOrder(c.Request.Context(), userID, &req)
	if err != nil {
		logger.Error("创建订单失败", "error", err, "user_id", userID)
		InternalError(c)
		return
	}

	status := HTTPStatus(resp.Code)
	if resp.Code == e.SUCCESS {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}

// GetOrders 查询订单，order_id 可选
func (h *OrderHandler) GetOrders(c *gin.Context) {
	userID := c.GetInt64("user_id")

	orderID, ok := optionalQueryID(c, "order_id")
	if !ok {
		return
	}

	resp, err := h.orderService.GetOrders(c.Request.Context(), userID, orderID)
	if err != nil {
		logger.Error("获取订单失败", "error", err, "user_id", userID)
		InternalError(c)
		return
	}

	c.JSON(HTTPStatus(resp.Code), resp)
}

// UpdateOrder 订单项全量替换
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req types.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindingError(c, err)
		return
	}

	resp, err := h.orderService.UpdateOrder(c.Request.Context(), userID, &req)
	if err != nil {
		logger.Error("更新订单失败", "error", err, "user_id", userID, "order_id", req.OrderID)
		InternalError(c)
		return
	}

	c.JSON(HTTPStatus(resp.Code), resp)
}

// optionalQueryID 解析可选的整型查询参数，缺省返回 nil
func optionalQueryID(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    e.INVALID_PARAMS,
			"message": e.GetMsg(e.INVALID_PARAMS),
		})
		return nil, false
	}
	return &id, true
}
