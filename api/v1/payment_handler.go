package v1

import (
	"net/http"

	"github.com/ayushbenny/shopping-cart/internal/service"
	"github.com/ayushbenny/shopping-cart/internal/types"
	"github.com/ayushbenny/shopping-cart/pkg/e"
	"github.com/ayushbenny/shopping-cart/pkg/logger"
	"github.com/gin-gonic/gin"
)

// PaymentHandler 支付 HTTP 处理器
type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RegisterRoutes 注册支付相关路由（需 JWT）
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.CreatePayment)
	rg.GET("", h.GetPayments)
	rg.PUT("", h.UpdatePayment)
}

// CreatePayment 为订单创建支付记录
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req types.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindingError(c, err)
		return
	}

	resp, err := h.paymentService.CreatePayment(c.Request.Context(), userID, &req)
	if err != nil {
		logger.Error("创建支付失败", "error", err, "user_id", userID, "order_id", req.OrderID)
		InternalError(c)
		return
	}

	status := HTTPStatus(resp.Code)
	if resp.Code == e.SUCCESS {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}

// GetPayments 查询支付记录，order_id 可选
func (h *PaymentHandler) GetPayments(c *gin.Context) {
	userID := c.GetInt64("user_id")

	orderID, ok := optionalQueryID(c, "order_id")
	if !ok {
		return
	}

	resp, err := h.paymentService.GetPayments(c.Request.Context(), userID, orderID)
	if err != nil {
		logger.Error("获取支付记录失败", "error", err, "user_id", userID)
		InternalError(c)
		return
	}

	c.JSON(HTTPStatus(resp.Code), resp)
}

// UpdatePayment 重试支付
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req types.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindingError(c, err)
		return
	}

	resp, err := h.paymentService.UpdatePayment(c.Request.Context(), userID, &req)
	if err != nil {
		logger.Error("更新支付失败", "error", err, "user_id", userID, "order_id", req.OrderID)
		InternalError(c)
		return
	}

	c.JSON(HTTPStatus(resp.Code), resp)
}
