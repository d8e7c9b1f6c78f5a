package v1

import (
	"net/http"

	"github.com/ayushbenny/shopping-cart/internal/service"
	"github.com/ayushbenny/shopping-cart/internal/types"
	"github.com/ayushbenny/shopping-cart/pkg/e"
	"github.com/ayushbenny/shopping-cart/pkg/logger"
	"github.com/gin-gonic/gin"
)

// AuthHandler 处理认证
type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRoutes 注册路由（不经过token拦截器）
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
	}
}

// Register 用户注册
func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	// 注册参数要匹配
	if err := c.ShouldBindJSON(&req); err != nil {
		BindingError(c, err)
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		logger.Error("注册失败", "error", err, "email", req.Email)
		InternalError(c)
		return
	}

	status := HTTPStatus(resp.Code)
	if resp.Code == e.SUCCESS {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}

// Login 用户登录
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindingError(c, err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		logger.Error("登录失败", "error", err, "email", req.Email)
		InternalError(c)
		return
	}

	// 登录失败统一返回401，避免暴露账号是否存在
	if resp.Code != e.SUCCESS {
		c.JSON(http.StatusUnauthorized, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh 刷新token对
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req types.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindingError(c, err)
		return
	}

	resp, err := h.authService.Refresh(c.Request.Context(), &req)
	if err != nil {
		logger.Error("刷新token失败", "error", err)
		InternalError(c)
		return
	}

	c.JSON(HTTPStatus(resp.Code), resp)
}
