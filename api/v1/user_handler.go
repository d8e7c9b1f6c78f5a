package v1

import (
	"github.com/ayushbenny/shopping-cart/internal/service"
	"github.com/ayushbenny/shopping-cart/internal/types"
	"github.com/ayushbenny/shopping-cart/pkg/logger"
	"github.com/gin-gonic/gin"
)

// UserHandler 当前用户资料
type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterRoutes 注册用户路由（需 JWT）
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("/profile", h.GetProfile)
		users.PUT("/profile", h.UpdateProfile)
		users.PATCH("/profile", h.PatchProfile)
	}
}

// GetProfile 获取当前用户信息
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")

	resp, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		logger.Error("获取用户信息失败", "error", err, "user_id", userID)
		InternalError(c)
		return
	}

	c.JSON(HTTPStatus(resp.Code), resp)
}

// UpdateProfile PUT 全量更新
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req types.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindingError(c, err)
		return
	}

	resp, err := h.userService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		logger.Error("更新用户信息失败", "error", err, "user_id", userID)
		InternalError(c)
		return
	}

	c.JSON(HTTPStatus(resp.Code), resp)
}

// PatchProfile PATCH 局部更新
func (h *UserHandler) PatchProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req types.PatchUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindingError(c, err)
		return
	}

	resp, err := h.userService.PatchProfile(c.Request.Context(), userID, &req)
	if err != nil {
		logger.Error("更新用户信息失败", "error", err, "user_id", userID)
		InternalError(c)
		return
	}

	c.JSON(HTTPStatus(resp.Code), resp)
}
