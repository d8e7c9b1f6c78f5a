package v1

import (
	"errors"
	"net/http"

	"github.com/ayushbenny/shopping-cart/pkg/e"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// HTTPStatus 业务错误码到HTTP状态码的映射
func HTTPStatus(code int) int {
	switch code {
	case e.SUCCESS:
		return http.StatusOK
	case e.INVALID_PARAMS, e.ERROR_PASSWORD, e.ERROR_PAYMENT_AMOUNT_MISMATCH:
		return http.StatusBadRequest
	case e.ERROR_AUTH, e.ERROR_AUTH_CHECK_TOKEN_FAIL, e.ERROR_AUTH_CHECK_TOKEN_TIMEOUT, e.ERROR_AUTH_TOKEN:
		return http.StatusUnauthorized
	case e.ERROR_USER_NOT_EXISTS, e.ERROR_PRODUCT_NOT_EXISTS, e.ERROR_ORDER_NOT_EXISTS, e.ERROR_PAYMENT_NOT_EXISTS:
		return http.StatusNotFound
	case e.ERROR_USER_EXISTS, e.ERROR_PAYMENT_EXISTS, e.ERROR_PAYMENT_COMPLETED:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// BindingError 参数绑定失败的统一应答，附带逐字段原因
func BindingError(c *gin.Context, err error) {
	resp := gin.H{
		"code":    e.INVALID_PARAMS,
		"message": e.GetMsg(e.INVALID_PARAMS),
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		resp["fields"] = fields
	}

	c.JSON(http.StatusBadRequest, resp)
}

// InternalError 服务层返回非业务错误时的兜底应答
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"code":    e.ERROR,
		"message": e.GetMsg(e.ERROR),
	})
}
