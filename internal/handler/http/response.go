package http

import "github.com/gin-gonic/gin"

func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

func SuccessResponse(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// BindingErrorResponse 返回请求体校验失败的详细信息
func BindingErrorResponse(c *gin.Context, err error) {
	c.JSON(400, gin.H{"error": "Invalid input", "details": err.Error()})
}
