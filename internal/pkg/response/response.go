package response

import (
	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/webapi/proxyutil"
)

// wireErr carries the numeric code proxyutil puts on the failure envelope.
type wireErr struct {
	code    uint32
	message string
}

func (e *wireErr) Error() string { return e.message }

func (e *wireErr) Code() uint32 { return e.code }

func Success(c *gin.Context, data interface{}) {
	proxyutil.SuccessJson(c, data)
}

// Error writes the uniform failure envelope. HTTP status stays 200, the
// application code in the body is what clients dispatch on.
func Error(c *gin.Context, code int, message string) {
	proxyutil.FailJson(c, 200, &wireErr{code: uint32(code), message: message})
}
