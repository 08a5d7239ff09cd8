package app

import (
	"strings"

	"github.com/haierkeys/quicknote/pkg/code"

	"github.com/gin-gonic/gin"
)

// VersionInfo version information // 版本信息
type VersionInfo struct {
	Version   string `json:"version"`
	GitTag    string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
}

type Response struct {
	Ctx *gin.Context
}

// Res is the unified envelope for coded results: Code/Status/Message/Data
// Res 是统一的响应结构：Code/Status/Message/Data
// Clients read the failure reason from the "message" key.
type Res struct {
	Code    int         `json:"code"`
	Status  bool        `json:"status"`
	Message interface{} `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Details interface{} `json:"details,omitempty"`
	TraceID string      `json:"traceId,omitempty"`
}

func NewResponse(ctx *gin.Context) *Response {
	return &Response{
		Ctx: ctx,
	}
}

// GetRequestIP gets the request IP
// GetRequestIP 获取ip
func GetRequestIP(c *gin.Context) string {
	reqIP := c.ClientIP()
	if reqIP == "::1" {
		reqIP = "127.0.0.1"
	}
	return reqIP
}

func GetAccessHost(c *gin.Context) string {
	AccessProto := ""
	if proto := c.Request.Header.Get("X-Forwarded-Proto"); proto == "" {
		AccessProto = "http" + "://"
	} else {
		AccessProto = proto + "://"
	}
	return AccessProto + c.Request.Host
}

// ToResponse writes the coded envelope with the code's HTTP status
// ToResponse 输出统一结构，HTTP 状态码取自 code
func (r *Response) ToResponse(codeObj *code.Code) {
	content := Res{
		Code:    codeObj.Code(),
		Status:  codeObj.Status(),
		Message: Message(r.Ctx, codeObj),
		Data:    codeObj.Data(),
		TraceID: r.Ctx.GetString("trace_id"),
	}

	if codeObj.HaveDetails() {
		content.Details = strings.Join(codeObj.Details(), ",")
	}

	r.send(codeObj.StatusCode(), content)
}

// Message returns the code's message in the request language set by the lang middleware
// Message 按请求语言返回消息，未设置时使用全局默认语言
func Message(c *gin.Context, codeObj *code.Code) string {
	if c != nil {
		if lang := c.GetString("lang"); lang != "" {
			return codeObj.MsgIn(lang)
		}
	}
	return codeObj.Msg()
}

// ToJSON writes a bare payload. The note store contract returns notes without an envelope.
// ToJSON 直接输出数据，不包裹统一结构
func (r *Response) ToJSON(statusCode int, data interface{}) {
	r.send(statusCode, data)
}

func (r *Response) send(statusCode int, content interface{}) {
	r.Ctx.Set("status_code", statusCode)
	r.Ctx.JSON(statusCode, content)
}
