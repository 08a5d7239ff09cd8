// Package web is the browser front-end of the Note List View.
package web

import (
	"bytes"
	"net/http"

	"github.com/haierkeys/quicknote/internal/middleware"
	"github.com/haierkeys/quicknote/internal/notestore"
	"github.com/haierkeys/quicknote/internal/view"
	"github.com/haierkeys/quicknote/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Config of the browser front-end.
type Config struct {
	TracerEnabled bool
	TracerHeader  string
	Render        view.RenderOptions
}

type Handler struct {
	view   *view.View
	opts   view.RenderOptions
	logger *zap.Logger
}

// NewRouter serves one shared view. The view must be built with a Prompter from this package.
//
//	GET  /                  page, loads notes on the first visit
//	POST /notes             create from form fields title, content
//	POST /notes/:id/delete  delete when confirmed=yes
//	POST /reload            retry loading
//	POST /dismiss           hide the error banner
func NewRouter(v *view.View, cfg Config, lg *zap.Logger) *gin.Engine {
	if lg == nil {
		lg = zap.NewNop()
	}
	h := &Handler{view: v, opts: cfg.Render, logger: lg}

	r := gin.New()
	r.Use(middleware.TraceMiddleware(cfg.TracerEnabled, cfg.TracerHeader))
	r.Use(middleware.AccessLogWithLogger(lg))
	r.Use(middleware.RecoveryWithLogger(lg))

	r.GET("/", h.Index)
	r.POST("/notes", h.Create)
	r.POST("/notes/:id/delete", h.Delete)
	r.POST("/reload", h.Reload)
	r.POST("/dismiss", h.Dismiss)
	r.NoRoute(middleware.NoFound())

	return r
}

func (h *Handler) render(c *gin.Context, s view.State, alert string) {
	opts := h.opts
	opts.Alert = alert

	var buf bytes.Buffer
	if err := view.Page(s, opts).Render(c.Request.Context(), &buf); err != nil {
		h.logger.Error("web render page failed", zap.String(logger.FieldTraceID, middleware.GetTraceIDFromGin(c)), zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handler) back(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

// Index 渲染笔记列表页
func (h *Handler) Index(c *gin.Context) {
	h.render(c, h.view.Activate(c.Request.Context()), "")
}

// Create 提交新笔记，校验失败时在页面上弹出提示
func (h *Handler) Create(c *gin.Context) {
	ctx, box := withAlertBox(c.Request.Context())
	s := h.view.Create(ctx, c.PostForm("title"), c.PostForm("content"))
	if box.msg != "" {
		h.render(c, s, box.msg)
		return
	}
	h.back(c)
}

// Delete 删除笔记，confirmed=yes 表示浏览器已确认
func (h *Handler) Delete(c *gin.Context) {
	ctx := withConfirmed(c.Request.Context(), c.PostForm("confirmed") == "yes")
	h.view.Delete(ctx, notestore.NoteID(c.Param("id")))
	h.back(c)
}

func (h *Handler) Reload(c *gin.Context) {
	h.view.Reload(c.Request.Context())
	h.back(c)
}

func (h *Handler) Dismiss(c *gin.Context) {
	h.view.DismissError()
	h.back(c)
}
