package api_router

import (
	"net/http"

	"github.com/haierkeys/quicknote/internal/app"
	"github.com/haierkeys/quicknote/internal/dto"
	pkgapp "github.com/haierkeys/quicknote/pkg/app"
	"github.com/haierkeys/quicknote/pkg/code"
	apperrors "github.com/haierkeys/quicknote/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteHandler 笔记 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type NoteHandler struct {
	*Handler
}

// NewNoteHandler 创建 NoteHandler 实例
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{
		Handler: NewHandler(a),
	}
}

// List 获取全部笔记
// 返回笔记数组（不包裹统一结构），按创建时间倒序
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	notes, err := h.App.NoteService.List(ctx)
	if err != nil {
		h.logError(ctx, "NoteHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToJSON(http.StatusOK, notes)
}

// Create 创建笔记
// 成功返回 201 与新笔记，缺少 title/content 返回 400
func (h *NoteHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteCreateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("NoteHandler.Create.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	note, err := h.App.NoteService.Create(ctx, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToJSON(http.StatusCreated, note)
}

// Delete 删除笔记
// 成功返回 200 {message}，不存在返回 404 {message}
func (h *NoteHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteIDRequest{}

	valid, errs := pkgapp.BindUriAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("NoteHandler.Delete.BindUriAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorNoteNotFound.WithDetails(errs.ErrorsToString()))
		return
	}

	ctx := c.Request.Context()

	if err := h.App.NoteService.Delete(ctx, params.ID); err != nil {
		h.logError(ctx, "NoteHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessNoteDeleted)
}
