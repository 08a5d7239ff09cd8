package code

import "net/http"

var (
	Success = NewSuss(200, http.StatusOK, lang{en: "Success", zh_cn: "成功"})
	Created = NewSuss(201, http.StatusCreated, lang{en: "Created", zh_cn: "已创建"})

	Failed               = NewError(400, http.StatusBadRequest, lang{en: "Failed", zh_cn: "失败"})
	ErrorNotFoundAPI     = NewError(404, http.StatusNotFound, lang{en: "API not found", zh_cn: "接口不存在"})
	ErrorTooManyRequests = NewError(429, http.StatusTooManyRequests, lang{en: "Too many requests", zh_cn: "请求过多"})
	ErrorServerInternal  = NewError(500, http.StatusInternalServerError, lang{en: "Internal Server Error", zh_cn: "服务器内部错误"})
	ErrorInvalidParams   = NewError(1001, http.StatusBadRequest, lang{en: "Title and content are required!", zh_cn: "标题和内容不能为空！"})
	ErrorDBUnavailable   = NewError(1002, http.StatusServiceUnavailable, lang{en: "Database unavailable", zh_cn: "数据库不可用"})
)

// Note store results.
var (
	SuccessNoteDeleted = NewSuss(2001, http.StatusOK, lang{en: "Note deleted successfully!", zh_cn: "笔记删除成功！"})
	ErrorNoteNotFound  = NewError(2002, http.StatusNotFound, lang{en: "Note not found!", zh_cn: "笔记不存在！"})
	ErrorNoteCreate    = NewError(2003, http.StatusInternalServerError, lang{en: "Error adding note", zh_cn: "添加笔记失败"})
	ErrorNoteDelete    = NewError(2004, http.StatusInternalServerError, lang{en: "Error deleting note", zh_cn: "删除笔记失败"})
	ErrorNoteList      = NewError(2005, http.StatusInternalServerError, lang{en: "Error listing notes", zh_cn: "获取笔记列表失败"})
)

// Note List View messages shown to the user by the clients.
var (
	ErrorLoadNotes  = NewError(3001, 0, lang{en: "Failed to load notes. Please try again.", zh_cn: "加载笔记失败，请重试。"})
	ErrorAddNote    = NewError(3002, 0, lang{en: "Failed to add note. Please try again.", zh_cn: "添加笔记失败，请重试。"})
	ErrorDeleteNote = NewError(3003, 0, lang{en: "Failed to delete note. Please try again.", zh_cn: "删除笔记失败，请重试。"})
	ErrorDraftEmpty = NewError(3004, 0, lang{en: "Title and Content cannot be empty!", zh_cn: "标题和内容不能为空！"})

	PromptDeleteNote = NewSuss(3101, 0, lang{en: "Are you sure you want to delete this note?", zh_cn: "确定要删除这条笔记吗？"})
	PromptNoNotes    = NewSuss(3102, 0, lang{en: "No notes yet. Add one above!", zh_cn: "还没有笔记，在上方添加一条吧！"})
	PromptLoading    = NewSuss(3103, 0, lang{en: "Loading notes...", zh_cn: "正在加载笔记..."})
)
