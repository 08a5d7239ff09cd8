// Package dto 请求与响应数据结构
package dto

import "github.com/haierkeys/quicknote/pkg/timex"

// NoteCreateRequest 创建笔记请求
type NoteCreateRequest struct {
	Title   string `json:"title" form:"title" binding:"required,notblank,max=100"`
	Content string `json:"content" form:"content" binding:"required,notblank"`
}

// NoteIDRequest 路径参数中的笔记 ID
type NoteIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// NoteDTO 笔记数据传输对象，字段名与原接口保持一致
type NoteDTO struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt timex.Time `json:"created_at"`
}

// MessageDTO 仅包含提示信息的响应
type MessageDTO struct {
	Message string `json:"message"`
}
