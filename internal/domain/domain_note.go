// Package domain 定义领域模型和接口
package domain

import (
	"errors"
	"time"
)

// ErrNoteNotFound is returned by repositories when the requested note does not exist.
// ErrNoteNotFound 笔记不存在
var ErrNoteNotFound = errors.New("note not found")

// Note 笔记领域模型
type Note struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
}
