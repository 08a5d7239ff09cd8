// Package domain 定义领域模型和接口
package domain

import "context"

// NoteRepository 笔记仓储接口
type NoteRepository interface {
	// List 获取全部笔记，按创建时间倒序
	List(ctx context.Context) ([]*Note, error)

	// Create 创建笔记，ID 与 CreatedAt 由存储分配
	Create(ctx context.Context, note *Note) (*Note, error)

	// GetByID 根据ID获取笔记
	GetByID(ctx context.Context, id int64) (*Note, error)

	// Delete 物理删除笔记，不存在时返回 ErrNoteNotFound
	Delete(ctx context.Context, id int64) error
}
