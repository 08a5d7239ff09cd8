package dao

import (
	"context"
	"time"

	"github.com/haierkeys/quicknote/internal/domain"
	"github.com/haierkeys/quicknote/internal/model"
	"github.com/haierkeys/quicknote/pkg/timex"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// noteRepository 实现 domain.NoteRepository 接口
type noteRepository struct {
	dao *Dao
}

// NewNoteRepository 创建 NoteRepository 实例
func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

func (r *noteRepository) db(ctx context.Context) (*gorm.DB, error) {
	return r.dao.DB(ctx, "Note")
}

// toDomain 将 DAO Note 转换为领域模型
func (r *noteRepository) toDomain(m *model.Note) (*domain.Note, error) {
	if m == nil {
		return nil, nil
	}
	note := &domain.Note{}
	if err := copier.Copy(note, m); err != nil {
		return nil, errors.Wrap(err, "convert note model")
	}
	note.CreatedAt = time.Time(m.CreatedAt).UTC()
	return note, nil
}

// toModel 将领域模型转换为数据库模型
func (r *noteRepository) toModel(note *domain.Note) (*model.Note, error) {
	m := &model.Note{}
	if err := copier.CopyWithOption(m, note, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, errors.Wrap(err, "convert note")
	}
	if !note.CreatedAt.IsZero() {
		m.CreatedAt = timex.Time(note.CreatedAt)
	}
	return m, nil
}

// List 获取全部笔记，按创建时间倒序，同一时间按 ID 倒序
func (r *noteRepository) List(ctx context.Context) ([]*domain.Note, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	var rows []*model.Note
	if err := db.Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list notes")
	}
	notes := make([]*domain.Note, 0, len(rows))
	for _, m := range rows {
		note, err := r.toDomain(m)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, nil
}

// Create 创建笔记
func (r *noteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	m, err := r.toModel(note)
	if err != nil {
		return nil, err
	}
	m.ID = 0
	if time.Time(m.CreatedAt).IsZero() {
		m.CreatedAt = timex.Time(time.Now().UTC())
	}
	if err := db.Create(m).Error; err != nil {
		return nil, errors.Wrap(err, "create note")
	}
	return r.toDomain(m)
}

// GetByID 根据ID获取笔记
func (r *noteRepository) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	m := &model.Note{}
	if err := db.Where("id = ?", id).First(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, errors.Wrap(err, "get note")
	}
	return r.toDomain(m)
}

// Delete 物理删除笔记
func (r *noteRepository) Delete(ctx context.Context, id int64) error {
	db, err := r.db(ctx)
	if err != nil {
		return err
	}
	res := db.Where("id = ?", id).Delete(&model.Note{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete note")
	}
	if res.RowsAffected == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}
