// Package service 实现业务逻辑层
package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/haierkeys/quicknote/internal/domain"
	"github.com/haierkeys/quicknote/internal/dto"
	"github.com/haierkeys/quicknote/pkg/code"
	"github.com/haierkeys/quicknote/pkg/logger"
	"github.com/haierkeys/quicknote/pkg/timex"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// NoteService 定义笔记业务服务接口
type NoteService interface {
	// List 获取全部笔记，按创建时间倒序
	List(ctx context.Context) ([]*dto.NoteDTO, error)

	// Create 创建笔记
	Create(ctx context.Context, params *dto.NoteCreateRequest) (*dto.NoteDTO, error)

	// Delete 删除笔记
	Delete(ctx context.Context, id int64) error
}

const listKey = "list"

// noteService 实现 NoteService 接口
type noteService struct {
	noteRepo domain.NoteRepository
	sf       *singleflight.Group
	config   *ServiceConfig
	logger   *zap.Logger
}

// NewNoteService 创建 NoteService 实例
func NewNoteService(noteRepo domain.NoteRepository, lg *zap.Logger, config *ServiceConfig) NoteService {
	if config == nil {
		config = DefaultServiceConfig()
	}
	if lg == nil {
		lg = zap.NewNop()
	}
	return &noteService{
		noteRepo: noteRepo,
		sf:       &singleflight.Group{},
		config:   config,
		logger:   lg,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *noteService) domainToDTO(note *domain.Note) *dto.NoteDTO {
	if note == nil {
		return nil
	}
	return &dto.NoteDTO{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: timex.Time(note.CreatedAt),
	}
}

// List 获取笔记列表，并发请求合并为一次查询
func (s *noteService) List(ctx context.Context) ([]*dto.NoteDTO, error) {
	// 合并的查询不随任一调用方取消，每个调用方只等待自己的 ctx
	shared := context.WithoutCancel(ctx)
	ch := s.sf.DoChan(listKey, func() (interface{}, error) {
		return s.noteRepo.List(shared)
	})

	var (
		v   interface{}
		err error
	)
	select {
	case res := <-ch:
		v, err = res.Val, res.Err
	case <-ctx.Done():
		err = ctx.Err()
	}
	if err != nil {
		s.logger.Error("list notes failed", zap.Error(err))
		return nil, code.ErrorNoteList.WithDetails(err.Error())
	}

	notes := v.([]*domain.Note)
	list := make([]*dto.NoteDTO, 0, len(notes))
	for _, n := range notes {
		list = append(list, s.domainToDTO(n))
	}
	return list, nil
}

// Create 创建笔记
func (s *noteService) Create(ctx context.Context, params *dto.NoteCreateRequest) (*dto.NoteDTO, error) {
	if params == nil || strings.TrimSpace(params.Title) == "" || strings.TrimSpace(params.Content) == "" {
		return nil, code.ErrorInvalidParams
	}
	if max := s.config.TitleMaxLength; max > 0 && utf8.RuneCountInString(params.Title) > max {
		return nil, code.ErrorInvalidParams.WithDetails("title is longer than 100 characters")
	}

	created, err := s.noteRepo.Create(ctx, &domain.Note{
		Title:   params.Title,
		Content: params.Content,
	})
	if err != nil {
		s.logger.Error("create note failed", zap.Error(err))
		return nil, code.ErrorNoteCreate.WithDetails(err.Error())
	}

	s.sf.Forget(listKey)
	s.logger.Info("note created", zap.Int64(logger.FieldNoteID, created.ID))
	return s.domainToDTO(created), nil
}

// Delete 删除笔记
func (s *noteService) Delete(ctx context.Context, id int64) error {
	if _, err := s.noteRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			return code.ErrorNoteNotFound
		}
		s.logger.Error("get note failed", zap.Int64(logger.FieldNoteID, id), zap.Error(err))
		return code.ErrorNoteDelete.WithDetails(err.Error())
	}

	// 并发删除时记录可能已不存在
	err := s.noteRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			return code.ErrorNoteNotFound
		}
		s.logger.Error("delete note failed", zap.Int64(logger.FieldNoteID, id), zap.Error(err))
		return code.ErrorNoteDelete.WithDetails(err.Error())
	}

	s.sf.Forget(listKey)
	s.logger.Info("note deleted", zap.Int64(logger.FieldNoteID, id))
	return nil
}
