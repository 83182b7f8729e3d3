package service

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/dushixiang/tradenote/internal/config"
	"github.com/dushixiang/tradenote/internal/models"
	"github.com/dushixiang/tradenote/internal/repo"
	"github.com/dushixiang/tradenote/internal/xe"
	"github.com/dushixiang/tradenote/pkg/nostd"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StorageService 截图附件存储服务，文件落盘，元数据入库
type StorageService struct {
	logger         *zap.Logger
	attachmentRepo *repo.AttachmentRepo
	conf           config.UploadConf
}

func NewStorageService(db *gorm.DB, logger *zap.Logger, conf *config.Config) *StorageService {
	return &StorageService{
		logger:         logger,
		attachmentRepo: repo.NewAttachmentRepo(db),
		conf:           conf.Upload,
	}
}

func (s *StorageService) dir() string {
	if s.conf.Dir != "" {
		return s.conf.Dir
	}
	return "data/uploads"
}

// MaxSize 单个文件大小上限，字节
func (s *StorageService) MaxSize() int64 {
	if s.conf.MaxSizeMB > 0 {
		return int64(s.conf.MaxSizeMB) << 20
	}
	return 10 << 20
}

// Save 保存上传的截图，返回附件记录
//
// 磁盘文件名就是附件ID，不保留原始文件名，避免路径注入。
func (s *StorageService) Save(ctx context.Context, fileName, contentType string, size int64, r io.Reader) (*models.Attachment, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, xe.ErrInvalidImage
	}
	if size > s.MaxSize() {
		return nil, xe.ErrInvalidImage
	}

	if err := os.MkdirAll(s.dir(), 0o755); err != nil {
		return nil, err
	}

	id := ulid.Make().String()
	path, err := nostd.SafePathJoin(s.dir(), id)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	written, err := io.Copy(f, io.LimitReader(r, s.MaxSize()+1))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && written > s.MaxSize() {
		err = xe.ErrInvalidImage
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, err
	}

	attachment := &models.Attachment{
		ID:          id,
		FileName:    fileName,
		ContentType: contentType,
		Size:        written,
	}
	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		_ = os.Remove(path)
		return nil, err
	}

	s.logger.Info("attachment stored",
		zap.String("id", id),
		zap.String("content_type", contentType),
		zap.Int64("size", written))
	return attachment, nil
}

// Open 打开附件文件，调用方负责关闭
func (s *StorageService) Open(ctx context.Context, id string) (*models.Attachment, *os.File, error) {
	attachment, err := s.attachmentRepo.FindById(ctx, id)
	if err != nil {
		return nil, nil, xe.ErrInvalidImage
	}
	path, err := nostd.SafePathJoin(s.dir(), id)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return &attachment, f, nil
}

// Delete 删除磁盘上的附件文件
func (s *StorageService) Delete(id string) error {
	path, err := nostd.SafePathJoin(s.dir(), id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// DeleteAttachment 删除未关联交易的附件记录和文件
func (s *StorageService) DeleteAttachment(ctx context.Context, id string) error {
	attachment, err := s.attachmentRepo.FindById(ctx, id)
	if err != nil {
		return xe.ErrInvalidImage
	}
	if attachment.TradeID != "" {
		return xe.ErrAttachmentInUse
	}
	if err := s.attachmentRepo.DeleteById(ctx, id); err != nil {
		return err
	}
	return s.Delete(id)
}
