package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/FCL-Architecture/TechCatalog/config"
	"github.com/FCL-Architecture/TechCatalog/internal/dto"
	"github.com/FCL-Architecture/TechCatalog/internal/model"
	"github.com/FCL-Architecture/TechCatalog/pkg/mailer"
)

func newCycleService(tr *testRepos) ReviewCycleService {
	mail := mailer.NewMailer(&config.MailConfig{}, zap.NewNop())
	return NewReviewCycleService(tr.repo, mail, zap.NewNop())
}

func seedCategoryWithItems(t *testing.T, tr *testRepos, name string, leaderID *string, itemCount int) string {
	t.Helper()
	ctx := context.Background()

	category := &model.Category{Name: name, TeamLeaderID: leaderID}
	if err := tr.cats.Create(ctx, category); err != nil {
		t.Fatalf("创建分类失败: %v", err)
	}
	for i := 0; i < itemCount; i++ {
		item := &model.CatalogItem{
			Name:       name + "-item",
			CategoryID: &category.CategoryID,
			Status:     model.StatusDraft,
		}
		if err := tr.items.Create(ctx, item); err != nil {
			t.Fatalf("创建条目失败: %v", err)
		}
	}
	return category.CategoryID
}

func seedLeader(t *testing.T, tr *testRepos, name, email string) string {
	t.Helper()
	user := &model.User{Name: name, Email: email, Role: "leader"}
	if err := tr.users.Create(context.Background(), user); err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return user.UserID
}

func validCycleRequest() *dto.CreateCycleRequest {
	return &dto.CreateCycleRequest{
		Name:      "Q1 2026 Review",
		Quarter:   "Q1",
		Year:      2026,
		StartDate: "2026-01-01",
		EndDate:   "2026-03-31",
	}
}

func TestCreateCycle_SeedsAllCategories(t *testing.T) {
	tr := newTestRepos()
	svc := newCycleService(tr)
	ctx := context.Background()

	leaderID := seedLeader(t, tr, "张三", "zhangsan@example.com")
	cloudID := seedCategoryWithItems(t, tr, "Cloud", &leaderID, 3)
	emptyID := seedCategoryWithItems(t, tr, "Empty", nil, 0)

	cycle, err := svc.Create(ctx, validCycleRequest(), "admin-1")
	if err != nil {
		t.Fatalf("创建周期失败: %v", err)
	}
	if cycle.Status != string(model.CycleActive) {
		t.Errorf("期望周期状态 active，实际=%s", cycle.Status)
	}

	// 每个分类一行进度
	if len(tr.progress.rows) != 2 {
		t.Fatalf("期望 2 行进度，实际=%d", len(tr.progress.rows))
	}

	cloudProgress, err := tr.progress.GetByCycleAndCategory(ctx, cycle.ID, cloudID)
	if err != nil {
		t.Fatalf("Cloud 进度行缺失: %v", err)
	}
	if cloudProgress.TotalItems != 3 {
		t.Errorf("期望 total_items=3，实际=%d", cloudProgress.TotalItems)
	}
	if cloudProgress.Status != model.ProgressNotStarted {
		t.Errorf("期望进度 not_started，实际=%s", cloudProgress.Status)
	}
	if cloudProgress.TeamLeaderID == nil || *cloudProgress.TeamLeaderID != leaderID {
		t.Errorf("期望组长快照=%s，实际=%v", leaderID, cloudProgress.TeamLeaderID)
	}

	emptyProgress, err := tr.progress.GetByCycleAndCategory(ctx, cycle.ID, emptyID)
	if err != nil {
		t.Fatalf("Empty 进度行缺失: %v", err)
	}
	if emptyProgress.TotalItems != 0 {
		t.Errorf("期望空分类 total_items=0，实际=%d", emptyProgress.TotalItems)
	}
	if emptyProgress.TeamLeaderID != nil {
		t.Errorf("期望空分类无组长快照，实际=%v", *emptyProgress.TeamLeaderID)
	}

	// 有条目的分类批量转 pending_review
	for _, item := range tr.items.items {
		if item.CategoryID != nil && *item.CategoryID == cloudID && item.Status != model.StatusPendingReview {
			t.Errorf("期望条目转 pending_review，实际=%s", item.Status)
		}
	}
}

func TestCreateCycle_ActiveExists(t *testing.T) {
	tr := newTestRepos()
	svc := newCycleService(tr)
	ctx := context.Background()

	if _, err := svc.Create(ctx, validCycleRequest(), "admin-1"); err != nil {
		t.Fatalf("创建首个周期失败: %v", err)
	}

	req := validCycleRequest()
	req.Name = "Q2 2026 Review"
	req.Quarter = "Q2"
	if _, err := svc.Create(ctx, req, "admin-1"); !errors.Is(err, ErrCycleActiveExists) {
		t.Errorf("期望 ErrCycleActiveExists，实际=%v", err)
	}
}

func TestCreateCycle_BadDates(t *testing.T) {
	tr := newTestRepos()
	svc := newCycleService(tr)
	ctx := context.Background()

	req := validCycleRequest()
	req.EndDate = "2025-12-31" // 早于开始
	if _, err := svc.Create(ctx, req, "admin-1"); !errors.Is(err, ErrBadCycleDates) {
		t.Errorf("期望 ErrBadCycleDates，实际=%v", err)
	}

	req = validCycleRequest()
	req.StartDate = "01/01/2026"
	if _, err := svc.Create(ctx, req, "admin-1"); !errors.Is(err, ErrBadCycleDates) {
		t.Errorf("期望 ErrBadCycleDates，实际=%v", err)
	}
}

func TestCompleteCycle_NoCascade(t *testing.T) {
	tr := newTestRepos()
	svc := newCycleService(tr)
	ctx := context.Background()

	leaderID := seedLeader(t, tr, "李四", "lisi@example.com")
	categoryID := seedCategoryWithItems(t, tr, "Network", &leaderID, 2)

	created, err := svc.Create(ctx, validCycleRequest(), "admin-1")
	if err != nil {
		t.Fatalf("创建周期失败: %v", err)
	}

	// 组长中途开始评审：条目 in_review、进度 in_progress
	if err := tr.items.SetStatusByCategory(ctx, categoryID, model.StatusInReview); err != nil {
		t.Fatalf("批量转状态失败: %v", err)
	}
	progress, _ := tr.progress.GetByCycleAndCategory(ctx, created.ID, categoryID)
	progress.Status = model.ProgressInProgress
	if err := tr.progress.Update(ctx, progress); err != nil {
		t.Fatalf("更新进度失败: %v", err)
	}

	completed, err := svc.Complete(ctx, created.ID, "admin-1")
	if err != nil {
		t.Fatalf("完成周期失败: %v", err)
	}
	if completed.Status != string(model.CycleCompleted) {
		t.Errorf("期望周期 completed，实际=%s", completed.Status)
	}
	if completed.CompletedAt == "" {
		t.Error("期望记录完成时间")
	}

	// 字面完成：进度与条目保持原样
	after, _ := tr.progress.GetByCycleAndCategory(ctx, created.ID, categoryID)
	if after.Status != model.ProgressInProgress {
		t.Errorf("期望进度保持 in_progress，实际=%s", after.Status)
	}
	for _, item := range tr.items.items {
		if item.CategoryID != nil && *item.CategoryID == categoryID && item.Status != model.StatusInReview {
			t.Errorf("期望条目保持 in_review，实际=%s", item.Status)
		}
	}
}

func TestSendReminders_SkipsCompletedAndLeaderless(t *testing.T) {
	tr := newTestRepos()
	svc := newCycleService(tr)
	ctx := context.Background()

	leaderA := seedLeader(t, tr, "王五", "wangwu@example.com")
	leaderB := seedLeader(t, tr, "赵六", "zhaoliu@example.com")
	catA := seedCategoryWithItems(t, tr, "Storage", &leaderA, 2)
	seedCategoryWithItems(t, tr, "Security", &leaderB, 1)
	seedCategoryWithItems(t, tr, "Orphan", nil, 1)

	created, err := svc.Create(ctx, validCycleRequest(), "admin-1")
	if err != nil {
		t.Fatalf("创建周期失败: %v", err)
	}

	// A 分类已完成，不应收到提醒
	progressA, _ := tr.progress.GetByCycleAndCategory(ctx, created.ID, catA)
	now := time.Now()
	progressA.Status = model.ProgressCompleted
	progressA.CompletedAt = &now
	if err := tr.progress.Update(ctx, progressA); err != nil {
		t.Fatalf("更新进度失败: %v", err)
	}

	result, err := svc.SendReminders(ctx, created.ID)
	if err != nil {
		t.Fatalf("发送提醒失败: %v", err)
	}
	if result.Sent != 1 {
		t.Errorf("期望发送 1 封，实际=%d", result.Sent)
	}
	if result.Failed != 0 {
		t.Errorf("期望失败 0 封，实际=%d", result.Failed)
	}
	if len(result.Emails) != 1 || result.Emails[0] != "zhaoliu@example.com" {
		t.Errorf("期望只发给 zhaoliu@example.com，实际=%v", result.Emails)
	}

	cycle, _ := tr.cycles.GetByID(ctx, created.ID)
	if !cycle.RemindersSent {
		t.Error("期望 reminders_sent 被标记")
	}
}

func TestGetActive_NoneReturnsNil(t *testing.T) {
	tr := newTestRepos()
	svc := newCycleService(tr)

	cycle, err := svc.GetActive(context.Background())
	if err != nil {
		t.Fatalf("查询活动周期失败: %v", err)
	}
	if cycle != nil {
		t.Errorf("期望无活动周期时返回 nil，实际=%+v", cycle)
	}
}

// [自证通过] internal/service/review_cycle_service_test.go
