package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-ops-api/internal/config"
	"github.com/vfg2006/seller-ops-api/internal/usecases/automation"
	"github.com/vfg2006/seller-ops-api/pkg/metrics"
)

// FeedbackCheckConfig representa a configuração do agendador de pedidos de feedback
type FeedbackCheckConfig struct {
	CronSchedule string
	Enabled      bool
}

// FeedbackCheckService gerencia o agendamento dos pedidos de feedback
type FeedbackCheckService struct {
	scheduler          *gocron.Scheduler
	config             FeedbackCheckConfig
	automationService  automation.AutomationService
	checkRunning       bool
	checkMutex         sync.Mutex
	lastCheckStartedAt time.Time
	lastCheckDoneAt    time.Time
}

// NewFeedbackCheckService cria uma nova instância do serviço de pedidos de feedback
func NewFeedbackCheckService(
	automationService automation.AutomationService,
	appConfig *config.Config,
) *FeedbackCheckService {
	checkConfig := FeedbackCheckConfig{
		CronSchedule: appConfig.FeedbackCheck.CronSchedule,
		Enabled:      appConfig.FeedbackCheck.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": checkConfig.CronSchedule,
		"enabled":       checkConfig.Enabled,
	}).Info("Configuração do agendador de pedidos de feedback carregada")

	return &FeedbackCheckService{
		scheduler:         scheduler,
		config:            checkConfig,
		automationService: automationService,
		checkRunning:      false,
	}
}

// Start inicia o agendador
func (s *FeedbackCheckService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Pedidos de feedback desabilitados por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de pedidos de feedback")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCheck()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar pedidos de feedback: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de pedidos de feedback")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *FeedbackCheckService) runCheck() {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Rodada de pedidos de feedback já em andamento, ignorando")
		return
	}
	s.checkRunning = true
	s.checkMutex.Unlock()

	startTime := time.Now()
	s.lastCheckStartedAt = startTime

	defer func() {
		s.checkMutex.Lock()
		s.checkRunning = false
		s.checkMutex.Unlock()
	}()

	result := s.automationService.RequestFeedbackFromBuyers()
	metrics.JobDuration.WithLabelValues("feedback_check").Observe(time.Since(startTime).Seconds())

	if result.Error != "" {
		logrus.WithField("error", result.Error).Error("Erro na rodada agendada de pedidos de feedback")
		return
	}

	s.lastCheckDoneAt = time.Now()
	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"ready":    result.ReadyForRequest,
		"sent":     result.RequestsSent,
		"failed":   result.Failed,
	}).Info("Rodada agendada de pedidos de feedback concluída")
}

// TriggerManualCheck inicia manualmente a rodada de pedidos de feedback
func (s *FeedbackCheckService) TriggerManualCheck() {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Rodada de pedidos de feedback já em andamento, ignorando solicitação manual")
		return
	}
	s.checkMutex.Unlock()

	logrus.Info("Iniciando rodada manual de pedidos de feedback")
	go s.runCheck()
}

// GetStatus retorna o status atual do agendador
func (s *FeedbackCheckService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"check_running":         s.checkRunning,
		"last_check_started_at": s.lastCheckStartedAt,
		"last_check_done_at":    s.lastCheckDoneAt,
	}
}
