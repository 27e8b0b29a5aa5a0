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

// StaleCheckConfig representa a configuração do agendador de anúncios parados
type StaleCheckConfig struct {
	CronSchedule string
	Enabled      bool
}

// StaleCheckService gerencia o agendamento da checagem de anúncios parados
type StaleCheckService struct {
	scheduler          *gocron.Scheduler
	config             StaleCheckConfig
	automationService  automation.AutomationService
	checkRunning       bool
	checkMutex         sync.Mutex
	lastCheckStartedAt time.Time
	lastCheckDoneAt    time.Time
}

// NewStaleCheckService cria uma nova instância do serviço de checagem de anúncios parados
func NewStaleCheckService(
	automationService automation.AutomationService,
	appConfig *config.Config,
) *StaleCheckService {
	checkConfig := StaleCheckConfig{
		CronSchedule: appConfig.StaleCheck.CronSchedule,
		Enabled:      appConfig.StaleCheck.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": checkConfig.CronSchedule,
		"enabled":       checkConfig.Enabled,
	}).Info("Configuração do agendador de anúncios parados carregada")

	return &StaleCheckService{
		scheduler:         scheduler,
		config:            checkConfig,
		automationService: automationService,
		checkRunning:      false,
	}
}

// Start inicia o agendador
func (s *StaleCheckService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Checagem de anúncios parados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de checagem de anúncios parados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCheck()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar checagem de anúncios parados: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de checagem de anúncios parados")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *StaleCheckService) runCheck() {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Checagem de anúncios parados já em andamento, ignorando")
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

	result := s.automationService.CheckStaleListings()
	metrics.JobDuration.WithLabelValues("stale_check").Observe(time.Since(startTime).Seconds())

	if !result.Success {
		logrus.WithField("error", result.Error).Error("Erro na checagem agendada de anúncios parados")
		return
	}

	s.lastCheckDoneAt = time.Now()
	logrus.WithFields(logrus.Fields{
		"duration":    time.Since(startTime).String(),
		"stale_count": result.StaleCount,
		"relisted":    result.Relisted,
		"failed":      result.Failed,
	}).Info("Checagem agendada de anúncios parados concluída")
}

// TriggerManualCheck inicia manualmente uma checagem de anúncios parados
func (s *StaleCheckService) TriggerManualCheck() {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Checagem de anúncios parados já em andamento, ignorando solicitação manual")
		return
	}
	s.checkMutex.Unlock()

	logrus.Info("Iniciando checagem manual de anúncios parados")
	go s.runCheck()
}

// GetStatus retorna o status atual do agendador
func (s *StaleCheckService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"check_running":         s.checkRunning,
		"last_check_started_at": s.lastCheckStartedAt,
		"last_check_done_at":    s.lastCheckDoneAt,
	}
}
