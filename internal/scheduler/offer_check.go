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

// OfferCheckConfig representa a configuração do agendador de ofertas
type OfferCheckConfig struct {
	CronSchedule string
	Enabled      bool
}

// OfferCheckService gerencia o agendamento do lote de ofertas para observadores
type OfferCheckService struct {
	scheduler          *gocron.Scheduler
	config             OfferCheckConfig
	automationService  automation.AutomationService
	checkRunning       bool
	checkMutex         sync.Mutex
	lastCheckStartedAt time.Time
	lastCheckDoneAt    time.Time
}

// NewOfferCheckService cria uma nova instância do serviço de ofertas agendadas
func NewOfferCheckService(
	automationService automation.AutomationService,
	appConfig *config.Config,
) *OfferCheckService {
	checkConfig := OfferCheckConfig{
		CronSchedule: appConfig.OfferCheck.CronSchedule,
		Enabled:      appConfig.OfferCheck.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": checkConfig.CronSchedule,
		"enabled":       checkConfig.Enabled,
	}).Info("Configuração do agendador de ofertas carregada")

	return &OfferCheckService{
		scheduler:         scheduler,
		config:            checkConfig,
		automationService: automationService,
		checkRunning:      false,
	}
}

// Start inicia o agendador
func (s *OfferCheckService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Lote de ofertas desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do lote de ofertas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCheck()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar lote de ofertas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do lote de ofertas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *OfferCheckService) runCheck() {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Lote de ofertas já em andamento, ignorando")
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

	result := s.automationService.SendOffersToWatchers()
	metrics.JobDuration.WithLabelValues("offer_check").Observe(time.Since(startTime).Seconds())

	if !result.Success {
		logrus.WithField("error", result.Error).Error("Erro no lote agendado de ofertas")
		return
	}

	s.lastCheckDoneAt = time.Now()
	logrus.WithFields(logrus.Fields{
		"duration":      time.Since(startTime).String(),
		"opportunities": result.OpportunitiesFound,
		"offers_sent":   result.OffersSent,
		"failed":        result.Failed,
	}).Info("Lote agendado de ofertas concluído")
}

// TriggerManualCheck inicia manualmente o lote de ofertas
func (s *OfferCheckService) TriggerManualCheck() {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Lote de ofertas já em andamento, ignorando solicitação manual")
		return
	}
	s.checkMutex.Unlock()

	logrus.Info("Iniciando lote manual de ofertas")
	go s.runCheck()
}

// GetStatus retorna o status atual do agendador
func (s *OfferCheckService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"check_running":         s.checkRunning,
		"last_check_started_at": s.lastCheckStartedAt,
		"last_check_done_at":    s.lastCheckDoneAt,
	}
}
