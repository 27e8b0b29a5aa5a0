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

// ListingSyncConfig representa a configuração do agendador de sincronização
type ListingSyncConfig struct {
	IntervalMinutes     int
	SoldIntervalMinutes int
	SyncEnabled         bool
}

// ListingSyncService gerencia o agendamento da sincronização de anúncios e vendas
type ListingSyncService struct {
	scheduler           *gocron.Scheduler
	config              ListingSyncConfig
	automationService   automation.AutomationService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSoldSyncAt      time.Time
}

// NewListingSyncService cria uma nova instância do serviço de sincronização
func NewListingSyncService(
	automationService automation.AutomationService,
	appConfig *config.Config,
) *ListingSyncService {
	syncConfig := ListingSyncConfig{
		IntervalMinutes:     appConfig.ListingSync.IntervalMinutes,
		SoldIntervalMinutes: appConfig.ListingSync.SoldIntervalMinutes,
		SyncEnabled:         appConfig.ListingSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"interval_minutes":      syncConfig.IntervalMinutes,
		"sold_interval_minutes": syncConfig.SoldIntervalMinutes,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização carregada")

	return &ListingSyncService{
		scheduler:         scheduler,
		config:            syncConfig,
		automationService: automationService,
		syncRunning:       false,
	}
}

// Start inicia o agendador
func (s *ListingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de anúncios desabilitada por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"interval_minutes":      s.config.IntervalMinutes,
		"sold_interval_minutes": s.config.SoldIntervalMinutes,
	}).Info("Iniciando agendador de sincronização de anúncios")

	_, err := s.scheduler.Every(time.Duration(s.config.IntervalMinutes) * time.Minute).Do(func() {
		s.syncListings()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de anúncios: %w", err)
	}

	_, err = s.scheduler.Every(time.Duration(s.config.SoldIntervalMinutes) * time.Minute).Do(func() {
		s.syncSoldItems()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de anúncios")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ListingSyncService) syncListings() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de anúncios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	timer := metrics.JobDuration.WithLabelValues("listing_sync")

	stats, err := s.automationService.SyncListings()
	timer.Observe(time.Since(startTime).Seconds())
	if err != nil {
		logrus.WithError(err).Error("Erro na sincronização agendada de anúncios")
		return
	}

	s.lastSyncCompletedAt = time.Now()
	logrus.WithFields(logrus.Fields{
		"duration":    time.Since(startTime).String(),
		"total":       stats.Total,
		"new":         stats.New,
		"updated":     stats.Updated,
		"deactivated": stats.Deactivated,
	}).Info("Sincronização agendada de anúncios concluída")
}

func (s *ListingSyncService) syncSoldItems() {
	startTime := time.Now()
	timer := metrics.JobDuration.WithLabelValues("sold_sync")

	stats, err := s.automationService.SyncSoldItems()
	timer.Observe(time.Since(startTime).Seconds())
	if err != nil {
		logrus.WithError(err).Error("Erro na sincronização agendada de vendas")
		return
	}

	s.lastSoldSyncAt = time.Now()
	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"total":    stats.Total,
		"new":      stats.New,
		"updated":  stats.Updated,
	}).Info("Sincronização agendada de vendas concluída")
}

// TriggerManualSync inicia manualmente uma sincronização de anúncios
func (s *ListingSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de anúncios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de anúncios")
	go s.syncListings()
}

// TriggerManualSoldSync inicia manualmente uma sincronização de vendas
func (s *ListingSyncService) TriggerManualSoldSync() {
	logrus.Info("Iniciando sincronização manual de vendas")
	go s.syncSoldItems()
}

// GetStatus retorna o status atual do agendador
func (s *ListingSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"interval_minutes":       s.config.IntervalMinutes,
		"sold_interval_minutes":  s.config.SoldIntervalMinutes,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sold_sync_at":      s.lastSoldSyncAt,
	}
}
