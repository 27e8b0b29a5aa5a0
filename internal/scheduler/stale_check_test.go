package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/seller-ops-api/internal/config"
	"github.com/vfg2006/seller-ops-api/internal/domain"
	"github.com/vfg2006/seller-ops-api/internal/usecases/automation/mocks"
	"go.uber.org/mock/gomock"
)

func TestStaleCheckService_runCheck(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(service *mocks.MockAutomationService)
		validate func(t *testing.T, s *StaleCheckService)
	}{
		{
			name: "Checagem bem-sucedida atualiza o horário da última execução",
			setup: func(service *mocks.MockAutomationService) {
				service.EXPECT().CheckStaleListings().Return(&domain.StaleCheckResult{
					Success:    true,
					StaleCount: 3,
					Relisted:   2,
					Failed:     1,
				})
			},
			validate: func(t *testing.T, s *StaleCheckService) {
				assert.False(t, s.lastCheckStartedAt.IsZero())
				assert.False(t, s.lastCheckDoneAt.IsZero())
				assert.False(t, s.checkRunning)
			},
		},
		{
			name: "Checagem com falha não marca a conclusão",
			setup: func(service *mocks.MockAutomationService) {
				service.EXPECT().CheckStaleListings().Return(&domain.StaleCheckResult{
					Success: false,
					Error:   "espelho local indisponível",
				})
			},
			validate: func(t *testing.T, s *StaleCheckService) {
				assert.False(t, s.lastCheckStartedAt.IsZero())
				assert.True(t, s.lastCheckDoneAt.IsZero())
				assert.False(t, s.checkRunning)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			automationService := mocks.NewMockAutomationService(ctrl)
			tt.setup(automationService)

			service := &StaleCheckService{
				config:            StaleCheckConfig{CronSchedule: "0 3 * * *", Enabled: true},
				automationService: automationService,
			}

			service.runCheck()
			tt.validate(t, service)
		})
	}
}

func TestStaleCheckService_runCheck_JaEmAndamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Sem expectativa: a checagem em andamento impede uma nova chamada
	automationService := mocks.NewMockAutomationService(ctrl)

	service := &StaleCheckService{
		config:            StaleCheckConfig{CronSchedule: "0 3 * * *", Enabled: true},
		automationService: automationService,
		checkRunning:      true,
	}

	service.runCheck()

	assert.True(t, service.checkRunning)
	assert.True(t, service.lastCheckStartedAt.IsZero())
}

func TestStaleCheckService_Start_Desabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	automationService := mocks.NewMockAutomationService(ctrl)

	appConfig := &config.Config{
		StaleCheck: config.StaleCheck{CronSchedule: "0 3 * * *", Enabled: false},
	}

	service := NewStaleCheckService(automationService, appConfig)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := service.Start(ctx)

	assert.NoError(t, err)
	assert.False(t, service.GetStatus()["enabled"].(bool))
}

func TestStaleCheckService_GetStatus(t *testing.T) {
	startedAt := time.Date(2024, 6, 15, 3, 0, 0, 0, time.UTC)

	service := &StaleCheckService{
		config:             StaleCheckConfig{CronSchedule: "0 3 * * *", Enabled: true},
		lastCheckStartedAt: startedAt,
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "0 3 * * *", status["cron"])
	assert.Equal(t, false, status["check_running"])
	assert.Equal(t, startedAt, status["last_check_started_at"])
}
