package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/SergeyMilov/gopoints/internal/notifier"
	"github.com/SergeyMilov/gopoints/internal/pg"
	"github.com/SergeyMilov/gopoints/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB)
	events := notifier.New(notifier.LogSink{}, 1)
	defer events.Close()
	txManager := pg.NewMockTXManager(ctrl)

	services := New(repos, events, txManager)

	assert.NotNil(t, services.RankService)
	assert.NotNil(t, services.PointsService)
	assert.NotNil(t, services.TransactionService)
	assert.NotNil(t, services.RewardService)
	assert.NotNil(t, services.RedemptionService)
}
