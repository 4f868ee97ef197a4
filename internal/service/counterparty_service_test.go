package service_test

import (
	"context"
	"testing"
	"time"

	"smart-global-hub/internal/dto"
	"smart-global-hub/internal/models"
	"smart-global-hub/internal/repository"
	"smart-global-hub/internal/service"
	mock_service "smart-global-hub/internal/service/mocks"
	"smart-global-hub/pkg/cache"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCounterpartyService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_service.NewMockCounterpartyStore(ctrl)
	svc := service.NewCounterpartyService(models.PartyAgent, store, cache.NewMemory(), zap.NewNop())
	tenantID := uuid.New()

	store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	got, err := svc.Create(context.Background(), tenantID, &dto.CounterpartyRequest{Name: "  Golden Gate Travel  ", Phone: "+971 4 000"})
	require.NoError(t, err)
	assert.Equal(t, "Golden Gate Travel", got.Name)
	assert.Equal(t, tenantID.String(), got.TenantID)

	store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicate)
	_, err = svc.Create(context.Background(), tenantID, &dto.CounterpartyRequest{Name: "Golden Gate Travel"})
	assert.ErrorIs(t, err, service.ErrAlreadyExists)
}

func TestCounterpartyService_Delete(t *testing.T) {
	tenantID, id := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		inUse   bool
		delErr  error
		wantErr error
	}{
		{name: "deleted", wantErr: nil},
		{name: "has transactions", inUse: true, wantErr: service.ErrInUse},
		{name: "credit balance without transactions", inUse: true, wantErr: service.ErrInUse},
		{name: "missing", delErr: repository.ErrNotFound, wantErr: service.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mock_service.NewMockCounterpartyStore(ctrl)
			svc := service.NewCounterpartyService(models.PartySupplier, store, cache.NewMemory(), zap.NewNop())

			store.EXPECT().InUse(gomock.Any(), tenantID, id).Return(tt.inUse, nil)
			if !tt.inUse {
				store.EXPECT().Delete(gomock.Any(), tenantID, id).Return(tt.delErr)
			}

			err := svc.Delete(context.Background(), tenantID, id)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCounterpartyService_UpdateDropsCachedStatistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_service.NewMockCounterpartyStore(ctrl)
	c := cache.NewMemory()
	svc := service.NewCounterpartyService(models.PartyAgent, store, c, zap.NewNop())
	tenantID, id := uuid.New(), uuid.New()

	key := "dashboard:" + tenantID.String() + ":agent"
	stale := []dto.CounterpartyStatisticResponse{{CounterpartyID: id.String(), CounterpartyName: "Old Name"}}
	require.NoError(t, c.Set(context.Background(), key, stale, time.Minute))

	store.EXPECT().GetByID(gomock.Any(), tenantID, id).Return(&models.Counterparty{ID: id, TenantID: tenantID, Name: "Old Name"}, nil)
	store.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Update(context.Background(), tenantID, id, &dto.CounterpartyRequest{Name: "New Name"})
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)

	var cached []dto.CounterpartyStatisticResponse
	found, err := c.Get(context.Background(), key, &cached)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCounterpartyService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_service.NewMockCounterpartyStore(ctrl)
	svc := service.NewCounterpartyService(models.PartyAgent, store, cache.NewMemory(), zap.NewNop())
	tenantID := uuid.New()

	store.EXPECT().List(gomock.Any(), tenantID, "gold", uint64(10), uint64(0)).
		Return([]*models.Counterparty{{ID: uuid.New(), Name: "Gold"}}, int64(1), nil)

	got, err := svc.List(context.Background(), tenantID, " gold ", dto.NewPageRequest(0, 0))
	require.NoError(t, err)
	assert.Len(t, got.Data, 1)
	assert.Equal(t, 1, got.Meta.CurrentPage)
	assert.Equal(t, int64(1), got.Meta.TotalPages)
}
