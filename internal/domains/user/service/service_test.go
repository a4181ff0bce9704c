package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"wearecars/config"
	"wearecars/infras/otel/mocks"
	userMocks "wearecars/internal/domains/user/mocks"
	"wearecars/internal/domains/user/model"
	"wearecars/internal/domains/user/model/dto"
	"wearecars/internal/domains/user/service"
	cacheMocks "wearecars/shared/cache/mocks"
	"wearecars/shared/failure"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return cfg
}

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, mocks.NewOtel())

	var inserted model.User

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)
	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user model.User) error {
			inserted = user

			return nil
		})

	done := make(chan struct{})

	var clears int32

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string) error {
			if atomic.AddInt32(&clears, 1) == 2 {
				close(done)
			}

			return nil
		}).
		Times(2)

	err := svc.Create(context.Background(), dto.CreateUserRequest{
		Email:    "staff@wearecars.example",
		Password: "s3cret-pass",
		Role:     "staff",
	})

	assert.NoError(t, err)
	assert.Equal(t, "staff@wearecars.example", inserted.Email)
	assert.Equal(t, "staff", inserted.Role)
	assert.True(t, inserted.Active)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(inserted.Password), []byte("s3cret-pass")))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for cache invalidation")
	}
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	svc := service.New(mockRepo, newTestConfig(), cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel())

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	err := svc.Create(context.Background(), dto.CreateUserRequest{
		Email:    "taken@wearecars.example",
		Password: "s3cret-pass",
		Role:     "staff",
	})

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, mocks.NewOtel())

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.User{ID: "user-id-123", Email: "staff@wearecars.example", Role: "staff"}, nil)
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.Get(context.Background(), "user-id-123")

	assert.NoError(t, err)
	assert.Equal(t, "user-id-123", res.ID)
	assert.Equal(t, "staff", res.Role)
}

func TestUserService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, mocks.NewOtel())

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.User{}, nil)

	_, err := svc.Get(context.Background(), "missing-user")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestUserService_Update_EmptyRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.New(userMocks.NewMockUser(ctrl), newTestConfig(), cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel())

	err := svc.Update(context.Background(), dto.UpdateUserRequest{}, "user-id-123")

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestUserService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	svc := service.New(mockRepo, newTestConfig(), cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel())

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	err := svc.Delete(context.Background(), "missing-user")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
