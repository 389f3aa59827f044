package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/mock/gomock"

	"github.com/aeroops/lostfound/internal/entity"
	"github.com/aeroops/lostfound/internal/mocks"
	"github.com/aeroops/lostfound/internal/service"
	"github.com/aeroops/lostfound/pkg/config"
)

type TestService struct {
	repo     *mocks.MockRepository
	images   *mocks.MockImageHost
	producer *mocks.MockProducer
	s        *service.Service
}

func NewTestService(t *testing.T) *TestService {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	images := mocks.NewMockImageHost(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	cfg := config.Config{
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			AccessTokenExpiry: time.Hour,
		},
	}

	return &TestService{
		repo:     repo,
		images:   images,
		producer: producer,
		s:        service.New(cfg, repo, images, producer),
	}
}

func testUser(role entity.Role, permissions ...string) entity.User {
	user := entity.User{
		ID:             uuid.Must(uuid.NewV4()),
		EmployeeNumber: "AC10001",
		FirstName:      "Maria",
		LastName:       "Silva",
		Role:           role,
	}

	for _, name := range permissions {
		user.Permissions = append(user.Permissions, entity.Permission{
			ID:   uuid.Must(uuid.NewV4()),
			Name: name,
		})
	}

	return user
}

func ctxWithUser(user entity.User) context.Context {
	return entity.SetUserToContext(context.Background(), user)
}
