package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/aeroops/lostfound/internal/entity"
	"github.com/aeroops/lostfound/pkg/broker"
	"github.com/aeroops/lostfound/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateUser(ctx context.Context, user entity.User) error
	UserByID(ctx context.Context, id uuid.UUID) (entity.User, error)
	UserByEmployeeNumber(ctx context.Context, employeeNumber string) (entity.User, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
	UpdateUserRole(ctx context.Context, id uuid.UUID, role entity.Role) error
	UpdateUserPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ReplaceUserPermissions(ctx context.Context, userID uuid.UUID, permissions []entity.Permission) error

	CreatePermission(ctx context.Context, p entity.Permission) error
	PermissionByID(ctx context.Context, id uuid.UUID) (entity.Permission, error)
	ListPermissions(ctx context.Context) ([]entity.Permission, error)
	PermissionsByNames(ctx context.Context, names []string) ([]entity.Permission, error)
	UpdatePermission(ctx context.Context, p entity.Permission) error
	DeletePermission(ctx context.Context, id uuid.UUID) error
	PermissionHolders(ctx context.Context, permissionID uuid.UUID) ([]entity.UserSummary, error)

	CreateLostItem(ctx context.Context, item entity.LostItem) error
	LostItemByID(ctx context.Context, id uuid.UUID) (entity.LostItem, error)
	ListLostItems(ctx context.Context, filter entity.ItemsFilter) ([]entity.LostItem, int, error)
	UpdateLostItem(ctx context.Context, item entity.LostItem) error
	DeleteLostItem(ctx context.Context, id uuid.UUID) error
	ExpandLostItemRefs(ctx context.Context, items []entity.LostItem, expand entity.Expand) error

	MoveToDelivered(ctx context.Context, delivered entity.DeliveredItem, lostID uuid.UUID) error
	RevertToLost(ctx context.Context, lost entity.LostItem, deliveredID uuid.UUID) error

	DeliveredItemByID(ctx context.Context, id uuid.UUID) (entity.DeliveredItem, error)
	ListDeliveredItems(ctx context.Context, filter entity.ItemsFilter) ([]entity.DeliveredItem, int, error)
	SetDeliveredItemArchived(ctx context.Context, id uuid.UUID, archived bool) error
	DeleteDeliveredItem(ctx context.Context, id uuid.UUID) error
	ExpandDeliveredItemRefs(ctx context.Context, items []entity.DeliveredItem, expand entity.Expand) error
}

type ImageHost interface {
	Upload(ctx context.Context, data []byte, mimeType, originalName, category, flightNumber string) (entity.Image, error)
	Delete(ctx context.Context, publicID string) error
}

type Producer interface {
	SendItemReported(ctx context.Context, event broker.ItemReportedEvent)
	SendItemDelivered(ctx context.Context, event broker.ItemDeliveredEvent)
}

type Service struct {
	cfg      config.Config
	repo     Repository
	images   ImageHost
	producer Producer
}

func New(cfg config.Config, repo Repository, images ImageHost, producer Producer) *Service {
	return &Service{
		cfg:      cfg,
		repo:     repo,
		images:   images,
		producer: producer,
	}
}
