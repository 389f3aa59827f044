package imagehost

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/aeroops/lostfound/internal/entity"
)

type Mock struct{}

func NewMock() *Mock {
	return &Mock{}
}

var _ Uploader = (*Mock)(nil)

func (c *Mock) Upload(
	_ context.Context, _ []byte, _, originalName, _, _ string,
) (entity.Image, error) {
	publicID := uuid.Must(uuid.NewV4()).String()

	return entity.Image{
		PublicID:     publicID,
		URL:          fmt.Sprintf("https://images.local/%s/%s", publicID, originalName),
		ThumbnailURL: fmt.Sprintf("https://images.local/%s/thumb/%s", publicID, originalName),
	}, nil
}

func (c *Mock) Delete(_ context.Context, _ string) error {
	return nil
}
