package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"servermon/api/errs"
	"servermon/models"
)

//go:generate mockgen -destination=mocks/server_mock.go -package=mocks servermon/services ServerLister

type ServerLister interface {
	ListServers(ctx context.Context) ([]models.Server, error)
}

type ServerService struct {
	db *gorm.DB
}

func NewServerService(db *gorm.DB) *ServerService {
	return &ServerService{db: db}
}

// ListServers returns every row of the servers table in the order the
// database yields them. It holds one connection for the duration of the call
// and gives it back on every path.
func (s *ServerService) ListServers(ctx context.Context) ([]models.Server, error) {
	servers := make([]models.Server, 0)

	err := s.db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		if err := tx.Find(&servers).Error; err != nil {
			return fmt.Errorf("%w: %w", errs.ErrDatabaseQuery, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, errs.ErrDatabaseQuery) {
			err = fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
		}
		return nil, err
	}

	if servers == nil {
		servers = make([]models.Server, 0)
	}
	return servers, nil
}
