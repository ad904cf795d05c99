package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	identityout "confmate/internal/modules/identity/port/out"
	apperrors "confmate/internal/platform/errors"
	"confmate/internal/platform/id"
)

// IdentityService resolves the stable per-install device identifier. Unlike
// bookmark storage, identity storage failures propagate: remote data is
// attributed by device id, so the app cannot start without one.
type IdentityService struct {
	store  identityout.IdentityStore
	idGen  id.Generator
	logger *logrus.Logger

	cached string
}

func NewIdentityService(store identityout.IdentityStore, idGen id.Generator, logger *logrus.Logger) *IdentityService {
	return &IdentityService{store: store, idGen: idGen, logger: logger}
}

// GetOrCreate returns the persisted device id, generating and persisting a
// fresh one only when storage holds none. Idempotent across calls and
// restarts.
func (s *IdentityService) GetOrCreate(ctx context.Context) (string, error) {
	if s.cached != "" {
		return s.cached, nil
	}

	deviceID, err := s.store.Load(ctx)
	if err == nil {
		s.cached = deviceID
		return deviceID, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return "", fmt.Errorf("load device id: %w", err)
	}

	deviceID = s.idGen.New()
	if err := s.store.Save(ctx, deviceID); err != nil {
		return "", err
	}
	s.logger.WithField("device", deviceID).Info("device identity created")
	s.cached = deviceID
	return deviceID, nil
}
