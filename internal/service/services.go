package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

type Services struct {
	AuthService     AuthService
	TokenService    TokenService
	NoteService     NoteService
	NoteAccessGuard NoteAccessGuard
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, hasher crypto.PasswordHasher, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	tokenService := NewTokenService(cfg, logger)
	guard := NewNoteAccessGuard(storages.NoteRepository, logger)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, hasher, tokenService, logger),
		TokenService:    tokenService,
		NoteService:     NewNoteService(storages.NoteRepository, storages.UserRepository, guard, logger),
		NoteAccessGuard: guard,
		AppInfoService:  appInfoService,
	}, nil
}
