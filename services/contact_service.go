package services

import (
	"context"
	"strings"
	"time"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/api"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/repository"
	"go.uber.org/zap"
)

type ContactSender interface {
	Create(ctx context.Context, token string, in api.ContactInput) error
}

type ContactService struct {
	backend ContactSender
	tokens  repository.TokenStore
	log     *zap.Logger
}

func NewContactService(backend ContactSender, tokens repository.TokenStore, log *zap.Logger) *ContactService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContactService{backend: backend, tokens: tokens, log: log}
}

// Submit sends a contact message. Invalid input never reaches the backend.
func (s *ContactService) Submit(ctx context.Context, sessionID string, in api.ContactInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Message = strings.TrimSpace(in.Message)
	if err := validate(&in); err != nil {
		return err
	}
	token := credential(ctx, s.tokens, sessionID, time.Now(), s.log)
	return s.backend.Create(ctx, token, in)
}
