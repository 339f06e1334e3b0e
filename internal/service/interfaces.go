package service

import (
	"context"

	"star-barista/internal/domain"
)

type ChatServiceInterface interface {
	StartSession(ctx context.Context) (*domain.Session, error)
	HandleMessage(ctx context.Context, sessionID, text, source string) (*TurnResponse, error)
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
	ResetSession(ctx context.Context, sessionID string) error
}

type SessionRepository interface {
	Save(ctx context.Context, sess *domain.Session) error
	Load(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type CheckoutPublisher interface {
	PublishCheckout(ctx context.Context, event domain.CheckoutEvent) error
}

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

type ReceiptRepository interface {
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

var _ ChatServiceInterface = (*ChatService)(nil)
