package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"star-barista/internal/domain"
	"star-barista/internal/service"
	"star-barista/internal/trends"
)

// ChatStore mocks chat.Store.
type ChatStore struct {
	mock.Mock
}

func (m *ChatStore) GetUser(username string) (*domain.UserAccount, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserAccount), args.Error(1)
}

func (m *ChatStore) CreateUser(username string) error {
	args := m.Called(username)
	return args.Error(0)
}

func (m *ChatStore) GetLastOrder(username string) ([]domain.CartLine, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CartLine), args.Error(1)
}

func (m *ChatStore) RecordCheckout(username string, items []domain.CartLine, total float64, stars int) (int, error) {
	args := m.Called(username, items, total, stars)
	return args.Int(0), args.Error(1)
}

// SessionRepository mocks service.SessionRepository.
type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Save(ctx context.Context, sess *domain.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *SessionRepository) Load(ctx context.Context, id string) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *SessionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// CheckoutPublisher mocks service.CheckoutPublisher.
type CheckoutPublisher struct {
	mock.Mock
}

func (m *CheckoutPublisher) PublishCheckout(ctx context.Context, event domain.CheckoutEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// QRGenerator mocks service.QRGenerator.
type QRGenerator struct {
	mock.Mock
}

func (m *QRGenerator) Generate(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// ReceiptRepository mocks service.ReceiptRepository.
type ReceiptRepository struct {
	mock.Mock
}

func (m *ReceiptRepository) SaveQRCode(orderID int, qr []byte) error {
	args := m.Called(orderID, qr)
	return args.Error(0)
}

func (m *ReceiptRepository) GetQRCode(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// ChatService mocks service.ChatServiceInterface.
type ChatService struct {
	mock.Mock
}

func (m *ChatService) StartSession(ctx context.Context) (*domain.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *ChatService) HandleMessage(ctx context.Context, sessionID, text, source string) (*service.TurnResponse, error) {
	args := m.Called(ctx, sessionID, text, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TurnResponse), args.Error(1)
}

func (m *ChatService) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *ChatService) ResetSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// TrendsStore mocks trends.StoreInterface.
type TrendsStore struct {
	mock.Mock
}

func (m *TrendsStore) RecordCheckout(ctx context.Context, event domain.CheckoutEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *TrendsStore) TopToday(ctx context.Context, limit int) ([]trends.ItemCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trends.ItemCount), args.Error(1)
}
