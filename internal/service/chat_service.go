package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"star-barista/internal/chat"
	"star-barista/internal/domain"
)

// TurnResponse is what one conversation turn returns to the presentation
// layer: the reply plus a snapshot of the cart and star balance.
type TurnResponse struct {
	Reply       string            `json:"reply"`
	Stars       int               `json:"stars"`
	Cart        []domain.CartLine `json:"cart"`
	Total       float64           `json:"total"`
	OrderID     int               `json:"order_id,omitempty"`
	StarsEarned int               `json:"stars_earned,omitempty"`
}

// ChatService glues the conversation engine to session persistence and the
// checkout side effects (event stream, QR receipt). Events and receipts are
// best-effort: a failure there degrades the turn, it does not fail it.
type ChatService struct {
	sessions SessionRepository
	engine   *chat.Engine
	events   CheckoutPublisher
	qr       QRGenerator
	receipts ReceiptRepository
}

func NewChatService(sessions SessionRepository, engine *chat.Engine, events CheckoutPublisher, qr QRGenerator, receipts ReceiptRepository) *ChatService {
	return &ChatService{
		sessions: sessions,
		engine:   engine,
		events:   events,
		qr:       qr,
		receipts: receipts,
	}
}

func (s *ChatService) StartSession(ctx context.Context) (*domain.Session, error) {
	sess := &domain.Session{ID: uuid.NewString()}
	s.engine.Greet(sess)
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *ChatService) HandleMessage(ctx context.Context, sessionID, text, source string) (*TurnResponse, error) {
	sess, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if source == "" {
		source = "typed"
	}
	log.Printf("session %s: %s message received", sessionID, source)

	result, err := s.engine.Handle(sess, text)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	resp := &TurnResponse{
		Reply: result.Reply,
		Stars: sess.Stars,
		Cart:  sess.Cart,
		Total: sess.CartTotal(),
	}
	if result.Order != nil {
		resp.OrderID = result.Order.ID
		resp.StarsEarned = result.StarsEarned
		s.afterCheckout(ctx, result)
	}
	return resp, nil
}

func (s *ChatService) afterCheckout(ctx context.Context, result *chat.Result) {
	order := result.Order

	if s.events != nil {
		event := domain.CheckoutEvent{
			Type:      domain.EventTypeCheckout,
			Username:  order.Username,
			OrderID:   order.ID,
			Items:     order.Items,
			Total:     order.Total,
			Stars:     result.StarsEarned,
			Timestamp: time.Now(),
		}
		if err := s.events.PublishCheckout(ctx, event); err != nil {
			log.Printf("Warning: failed to publish checkout event for order %d: %v", order.ID, err)
		}
	}

	if s.qr != nil && s.receipts != nil {
		qr, err := s.qr.Generate(order.ID)
		if err != nil {
			log.Printf("Warning: failed to generate receipt QR for order %d: %v", order.ID, err)
			return
		}
		if err := s.receipts.SaveQRCode(order.ID, qr); err != nil {
			log.Printf("Warning: failed to store receipt QR for order %d: %v", order.ID, err)
		}
	}
}

func (s *ChatService) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.sessions.Load(ctx, sessionID)
}

func (s *ChatService) ResetSession(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}
