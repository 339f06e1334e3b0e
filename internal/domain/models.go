package domain

import "time"

type MenuItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// CartLine is one cart entry at the price the item carried when added.
// The JSON shape doubles as the serialized order payload in the orders table.
type CartLine struct {
	Item  string  `json:"item"`
	Price float64 `json:"price"`
}

type UserAccount struct {
	Username   string `json:"username"`
	Stars      int    `json:"stars"`
	JoinedDate string `json:"joined_date"`
}

type OrderRecord struct {
	ID        int        `json:"id"`
	Username  string     `json:"username"`
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"created_at"`
}

type Message struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

const (
	StageGetName = "get_name"
	StageActive  = "active"
)

// Session is the per-conversation state. One session per kiosk visitor;
// it never migrates from StageActive back to StageGetName.
type Session struct {
	ID       string     `json:"id"`
	Messages []Message  `json:"messages"`
	Cart     []CartLine `json:"cart"`
	UserName string     `json:"user_name"`
	Stars    int        `json:"stars"`
	Stage    string     `json:"stage"`
}

// CartTotal is recomputed from the lines every time, never cached.
func (s *Session) CartTotal() float64 {
	total := 0.0
	for _, line := range s.Cart {
		total += line.Price
	}
	return total
}

func (s *Session) Append(role, content string) {
	s.Messages = append(s.Messages, Message{Role: role, Content: content})
}

// CheckoutEvent is emitted to Kafka after a successful checkout.
type CheckoutEvent struct {
	Type      string     `json:"type"`
	Username  string     `json:"username"`
	OrderID   int        `json:"order_id"`
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	Stars     int        `json:"stars"`
	Timestamp time.Time  `json:"timestamp"`
}

const EventTypeCheckout = "checkout"
