package chat

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"star-barista/internal/domain"
	"star-barista/internal/intent"
	"star-barista/internal/menu"
)

// Store is the persistence surface the engine needs: account lookup/signup
// at the name stage, checkout recording at the end of an order.
type Store interface {
	GetUser(username string) (*domain.UserAccount, error)
	CreateUser(username string) error
	GetLastOrder(username string) ([]domain.CartLine, error)
	RecordCheckout(username string, items []domain.CartLine, total float64, stars int) (int, error)
}

// Result carries the assistant reply plus, when a checkout happened this
// turn, the recorded order and the stars it earned.
type Result struct {
	Reply       string
	Order       *domain.OrderRecord
	StarsEarned int
}

// Engine drives one conversation turn at a time. The session passed in is
// the only mutable state; the engine itself holds no per-user data.
type Engine struct {
	catalog  *menu.Catalog
	resolver *intent.Resolver
	store    Store

	// Overridable for deterministic tests.
	Now func() time.Time
	Rng *rand.Rand
}

func NewEngine(catalog *menu.Catalog, resolver *intent.Resolver, store Store) *Engine {
	return &Engine{
		catalog:  catalog,
		resolver: resolver,
		store:    store,
		Now:      time.Now,
		Rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Greet opens the conversation: time-of-day greeting plus the name prompt.
// The session enters the get_name stage.
func (e *Engine) Greet(s *domain.Session) string {
	reply := timeGreeting(e.Now().Hour()) + " I'm Star Barista! What's your name so I can check your Rewards?"
	s.Stage = domain.StageGetName
	s.Append("assistant", reply)
	return reply
}

// Handle processes one inbound message and appends both sides of the
// exchange to the transcript.
func (e *Engine) Handle(s *domain.Session, text string) (*Result, error) {
	s.Append("user", text)

	var (
		result *Result
		err    error
	)
	if s.Stage == domain.StageGetName {
		result, err = e.handleName(s, text)
	} else {
		result, err = e.handleActive(s, text)
	}
	if err != nil {
		return nil, err
	}

	s.Append("assistant", result.Reply)
	return result, nil
}

// handleName treats the message verbatim as the username, no trimming.
func (e *Engine) handleName(s *domain.Session, name string) (*Result, error) {
	s.UserName = name
	s.Stage = domain.StageActive

	user, err := e.store.GetUser(name)
	if err != nil {
		return nil, fmt.Errorf("look up user %q: %w", name, err)
	}
	if user == nil {
		if err := e.store.CreateUser(name); err != nil {
			return nil, fmt.Errorf("sign up user %q: %w", name, err)
		}
		s.Stars = 0
		reply := fmt.Sprintf("Nice to meet you, %s! I've signed you up for Star Rewards. You have 0 stars.\n\nWhat can I get started for you? (Menu, Hot, Iced, Food)", name)
		return &Result{Reply: reply}, nil
	}

	s.Stars = user.Stars
	reply := fmt.Sprintf("Welcome back, %s! 👋 You have %d Stars. ✨\n\n", name, user.Stars)
	lastOrder, err := e.store.GetLastOrder(name)
	if err != nil {
		return nil, fmt.Errorf("load last order for %q: %w", name, err)
	}
	if len(lastOrder) > 0 {
		reply += fmt.Sprintf("Want to order your usual %s again?", lastOrder[0].Item)
	} else {
		reply += "What are you in the mood for today?"
	}
	return &Result{Reply: reply}, nil
}

func (e *Engine) handleActive(s *domain.Session, text string) (*Result, error) {
	action := e.resolver.Resolve(text)

	switch action.Kind {
	case intent.ShowMenu:
		return &Result{Reply: renderMenu(e.catalog)}, nil

	case intent.ShowCart:
		return &Result{Reply: renderCart(s)}, nil

	case intent.ShowPoints:
		return &Result{Reply: fmt.Sprintf("🌟 You have %d Stars.\nEarn 2 stars per $1 spent!", s.Stars)}, nil

	case intent.Checkout:
		return e.checkout(s)

	case intent.Recommend:
		pick := e.catalog.Random(e.Rng)
		return &Result{Reply: fmt.Sprintf("✨ Our pick for you: %s ($%.2f). Shall I add it?", pick.Name, pick.Price)}, nil

	case intent.SmallTalk, intent.Faq:
		return &Result{Reply: action.Reply}, nil

	case intent.ShowTrivia:
		return &Result{Reply: trivia[e.Rng.Intn(len(trivia))]}, nil

	case intent.SuggestItem:
		return &Result{Reply: fmt.Sprintf("Did you mean %s? I can add that for you!", action.Suggestion)}, nil

	case intent.AddItem:
		s.Cart = append(s.Cart, domain.CartLine{Item: action.Item.Name, Price: action.Item.Price})
		return &Result{Reply: fmt.Sprintf("Got it! Added %s to your cart. 🛒\n\nTotal: $%.2f. Anything else?", action.Item.Name, s.CartTotal())}, nil

	default:
		return &Result{Reply: "I'm not sure what you mean. 🤔 Try checking the Menu, asking for Points, or tell me to Show Cart."}, nil
	}
}

func (e *Engine) checkout(s *domain.Session) (*Result, error) {
	if len(s.Cart) == 0 {
		return &Result{Reply: "Your cart is empty! Add something first. ☕"}, nil
	}

	total := s.CartTotal()
	stars := StarsFor(total)
	items := s.Cart

	orderID, err := e.store.RecordCheckout(s.UserName, items, total, stars)
	if err != nil {
		return nil, fmt.Errorf("record checkout for %q: %w", s.UserName, err)
	}

	s.Stars += stars
	s.Cart = nil

	reply := fmt.Sprintf("Processing payment... Success! 🎉\n\nYou've earned %d Stars! Current Balance: %d.\n\nCheck your Order History next time you visit!", stars, s.Stars)
	return &Result{
		Reply:       reply,
		StarsEarned: stars,
		Order: &domain.OrderRecord{
			ID:       orderID,
			Username: s.UserName,
			Items:    items,
			Total:    total,
		},
	}, nil
}

// StarsFor awards 2 stars per dollar spent, rounded down.
func StarsFor(total float64) int {
	return int(math.Floor(total * 2))
}
