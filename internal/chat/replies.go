package chat

import (
	"fmt"
	"strings"

	"star-barista/internal/domain"
	"star-barista/internal/menu"
)

var trivia = []string{
	"Did you know? Espresso actually has less caffeine than a cup of drip coffee!",
	"Starbucks was founded in 1971 at Pike Place Market in Seattle.",
	"There are over 87,000 drink combinations possible at Starbucks!",
	"A 'Venti' means 'twenty' in Italian, referring to the 20oz size.",
	"The Starbucks siren logo serves to call coffee lovers from everywhere.",
}

func timeGreeting(hour int) string {
	switch {
	case hour < 12:
		return "Good morning! ☀️ Need a wake-up call?"
	case hour < 17:
		return "Good afternoon! ☕ Ready for a pick-me-up?"
	default:
		return "Good evening! 🌙 Decaf or a sweet treat tonight?"
	}
}

func renderMenu(catalog *menu.Catalog) string {
	var b strings.Builder
	b.WriteString("📜 The Menu\n\n")
	for _, cat := range catalog.Categories() {
		b.WriteString(cat.Name + "\n")
		for _, item := range cat.Items {
			fmt.Fprintf(&b, "- %s ($%.2f)\n", item.Name, item.Price)
		}
		b.WriteString("\n")
	}
	b.WriteString("Just type the name of a drink (e.g., 'Latte') to add it!")
	return b.String()
}

func renderCart(s *domain.Session) string {
	if len(s.Cart) == 0 {
		return "Your cart is empty! 🛒"
	}
	var b strings.Builder
	b.WriteString("🛒 Your Cart\n")
	for _, line := range s.Cart {
		fmt.Fprintf(&b, "- %s ($%.2f)\n", line.Item, line.Price)
	}
	fmt.Fprintf(&b, "\nTotal: $%.2f\nType 'Checkout' to pay.", s.CartTotal())
	return b.String()
}
