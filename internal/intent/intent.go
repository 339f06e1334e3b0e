package intent

import (
	"strings"

	"star-barista/internal/domain"
	"star-barista/internal/fuzzy"
)

type Kind string

const (
	ShowMenu    Kind = "show_menu"
	ShowCart    Kind = "show_cart"
	Checkout    Kind = "checkout"
	ShowPoints  Kind = "show_points"
	Recommend   Kind = "recommend"
	SmallTalk   Kind = "small_talk"
	Faq         Kind = "faq"
	SuggestItem Kind = "suggest_item"
	AddItem     Kind = "add_item"
	ShowTrivia  Kind = "show_trivia"
	Unknown     Kind = "unknown"
)

// Action is the tagged result of intent resolution. Reply is set for
// SmallTalk/Faq, Suggestion for SuggestItem, Item for AddItem.
type Action struct {
	Kind       Kind
	Reply      string
	Suggestion string
	Item       domain.MenuItem
}

var smallTalk = []struct{ key, reply string }{
	{"how are you", "I'm just a few lines of code, but I'm feeling brew-tiful! ☕ How are you?"},
	{"thank you", "You're welcome! It's my pleasure to serve. ✨"},
	{"thanks", "No problem! Let me know if you need anything else."},
	{"hello", "Hi there! 👋 Ready for some coffee?"},
	{"hi", "Hello! What can I get for you today?"},
}

var faqs = []struct{ key, reply string }{
	{"hours", "We are open daily from 6:00 AM to 9:00 PM!"},
	{"location", "Find us at 123 Coffee Lane, Brewtown, or check the app for the nearest store."},
	{"allergens", "We use shared equipment. Please let us know if you have severe allergies."},
	{"rewards", "Join Star Rewards to earn stars for free drinks! You earn 2 stars for every $1 spent."},
	{"wifi", "Yes! We have free high-speed WiFi for all customers."},
	{"job", "We are always looking for great baristas! Apply at starbucks.com/careers."},
}

// keywords maps generic nouns to item names; the first entry is the one
// suggested when the keyword is spotted.
var keywords = []struct {
	key   string
	items []string
}{
	{"coffee", []string{"Caffe Americano", "Iced Coffee", "Nitro Cold Brew"}},
	{"latte", []string{"Pumpkin Spice Latte", "Iced Chai Latte"}},
	{"tea", []string{"Iced Matcha Lemonade", "Iced Chai Latte"}},
	{"food", []string{"Butter Croissant", "Blueberry Muffin", "Cake Pop"}},
	{"sandwich", []string{"Bacon & Gouda Sandwich", "Impossible Breakfast Sandwich"}},
}

type rule func(text string) (Action, bool)

// Resolver turns free text into an Action through a fixed rule chain.
// The order is a priority policy: command words beat small talk, small talk
// beats FAQ, and only when everything else fails does a fuzzy item match add
// to the cart. Resolution is pure: it never touches session state.
type Resolver struct {
	matcher *fuzzy.Matcher
	rules   []rule
}

func NewResolver(matcher *fuzzy.Matcher) *Resolver {
	r := &Resolver{matcher: matcher}
	r.rules = []rule{
		r.matchCommands,
		r.matchSmallTalk,
		r.matchFaq,
		r.matchKeywords,
		r.matchWholeText,
		r.matchPerWord,
	}
	return r
}

func (r *Resolver) Resolve(text string) Action {
	text = strings.ToLower(text)
	for _, rule := range r.rules {
		if action, ok := rule(text); ok {
			return action
		}
	}
	return Action{Kind: Unknown}
}

func (r *Resolver) matchCommands(text string) (Action, bool) {
	switch {
	case strings.Contains(text, "menu"):
		return Action{Kind: ShowMenu}, true
	case strings.Contains(text, "cart"),
		strings.Contains(text, "order") && strings.Contains(text, "show"):
		return Action{Kind: ShowCart}, true
	case strings.Contains(text, "checkout"), strings.Contains(text, "pay"):
		return Action{Kind: Checkout}, true
	case strings.Contains(text, "points"), strings.Contains(text, "stars"):
		return Action{Kind: ShowPoints}, true
	case strings.Contains(text, "surprise"), strings.Contains(text, "recommend"):
		return Action{Kind: Recommend}, true
	case strings.Contains(text, "trivia"):
		return Action{Kind: ShowTrivia}, true
	}
	return Action{}, false
}

func (r *Resolver) matchSmallTalk(text string) (Action, bool) {
	for _, entry := range smallTalk {
		if strings.Contains(text, entry.key) {
			return Action{Kind: SmallTalk, Reply: entry.reply}, true
		}
	}
	return Action{}, false
}

func (r *Resolver) matchFaq(text string) (Action, bool) {
	for _, entry := range faqs {
		if strings.Contains(text, entry.key) {
			return Action{Kind: Faq, Reply: entry.reply}, true
		}
	}
	return Action{}, false
}

func (r *Resolver) matchKeywords(text string) (Action, bool) {
	for _, entry := range keywords {
		if strings.Contains(text, entry.key) {
			return Action{Kind: SuggestItem, Suggestion: entry.items[0]}, true
		}
	}
	return Action{}, false
}

func (r *Resolver) matchWholeText(text string) (Action, bool) {
	if item, ok := r.matcher.Find(text); ok {
		return Action{Kind: AddItem, Item: item}, true
	}
	return Action{}, false
}

// matchPerWord retries the fuzzy match word by word so "one cappucino please"
// still lands on the item. Words of three characters or fewer are skipped.
func (r *Resolver) matchPerWord(text string) (Action, bool) {
	for _, word := range strings.Fields(text) {
		if len(word) <= 3 {
			continue
		}
		if item, ok := r.matcher.Find(word); ok {
			return Action{Kind: AddItem, Item: item}, true
		}
	}
	return Action{}, false
}
