package deck

import (
	"errors"

	"fortio.org/log"
	"github.com/taigrr/cardswipe/pkg/anim"
	"github.com/taigrr/cardswipe/pkg/card"
	"github.com/taigrr/cardswipe/pkg/gesture"
)

// ErrEmpty is returned when no card is left to swipe.
var ErrEmpty = errors.New("deck is empty")

// Outcome is what a swipe means for a product.
type Outcome uint8

const (
	Keep Outcome = iota
	Like
	AddToCart
	Dismiss
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Like:
		return "like"
	case AddToCart:
		return "add-to-cart"
	case Dismiss:
		return "dismiss"
	default:
		return "keep"
	}
}

// OutcomeFor maps an exit direction to an outcome.
func OutcomeFor(dir gesture.Direction) Outcome {
	switch dir {
	case gesture.Right:
		return Like
	case gesture.Up:
		return AddToCart
	case gesture.Left:
		return Dismiss
	default:
		return Keep
	}
}

// SurfaceFactory creates the surface for the card at index.
type SurfaceFactory func(p Product, index int) anim.Surface

// Option configures a Deck.
type Option func(*Deck)

// WithCardOptions appends options applied to every card.
func WithCardOptions(opts ...card.Option) Option {
	return func(d *Deck) { d.cardOpts = append(d.cardOpts, opts...) }
}

// WithOnOutcome sets a callback fired after a card has left the screen and
// the basket was updated.
func WithOnOutcome(fn func(Product, Outcome)) Option {
	return func(d *Deck) { d.onOutcome = fn }
}

// WithOnSwipe sets a callback fired when a swipe on any card is detected.
func WithOnSwipe(fn func(Product, gesture.Direction)) Option {
	return func(d *Deck) { d.onSwipe = fn }
}

// Deck is a stack of independent cards, one per product. The card at the
// lowest index still in play is on top.
type Deck struct {
	sched    *anim.Scheduler
	products []Product
	basket   *Basket
	factory  SurfaceFactory
	cardOpts []card.Option

	onOutcome func(Product, Outcome)
	onSwipe   func(Product, gesture.Direction)

	cards []*card.Card
}

// New builds and mounts a card for every product. Cards refuse downward
// swipes unless card options override it.
func New(sched *anim.Scheduler, products []Product, basket *Basket, factory SurfaceFactory, opts ...Option) (*Deck, error) {
	d := &Deck{
		sched:    sched,
		products: products,
		basket:   basket,
		factory:  factory,
		cardOpts: []card.Option{card.WithPreventSwipe(gesture.Down)},
	}
	for _, opt := range opts {
		opt(d)
	}
	if err := d.build(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Deck) build() error {
	d.cards = make([]*card.Card, len(d.products))
	for i, p := range d.products {
		opts := append([]card.Option{}, d.cardOpts...)
		opts = append(opts,
			card.WithOnSwipe(func(dir gesture.Direction) { d.swiped(p, dir) }),
			card.WithOnCardLeftScreen(func(dir gesture.Direction) { d.outOfFrame(p, dir) }),
		)
		c := card.New(d.sched, opts...)
		if _, err := c.Mount(d.factory(p, i)); err != nil {
			return err
		}
		d.cards[i] = c
	}
	log.Infof("deck ready with %d cards", len(d.cards))
	return nil
}

func (d *Deck) swiped(p Product, dir gesture.Direction) {
	if d.onSwipe != nil {
		d.onSwipe(p, dir)
	}
}

func (d *Deck) outOfFrame(p Product, dir gesture.Direction) {
	o := OutcomeFor(dir)
	switch o {
	case Like:
		d.basket.AddToLiked(p)
	case AddToCart:
		d.basket.AddToCart(p)
	}
	log.Infof("%s: %s", p.Name, o)
	if d.onOutcome != nil {
		d.onOutcome(p, o)
	}
}

// Basket returns the basket fed by the deck.
func (d *Deck) Basket() *Basket {
	return d.basket
}

// Len returns the number of cards, including those already gone.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Card returns the card at index.
func (d *Deck) Card(i int) *card.Card {
	return d.cards[i]
}

// Product returns the product at index.
func (d *Deck) Product(i int) Product {
	return d.products[i]
}

func inPlay(c *card.Card) bool {
	s := c.State()
	return s != gesture.FlingingOut && s != gesture.Gone
}

// Top returns the index of the top card still in play.
func (d *Deck) Top() (int, bool) {
	for i, c := range d.cards {
		if inPlay(c) {
			return i, true
		}
	}
	return -1, false
}

// Remaining returns the number of cards still in play.
func (d *Deck) Remaining() int {
	n := 0
	for _, c := range d.cards {
		if inPlay(c) {
			n++
		}
	}
	return n
}

// HandlePointer routes an event to the card being dragged, or to the top
// card when no drag is active.
func (d *Deck) HandlePointer(ev gesture.PointerEvent) bool {
	for _, c := range d.cards {
		if c.State() == gesture.Dragging {
			return c.HandlePointer(ev)
		}
	}
	i, ok := d.Top()
	if !ok {
		return false
	}
	return d.cards[i].HandlePointer(ev)
}

// SwipeTop swipes the top card programmatically.
func (d *Deck) SwipeTop(dir gesture.Direction) (*anim.Completion, error) {
	i, ok := d.Top()
	if !ok {
		return nil, ErrEmpty
	}
	return d.cards[i].Swipe(dir)
}

// Reset unmounts every card and deals a fresh stack. The basket is kept.
func (d *Deck) Reset() error {
	for _, c := range d.cards {
		c.Unmount()
	}
	return d.build()
}
