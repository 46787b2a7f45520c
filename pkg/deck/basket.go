package deck

// Basket holds the liked and cart collections. Adding a product that is
// already present is a no-op.
type Basket struct {
	liked []Product
	cart  []Product
}

// NewBasket creates an empty basket.
func NewBasket() *Basket {
	return &Basket{}
}

// AddToLiked adds p unless a product with the same id is already liked.
func (b *Basket) AddToLiked(p Product) bool {
	return addUnique(&b.liked, p)
}

// RemoveFromLiked drops the liked product with id.
func (b *Basket) RemoveFromLiked(id ProductID) bool {
	return remove(&b.liked, id)
}

// AddToCart adds p unless a product with the same id is already in the cart.
func (b *Basket) AddToCart(p Product) bool {
	return addUnique(&b.cart, p)
}

// RemoveFromCart drops the cart product with id.
func (b *Basket) RemoveFromCart(id ProductID) bool {
	return remove(&b.cart, id)
}

// ClearCart empties the cart.
func (b *Basket) ClearCart() {
	b.cart = nil
}

// Liked returns a copy of the liked products in insertion order.
func (b *Basket) Liked() []Product {
	return append([]Product(nil), b.liked...)
}

// Cart returns a copy of the cart in insertion order.
func (b *Basket) Cart() []Product {
	return append([]Product(nil), b.cart...)
}

func addUnique(list *[]Product, p Product) bool {
	for _, q := range *list {
		if q.ID == p.ID {
			return false
		}
	}
	*list = append(*list, p)
	return true
}

func remove(list *[]Product, id ProductID) bool {
	for i, q := range *list {
		if q.ID == id {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}
