package session

import (
	"net/http"
	"sort"
	"sync"

	"github.com/google/uuid"
)

const cookieName = "techstore_session"

// Session holds per-visitor state for the lifetime of the browser session.
// The cart maps product id to quantity; the wishlist is a set of product ids.
type Session struct {
	ID string

	mu       sync.Mutex
	cart     map[int]int
	wishlist map[int]struct{}
}

// AddToCart increments the quantity for a product, creating the cart
// implicitly on first use.
func (s *Session) AddToCart(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		s.cart = make(map[int]int)
	}
	s.cart[productID]++
}

// RemoveFromCart drops a product from the cart entirely.
func (s *Session) RemoveFromCart(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cart, productID)
}

// ClearCart empties the cart.
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// CartCount returns the sum of quantities across all cart entries.
// A session without a cart counts as zero.
func (s *Session) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, qty := range s.cart {
		count += qty
	}
	return count
}

// CartItems returns a copy of the cart mapping.
func (s *Session) CartItems() map[int]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make(map[int]int, len(s.cart))
	for id, qty := range s.cart {
		items[id] = qty
	}
	return items
}

// AddToWishlist adds a product id to the wishlist.
func (s *Session) AddToWishlist(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.wishlist == nil {
		s.wishlist = make(map[int]struct{})
	}
	s.wishlist[productID] = struct{}{}
}

// RemoveFromWishlist drops a product id from the wishlist.
func (s *Session) RemoveFromWishlist(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wishlist, productID)
}

// WishlistIDs returns the wishlist product ids in ascending order.
func (s *Session) WishlistIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int, 0, len(s.wishlist))
	for id := range s.wishlist {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Store hands out sessions keyed by a browser cookie. Sessions live in
// memory only; state does not survive a restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates a new Store
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for the request's cookie, creating a new session
// and setting the cookie when none exists.
func (st *Store) Get(w http.ResponseWriter, r *http.Request) *Session {
	if cookie, err := r.Cookie(cookieName); err == nil {
		st.mu.RLock()
		sess, ok := st.sessions[cookie.Value]
		st.mu.RUnlock()
		if ok {
			return sess
		}
	}

	sess := &Session{ID: uuid.NewString()}
	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}
