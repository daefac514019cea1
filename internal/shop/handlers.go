package shop

import (
	"net/http"
	"strconv"

	"techstore/internal/shop/session"
)

// cartLine is one cart entry joined with its catalog product.
type cartLine struct {
	Product       Product
	Quantity      int
	SubtotalCents int
}

// cartLines resolves the session cart against the catalog. Entries whose
// product no longer exists are skipped.
func (s *Server) cartLines(sess *session.Session) ([]cartLine, int) {
	var lines []cartLine
	total := 0
	cart := sess.CartItems()
	for _, p := range s.catalog.All() {
		qty := cart[p.ID]
		if qty == 0 {
			continue
		}
		subtotal := p.PriceCents * qty
		lines = append(lines, cartLine{Product: p, Quantity: qty, SubtotalCents: subtotal})
		total += subtotal
	}
	return lines, total
}

// pathID parses an integer path segment. Django-style integer converters
// accept digits only, so a sign or anything else is a mismatch.
func pathID(r *http.Request, name string) (int, bool) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, false
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	featured := s.catalog.All()
	if len(featured) > 3 {
		featured = featured[:3]
	}
	s.render(w, r, "home", "Home", sess, map[string]any{"products": featured})
}

func (s *Server) handleProductList(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	s.render(w, r, "products", "Products", sess, map[string]any{"products": s.catalog.All()})
}

func (s *Server) handleProductDetail(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	product, found := s.catalog.Get(id)
	if !found {
		http.NotFound(w, r)
		return
	}
	s.render(w, r, "product_detail", product.Name, sess, map[string]any{"product": product})
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	items, total := s.cartLines(sess)
	s.render(w, r, "cart", "Cart", sess, map[string]any{"items": items, "total": total})
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	if _, found := s.catalog.Get(id); !found {
		http.NotFound(w, r)
		return
	}
	sess.AddToCart(id)
	http.Redirect(w, r, "/cart/", http.StatusSeeOther)
}

func (s *Server) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	sess.RemoveFromCart(id)
	http.Redirect(w, r, "/cart/", http.StatusSeeOther)
}

func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	sess.ClearCart()
	http.Redirect(w, r, "/cart/", http.StatusSeeOther)
}

func (s *Server) handleWishlist(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	var products []Product
	for _, id := range sess.WishlistIDs() {
		if p, found := s.catalog.Get(id); found {
			products = append(products, p)
		}
	}
	s.render(w, r, "wishlist", "Wishlist", sess, map[string]any{"products": products})
}

func (s *Server) handleAddToWishlist(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	if _, found := s.catalog.Get(id); !found {
		http.NotFound(w, r)
		return
	}
	sess.AddToWishlist(id)
	http.Redirect(w, r, "/wishlist/", http.StatusSeeOther)
}

func (s *Server) handleRemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	sess.RemoveFromWishlist(id)
	http.Redirect(w, r, "/wishlist/", http.StatusSeeOther)
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)

	if r.Method == http.MethodPost {
		order, ok := s.placeOrder(sess)
		if !ok {
			http.Redirect(w, r, "/cart/", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/thank-you/"+strconv.Itoa(order.ID)+"/", http.StatusSeeOther)
		return
	}

	items, total := s.cartLines(sess)
	if len(items) == 0 {
		http.Redirect(w, r, "/cart/", http.StatusSeeOther)
		return
	}
	s.render(w, r, "checkout", "Checkout", sess, map[string]any{"items": items, "total": total})
}

func (s *Server) handleThankYou(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	id, ok := pathID(r, "order_id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	order, found := s.order(id)
	if !found {
		http.NotFound(w, r)
		return
	}
	s.render(w, r, "thank_you", "Order Confirmation", sess, map[string]any{"order": order})
}
