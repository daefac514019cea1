package shop

import (
	"html/template"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"techstore/internal/shop/session"
)

// Order is a placed order. Orders are kept in memory for the confirmation
// page only; there is no persistence layer.
type Order struct {
	ID         int
	Items      []OrderItem
	TotalCents int
	PlacedAt   time.Time
}

// OrderItem is one cart line frozen at checkout time.
type OrderItem struct {
	Product  Product
	Quantity int
}

// Server is the storefront HTTP server.
type Server struct {
	log      *slog.Logger
	catalog  *Catalog
	sessions *session.Store
	tmpl     *template.Template

	mu          sync.Mutex
	nextOrderID int
	orders      map[int]Order
}

// NewServer creates a new Server
func NewServer(log *slog.Logger) *Server {
	return &Server{
		log:         log,
		catalog:     NewCatalog(),
		sessions:    session.NewStore(),
		tmpl:        newTemplates(),
		nextOrderID: 1,
		orders:      make(map[int]Order),
	}
}

// placeOrder freezes the session cart into an order and clears the cart.
// Returns false when the cart is empty.
func (s *Server) placeOrder(sess *session.Session) (Order, bool) {
	items, total := s.cartLines(sess)
	if len(items) == 0 {
		return Order{}, false
	}

	orderItems := make([]OrderItem, 0, len(items))
	for _, line := range items {
		orderItems = append(orderItems, OrderItem{Product: line.Product, Quantity: line.Quantity})
	}

	s.mu.Lock()
	order := Order{
		ID:         s.nextOrderID,
		Items:      orderItems,
		TotalCents: total,
		PlacedAt:   time.Now(),
	}
	s.nextOrderID++
	s.orders[order.ID] = order
	s.mu.Unlock()

	sess.ClearCart()
	return order, true
}

// order looks up a placed order by id.
func (s *Server) order(id int) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	return order, ok
}

// render writes the named page with the base context merged in. Every page
// receives cart_count alongside its own data.
func (s *Server) render(w http.ResponseWriter, r *http.Request, page, title string, sess *session.Session, data map[string]any) {
	ctx := map[string]any{
		"title":      title,
		"cart_count": sess.CartCount(),
	}
	for k, v := range data {
		ctx[k] = v
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, page, ctx); err != nil {
		s.log.Error("render failed", slog.String("page", page), slog.Any("err", err))
	}
}
