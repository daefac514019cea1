package shop

import (
	"log/slog"
	"net/http"
	"time"
)

// Routes returns the storefront route table.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/{$}", s.handleHome)
	mux.HandleFunc("/products/{$}", s.handleProductList)
	mux.HandleFunc("/product/{id}/{$}", s.handleProductDetail)
	mux.HandleFunc("/cart/{$}", s.handleCart)
	mux.HandleFunc("/add-to-cart/{id}/{$}", s.handleAddToCart)
	mux.HandleFunc("/remove-from-cart/{id}/{$}", s.handleRemoveFromCart)
	mux.HandleFunc("/clear-cart/{$}", s.handleClearCart)
	mux.HandleFunc("/wishlist/{$}", s.handleWishlist)
	mux.HandleFunc("/add-to-wishlist/{id}/{$}", s.handleAddToWishlist)
	mux.HandleFunc("/remove-from-wishlist/{id}/{$}", s.handleRemoveFromWishlist)
	mux.HandleFunc("/checkout/{$}", s.handleCheckout)
	mux.HandleFunc("/thank-you/{order_id}/{$}", s.handleThankYou)

	return s.withLogging(mux)
}

// withLogging logs one line per request.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("took", time.Since(start)),
		)
	})
}
