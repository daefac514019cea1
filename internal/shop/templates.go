package shop

import (
	"fmt"
	"html/template"
)

// Every page includes the "header" partial; the base context always carries
// cart_count, so the cart badge works on any page.
const pageTemplates = `
{{define "header"}}<!doctype html>
<html>
<head><title>TechStore - {{.title}}</title></head>
<body>
<header>
  <a href="/">TechStore</a>
  <nav>
    <a href="/products/">Products</a>
    <a href="/wishlist/">Wishlist</a>
    <a href="/cart/">Cart ({{.cart_count}})</a>
  </nav>
</header>
<main>{{end}}

{{define "footer"}}</main>
</body>
</html>{{end}}

{{define "home"}}{{template "header" .}}
<h1>Welcome to TechStore</h1>
<ul>
{{range .products}}<li><a href="/product/{{.ID}}/">{{.Name}}</a> - {{price .PriceCents}}</li>{{end}}
</ul>
{{template "footer" .}}{{end}}

{{define "products"}}{{template "header" .}}
<h1>Products</h1>
<ul>
{{range .products}}
<li>
  <a href="/product/{{.ID}}/">{{.Name}}</a> - {{price .PriceCents}}
  {{if .InStock}}<a href="/add-to-cart/{{.ID}}/">Add to cart</a>{{else}}<em>Out of stock</em>{{end}}
  <a href="/add-to-wishlist/{{.ID}}/">♡</a>
</li>
{{end}}
</ul>
{{template "footer" .}}{{end}}

{{define "product_detail"}}{{template "header" .}}
<h1>{{.product.Name}}</h1>
<p>{{.product.Description}}</p>
<p>{{price .product.PriceCents}}</p>
{{if .product.InStock}}<a href="/add-to-cart/{{.product.ID}}/">Add to cart</a>{{else}}<em>Out of stock</em>{{end}}
<a href="/add-to-wishlist/{{.product.ID}}/">Add to wishlist</a>
{{template "footer" .}}{{end}}

{{define "cart"}}{{template "header" .}}
<h1>Your Cart</h1>
{{if .items}}
<ul>
{{range .items}}
<li>{{.Product.Name}} × {{.Quantity}} - {{price .SubtotalCents}}
  <a href="/remove-from-cart/{{.Product.ID}}/">Remove</a></li>
{{end}}
</ul>
<p>Total: {{price .total}}</p>
<a href="/clear-cart/">Clear cart</a>
<a href="/checkout/">Checkout</a>
{{else}}
<p>Your cart is empty.</p>
{{end}}
{{template "footer" .}}{{end}}

{{define "wishlist"}}{{template "header" .}}
<h1>Your Wishlist</h1>
{{if .products}}
<ul>
{{range .products}}
<li><a href="/product/{{.ID}}/">{{.Name}}</a>
  <a href="/add-to-cart/{{.ID}}/">Add to cart</a>
  <a href="/remove-from-wishlist/{{.ID}}/">Remove</a></li>
{{end}}
</ul>
{{else}}
<p>Your wishlist is empty.</p>
{{end}}
{{template "footer" .}}{{end}}

{{define "checkout"}}{{template "header" .}}
<h1>Checkout</h1>
<ul>
{{range .items}}<li>{{.Product.Name}} × {{.Quantity}} - {{price .SubtotalCents}}</li>{{end}}
</ul>
<p>Total: {{price .total}}</p>
<form method="post" action="/checkout/"><button type="submit">Place order</button></form>
{{template "footer" .}}{{end}}

{{define "thank_you"}}{{template "header" .}}
<h1>Thank you!</h1>
<p>Your order #{{.order.ID}} has been placed.</p>
<p>Total: {{price .order.TotalCents}}</p>
<a href="/products/">Continue shopping</a>
{{template "footer" .}}{{end}}
`

func newTemplates() *template.Template {
	funcs := template.FuncMap{
		"price": func(cents int) string {
			return fmt.Sprintf("$%.2f", float64(cents)/100)
		},
	}
	return template.Must(template.New("shop").Funcs(funcs).Parse(pageTemplates))
}
