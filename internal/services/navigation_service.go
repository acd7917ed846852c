// internal/services/navigation_service.go
package services

import (
	"net/url"
	"strings"
)

// View enumerates the storefront's views. The fragment resolver only ever
// produces values from this set.
type View string

const (
	ViewHome        View = "home"
	ViewShop        View = "shop"
	ViewFabrics     View = "fabrics"
	ViewTailoring   View = "tailoring"
	ViewAccessories View = "accessories"
	ViewSale        View = "sale"
	ViewCheckout    View = "checkout"
	ViewProduct     View = "product"
)

// RouteState is derived, never stored: a pure function of the current URL
// fragment, re-evaluated on every navigation event.
type RouteState struct {
	View  View   `json:"view"`
	Param string `json:"param,omitempty"`
}

const productRoutePrefix = "/product/"

// ResolveFragment maps a URL fragment (e.g. "#/product/some-slug") to a route
// state. The resolver is pure and re-entrant: identical input yields identical
// output, so it runs the same on the initial load and on every later
// navigation. Anything unrecognized, including the empty string, falls back
// to the home view; navigation never errors.
func ResolveFragment(fragment string) RouteState {
	path := strings.TrimPrefix(fragment, "#")
	if i := strings.Index(path, "?"); i >= 0 {
		path = path[:i]
	}

	switch path {
	case "", "/":
		return RouteState{View: ViewHome}
	case "/shop":
		return RouteState{View: ViewShop}
	case "/fabrics":
		return RouteState{View: ViewFabrics}
	case "/tailoring":
		return RouteState{View: ViewTailoring}
	case "/accessories":
		return RouteState{View: ViewAccessories}
	case "/sale":
		return RouteState{View: ViewSale}
	case "/checkout":
		return RouteState{View: ViewCheckout}
	}

	if strings.HasPrefix(path, productRoutePrefix) {
		param := strings.TrimPrefix(path, productRoutePrefix)
		if decoded, err := url.PathUnescape(param); err == nil {
			param = decoded
		}
		if param != "" {
			return RouteState{View: ViewProduct, Param: param}
		}
	}

	return RouteState{View: ViewHome}
}

// ListingView reports whether the view renders a product listing scoped to a
// collection.
func (v View) ListingView() bool {
	switch v {
	case ViewShop, ViewFabrics, ViewTailoring, ViewAccessories, ViewSale:
		return true
	}
	return false
}
