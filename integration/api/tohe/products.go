package tohe

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/toheco/tohekit/core/cart"
)

// Price is a product price as the API emits it: usually a JSON number,
// sometimes a numeric string. Values that cannot be read as a number
// default to 0.
type Price float64

// UnmarshalJSON coerces numbers and numeric strings; anything else reads
// as 0.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*p = Price(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			*p = Price(f)
			return nil
		}
	}

	*p = 0
	return nil
}

// Product is a catalog listing. Older API versions emit a single image_url;
// newer ones an images array.
type Product struct {
	ID       cart.ID  `json:"id"`
	Title    string   `json:"title"`
	Caption  string   `json:"caption,omitempty"`
	Price    Price    `json:"price"`
	ImageURL string   `json:"image_url,omitempty"`
	Images   []string `json:"images,omitempty"`
}

// PrimaryImage returns the listing's display image: image_url when set,
// otherwise the first entry of images.
func (p Product) PrimaryImage() string {
	if p.ImageURL != "" {
		return p.ImageURL
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// CartProduct maps the listing to the shape the cart store consumes.
func (p Product) CartProduct() cart.Product {
	return cart.Product{
		ID:       p.ID,
		Title:    p.Title,
		Price:    float64(p.Price),
		ImageURL: p.PrimaryImage(),
	}
}

// ProductParams are the writable listing fields for create and update.
type ProductParams struct {
	Title    string  `json:"title"`
	Caption  string  `json:"caption,omitempty"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url,omitempty"`
}

// ListProducts returns the full catalog.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns one listing by id.
func (c *Client) GetProduct(ctx context.Context, id cart.ID) (Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(string(id)), nil, &product); err != nil {
		return Product{}, err
	}
	return product, nil
}

// CreateProduct creates a listing. Admin only, enforced server-side.
func (c *Client) CreateProduct(ctx context.Context, params ProductParams) (Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPost, "/products", params, &product); err != nil {
		return Product{}, err
	}
	return product, nil
}

// UpdateProduct updates a listing. Admin only, enforced server-side.
func (c *Client) UpdateProduct(ctx context.Context, id cart.ID, params ProductParams) (Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(string(id)), params, &product); err != nil {
		return Product{}, err
	}
	return product, nil
}

// DeleteProduct removes a listing. Admin only, enforced server-side.
func (c *Client) DeleteProduct(ctx context.Context, id cart.ID) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(string(id)), nil, nil)
}
