package models

import "fmt"

// Product is a subscription plan. Prices are in minor currency units.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Featured    bool     `json:"featured"`
}

// DisplayPrice formats Price as dollars, e.g. 2999 -> "$29.99".
func (p Product) DisplayPrice() string {
	return fmt.Sprintf("$%d.%02d", p.Price/100, p.Price%100)
}

var catalog = []Product{
	{
		ID:          "basic",
		Name:        "Basic Plan",
		Price:       999,
		Description: "Perfect for getting started with AI",
		Features: []string{
			"100 AI text generations per month",
			"10 AI image generations per month",
			"Basic support",
			"Standard response time",
		},
	},
	{
		ID:          "pro",
		Name:        "Pro Plan",
		Price:       2999,
		Description: "For power users and professionals",
		Features: []string{
			"Unlimited AI text generations",
			"100 AI image generations per month",
			"Priority support",
			"Faster response time",
			"Advanced AI models",
		},
		Featured: true,
	},
	{
		ID:          "enterprise",
		Name:        "Enterprise Plan",
		Price:       9999,
		Description: "For teams and large organizations",
		Features: []string{
			"Unlimited everything",
			"Custom AI model training",
			"Dedicated support",
			"API access",
			"Custom integrations",
		},
	},
}

// Products returns a copy of the plan catalog in display order.
func Products() []Product {
	out := make([]Product, len(catalog))
	for i, p := range catalog {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

// FindProduct looks a plan up by ID.
func FindProduct(id string) (Product, bool) {
	for _, p := range Products() {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
