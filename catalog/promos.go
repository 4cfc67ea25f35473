package catalog

import (
	"math"

	"github.com/floranflowers/floran-api/utils"
)

// Promo code types
const (
	PromoPercent = "percent"
	PromoFlat    = "flat"
)

// PromoCode is a static storefront discount code
type PromoCode struct {
	Type           string  `json:"type"` // percent or flat
	Value          float64 `json:"value"`
	Description    string  `json:"description"`
	FirstOrderOnly bool    `json:"first_order_only"`
	MinOrder       float64 `json:"min_order"`
	Active         bool    `json:"active"`
}

// DiscountAmount computes the discount this code grants on an order total.
// A flat discount never exceeds the order total.
func (p PromoCode) DiscountAmount(orderTotal float64) float64 {
	if p.Type == PromoPercent {
		return utils.Round2(orderTotal * p.Value / 100)
	}
	return math.Min(p.Value, orderTotal)
}

// PromoCodes holds every storefront code, keyed by normalized code
var PromoCodes = map[string]PromoCode{
	"WELCOME10": {Type: PromoPercent, Value: 10, Description: "10% off your first order", FirstOrderOnly: true, MinOrder: 0, Active: true},
	"SUMMER20":  {Type: PromoPercent, Value: 20, Description: "20% off orders above ₹500", FirstOrderOnly: false, MinOrder: 500, Active: true},
	"FLAT100":   {Type: PromoFlat, Value: 100, Description: "₹100 off on orders above ₹800", FirstOrderOnly: false, MinOrder: 800, Active: true},
	"BUNDLE15":  {Type: PromoPercent, Value: 15, Description: "15% off on bundle deals", FirstOrderOnly: false, MinOrder: 0, Active: true},
	"FLORANVIP": {Type: PromoPercent, Value: 25, Description: "VIP exclusive — 25% off orders above ₹1000", FirstOrderOnly: false, MinOrder: 1000, Active: true},
}

// SeasonalOffer is a promotional banner shown on the storefront
type SeasonalOffer struct {
	ID       string `json:"id"`
	Emoji    string `json:"emoji"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Code     string `json:"code"`
	Badge    string `json:"badge"`
}

// SeasonalOffers is the static list of current storefront offers
var SeasonalOffers = []SeasonalOffer{
	{ID: "spring", Emoji: "🌸", Title: "Spring Sale", Subtitle: "Up to 20% off on all bouquets", Code: "SUMMER20", Badge: "Limited Time"},
	{ID: "bundle", Emoji: "🎁", Title: "Bundle & Save", Subtitle: "Buy a bundle and save 15%", Code: "BUNDLE15", Badge: "Bundle Deal"},
	{ID: "newuser", Emoji: "🎉", Title: "New Here?", Subtitle: "10% off your very first order", Code: "WELCOME10", Badge: "First Order"},
	{ID: "vip", Emoji: "💎", Title: "VIP Offer", Subtitle: "25% off orders above ₹1000", Code: "FLORANVIP", Badge: "VIP Only"},
}

// BundleDeal groups products sold together at a discount
type BundleDeal struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	ProductIDs  []int  `json:"product_ids"`
	PromoCode   string `json:"promo_code"`
	SavingsPct  int    `json:"savings_pct"`
}

// BundleDeals is the static list of bundle offers
var BundleDeals = []BundleDeal{
	{ID: "romance", Name: "Romance Bundle", Description: "Perfect for date nights and anniversaries", Emoji: "❤️", ProductIDs: []int{1, 5, 42}, PromoCode: "BUNDLE15", SavingsPct: 15},
	{ID: "wedding", Name: "Wedding Elegance", Description: "Everything for a perfect wedding", Emoji: "💍", ProductIDs: []int{94, 9, 42}, PromoCode: "BUNDLE15", SavingsPct: 15},
	{ID: "birthday", Name: "Birthday Surprise", Description: "Make their birthday extra special", Emoji: "🎂", ProductIDs: []int{76, 4, 14}, PromoCode: "BUNDLE15", SavingsPct: 15},
}

// EnrichedBundle is a bundle deal with its product rows and computed pricing
type EnrichedBundle struct {
	BundleDeal
	Products      []Product `json:"products"`
	OriginalPrice float64   `json:"original_price"`
	BundlePrice   float64   `json:"bundle_price"`
}

// EnrichedBundles resolves every bundle's products (preserving the configured
// product order) and computes original and discounted pricing.
func EnrichedBundles() []EnrichedBundle {
	out := make([]EnrichedBundle, 0, len(BundleDeals))
	for _, bundle := range BundleDeals {
		products := make([]Product, 0, len(bundle.ProductIDs))
		original := 0.0
		for _, id := range bundle.ProductIDs {
			if p, ok := ProductByID(id); ok {
				products = append(products, p)
				original += p.Price
			}
		}
		out = append(out, EnrichedBundle{
			BundleDeal:    bundle,
			Products:      products,
			OriginalPrice: utils.Round2(original),
			BundlePrice:   utils.Round2(original * (1 - float64(bundle.SavingsPct)/100)),
		})
	}
	return out
}
