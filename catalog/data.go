// Package catalog holds the static product reference data the store is
// seeded with. The catalog is immutable after load.
package catalog

import (
	"gorm.io/datatypes"

	"github.com/arun20071/arun-chaudhary-ecommerce/models"
)

// Products is the full catalog, in display order.
var Products = []models.Product{
	{
		ID:              "smartphone-premium",
		Name:            "Premium Smartphone",
		Description:     "Cutting-edge technology with a stunning display and powerful camera system.",
		LongDescription: "Experience the future of mobile technology with our Premium Smartphone. Featuring a vibrant high-resolution display, lightning-fast processor, and a revolutionary camera system that captures stunning photos even in low light. With all-day battery life and the latest security features, this smartphone is designed for those who demand the best.",
		Price:           899,
		Image:           "https://images.unsplash.com/photo-1598327105666-5b89351aff97?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350&q=80",
		Rating:          4.5,
		ReviewCount:     42,
		Badge:           "NEW",
		Category:        "electronics",
		Details:         datatypes.JSON(`{"model":"PS-2023","weight":"180g","dimensions":"146 x 72 x 7.4 mm"}`),
	},
	{
		ID:            "smartwatch",
		Name:          "Smart Watch",
		Description:   "Track your fitness and stay connected with this stylish smartwatch.",
		Price:         249,
		OriginalPrice: 299,
		Image:         "https://images.unsplash.com/photo-1546868871-7041f2a55e12?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350&q=80",
		Rating:        4.0,
		ReviewCount:   29,
		Badge:         "-15%",
		Category:      "electronics",
		Details:       datatypes.JSON(`{"weight":"42g","dimensions":"44 x 38 x 10.7 mm"}`),
	},
	{
		ID:          "wireless-earbuds",
		Name:        "Wireless Earbuds",
		Description: "Immersive sound with noise cancellation and long battery life.",
		Price:       129,
		Image:       "https://images.unsplash.com/photo-1605464315542-bda3e2f4e605?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350&q=80",
		Rating:      4.5,
		ReviewCount: 98,
		Category:    "electronics",
		Details:     datatypes.JSON(`{"weight":"5.4g per bud","dimensions":"24 x 16 x 17 mm per bud"}`),
	},
	{
		ID:          "digital-camera",
		Name:        "Digital Camera",
		Description: "Capture life's moments with stunning clarity and professional quality.",
		Price:       549,
		Image:       "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350&q=80",
		Rating:      4.0,
		ReviewCount: 56,
		Badge:       "POPULAR",
		Category:    "electronics",
		Details:     datatypes.JSON(`{"model":"DC-Pro2","weight":"390g","dimensions":"120 x 70 x 40 mm"}`),
	},
	{
		ID:          "premium-sneakers",
		Name:        "Premium Sneakers",
		Description: "Stylish and comfortable sneakers for everyday wear.",
		Price:       129,
		Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350&q=80",
		Rating:      3.5,
		ReviewCount: 37,
		Badge:       "LIMITED",
		Category:    "fashion",
		Details:     datatypes.JSON(`{"weight":"310g per shoe","dimensions":"Available in sizes 7-13 US"}`),
	},
	{
		ID:            "bluetooth-speaker",
		Name:          "Bluetooth Speaker",
		Description:   "Powerful sound in a portable design with 20 hours of battery life.",
		Price:         79,
		OriginalPrice: 99,
		Image:         "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350&q=80",
		Rating:        5.0,
		ReviewCount:   84,
		Badge:         "-20%",
		Category:      "electronics",
		Details:       datatypes.JSON(`{"model":"BS-X1","weight":"720g","dimensions":"180 x 80 x 80 mm"}`),
	},
	{
		ID:          "coffee-maker",
		Name:        "Smart Coffee Maker",
		Description: "Brew the perfect cup of coffee with customizable settings and app control.",
		Price:       149,
		Image:       "https://images.unsplash.com/photo-1570286424717-e9113b6ff6a3?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350&q=80",
		Rating:      4.7,
		ReviewCount: 113,
		Category:    "home",
		Details:     datatypes.JSON(`{"model":"CM-300","weight":"2.3kg","dimensions":"240 x 170 x 350 mm"}`),
	},
	{
		ID:            "designer-bag",
		Name:          "Designer Handbag",
		Description:   "Elegant and spacious handbag made from premium materials.",
		Price:         299,
		OriginalPrice: 349,
		Image:         "https://images.unsplash.com/photo-1584917865442-de89df76afd3?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350&q=80",
		Rating:        4.3,
		ReviewCount:   28,
		Category:      "fashion",
		Details:       datatypes.JSON(`{"dimensions":"380 x 140 x 300 mm"}`),
	},
	{
		ID:          "skincare-set",
		Name:        "Luxury Skincare Set",
		Description: "Complete skincare routine with natural ingredients for radiant skin.",
		Price:       189,
		Image:       "https://images.unsplash.com/photo-1570172619644-dfd03ed5d881?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350&q=80",
		Rating:      4.8,
		ReviewCount: 65,
		Category:    "beauty",
		Details:     datatypes.JSON(`{"weight":"780g total"}`),
	},
	{
		ID:          "smart-thermostat",
		Name:        "Smart Thermostat",
		Description: "Control your home temperature from anywhere and save on energy costs.",
		Price:       129,
		Image:       "https://images.unsplash.com/photo-1621319332247-ce85f09b10ec?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350&q=80",
		Rating:      4.6,
		ReviewCount: 73,
		Category:    "home",
		Details:     datatypes.JSON(`{"model":"ST-100","dimensions":"100 x 100 x 25 mm"}`),
	},
	{
		ID:            "fitness-tracker",
		Name:          "Fitness Activity Tracker",
		Description:   "Monitor your workouts, heart rate, and sleep patterns for better health.",
		Price:         69,
		OriginalPrice: 89,
		Image:         "https://images.unsplash.com/photo-1575311373937-040b8e97fd29?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350&q=80",
		Rating:        4.4,
		ReviewCount:   128,
		Badge:         "-22%",
		Category:      "electronics",
		Details:       datatypes.JSON(`{"weight":"28g","dimensions":"38 x 18 x 11 mm"}`),
	},
	{
		ID:          "wireless-headphones",
		Name:        "Premium Headphones",
		Description: "Over-ear headphones with noise cancellation and studio-quality sound.",
		Price:       249,
		Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350&q=80",
		Rating:      4.9,
		ReviewCount: 207,
		Category:    "electronics",
		Details:     datatypes.JSON(`{"model":"PH-X3","weight":"310g","dimensions":"165 x 190 x 80 mm"}`),
	},
}
