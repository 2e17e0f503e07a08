package mockdata

import "sort"

// A trimmed FMCG catalog covering the categories the strategies care about:
// multiple brands per category, margin and popularity spread per product.
func productCatalog() map[string]catalogBrand {
	return map[string]catalogBrand{
		"Taj Mahal": {
			Company:     "HUL",
			Category:    "Beverages",
			MarketShare: 25,
			Products: []catalogProduct{
				{Name: "Taj Mahal Tea Strong", Price: 250, Margin: 15, Popularity: 90},
				{Name: "Taj Mahal Gold Tea", Price: 300, Margin: 18, Popularity: 85},
				{Name: "Taj Mahal Green Tea", Price: 180, Margin: 20, Popularity: 70},
				{Name: "Taj Mahal Masala Chai", Price: 220, Margin: 16, Popularity: 80},
				{Name: "Taj Mahal Chai Moments", Price: 120, Margin: 25, Popularity: 88},
			},
		},
		"Maggi": {
			Company:     "Nestle",
			Category:    "Food",
			MarketShare: 60,
			Products: []catalogProduct{
				{Name: "Maggi 2-Minute Masala Noodles", Price: 14, Margin: 30, Popularity: 95},
				{Name: "Maggi Hot & Sweet Sauce", Price: 45, Margin: 25, Popularity: 78},
				{Name: "Maggi Tomato Ketchup", Price: 85, Margin: 28, Popularity: 82},
				{Name: "Maggi Chicken Noodles", Price: 16, Margin: 30, Popularity: 85},
				{Name: "Maggi Soup Mixes", Price: 35, Margin: 35, Popularity: 60},
			},
		},
		"Britannia": {
			Company:     "Britannia Industries",
			Category:    "Food",
			MarketShare: 35,
			Products: []catalogProduct{
				{Name: "Good Day Biscuits", Price: 35, Margin: 25, Popularity: 88},
				{Name: "Bourbon", Price: 45, Margin: 22, Popularity: 85},
				{Name: "Marie Gold", Price: 30, Margin: 20, Popularity: 92},
				{Name: "Little Hearts", Price: 25, Margin: 30, Popularity: 85},
				{Name: "Britannia Bread", Price: 28, Margin: 15, Popularity: 90},
			},
		},
		"Parle": {
			Company:     "Parle Products",
			Category:    "Food",
			MarketShare: 30,
			Products: []catalogProduct{
				{Name: "Parle-G", Price: 25, Margin: 20, Popularity: 98},
				{Name: "Monaco", Price: 30, Margin: 22, Popularity: 85},
				{Name: "Hide & Seek", Price: 45, Margin: 26, Popularity: 88},
				{Name: "Melody Chocolate", Price: 20, Margin: 38, Popularity: 70},
				{Name: "Mango Bite", Price: 18, Margin: 40, Popularity: 78},
			},
		},
		"Colgate": {
			Company:     "Colgate-Palmolive",
			Category:    "Personal Care",
			MarketShare: 55,
			Products: []catalogProduct{
				{Name: "Colgate Strong Teeth", Price: 85, Margin: 35, Popularity: 90},
				{Name: "Colgate Max Fresh", Price: 95, Margin: 38, Popularity: 85},
				{Name: "Colgate Active Salt", Price: 75, Margin: 32, Popularity: 88},
				{Name: "Colgate ZigZag Toothbrush", Price: 45, Margin: 50, Popularity: 85},
				{Name: "Colgate Plax Mouthwash", Price: 180, Margin: 38, Popularity: 68},
			},
		},
		"Organic India": {
			Company:     "Organic India Pvt",
			Category:    "Beverages",
			MarketShare: 8,
			Products: []catalogProduct{
				{Name: "Organic India Tulsi Green Tea", Price: 220, Margin: 32, Popularity: 45},
				{Name: "Organic India Masala Tea", Price: 260, Margin: 30, Popularity: 40},
				{Name: "Organic India Honey", Price: 350, Margin: 28, Popularity: 38},
			},
		},
		"Dettol": {
			Company:     "Reckitt",
			Category:    "Healthcare",
			MarketShare: 45,
			Products: []catalogProduct{
				{Name: "Dettol Antiseptic Liquid", Price: 110, Margin: 30, Popularity: 92},
				{Name: "Dettol Soap Original", Price: 40, Margin: 28, Popularity: 90},
				{Name: "Dettol Hand Wash", Price: 99, Margin: 32, Popularity: 84},
				{Name: "Dettol Wipes", Price: 150, Margin: 36, Popularity: 62},
			},
		},
	}
}

func catalogBrandNames() []string {
	catalog := productCatalog()
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
