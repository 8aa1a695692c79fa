package usecase

import (
	"regexp"
	"strings"

	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/fooddetection/domain/entity"
)

// foodKeywords は食品関連ラベルの判定に使う部分一致キーワードです（すべて小文字）。
// 形態素解析や曖昧一致は行わず、単純な部分文字列一致のみを使います。
var foodKeywords = []string{
	"apple", "banana", "orange", "grape", "strawberry", "mango",
	"tomato", "potato", "carrot", "broccoli", "onion", "lettuce",
	"chicken", "beef", "pork", "fish", "salmon", "egg",
	"milk", "cheese", "yogurt", "butter",
	"bread", "rice", "pasta", "noodle",
	"pizza", "burger", "sandwich", "salad", "soup",
	"cake", "cookie", "chocolate",
	"fruit", "vegetable", "meat", "dairy", "grain", "food",
}

// foodParents は食品と判定される親ラベル名です（完全一致）。
var foodParents = map[string]struct{}{
	"Food":      {},
	"Fruit":     {},
	"Vegetable": {},
	"Meat":      {},
	"Dairy":     {},
	"Grain":     {},
}

// genericNames は具体的な食品名ではなく食品カテゴリを指すラベル名です（完全一致）。
// より具体的なラベルが同じバッチに存在する場合、これらは抑制されます。
var genericNames = map[string]struct{}{
	"Food":      {},
	"Fruit":     {},
	"Vegetable": {},
	"Meat":      {},
	"Dairy":     {},
	"Grain":     {},
	"Plant":     {},
}

// foodCategories は正規化済みの食品名から栄養カテゴリへの静的マッピングです。
// 未登録の名前はCategoryForで"Other"に解決されます。
var foodCategories = map[string]string{
	"Apple":      "Fruits",
	"Banana":     "Fruits",
	"Orange":     "Fruits",
	"Grape":      "Fruits",
	"Strawberry": "Fruits",
	"Mango":      "Fruits",
	"Tomato":     "Vegetables",
	"Potato":     "Vegetables",
	"Carrot":     "Vegetables",
	"Broccoli":   "Vegetables",
	"Onion":      "Vegetables",
	"Lettuce":    "Vegetables",
	"Salad":      "Vegetables",
	"Chicken":    "Protein",
	"Beef":       "Protein",
	"Pork":       "Protein",
	"Fish":       "Protein",
	"Salmon":     "Protein",
	"Egg":        "Protein",
	"Milk":       "Dairy",
	"Cheese":     "Dairy",
	"Yogurt":     "Dairy",
	"Butter":     "Dairy",
	"Bread":      "Grains",
	"Rice":       "Grains",
	"Pasta":      "Grains",
	"Noodle":     "Grains",
	"Pizza":      "Fast Food",
	"Burger":     "Fast Food",
	"Sandwich":   "Fast Food",
	"Cake":       "Desserts",
	"Cookie":     "Desserts",
	"Chocolate":  "Desserts",
}

var (
	// trailingAffix は末尾の汎用語（例: "Apple Food" → "Apple"）にマッチします。
	trailingAffix = regexp.MustCompile(`(?i)\s+(Food|Item|Product)$`)
	// leadingAffix は先頭の修飾語（例: "Fresh Apple" → "Apple"）にマッチします。
	leadingAffix = regexp.MustCompile(`(?i)^(Fresh|Organic|Raw|Cooked)\s+`)
)

// IsFoodRelevant はラベルが食品関連かどうかを判定します。
// 名前がキーワードを含む（大文字小文字無視）か、親ラベル名が食品カテゴリに
// 完全一致する場合にtrueを返します。
func IsFoodRelevant(label entity.Label) bool {
	lower := strings.ToLower(label.Name)
	for _, kw := range foodKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	for _, p := range label.Parents {
		if _, ok := foodParents[p]; ok {
			return true
		}
	}
	return false
}

// NormalizeName はラベル名から修飾語・汎用語の接辞を取り除き正規化名を返します。
// 冪等です: 正規化済みの名前はそのまま返されます。
func NormalizeName(name string) string {
	name = trailingAffix.ReplaceAllString(name, "")
	name = leadingAffix.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// CategoryFor は正規化済みの食品名に対応する栄養カテゴリを返します。
// 未登録の名前は"Other"に解決されます（エラーにはしません）。
func CategoryFor(name string) string {
	if c, ok := foodCategories[name]; ok {
		return c
	}
	return "Other"
}

// isGenericName はラベル名（正規化前）が汎用カテゴリ名かどうかを判定します。
func isGenericName(name string) bool {
	_, ok := genericNames[name]
	return ok
}
