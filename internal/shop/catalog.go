// Package shop holds the static catalog of purchasable emoji items.
package shop

import "github.com/vibetimer/vibe/internal/model"

type Item struct {
	Emoji  string
	Price  int
	NameDe string
	NameEn string
}

// Name returns the localized display name, falling back to English.
func (i Item) Name(lang model.Language) string {
	if lang == model.LangDe {
		return i.NameDe
	}
	return i.NameEn
}

var catalog = []Item{
	// Basics
	{Emoji: "🌲", Price: 0, NameDe: "Nadelbaum", NameEn: "Conifer"},
	{Emoji: "🍄", Price: 0, NameDe: "Pilz", NameEn: "Mushroom"},

	// Forest plants
	{Emoji: "🌳", Price: 100, NameDe: "Laubbaum", NameEn: "Deciduous Tree"},
	{Emoji: "🌿", Price: 120, NameDe: "Kraut", NameEn: "Herb"},
	{Emoji: "☘️", Price: 150, NameDe: "Klee", NameEn: "Shamrock"},
	{Emoji: "🍁", Price: 250, NameDe: "Ahorn", NameEn: "Maple"},
	{Emoji: "🍂", Price: 280, NameDe: "Herbstblatt", NameEn: "Fallen Leaf"},
	{Emoji: "🪵", Price: 300, NameDe: "Holz", NameEn: "Wood"},

	// Garden flowers
	{Emoji: "🌸", Price: 200, NameDe: "Kirschblüte", NameEn: "Cherry Blossom"},
	{Emoji: "🌷", Price: 220, NameDe: "Tulpe", NameEn: "Tulip"},
	{Emoji: "🌹", Price: 300, NameDe: "Rose", NameEn: "Rose"},
	{Emoji: "🌻", Price: 350, NameDe: "Sonnenblume", NameEn: "Sunflower"},
	{Emoji: "🌼", Price: 400, NameDe: "Gänseblümchen", NameEn: "Blossom"},
	{Emoji: "🌺", Price: 450, NameDe: "Hibiskus", NameEn: "Hibiscus"},
	{Emoji: "🪷", Price: 700, NameDe: "Lotus", NameEn: "Lotus"},

	// Exotic and special plants
	{Emoji: "🌴", Price: 500, NameDe: "Palme", NameEn: "Palm Tree"},
	{Emoji: "🌵", Price: 600, NameDe: "Kaktus", NameEn: "Cactus"},
	{Emoji: "🌾", Price: 800, NameDe: "Reispflanze", NameEn: "Sheaf of Rice"},
	{Emoji: "🎋", Price: 1200, NameDe: "Bambus", NameEn: "Tanabata Tree"},
	{Emoji: "🪴", Price: 1500, NameDe: "Topfpflanze", NameEn: "Potted Plant"},
	{Emoji: "✨", Price: 2000, NameDe: "Glitzer", NameEn: "Sparkles"},

	// Small creatures
	{Emoji: "🐛", Price: 150, NameDe: "Raupe", NameEn: "Bug"},
	{Emoji: "🐌", Price: 180, NameDe: "Schnecke", NameEn: "Snail"},
	{Emoji: "🐜", Price: 220, NameDe: "Ameise", NameEn: "Ant"},
	{Emoji: "🐝", Price: 300, NameDe: "Biene", NameEn: "Honeybee"},
	{Emoji: "🐞", Price: 350, NameDe: "Marienkäfer", NameEn: "Lady Beetle"},
	{Emoji: "🦋", Price: 600, NameDe: "Schmetterling", NameEn: "Butterfly"},
	{Emoji: "🦗", Price: 650, NameDe: "Grille", NameEn: "Cricket"},
	{Emoji: "🪲", Price: 700, NameDe: "Käfer", NameEn: "Beetle"},

	// Forest and mythical animals
	{Emoji: "🐿️", Price: 800, NameDe: "Eichhörnchen", NameEn: "Squirrel"},
	{Emoji: "🦔", Price: 900, NameDe: "Igel", NameEn: "Hedgehog"},
	{Emoji: "🐇", Price: 1000, NameDe: "Hase", NameEn: "Rabbit"},
	{Emoji: "🦊", Price: 1500, NameDe: "Fuchs", NameEn: "Fox"},
	{Emoji: "🐻", Price: 1800, NameDe: "Bär", NameEn: "Bear"},
	{Emoji: "🦉", Price: 2000, NameDe: "Eule", NameEn: "Owl"},
	{Emoji: "🦌", Price: 2500, NameDe: "Hirsch", NameEn: "Deer"},
	{Emoji: "🐺", Price: 2800, NameDe: "Wolf", NameEn: "Wolf"},
	{Emoji: "🦝", Price: 3000, NameDe: "Waschbär", NameEn: "Raccoon"},
	{Emoji: "🦄", Price: 7500, NameDe: "Einhorn", NameEn: "Unicorn"},
	{Emoji: "🐉", Price: 10000, NameDe: "Drache", NameEn: "Dragon"},

	// Special items
	{Emoji: "🏕️", Price: 3000, NameDe: "Zelt", NameEn: "Camping"},
	{Emoji: "🏡", Price: 4000, NameDe: "Häuschen", NameEn: "Cottage"},
	{Emoji: "🛖", Price: 4500, NameDe: "Hütte", NameEn: "Hut"},
	{Emoji: "⛲", Price: 5000, NameDe: "Brunnen", NameEn: "Fountain"},
	{Emoji: "🗿", Price: 6000, NameDe: "Moai", NameEn: "Moyai"},
	{Emoji: "🔮", Price: 8000, NameDe: "Kristallkugel", NameEn: "Crystal Ball"},
	{Emoji: "💎", Price: 12000, NameDe: "Diamant", NameEn: "Gem Stone"},
}

// Items returns the full catalog in display order.
func Items() []Item {
	return catalog
}

// Find looks up a catalog item by its emoji identifier.
func Find(emoji string) (Item, bool) {
	for _, item := range catalog {
		if item.Emoji == emoji {
			return item, true
		}
	}
	return Item{}, false
}
