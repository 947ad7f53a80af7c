package shop

import (
	"testing"

	"github.com/vibetimer/vibe/internal/model"
)

func TestStarterItemsAreFree(t *testing.T) {
	for _, emoji := range model.DefaultUnlocked {
		item, ok := Find(emoji)
		if !ok {
			t.Fatalf("starter item %q missing from catalog", emoji)
		}
		if item.Price != 0 {
			t.Fatalf("starter item %q has price %d, want 0", emoji, item.Price)
		}
	}
}

func TestCatalogUniqueAndPriced(t *testing.T) {
	seen := make(map[string]bool)
	for _, item := range Items() {
		if seen[item.Emoji] {
			t.Fatalf("duplicate catalog entry: %q", item.Emoji)
		}
		seen[item.Emoji] = true
		if item.Price < 0 {
			t.Fatalf("negative price for %q", item.Emoji)
		}
		if item.NameDe == "" || item.NameEn == "" {
			t.Fatalf("missing localized name for %q", item.Emoji)
		}
	}
}

func TestFindUnknown(t *testing.T) {
	if _, ok := Find("🚀"); ok {
		t.Fatal("expected unknown emoji to be absent")
	}
}

func TestItemName(t *testing.T) {
	item, _ := Find("🦊")
	if item.Name(model.LangDe) != "Fuchs" {
		t.Fatalf("unexpected German name: %q", item.Name(model.LangDe))
	}
	if item.Name(model.LangEn) != "Fox" {
		t.Fatalf("unexpected English name: %q", item.Name(model.LangEn))
	}
}
