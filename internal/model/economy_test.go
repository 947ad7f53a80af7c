package model

import (
	"reflect"
	"testing"
)

func TestPurchaseSuccess(t *testing.T) {
	u := UserData{Coins: 150, UnlockedEmojis: []string{"🌲", "🍄"}}
	if !Purchase(&u, "🌸", 100) {
		t.Fatal("expected purchase to succeed")
	}
	if u.Coins != 50 {
		t.Fatalf("expected balance 50, got %d", u.Coins)
	}
	if !Unlocked(u, "🌸") {
		t.Fatalf("expected item unlocked, got %#v", u.UnlockedEmojis)
	}
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	u := UserData{Coins: 50, UnlockedEmojis: []string{"🌲", "🍄"}}
	before := u
	if Purchase(&u, "🌳", 100) {
		t.Fatal("expected purchase to fail")
	}
	if u.Coins != before.Coins || !reflect.DeepEqual(u.UnlockedEmojis, before.UnlockedEmojis) {
		t.Fatalf("state changed by failed purchase: %+v", u)
	}
}

func TestPurchaseAlreadyOwned(t *testing.T) {
	u := UserData{Coins: 500, UnlockedEmojis: []string{"🌲", "🍄"}}
	if Purchase(&u, "🍄", 0) {
		t.Fatal("expected owned item purchase to fail")
	}
	if u.Coins != 500 || len(u.UnlockedEmojis) != 2 {
		t.Fatalf("state changed by owned-item purchase: %+v", u)
	}
}

func TestPurchaseExactBalance(t *testing.T) {
	u := UserData{Coins: 100, UnlockedEmojis: []string{"🌲"}}
	if !Purchase(&u, "🌿", 100) {
		t.Fatal("expected purchase at exact balance to succeed")
	}
	if u.Coins != 0 {
		t.Fatalf("expected zero balance, got %d", u.Coins)
	}
}
