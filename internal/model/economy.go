package model

// Purchase atomically deducts price and unlocks the item. An ineligible
// purchase (insufficient balance, already owned) changes nothing and returns
// false; callers are expected to have pre-filtered eligible items, so this is
// a silent guard rather than an error.
func Purchase(u *UserData, emoji string, price int) bool {
	if u.Coins < price || containsString(u.UnlockedEmojis, emoji) {
		return false
	}
	u.Coins -= price
	u.UnlockedEmojis = append(u.UnlockedEmojis, emoji)
	return true
}

// Unlocked reports whether an item is in the unlocked set.
func Unlocked(u UserData, emoji string) bool {
	return containsString(u.UnlockedEmojis, emoji)
}
