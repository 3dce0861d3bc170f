package domain

import "strings"

// Account is a watched Twitter account, resolved once at startup and
// immutable for the process lifetime.
type Account struct {
	ID          string // internal numeric id assigned by the API
	Handle      string // screen name without the leading @
	DisplayName string
	AvatarURL   string
}

// Tweet is a single fetched post. IDs are decimal snowflake strings;
// a numerically larger id is newer.
type Tweet struct {
	ID      string
	Account Account
}

// Message is the payload handed to the delivery channel.
type Message struct {
	Text        string
	DisplayName string
	AvatarURL   string
}

// CompareTweetIDs orders two decimal tweet id strings numerically without
// big-integer math: after stripping leading zeros, a shorter string is
// smaller, equal lengths compare byte-wise. Plain lexicographic comparison
// would misorder ids of different widths ("9" > "10").
func CompareTweetIDs(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
