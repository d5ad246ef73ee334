package deck

import "fmt"

// Rank represents a rank in a deck of cards. Ranks carry their numeric
// card value directly (2 low, Ace = 14 high).
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = map[Rank]string{
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
	Ace:   "Ace",
}

func (r Rank) String() string {
	return rankNames[r]
}

// Value returns the numeric ordering value of a rank.
func (r Rank) Value() int {
	return int(r)
}

// Suit represents a suit in a deck of cards
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}
var suitIDs = []string{"clubs", "diamonds", "hearts", "spades"}

func (s Suit) String() string {
	return suitNames[s]
}

// Card represents a playing card. Cards are immutable values: they are
// compared by identity and only ever moved between collections.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard constructs a card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// ID returns the stable string identity of a card, e.g. "clubs:4"
func (c Card) ID() string {
	return fmt.Sprintf("%s:%d", suitIDs[c.Suit], int(c.Rank))
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", rankNames[c.Rank], suitNames[c.Suit])
}

// SameRank reports whether all cards share one rank.
// Zero or one cards trivially qualify.
func SameRank(cards []Card) bool {
	if len(cards) < 2 {
		return true
	}
	for _, c := range cards[1:] {
		if c.Rank != cards[0].Rank {
			return false
		}
	}
	return true
}
