package game

import "github.com/pajter/scheisskopf/deck"

func containsCard(cards []deck.Card, target deck.Card) bool {
	for _, c := range cards {
		if c == target {
			return true
		}
	}
	return false
}

func unfinishedCount(players []Player) int {
	n := 0
	for _, p := range players {
		if !p.IsFinished {
			n++
		}
	}
	return n
}
