// Command cli runs a bot-only game in the terminal. Handy for watching
// the rules at work without standing up the websocket server.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/fatih/color"

	"github.com/pajter/scheisskopf/bot"
	"github.com/pajter/scheisskopf/deck"
	"github.com/pajter/scheisskopf/game"
	"github.com/pajter/scheisskopf/protocol"
)

const maxTurns = 2000

var (
	redCard  = color.New(color.FgRed).SprintFunc()
	headline = color.New(color.Bold).SprintFunc()
	burnMsg  = color.New(color.FgYellow).SprintFunc()
	winMsg   = color.New(color.FgGreen).SprintFunc()
	loseMsg  = color.New(color.FgRed, color.Bold).SprintFunc()
)

var botNames = []string{"Alex", "Billie", "Chris", "Dana", "Eli", "Frankie"}

func main() {
	numPlayers := flag.Int("players", 3, "number of bots at the table (2-6)")
	flag.Parse()

	if *numPlayers < 2 || *numPlayers > len(botNames) {
		log.Fatalf("players must be between 2 and %d", len(botNames))
	}

	s := game.NewState("local")
	bots := map[string]*bot.Bot{}

	for i := 0; i < *numPlayers; i++ {
		id := fmt.Sprintf("bot-%d", i)
		bots[id] = bot.New(id, botNames[i], nil, 0)
		s = mustApply(s, protocol.Action{Type: protocol.Join, PlayerID: id, Name: botNames[i]})
	}

	s = mustApply(s, protocol.Action{Type: protocol.Deal, PlayerID: "bot-0"})
	s = mustApply(s, protocol.Action{Type: protocol.Start})

	fmt.Printf("%s\n\n", headline(fmt.Sprintf("Scheisskopf, %d players", *numPlayers)))
	fmt.Printf("%s opens with the %s\n", nameOf(s, s.CurrentPlayerID), paint(*s.StartingCard))

	for turn := 0; s.Phase != game.Ended && turn < maxTurns; turn++ {
		actorID := s.CurrentPlayerID
		b, ok := bots[actorID]
		if !ok {
			log.Fatalf("no bot for player %q", actorID)
		}

		action, ok := b.Choose(game.ProjectForViewer(s, actorID))
		if !ok {
			log.Fatalf("%s has no move in phase %s", nameOf(s, actorID), s.Phase)
		}

		next := mustApply(s, action)
		report(s, next, action)
		s = next
	}

	if s.Phase != game.Ended {
		fmt.Println("\ngame abandoned, the bots are going in circles")
		return
	}

	fmt.Println()
	for _, p := range s.Players {
		if p.IsScheisskopf {
			fmt.Printf("%s\n", loseMsg(p.Name+" is the Scheisskopf!"))
		} else {
			fmt.Printf("%s\n", winMsg(p.Name+" got rid of everything"))
		}
	}
}

func mustApply(s game.State, action protocol.Action) game.State {
	next, err := game.Apply(s, action)
	if err != nil {
		log.Fatalf("%s failed: %s", action.Type, err)
	}
	return next
}

func report(before, after game.State, action protocol.Action) {
	name := nameOf(before, action.PlayerID)

	switch action.Type {
	case protocol.Play:
		if after.LastError != nil {
			if after.LastError.OffendingCard != nil {
				fmt.Printf("%s flips %s blind and it doesn't fit\n",
					name, paint(*after.LastError.OffendingCard))
			} else {
				fmt.Printf("%s: move rejected (%s)\n", name, after.LastError.Kind)
			}
			return
		}
		played := after.Pile[len(before.Pile):]
		fmt.Printf("%s plays %s\n", name, paintAll(played))
		if after.Phase == game.ClearThePile {
			fmt.Printf("  %s\n", burnMsg("the pile burns"))
		}
		if count := after.CardCount(); count != 52 {
			log.Fatalf("card count drifted to %d", count)
		}
	case protocol.Pick:
		fmt.Printf("%s picks up the pile (%d cards)\n", name, len(before.Pile))
	case protocol.ClearThePile:
		fmt.Printf("%s clears %d cards away\n", name, len(before.Pile))
	default:
		fmt.Printf("%s: %s\n", name, action.Type)
	}

	for _, p := range after.Players {
		if p.IsFinished && !playerFinishedIn(before, p.ID) {
			fmt.Printf("  %s\n", winMsg(p.Name+" is out"))
		}
	}
}

func playerFinishedIn(s game.State, id string) bool {
	for _, p := range s.Players {
		if p.ID == id {
			return p.IsFinished
		}
	}
	return false
}

func nameOf(s game.State, id string) string {
	for _, p := range s.Players {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}

func paint(c deck.Card) string {
	if c.Suit == deck.Hearts || c.Suit == deck.Diamonds {
		return redCard(c.String())
	}
	return c.String()
}

func paintAll(cards []deck.Card) string {
	out := ""
	for i, c := range cards {
		if i > 0 {
			out += ", "
		}
		out += paint(c)
	}
	return out
}
