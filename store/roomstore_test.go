package store

import (
	"testing"

	utils "github.com/pajter/scheisskopf/internal"
	"github.com/pajter/scheisskopf/room"
)

func TestRoomStore(t *testing.T) {
	t.Run("create and find", func(t *testing.T) {
		s := New(nil)

		r, err := s.Create("ABCDEF", "p1")
		utils.AssertNoError(t, err)
		utils.AssertNotNil(t, r)
		defer r.Close()

		found := s.Find("ABCDEF")
		utils.AssertEqual(t, found, r)
	})

	t.Run("duplicate codes are rejected", func(t *testing.T) {
		s := New(nil)

		r, err := s.Create("ABCDEF", "p1")
		utils.AssertNoError(t, err)
		defer r.Close()

		_, err = s.Create("ABCDEF", "p2")
		utils.AssertErrored(t, err)
	})

	t.Run("unknown rooms come back nil", func(t *testing.T) {
		s := New(nil)
		if s.Find("NOSUCH") != nil {
			t.Error("expected nil for an unknown room")
		}
	})

	t.Run("remove closes the room", func(t *testing.T) {
		s := New(nil)

		_, err := s.Create("ABCDEF", "p1")
		utils.AssertNoError(t, err)

		utils.AssertNoError(t, s.Remove("ABCDEF"))
		if s.Find("ABCDEF") != nil {
			t.Error("room still registered after removal")
		}

		utils.AssertEqual(t, s.Remove("ABCDEF"), ErrUnknownRoomID)
	})

	t.Run("foreach visits every room", func(t *testing.T) {
		s := New(nil)
		for _, id := range []string{"AAAAAA", "BBBBBB", "CCCCCC"} {
			r, err := s.Create(id, "p1")
			utils.AssertNoError(t, err)
			defer r.Close()
		}

		visited := 0
		s.ForEach(func(_ *room.Room) { visited++ })
		utils.AssertEqual(t, visited, 3)
	})
}
