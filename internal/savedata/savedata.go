// Package savedata loads, trades and writes save files.
//
// The screens only see the Save interface. The format behind it is chosen
// by the Codec; the one shipped here reads and writes YAML documents.
package savedata

import (
	"errors"
	"fmt"

	"github.com/tinytelemetry/tradeadvance/internal/apperr"
)

// MaxParty is the largest party a save may hold.
const MaxParty = 6

var ErrPartyFull = errors.New("party is full")

// Member is one party slot.
type Member struct {
	Species  string `yaml:"species"`
	Nickname string `yaml:"nickname,omitempty"`
	Level    int    `yaml:"level"`
	OT       string `yaml:"ot,omitempty"`
}

// Save is a decoded save file.
type Save interface {
	TrainerName() string
	Party() []Member
	RemoveMember(i int) (Member, error)
	AppendMember(m Member) error
	// MarkSeen registers species as caught in the pokédex.
	MarkSeen(species string)
	Encode() ([]byte, error)
}

// Codec decodes raw save bytes.
type Codec interface {
	Decode(data []byte) (Save, error)
}

// PartyNames lists the species in party order.
func PartyNames(s Save) []string {
	party := s.Party()
	names := make([]string, len(party))
	for i, m := range party {
		names[i] = m.Species
	}
	return names
}

// Trade swaps party slot i of a with slot j of b. Each member is appended
// to the end of its new party and registered in the receiving pokédex.
// Nothing is changed when either slot does not exist.
func Trade(a, b Save, i, j int) error {
	if i < 0 || i >= len(a.Party()) {
		return apperr.NotFound(fmt.Sprintf("slot %d of %s", i, a.TrainerName()))
	}
	if j < 0 || j >= len(b.Party()) {
		return apperr.NotFound(fmt.Sprintf("slot %d of %s", j, b.TrainerName()))
	}

	fromA, err := a.RemoveMember(i)
	if err != nil {
		return tradeErr(a, err)
	}
	fromB, err := b.RemoveMember(j)
	if err != nil {
		return tradeErr(b, err)
	}

	if err := a.AppendMember(fromB); err != nil {
		return tradeErr(a, err)
	}
	a.MarkSeen(fromB.Species)

	if err := b.AppendMember(fromA); err != nil {
		return tradeErr(b, err)
	}
	b.MarkSeen(fromA.Species)
	return nil
}

func tradeErr(s Save, err error) error {
	return &apperr.SaveError{Op: "trade", Name: s.TrainerName(), Err: err}
}
