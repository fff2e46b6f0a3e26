package savedata

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tinytelemetry/tradeadvance/internal/apperr"
)

// document is the on-disk layout of a YAML save.
type document struct {
	Trainer string   `yaml:"trainer"`
	Game    string   `yaml:"game,omitempty"`
	Party   []Member `yaml:"party"`
	Pokedex []string `yaml:"pokedex,omitempty"`
}

// YAMLCodec reads saves stored as YAML documents.
type YAMLCodec struct{}

var _ Codec = YAMLCodec{}

func (YAMLCodec) Decode(data []byte) (Save, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	if strings.TrimSpace(doc.Trainer) == "" {
		return nil, errors.New("missing trainer name")
	}
	if len(doc.Party) > MaxParty {
		return nil, fmt.Errorf("party has %d members, max %d", len(doc.Party), MaxParty)
	}
	for i, m := range doc.Party {
		if strings.TrimSpace(m.Species) == "" {
			return nil, fmt.Errorf("party slot %d has unknown species", i)
		}
	}
	return &yamlSave{doc: doc}, nil
}

// NewYAMLSave builds a save in memory.
func NewYAMLSave(trainer string, party ...Member) Save {
	return &yamlSave{doc: document{Trainer: trainer, Party: party}}
}

type yamlSave struct {
	doc document
}

func (s *yamlSave) TrainerName() string { return s.doc.Trainer }

func (s *yamlSave) Party() []Member { return slices.Clone(s.doc.Party) }

func (s *yamlSave) RemoveMember(i int) (Member, error) {
	if i < 0 || i >= len(s.doc.Party) {
		return Member{}, apperr.NotFound(fmt.Sprintf("slot %d of %s", i, s.doc.Trainer))
	}
	m := s.doc.Party[i]
	s.doc.Party = slices.Delete(s.doc.Party, i, i+1)
	return m, nil
}

func (s *yamlSave) AppendMember(m Member) error {
	if len(s.doc.Party) >= MaxParty {
		return ErrPartyFull
	}
	s.doc.Party = append(s.doc.Party, m)
	return nil
}

func (s *yamlSave) MarkSeen(species string) {
	i, found := slices.BinarySearch(s.doc.Pokedex, species)
	if found {
		return
	}
	s.doc.Pokedex = slices.Insert(s.doc.Pokedex, i, species)
}

func (s *yamlSave) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s.doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
