// Package stream builds the fixed chunk sequence for a run and keeps a
// sliding window of chunk instances materialized around the player.
package stream

import "errors"

var ErrEmptySequence = errors.New("stream: chunk sequence is empty")

// BiomeGroup is one biome's ordered chunk prototype list.
type BiomeGroup struct {
	Name   string
	Chunks []string
}

// SequenceConfig describes how the session's chunk sequence is assembled.
type SequenceConfig struct {
	Start  string
	End    string
	Groups []BiomeGroup
}

// Sequence is the ordered, immutable-for-the-session chunk prototype list.
type Sequence struct {
	protos []string
}

// BuildSequence assembles the sequence once, at level start: start prototype
// first (when configured), then each biome group's chunks in configured group
// order with empty entries skipped, then the end prototype. Groups are not
// shuffled; construction is deterministic for a given config.
func BuildSequence(cfg SequenceConfig) (*Sequence, error) {
	protos := make([]string, 0, 16)
	if cfg.Start != "" {
		protos = append(protos, cfg.Start)
	}
	for _, g := range cfg.Groups {
		for _, c := range g.Chunks {
			if c == "" {
				continue
			}
			protos = append(protos, c)
		}
	}
	if cfg.End != "" {
		protos = append(protos, cfg.End)
	}
	if len(protos) == 0 {
		return nil, ErrEmptySequence
	}
	return &Sequence{protos: protos}, nil
}

// Len returns the sequence length.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.protos)
}

// At returns the prototype at index i, or "" out of range.
func (s *Sequence) At(i int) string {
	if s == nil || i < 0 || i >= len(s.protos) {
		return ""
	}
	return s.protos[i]
}
