package tetris

import "github.com/vovakirdan/blockfall/internal/core"

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// KindCount is the number of tetromino definitions.
const KindCount = 7

// Definition pairs a spawn-orientation shape with its color.
type Definition struct {
	Kind  Kind
	Name  string
	Shape Shape
	Color core.Color
}

// definitions is the fixed tetromino table, indexed by Kind.
var definitions = [KindCount]Definition{
	{Kind: KindI, Name: "I", Shape: ParseShape("####"), Color: core.ColorCyan},
	{Kind: KindO, Name: "O", Shape: ParseShape("##", "##"), Color: core.ColorBlue},
	{Kind: KindT, Name: "T", Shape: ParseShape("###", ".#."), Color: core.ColorOrange},
	{Kind: KindL, Name: "L", Shape: ParseShape("###", "#.."), Color: core.ColorYellow},
	{Kind: KindJ, Name: "J", Shape: ParseShape("###", "..#"), Color: core.ColorGreen},
	{Kind: KindS, Name: "S", Shape: ParseShape("##.", ".##"), Color: core.ColorPurple},
	{Kind: KindZ, Name: "Z", Shape: ParseShape(".##", "##."), Color: core.ColorRed},
}

// DefinitionOf returns the definition for a kind.
func DefinitionOf(k Kind) Definition {
	return definitions[k]
}

// Definitions returns a copy of the whole table in Kind order.
func Definitions() []Definition {
	out := make([]Definition, KindCount)
	copy(out, definitions[:])
	return out
}

// String returns the one-letter tetromino name.
func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return "?"
	}
	return definitions[k].Name
}
