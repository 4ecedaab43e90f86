package testcases

import "seehuhn.de/go/geom/rect"

// unitSquare is a clip rectangle centred at the origin.
var unitSquare = rect.Rect{LLx: -1, LLy: -1, URx: 1, URy: 1}

var partialCases = []TestCase{
	{
		Name:         "horizontal_through",
		Clip:         Box,
		P1:           pt(0, 6),
		P2:           pt(20, 6),
		Want:         accept(4, 6, 10, 6),
		Replacements: 2,
	},
	{
		Name:         "vertical_through",
		Clip:         Box,
		P1:           pt(7, 0),
		P2:           pt(7, 20),
		Want:         accept(7, 4, 7, 8),
		Replacements: 2,
	},
	{
		Name:         "inside_to_right",
		Clip:         Box,
		P1:           pt(6, 6),
		P2:           pt(16, 6),
		Want:         accept(6, 6, 10, 6),
		Replacements: 1,
	},
	{
		Name:         "inside_to_top",
		Clip:         Box,
		P1:           pt(6, 6),
		P2:           pt(6, 12),
		Want:         accept(6, 6, 6, 8),
		Replacements: 1,
	},
	{
		Name:         "diagonal",
		Clip:         Box,
		P1:           pt(-20, -10),
		P2:           pt(20, 10),
		Want:         accept(8, 4, 10, 5),
		Replacements: 3,
	},
	{
		Name:         "diagonal_reversed",
		Clip:         Box,
		P1:           pt(20, 10),
		P2:           pt(-20, -10),
		Want:         accept(10, 5, 8, 4),
		Replacements: 3,
	},
	{
		Name:         "unit_horizontal",
		Clip:         unitSquare,
		P1:           pt(-2, 0),
		P2:           pt(2, 0),
		Want:         accept(-1, 0, 1, 0),
		Replacements: 2,
	},
	{
		Name:         "unit_diagonal",
		Clip:         unitSquare,
		P1:           pt(-2, -2),
		P2:           pt(2, 2),
		Want:         accept(-1, -1, 1, 1),
		Replacements: 2,
	},
}
