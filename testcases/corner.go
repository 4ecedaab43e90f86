package testcases

// cornerCases have endpoints in the corner regions, where two outcode
// bits are set at once.
var cornerCases = []TestCase{
	{
		Name:         "miss_top_left",
		Clip:         Box,
		P1:           pt(0, 7),
		P2:           pt(7, 14),
		Want:         Rejected{},
		Replacements: 1,
	},
	{
		Name:         "miss_bottom_right",
		Clip:         Box,
		P1:           pt(8, 0),
		P2:           pt(14, 6),
		Want:         Rejected{},
		Replacements: 1,
	},
	{
		Name:         "cut_top_left",
		Clip:         Box,
		P1:           pt(3, 5),
		P2:           pt(5, 9),
		Want:         accept(4, 7, 4.5, 8),
		Replacements: 2,
	},
	{
		Name:         "opposite_corners",
		Clip:         Box,
		P1:           pt(2, 10),
		P2:           pt(12, 0),
		Want:         accept(4, 8, 8, 4),
		Replacements: 2,
	},
	{
		// Both endpoints need two replacements.
		Name:         "two_bits_each",
		Clip:         Box,
		P1:           pt(-5, 2),
		P2:           pt(16, 9),
		Want:         accept(4, 5, 10, 7),
		Replacements: 4,
	},
}
