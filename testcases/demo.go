package testcases

// demoCases are the four segments shown by the classic demonstration
// program, all clipped against Box.
var demoCases = []TestCase{
	{
		Name:         "rising_shallow",
		Clip:         Box,
		P1:           pt(-20, -10),
		P2:           pt(20, 10),
		Want:         accept(8, 4, 10, 5),
		Replacements: 3,
	},
	{
		Name:         "falling_shallow",
		Clip:         Box,
		P1:           pt(-20, 10),
		P2:           pt(20, -10),
		Want:         Rejected{},
		Replacements: 2,
	},
	{
		// The line y = 2x touches the top-left corner of Box only.
		Name:         "rising_steep",
		Clip:         Box,
		P1:           pt(-10, -20),
		P2:           pt(10, 20),
		Want:         accept(4, 8, 4, 8),
		Replacements: 3,
	},
	{
		Name:         "falling_steep",
		Clip:         Box,
		P1:           pt(10, -20),
		P2:           pt(-10, 20),
		Want:         Rejected{},
		Replacements: 1,
	},
}
