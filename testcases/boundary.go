package testcases

// boundaryCases involve points exactly on the edges of the clip
// rectangle, which count as inside.
var boundaryCases = []TestCase{
	{
		Name: "corner_to_corner",
		Clip: Box,
		P1:   pt(4, 4),
		P2:   pt(10, 8),
		Want: accept(4, 4, 10, 8),
	},
	{
		Name: "on_left_edge",
		Clip: Box,
		P1:   pt(4, 5),
		P2:   pt(4, 7),
		Want: accept(4, 5, 4, 7),
	},
	{
		Name:         "along_bottom_edge",
		Clip:         Box,
		P1:           pt(0, 4),
		P2:           pt(20, 4),
		Want:         accept(4, 4, 10, 4),
		Replacements: 2,
	},
	{
		Name:         "along_right_edge",
		Clip:         Box,
		P1:           pt(10, 0),
		P2:           pt(10, 20),
		Want:         accept(10, 4, 10, 8),
		Replacements: 2,
	},
	{
		Name: "left_of_left_edge",
		Clip: Box,
		P1:   pt(3, 0),
		P2:   pt(3, 20),
		Want: Rejected{},
	},
}
