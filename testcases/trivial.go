package testcases

// trivialCases are decided by the outcodes of the input endpoints,
// without computing any intersections.
var trivialCases = []TestCase{
	{
		Name: "inside",
		Clip: Box,
		P1:   pt(5, 5),
		P2:   pt(6, 6),
		Want: accept(5, 5, 6, 6),
	},
	{
		Name: "reject_left",
		Clip: Box,
		P1:   pt(-20, -10),
		P2:   pt(-15, -10),
		Want: Rejected{},
	},
	{
		Name: "reject_right",
		Clip: Box,
		P1:   pt(11, 0),
		P2:   pt(12, 20),
		Want: Rejected{},
	},
	{
		Name: "reject_below",
		Clip: Box,
		P1:   pt(5, 0),
		P2:   pt(9, 3),
		Want: Rejected{},
	},
	{
		Name: "reject_above",
		Clip: Box,
		P1:   pt(0, 9),
		P2:   pt(20, 12),
		Want: Rejected{},
	},
}
