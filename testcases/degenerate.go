package testcases

import "math"

// degenerateCases are zero-length segments.
var degenerateCases = []TestCase{
	{
		Name: "point_inside",
		Clip: Box,
		P1:   pt(5, 5),
		P2:   pt(5, 5),
		Want: accept(5, 5, 5, 5),
	},
	{
		Name: "point_on_corner",
		Clip: Box,
		P1:   pt(10, 8),
		P2:   pt(10, 8),
		Want: accept(10, 8, 10, 8),
	},
	{
		Name: "point_outside",
		Clip: Box,
		P1:   pt(0, 0),
		P2:   pt(0, 0),
		Want: Rejected{},
	},
}

// nonFiniteCases contain NaN or infinite values, either in the input
// or in an intermediate result. All of these are rejected.
var nonFiniteCases = []TestCase{
	{
		Name: "nan_input",
		Clip: Box,
		P1:   pt(math.NaN(), 5),
		P2:   pt(6, 6),
		Want: Rejected{},
	},
	{
		Name: "infinite_input",
		Clip: Box,
		P1:   pt(math.Inf(-1), 6),
		P2:   pt(math.Inf(1), 6),
		Want: Rejected{},
	},
	{
		// The differences between the coordinates overflow, so the
		// first intersection is Inf/Inf.
		Name:         "overflow",
		Clip:         Box,
		P1:           pt(-math.MaxFloat64, -math.MaxFloat64),
		P2:           pt(math.MaxFloat64, math.MaxFloat64),
		Want:         Rejected{},
		Replacements: 1,
	},
}
