package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference file names.
var All = map[string][]TestCase{
	"trivial":    trivialCases,
	"partial":    partialCases,
	"demo":       demoCases,
	"corner":     cornerCases,
	"boundary":   boundaryCases,
	"degenerate": degenerateCases,
	"nonfinite":  nonFiniteCases,
}
