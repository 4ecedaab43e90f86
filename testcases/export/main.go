// Command export writes the clipping test cases to JSON, for checking
// other implementations against the same data.
// Run from the lineclip module root directory.
package main

import (
	"encoding/json"
	"maps"
	"math"
	"os"
	"slices"
	"strconv"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/lineclip/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

// number is a float64 which encodes NaN and infinities as the strings
// "NaN", "+Inf" and "-Inf", since JSON has no representation for them.
type number float64

func (x number) MarshalJSON() ([]byte, error) {
	f := float64(x)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return json.Marshal(f)
}

type jsonTestCase struct {
	Name         string    `json:"name"`
	Clip         [4]number `json:"clip"` // xMin, yMin, xMax, yMax
	Segment      [4]number `json:"segment"`
	Accepted     bool      `json:"accepted"`
	Result       []number  `json:"result,omitempty"`
	Replacements int       `json:"replacements"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:         category + "_" + tc.Name,
		Clip:         [4]number{number(tc.Clip.LLx), number(tc.Clip.LLy), number(tc.Clip.URx), number(tc.Clip.URy)},
		Segment:      segment(tc.P1, tc.P2),
		Replacements: tc.Replacements,
	}

	switch want := tc.Want.(type) {
	case testcases.Accepted:
		jtc.Accepted = true
		res := segment(want.P1, want.P2)
		jtc.Result = res[:]
	case testcases.Rejected:
		jtc.Accepted = false
	}
	return jtc
}

func segment(p1, p2 vec.Vec2) [4]number {
	return [4]number{number(p1.X), number(p1.Y), number(p2.X), number(p2.Y)}
}
