package verify

import (
	"fmt"
	"log"
	"math/rand/v2"
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/sic1/cpu"
	"github.com/ezrec/sic1/internal"
	"github.com/ezrec/sic1/io"
)

// Row is a group of inputs and the outputs they produce.
type Row struct {
	Input  []int8
	Output []int8
}

// Puzzle is a puzzle definition.
//
// Puzzles are Starlark files that set:
//
//	title = "Negation"
//	description = "Negate each input."          # optional
//	input_format = "numbers"                    # optional
//	output_format = "numbers"                   # optional
//	io = [([3], [-3]), ([4], [-4])]             # standard test
//	fixed = [[[1], [2]]]                        # optional extra tests
//	def random_test():                          # optional
//	    return [[random(10) + 1] for _ in range(8)]
//	def expected_output(groups):                # required with fixed or random_test
//	    return [[-g[0]] for g in groups]
//
// The builtin random(n) returns an integer in [0, n).
// A string is accepted anywhere a list of values is, as its characters
// followed by a zero.
type Puzzle struct {
	Verbose bool // If set, logs Starlark print() output.

	Filename     string
	Title        string
	Description  string
	InputFormat  io.Format
	OutputFormat io.Format
	IO           []Row
	Fixed        [][][]int8

	rand           *rand.Rand
	randomTest     starlark.Callable
	expectedOutput starlark.Callable
}

// LoadPuzzle executes a Starlark puzzle definition.
// The seed drives the random builtin.
func LoadPuzzle(filename string, src any, seed uint64) (puzzle *Puzzle, err error) {
	p := &Puzzle{
		Filename: filename,
		rand:     rand.New(rand.NewPCG(seed, seed^0x5ec1)),
	}

	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"random": starlark.NewBuiltin("random", p.builtinRandom),
	}
	dict, err := starlark.ExecFileOptions(&opts, p.thread(), filename, src, pred)
	if err != nil {
		return
	}

	title, err := p.attribute(dict, "title", true)
	if err != nil {
		return
	}
	p.Title, err = p.asString("title", title)
	if err != nil {
		return
	}

	if value, _ := p.attribute(dict, "description", false); value != nil {
		p.Description, err = p.asString("description", value)
		if err != nil {
			return
		}
	}

	for attr, format := range map[string]*io.Format{
		"input_format":  &p.InputFormat,
		"output_format": &p.OutputFormat,
	} {
		value, _ := p.attribute(dict, attr, false)
		if value == nil {
			continue
		}
		var name string
		name, err = p.asString(attr, value)
		if err != nil {
			return
		}
		*format, err = io.ParseFormat(name)
		if err != nil {
			err = &ErrPuzzle{Filename: filename, Attribute: attr, Err: err}
			return
		}
	}

	rows, err := p.attribute(dict, "io", true)
	if err != nil {
		return
	}
	p.IO, err = p.toRows("io", rows)
	if err != nil {
		return
	}

	if value, _ := p.attribute(dict, "fixed", false); value != nil {
		var list starlark.Indexable
		list, err = p.asIndexable("fixed", value)
		if err != nil {
			return
		}
		for n := range list.Len() {
			var groups [][]int8
			groups, err = p.toGroups("fixed", list.Index(n))
			if err != nil {
				return
			}
			p.Fixed = append(p.Fixed, groups)
		}
	}

	for attr, callable := range map[string]*starlark.Callable{
		"random_test":     &p.randomTest,
		"expected_output": &p.expectedOutput,
	} {
		value, _ := p.attribute(dict, attr, false)
		if value == nil {
			continue
		}
		fn, ok := value.(starlark.Callable)
		if !ok {
			err = &ErrPuzzle{Filename: filename, Attribute: attr, Err: ErrPuzzleType}
			return
		}
		*callable = fn
	}

	if (p.randomTest != nil || len(p.Fixed) > 0) && p.expectedOutput == nil {
		err = &ErrPuzzle{Filename: filename, Attribute: "expected_output", Err: ErrPuzzleExpected}
		return
	}

	puzzle = p
	return
}

func (p *Puzzle) thread() *starlark.Thread {
	return &starlark.Thread{
		Name: p.Filename,
		Print: func(_ *starlark.Thread, msg string) {
			if p.Verbose {
				log.Printf("%v: %v", p.Filename, msg)
			}
		},
	}
}

func (p *Puzzle) builtinRandom(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var n int
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &n)
	if err != nil {
		return
	}
	if n <= 0 {
		err = fmt.Errorf("%v: n must be positive, got %d", b.Name(), n)
		return
	}

	value = starlark.MakeInt(p.rand.IntN(n))
	return
}

func (p *Puzzle) attribute(dict starlark.StringDict, attr string, required bool) (value starlark.Value, err error) {
	value, ok := dict[attr]
	if !ok && required {
		err = &ErrPuzzle{Filename: p.Filename, Attribute: attr, Err: ErrPuzzleMissing}
	}
	return
}

func (p *Puzzle) asString(attr string, value starlark.Value) (text string, err error) {
	text, ok := starlark.AsString(value)
	if !ok {
		err = &ErrPuzzle{Filename: p.Filename, Attribute: attr, Err: ErrPuzzleType}
	}
	return
}

func (p *Puzzle) asIndexable(attr string, value starlark.Value) (list starlark.Indexable, err error) {
	list, ok := value.(starlark.Indexable)
	if !ok {
		err = &ErrPuzzle{Filename: p.Filename, Attribute: attr, Err: ErrPuzzleType}
	}
	return
}

// toValues converts a list of integers, or a string, to values.
func (p *Puzzle) toValues(attr string, value starlark.Value) (values []int8, err error) {
	if text, ok := value.(starlark.String); ok {
		for _, char := range []byte(string(text)) {
			values = append(values, int8(char))
		}
		values = append(values, 0)
		return
	}

	list, err := p.asIndexable(attr, value)
	if err != nil {
		return
	}

	values = make([]int8, 0, list.Len())
	for n := range list.Len() {
		var number int
		number, err = starlark.AsInt32(list.Index(n))
		if err != nil {
			err = &ErrPuzzle{Filename: p.Filename, Attribute: attr, Err: ErrPuzzleType}
			return
		}
		if number < cpu.VALUE_MIN || number > cpu.VALUE_MAX {
			err = &ErrPuzzle{Filename: p.Filename, Attribute: attr, Err: ErrPuzzleValue}
			return
		}
		values = append(values, int8(number))
	}

	return
}

func (p *Puzzle) toGroups(attr string, value starlark.Value) (groups [][]int8, err error) {
	list, err := p.asIndexable(attr, value)
	if err != nil {
		return
	}

	for n := range list.Len() {
		var values []int8
		values, err = p.toValues(attr, list.Index(n))
		if err != nil {
			return
		}
		groups = append(groups, values)
	}

	return
}

func (p *Puzzle) toRows(attr string, value starlark.Value) (rows []Row, err error) {
	list, err := p.asIndexable(attr, value)
	if err != nil {
		return
	}

	for n := range list.Len() {
		var pair [][]int8
		pair, err = p.toGroups(attr, list.Index(n))
		if err != nil {
			return
		}
		if len(pair) != 2 {
			err = &ErrPuzzle{Filename: p.Filename, Attribute: attr, Err: ErrPuzzleType}
			return
		}
		rows = append(rows, Row{Input: pair[0], Output: pair[1]})
	}

	return
}

func fromGroups(groups [][]int8) *starlark.List {
	elems := make([]starlark.Value, len(groups))
	for n, group := range groups {
		values := make([]starlark.Value, len(group))
		for m, value := range group {
			values[m] = starlark.MakeInt(int(value))
		}
		elems[n] = starlark.NewList(values)
	}

	return starlark.NewList(elems)
}

// RandomTest calls random_test(), returning nil if the puzzle has none.
func (p *Puzzle) RandomTest() (groups [][]int8, err error) {
	if p.randomTest == nil {
		return
	}

	value, err := starlark.Call(p.thread(), p.randomTest, nil, nil)
	if err != nil {
		return
	}

	return p.toGroups("random_test", value)
}

// ExpectedOutput calls expected_output() for groups of inputs.
func (p *Puzzle) ExpectedOutput(groups [][]int8) (outputs [][]int8, err error) {
	if p.expectedOutput == nil {
		err = &ErrPuzzle{Filename: p.Filename, Attribute: "expected_output", Err: ErrPuzzleMissing}
		return
	}

	value, err := starlark.Call(p.thread(), p.expectedOutput, starlark.Tuple{fromGroups(groups)}, nil)
	if err != nil {
		return
	}

	return p.toGroups("expected_output", value)
}

// TestSet is a flattened test of a puzzle.
type TestSet struct {
	Name   string
	Input  []int8
	Output []int8
}

// testSetName names a test set by its 1-based position.
func testSetName(index int) string {
	if index == 0 {
		return f("standard input")
	}
	return f("test set %d", index+1)
}

func (p *Puzzle) rowsTestSet(rows []Row) TestSet {
	inputs := make([][]int8, len(rows))
	outputs := make([][]int8, len(rows))
	for n, row := range rows {
		inputs[n] = row.Input
		outputs[n] = row.Output
	}

	return TestSet{
		Input:  internal.Flatten(inputs),
		Output: internal.Flatten(outputs),
	}
}

func (p *Puzzle) groupsTestSet(groups [][]int8) (set TestSet, err error) {
	outputs, err := p.ExpectedOutput(groups)
	if err != nil {
		return
	}

	set = TestSet{
		Input:  internal.Flatten(groups),
		Output: internal.Flatten(outputs),
	}
	return
}

// similarAttempts bounds the search for a test set similar to the standard one.
const similarAttempts = 100

// TestSets returns the standard test set, then each fixed test, then a
// random test, then a test like the standard one with its last row replaced
// by a random group.
func (p *Puzzle) TestSets() (sets []TestSet, err error) {
	standard := p.rowsTestSet(p.IO)
	sets = append(sets, standard)

	for _, fixed := range p.Fixed {
		var set TestSet
		set, err = p.groupsTestSet(fixed)
		if err != nil {
			return
		}
		sets = append(sets, set)
	}

	if p.randomTest != nil {
		var groups [][]int8
		groups, err = p.RandomTest()
		if err != nil {
			return
		}
		var set TestSet
		set, err = p.groupsTestSet(groups)
		if err != nil {
			return
		}
		sets = append(sets, set)

		for attempt := 0; len(p.IO) > 1 && attempt < similarAttempts; attempt++ {
			groups, err = p.RandomTest()
			if err != nil {
				return
			}
			if len(groups) == 0 {
				break
			}
			var outputs [][]int8
			outputs, err = p.ExpectedOutput(groups)
			if err != nil {
				return
			}
			index := p.rand.IntN(len(groups))
			if index >= len(outputs) {
				continue
			}

			rows := append([]Row{}, p.IO[:len(p.IO)-1]...)
			rows = append(rows, Row{Input: groups[index], Output: outputs[index]})
			similar := p.rowsTestSet(rows)
			if !slices.Equal(similar.Input, standard.Input) && !slices.Equal(similar.Output, standard.Output) {
				sets = append(sets, similar)
				break
			}
		}
	}

	for n := range sets {
		sets[n].Name = testSetName(n)
	}

	return
}
