// Package aoc are quick & dirty utilities for solving the Advent of Code
// 2023 puzzles. (forked from maisem/aoc, itself forked from bradfitz/aoc)
//
// A solver is a struct embedding *Puzzle with methods named D{day}p{part}
// returning (any, error). The doc comment of a method may carry a sample:
//
//	/*
//	want=142
//
//	1abc2
//	pqr3stu8vwx
//	*/
//
// and, on a separate // line, the known answer for the real input:
//
//	// answer=54573
//
// A method without its own sample input reuses the one before it in the
// same file.
package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/maisem/aoc2023/internal/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

type sample struct {
	input  string
	want   string
	answer string
}

var (
	sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)
	answerRx = regexp.MustCompile(`^\s*answer=(\S+)\s*$`)
)

func commentText(comment string) string {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	return text
}

func parseSample(comment string) (sample, bool) {
	if m := sampleRx.FindStringSubmatch(commentText(comment)); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

func parseAnswer(comment string) (string, bool) {
	if m := answerRx.FindStringSubmatch(commentText(comment)); m != nil {
		return m[1], true
	}
	return "", false
}

// extractSamples returns the samples and answers found in the doc
// comments of src, keyed by function name.
func extractSamples(name string, src []byte) (map[string]sample, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s to extract samples: %w", name, err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		var (
			s                sample
			found, hasSample bool
		)
		for _, c := range fd.Doc.List {
			if !hasSample {
				if v, ok := parseSample(c.Text); ok {
					s.want, s.input = v.want, Or(v.input, lastInput)
					lastInput = s.input
					found, hasSample = true, true
					continue
				}
			}
			if a, ok := parseAnswer(c.Text); ok {
				s.answer = a
				found = true
			}
		}
		if found {
			samples[fd.Name.Name] = s
		}
	}
	return samples, nil
}

// extractAllSamples runs extractSamples over every non-test Go file at
// the top of fsys.
func extractAllSamples(fsys fs.FS) (map[string]sample, error) {
	names, err := fs.Glob(fsys, "*.go")
	if err != nil {
		return nil, err
	}
	slices.Sort(names)
	samples := make(map[string]sample)
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		fileSamples, err := extractSamples(name, src)
		if err != nil {
			return nil, err
		}
		maps.Copy(samples, fileSamples)
	}
	return samples, nil
}

// Options control which puzzles Run runs and where their input comes
// from.
type Options struct {
	Day        int    // 0 runs every day
	Part       string // empty runs every part
	OnlySample bool
	SkipSample bool

	// InputDir holds the <day>.input files.
	InputDir string
	// Fetch downloads missing inputs into InputDir using the session
	// cookie in SessionFile.
	Fetch       bool
	SessionFile string

	Logger *zap.Logger
	Out    io.Writer // defaults to os.Stdout
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	opts    *Options
	input   []byte
}

func (p *Puzzle) inputPath() string {
	return filepath.Join(p.opts.InputDir, fmt.Sprintf("%d.input", p.day.day))
}

// Input returns the input of the puzzle: the sample input in sample
// mode, the contents of the day's input file otherwise.
func (p *Puzzle) Input() ([]byte, error) {
	if p.SampleMode {
		s, ok := p.Sample()
		if !ok {
			return nil, fmt.Errorf("no sample found for %v", p.solver.Name)
		}
		return []byte(s.input), nil
	}
	if p.input != nil {
		return p.input, nil
	}
	path := p.inputPath()
	in, err := os.ReadFile(path)
	if err != nil && p.opts.Fetch && os.IsNotExist(err) {
		in, err = fetchInput(p.opts.SessionFile, p.year, p.day.day, path)
	}
	if err != nil {
		return nil, errors.MissingInput(path, err)
	}
	p.input = in
	return in, nil
}

// Lines returns the lines of the input.
func (p *Puzzle) Lines() ([]string, error) {
	var lines []string
	err := p.ForLines(func(line string) {
		lines = append(lines, line)
	})
	return lines, err
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) error {
	in, err := p.Input()
	if err != nil {
		return err
	}
	s := bufio.NewScanner(bytes.NewReader(in))
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	return s.Err()
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) error {
	return p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Debugf logs at debug level while running a sample.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.opts.Logger.Sugar().Debugf(format, args...)
	}
}

// Sample returns the sample of the part being solved.
func (p *Puzzle) Sample() (sample, bool) {
	s, ok := p.samples[p.solver.Name]
	return s, ok && s.want != ""
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	Part  string
	Name  string
	index int // method index on the solver struct
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

var solverFuncType = reflect.TypeOf((func() (any, error))(nil))

// extractMethods finds the methods named D{day}p{part} of the struct x
// points to. The methods must have the signature func() (any, error).
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	v = v.Elem()
	if _, ok := v.Type().FieldByName("Puzzle"); !ok {
		return nil, fmt.Errorf("solver: %T does not embed *aoc.Puzzle", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		if mt := v.Method(i).Type(); mt != solverFuncType {
			return nil, fmt.Errorf("solver method %s is %v; want %v", mn, mt, solverFuncType)
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			Part:  matches[2],
			Name:  mn,
			index: i,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

func runDay(slvr any, year int, day day, samples map[string]sample, opts *Options) error {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
		opts:    opts,
	}
	log := opts.Logger.With(zap.Int("day", day.day))
	fmt.Fprintln(opts.Out, "Running day", day.day)
	sr := reflect.ValueOf(slvr).Elem()
	sr.FieldByName("Puzzle").Set(reflect.ValueOf(&p))

	var answers []string
	ran := false
	for _, ps := range day.parts {
		if opts.Part != "" && ps.Part != opts.Part {
			continue
		}
		ran = true
		p.solver = ps
		fn := sr.Method(ps.index).Interface().(func() (any, error))

		for _, sm := range []bool{true, false} {
			if !sm && opts.OnlySample {
				continue
			} else if sm && opts.SkipSample {
				continue
			}
			p.SampleMode = sm
			s, hasSample := p.Sample()
			if sm && !hasSample {
				log.Debug("no sample", zap.String("part", ps.Part))
				continue
			}
			if !sm {
				// Prime the input.
				in, err := p.Input()
				if err != nil {
					return err
				}
				log.Debug("input",
					zap.String("path", p.inputPath()),
					zap.Int("bytes", len(in)),
					zap.Stringer("hash", GridFromLines(string(in)).Hash()))
			}
			t0 := time.Now()
			got, err := fn()
			took := time.Since(t0).Round(time.Microsecond)
			if err != nil {
				log.Error("part failed", zap.String("part", ps.Part), zap.Bool("sample", sm), zap.Error(err))
				return fmt.Errorf("%s: %w", ps.Name, err)
			}
			log.Debug("part done", zap.String("part", ps.Part), zap.Bool("sample", sm), zap.Duration("took", took))
			if sm {
				if fmt.Sprint(got) != s.want {
					fmt.Fprintf(opts.Out, "part %s: %v ❌; want %v\n", ps.Part, got, s.want)
					return errors.AnswerMismatch(ps.Name+" sample", got, s.want)
				}
				fmt.Fprintf(opts.Out, "part %s sample: %v ✅ (%v) \n", ps.Part, got, took)
				continue
			}
			fmt.Fprintf(opts.Out, "part %s: %v (took %v) \n", ps.Part, got, took)
			answers = append(answers, fmt.Sprintf("puzzle%sAnswer:%v", ps.Part, got))
			if want := p.samples[ps.Name].answer; want != "" && fmt.Sprint(got) != want {
				return errors.AnswerMismatch(ps.Name, got, want)
			}
		}
	}
	if !ran {
		return errors.UnknownDay(day.day, opts.Part)
	}
	if len(answers) > 0 {
		fmt.Fprintf(opts.Out, "{%s}\n", strings.Join(answers, " "))
	}
	return nil
}

// Run runs the solvers of slvr for year. src holds the solver's Go
// source, from which samples and answers are read.
func Run(year int, src fs.FS, slvr any, opts Options) error {
	samples, err := extractAllSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.Day != 0 {
		day, ok := days[opts.Day]
		if !ok {
			return errors.UnknownDay(opts.Day, "")
		}
		return runDay(slvr, year, day, samples, &opts)
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		if err := runDay(slvr, year, days[d], samples, &opts); err != nil {
			return err
		}
		fmt.Fprintln(opts.Out)
	}
	return nil
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
