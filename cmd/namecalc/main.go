// Command namecalc is an interactive stack calculator over polytope
// names: literals push names, operations pop and push their
// canonicalized results, and the top of the stack is shown in its
// OFF-header form after every step.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/H-A-M-G-E-R/miratope/geom"
	"github.com/H-A-M-G-E-R/miratope/name"
)

const (
	historyFile = ".namecalc_history"
	prompt      = "name> "
)

const helpText = `Literals (push):
  nullitope | point | dyad | triangle | square | rectangle | orthodiagonal
  polygon N          irregular N-gon
  simplex R          irregular simplex of rank R (likewise hyperblock, orthoplex)
  generic F R        F facets, rank R
  load PATH          name from the first line of an OFF file (.gz ok)

Operations (pop, push):
  pyramid | prism | tegum | antiprism | petrial | small | great | stellated
  dual F R [X Y Z...]     dual about the given center; F facets, rank R
  multipyramid K          pop K names into one product
  multiprism K | multitegum K | multicomb K

Stack:
  show | valid | dup | pop | clear | help | quit`

func main() {
	abstract := flag.Bool("abstract", false,
		"work with abstract names: centers and regularity are ignored")
	flag.Parse()

	fmt.Println("namecalc — polytope name calculator. Type help for commands, quit to exit.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	if *abstract {
		run[name.Abs](ln)
	} else {
		run[name.Con](ln)
	}
}

// run is the REPL loop over one instantiation of the engine.
func run[T name.NameType](ln *liner.State) {
	var c calc[T]

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()

			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)

			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		if line == "quit" || line == ":quit" {
			return
		}
		if err := c.eval(strings.Fields(line)); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)

			continue
		}
		c.show()
	}
}

// calc holds the name stack for one marker instantiation.
type calc[T name.NameType] struct {
	stack []name.Name[T]
}

func (c *calc[T]) push(n name.Name[T]) { c.stack = append(c.stack, n) }

func (c *calc[T]) pop() (name.Name[T], error) {
	if len(c.stack) == 0 {
		return nil, errors.New("stack is empty")
	}
	n := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	return n, nil
}

func (c *calc[T]) show() {
	if len(c.stack) == 0 {
		fmt.Println("(empty)")

		return
	}
	fmt.Printf("[%d] %s\n", len(c.stack), name.Header(c.stack[len(c.stack)-1]))
}

// eval executes one whitespace-split command.
func (c *calc[T]) eval(args []string) error {
	cmd, args := args[0], args[1:]

	switch cmd {
	// Literals.
	case "nullitope":
		c.push(name.Nullitope[T]{})
	case "point":
		c.push(name.Point[T]{})
	case "dyad":
		c.push(name.Dyad[T]{})
	case "triangle":
		c.push(name.Triangle[T]{})
	case "square":
		c.push(name.Square[T]{})
	case "rectangle":
		c.push(name.NewRectangle[T]())
	case "orthodiagonal":
		c.push(name.NewOrthodiagonal[T]())
	case "polygon":
		n, err := intArg(args, 0)
		if err != nil {
			return err
		}
		c.push(name.NewPolygon(name.Irregular[T](), n))
	case "simplex", "hyperblock", "orthoplex":
		r, err := intArg(args, 0)
		if err != nil {
			return err
		}
		switch cmd {
		case "simplex":
			c.push(name.NewSimplex(name.Irregular[T](), name.Rank(r)))
		case "hyperblock":
			c.push(name.NewHyperblock(name.Irregular[T](), name.Rank(r)))
		default:
			c.push(name.NewOrthoplex(name.Irregular[T](), name.Rank(r)))
		}
	case "generic":
		f, err := intArg(args, 0)
		if err != nil {
			return err
		}
		r, err := intArg(args, 1)
		if err != nil {
			return err
		}
		c.push(name.NewGeneric[T](f, name.Rank(r)))
	case "load":
		if len(args) != 1 {
			return errors.New("load needs a path")
		}
		n, ok := name.FromOFF[T](args[0])
		if !ok {
			return fmt.Errorf("no name in %s", args[0])
		}
		c.push(n)

	// Unary operations.
	case "pyramid", "prism", "tegum", "antiprism", "petrial", "small", "great", "stellated":
		n, err := c.pop()
		if err != nil {
			return err
		}
		switch cmd {
		case "pyramid":
			c.push(name.NewPyramid(n))
		case "prism":
			c.push(name.NewPrism(n))
		case "tegum":
			c.push(name.NewTegum(n))
		case "antiprism":
			c.push(name.NewAntiprism(n))
		case "petrial":
			c.push(name.NewPetrial(n))
		case "small":
			c.push(name.NewSmall(n))
		case "great":
			c.push(name.NewGreat(n))
		default:
			c.push(name.NewStellated(n))
		}

	case "dual":
		f, err := intArg(args, 0)
		if err != nil {
			return err
		}
		r, err := intArg(args, 1)
		if err != nil {
			return err
		}
		center := make(geom.Point, 0, len(args)-2)
		for _, a := range args[2:] {
			x, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return fmt.Errorf("bad coordinate %q", a)
			}
			center = append(center, x)
		}
		n, err := c.pop()
		if err != nil {
			return err
		}
		c.push(name.NewDual(n, name.NewData[T](center), f, name.Rank(r)))

	// Multi-operations.
	case "multipyramid", "multiprism", "multitegum", "multicomb":
		k, err := intArg(args, 0)
		if err != nil {
			return err
		}
		if k > len(c.stack) {
			return fmt.Errorf("stack has only %d names", len(c.stack))
		}
		bases := make([]name.Name[T], k)
		for i := k - 1; i >= 0; i-- {
			bases[i], _ = c.pop()
		}
		switch cmd {
		case "multipyramid":
			c.push(name.NewMultipyramid(bases))
		case "multiprism":
			c.push(name.NewMultiprism(bases))
		case "multitegum":
			c.push(name.NewMultitegum(bases))
		default:
			c.push(name.NewMulticomb(bases))
		}

	// Stack management.
	case "show":
	case "valid":
		if len(c.stack) == 0 {
			return errors.New("stack is empty")
		}
		fmt.Println(name.IsValid(c.stack[len(c.stack)-1]))
	case "dup":
		if len(c.stack) == 0 {
			return errors.New("stack is empty")
		}
		c.push(c.stack[len(c.stack)-1])
	case "pop":
		if _, err := c.pop(); err != nil {
			return err
		}
	case "clear":
		c.stack = nil
	case "help":
		fmt.Println(helpText)
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}

	return nil
}

// intArg parses the i-th argument as a non-negative-friendly int.
func intArg(args []string, i int) (int, error) {
	if i >= len(args) {
		return 0, errors.New("missing argument")
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("bad number %q", args[i])
	}

	return n, nil
}
