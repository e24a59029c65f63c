package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/argp"

	"github.com/vecedit/pathlang"
)

type Format struct {
	Minify    bool   `short:"m" desc:"Minify the output"`
	Precision int    `short:"p" default:"0" desc:"Number of significant digits for minified output, 0 is full precision"`
	Quiet     bool   `short:"q" desc:"Suppress parse diagnostics"`
	Input     string `index:"0" desc:"Path data (reads stdin when omitted)"`
}

type Translate struct {
	X     float64 `short:"x" default:"0" desc:"Horizontal offset"`
	Y     float64 `short:"y" default:"0" desc:"Vertical offset"`
	Input string  `index:"0" desc:"Path data (reads stdin when omitted)"`
}

type Scale struct {
	X       float64 `short:"x" default:"1" desc:"Horizontal scale factor"`
	Y       float64 `short:"y" default:"1" desc:"Vertical scale factor"`
	OriginX float64 `default:"0" desc:"Scale origin X"`
	OriginY float64 `default:"0" desc:"Scale origin Y"`
	Input   string  `index:"0" desc:"Path data (reads stdin when omitted)"`
}

type Rotate struct {
	Angle   float64 `short:"a" default:"0" desc:"Rotation in degrees counter clockwise"`
	OriginX float64 `default:"0" desc:"Rotation origin X"`
	OriginY float64 `default:"0" desc:"Rotation origin Y"`
	Input   string  `index:"0" desc:"Path data (reads stdin when omitted)"`
}

type Simplify struct {
	Tolerance float64 `short:"t" default:"0" desc:"Maximum distance between pruned line points"`
	Input     string  `index:"0" desc:"Path data (reads stdin when omitted)"`
}

type Bounds struct {
	Input string `index:"0" desc:"Path data (reads stdin when omitted)"`
}

func main() {
	root := argp.NewCmd(&Format{}, "SVG path data formatter and transformer")
	root.AddCmd(&Translate{}, "translate", "Translate path coordinates")
	root.AddCmd(&Scale{}, "scale", "Scale path about an origin")
	root.AddCmd(&Rotate{}, "rotate", "Rotate path about an origin")
	root.AddCmd(&Simplify{}, "simplify", "Prune line points within tolerance")
	root.AddCmd(&Bounds{}, "bounds", "Print the bounding box")
	root.Parse()
	root.PrintHelp()
}

func parsePath(input string, quiet bool) (*pathlang.Path, error) {
	if input == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		input = strings.TrimSpace(string(b))
	}
	p, diags, err := pathlang.Parser{}.Parse(input)
	if !quiet {
		for _, d := range diags {
			fmt.Fprintln(os.Stderr, "warning:", d)
		}
	}
	return p, err
}

func (cmd *Format) Run() error {
	if cmd.Precision < 0 {
		return argp.ShowUsage
	}
	p, err := parsePath(cmd.Input, cmd.Quiet)
	if err != nil {
		return err
	}
	if cmd.Minify {
		fmt.Println(p.MinifyString(cmd.Precision))
	} else {
		fmt.Println(p.String())
	}
	return nil
}

func (cmd *Translate) Run() error {
	p, err := parsePath(cmd.Input, false)
	if err != nil {
		return err
	}
	fmt.Println(p.Translate(cmd.X, cmd.Y))
	return nil
}

func (cmd *Scale) Run() error {
	p, err := parsePath(cmd.Input, false)
	if err != nil {
		return err
	}
	fmt.Println(p.Scale(cmd.X, cmd.Y, cmd.OriginX, cmd.OriginY))
	return nil
}

func (cmd *Rotate) Run() error {
	p, err := parsePath(cmd.Input, false)
	if err != nil {
		return err
	}
	fmt.Println(p.Rotate(cmd.Angle, cmd.OriginX, cmd.OriginY))
	return nil
}

func (cmd *Simplify) Run() error {
	if cmd.Tolerance < 0 {
		return argp.ShowUsage
	}
	p, err := parsePath(cmd.Input, false)
	if err != nil {
		return err
	}
	fmt.Println(p.Simplify(cmd.Tolerance))
	return nil
}

func (cmd *Bounds) Run() error {
	p, err := parsePath(cmd.Input, false)
	if err != nil {
		return err
	}
	r := p.Bounds()
	fmt.Printf("x=%g y=%g w=%g h=%g\n", r.X, r.Y, r.W, r.H)
	return nil
}
