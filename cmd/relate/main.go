package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZhengLongBing/relate"
	"github.com/sirupsen/logrus"
	"github.com/tdewolff/argp"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"
)

type MatrixOptions struct {
	Format     string   `short:"f" default:"wkt" desc:"Geometry format: wkt or geojson"`
	Pattern    string   `short:"p" desc:"DE-9IM pattern to test the matrix against"`
	Geometries []string `index:"*" desc:"The two geometries to relate"`
}

func (o *MatrixOptions) Run() error {
	return matrix(o.Geometries)
}

type PredOptions struct {
	Format     string   `short:"f" default:"wkt" desc:"Geometry format: wkt or geojson"`
	Geometries []string `index:"*" desc:"The two geometries to relate"`
}

func (o *PredOptions) Run() error {
	return pred(o.Geometries)
}

var (
	matrixOptions MatrixOptions
	predOptions   PredOptions
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	root := argp.New("DE-9IM topological relations between planar geometries")
	root.AddCmd(&matrixOptions, "matrix", "Print the DE-9IM intersection matrix of two geometries")
	root.AddCmd(&predOptions, "pred", "Evaluate the topological predicates of two geometries")

	root.Parse()
	root.PrintHelp()
}

func matrix(args []string) error {
	a, b, err := readGeometryPair(matrixOptions.Format, args)
	if err != nil {
		return err
	}

	im := relate.Relate(a, b)
	if matrixOptions.Pattern != "" {
		ok, err := im.Matches(matrixOptions.Pattern)
		if err != nil {
			return err
		}
		fmt.Println(ok)
		return nil
	}
	fmt.Println(im)
	return nil
}

func pred(args []string) error {
	a, b, err := readGeometryPair(predOptions.Format, args)
	if err != nil {
		return err
	}

	im := relate.Relate(a, b)
	fmt.Println("matrix     ", im)
	fmt.Println("intersects ", im.IsIntersects())
	fmt.Println("disjoint   ", im.IsDisjoint())
	fmt.Println("within     ", im.IsWithin())
	fmt.Println("contains   ", im.IsContains())
	fmt.Println("equals     ", im.IsEqualTopo())
	fmt.Println("coveredby  ", im.IsCoveredBy())
	fmt.Println("covers     ", im.IsCovers())
	fmt.Println("touches    ", im.IsTouches())
	fmt.Println("crosses    ", im.IsCrosses())
	fmt.Println("overlaps   ", im.IsOverlaps())
	return nil
}

func readGeometryPair(format string, args []string) (geom.T, geom.T, error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("must pass two geometries")
	}
	a, err := readGeometry(format, args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := readGeometry(format, args[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// readGeometry parses a geometry from an argument, or from a file when the
// argument starts with @.
func readGeometry(format, arg string) (geom.T, error) {
	if strings.HasPrefix(arg, "@") {
		b, err := os.ReadFile(arg[1:])
		if err != nil {
			return nil, err
		}
		arg = string(b)
	}
	switch format {
	case "wkt":
		return wkt.Unmarshal(arg)
	case "geojson":
		var g geom.T
		if err := geojson.Unmarshal([]byte(arg), &g); err != nil {
			return nil, err
		}
		return g, nil
	}
	return nil, fmt.Errorf("unknown geometry format %q", format)
}
