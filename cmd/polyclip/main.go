// Command polyclip is a thin CLI wrapper over the polyclip package: it parses two inline point
// lists, runs one Boolean operation over them, and prints the resulting multi-polygon as JSON.
//
// Grounded on the source module's cmd/genlinesegments, which builds the same kind of
// single-action urfave/cli/v3 command with flag-driven geometry input and a JSON-on-stdout
// result.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cartforge/polyclip"
	"github.com/cartforge/polyclip/point"
	"github.com/cartforge/polyclip/polygon"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "polyclip",
		Usage:     "Computes a Boolean set operation between two single-ring polygons",
		UsageText: `polyclip --op union --subject "0,0 1,0 1,1 0,1" --clipping "1,0 2,0 2,1 1,1"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "op",
				Usage:    "one of: union, intersection, difference, xor",
				OnlyOnce: true,
				Required: true,
			},
			&cli.StringFlag{
				Name:     "subject",
				Usage:    `subject ring vertices as "x,y x,y x,y ..."`,
				OnlyOnce: true,
				Required: true,
			},
			&cli.StringFlag{
				Name:     "clipping",
				Usage:    `clipping ring vertices as "x,y x,y x,y ..."`,
				OnlyOnce: true,
				Required: true,
			},
		},
		HideVersion: true,
		Action:      run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	op, err := parseOperation(cmd.String("op"))
	if err != nil {
		return err
	}
	subjectRing, err := parseRing(cmd.String("subject"))
	if err != nil {
		return fmt.Errorf("subject: %w", err)
	}
	clippingRing, err := parseRing(cmd.String("clipping"))
	if err != nil {
		return fmt.Errorf("clipping: %w", err)
	}

	result, err := polyclip.Run(
		polygon.MultiPolygon{polygon.New(subjectRing)},
		polygon.MultiPolygon{polygon.New(clippingRing)},
		op,
	)
	if err != nil {
		return err
	}

	b, err := json.Marshal(result)
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func parseOperation(s string) (polyclip.Operation, error) {
	switch strings.ToLower(s) {
	case "union":
		return polyclip.Union, nil
	case "intersection":
		return polyclip.Intersection, nil
	case "difference":
		return polyclip.Difference, nil
	case "xor":
		return polyclip.Xor, nil
	default:
		return 0, fmt.Errorf("unknown operation %q (want union, intersection, difference, or xor)", s)
	}
}

func parseRing(s string) (polygon.Ring, error) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return nil, fmt.Errorf("need at least 3 vertices, got %d", len(fields))
	}
	ring := make(polygon.Ring, len(fields))
	for i, f := range fields {
		xy := strings.Split(f, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("vertex %d: expected \"x,y\", got %q", i, f)
		}
		x, err := strconv.ParseFloat(xy[0], 64)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		y, err := strconv.ParseFloat(xy[1], 64)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		ring[i] = point.New(x, y)
	}
	return ring, nil
}
