package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/ndmines/internal/mines"
	"github.com/vancomm/ndmines/internal/ndarray"
)

type options struct {
	shape string
	bombs string
	xray  bool
	dump  bool
}

func parseInts(s string) ([]int, error) {
	var ints []int
	for i, p := range fields(s, ",") {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("component %d of %q must be an int", i, s)
		}
		ints = append(ints, v)
	}
	return ints, nil
}

func parseShape(s string) (ndarray.Shape, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("shape is required")
	}
	ints, err := parseInts(s)
	if err != nil {
		return nil, err
	}
	shape := ndarray.Shape(ints)
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}

func parseCoord(s string) (ndarray.Coord, error) {
	ints, err := parseInts(s)
	if err != nil {
		return nil, err
	}
	return ndarray.Coord(ints), nil
}

// parseCoords reads coordinates separated by semicolons, e.g. "0,0;1,0".
func parseCoords(s string) ([]ndarray.Coord, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var cs []ndarray.Coord
	for _, p := range fields(s, ";") {
		if p == "" {
			continue
		}
		c, err := parseCoord(p)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}

// run builds the game described by opts, digs every coordinate in moves in
// order and prints the board.
func run(opts options, moves []string, w io.Writer) error {
	shape, err := parseShape(opts.shape)
	if err != nil {
		return fmt.Errorf("invalid shape: %w", err)
	}
	bombs, err := parseCoords(opts.bombs)
	if err != nil {
		return fmt.Errorf("invalid bombs: %w", err)
	}
	g, err := mines.Build(shape, bombs)
	if err != nil {
		return err
	}

	for _, m := range moves {
		c, err := parseCoord(m)
		if err != nil {
			return fmt.Errorf("invalid move: %w", err)
		}
		if err := g.Validate(c); err != nil {
			return fmt.Errorf("invalid move %q: %w", m, err)
		}
		revealed := g.Dig(c)
		log.WithFields(logrus.Fields{
			"coord":    c,
			"revealed": revealed,
			"status":   g.Status(),
		}).Info("dig")
	}

	if _, err := fmt.Fprintln(w, g.RenderText(opts.xray)); err != nil {
		return err
	}
	if opts.dump {
		return mines.Dump(w, g)
	}
	return nil
}
