// Package day7 solves the beam-splitter puzzle.
package day7

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/aoc-2025/internal/beams"
	"golang.org/x/sync/errgroup"
)

const Day = 7

type Answers struct {
	Part1, Part2 string
}

func (a Answers) Fields() logrus.Fields {
	return map[string]any{
		"part1": a.Part1,
		"part2": a.Part2,
	}
}

// Part1 counts the splits of a single beam dropped through the manifold.
func Part1(input string) (string, error) {
	grid, err := beams.Parse(input)
	if err != nil {
		return "", err
	}
	splits, err := grid.Drop()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(splits), nil
}

// Part2 counts the paths a beam can take through the manifold.
func Part2(input string) (string, error) {
	grid, err := beams.Parse(input)
	if err != nil {
		return "", err
	}
	paths, err := beams.CountPaths(grid)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(paths), nil
}

// Solve runs both parts. Each part parses its own grid.
func Solve(ctx context.Context, input string) (Answers, error) {
	var (
		answers Answers
		g       errgroup.Group
	)
	g.Go(func() (err error) {
		answers.Part1, err = Part1(input)
		return err
	})
	g.Go(func() (err error) {
		answers.Part2, err = Part2(input)
		return err
	})
	if err := g.Wait(); err != nil {
		return Answers{}, err
	}
	if err := ctx.Err(); err != nil {
		return Answers{}, err
	}
	return answers, nil
}
