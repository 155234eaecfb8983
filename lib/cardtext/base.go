package cardtext

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMalformedBaseLine = errors.New("malformed base line")
	ErrBreakpoint        = errors.New("invalid breakpoint")
	ErrVictoryPoints     = errors.New("invalid victory points")
)

type Base struct {
	Name          string
	Breakpoint    int
	VictoryPoints [3]int
	Description   string
}

func NewBase(name string, breakpoint int, vps [3]int, description string) (Base, error) {
	if strings.TrimSpace(name) == "" {
		return Base{}, ErrMissingName
	}
	if breakpoint < 1 {
		return Base{}, fmt.Errorf("%w: breakpoint %d is below 1", ErrBreakpoint, breakpoint)
	}
	for _, vp := range vps {
		if vp < 0 {
			return Base{}, fmt.Errorf("%w: %d is negative", ErrVictoryPoints, vp)
		}
	}
	return Base{
		Name:          name,
		Breakpoint:    breakpoint,
		VictoryPoints: vps,
		Description:   description,
	}, nil
}

// ParseBase extracts a base record from one listing line of the form
// "<name> - breakpoint <n> - VPs: <a> <b> <c> - <description>".
// The first failing segment wins, later segments are not inspected.
func ParseBase(line string) (Base, error) {
	segments := strings.Split(line, " - ")
	if len(segments) < 4 {
		return Base{}, fmt.Errorf("%w: expected 4 segments, got %d", ErrMalformedBaseLine, len(segments))
	}

	name := strings.TrimSpace(segments[0])

	rawBreakpoint := strings.TrimSpace(strings.TrimPrefix(segments[1], "breakpoint "))
	breakpoint, err := strconv.Atoi(rawBreakpoint)
	if err != nil {
		return Base{}, fmt.Errorf("%w: %q is not a number", ErrBreakpoint, rawBreakpoint)
	}

	tokens := strings.Fields(strings.TrimPrefix(segments[2], "VPs: "))
	if len(tokens) < 3 {
		return Base{}, fmt.Errorf("%w: expected 3 values, got %d", ErrVictoryPoints, len(tokens))
	}
	var vps [3]int
	for i := 0; i < 3; i++ {
		vps[i], err = strconv.Atoi(tokens[i])
		if err != nil {
			return Base{}, fmt.Errorf("%w: %q is not a number", ErrVictoryPoints, tokens[i])
		}
	}

	description := strings.TrimSpace(strings.ReplaceAll(segments[3], "FAQ", ""))
	return NewBase(name, breakpoint, vps, description)
}
