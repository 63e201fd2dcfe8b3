package grid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection is returned by ParseDirection for unrecognised names.
var ErrUnknownDirection = errors.New("unknown direction")

// Direction — куда визуально едет сетка
type Direction int

const (
	Right Direction = iota
	Left
	Up
	Down
	Diagonal
)

var directionNames = [...]string{
	Right:    "right",
	Left:     "left",
	Up:       "up",
	Down:     "down",
	Diagonal: "diagonal",
}

func (d Direction) Valid() bool {
	return d >= Right && d <= Diagonal
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection принимает имена из конфига без учёта регистра
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d, name := range directionNames {
		if name == s {
			return Direction(d), nil
		}
	}
	return Right, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// MarshalText and UnmarshalText let Direction appear by name in JSON and
// YAML config files.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, int(d))
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
