package core

import "fmt"

// IntToStringFixedWidth converts an integer to a string of a specified width,
// left-padding with spaces if the number string is shorter than the width.
func IntToStringFixedWidth(num int, width int) string {
	return fmt.Sprintf("%*d", width, num)
}

// ParseCell converts a single mark character to a Cell. '.', ' ' and '-' are empty.
func ParseCell(r rune) (Cell, error) {
	switch r {
	case 'X', 'x':
		return X, nil
	case 'O', 'o':
		return O, nil
	case '.', ' ', '-':
		return Empty, nil
	default:
		return Empty, fmt.Errorf("unknown cell %q: %w", r, ErrInvalidArgument)
	}
}
