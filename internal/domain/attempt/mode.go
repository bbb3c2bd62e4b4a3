package attempt

import (
	"encoding"
	"errors"
	"fmt"
)

// Mode is the selection policy a question was answered under.
type Mode string

const (
	ModeDaily    Mode = "daily"
	ModeMixed    Mode = "mixed"
	ModeCategory Mode = "category"
)

var ErrInvalidMode = errors.New("attempt: invalid mode")

var (
	_ encoding.TextMarshaler   = Mode("")
	_ encoding.TextUnmarshaler = (*Mode)(nil)
)

func (m Mode) Valid() bool {
	switch m {
	case ModeDaily, ModeMixed, ModeCategory:
		return true
	}
	return false
}

func (m Mode) String() string { return string(m) }

func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, string(m))
	}
	return []byte(m), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
