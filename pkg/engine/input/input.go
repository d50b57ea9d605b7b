package input

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Key codes produced by the terminal decoder for non-printable keys
const (
	KeyArrowUp    = "arrow_up"
	KeyArrowDown  = "arrow_down"
	KeyArrowLeft  = "arrow_left"
	KeyArrowRight = "arrow_right"
	KeyTab        = "tab"
	KeyShiftTab   = "shift_tab"
	KeyEnter      = "enter"
	KeySpace      = "space"
	KeyEscape     = "escape"
	KeyBackspace  = "backspace"
	KeyCtrlC      = "ctrl_c"
)

// KeyReader decodes raw-mode terminal bytes into key codes
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader wraps a terminal (or any byte stream) in a key decoder
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey blocks until one key press has been decoded.
// Unknown escape sequences are discarded and reading continues.
func (k *KeyReader) ReadKey() (string, error) {
	for {
		b, err := k.r.ReadByte()
		if err != nil {
			return "", err
		}

		switch {
		case b == 0x1b:
			code, err := k.readEscape()
			if err != nil {
				return "", err
			}
			if code != "" {
				return code, nil
			}
		case b == 3:
			return KeyCtrlC, nil
		case b == '\t':
			return KeyTab, nil
		case b == '\r' || b == '\n':
			return KeyEnter, nil
		case b == ' ':
			return KeySpace, nil
		case b == 127 || b == 8:
			return KeyBackspace, nil
		case b >= 'A' && b <= 'Z':
			return string(rune(b + 'a' - 'A')), nil
		case b > 32 && b < 127:
			return string(rune(b)), nil
		}
	}
}

// readEscape decodes what follows an ESC byte. A lone ESC (nothing else
// already buffered) is the Escape key; terminals send sequences in one write.
func (k *KeyReader) readEscape() (string, error) {
	if k.r.Buffered() == 0 {
		return KeyEscape, nil
	}

	b2, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		// Alt+key: ignore the modifier
		return "", nil
	}

	b3, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}

	switch b3 {
	case 'A':
		return KeyArrowUp, nil
	case 'B':
		return KeyArrowDown, nil
	case 'C':
		return KeyArrowRight, nil
	case 'D':
		return KeyArrowLeft, nil
	case 'Z':
		return KeyShiftTab, nil
	}

	// Unknown sequence - swallow any parameter bytes up to the final byte
	for b3 >= '0' && b3 <= '?' {
		if b3, err = k.r.ReadByte(); err != nil {
			return "", err
		}
	}
	return "", nil
}

// MakeRaw puts the terminal on f into raw mode and returns a function
// restoring the previous mode.
func MakeRaw(f *os.File) (restore func() error, err error) {
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("set terminal raw mode: %w", err)
	}
	return func() error {
		return term.Restore(fd, oldState)
	}, nil
}
