package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// ErrNotInteractive is returned by prompts when stdin is not a terminal.
var ErrNotInteractive = errors.New("stdin is not a terminal")

func PromptConfirm(label string) (bool, error) {
	if !Interactive() {
		return false, ErrNotInteractive
	}

	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
	}

	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// PromptInt asks for an integer in [lo, hi]. An empty answer picks def.
func PromptInt(label string, lo, hi, def int) (int, error) {
	if !Interactive() {
		return 0, ErrNotInteractive
	}

	prompt := promptui.Prompt{
		Label:    label,
		Default:  strconv.Itoa(def),
		Validate: intBetween(lo, hi),
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}

	txt, err := prompt.Run()
	if err != nil {
		return 0, err
	}

	return parseIntBetween(txt, lo, hi)
}

func intBetween(lo, hi int) promptui.ValidateFunc {
	return func(s string) error {
		_, err := parseIntBetween(s, lo, hi)

		return err
	}
}

func parseIntBetween(s string, lo, hi int) (int, error) {
	val, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %w", err)
	}

	if int(val) < lo || int(val) > hi {
		return 0, fmt.Errorf("%d is not between %d and %d", val, lo, hi)
	}

	return int(val), nil
}
