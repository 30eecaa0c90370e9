package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/amp-labs/stepsort/envutil"
	"golang.org/x/term"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	dividerLeft    = "┠"
	dividerMiddle  = "─"
	dividerRight   = "┨"
	ellipsis       = "…"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

const (
	DefaultTerminalWidth = 80

	bannerPadding = 2
)

// Interactive reports whether stdin is attached to a terminal.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) //nolint:gosec
}

// TerminalWidth returns the width of the terminal on stdout, or
// DefaultTerminalWidth when stdout is not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd()) //nolint:gosec
	if !term.IsTerminal(fd) {
		return DefaultTerminalWidth
	}

	w, _, err := term.GetSize(fd)
	if err != nil || w <= bannerPadding {
		return DefaultTerminalWidth
	}

	return w
}

// DividerAutoWidth is a Divider as wide as the terminal.
func DividerAutoWidth() string {
	return Divider(TerminalWidth())
}

// BannerAutoWidth is a Banner as wide as the terminal. Setting SORT_NO_BANNER
// prints the bare text instead.
func BannerAutoWidth(ctx context.Context, s string, a Alignment) string {
	if envutil.Bool(ctx, "SORT_NO_BANNER", envutil.Default(false)).ValueOrElse(false) {
		return s + "\n"
	}

	return Banner(s, TerminalWidth(), a)
}

func Divider(width int) string {
	return fmt.Sprintf("%s%s%s\n", dividerLeft, strings.Repeat(dividerMiddle, max(width-bannerPadding, 0)), dividerRight)
}

// Banner draws s inside a box width columns wide, one row per line of s.
// Lines that don't fit are cut and end in an ellipsis.
func Banner(s string, width int, alignment Alignment) string {
	if width <= bannerPadding || len(s) == 0 {
		return ""
	}

	inner := width - bannerPadding
	parts := []string{boxTopLeft + strings.Repeat(boxTop, inner) + boxTopRight}

	for _, l := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		line, ok := pad(l, inner, alignment)
		if !ok {
			return ""
		}

		parts = append(parts, boxSide+line+boxSide)
	}

	parts = append(parts, boxBottomLeft+strings.Repeat(boxBottom, inner)+boxBottomRight)

	return strings.Join(parts, "\n")
}

func pad(text string, width int, alignment Alignment) (string, bool) {
	length := countGraphic(text)
	if length > width {
		text, length = truncateGraphic(text, width-1)
		text += ellipsis
		length++
	}

	diff := max(width-length, 0)

	switch alignment {
	case AlignLeft:
		return text + strings.Repeat(" ", diff), true
	case AlignRight:
		return strings.Repeat(" ", diff) + text, true
	case AlignCenter:
		left := diff / 2 //nolint:mnd

		return strings.Repeat(" ", left) + text + strings.Repeat(" ", diff-left), true
	default:
		return "", false
	}
}

func countGraphic(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}
	}

	return count
}

// truncateGraphic keeps the first n graphic runes of s.
func truncateGraphic(s string, n int) (string, int) {
	var sb strings.Builder

	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			if count == n {
				break
			}

			count++
		}

		sb.WriteRune(r)
	}

	return sb.String(), count
}
