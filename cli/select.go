package cli

import (
	"os"
	"strings"

	"facette.io/natsort"
	"github.com/amp-labs/stepsort/stepsort"
	"github.com/manifoldco/promptui"
)

// SelectKind shows a menu of sort engines and returns the chosen one.
// Typing a name prefix (or its first letter) narrows the list.
func SelectKind(label string) (stepsort.Kind, error) {
	if !Interactive() {
		return 0, ErrNotInteractive
	}

	names := kindChoices()

	sel := &promptui.Select{
		Label:    label,
		Items:    names,
		Searcher: prefixSearcher(names),
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}

	_, value, err := sel.Run()
	if err != nil {
		return 0, err
	}

	return stepsort.ParseKind(value)
}

// kindChoices returns the engine names in natural order.
func kindChoices() []string {
	kinds := stepsort.Kinds()
	names := make([]string, 0, len(kinds))

	for _, k := range kinds {
		names = append(names, k.String())
	}

	natsort.Sort(names)

	return names
}

func prefixSearcher(names []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		input = strings.ToLower(strings.TrimSpace(input))
		if len(input) == 0 {
			return false
		}

		return strings.HasPrefix(names[index], input)
	}
}
