package shell

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// CommandDoc describes one command for the help listing.
type CommandDoc struct {
	Name        string
	Usage       string
	Description string
}

var commandDocs = []CommandDoc{
	{Name: "size", Usage: "size <n> [persist]", Description: "sets the number of slots; persist keeps existing blocks"},
	{Name: "add", Usage: "add <key>", Description: "adds a block to the specified slot"},
	{Name: "mv", Usage: "mv <from> <to>", Description: "moves a block from one slot to another"},
	{Name: "rm", Usage: "rm <key>", Description: "removes a block from the specified slot"},
	{Name: "replay", Usage: "replay <n>", Description: "replays the last n commands"},
	{Name: "undo", Usage: "undo <n>", Description: "undoes the last n commands"},
	{Name: "help", Usage: "help", Description: "shows this list"},
	{Name: "exit", Usage: "exit", Description: "exits the game"},
}

// Commands returns the documented commands in display order.
func Commands() []CommandDoc {
	out := make([]CommandDoc, len(commandDocs))
	copy(out, commandDocs)
	return out
}

// Common words people type for the commands above.
var aliases = map[string]string{
	"move":   "mv",
	"remove": "rm",
	"delete": "rm",
	"resize": "size",
	"redo":   "replay",
	"udno":   "undo",
	"quit":   "exit",
}

// Suggest returns command names for "did you mean" hints, best first.
// Names containing the input's letters in order win; failing that, names
// whose letters appear in order inside the input ("addd", "mvoe").
func Suggest(input string) []string {
	word := strings.ToLower(strings.TrimSpace(input))
	if word == "" {
		return nil
	}
	if name, ok := aliases[word]; ok {
		return []string{name}
	}

	names := make([]string, len(commandDocs))
	for i, doc := range commandDocs {
		names[i] = doc.Name
	}

	var matches []string
	for _, m := range fuzzy.Find(word, names) {
		matches = append(matches, m.Str)
	}
	if len(matches) > 0 {
		return matches
	}
	for _, name := range names {
		if len(fuzzy.Find(name, []string{word})) > 0 {
			matches = append(matches, name)
		}
	}
	return matches
}
