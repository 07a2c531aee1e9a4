package executor

import (
	"fmt"
	"strings"
)

// HelpText lists the kinds of commands the executor understands.
const HelpText = `Style commands change the theme in plain language.

Colors
  make the background blue
  primary should be purple
  change the buttons to #3366ff
  darker sidebar / more saturated primary / less contrast

Shape and spacing
  more rounded / sharper corners
  spacing large / tighter spacing
  bigger text / font size sm

Mode
  dark mode / light mode / toggle mode

Styles
  make it pop / minimal / playful / corporate / elegant

With a component selected, "make this red" or "this card darker" applies to
that component's color.`

var exampleCommands = []string{
	"make the background blue",
	"dark mode",
	"more rounded",
	"make it pop",
}

func isHelp(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "help", "?":
		return true
	}
	return false
}

func unparseableMessage(text string) string {
	var b strings.Builder
	if strings.TrimSpace(text) == "" {
		b.WriteString("Type a style command. ")
	} else {
		fmt.Fprintf(&b, "I didn't understand %q. ", text)
	}
	b.WriteString("Try something like ")
	for i, ex := range exampleCommands {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", ex)
	}
	b.WriteString(`, or type "help".`)
	return b.String()
}
