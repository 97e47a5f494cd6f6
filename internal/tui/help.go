// SPDX-License-Identifier: MIT

package tui

import "github.com/charmbracelet/glamour"

const helpMarkdown = `# transgrid

Type a size **N** (2-10) and press **Enter** to draw an N×N grid of random
numbers. Press **t** (or **ctrl+t** while typing) to transpose it; every
swapped pair of cells is highlighted as it moves.

| Key | Action |
|-----|--------|
| enter | generate the grid |
| t / ctrl+t | transpose |
| tab | focus / release the size field |
| ? | toggle this help |
| q / ctrl+c | quit |
`

// renderHelp renders the help page wrapped at width; on renderer failure the
// raw markdown is shown instead.
func renderHelp(width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}
