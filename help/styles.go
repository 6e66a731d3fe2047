package help

import (
	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/draglist"
)

// Styles groups the styles applied to the parts of a rendered help line.
type Styles struct {
	ShortKeyStyle       tcell.Style
	ShortDescStyle      tcell.Style
	ShortSeparatorStyle tcell.Style

	FullKeyStyle       tcell.Style
	FullDescStyle      tcell.Style
	FullSeparatorStyle tcell.Style

	EllipsisStyle tcell.Style
}

// DefaultStyles derives help styles from the draglist theme. Keys take the
// secondary text color while descriptions and separators render dim.
func DefaultStyles() Styles {
	key := tcell.StyleDefault.Foreground(draglist.Styles.SecondaryTextColor)
	desc := tcell.StyleDefault.Foreground(draglist.Styles.PrimaryTextColor).Dim(true)
	quiet := tcell.StyleDefault.Dim(true)
	return Styles{
		ShortKeyStyle:       key,
		ShortDescStyle:      desc,
		ShortSeparatorStyle: quiet,
		FullKeyStyle:        key,
		FullDescStyle:       desc,
		FullSeparatorStyle:  quiet,
		EllipsisStyle:       quiet,
	}
}
