package formatter

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// StyleWithoutGraphics defines a style without box drawing characters:
//
//	TEMPLATE     DESCRIPTION                       STATUS
//	cpp-linux    C++ addon for Linux platforms     ok
//	swift        Swift addon for macOS             missing
var StyleWithoutGraphics = table.BoxStyle{
	BottomLeft:       " ",
	BottomRight:      " ",
	BottomSeparator:  " ",
	EmptySeparator:   text.RepeatAndTrim(" ", text.RuneWidthWithoutEscSequences(" ")),
	Left:             " ",
	LeftSeparator:    " ",
	MiddleHorizontal: " ",
	MiddleSeparator:  " ",
	MiddleVertical:   " ",
	PaddingLeft:      "",
	PaddingRight:     "  ",
	PageSeparator:    "\n",
	Right:            " ",
	RightSeparator:   " ",
	TopLeft:          " ",
	TopRight:         " ",
	TopSeparator:     " ",
	UnfinishedRow:    "  ",
}
