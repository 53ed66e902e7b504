package menu

import "fmt"

var fileMenu = []Descriptor{
	{Title: "&Open...\tCtrl+O", ID: IDOpen, Flags: FlagNeedsDisk},
	{Title: "&Close\tQ", ID: IDClose},
	{Title: "Save &As...", ID: IDSaveAs, Flags: FlagNeedsDisk},
	{Title: "&Print...", ID: IDPrint, Flags: FlagNeedsPrinter},
	{Title: Separator},
	{Title: "Copy &Path", ID: IDCopyPath, Flags: FlagNeedsClipboard},
	{Title: "P&roperties", ID: IDProperties},
	{Title: Separator},
	{Title: "E&xit\tCtrl+C", ID: IDExit},
}

var ebookFileMenu = []Descriptor{
	{Title: "&Open...\tCtrl+O", ID: IDOpen, Flags: FlagNeedsDisk},
	{Title: "&Close\tQ", ID: IDClose},
	{Title: Separator},
	{Title: "Copy &Path", ID: IDCopyPath, Flags: FlagNeedsClipboard},
	{Title: "P&roperties", ID: IDProperties},
	{Title: Separator},
	{Title: "E&xit\tCtrl+C", ID: IDExit},
}

var viewMenu = []Descriptor{
	{Title: "&Single Page\t6", ID: IDViewSinglePage},
	{Title: "&Facing\t7", ID: IDViewFacing},
	{Title: "&Book View\t8", ID: IDViewBook},
	{Title: "Show Pages &Continuously\tC", ID: IDViewContinuous},
	{Title: Separator},
	{Title: "F&ullscreen\tF", ID: IDViewFullscreen},
	{Title: "Book&marks\tB", ID: IDViewBookmarks},
	{Title: "Show &Toolbar\tT", ID: IDViewToolbar},
	{Title: Separator},
	{Title: "Select &All\tCtrl+A", ID: IDSelectAll},
	{Title: "Cop&y Selection\tY", ID: IDCopySelection, Flags: FlagNeedsClipboard},
}

var ebookViewMenu = []Descriptor{
	{Title: "&Single Page\t6", ID: IDViewSinglePage},
	{Title: "&Facing\t7", ID: IDViewFacing},
	{Title: Separator},
	{Title: "F&ullscreen\tF", ID: IDViewFullscreen},
	{Title: "Show &Toolbar\tT", ID: IDViewToolbar},
	{Title: Separator},
	{Title: "Select &All\tCtrl+A", ID: IDSelectAll},
	{Title: "Cop&y Selection\tY", ID: IDCopySelection, Flags: FlagNeedsClipboard},
}

var gotoMenu = []Descriptor{
	{Title: "&Next Page\tN", ID: IDGotoNextPage},
	{Title: "&Previous Page\tP", ID: IDGotoPrevPage},
	{Title: "&First Page\tHome", ID: IDGotoFirstPage},
	{Title: "&Last Page\tEnd", ID: IDGotoLastPage},
	{Title: "Pa&ge...\tCtrl+G", ID: IDGotoPage},
	{Title: Separator},
	{Title: "&Back\t[", ID: IDGotoBack},
	{Title: "F&orward\t]", ID: IDGotoForward},
}

var ebookGotoMenu = []Descriptor{
	{Title: "&Next Page\tN", ID: IDGotoNextPage},
	{Title: "&Previous Page\tP", ID: IDGotoPrevPage},
	{Title: Separator},
	{Title: "&Back\t[", ID: IDGotoBack},
	{Title: "F&orward\t]", ID: IDGotoForward},
}

var zoomMenu = []Descriptor{
	{Title: "Fit &Page\t0", ID: IDZoomFitPage},
	{Title: "&Actual Size\t1", ID: IDZoomActualSize},
	{Title: "Fit &Width\t2", ID: IDZoomFitWidth},
	{Title: "Fit &Content\t3", ID: IDZoomFitContent},
	{Title: "Custom &Zoom...\tZ", ID: IDZoomCustom},
	{Title: Separator},
	{Title: "6400%", ID: IDZoom6400, Flags: FlagNoTranslate},
	{Title: "3200%", ID: IDZoom3200, Flags: FlagNoTranslate},
	{Title: "1600%", ID: IDZoom1600, Flags: FlagNoTranslate},
	{Title: "800%", ID: IDZoom800, Flags: FlagNoTranslate},
	{Title: "400%", ID: IDZoom400, Flags: FlagNoTranslate},
	{Title: "200%", ID: IDZoom200, Flags: FlagNoTranslate},
	{Title: "150%", ID: IDZoom150, Flags: FlagNoTranslate},
	{Title: "125%", ID: IDZoom125, Flags: FlagNoTranslate},
	{Title: "100%", ID: IDZoom100, Flags: FlagNoTranslate},
	{Title: "50%", ID: IDZoom50, Flags: FlagNoTranslate},
	{Title: "25%", ID: IDZoom25, Flags: FlagNoTranslate},
	{Title: "12.5%", ID: IDZoom12p5, Flags: FlagNoTranslate},
	{Title: "8.33%", ID: IDZoom8p33, Flags: FlagNoTranslate},
}

var ebookZoomMenu = []Descriptor{
	{Title: "Fit &Page\t0", ID: IDZoomFitPage},
	{Title: "&Actual Size\t1", ID: IDZoomActualSize},
	{Title: "Fit &Width\t2", ID: IDZoomFitWidth},
	{Title: "Custom &Zoom...\tZ", ID: IDZoomCustom},
	{Title: Separator},
	{Title: "200%", ID: IDZoom200, Flags: FlagNoTranslate},
	{Title: "150%", ID: IDZoom150, Flags: FlagNoTranslate},
	{Title: "125%", ID: IDZoom125, Flags: FlagNoTranslate},
	{Title: "100%", ID: IDZoom100, Flags: FlagNoTranslate},
	{Title: "50%", ID: IDZoom50, Flags: FlagNoTranslate},
}

var helpMenu = []Descriptor{
	{Title: "&Keyboard Shortcuts\t?", ID: IDKeyboardHelp},
	{Title: Separator},
	{Title: "&About", ID: IDAbout},
}

var debugMenu = []Descriptor{
	{Title: "Highlight &links", ID: IDDebugHighlightLinks, Flags: FlagDebug | FlagNoTranslate},
	{Title: "&Dump menu state", ID: IDDebugDumpMenu, Flags: FlagDebug | FlagNoTranslate},
}

var documentMenu = []Descriptor{
	{Title: "&File", Submenu: fileMenu},
	{Title: "&View", Submenu: viewMenu},
	{Title: "&Go To", Submenu: gotoMenu},
	{Title: "&Zoom", Submenu: zoomMenu},
	{Title: "&Help", Submenu: helpMenu},
	{Title: "&Debug", Flags: FlagDebug | FlagNoTranslate, Submenu: debugMenu},
}

var ebookMenu = []Descriptor{
	{Title: "&File", Submenu: ebookFileMenu},
	{Title: "&View", Submenu: ebookViewMenu},
	{Title: "&Go To", Submenu: ebookGotoMenu},
	{Title: "&Zoom", Submenu: ebookZoomMenu},
	{Title: "&Help", Submenu: helpMenu},
	{Title: "&Debug", Flags: FlagDebug | FlagNoTranslate, Submenu: debugMenu},
}

var documentContextMenu = []Descriptor{
	{Title: "Cop&y Selection\tY", ID: IDCopySelection, Flags: FlagOnSelection | FlagNeedsClipboard},
	{Title: "Copy &Link Address", ID: IDCopyLinkTarget, Flags: FlagOnLink | FlagNeedsClipboard},
	{Title: "Copy Co&mment", ID: IDCopyComment, Flags: FlagOnComment | FlagNeedsClipboard},
	{Title: "Select &All\tCtrl+A", ID: IDSelectAll},
	{Title: Separator},
	{Title: "Book&marks\tB", ID: IDViewBookmarks},
	{Title: "Show &Toolbar\tT", ID: IDViewToolbar},
	{Title: Separator},
	{Title: "&Back\t[", ID: IDGotoBack},
	{Title: "F&orward\t]", ID: IDGotoForward},
	{Title: Separator},
	{Title: "Save &As...", ID: IDSaveAs, Flags: FlagNeedsDisk},
	{Title: "&Print...", ID: IDPrint, Flags: FlagNeedsPrinter},
	{Title: "P&roperties", ID: IDProperties},
	{Title: Separator, Flags: FlagDebug},
	{Title: "Highlight &links", ID: IDDebugHighlightLinks, Flags: FlagDebug | FlagNoTranslate},
}

var ebookContextMenu = []Descriptor{
	{Title: "Cop&y Selection\tY", ID: IDCopySelection, Flags: FlagOnSelection | FlagNeedsClipboard},
	{Title: "Copy &Link Address", ID: IDCopyLinkTarget, Flags: FlagOnLink | FlagNeedsClipboard},
	{Title: "Copy Co&mment", ID: IDCopyComment, Flags: FlagOnComment | FlagNeedsClipboard},
	{Title: "Select &All\tCtrl+A", ID: IDSelectAll},
	{Title: Separator},
	{Title: "Show &Toolbar\tT", ID: IDViewToolbar},
	{Title: Separator},
	{Title: "&Back\t[", ID: IDGotoBack},
	{Title: "F&orward\t]", ID: IDGotoForward},
	{Title: Separator},
	{Title: "P&roperties", ID: IDProperties},
	{Title: Separator, Flags: FlagDebug},
	{Title: "Highlight &links", ID: IDDebugHighlightLinks, Flags: FlagDebug | FlagNoTranslate},
}

var startContextMenu = []Descriptor{
	{Title: "&Open Document", ID: IDOpenSelectedDocument, Flags: FlagNeedsDisk},
	{Title: "&Pin Document", ID: IDPinSelectedDocument},
	{Title: Separator},
	{Title: "&Remove From History", ID: IDForgetSelectedDocument},
}

// MainTable returns the menu bar table of a flavor.
func MainTable(f Flavor) []Descriptor {
	switch f {
	case FlavorDocument:
		return documentMenu
	case FlavorEbook:
		return ebookMenu
	}
	panic(fmt.Sprintf("menu: no main menu for %s", f))
}

// ContextTable returns the right-click table of a flavor.
func ContextTable(f Flavor) []Descriptor {
	switch f {
	case FlavorDocument:
		return documentContextMenu
	case FlavorEbook:
		return ebookContextMenu
	}
	panic(fmt.Sprintf("menu: no context menu for %s", f))
}

// StartContextTable returns the table shown for a recent file on the start
// page.
func StartContextTable() []Descriptor {
	return startContextMenu
}
