package menu

// CommandID identifies a menu command. Zero is reserved for separators and
// submenu parents.
type CommandID int

// File commands
const (
	IDOpen       CommandID = 400
	IDClose      CommandID = 401
	IDSaveAs     CommandID = 402
	IDPrint      CommandID = 403
	IDProperties CommandID = 404
	IDCopyPath   CommandID = 405
	IDExit       CommandID = 406
)

// Layout commands. IDViewSinglePage..IDViewContinuous must stay contiguous.
const (
	IDViewSinglePage CommandID = 410 + iota
	IDViewFacing
	IDViewBook
	IDViewContinuous
)

// View commands
const (
	IDViewFullscreen CommandID = 415
	IDViewBookmarks  CommandID = 416
	IDViewToolbar    CommandID = 417
	IDSelectAll      CommandID = 418
)

// Zoom commands. IDZoomFitPage..IDZoomCustom must stay contiguous.
const (
	IDZoomFitPage CommandID = 420 + iota
	IDZoomActualSize
	IDZoomFitWidth
	IDZoom6400
	IDZoom3200
	IDZoom1600
	IDZoom800
	IDZoom400
	IDZoom200
	IDZoom150
	IDZoom125
	IDZoom100
	IDZoom50
	IDZoom25
	IDZoom12p5
	IDZoom8p33
	IDZoomFitContent
	IDZoomCustom
)

// Go to commands
const (
	IDGotoNextPage  CommandID = 440
	IDGotoPrevPage  CommandID = 441
	IDGotoFirstPage CommandID = 442
	IDGotoLastPage  CommandID = 443
	IDGotoPage      CommandID = 444
	IDGotoBack      CommandID = 445
	IDGotoForward   CommandID = 446
)

// Help commands
const (
	IDKeyboardHelp CommandID = 450
	IDAbout        CommandID = 451
)

// Context menu commands
const (
	IDCopySelection  CommandID = 460
	IDCopyLinkTarget CommandID = 461
	IDCopyComment    CommandID = 462
)

// Start page context menu commands
const (
	IDOpenSelectedDocument   CommandID = 470
	IDPinSelectedDocument    CommandID = 471
	IDForgetSelectedDocument CommandID = 472
)

// Debug commands
const (
	IDDebugHighlightLinks CommandID = 480
	IDDebugDumpMenu       CommandID = 481
)

const (
	LayoutFirst = IDViewSinglePage
	LayoutLast  = IDViewContinuous
	ZoomFirst   = IDZoomFitPage
	ZoomLast    = IDZoomCustom
)
