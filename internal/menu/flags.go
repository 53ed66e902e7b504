package menu

// Flags are the inclusion bits carried by a Descriptor and by the filter
// handed to the Builder.
type Flags uint32

const (
	// FlagDebug marks diagnostic entries built only into debug and
	// pre-release binaries.
	FlagDebug Flags = 1 << iota
	FlagNeedsDisk
	FlagNeedsPrinter
	FlagNeedsClipboard

	// FlagOnPage, FlagOnLink, FlagOnComment and FlagOnSelection describe what
	// lies under the pointer when a context menu is requested.
	FlagOnPage
	FlagOnLink
	FlagOnComment
	FlagOnSelection

	// FlagNoTranslate keeps the title away from the Translator. It takes no
	// part in inclusion.
	FlagNoTranslate
)

const (
	// RequiredMask bits must all be present in the filter for a descriptor
	// carrying them to be built.
	RequiredMask = FlagDebug

	// SelectionMask bits are matched by intersection. A descriptor or filter
	// without any of them matches everything.
	SelectionMask = FlagOnPage | FlagOnLink | FlagOnComment | FlagOnSelection

	// AllPermissions grants every FlagNeeds* bit. Permissions take no part in
	// Included; a Builder drops descriptors needing a denied one.
	AllPermissions = FlagNeedsDisk | FlagNeedsPrinter | FlagNeedsClipboard

	// ProcessMask is what a process grants: the debug bit and permissions.
	ProcessMask = RequiredMask | AllPermissions
)

// Included reports whether a descriptor with the given flags is built under
// filter.
func Included(flags, filter Flags) bool {
	if req := flags & RequiredMask; req&filter != req {
		return false
	}

	sel := flags & SelectionMask
	want := filter & SelectionMask

	return sel == 0 || want == 0 || sel&want != 0
}
