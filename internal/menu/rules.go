package menu

import "fmt"

// rule derives one item's state from a snapshot. A nil func leaves that bit
// alone.
type rule struct {
	enabled func(WindowState) bool
	checked func(WindowState) bool
}

// ruleSet is the rule table of one flavor.
type ruleSet struct {
	// layout reports whether a layout is offered to the snapshot's document.
	layout func(WindowState, Layout) bool
	items  map[CommandID]rule
}

func loaded(s WindowState) bool       { return s.DocumentLoaded }
func never(WindowState) bool          { return false }
func debugBuild(s WindowState) bool   { return s.Debug }
func toolbarShown(s WindowState) bool { return s.ToolbarVisible }
func fullscreen(s WindowState) bool   { return s.Fullscreen }
func tocShown(s WindowState) bool     { return s.TocVisible }
func linksShown(s WindowState) bool   { return s.HighlightLinks }
func canGoBack(s WindowState) bool    { return s.DocumentLoaded && s.CanGoBack }
func canGoForward(s WindowState) bool { return s.DocumentLoaded && s.CanGoForward }
func hasNextPage(s WindowState) bool  { return s.DocumentLoaded && s.Page < s.PageCount }
func hasPrevPage(s WindowState) bool  { return s.DocumentLoaded && s.Page > 1 }
func multiPage(s WindowState) bool    { return s.DocumentLoaded && s.PageCount > 1 }
func hasSelection(s WindowState) bool { return s.Can(CapCopy) && s.HasSelection }

func can(c Capabilities) func(WindowState) bool {
	return func(s WindowState) bool { return s.Can(c) }
}

var commonRules = map[CommandID]rule{
	IDClose:               {enabled: loaded},
	IDSaveAs:              {enabled: loaded},
	IDProperties:          {enabled: loaded},
	IDCopyPath:            {enabled: loaded},
	IDSelectAll:           {enabled: can(CapCopy)},
	IDCopySelection:       {enabled: hasSelection},
	IDViewToolbar:         {checked: toolbarShown},
	IDViewFullscreen:      {enabled: loaded, checked: fullscreen},
	IDGotoBack:            {enabled: canGoBack},
	IDGotoForward:         {enabled: canGoForward},
	IDGotoNextPage:        {enabled: hasNextPage},
	IDGotoPrevPage:        {enabled: hasPrevPage},
	IDDebugHighlightLinks: {enabled: debugBuild, checked: linksShown},
	IDDebugDumpMenu:       {enabled: debugBuild},
}

var documentRules = ruleSet{
	layout: func(s WindowState, l Layout) bool {
		switch l {
		case LayoutFacing, LayoutBookView:
			return s.Can(CapFacing)
		case LayoutContinuous:
			return s.Can(CapContinuous)
		}
		return true
	},
	items: extend(commonRules, map[CommandID]rule{
		IDPrint:         {enabled: can(CapPrint)},
		IDGotoFirstPage: {enabled: hasPrevPage},
		IDGotoLastPage:  {enabled: hasNextPage},
		IDGotoPage:      {enabled: multiPage},
		IDViewBookmarks: {enabled: can(CapToc), checked: tocShown},
	}),
}

// Reflowed text has no fixed pages: random page access, printing and the
// paper-bound layouts are never offered.
var ebookRules = ruleSet{
	layout: func(s WindowState, l Layout) bool {
		switch l {
		case LayoutSinglePage:
			return true
		case LayoutFacing:
			return s.Can(CapFacing)
		}
		return false
	},
	items: extend(commonRules, map[CommandID]rule{
		IDPrint:         {enabled: never},
		IDGotoFirstPage: {enabled: never},
		IDGotoLastPage:  {enabled: never},
		IDGotoPage:      {enabled: never},
		IDViewBookmarks: {enabled: never, checked: never},
	}),
}

func rulesFor(f Flavor) ruleSet {
	switch f {
	case FlavorDocument:
		return documentRules
	case FlavorEbook:
		return ebookRules
	}
	panic(fmt.Sprintf("menu: no rules for %s", f))
}

func extend(base, extra map[CommandID]rule) map[CommandID]rule {
	out := make(map[CommandID]rule, len(base)+len(extra))
	for id, r := range base {
		out[id] = r
	}
	for id, r := range extra {
		out[id] = r
	}
	return out
}

func (r rule) apply(s WindowState, it Item) {
	if r.enabled != nil {
		it.SetEnabled(r.enabled(s))
	}
	if r.checked != nil {
		it.SetChecked(r.checked(s))
	}
}
