package menu

// Sync brings the checked and enabled bits of every item reachable from live
// in line with s, using the rule table of flavor. It never adds or removes
// items, and running it twice with the same snapshot changes nothing.
func Sync(s WindowState, live Container, flavor Flavor) {
	rules := rulesFor(flavor)
	zoomID := IdentifierFromZoom(s.Zoom)
	layoutID := IdentifierFromLayout(s.Layout)

	Walk(live, func(it Item) {
		id := it.ID()

		switch {
		case id == 0:
			return

		case ZoomRange.Contains(id):
			it.SetChecked(id == zoomID)
			it.SetEnabled(s.DocumentLoaded)

		case LayoutRange.Contains(id):
			it.SetChecked(id == layoutID)
			it.SetEnabled(s.DocumentLoaded && rules.layout(s, LayoutFromIdentifier(id)))

		default:
			if r, ok := rules.items[id]; ok {
				r.apply(s, it)
			}
		}
	})
}
