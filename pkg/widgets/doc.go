// Package widgets provides the concrete views built on the view tree: text
// labels, pressable cells, swipe cells with side panels, the hamburger
// container and the scroll view.
//
// Every widget is created against a [view.Environment] and is itself a
// [layout.View], so widgets nest by placing them in layout items:
//
//	env := view.NewEnvironment(backend, nil)
//	title := widgets.NewLabel(env, "Inbox")
//	cell := widgets.NewSwipeCell(env, "Row", title)
//	cell.SetTrailing(widgets.NewLabel(env, "Delete"), sidepanel.DefaultOptions(80))
//	cell.OnPressed = func() { open(title.Text()) }
//
// # Cell Compositions
//
// [ContentValueCell] and [IconContentDetailValueCell] are typed layouts for
// the common list row arrangements. The type parameters keep access to the
// concrete views:
//
//	row := widgets.NewContentValueCell[*widgets.Label, *widgets.Label, *widgets.Label](
//	    widgets.NewLabel(env, "Wi-Fi"), geometry.UniformInset(8))
//	row.SetValue(widgets.NewLabel(env, "Home"), geometry.UniformInset(8))
//	cell := widgets.NewCompositionCell(env, "WiFi", row)
package widgets
