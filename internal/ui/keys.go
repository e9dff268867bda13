package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the storefront.
type keyMap struct {
	// Global
	Quit   key.Binding
	Escape key.Binding

	// Page switching
	PageHome       key.Binding
	PageCatalog    key.Binding
	PageUsed       key.Binding
	PageCompare    key.Binding
	PageCart       key.Binding
	PageAccount    key.Binding
	PageCalculator key.Binding
	PageTestDrive  key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding

	// Catalog actions
	Search        key.Binding
	CycleSort     key.Binding
	CycleFuel     key.Binding
	CycleBrand    key.Binding
	CycleYear     key.Binding
	CyclePrice    key.Binding
	ClearFilters  key.Binding
	Favorite      key.Binding
	Compare       key.Binding
	AddToCart     key.Binding
	BookTestDrive key.Binding

	// Collection actions
	Remove   key.Binding
	Checkout key.Binding
	Switch   key.Binding

	// Forms
	NextField key.Binding
	Confirm   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel / back"),
		),

		PageHome: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Home"),
		),
		PageCatalog: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "New cars"),
		),
		PageUsed: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Used cars"),
		),
		PageCompare: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Compare"),
		),
		PageCart: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "Cart"),
		),
		PageAccount: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "Account"),
		),
		PageCalculator: key.NewBinding(
			key.WithKeys("7"),
			key.WithHelp("7", "Loan calculator"),
		),
		PageTestDrive: key.NewBinding(
			key.WithKeys("8"),
			key.WithHelp("8", "Test drive"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Move down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next page"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Cycle sort"),
		),
		CycleFuel: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Cycle fuel filter"),
		),
		CycleBrand: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Cycle brand filter"),
		),
		CycleYear: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Cycle year filter"),
		),
		CyclePrice: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Cycle price range"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "Clear filters"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Toggle favorite"),
		),
		Compare: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Toggle compare"),
		),
		AddToCart: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add to cart"),
		),
		BookTestDrive: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Book test drive"),
		),

		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Remove"),
		),
		Checkout: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Checkout"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Switch mode"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Submit"),
		),
	}
}
