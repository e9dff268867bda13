package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oscarnavarro/showroom/internal/catalog"
	"github.com/oscarnavarro/showroom/pkg/enums"
)

var pageTitles = map[Page]string{
	PageHome:       "home",
	PageCatalog:    "new cars",
	PageUsed:       "used cars",
	PageCompare:    "compare",
	PageCart:       "cart",
	PageAccount:    "account",
	PageCalculator: "calculator",
	PageTestDrive:  "test drive",
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.styles.Muted.Render("loading catalog..."))
	case m.loadErr != nil:
		b.WriteString(m.styles.Danger.Render("catalog unavailable: " + m.loadErr.Error()))
	case m.form != formNone:
		b.WriteString(m.renderForm())
	default:
		switch m.page {
		case PageHome:
			b.WriteString(m.renderHome())
		case PageCatalog, PageUsed:
			b.WriteString(m.renderBrowse())
		case PageCompare:
			b.WriteString(m.renderCompare())
		case PageCart:
			b.WriteString(m.renderCart())
		case PageAccount:
			b.WriteString(m.renderAccount())
		case PageCalculator:
			b.WriteString(m.renderCalculator())
		case PageTestDrive:
			b.WriteString(m.renderTestDriveHint())
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString("\n" + m.styles.Warning.Render(m.status))
	}
	b.WriteString("\n" + m.renderHelp())
	return b.String()
}

func (m Model) renderTabs() string {
	order := []Page{
		PageHome, PageCatalog, PageUsed, PageCompare,
		PageCart, PageAccount, PageCalculator, PageTestDrive,
	}
	tabs := make([]string, 0, len(order))
	for i, page := range order {
		label := fmt.Sprintf("%d %s", i+1, pageTitles[page])
		if page == PageCompare {
			if n := len(m.st.Compare()); n > 0 {
				label = fmt.Sprintf("%s (%d)", label, n)
			}
		}
		if page == PageCart {
			if n := len(m.st.Cart()); n > 0 {
				label = fmt.Sprintf("%s (%d)", label, n)
			}
		}
		if page == m.page {
			tabs = append(tabs, m.styles.TabHot.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}
	return strings.Join(tabs, "  ")
}

func (m Model) renderHome() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("showroom"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(
		fmt.Sprintf("%d vehicles in the catalog", len(m.st.Catalog()))))
	b.WriteString("\n\n")

	featured := make([]catalog.Vehicle, 0, 3)
	for _, v := range m.st.Catalog() {
		if v.Badge != nil && (*v.Badge == enums.BadgeHot || *v.Badge == enums.BadgeSale) {
			featured = append(featured, v)
		}
		if len(featured) == 3 {
			break
		}
	}
	if len(featured) == 0 && len(m.st.Catalog()) > 0 {
		featured = m.st.Catalog()[:min(3, len(m.st.Catalog()))]
	}
	for _, v := range featured {
		b.WriteString(m.renderCard(v, false))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render("press 2 or 3 to browse the catalog"))
	return b.String()
}

func (m Model) renderBrowse() string {
	var b strings.Builder

	searchView := m.search.View()
	if !m.searchFocused && m.search.Value() == "" {
		searchView = m.styles.Muted.Render("/ to search")
	}
	b.WriteString(searchView)
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n\n")

	window := m.st.PageItems()
	if len(window) == 0 {
		b.WriteString(m.styles.Muted.Render("no vehicles match the current filters"))
		return b.String()
	}
	for i, v := range window {
		b.WriteString(m.renderCard(v, i == m.cursor))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render(
		fmt.Sprintf("page %d/%d  (%d vehicles)", m.st.Page(), m.st.TotalPages(), len(m.st.Filtered()))))
	return b.String()
}

func (m Model) renderFilterBar() string {
	criteria := m.st.Criteria()
	parts := []string{"sort: " + m.st.SortKey().String()}
	if criteria.IsZero() {
		return m.styles.Muted.Render(parts[0] + "  no filters")
	}
	if criteria.Brand != "" {
		parts = append(parts, "brand: "+criteria.Brand)
	}
	if criteria.Year != 0 {
		parts = append(parts, "year: "+strconv.Itoa(criteria.Year))
	}
	if criteria.Fuel != "" {
		parts = append(parts, "fuel: "+criteria.Fuel.String())
	}
	if criteria.PriceRange != "" {
		parts = append(parts, "price: "+criteria.PriceRange+"M")
	}
	return m.styles.Muted.Render(strings.Join(parts, "  "))
}

func (m Model) renderCard(v catalog.Vehicle, selected bool) string {
	marker := "  "
	nameStyle := m.styles.Text
	if selected {
		marker = m.styles.Selected.Render("> ")
		nameStyle = m.styles.Selected
	}

	name := nameStyle.Render(v.Name)
	if m.st.IsFavorite(v.ID) {
		name += " " + m.styles.Danger.Render("♥")
	}
	if v.Badge != nil {
		name += " " + m.styles.Badge.Render("["+v.Badge.String()+"]")
	}

	detail := fmt.Sprintf("%s  %d  %s km  %s / %s  %.1f★",
		formatPrice(v.Price), v.Year, formatInt(v.Mileage),
		v.Fuel.String(), v.Transmission.String(), v.Rating)
	return marker + name + "\n  " + m.styles.Muted.Render(detail)
}

func (m Model) renderCompare() string {
	list := m.st.Compare()
	if len(list) == 0 {
		return m.styles.Muted.Render("nothing to compare yet; press c on a vehicle")
	}

	rows := []struct {
		label string
		value func(catalog.Vehicle) string
	}{
		{"price", func(v catalog.Vehicle) string { return formatPrice(v.Price) }},
		{"year", func(v catalog.Vehicle) string { return strconv.Itoa(v.Year) }},
		{"mileage", func(v catalog.Vehicle) string { return formatInt(v.Mileage) + " km" }},
		{"fuel", func(v catalog.Vehicle) string { return v.Fuel.String() }},
		{"transmission", func(v catalog.Vehicle) string { return v.Transmission.String() }},
		{"seats", func(v catalog.Vehicle) string { return strconv.Itoa(v.Seats) }},
		{"rating", func(v catalog.Vehicle) string { return fmt.Sprintf("%.1f", v.Rating) }},
	}

	columns := make([]string, 0, len(list))
	for i, v := range list {
		var b strings.Builder
		title := v.Name
		if i == m.cursor {
			title = "> " + title
		}
		b.WriteString(m.styles.Selected.Render(title))
		for _, row := range rows {
			b.WriteString("\n" + m.styles.Muted.Render(row.label+": ") + row.value(v))
		}
		columns = append(columns, m.styles.Card.Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (m Model) renderCart() string {
	items := m.st.Cart()
	if len(items) == 0 {
		return m.styles.Muted.Render("cart is empty; press a on a vehicle")
	}

	var b strings.Builder
	var total int64
	for i, item := range items {
		marker := "  "
		if i == m.cursor {
			marker = m.styles.Selected.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n",
			marker, item.Vehicle.Name, m.styles.Muted.Render(formatPrice(item.Vehicle.Price))))
		total += item.Vehicle.Price * int64(item.Quantity)
	}
	b.WriteString("\n" + m.styles.Accent.Render("total: "+formatPrice(total)))
	b.WriteString("\n" + m.styles.Muted.Render("enter to checkout, x to remove"))
	return b.String()
}

func (m Model) renderAccount() string {
	var b strings.Builder
	if user := m.st.User(); user != nil {
		b.WriteString(m.styles.Title.Render(user.Name))
		b.WriteString("\n" + m.styles.Muted.Render(user.Email))
		b.WriteString("\n" + m.styles.Muted.Render("x to log out, X to clear favorites"))
	} else {
		b.WriteString(m.styles.Muted.Render("not signed in; enter to log in, r to register"))
	}

	if orders := m.svc.Checkout.List(m.ctx); len(orders) > 0 {
		b.WriteString("\n\n" + m.styles.Accent.Render("orders"))
		for _, order := range orders {
			b.WriteString(fmt.Sprintf("\n  %s  %s  %s",
				shortID(order.ID),
				order.CreatedAt.Format("2006-01-02"),
				formatPrice(order.Total)))
		}
	}
	if requests := m.svc.TestDrive.List(m.ctx); len(requests) > 0 {
		b.WriteString("\n\n" + m.styles.Accent.Render("test drives"))
		for _, request := range requests {
			b.WriteString(fmt.Sprintf("\n  %s  %s", request.VehicleName, request.PreferredDate))
		}
	}

	favorites := m.st.Favorites()
	if len(favorites) > 0 {
		b.WriteString("\n\n" + m.styles.Accent.Render(fmt.Sprintf("favorites (%d)", len(favorites))))
		for _, id := range favorites {
			if v, ok := catalog.FindByID(m.st.Catalog(), id); ok {
				b.WriteString("\n  " + v.Name)
			}
		}
	}
	return b.String()
}

func (m Model) renderCalculator() string {
	return m.styles.Muted.Render("press 7 to open the loan calculator")
}

func (m Model) renderTestDriveHint() string {
	return m.styles.Muted.Render("pick a vehicle in the catalog and press t to book a test drive")
}

var formTitles = map[formKind]string{
	formCheckout:   "checkout",
	formLogin:      "log in",
	formRegister:   "register",
	formTestDrive:  "book a test drive",
	formCalculator: "loan calculator",
}

func (m Model) renderForm() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(formTitles[m.form]))

	if m.form == formTestDrive {
		if v, ok := catalog.FindByID(m.st.Catalog(), m.testDrive); ok {
			b.WriteString("\n" + m.styles.Muted.Render(v.Name))
		}
	}

	b.WriteString("\n\n")
	for i := range m.inputs {
		cursor := "  "
		if i == m.focusIdx {
			cursor = m.styles.Selected.Render("> ")
		}
		b.WriteString(cursor + m.inputs[i].View() + "\n")
	}

	if m.form == formCalculator && m.quote != nil {
		b.WriteString("\n" + m.styles.Accent.Render("monthly: "+formatPrice(m.quote.Monthly)))
		b.WriteString("\n" + m.styles.Muted.Render("total payment: "+formatPrice(m.quote.TotalPayment)))
		b.WriteString("\n" + m.styles.Muted.Render("total interest: "+formatPrice(m.quote.TotalInterest)))
	}

	b.WriteString("\n" + m.styles.Muted.Render("tab next field, enter submit, esc cancel"))
	return b.String()
}

func (m Model) renderHelp() string {
	switch m.page {
	case PageCatalog, PageUsed:
		return m.styles.Muted.Render(
			"j/k move  h/l page  s sort  b/y/u/p filters  0 clear  f fav  c compare  a cart  t drive  q quit")
	case PageCompare:
		return m.styles.Muted.Render("j/k move  x remove  1-8 pages  q quit")
	case PageCart:
		return m.styles.Muted.Render("j/k move  x remove  enter checkout  1-8 pages  q quit")
	default:
		return m.styles.Muted.Render("1-8 pages  q quit")
	}
}

// formatPrice renders a rupiah amount with dot thousand separators.
func formatPrice(amount int64) string {
	return "Rp " + formatInt(int(amount))
}

func formatInt(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
