package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oscarnavarro/showroom/internal/auth"
	"github.com/oscarnavarro/showroom/internal/browse"
	"github.com/oscarnavarro/showroom/internal/catalog"
	"github.com/oscarnavarro/showroom/internal/checkout"
	"github.com/oscarnavarro/showroom/internal/loan"
	"github.com/oscarnavarro/showroom/internal/testdrive"
	"github.com/oscarnavarro/showroom/pkg/enums"
	pkgerrors "github.com/oscarnavarro/showroom/pkg/errors"
)

var priceBuckets = []string{"", "0-300", "300-500", "500-800", "800-2000"}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.searchFocused {
		return m.handleSearchKey(msg)
	}
	if m.form != formNone {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.PageHome):
		return m.switchPage(PageHome)
	case key.Matches(msg, m.keys.PageCatalog):
		return m.switchPage(PageCatalog)
	case key.Matches(msg, m.keys.PageUsed):
		return m.switchPage(PageUsed)
	case key.Matches(msg, m.keys.PageCompare):
		return m.switchPage(PageCompare)
	case key.Matches(msg, m.keys.PageCart):
		return m.switchPage(PageCart)
	case key.Matches(msg, m.keys.PageAccount):
		return m.switchPage(PageAccount)
	case key.Matches(msg, m.keys.PageCalculator):
		next, cmd := m.switchPage(PageCalculator)
		next = next.startForm(formCalculator)
		return next, cmd
	case key.Matches(msg, m.keys.PageTestDrive):
		next, cmd := m.switchPage(PageTestDrive)
		if next.testDrive != 0 {
			next = next.startForm(formTestDrive)
		}
		return next, cmd
	}

	switch m.page {
	case PageHome, PageCatalog, PageUsed:
		return m.handleBrowseKey(msg)
	case PageCompare:
		return m.handleCompareKey(msg)
	case PageCart:
		return m.handleCartKey(msg)
	case PageAccount:
		return m.handleAccountKey(msg)
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchFocused = false
		m.search.Blur()
		m.searchSeq++ // a tick armed before the cancel must not fire
		return m, nil
	case "enter":
		m.searchFocused = false
		m.search.Blur()
		m.searchSeq++
		criteria := m.st.Criteria()
		criteria.Query = m.search.Value()
		m.st.SetCriteria(criteria)
		m.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	// Re-arm the debounce window; only the final tick applies the query.
	m.searchSeq++
	seq := m.searchSeq
	debounced := tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
	return m, tea.Batch(cmd, debounced)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading || m.loadErr != nil {
		return m, nil
	}

	window := m.st.PageItems()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(window)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.PrevPage):
		if m.st.ChangePage(m.st.Page() - 1) {
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.NextPage):
		if m.st.ChangePage(m.st.Page() + 1) {
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.Search):
		m.searchFocused = true
		m.search.SetValue(m.st.Criteria().Query)
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.CycleSort):
		keys := enums.SortKeys()
		current := 0
		for i, k := range keys {
			if k == m.st.SortKey() {
				current = i
			}
		}
		m.st.SetSortKey(keys[(current+1)%len(keys)])
		m.cursor = 0
	case key.Matches(msg, m.keys.CycleFuel):
		m.fuelIdx = (m.fuelIdx + 1) % (len(enums.FuelTypes()) + 1)
		m.applyCriteria(func(c *browse.Criteria) {
			if m.fuelIdx == 0 {
				c.Fuel = ""
			} else {
				c.Fuel = enums.FuelTypes()[m.fuelIdx-1]
			}
		})
	case key.Matches(msg, m.keys.CycleBrand):
		brands := m.brandOptions()
		m.brandIdx = (m.brandIdx + 1) % len(brands)
		m.applyCriteria(func(c *browse.Criteria) { c.Brand = brands[m.brandIdx] })
	case key.Matches(msg, m.keys.CycleYear):
		years := m.yearOptions()
		m.yearIdx = (m.yearIdx + 1) % len(years)
		m.applyCriteria(func(c *browse.Criteria) { c.Year = years[m.yearIdx] })
	case key.Matches(msg, m.keys.CyclePrice):
		m.priceIdx = (m.priceIdx + 1) % len(priceBuckets)
		m.applyCriteria(func(c *browse.Criteria) { c.PriceRange = priceBuckets[m.priceIdx] })
	case key.Matches(msg, m.keys.ClearFilters):
		m.fuelIdx, m.priceIdx, m.brandIdx, m.yearIdx = 0, 0, 0, 0
		m.search.SetValue("")
		m.st.SetCriteria(browse.Criteria{})
		m.cursor = 0
	case key.Matches(msg, m.keys.Favorite):
		if v, ok := m.selected(); ok {
			added, err := m.svc.Favorites.Toggle(m.ctx, v.ID)
			if err != nil {
				m.status = m.statusFromError(err)
			} else if added {
				m.status = v.Name + " added to favorites"
			} else {
				m.status = v.Name + " removed from favorites"
			}
		}
	case key.Matches(msg, m.keys.Compare):
		if v, ok := m.selected(); ok {
			added, err := m.svc.Compare.Toggle(m.ctx, v.ID)
			if err != nil {
				m.status = m.statusFromError(err)
			} else if added {
				m.status = v.Name + " added to compare"
			} else {
				m.status = v.Name + " removed from compare"
			}
		}
	case key.Matches(msg, m.keys.AddToCart):
		if v, ok := m.selected(); ok {
			if err := m.svc.Cart.Add(m.ctx, v.ID); err != nil {
				m.status = m.statusFromError(err)
			} else {
				m.status = v.Name + " added to cart"
			}
		}
	case key.Matches(msg, m.keys.BookTestDrive):
		if v, ok := m.selected(); ok {
			m.testDrive = v.ID
			next, cmd := m.switchPage(PageTestDrive)
			next = next.startForm(formTestDrive)
			return next, cmd
		}
	}
	return m, nil
}

func (m Model) handleCompareKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.st.Compare()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(list)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Remove):
		if m.cursor < len(list) {
			if _, err := m.svc.Compare.Toggle(m.ctx, list[m.cursor].ID); err != nil {
				m.status = m.statusFromError(err)
			}
			if m.cursor > 0 {
				m.cursor--
			}
		}
	}
	return m, nil
}

func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.st.Cart()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Remove):
		if m.cursor < len(items) {
			if err := m.svc.Cart.Remove(m.ctx, items[m.cursor].Vehicle.ID); err != nil {
				m.status = m.statusFromError(err)
			}
			if m.cursor > 0 {
				m.cursor--
			}
		}
	case key.Matches(msg, m.keys.Checkout):
		if len(items) == 0 {
			m.status = "cart is empty"
			return m, nil
		}
		return m.startForm(formCheckout), nil
	}
	return m, nil
}

func (m Model) handleAccountKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.st.User() == nil {
			return m.startForm(formLogin), nil
		}
	case "r":
		if m.st.User() == nil {
			return m.startForm(formRegister), nil
		}
	case "x":
		if m.st.User() != nil {
			m.svc.Auth.Logout(m.ctx)
			m.status = "logged out"
		}
	case "X":
		if err := m.svc.Favorites.Clear(m.ctx); err != nil {
			m.status = m.statusFromError(err)
		} else {
			m.status = "favorites cleared"
		}
	}
	return m, nil
}

// startForm builds the inputs for kind and focuses the first one.
func (m Model) startForm(kind formKind) Model {
	m.form = kind
	m.focusIdx = 0
	m.status = ""

	placeholders := map[formKind][]string{
		formCheckout:   {"name", "email", "phone (optional)", "address (optional)"},
		formLogin:      {"email", "password"},
		formRegister:   {"name", "email", "password", "confirm password"},
		formTestDrive:  {"name", "phone", "email (optional)", "preferred date (YYYY-MM-DD)"},
		formCalculator: {"price", "rate % / year", "months"},
	}[kind]

	m.inputs = make([]textinput.Model, len(placeholders))
	for i, placeholder := range placeholders {
		input := textinput.New()
		input.Placeholder = placeholder
		input.CharLimit = 64
		if strings.Contains(placeholder, "password") {
			input.EchoMode = textinput.EchoPassword
		}
		m.inputs[i] = input
	}
	m.inputs[0].Focus()
	return m
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = formNone
		m.inputs = nil
		return m, nil
	case "tab", "down":
		return m.focusField(m.focusIdx + 1), nil
	case "shift+tab", "up":
		return m.focusField(m.focusIdx - 1), nil
	case "enter":
		if m.focusIdx < len(m.inputs)-1 {
			return m.focusField(m.focusIdx + 1), nil
		}
		return m.submitForm(), nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return m, cmd
}

func (m Model) focusField(idx int) Model {
	if len(m.inputs) == 0 {
		return m
	}
	if idx < 0 {
		idx = len(m.inputs) - 1
	}
	idx %= len(m.inputs)
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = idx
	m.inputs[idx].Focus()
	return m
}

func (m Model) submitForm() Model {
	values := make([]string, len(m.inputs))
	for i := range m.inputs {
		values[i] = strings.TrimSpace(m.inputs[i].Value())
	}

	switch m.form {
	case formCheckout:
		order, err := m.svc.Checkout.Execute(m.ctx, checkout.CustomerInfo{
			Name: values[0], Email: values[1], Phone: values[2], Address: values[3],
		})
		if err != nil {
			m.status = m.statusFromError(err)
			return m
		}
		m.form = formNone
		m.inputs = nil
		m.cursor = 0
		m.status = fmt.Sprintf("order %s placed", shortID(order.ID))

	case formLogin:
		user, err := m.svc.Auth.Login(m.ctx, values[0], values[1])
		if err != nil {
			m.status = m.statusFromError(err)
			return m
		}
		m.form = formNone
		m.inputs = nil
		m.status = "welcome back, " + user.Name

	case formRegister:
		user, err := m.svc.Auth.Register(m.ctx, auth.RegisterInput{
			Name: values[0], Email: values[1], Password: values[2], ConfirmPassword: values[3],
		})
		if err != nil {
			m.status = m.statusFromError(err)
			return m
		}
		m.form = formNone
		m.inputs = nil
		m.status = "welcome, " + user.Name

	case formTestDrive:
		request, err := m.svc.TestDrive.Book(m.ctx, testdrive.Input{
			Name: values[0], Phone: values[1], Email: values[2],
			VehicleID: m.testDrive, PreferredDate: values[3],
		})
		if err != nil {
			m.status = m.statusFromError(err)
			return m
		}
		m.form = formNone
		m.inputs = nil
		m.testDrive = 0
		m.status = "test drive booked for " + request.VehicleName

	case formCalculator:
		price, err1 := strconv.ParseInt(values[0], 10, 64)
		rate, err2 := strconv.ParseFloat(values[1], 64)
		months, err3 := strconv.Atoi(values[2])
		if err1 != nil || err2 != nil || err3 != nil {
			m.status = "all three fields must be numeric"
			return m
		}
		quote := loan.Calculate(price, rate, months)
		m.quote = &quote
		m.status = ""
	}
	return m
}

// selected returns the vehicle under the cursor in the current window.
func (m Model) selected() (catalog.Vehicle, bool) {
	window := m.st.PageItems()
	if m.cursor >= len(window) {
		return catalog.Vehicle{}, false
	}
	return window[m.cursor], true
}

func (m *Model) applyCriteria(mutate func(*browse.Criteria)) {
	criteria := m.st.Criteria()
	mutate(&criteria)
	m.st.SetCriteria(criteria)
	m.cursor = 0
}

// brandOptions returns "" (no filter) followed by the distinct brands.
func (m Model) brandOptions() []string {
	seen := map[string]bool{}
	options := []string{""}
	for _, v := range m.st.Catalog() {
		if !seen[v.Brand] {
			seen[v.Brand] = true
			options = append(options, v.Brand)
		}
	}
	sort.Strings(options[1:])
	return options
}

// yearOptions returns 0 (no filter) followed by the distinct years descending.
func (m Model) yearOptions() []int {
	seen := map[int]bool{}
	options := []int{0}
	for _, v := range m.st.Catalog() {
		if !seen[v.Year] {
			seen[v.Year] = true
			options = append(options, v.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(options[1:])))
	return options
}

// statusFromError maps an operation failure onto the status line, hiding
// anything the error taxonomy marks as not user-surfaced.
func (m Model) statusFromError(err error) string {
	typed := pkgerrors.As(err)
	if typed == nil {
		m.logg.Error(m.ctx, "operation failed", err)
		return "something went wrong"
	}
	meta := pkgerrors.MetadataFor(typed.Code())
	if !meta.Surfaced {
		m.logg.Error(m.ctx, "operation failed", err)
		return "something went wrong"
	}
	return typed.Message()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
