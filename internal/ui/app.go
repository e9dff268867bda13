// Package ui renders the storefront pages and routes every user action
// through the collection mutators' public operations. It never mutates
// application state directly.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oscarnavarro/showroom/internal/auth"
	"github.com/oscarnavarro/showroom/internal/cart"
	"github.com/oscarnavarro/showroom/internal/catalog"
	"github.com/oscarnavarro/showroom/internal/checkout"
	"github.com/oscarnavarro/showroom/internal/compare"
	"github.com/oscarnavarro/showroom/internal/favorites"
	"github.com/oscarnavarro/showroom/internal/loan"
	"github.com/oscarnavarro/showroom/internal/state"
	"github.com/oscarnavarro/showroom/internal/testdrive"
	"github.com/oscarnavarro/showroom/pkg/enums"
	"github.com/oscarnavarro/showroom/pkg/logger"
)

// Page identifies the active storefront page.
type Page int

const (
	PageHome Page = iota
	PageCatalog
	PageUsed
	PageCompare
	PageCart
	PageAccount
	PageCalculator
	PageTestDrive
)

// formKind identifies which form, if any, currently owns the keyboard.
type formKind int

const (
	formNone formKind = iota
	formCheckout
	formLogin
	formRegister
	formTestDrive
	formCalculator
)

// Services bundles the mutation surface the UI is allowed to call.
type Services struct {
	Favorites favorites.Service
	Compare   compare.Service
	Cart      cart.Service
	Checkout  checkout.Service
	Auth      auth.Service
	TestDrive testdrive.Service
}

// Options configures the UI.
type Options struct {
	Context        context.Context
	State          *state.State
	Source         *catalog.Source
	Services       Services
	Logger         *logger.Logger
	SearchDebounce time.Duration
	// StartSelector is the subset the home page loads first; empty means all.
	StartSelector enums.CatalogSelector
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx  context.Context
	st   *state.State
	src  *catalog.Source
	svc  Services
	logg *logger.Logger

	keys   keyMap
	theme  Theme
	styles Styles

	page         Page
	selector     enums.CatalogSelector
	homeSelector enums.CatalogSelector
	width        int
	height       int
	loading      bool
	loadErr      error
	status       string

	cursor int

	search        textinput.Model
	searchFocused bool
	searchSeq     int
	debounce      time.Duration

	fuelIdx  int
	priceIdx int
	brandIdx int
	yearIdx  int

	form      formKind
	inputs    []textinput.Model
	focusIdx  int
	testDrive int // vehicle id pending a booking

	quote *loan.Quote
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	debounce := opts.SearchDebounce
	if debounce == 0 {
		debounce = 300 * time.Millisecond
	}
	selector := opts.StartSelector
	if selector == "" {
		selector = enums.CatalogAll
	}

	search := textinput.New()
	search.Placeholder = "search name, brand or model"
	search.CharLimit = 64

	theme := DefaultTheme()
	m := Model{
		ctx:          ctx,
		st:           opts.State,
		src:          opts.Source,
		svc:          opts.Services,
		logg:         opts.Logger,
		keys:         DefaultKeyMap(),
		theme:        theme,
		styles:       theme.Styles(),
		page:         PageHome,
		selector:     selector,
		homeSelector: selector,
		loading:      true,
		search:       search,
		debounce:     debounce,
	}
	return m
}

type catalogLoadedMsg struct {
	selector enums.CatalogSelector
	cars     []catalog.Vehicle
}

type catalogErrMsg struct{ err error }

type searchDebounceMsg struct{ seq int }

func loadCatalogCmd(ctx context.Context, src *catalog.Source, selector enums.CatalogSelector) tea.Cmd {
	return func() tea.Msg {
		cars, err := src.Load(ctx, selector)
		if err != nil {
			return catalogErrMsg{err: err}
		}
		return catalogLoadedMsg{selector: selector, cars: cars}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		loadCatalogCmd(m.ctx, m.src, m.selector),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case catalogLoadedMsg:
		if msg.selector != m.selector {
			// A stale load from a page the user already left.
			return m, nil
		}
		m.loading = false
		m.loadErr = nil
		m.st.SetCatalog(msg.cars)
		m.cursor = 0
		return m, nil

	case catalogErrMsg:
		m.loading = false
		m.loadErr = msg.err
		return m, nil

	case searchDebounceMsg:
		// Only the last pending invocation within the window fires.
		if msg.seq != m.searchSeq {
			return m, nil
		}
		criteria := m.st.Criteria()
		criteria.Query = m.search.Value()
		m.st.SetCriteria(criteria)
		m.cursor = 0
		return m, nil
	}

	return m, nil
}

// switchPage activates a page and reloads the catalog when the page's
// selector differs from the loaded one; each page bootstraps its own subset.
func (m Model) switchPage(page Page) (Model, tea.Cmd) {
	m.page = page
	m.form = formNone
	m.inputs = nil
	m.status = ""
	m.cursor = 0

	m.logg.Debug(m.logg.WithPage(m.ctx, pageTitles[page]), "page opened")

	selector := m.selector
	switch page {
	case PageHome:
		selector = m.homeSelector
	case PageCatalog:
		selector = enums.CatalogNew
	case PageUsed:
		selector = enums.CatalogUsed
	}
	if selector != m.selector {
		m.selector = selector
		m.loading = true
		return m, loadCatalogCmd(m.ctx, m.src, selector)
	}
	return m, nil
}
