// =============================================================================
// Trucking Delivery Tracker - Menu Loop
// =============================================================================
//
// The interactive front end. Each pass prints the main menu, reads one
// choice and dispatches it:
//
//   1. Add Delivery Entry        -> entry workflow, then append to the store
//   2. Visualize Data            -> charts from the stored deliveries
//   3. View Summary Statistics   -> summary block on the console
//   4. Help                      -> help text
//   5. Exit                      -> leave the loop
//
// Errors from a single action are printed and the loop carries on. The loop
// ends on choice 5 or when the input stream closes.
//
// =============================================================================

package menu

import (
	"errors"

	"github.com/ginjaninja78/trucking-delivery-tracker/internal/chart"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/logging"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/prompt"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/report"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/store"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/visualize"
)

// Menu choices as typed by the user.
const (
	ChoiceAdd       = "1"
	ChoiceVisualize = "2"
	ChoiceSummary   = "3"
	ChoiceHelp      = "4"
	ChoiceExit      = "5"
)

// Menu ties the console to the store and the chart renderer.
type Menu struct {
	console  *prompt.Console
	store    *store.Store
	renderer chart.Renderer
	logger   logging.Logger
}

// New creates a Menu. A nil logger discards log output.
func New(c *prompt.Console, s *store.Store, r chart.Renderer, logger logging.Logger) *Menu {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Menu{console: c, store: s, renderer: r, logger: logger}
}

// =============================================================================
// MAIN LOOP
// =============================================================================

// Run shows the menu until the user exits or input runs out. Closed input is
// treated as an exit, not an error.
func (m *Menu) Run() error {
	for {
		m.printMenu()

		choice, err := m.console.Ask("Select an option: ")
		if errors.Is(err, prompt.ErrInputClosed) {
			m.logger.Debug("input closed, leaving menu")
			return nil
		}
		if err != nil {
			return err
		}

		done, err := m.Dispatch(choice)
		if errors.Is(err, prompt.ErrInputClosed) {
			m.logger.Debug("input closed during option %s, leaving menu", choice)
			return nil
		}
		if err != nil {
			m.logger.Error("option %s failed: %v", choice, err)
			m.console.Printf("Error: %v\n", err)
		}
		if done {
			return nil
		}
	}
}

// Dispatch runs a single menu choice. done reports whether the loop should
// stop.
func (m *Menu) Dispatch(choice string) (done bool, err error) {
	switch choice {
	case ChoiceAdd:
		return false, m.AddEntry()
	case ChoiceVisualize:
		return false, m.Visualize("")
	case ChoiceSummary:
		return false, m.Summary()
	case ChoiceHelp:
		m.Help()
		return false, nil
	case ChoiceExit:
		m.console.Println("Exiting the tracker. Safe travels!")
		return true, nil
	default:
		m.console.Println("Invalid choice. Please select a valid option.")
		return false, nil
	}
}

func (m *Menu) printMenu() {
	m.console.Println("\n--- Trucking Delivery Tracker ---")
	m.console.Println("1. Add Delivery Entry")
	m.console.Println("2. Visualize Data")
	m.console.Println("3. View Summary Statistics")
	m.console.Println("4. Help")
	m.console.Println("5. Exit")
}

// =============================================================================
// ACTIONS
// =============================================================================

// AddEntry collects one confirmed delivery and appends it to the store.
func (m *Menu) AddEntry() error {
	record, err := prompt.CollectEntry(m.console)
	if err != nil {
		return err
	}
	if err := m.store.Append(record); err != nil {
		return err
	}
	m.logger.Debug("appended delivery dated %s to %s", record.Date, m.store.Path())
	m.console.Println("Entry successfully added!")
	return nil
}

// Visualize draws the charts. An empty filter asks the user whether to
// narrow by load type.
func (m *Menu) Visualize(filter string) error {
	table, err := m.store.Load()
	if err != nil {
		return err
	}
	result, err := visualize.Run(m.console, table, m.renderer, filter)
	if err != nil {
		return err
	}
	if result != nil {
		for _, path := range []string{result.LineChart, result.BarChart} {
			if path != "" {
				m.logger.Info("chart written: %s", path)
			}
		}
	}
	return nil
}

// Summary prints the summary statistics block.
func (m *Menu) Summary() error {
	table, err := m.store.Load()
	if err != nil {
		return err
	}
	return report.Show(m.console.Out(), table)
}

// Help prints a one-line description of every menu option.
func (m *Menu) Help() {
	m.console.Println("\n--- Help Menu ---")
	m.console.Println("1. Add Delivery Entry: Record new delivery details.")
	m.console.Println("2. Visualize Data: View charts for deliveries.")
	m.console.Println("3. View Summary Statistics: Get key delivery insights.")
	m.console.Println("4. Help: View this menu.")
	m.console.Println("5. Exit: Close the program.")
	m.console.Println("--------------------------")
}
