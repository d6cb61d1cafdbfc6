package prompt

import (
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/types"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/validation"
)

// =============================================================================
// FIELD COLLECTORS
// =============================================================================
// One collector per field. Each prompts until it gets a valid answer and
// returns the typed value. Only ErrInputClosed (or a read failure) ends a
// collector early.

// CollectDate asks for the delivery date and returns the text as typed.
func CollectDate(c *Console) (string, error) {
	return AskUntilValid(c, "Enter the delivery date (DD-MM-YYYY): ", validation.ValidateDate)
}

// CollectMileage asks for the mileage covered.
func CollectMileage(c *Console) (float64, error) {
	return AskUntilValid(c, "Enter mileage (in miles): ", validation.ParseMileage)
}

// CollectLoadType lists the load types and asks for a number.
func CollectLoadType(c *Console) (types.LoadType, error) {
	c.Println("Select load type:")
	for i, l := range types.LoadTypes {
		c.Printf("%d. %s\n", i+1, l)
	}
	return AskUntilValid(c, "Enter the number corresponding to the load type: ", validation.ParseLoadTypeSelection)
}

// CollectDeliveryDetails asks for free-text details. Anything is accepted,
// including an empty line.
func CollectDeliveryDetails(c *Console) (string, error) {
	return c.Ask("Enter delivery details (destination, notes, etc.): ")
}

// Choose lists options numbered from 1 and returns the chosen index (0-based).
func Choose(c *Console, title string, options []string, question string) (int, error) {
	c.Println(title)
	for i, opt := range options {
		c.Printf("%d. %s\n", i+1, opt)
	}

	choice, err := AskUntilValid(c, question, func(s string) (int, error) {
		return validation.ParseSelection(s, len(options))
	})
	if err != nil {
		return 0, err
	}
	return choice - 1, nil
}

// Confirm asks a yes/no question until the answer is y or n.
func Confirm(c *Console, question string) (bool, error) {
	return AskUntilValid(c, question, validation.ParseConfirmation)
}
