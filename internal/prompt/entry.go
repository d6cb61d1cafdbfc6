package prompt

import (
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/types"
)

// =============================================================================
// ENTRY WORKFLOW
// =============================================================================

// ConfirmEntry shows the candidate record and asks whether it is correct.
func ConfirmEntry(c *Console, r types.DeliveryRecord) (bool, error) {
	c.Println()
	c.Println("--- Confirm Your Entry ---")
	c.Printf("Date: %s\n", r.Date)
	c.Printf("Mileage: %s miles\n", types.FormatMileage(r.Mileage))
	c.Printf("Load Type: %s\n", r.LoadType)
	c.Printf("Delivery Details: %s\n", r.DeliveryDetails)
	c.Println("--------------------------")

	return Confirm(c, "Is this correct? (y/n): ")
}

// CollectEntry runs the four collectors in order (date, mileage, load type,
// details), then asks for confirmation. A declined record is discarded and
// collection starts over with nothing pre-filled. It returns only a record
// the user accepted, or an error if input ends.
func CollectEntry(c *Console) (types.DeliveryRecord, error) {
	for {
		r, err := collectCandidate(c)
		if err != nil {
			return types.DeliveryRecord{}, err
		}

		ok, err := ConfirmEntry(c, r)
		if err != nil {
			return types.DeliveryRecord{}, err
		}
		if ok {
			return r, nil
		}

		c.Println("Let's re-enter the data.")
	}
}

func collectCandidate(c *Console) (types.DeliveryRecord, error) {
	var r types.DeliveryRecord
	var err error

	if r.Date, err = CollectDate(c); err != nil {
		return r, err
	}
	if r.Mileage, err = CollectMileage(c); err != nil {
		return r, err
	}
	if r.LoadType, err = CollectLoadType(c); err != nil {
		return r, err
	}
	if r.DeliveryDetails, err = CollectDeliveryDetails(c); err != nil {
		return r, err
	}

	return r, nil
}
