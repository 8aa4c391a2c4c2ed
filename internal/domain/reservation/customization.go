package reservation

import (
	"strings"
	"time"

	"festivo/internal/domain/catalog"
	"festivo/internal/pkg/errs"

	"github.com/google/uuid"
)

// CustomizationSelection is the raw client choice: option names only. Prices
// are resolved from the package's canonical menu, never from the client.
type CustomizationSelection struct {
	TableType string
	ChairType string
	FoodNames []string
	Notes     string
}

// Customization is the table/chair/food choices attached to one reservation.
// The captured food prices are an immutable snapshot: later catalog price
// changes cannot retroactively invalidate a reservation.
type Customization struct {
	id                uuid.UUID
	reservationID     uuid.UUID
	selectedTableType string
	selectedChairType string
	selectedFoods     []catalog.FoodOption
	notes             string
	createdAt         time.Time
}

// newCustomization resolves the selection against the package and enforces
// membership, then the strict budget rule: food total <= package base price.
func newCustomization(pkg *catalog.Package, sel CustomizationSelection) (*Customization, error) {
	fe := errs.FieldErrors{}

	tableType := strings.TrimSpace(sel.TableType)
	chairType := strings.TrimSpace(sel.ChairType)

	switch {
	case tableType == "":
		fe.Add("selected_table_type", "table selection is required")
	case !pkg.HasTable(tableType):
		fe.Add("selected_table_type", "selected table is not offered by this package")
	}

	switch {
	case chairType == "":
		fe.Add("selected_chair_type", "chair selection is required")
	case !pkg.HasChair(chairType):
		fe.Add("selected_chair_type", "selected chair is not offered by this package")
	}

	foods := make([]catalog.FoodOption, 0, len(sel.FoodNames))
	for _, name := range sel.FoodNames {
		food, ok := pkg.FoodByName(strings.TrimSpace(name))
		if !ok {
			fe.Add("selected_foods", "selected food is not offered by this package: "+name)
			continue
		}
		foods = append(foods, food)
	}

	if fe.HasErrors() {
		return nil, fe
	}

	if !catalog.WithinBudget(foods, pkg.BasePrice()) {
		fe.Add("selected_foods", "selected foods exceed the package budget")
		return nil, fe
	}

	return &Customization{
		id:                uuid.New(),
		selectedTableType: tableType,
		selectedChairType: chairType,
		selectedFoods:     foods,
		notes:             strings.TrimSpace(sel.Notes),
	}, nil
}

func ReconstructCustomization(
	id, reservationID uuid.UUID,
	selectedTableType, selectedChairType string,
	selectedFoods []catalog.FoodOption,
	notes string,
	createdAt time.Time,
) *Customization {
	return &Customization{
		id:                id,
		reservationID:     reservationID,
		selectedTableType: selectedTableType,
		selectedChairType: selectedChairType,
		selectedFoods:     selectedFoods,
		notes:             notes,
		createdAt:         createdAt,
	}
}

func (c *Customization) ID() uuid.UUID             { return c.id }
func (c *Customization) ReservationID() uuid.UUID  { return c.reservationID }
func (c *Customization) SelectedTableType() string { return c.selectedTableType }
func (c *Customization) SelectedChairType() string { return c.selectedChairType }
func (c *Customization) SelectedFoods() []catalog.FoodOption {
	return c.selectedFoods
}
func (c *Customization) Notes() string        { return c.notes }
func (c *Customization) CreatedAt() time.Time { return c.createdAt }
