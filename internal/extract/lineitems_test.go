package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/internal/entity"
)

func TestParseLineItemsStrictRows(t *testing.T) {
	text := `Invoice INV-1
Item Description    Price  Qty  Total
1 Widget $10.00 2 $20.00
2 Gadget $5.50 3 $16.50
3 Gizmo $1.00 1 $1.00
Subtotal: $37.50
Total: $40.61`

	items := parseLineItems(text)
	require.Len(t, items, 3)
	require.Equal(t, entity.LineItem{
		ItemNumber: "1", Description: "Widget", UnitPrice: "10.00", Quantity: "2", Amount: "20.00",
	}, items[0])
	require.Equal(t, "2", items[1].ItemNumber)
	require.Equal(t, "3", items[2].ItemNumber)
	require.Equal(t, "16.50", items[1].Amount)
}

func TestParseLineItemsWithoutDollarSigns(t *testing.T) {
	text := `Item Description Price Qty Total
1 Consulting 150.00 4 600.00
Thank you for your business`

	items := parseLineItems(text)
	require.Len(t, items, 1)
	require.Equal(t, "Consulting", items[0].Description)
	require.Equal(t, "600.00", items[0].Amount)
}

// Rows that fail the strict shape degrade to the currency-token heuristic:
// description before the first amount, last amount is the row total, item
// numbers default to the row's position.
func TestParseLineItemsLooseRows(t *testing.T) {
	text := `Description Price Quantity Amount
Consulting services $150.00 4 $600.00
Travel expenses $80.00 and $120.00 reimbursed
Subtotal: $720.00`

	items := parseLineItems(text)
	require.Len(t, items, 2)

	require.Equal(t, "1", items[0].ItemNumber)
	require.Equal(t, "Consulting services", items[0].Description)
	require.Equal(t, "150.00", items[0].UnitPrice)
	require.Equal(t, "4", items[0].Quantity)
	require.Equal(t, "600.00", items[0].Amount)

	require.Equal(t, "2", items[1].ItemNumber)
	require.Equal(t, "Travel expenses", items[1].Description)
	require.Equal(t, "1", items[1].Quantity) // no qty between the amounts
	require.Equal(t, "120.00", items[1].Amount)
}

func TestParseLineItemsBareRowStart(t *testing.T) {
	text := `Acme Corp
1 Widget $10.00 2 $20.00
2 Gadget $5.50 3 $16.50
Payment due on receipt`

	items := parseLineItems(text)
	require.Len(t, items, 2)
	require.Equal(t, "Widget", items[0].Description)
}

func TestParseLineItemsNoTable(t *testing.T) {
	items := parseLineItems("Dear customer,\nplease find attached our offer.\nRegards")
	require.NotNil(t, items)
	require.Empty(t, items)
}
