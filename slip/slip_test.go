package slip

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleData() Data {
	return Data{
		StallName:    "STREET FOOD & CAFE",
		Tagline:      "Fresh & Tasty",
		OrderID:      7,
		PlacedAt:     time.Date(2026, 8, 28, 14, 5, 0, 0, time.UTC),
		CustomerName: "Asha",
		Mobile:       "9876543210",
		Lines: []Line{
			{Name: "Biryani", Variant: "Half", Qty: 2, UnitPrice: 7000},
			{Name: "Chai", Variant: "Standard", Qty: 1, UnitPrice: 1000},
		},
		Total: 15000,
	}
}

func TestRenderTextLayout(t *testing.T) {
	out := RenderText(sampleData())

	assert.Contains(t, out, "[C]<u><b>STREET FOOD & CAFE</b></u>")
	assert.Contains(t, out, "[C]Fresh & Tasty")
	assert.Contains(t, out, "[L]<b>Order No:</b> #7")
	assert.Contains(t, out, "[L]<b>Date:</b> 28-Aug-2026 14:05")
	assert.Contains(t, out, "[L]<b>Name:</b> Asha")
	assert.Contains(t, out, "[L]<b>Mobile:</b> 9876543210")
	assert.Contains(t, out, "[L]Biryani (Half)[R]x2[R]140.00")
	assert.Contains(t, out, "[L]Chai[R]x1[R]10.00", "standard rows carry no suffix")
	assert.Contains(t, out, "[R]TOTAL: <b>Rs.150.00</b>")
	assert.Contains(t, out, "[C]Thank you! Visit Again")
}

func TestRenderTextOmitsEmptyMobile(t *testing.T) {
	d := sampleData()
	d.Mobile = ""
	out := RenderText(d)
	assert.NotContains(t, out, "Mobile:")
}

func TestRenderTextTotalIsStoredNotRecomputed(t *testing.T) {
	d := sampleData()
	d.Total = 99900 // deliberately different from the line sum
	out := RenderText(d)
	assert.Contains(t, out, "Rs.999.00")
}

func TestRenderHTML(t *testing.T) {
	d := sampleData()
	out := RenderHTML(d)

	assert.True(t, strings.HasPrefix(out, "<html>"))
	assert.Contains(t, out, "STREET FOOD &amp; CAFE")
	assert.Contains(t, out, "Biryani (Half)")
	assert.Contains(t, out, "Rs.150.00")
	assert.NotContains(t, out, "data:image/png", "no QR without a payee id")

	d.UPIPayeeID = "stall@upi"
	out = RenderHTML(d)
	assert.Contains(t, out, "data:image/png;base64,")
	assert.Contains(t, out, "Scan to pay")
}

func TestUPIURI(t *testing.T) {
	d := sampleData()
	d.UPIPayeeID = "stall@upi"
	assert.Equal(t, "upi://pay?pa=stall@upi&pn=STREET+FOOD+%26+CAFE&am=150.00", d.UPIURI())
}
