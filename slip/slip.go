// Package slip renders order slips. Rendering is pure formatting over data
// handed in; it never recomputes prices or reaches back into the store.
package slip

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"stallpos/pkg/money"
)

// Line is one printable order row, already resolved to display form.
type Line struct {
	Name      string
	Variant   string // "Standard" rows print without a suffix
	Qty       int
	UnitPrice int64
}

func (l Line) total() int64 {
	return l.UnitPrice * int64(l.Qty)
}

func (l Line) displayName() string {
	if l.Variant != "" && l.Variant != "Standard" {
		return l.Name + " (" + l.Variant + ")"
	}
	return l.Name
}

// Data is everything a slip needs.
type Data struct {
	StallName    string
	Tagline      string
	OrderID      uint
	PlacedAt     time.Time
	CustomerName string
	Mobile       string
	Lines        []Line
	Total        int64

	// When set, the HTML preview carries a UPI payment QR.
	UPIPayeeID string
}

const dateLayout = "02-Jan-2006 15:04"

// RenderText builds the ESC/POS-style markup payload for a 32-column thermal
// printer: [C]/[L]/[R] alignment tags, <b>/<u> emphasis.
func RenderText(d Data) string {
	var sb strings.Builder

	sb.WriteString("[C]<u><b>" + d.StallName + "</b></u>\n")
	if d.Tagline != "" {
		sb.WriteString("[C]" + d.Tagline + "\n")
	}
	sb.WriteString("[L]\n")

	sb.WriteString(fmt.Sprintf("[L]<b>Order No:</b> #%d\n", d.OrderID))
	sb.WriteString("[L]<b>Date:</b> " + d.PlacedAt.Format(dateLayout) + "\n")
	sb.WriteString("[L]<b>Name:</b> " + d.CustomerName + "\n")
	if d.Mobile != "" {
		sb.WriteString("[L]<b>Mobile:</b> " + d.Mobile + "\n")
	}

	sb.WriteString("[C]--------------------------------\n")
	sb.WriteString("[L]<b>Item</b>[R]<b>Qty</b>[R]<b>Price</b>\n")
	sb.WriteString("[C]--------------------------------\n")

	for _, l := range d.Lines {
		sb.WriteString(fmt.Sprintf("[L]%s[R]x%d[R]%s\n",
			l.displayName(), l.Qty, money.Plain(l.total())))
	}

	sb.WriteString("[C]--------------------------------\n")
	sb.WriteString("[R]TOTAL: <b>" + money.Format(d.Total) + "</b>\n")
	sb.WriteString("[C]================================\n")
	sb.WriteString("[L]\n")
	sb.WriteString("[C]Thank you! Visit Again\n")

	return sb.String()
}

// UPIURI builds the payment deep link encoded into the preview QR.
func (d Data) UPIURI() string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s",
		d.UPIPayeeID, url.QueryEscape(d.StallName), money.Plain(d.Total))
}
