package slip

import (
	"encoding/base64"
	"fmt"
	"html"
	"log"
	"strings"

	"stallpos/pkg/money"

	qrcode "github.com/skip2/go-qrcode"
)

// RenderHTML builds the on-screen slip preview: same content as the printed
// slip, plus a UPI payment QR when a payee id is configured.
func RenderHTML(d Data) string {
	var sb strings.Builder

	sb.WriteString("<html><body style='font-family:monospace; width:320px;'>")
	sb.WriteString("<h2 style='text-align:center; margin-bottom:0;'>" + html.EscapeString(d.StallName) + "</h2>")
	if d.Tagline != "" {
		sb.WriteString("<p style='text-align:center; margin-top:4px;'>" + html.EscapeString(d.Tagline) + "</p>")
	}

	sb.WriteString(fmt.Sprintf("<p><b>Order No:</b> #%d<br>", d.OrderID))
	sb.WriteString("<b>Date:</b> " + d.PlacedAt.Format(dateLayout) + "<br>")
	sb.WriteString("<b>Name:</b> " + html.EscapeString(d.CustomerName))
	if d.Mobile != "" {
		sb.WriteString("<br><b>Mobile:</b> " + d.Mobile)
	}
	sb.WriteString("</p><hr>")

	sb.WriteString("<table style='width:100%; border-collapse:collapse;'>")
	sb.WriteString("<tr><th align='left'>Item</th><th align='right'>Qty</th><th align='right'>Price</th></tr>")
	for _, l := range d.Lines {
		sb.WriteString(fmt.Sprintf("<tr><td>%s</td><td align='right'>x%d</td><td align='right'>%s</td></tr>",
			html.EscapeString(l.displayName()), l.Qty, money.Plain(l.total())))
	}
	sb.WriteString("</table><hr>")

	sb.WriteString("<p style='text-align:right;'><b>TOTAL: " + money.Format(d.Total) + "</b></p>")

	if d.UPIPayeeID != "" {
		if png, err := qrcode.Encode(d.UPIURI(), qrcode.Medium, 180); err != nil {
			log.Printf("slip qr encode failed: %v", err)
		} else {
			sb.WriteString("<p style='text-align:center;'><img alt='UPI QR' src='data:image/png;base64,")
			sb.WriteString(base64.StdEncoding.EncodeToString(png))
			sb.WriteString("'><br>Scan to pay</p>")
		}
	}

	sb.WriteString("<p style='text-align:center;'>Thank you! Visit Again</p>")
	sb.WriteString("</body></html>")
	return sb.String()
}
