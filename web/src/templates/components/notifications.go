package components

import (
	"github.com/nfrund/marketplace/internal/view"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// NotificationsID is the id of the shell's notification region.
const NotificationsID = "notifications"

// Notifications renders the notification region. With oob set it is marked
// for an htmx out-of-band swap so a fragment response can replace it.
func Notifications(flashes view.FlashData, oob bool) cmp.Node {
	return g.Div(
		g.ID(NotificationsID),
		g.Class("notifications"),
		g.Role("alert"),
		g.Aria("live", "assertive"),
		cmp.If(oob, hx.SwapOOB("true")),
		cmp.Map(flashes.Error, func(msg string) cmp.Node {
			return Alert("error", msg)
		}),
		cmp.Map(flashes.Success, func(msg string) cmp.Node {
			return Alert("success", msg)
		}),
	)
}

// Alert renders a single notification.
func Alert(kind, message string) cmp.Node {
	return g.P(g.Class("alert alert-"+kind), cmp.Text(message))
}
