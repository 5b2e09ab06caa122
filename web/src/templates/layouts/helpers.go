package layouts

// CalculateTitle returns the document title for a page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - Marketplace"
	}
	return "Marketplace"
}
