package layouts

const siteName = "ZBD Node.js SDK"

// CalculateTitle builds the document title for a page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + siteName
	}
	return siteName
}
