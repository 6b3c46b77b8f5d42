package layouts

// CalculateTitle joins the page title and the site title for the document head.
func CalculateTitle(title, site string) string {
	switch {
	case title == "":
		return site
	case site == "" || title == site:
		return title
	default:
		return title + " - " + site
	}
}
