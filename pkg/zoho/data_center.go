package zoho

// Zoho runs separate account and API hosts per data center.
var accountsBaseURLs = map[string]string{
	"com":    "https://accounts.zoho.com",
	"eu":     "https://accounts.zoho.eu",
	"in":     "https://accounts.zoho.in",
	"com.au": "https://accounts.zoho.com.au",
	"ca":     "https://accounts.zohocloud.ca",
}

var apiBaseURLs = map[string]string{
	"com":    "https://www.zohoapis.com",
	"eu":     "https://www.zohoapis.eu",
	"in":     "https://www.zohoapis.in",
	"com.au": "https://www.zohoapis.com.au",
	"ca":     "https://www.zohocloud.ca",
}

const defaultDataCenter = "com"

// NormalizeDataCenter maps unknown or empty data centers to "com".
func NormalizeDataCenter(dc string) string {
	if _, ok := accountsBaseURLs[dc]; ok {
		return dc
	}
	return defaultDataCenter
}

func AccountsBaseURL(dc string) string {
	return accountsBaseURLs[NormalizeDataCenter(dc)]
}

func InventoryApiBaseURL(dc string) string {
	return apiBaseURLs[NormalizeDataCenter(dc)]
}
