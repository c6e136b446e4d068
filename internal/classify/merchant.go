package classify

import (
	"regexp"
	"strings"
)

// knownMerchants maps label keywords to canonical merchant names, checked in
// order before any structural extraction.
var knownMerchants = []struct{ keyword, name string }{
	{"AMAZON", "Amazon"},
	{"SPOTIFY", "Spotify"},
	{"OPENAI", "OpenAI"},
	{"CHATGPT", "OpenAI"},
	{"APPLE", "Apple"},
	{"COM/BILL", "Apple"},
	{"MICROSOFT", "Microsoft"},
	{"MSBILL", "Microsoft"},
	{"SUBSCR", "Microsoft"},
	{"PAYPAL", "PayPal"},
	{"UBR*", "Uber"},
	{"UBER", "Uber"},
	{"BOLT", "Bolt"},
	{"SFR", "SFR"},
	{"ORANGE", "Orange"},
	{"FREE", "Free"},
	{"IMAGINE R", "RATP / Navigo"},
	{"NAVIGO", "RATP / Navigo"},
	{"RATP", "RATP / Navigo"},
}

var (
	cardMerchant  = regexp.MustCompile(`(?i)PAIEMENT\s+(?:CB|PSC)\s+\d{4}\s+(.+?)\s+CARTE`)
	merchantPunct = regexp.MustCompile(`[^a-zA-Z0-9'&-]+`)
)

// MerchantFromLabel extracts a display merchant name from a statement label.
// Only reporting uses it; stored records keep their labels untouched. Returns
// "Inconnu" when nothing usable remains.
func MerchantFromLabel(label string) string {
	upper := strings.ToUpper(label)
	for _, m := range knownMerchants {
		if strings.Contains(upper, m.keyword) {
			return m.name
		}
	}

	// Card payment shape: the merchant sits between the 4-digit code and the
	// CARTE suffix; keep the trailing tokens, which carry the merchant name.
	if m := cardMerchant.FindStringSubmatch(label); m != nil {
		parts := strings.Fields(m[1])
		if len(parts) > 3 {
			parts = parts[len(parts)-3:]
		}
		tail := strings.TrimSpace(merchantPunct.ReplaceAllString(strings.Join(parts, " "), " "))
		return titleCase(tail)
	}

	cleaned := strings.TrimSpace(merchantPunct.ReplaceAllString(CleanLabel(label), " "))
	words := strings.Fields(cleaned)
	if len(words) == 0 {
		return "Inconnu"
	}
	if len(words) > 3 {
		words = words[:3]
	}
	return titleCase(strings.Join(words, " "))
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
