package device

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"aria/models"
)

var nonPhoneRe = regexp.MustCompile(`[^0-9+]`)

// CleanPhone strips everything but digits and a leading plus.
func CleanPhone(number string) string {
	return nonPhoneRe.ReplaceAllString(number, "")
}

// MessageURI builds the deep link the device fires to hand a message to the
// target app. URI shapes match the launch intents the app already uses.
func MessageURI(channel models.Channel, target, body string) string {
	switch channel {
	case models.ChannelWhatsApp:
		return fmt.Sprintf("https://api.whatsapp.com/send?phone=%s&text=%s",
			CleanPhone(target), url.QueryEscape(body))
	case models.ChannelEmail:
		return fmt.Sprintf("mailto:%s?body=%s", target, url.QueryEscape(body))
	case models.ChannelSMS:
		return fmt.Sprintf("sms:%s?body=%s", CleanPhone(target), url.QueryEscape(body))
	case models.ChannelSlack:
		return "slack://open"
	default:
		return fmt.Sprintf("sms:%s?body=%s", CleanPhone(target), url.QueryEscape(body))
	}
}

// CabURI builds the ride-hailing deep link towards a destination.
func CabURI(provider models.CabProvider, destination string) string {
	if provider == models.CabOla {
		return fmt.Sprintf("ola://app/booking?dropoff_name=%s", url.QueryEscape(destination))
	}
	return fmt.Sprintf("uber://?action=setPickup&pickup=my_location&dropoff[formatted_address]=%s",
		url.QueryEscape(destination))
}

// SearchURI builds the app-search deep link for a target app. The second
// return is false when no protocol is defined for the app.
func SearchURI(app, query string) (string, bool) {
	q := url.QueryEscape(query)
	switch strings.ToUpper(app) {
	case models.AppMaps:
		return "geo:0,0?q=" + q, true
	case models.AppBrowser:
		return "https://www.google.com/search?q=" + q, true
	case "AMAZON":
		return "https://www.amazon.in/s?k=" + q, true
	case "ZOMATO":
		return "zomato://search?q=" + q, true
	case "YOUTUBE":
		return "https://www.youtube.com/results?search_query=" + q, true
	case "SWIGGY":
		return "swiggy://search?query=" + q, true
	case "RAPIDO":
		return "market://details?id=com.rapido.passenger", true
	default:
		return "", false
	}
}
