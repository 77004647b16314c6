package device

import (
	"testing"

	"github.com/stretchr/testify/require"

	"aria/models"
)

func TestCleanPhone(t *testing.T) {
	require.Equal(t, "+919876543210", CleanPhone("+91 98765 43210"))
	require.Equal(t, "55501001", CleanPhone("(555) 0100 ext. 1"))
	require.Equal(t, "", CleanPhone("John"))
}

func TestMessageURI(t *testing.T) {
	uri := MessageURI(models.ChannelWhatsApp, "+91 98765 43210", "hello there")
	require.Equal(t, "https://api.whatsapp.com/send?phone=+919876543210&text=hello+there", uri)

	uri = MessageURI(models.ChannelEmail, "bob@example.com", "report is ready")
	require.Equal(t, "mailto:bob@example.com?body=report+is+ready", uri)

	uri = MessageURI(models.ChannelSMS, "+15550100", "hi")
	require.Equal(t, "sms:+15550100?body=hi", uri)
}

func TestCabURI(t *testing.T) {
	require.Equal(t,
		"uber://?action=setPickup&pickup=my_location&dropoff[formatted_address]=airport",
		CabURI(models.CabUber, "airport"))
	require.Equal(t,
		"ola://app/booking?dropoff_name=Pune+Station",
		CabURI(models.CabOla, "Pune Station"))
}

func TestSearchURI(t *testing.T) {
	uri, ok := SearchURI(models.AppMaps, "central park")
	require.True(t, ok)
	require.Equal(t, "geo:0,0?q=central+park", uri)

	uri, ok = SearchURI(models.AppBrowser, "pizza recipes")
	require.True(t, ok)
	require.Equal(t, "https://www.google.com/search?q=pizza+recipes", uri)

	uri, ok = SearchURI("amazon", "headphones")
	require.True(t, ok)
	require.Equal(t, "https://www.amazon.in/s?k=headphones", uri)

	_, ok = SearchURI("NETFLIX", "space documentaries")
	require.False(t, ok)
}
