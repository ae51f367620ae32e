package domain

import "github.com/kapu/appsflyer-remote-command-go/internal/util"

// AppsFlyer in-app event types.
const (
	EventLevelAchieved              = "af_level_achieved"
	EventAddPaymentInfo             = "af_add_payment_info"
	EventAddToCart                  = "af_add_to_cart"
	EventAddToWishList              = "af_add_to_wishlist"
	EventCompleteRegistration       = "af_complete_registration"
	EventTutorialCompletion         = "af_tutorial_completion"
	EventInitiatedCheckout          = "af_initiated_checkout"
	EventPurchase                   = "af_purchase"
	EventSubscribe                  = "af_subscribe"
	EventStartTrial                 = "af_start_trial"
	EventRate                       = "af_rate"
	EventSearch                     = "af_search"
	EventSpentCredits               = "af_spent_credits"
	EventAchievementUnlocked        = "af_achievement_unlocked"
	EventContentView                = "af_content_view"
	EventListView                   = "af_list_view"
	EventAdClick                    = "af_ad_click"
	EventAdView                     = "af_ad_view"
	EventTravelBooking              = "af_travel_booking"
	EventShare                      = "af_share"
	EventInvite                     = "af_invite"
	EventLogin                      = "af_login"
	EventReEngage                   = "af_re_engage"
	EventOpenedFromPushNotification = "af_opened_from_push_notification"
	EventUpdate                     = "af_update"
	EventLocationCoordinates        = "af_location_coordinates"
	EventCustomerSegment            = "af_customer_segment"
)

// standardEvents maps compacted tag-management event names to AppsFlyer
// event types. Keys must already be in util.NormalizeKey form.
var standardEvents = map[string]string{
	"levelachieved":            EventLevelAchieved,
	"addpaymentinfo":           EventAddPaymentInfo,
	"addtocart":                EventAddToCart,
	"addtowishlist":            EventAddToWishList,
	"completeregistration":     EventCompleteRegistration,
	"tutorialcompletion":       EventTutorialCompletion,
	"initiatecheckout":         EventInitiatedCheckout,
	"purchase":                 EventPurchase,
	"subscribe":                EventSubscribe,
	"starttrial":               EventStartTrial,
	"rate":                     EventRate,
	"search":                   EventSearch,
	"spentcredits":             EventSpentCredits,
	"achievementunlocked":      EventAchievementUnlocked,
	"contentview":              EventContentView,
	"listview":                 EventListView,
	"adclick":                  EventAdClick,
	"adview":                   EventAdView,
	"travelbooking":            EventTravelBooking,
	"share":                    EventShare,
	"invite":                   EventInvite,
	"login":                    EventLogin,
	"reengage":                 EventReEngage,
	"openfrompushnotification": EventOpenedFromPushNotification,
	"update":                   EventUpdate,
	"locationcoordinates":      EventLocationCoordinates,
	"customersegment":          EventCustomerSegment,

	// loose aliases seen in tag configurations
	"checkout":                   EventInitiatedCheckout,
	"initiatedcheckout":          EventInitiatedCheckout,
	"wishlist":                   EventAddToWishList,
	"spentcredit":                EventSpentCredits,
	"reengagement":               EventReEngage,
	"registration":               EventCompleteRegistration,
	"signup":                     EventCompleteRegistration,
	"tutorialcompleted":          EventTutorialCompletion,
	"achievement":                EventAchievementUnlocked,
	"order":                      EventPurchase,
	"openedfrompushnotification": EventOpenedFromPushNotification,
}

// StandardEvent resolves a command token to an AppsFlyer event type.
func StandardEvent(token string) (string, bool) {
	key := util.NormalizeKey(token)
	if key == "" || isControl(key) {
		return "", false
	}
	eventType, ok := standardEvents[key]
	return eventType, ok
}

// StandardEventCount returns the number of alias entries.
func StandardEventCount() int {
	return len(standardEvents)
}
