package domain

// Tracker is the seam between the command dispatcher and the attribution SDK.
// Every method is a single fire-and-forget call; implementations report their
// own failures.
type Tracker interface {
	Initialize(devKey string, settings map[string]any)
	TrackEvent(eventType string, params map[string]any)
	TrackLocation(latitude, longitude float64)
	LogSession()
	TrackLaunch()

	SetHost(host string)
	SetHostWithPrefix(host, prefix string)
	SetAppID(appID string)
	SetCurrencyCode(currency string)
	SetCustomerID(id string)
	SetUserEmails(emails []string, hashType EmailHashType)
	SetPhoneNumber(phoneNumber string)
	SetOutOfStore(source string)
	SetExtension(extension string)
	SetIsUpdate(isUpdate bool)
	SetPreinstallAttribution(mediaSource, campaign, siteID string)
	SetMinTimeBetweenSessions(seconds int)
	SetDebugLog(enabled bool)
	SetLogLevel(level LogLevel)
	WaitForCustomerUserID(wait bool)

	AnonymizeUser(anonymize bool)
	DisableDeviceTracking(disable bool)
	StopTracking(stopped bool)
	SetDisableNetworkData(disable bool)
	SetDisableAdvertisingIdentifiers(disable bool)
	EnableAppSetIDCollection(enable bool)
	EnableTCFDataCollection(enable bool)
	SetCollectAndroidID(collect bool)
	SetCollectIMEI(collect bool)
	DisableAppSetID()
	SetDeviceLanguage(language string)
	SetAndroidIDData(androidID string)
	SetIMEIData(imei string)
	SetOAIDData(oaid string)
	SetDMAConsentData(consent map[string]any)
	SetSharingFilterForPartners(partners []string)

	ResolveDeepLinkURLs(urls []string)
	AddPushNotificationDeepLinkPath(path []string)
	AppendParametersToDeepLinkURL(urlContains string, params map[string]string)
	SetAppInviteOneLink(oneLinkID string)
	SetOneLinkCustomDomains(domains []string)
	EnableFacebookDeferredApplinks(enable bool)
	SendPushNotificationData(data map[string]any)
	UpdateServerUninstallToken(token string)

	SetAdditionalData(data map[string]any)
	AppendCustomData(data map[string]any)
	SetPartnerData(partnerID string, data map[string]any)

	LogAdRevenue(revenue AdRevenue)
	ValidateAndLogPurchase(purchase PurchaseDetails)
}

// AdRevenue describes one impression-level ad revenue record.
type AdRevenue struct {
	MonetizationNetwork  string
	MediationNetwork     MediationNetwork
	Revenue              float64
	Currency             string
	AdditionalParameters map[string]any
}

// PurchaseDetails describes an in-app purchase sent for validation.
type PurchaseDetails struct {
	Type                 PurchaseType
	Token                string
	ProductID            string
	Price                string
	Currency             string
	AdditionalParameters map[string]string
}
