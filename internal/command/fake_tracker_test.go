package command

import (
	"sync"

	"github.com/kapu/appsflyer-remote-command-go/internal/domain"
)

type trackerCall struct {
	method string
	args   []any
}

// fakeTracker records every call in order. Methods listed in panicOn panic
// instead of recording.
type fakeTracker struct {
	mu      sync.Mutex
	calls   []trackerCall
	panicOn map[string]bool
}

func (f *fakeTracker) record(method string, args ...any) {
	if f.panicOn[method] {
		panic("fake tracker: " + method)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, trackerCall{method: method, args: args})
}

func (f *fakeTracker) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, call := range f.calls {
		if call.method == method {
			n++
		}
	}
	return n
}

func (f *fakeTracker) last(method string) (trackerCall, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].method == method {
			return f.calls[i], true
		}
	}
	return trackerCall{}, false
}

func (f *fakeTracker) methods() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.calls))
	for _, call := range f.calls {
		names = append(names, call.method)
	}
	return names
}

func (f *fakeTracker) Initialize(devKey string, settings map[string]any) {
	f.record("Initialize", devKey, settings)
}
func (f *fakeTracker) TrackEvent(eventType string, params map[string]any) {
	f.record("TrackEvent", eventType, params)
}
func (f *fakeTracker) TrackLocation(latitude, longitude float64) {
	f.record("TrackLocation", latitude, longitude)
}
func (f *fakeTracker) LogSession() { f.record("LogSession") }
func (f *fakeTracker) TrackLaunch() { f.record("TrackLaunch") }
func (f *fakeTracker) SetHost(host string) { f.record("SetHost", host) }
func (f *fakeTracker) SetHostWithPrefix(host, prefix string) {
	f.record("SetHostWithPrefix", host, prefix)
}
func (f *fakeTracker) SetAppID(appID string) { f.record("SetAppID", appID) }
func (f *fakeTracker) SetCurrencyCode(currency string) { f.record("SetCurrencyCode", currency) }
func (f *fakeTracker) SetCustomerID(id string) { f.record("SetCustomerID", id) }
func (f *fakeTracker) SetUserEmails(emails []string, hashType domain.EmailHashType) {
	f.record("SetUserEmails", emails, hashType)
}
func (f *fakeTracker) SetPhoneNumber(phoneNumber string) { f.record("SetPhoneNumber", phoneNumber) }
func (f *fakeTracker) SetOutOfStore(source string) { f.record("SetOutOfStore", source) }
func (f *fakeTracker) SetExtension(extension string) { f.record("SetExtension", extension) }
func (f *fakeTracker) SetIsUpdate(isUpdate bool) { f.record("SetIsUpdate", isUpdate) }
func (f *fakeTracker) SetPreinstallAttribution(mediaSource, campaign, siteID string) {
	f.record("SetPreinstallAttribution", mediaSource, campaign, siteID)
}
func (f *fakeTracker) SetMinTimeBetweenSessions(seconds int) {
	f.record("SetMinTimeBetweenSessions", seconds)
}
func (f *fakeTracker) SetDebugLog(enabled bool) { f.record("SetDebugLog", enabled) }
func (f *fakeTracker) SetLogLevel(level domain.LogLevel) { f.record("SetLogLevel", level) }
func (f *fakeTracker) WaitForCustomerUserID(wait bool) { f.record("WaitForCustomerUserID", wait) }
func (f *fakeTracker) AnonymizeUser(anonymize bool) { f.record("AnonymizeUser", anonymize) }
func (f *fakeTracker) DisableDeviceTracking(disable bool) { f.record("DisableDeviceTracking", disable) }
func (f *fakeTracker) StopTracking(stopped bool) { f.record("StopTracking", stopped) }
func (f *fakeTracker) SetDisableNetworkData(disable bool) { f.record("SetDisableNetworkData", disable) }
func (f *fakeTracker) SetDisableAdvertisingIdentifiers(disable bool) {
	f.record("SetDisableAdvertisingIdentifiers", disable)
}
func (f *fakeTracker) EnableAppSetIDCollection(enable bool) {
	f.record("EnableAppSetIDCollection", enable)
}
func (f *fakeTracker) EnableTCFDataCollection(enable bool) {
	f.record("EnableTCFDataCollection", enable)
}
func (f *fakeTracker) SetCollectAndroidID(collect bool) { f.record("SetCollectAndroidID", collect) }
func (f *fakeTracker) SetCollectIMEI(collect bool) { f.record("SetCollectIMEI", collect) }
func (f *fakeTracker) DisableAppSetID() { f.record("DisableAppSetID") }
func (f *fakeTracker) SetDeviceLanguage(language string) {
	f.record("SetDeviceLanguage", language)
}
func (f *fakeTracker) SetAndroidIDData(androidID string) {
	f.record("SetAndroidIDData", androidID)
}
func (f *fakeTracker) SetIMEIData(imei string) { f.record("SetIMEIData", imei) }
func (f *fakeTracker) SetOAIDData(oaid string) { f.record("SetOAIDData", oaid) }
func (f *fakeTracker) SetDMAConsentData(consent map[string]any) {
	f.record("SetDMAConsentData", consent)
}
func (f *fakeTracker) SetSharingFilterForPartners(partners []string) {
	f.record("SetSharingFilterForPartners", partners)
}
func (f *fakeTracker) ResolveDeepLinkURLs(urls []string) { f.record("ResolveDeepLinkURLs", urls) }
func (f *fakeTracker) AddPushNotificationDeepLinkPath(path []string) {
	f.record("AddPushNotificationDeepLinkPath", path)
}
func (f *fakeTracker) AppendParametersToDeepLinkURL(urlContains string, params map[string]string) {
	f.record("AppendParametersToDeepLinkURL", urlContains, params)
}
func (f *fakeTracker) SetAppInviteOneLink(oneLinkID string) { f.record("SetAppInviteOneLink", oneLinkID) }
func (f *fakeTracker) SetOneLinkCustomDomains(domains []string) {
	f.record("SetOneLinkCustomDomains", domains)
}
func (f *fakeTracker) EnableFacebookDeferredApplinks(enable bool) {
	f.record("EnableFacebookDeferredApplinks", enable)
}
func (f *fakeTracker) SendPushNotificationData(data map[string]any) {
	f.record("SendPushNotificationData", data)
}
func (f *fakeTracker) UpdateServerUninstallToken(token string) {
	f.record("UpdateServerUninstallToken", token)
}
func (f *fakeTracker) SetAdditionalData(data map[string]any) { f.record("SetAdditionalData", data) }
func (f *fakeTracker) AppendCustomData(data map[string]any) { f.record("AppendCustomData", data) }
func (f *fakeTracker) SetPartnerData(partnerID string, data map[string]any) {
	f.record("SetPartnerData", partnerID, data)
}
func (f *fakeTracker) LogAdRevenue(revenue domain.AdRevenue) { f.record("LogAdRevenue", revenue) }
func (f *fakeTracker) ValidateAndLogPurchase(purchase domain.PurchaseDetails) {
	f.record("ValidateAndLogPurchase", purchase)
}

var _ domain.Tracker = (*fakeTracker)(nil)
