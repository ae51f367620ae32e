package bridge

import (
	"context"

	"github.com/kapu/appsflyer-remote-command-go/internal/domain"
	"go.uber.org/zap"
)

// Tracker forwards every domain.Tracker call to the operations queue, where
// the SDK side of the bridge replays it. Publish failures are logged and
// dropped.
type Tracker struct {
	publisher *Publisher
	queue     string
	devKey    string
	logger    *zap.Logger
}

type TrackerConfig struct {
	Queue string
	// DevKey is used when initialize arrives without app_dev_key.
	DevKey string
}

func NewTracker(publisher *Publisher, cfg TrackerConfig, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		publisher: publisher,
		queue:     cfg.Queue,
		devKey:    cfg.DevKey,
		logger:    logger,
	}
}

var _ domain.Tracker = (*Tracker)(nil)

func (t *Tracker) send(operation string, args map[string]any) {
	op := newOperation(operation, args)
	if err := t.publisher.Publish(context.Background(), t.queue, operation, op); err != nil {
		t.logger.Error("Failed to forward tracker call",
			zap.String("operation", operation),
			zap.String("request_id", op.RequestID),
			zap.Error(err),
		)
	}
}

func (t *Tracker) Initialize(devKey string, settings map[string]any) {
	if devKey == "" {
		devKey = t.devKey
	}
	if devKey == "" {
		t.logger.Error("Cannot initialize AppsFlyer without a dev key")
		return
	}
	t.send("initialize", map[string]any{"dev_key": devKey, "settings": settings})
}

func (t *Tracker) TrackEvent(eventType string, params map[string]any) {
	t.send("track_event", map[string]any{"event_type": eventType, "params": params})
}

func (t *Tracker) TrackLocation(latitude, longitude float64) {
	t.send("track_location", map[string]any{"latitude": latitude, "longitude": longitude})
}

func (t *Tracker) LogSession() {
	t.send("log_session", nil)
}

// TrackLaunch asks the SDK side to start tracking the current launch.
func (t *Tracker) TrackLaunch() {
	t.send("track_launch", nil)
}

func (t *Tracker) SetHost(host string) {
	t.send("set_host", map[string]any{"host": host})
}

func (t *Tracker) SetHostWithPrefix(host, prefix string) {
	t.send("set_host", map[string]any{"host": host, "host_prefix": prefix})
}

func (t *Tracker) SetAppID(appID string) {
	t.send("set_app_id", map[string]any{"app_id": appID})
}

func (t *Tracker) SetCurrencyCode(currency string) {
	t.send("set_currency_code", map[string]any{"currency": currency})
}

func (t *Tracker) SetCustomerID(id string) {
	t.send("set_customer_user_id", map[string]any{"id": id})
}

func (t *Tracker) SetUserEmails(emails []string, hashType domain.EmailHashType) {
	t.send("set_user_emails", map[string]any{"emails": emails, "hash_type": hashType.String()})
}

func (t *Tracker) SetPhoneNumber(phoneNumber string) {
	t.send("set_phone_number", map[string]any{"phone_number": phoneNumber})
}

func (t *Tracker) SetOutOfStore(source string) {
	t.send("set_out_of_store", map[string]any{"source": source})
}

func (t *Tracker) SetExtension(extension string) {
	t.send("set_extension", map[string]any{"extension": extension})
}

func (t *Tracker) SetIsUpdate(isUpdate bool) {
	t.send("set_is_update", map[string]any{"value": isUpdate})
}

func (t *Tracker) SetPreinstallAttribution(mediaSource, campaign, siteID string) {
	t.send("set_preinstall_attribution", map[string]any{
		"media_source": mediaSource,
		"campaign":     campaign,
		"site_id":      siteID,
	})
}

func (t *Tracker) SetMinTimeBetweenSessions(seconds int) {
	t.send("set_min_time_between_sessions", map[string]any{"seconds": seconds})
}

func (t *Tracker) SetDebugLog(enabled bool) {
	t.send("set_debug_log", map[string]any{"value": enabled})
}

func (t *Tracker) SetLogLevel(level domain.LogLevel) {
	t.send("set_log_level", map[string]any{"level": level.String()})
}

func (t *Tracker) WaitForCustomerUserID(wait bool) {
	t.send("wait_for_customer_user_id", map[string]any{"value": wait})
}

func (t *Tracker) AnonymizeUser(anonymize bool) {
	t.send("anonymize_user", map[string]any{"value": anonymize})
}

func (t *Tracker) DisableDeviceTracking(disable bool) {
	t.send("disable_device_tracking", map[string]any{"value": disable})
}

func (t *Tracker) StopTracking(stopped bool) {
	t.send("stop_tracking", map[string]any{"value": stopped})
}

func (t *Tracker) SetDisableNetworkData(disable bool) {
	t.send("set_disable_network_data", map[string]any{"value": disable})
}

func (t *Tracker) SetDisableAdvertisingIdentifiers(disable bool) {
	t.send("set_disable_advertising_identifiers", map[string]any{"value": disable})
}

func (t *Tracker) EnableAppSetIDCollection(enable bool) {
	t.send("enable_appset_id_collection", map[string]any{"value": enable})
}

func (t *Tracker) EnableTCFDataCollection(enable bool) {
	t.send("enable_tcf_data_collection", map[string]any{"value": enable})
}

func (t *Tracker) SetCollectAndroidID(collect bool) {
	t.send("set_collect_android_id", map[string]any{"value": collect})
}

func (t *Tracker) SetCollectIMEI(collect bool) {
	t.send("set_collect_imei", map[string]any{"value": collect})
}

func (t *Tracker) DisableAppSetID() {
	t.send("disable_appset_id", nil)
}

func (t *Tracker) SetDeviceLanguage(language string) {
	t.send("set_device_language", map[string]any{"language": language})
}

func (t *Tracker) SetAndroidIDData(androidID string) {
	t.send("set_android_id_data", map[string]any{"android_id": androidID})
}

func (t *Tracker) SetIMEIData(imei string) {
	t.send("set_imei_data", map[string]any{"imei": imei})
}

func (t *Tracker) SetOAIDData(oaid string) {
	t.send("set_oaid_data", map[string]any{"oaid": oaid})
}

func (t *Tracker) SetDMAConsentData(consent map[string]any) {
	t.send("set_dma_consent_data", map[string]any{"consent": consent})
}

func (t *Tracker) SetSharingFilterForPartners(partners []string) {
	t.send("set_sharing_filter_for_partners", map[string]any{"partners": partners})
}

func (t *Tracker) ResolveDeepLinkURLs(urls []string) {
	t.send("resolve_deep_link_urls", map[string]any{"urls": urls})
}

func (t *Tracker) AddPushNotificationDeepLinkPath(path []string) {
	t.send("add_push_notification_deep_link_path", map[string]any{"path": path})
}

func (t *Tracker) AppendParametersToDeepLinkURL(urlContains string, params map[string]string) {
	t.send("append_parameters_to_deep_link_url", map[string]any{"url_contains": urlContains, "params": params})
}

func (t *Tracker) SetAppInviteOneLink(oneLinkID string) {
	t.send("set_app_invite_one_link", map[string]any{"onelink_id": oneLinkID})
}

func (t *Tracker) SetOneLinkCustomDomains(domains []string) {
	t.send("set_one_link_custom_domains", map[string]any{"domains": domains})
}

func (t *Tracker) EnableFacebookDeferredApplinks(enable bool) {
	t.send("enable_facebook_deferred_applinks", map[string]any{"value": enable})
}

func (t *Tracker) SendPushNotificationData(data map[string]any) {
	t.send("send_push_notification_data", map[string]any{"data": data})
}

func (t *Tracker) UpdateServerUninstallToken(token string) {
	t.send("update_server_uninstall_token", map[string]any{"token": token})
}

func (t *Tracker) SetAdditionalData(data map[string]any) {
	t.send("set_additional_data", map[string]any{"data": data})
}

func (t *Tracker) AppendCustomData(data map[string]any) {
	t.send("append_custom_data", map[string]any{"data": data})
}

func (t *Tracker) SetPartnerData(partnerID string, data map[string]any) {
	t.send("set_partner_data", map[string]any{"partner_id": partnerID, "data": data})
}

func (t *Tracker) LogAdRevenue(revenue domain.AdRevenue) {
	t.send("log_ad_revenue", map[string]any{
		"monetization_network":  revenue.MonetizationNetwork,
		"mediation_network":     revenue.MediationNetwork.String(),
		"revenue":               revenue.Revenue,
		"currency":              revenue.Currency,
		"additional_parameters": revenue.AdditionalParameters,
	})
}

func (t *Tracker) ValidateAndLogPurchase(purchase domain.PurchaseDetails) {
	t.send("validate_and_log_purchase", map[string]any{
		"purchase_type":         purchase.Type.String(),
		"purchase_token":        purchase.Token,
		"product_id":            purchase.ProductID,
		"price":                 purchase.Price,
		"currency":              purchase.Currency,
		"additional_parameters": purchase.AdditionalParameters,
	})
}
