package constants

import "time"

var Commands = struct {
	Key       string
	Separator string
}{
	Key:       "command_name",
	Separator: ",",
}

var Config = struct {
	AppID    string
	DevKey   string
	Settings string
	Debug    string
	Method   string
}{
	AppID:    "app_id",
	DevKey:   "app_dev_key",
	Settings: "settings",
	Debug:    "debug",
	Method:   "method",
}

// Settings lists the keys recognized inside the initialize settings object.
var Settings = struct {
	Debug                          string
	AnonymizeUser                  string
	TimeBetweenSessions            string
	CustomData                     string
	DisableNetworkData             string
	DisableAdTracking              string
	EnableAppSetID                 string
	DisableAppSetID                string
	EnableTCFDataCollection        string
	Host                           string
	HostPrefix                     string
	ResolveDeepLinks               string
	CustomerEmails                 string
	EmailHashType                  string
	AppInviteOneLinkID             string
	OneLinkCustomDomains           string
	CollectAndroidID               string
	CollectIMEI                    string
	LogLevel                       string
	WaitForCustomerUserID          string
	EnableFacebookDeferredApplinks string
	OutOfStore                     string
	IsUpdate                       string
	Extension                      string
	PreinstallAttribution          string
}{
	Debug:                          "debug",
	AnonymizeUser:                  "anonymize_user",
	TimeBetweenSessions:            "time_between_sessions",
	CustomData:                     "custom_data",
	DisableNetworkData:             "disable_network_data",
	DisableAdTracking:              "disable_ad_tracking",
	EnableAppSetID:                 "enable_appset_id",
	DisableAppSetID:                "disable_appset_id",
	EnableTCFDataCollection:        "enable_tcf_data_collection",
	Host:                           "host",
	HostPrefix:                     "host_prefix",
	ResolveDeepLinks:               "resolve_deep_links",
	CustomerEmails:                 "customer_emails",
	EmailHashType:                  "email_hash_type",
	AppInviteOneLinkID:             "app_invite_onelink_id",
	OneLinkCustomDomains:           "onelink_custom_domains",
	CollectAndroidID:               "collect_android_id",
	CollectIMEI:                    "collect_imei",
	LogLevel:                       "log_level",
	WaitForCustomerUserID:          "wait_for_customer_user_id",
	EnableFacebookDeferredApplinks: "enable_facebook_deferred_applinks",
	OutOfStore:                     "out_of_store",
	IsUpdate:                       "is_update",
	Extension:                      "extension",
	PreinstallAttribution:          "preinstall_attribution",
}

var Events = struct {
	Parameters      string
	ParametersShort string
}{
	Parameters:      "event_parameters",
	ParametersShort: "event",
}

var Customer = struct {
	UserID        string
	Emails        string
	EmailHashType string
	PhoneNumber   string
}{
	UserID:        "af_customer_user_id",
	Emails:        "customer_emails",
	EmailHashType: "email_hash_type",
	PhoneNumber:   "phone_number",
}

var Location = struct {
	Latitude  string
	Longitude string
}{
	Latitude:  "af_lat",
	Longitude: "af_long",
}

var Host = struct {
	Host   string
	Prefix string
}{
	Host:   "host",
	Prefix: "host_prefix",
}

var Transaction = struct {
	Currency string
}{
	Currency: "af_currency",
}

var DeepLink = struct {
	URLs           string
	PushPath       string
	URLContains    string
	URLParameters  string
	PushPayload    string
	UninstallToken string
}{
	URLs:           "af_deep_link",
	PushPath:       "deep_link_path",
	URLContains:    "url_contains",
	URLParameters:  "deep_link_parameters",
	PushPayload:    "push_payload",
	UninstallToken: "uninstall_token",
}

var Tracking = struct {
	AnonymizeUser                 string
	DisableDeviceTracking         string
	StopTracking                  string
	DisableNetworkData            string
	EnableAppSetID                string
	WaitForCustomerUserID         string
	IsUpdate                      string
	DisableAdvertisingIdentifiers string
	EnableTCFDataCollection       string
	TimeBetweenSessions           string
	OutOfStore                    string
	LogLevel                      string
	IsFirstLaunch                 string
}{
	AnonymizeUser:                 "anonymize_user",
	DisableDeviceTracking:         "disable_device_tracking",
	StopTracking:                  "stop_tracking",
	DisableNetworkData:            "disable_network_data",
	EnableAppSetID:                "enable_appset_id",
	WaitForCustomerUserID:         "wait_for_customer_user_id",
	IsUpdate:                      "is_update",
	DisableAdvertisingIdentifiers: "disable_ad_tracking",
	EnableTCFDataCollection:       "enable_tcf_data_collection",
	TimeBetweenSessions:           "time_between_sessions",
	OutOfStore:                    "out_of_store",
	LogLevel:                      "log_level",
	IsFirstLaunch:                 "is_first_launch",
}

var Device = struct {
	Language  string
	AndroidID string
	IMEI      string
	OAID      string
}{
	Language:  "device_language",
	AndroidID: "android_id",
	IMEI:      "imei",
	OAID:      "oaid",
}

var DMAConsent = struct {
	GDPRApplies                  string
	ConsentForDataUsage          string
	ConsentForAdsPersonalization string
	ConsentForAdStorage          string
}{
	GDPRApplies:                  "gdpr_applies",
	ConsentForDataUsage:          "consent_for_data_usage",
	ConsentForAdsPersonalization: "consent_for_ads_personalization",
	ConsentForAdStorage:          "consent_for_ad_storage",
}

var AdRevenue = struct {
	MonetizationNetwork  string
	MediationNetwork     string
	Revenue              string
	Currency             string
	AdditionalParameters string
}{
	MonetizationNetwork:  "monetization_network",
	MediationNetwork:     "mediation_network",
	Revenue:              "revenue",
	Currency:             "currency",
	AdditionalParameters: "additional_parameters",
}

var Purchase = struct {
	Type                 string
	Token                string
	ProductID            string
	Price                string
	Currency             string
	AdditionalParameters string
}{
	Type:                 "purchase_type",
	Token:                "purchase_token",
	ProductID:            "product_id",
	Price:                "price",
	Currency:             "currency",
	AdditionalParameters: "additional_parameters",
}

var Partner = struct {
	ID       string
	Data     string
	Partners string
}{
	ID:       "partner_id",
	Data:     "partner_data",
	Partners: "partners",
}

var Preinstall = struct {
	MediaSource string
	Campaign    string
	SiteID      string
}{
	MediaSource: "media_source",
	Campaign:    "campaign",
	SiteID:      "site_id",
}

var Data = struct {
	AdditionalData string
	CustomData     string
	AppID          string
}{
	AdditionalData: "additional_data",
	CustomData:     "custom_data",
	AppID:          "app_id",
}

// Callback event names forwarded to the host tracker.
var Callbacks = struct {
	ConversionDataReceived string
	AppOpenAttribution     string
	Error                  string
	ConversionDataFailure  string
	AttributionFailure     string
	ErrorName              string
	ErrorMessage           string
}{
	ConversionDataReceived: "conversion_data_received",
	AppOpenAttribution:     "app_open_attribution",
	Error:                  "appsflyer_error",
	ConversionDataFailure:  "conversion_data_request_failure",
	AttributionFailure:     "app_open_attribution_failure",
	ErrorName:              "error_name",
	ErrorMessage:           "error_message",
}

var Defaults = struct {
	CommandID              string
	CommandDescription     string
	MinTimeBetweenSessions int
}{
	CommandID:              "appsflyer",
	CommandDescription:     "AppsFlyer remote command",
	MinTimeBetweenSessions: 5,
}

var BridgeConfig = struct {
	OperationsQueue     string
	CallbacksQueue      string
	HostEventsQueue     string
	CommandsQueue       string
	PublishTimeout      time.Duration
	PollTimeout         time.Duration
	BreakerThreshold    int
	BreakerResetTimeout time.Duration
	WorkerConcurrency   int
}{
	OperationsQueue:     "appsflyer:operations",
	CallbacksQueue:      "appsflyer:callbacks",
	HostEventsQueue:     "appsflyer:host_events",
	CommandsQueue:       "appsflyer:commands",
	PublishTimeout:      3 * time.Second,
	PollTimeout:         5 * time.Second, // BLPOP 대기 시간
	BreakerThreshold:    5,
	BreakerResetTimeout: 30 * time.Second,
	WorkerConcurrency:   4,
}

var RedisConfig = struct {
	ReadyTimeout time.Duration
}{
	ReadyTimeout: 5 * time.Second,
}
