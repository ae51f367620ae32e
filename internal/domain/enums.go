package domain

import "github.com/kapu/appsflyer-remote-command-go/internal/util"

type MediationNetwork string

const (
	MediationIronSource                MediationNetwork = "ironsource"
	MediationAppLovinMax               MediationNetwork = "applovinmax"
	MediationGoogleAdMob               MediationNetwork = "googleadmob"
	MediationFyber                     MediationNetwork = "fyber"
	MediationAppodeal                  MediationNetwork = "appodeal"
	MediationAdmost                    MediationNetwork = "admost"
	MediationTopon                     MediationNetwork = "topon"
	MediationTradplus                  MediationNetwork = "tradplus"
	MediationYandex                    MediationNetwork = "yandex"
	MediationChartboost                MediationNetwork = "chartboost"
	MediationUnity                     MediationNetwork = "unity"
	MediationToponPte                  MediationNetwork = "toponpte"
	MediationCustom                    MediationNetwork = "custommediation"
	MediationDirectMonetizationNetwork MediationNetwork = "directmonetizationnetwork"
)

var mediationNetworks = map[string]MediationNetwork{
	"ironsource":                MediationIronSource,
	"applovinmax":               MediationAppLovinMax,
	"applovin":                  MediationAppLovinMax,
	"googleadmob":               MediationGoogleAdMob,
	"admob":                     MediationGoogleAdMob,
	"fyber":                     MediationFyber,
	"appodeal":                  MediationAppodeal,
	"admost":                    MediationAdmost,
	"topon":                     MediationTopon,
	"tradplus":                  MediationTradplus,
	"yandex":                    MediationYandex,
	"chartboost":                MediationChartboost,
	"unity":                     MediationUnity,
	"toponpte":                  MediationToponPte,
	"custommediation":           MediationCustom,
	"custom":                    MediationCustom,
	"directmonetizationnetwork": MediationDirectMonetizationNetwork,
	"directmonetization":        MediationDirectMonetizationNetwork,
}

// ParseMediationNetwork resolves a network name case-insensitively, ignoring
// separators ("Google_AdMob" → googleadmob).
func ParseMediationNetwork(value string) (MediationNetwork, bool) {
	network, ok := mediationNetworks[util.NormalizeKey(value)]
	return network, ok
}

func (m MediationNetwork) String() string {
	return string(m)
}

type PurchaseType string

const (
	PurchaseOneTime      PurchaseType = "one_time_purchase"
	PurchaseSubscription PurchaseType = "subscription"
)

var purchaseTypes = map[string]PurchaseType{
	"onetimepurchase": PurchaseOneTime,
	"onetime":         PurchaseOneTime,
	"inapp":           PurchaseOneTime,
	"purchase":        PurchaseOneTime,
	"subscription":    PurchaseSubscription,
	"subs":            PurchaseSubscription,
	"subscribe":       PurchaseSubscription,
}

func ParsePurchaseType(value string) (PurchaseType, bool) {
	purchaseType, ok := purchaseTypes[util.NormalizeKey(value)]
	return purchaseType, ok
}

func (p PurchaseType) String() string {
	return string(p)
}

type EmailHashType string

const (
	EmailHashNone   EmailHashType = "none"
	EmailHashSHA256 EmailHashType = "sha256"
)

// ParseEmailHashType accepts the hash type by name or by its SDK ordinal
// (0 none, 1 sha256).
func ParseEmailHashType(value string) (EmailHashType, bool) {
	switch util.NormalizeKey(value) {
	case "none", "0":
		return EmailHashNone, true
	case "sha256", "1":
		return EmailHashSHA256, true
	default:
		return EmailHashNone, false
	}
}

func (e EmailHashType) String() string {
	return string(e)
}

type LogLevel string

const (
	LogLevelNone    LogLevel = "none"
	LogLevelError   LogLevel = "error"
	LogLevelWarning LogLevel = "warning"
	LogLevelInfo    LogLevel = "info"
	LogLevelDebug   LogLevel = "debug"
	LogLevelVerbose LogLevel = "verbose"
)

func ParseLogLevel(value string) (LogLevel, bool) {
	switch util.Normalize(value) {
	case "none", "off":
		return LogLevelNone, true
	case "error":
		return LogLevelError, true
	case "warning", "warn":
		return LogLevelWarning, true
	case "info":
		return LogLevelInfo, true
	case "debug":
		return LogLevelDebug, true
	case "verbose":
		return LogLevelVerbose, true
	default:
		return "", false
	}
}

func (l LogLevel) String() string {
	return string(l)
}
