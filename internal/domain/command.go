package domain

type CommandType string

const (
	CommandInitialize                       CommandType = "initialize"
	CommandTrackLocation                    CommandType = "tracklocation"
	CommandSetHost                          CommandType = "sethost"
	CommandSetUserEmails                    CommandType = "setuseremails"
	CommandSetCurrencyCode                  CommandType = "setcurrencycode"
	CommandSetCustomerID                    CommandType = "setcustomerid"
	CommandAnonymizeUser                    CommandType = "anonymizeuser"
	CommandDisableDeviceTracking            CommandType = "disabledevicetracking"
	CommandResolveDeepLinkURLs              CommandType = "resolvedeeplinkurls"
	CommandStopTracking                     CommandType = "stoptracking"
	CommandSetDisableNetworkData            CommandType = "setdisablenetworkdata"
	CommandEnableAppSetIDCollection         CommandType = "enableappsetidcollection"
	CommandSetDMAConsent                    CommandType = "setdmaconsent"
	CommandLogAdRevenue                     CommandType = "logadrevenue"
	CommandValidateAndLogPurchase           CommandType = "validateandlogpurchase"
	CommandSetPhoneNumber                   CommandType = "setphonenumber"
	CommandSetOutOfStore                    CommandType = "setoutofstore"
	CommandSetAppID                         CommandType = "setappid"
	CommandUpdateServerUninstallToken       CommandType = "updateserveruninstalltoken"
	CommandAddPushNotificationDeepLinkPath  CommandType = "addpushnotificationdeeplinkpath"
	CommandSetSharingFilterForPartners      CommandType = "setsharingfilterforpartners"
	CommandSetAdditionalData                CommandType = "setadditionaldata"
	CommandAppendCustomData                 CommandType = "appendcustomdata"
	CommandSetMinTimeBetweenSessions        CommandType = "setmintimebetweensessions"
	CommandLogSession                       CommandType = "logsession"
	CommandSendPushNotificationData         CommandType = "sendpushnotificationdata"
	CommandWaitForCustomerUserID            CommandType = "waitforcustomeruserid"
	CommandSetIsUpdate                      CommandType = "setisupdate"
	CommandSetDisableAdvertisingIdentifiers CommandType = "setdisableadvertisingidentifiers"
	CommandEnableTCFDataCollection          CommandType = "enabletcfdatacollection"
	CommandSetPartnerData                   CommandType = "setpartnerdata"
	CommandAppendParametersToDeepLinkURL    CommandType = "appendparameterstodeeplinkurl"
	CommandSetPreinstallAttribution         CommandType = "setpreinstallattribution"
	CommandSetLogLevel                      CommandType = "setloglevel"
	CommandLaunch                           CommandType = "launch"
	CommandSetDeviceLanguage                CommandType = "setdevicelanguage"
	CommandSetAndroidIDData                 CommandType = "setandroididdata"
	CommandSetIMEIData                      CommandType = "setimeidata"
	CommandSetOAIDData                      CommandType = "setoaiddata"
)

// ControlCommands is the fixed control vocabulary in registration order.
var ControlCommands = []CommandType{
	CommandInitialize,
	CommandTrackLocation,
	CommandSetHost,
	CommandSetUserEmails,
	CommandSetCurrencyCode,
	CommandSetCustomerID,
	CommandAnonymizeUser,
	CommandDisableDeviceTracking,
	CommandResolveDeepLinkURLs,
	CommandStopTracking,
	CommandSetDisableNetworkData,
	CommandEnableAppSetIDCollection,
	CommandSetDMAConsent,
	CommandLogAdRevenue,
	CommandValidateAndLogPurchase,
	CommandSetPhoneNumber,
	CommandSetOutOfStore,
	CommandSetAppID,
	CommandUpdateServerUninstallToken,
	CommandAddPushNotificationDeepLinkPath,
	CommandSetSharingFilterForPartners,
	CommandSetAdditionalData,
	CommandAppendCustomData,
	CommandSetMinTimeBetweenSessions,
	CommandLogSession,
	CommandSendPushNotificationData,
	CommandWaitForCustomerUserID,
	CommandSetIsUpdate,
	CommandSetDisableAdvertisingIdentifiers,
	CommandEnableTCFDataCollection,
	CommandSetPartnerData,
	CommandAppendParametersToDeepLinkURL,
	CommandSetPreinstallAttribution,
	CommandSetLogLevel,
	CommandLaunch,
	CommandSetDeviceLanguage,
	CommandSetAndroidIDData,
	CommandSetIMEIData,
	CommandSetOAIDData,
}

var controlCommandIndex = func() map[string]CommandType {
	index := make(map[string]CommandType, len(ControlCommands))
	for _, c := range ControlCommands {
		index[string(c)] = c
	}
	return index
}()

func (c CommandType) String() string {
	return string(c)
}

// isControl reports whether key, already stripped of separators, names a
// control command.
func isControl(key string) bool {
	_, ok := controlCommandIndex[key]
	return ok
}
