package command

import (
	"github.com/kapu/appsflyer-remote-command-go/internal/domain"
	"github.com/kapu/appsflyer-remote-command-go/internal/payload"
	"github.com/kapu/appsflyer-remote-command-go/pkg/errors"
	"go.uber.org/zap"
)

// handlers binds the built-in control commands to one tracker.
type handlers struct {
	tracker domain.Tracker
	logger  *zap.Logger
}

func builtinCommands(tracker domain.Tracker, logger *zap.Logger) []Command {
	h := &handlers{tracker: tracker, logger: logger}

	return []Command{
		newCommand(domain.CommandInitialize, h.initialize),
		newCommand(domain.CommandTrackLocation, h.trackLocation),
		newCommand(domain.CommandSetHost, h.setHost),
		newCommand(domain.CommandSetUserEmails, h.setUserEmails),
		newCommand(domain.CommandSetCurrencyCode, h.setCurrencyCode),
		newCommand(domain.CommandSetCustomerID, h.setCustomerID),
		newCommand(domain.CommandSetPhoneNumber, h.setPhoneNumber),
		newCommand(domain.CommandSetOutOfStore, h.setOutOfStore),
		newCommand(domain.CommandSetAppID, h.setAppID),
		newCommand(domain.CommandSetMinTimeBetweenSessions, h.setMinTimeBetweenSessions),
		newCommand(domain.CommandLogSession, h.logSession),
		newCommand(domain.CommandSetPreinstallAttribution, h.setPreinstallAttribution),
		newCommand(domain.CommandSetLogLevel, h.setLogLevel),
		newCommand(domain.CommandLaunch, h.launch),
		newCommand(domain.CommandSetDeviceLanguage, h.setDeviceLanguage),
		newCommand(domain.CommandSetAndroidIDData, h.setAndroidIDData),
		newCommand(domain.CommandSetIMEIData, h.setIMEIData),
		newCommand(domain.CommandSetOAIDData, h.setOAIDData),

		newCommand(domain.CommandAnonymizeUser, h.anonymizeUser),
		newCommand(domain.CommandDisableDeviceTracking, h.disableDeviceTracking),
		newCommand(domain.CommandStopTracking, h.stopTracking),
		newCommand(domain.CommandSetDisableNetworkData, h.setDisableNetworkData),
		newCommand(domain.CommandEnableAppSetIDCollection, h.enableAppSetIDCollection),
		newCommand(domain.CommandWaitForCustomerUserID, h.waitForCustomerUserID),
		newCommand(domain.CommandSetIsUpdate, h.setIsUpdate),
		newCommand(domain.CommandSetDisableAdvertisingIdentifiers, h.setDisableAdvertisingIdentifiers),
		newCommand(domain.CommandEnableTCFDataCollection, h.enableTCFDataCollection),
		newCommand(domain.CommandSetDMAConsent, h.setDMAConsent),
		newCommand(domain.CommandSetSharingFilterForPartners, h.setSharingFilterForPartners),

		newCommand(domain.CommandResolveDeepLinkURLs, h.resolveDeepLinkURLs),
		newCommand(domain.CommandAddPushNotificationDeepLinkPath, h.addPushNotificationDeepLinkPath),
		newCommand(domain.CommandAppendParametersToDeepLinkURL, h.appendParametersToDeepLinkURL),
		newCommand(domain.CommandSendPushNotificationData, h.sendPushNotificationData),
		newCommand(domain.CommandUpdateServerUninstallToken, h.updateServerUninstallToken),

		newCommand(domain.CommandSetAdditionalData, h.setAdditionalData),
		newCommand(domain.CommandAppendCustomData, h.appendCustomData),
		newCommand(domain.CommandSetPartnerData, h.setPartnerData),
		newCommand(domain.CommandLogAdRevenue, h.logAdRevenue),
		newCommand(domain.CommandValidateAndLogPurchase, h.validateAndLogPurchase),
	}
}

func requireString(command domain.CommandType, p payload.Payload, key string) (string, error) {
	value := p.OptString(key)
	if value == "" {
		return "", errors.NewMissingKeyError(command.String(), key)
	}
	return value, nil
}

func requireStringArray(command domain.CommandType, p payload.Payload, key string) ([]string, error) {
	values := p.OptStringArray(key)
	if values == nil {
		return nil, errors.NewMissingKeyError(command.String(), key)
	}
	return values, nil
}

func requireObject(command domain.CommandType, p payload.Payload, key string) (payload.Payload, error) {
	obj := p.OptObject(key)
	if obj == nil {
		return nil, errors.NewMissingKeyError(command.String(), key)
	}
	return obj, nil
}
