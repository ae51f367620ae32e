package command

import (
	"github.com/kapu/appsflyer-remote-command-go/internal/constants"
	"github.com/kapu/appsflyer-remote-command-go/internal/domain"
	"github.com/kapu/appsflyer-remote-command-go/internal/payload"
	"github.com/kapu/appsflyer-remote-command-go/pkg/errors"
	"go.uber.org/zap"
)

// settingApplier applies one key of the initialize settings object. It
// reports whether the key was present.
type settingApplier func(settings payload.Payload) (bool, error)

// initialize applies every recognized setting in a fixed order and then starts
// the SDK. A missing dev key is reported but does not block the call; the
// adapter may supply its own.
func (h *handlers) initialize(p payload.Payload) error {
	devKey := p.OptString(constants.Config.DevKey)
	if devKey == "" {
		h.logger.Warn("app_dev_key is missing, initializing without one",
			zap.String("command", domain.CommandInitialize.String()),
			zap.String("key", constants.Config.DevKey),
		)
	}

	settings := p.OptObject(constants.Config.Settings)
	applied := 0
	for _, apply := range h.settingAppliers() {
		present, err := apply(settings)
		if err != nil {
			logCommandError(h.logger, domain.CommandInitialize.String(), err)
			continue
		}
		if present {
			applied++
		}
	}

	h.logger.Debug("Initializing tracker",
		zap.Bool("dev_key", devKey != ""),
		zap.Int("settings_applied", applied),
	)
	h.tracker.Initialize(devKey, payload.ToMap(settings))
	return nil
}

func (h *handlers) settingAppliers() []settingApplier {
	s := constants.Settings
	return []settingApplier{
		h.boolSetting(s.Debug, h.tracker.SetDebugLog),
		h.boolSetting(s.AnonymizeUser, h.tracker.AnonymizeUser),
		h.applyTimeBetweenSessions,
		h.applyCustomData,
		h.boolSetting(s.DisableNetworkData, h.tracker.SetDisableNetworkData),
		h.boolSetting(s.DisableAdTracking, h.tracker.SetDisableAdvertisingIdentifiers),
		h.boolSetting(s.EnableAppSetID, h.tracker.EnableAppSetIDCollection),
		h.applyDisableAppSetID,
		h.boolSetting(s.EnableTCFDataCollection, h.tracker.EnableTCFDataCollection),
		h.applyHost,
		h.stringArraySetting(s.ResolveDeepLinks, h.tracker.ResolveDeepLinkURLs),
		h.applyCustomerEmails,
		h.stringSetting(s.AppInviteOneLinkID, h.tracker.SetAppInviteOneLink),
		h.stringArraySetting(s.OneLinkCustomDomains, h.tracker.SetOneLinkCustomDomains),
		h.boolSetting(s.CollectAndroidID, h.tracker.SetCollectAndroidID),
		h.boolSetting(s.CollectIMEI, h.tracker.SetCollectIMEI),
		h.applyLogLevel,
		h.boolSetting(s.WaitForCustomerUserID, h.tracker.WaitForCustomerUserID),
		h.boolSetting(s.EnableFacebookDeferredApplinks, h.tracker.EnableFacebookDeferredApplinks),
		h.stringSetting(s.OutOfStore, h.tracker.SetOutOfStore),
		h.boolSetting(s.IsUpdate, h.tracker.SetIsUpdate),
		h.stringSetting(s.Extension, h.tracker.SetExtension),
		h.applyPreinstallAttribution,
	}
}

func (h *handlers) boolSetting(key string, set func(bool)) settingApplier {
	return func(settings payload.Payload) (bool, error) {
		if !settings.Has(key) {
			return false, nil
		}
		value, ok := settings.LookupBoolean(key)
		if !ok {
			return true, errors.NewInvalidValueError(domain.CommandInitialize.String(), key, settings[key], "expected a boolean")
		}
		set(value)
		return true, nil
	}
}

func (h *handlers) stringSetting(key string, set func(string)) settingApplier {
	return func(settings payload.Payload) (bool, error) {
		if !settings.Has(key) {
			return false, nil
		}
		value := settings.OptString(key)
		if value == "" {
			return true, errors.NewMissingKeyError(domain.CommandInitialize.String(), key)
		}
		set(value)
		return true, nil
	}
}

func (h *handlers) stringArraySetting(key string, set func([]string)) settingApplier {
	return func(settings payload.Payload) (bool, error) {
		if !settings.Has(key) {
			return false, nil
		}
		values := settings.OptStringArray(key)
		if values == nil {
			return true, errors.NewInvalidValueError(domain.CommandInitialize.String(), key, settings[key], "expected an array")
		}
		set(values)
		return true, nil
	}
}

func (h *handlers) applyTimeBetweenSessions(settings payload.Payload) (bool, error) {
	key := constants.Settings.TimeBetweenSessions
	if !settings.Has(key) {
		return false, nil
	}
	seconds, ok := settings.LookupInt(key)
	if !ok {
		return true, errors.NewInvalidValueError(domain.CommandInitialize.String(), key, settings[key], "expected an integer")
	}
	h.tracker.SetMinTimeBetweenSessions(seconds)
	return true, nil
}

// applyDisableAppSetID only acts on true; the SDK has no call to re-enable it.
func (h *handlers) applyDisableAppSetID(settings payload.Payload) (bool, error) {
	key := constants.Settings.DisableAppSetID
	if !settings.Has(key) {
		return false, nil
	}
	disable, ok := settings.LookupBoolean(key)
	if !ok {
		return true, errors.NewInvalidValueError(domain.CommandInitialize.String(), key, settings[key], "expected a boolean")
	}
	if disable {
		h.tracker.DisableAppSetID()
	}
	return true, nil
}

func (h *handlers) applyCustomData(settings payload.Payload) (bool, error) {
	key := constants.Settings.CustomData
	if !settings.Has(key) {
		return false, nil
	}
	data := settings.OptObject(key)
	if data == nil {
		return true, errors.NewInvalidValueError(domain.CommandInitialize.String(), key, settings[key], "expected an object")
	}
	h.tracker.SetAdditionalData(payload.ToMap(data))
	return true, nil
}

func (h *handlers) applyHost(settings payload.Payload) (bool, error) {
	if !settings.Has(constants.Settings.Host) {
		return false, nil
	}
	return true, h.setHost(settings)
}

func (h *handlers) applyCustomerEmails(settings payload.Payload) (bool, error) {
	if !settings.Has(constants.Settings.CustomerEmails) {
		return false, nil
	}
	return true, h.applyUserEmails(domain.CommandInitialize, settings)
}

func (h *handlers) applyLogLevel(settings payload.Payload) (bool, error) {
	if !settings.Has(constants.Settings.LogLevel) {
		return false, nil
	}
	return true, h.setLogLevel(settings)
}

func (h *handlers) applyPreinstallAttribution(settings payload.Payload) (bool, error) {
	key := constants.Settings.PreinstallAttribution
	if !settings.Has(key) {
		return false, nil
	}
	attribution := settings.OptObject(key)
	if attribution == nil {
		return true, errors.NewInvalidValueError(domain.CommandInitialize.String(), key, settings[key], "expected an object")
	}
	return true, h.setPreinstallAttribution(attribution)
}
