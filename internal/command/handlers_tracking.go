package command

import (
	"math"

	"github.com/kapu/appsflyer-remote-command-go/internal/constants"
	"github.com/kapu/appsflyer-remote-command-go/internal/domain"
	"github.com/kapu/appsflyer-remote-command-go/internal/payload"
	"github.com/kapu/appsflyer-remote-command-go/pkg/errors"
	"go.uber.org/zap"
)

func (h *handlers) trackLocation(p payload.Payload) error {
	latitude := p.OptDouble(constants.Location.Latitude)
	longitude := p.OptDouble(constants.Location.Longitude)

	switch {
	case math.IsNaN(latitude) && math.IsNaN(longitude):
		return errors.NewMissingKeyError(domain.CommandTrackLocation.String(),
			constants.Location.Latitude+", "+constants.Location.Longitude)
	case math.IsNaN(latitude):
		return errors.NewMissingKeyError(domain.CommandTrackLocation.String(), constants.Location.Latitude)
	case math.IsNaN(longitude):
		return errors.NewMissingKeyError(domain.CommandTrackLocation.String(), constants.Location.Longitude)
	}

	h.tracker.TrackLocation(latitude, longitude)
	return nil
}

func (h *handlers) setHost(p payload.Payload) error {
	host, err := requireString(domain.CommandSetHost, p, constants.Host.Host)
	if err != nil {
		return err
	}

	if prefix := p.OptString(constants.Host.Prefix); prefix != "" {
		h.tracker.SetHostWithPrefix(host, prefix)
		return nil
	}
	h.tracker.SetHost(host)
	return nil
}

func (h *handlers) setUserEmails(p payload.Payload) error {
	return h.applyUserEmails(domain.CommandSetUserEmails, p)
}

// applyUserEmails falls back to unhashed emails when the hash type is not
// recognized, after logging the rejected value under command.
func (h *handlers) applyUserEmails(command domain.CommandType, p payload.Payload) error {
	emails, err := requireStringArray(command, p, constants.Customer.Emails)
	if err != nil {
		return err
	}

	hashType := domain.EmailHashNone
	if raw := p.OptString(constants.Customer.EmailHashType); raw != "" {
		parsed, ok := domain.ParseEmailHashType(raw)
		if !ok {
			logCommandError(h.logger, command.String(),
				errors.NewInvalidValueError(command.String(),
					constants.Customer.EmailHashType, raw, "expected none, sha256 or their ordinal"))
		}
		hashType = parsed
	}

	h.tracker.SetUserEmails(emails, hashType)
	return nil
}

func (h *handlers) setCurrencyCode(p payload.Payload) error {
	return h.setString(domain.CommandSetCurrencyCode, p, constants.Transaction.Currency, h.tracker.SetCurrencyCode)
}

func (h *handlers) setCustomerID(p payload.Payload) error {
	return h.setString(domain.CommandSetCustomerID, p, constants.Customer.UserID, h.tracker.SetCustomerID)
}

func (h *handlers) setPhoneNumber(p payload.Payload) error {
	return h.setString(domain.CommandSetPhoneNumber, p, constants.Customer.PhoneNumber, h.tracker.SetPhoneNumber)
}

func (h *handlers) setOutOfStore(p payload.Payload) error {
	return h.setString(domain.CommandSetOutOfStore, p, constants.Tracking.OutOfStore, h.tracker.SetOutOfStore)
}

func (h *handlers) setAppID(p payload.Payload) error {
	return h.setString(domain.CommandSetAppID, p, constants.Data.AppID, h.tracker.SetAppID)
}

func (h *handlers) setMinTimeBetweenSessions(p payload.Payload) error {
	seconds := p.OptInt(constants.Tracking.TimeBetweenSessions, constants.Defaults.MinTimeBetweenSessions)
	if seconds < 0 {
		return errors.NewInvalidValueError(domain.CommandSetMinTimeBetweenSessions.String(),
			constants.Tracking.TimeBetweenSessions, seconds, "must not be negative")
	}
	h.tracker.SetMinTimeBetweenSessions(seconds)
	return nil
}

func (h *handlers) logSession(payload.Payload) error {
	h.tracker.LogSession()
	return nil
}

func (h *handlers) launch(payload.Payload) error {
	h.tracker.TrackLaunch()
	return nil
}

func (h *handlers) setDeviceLanguage(p payload.Payload) error {
	return h.setString(domain.CommandSetDeviceLanguage, p, constants.Device.Language, h.tracker.SetDeviceLanguage)
}

func (h *handlers) setAndroidIDData(p payload.Payload) error {
	return h.setString(domain.CommandSetAndroidIDData, p, constants.Device.AndroidID, h.tracker.SetAndroidIDData)
}

func (h *handlers) setIMEIData(p payload.Payload) error {
	return h.setString(domain.CommandSetIMEIData, p, constants.Device.IMEI, h.tracker.SetIMEIData)
}

func (h *handlers) setOAIDData(p payload.Payload) error {
	return h.setString(domain.CommandSetOAIDData, p, constants.Device.OAID, h.tracker.SetOAIDData)
}

func (h *handlers) setPreinstallAttribution(p payload.Payload) error {
	command := domain.CommandSetPreinstallAttribution
	mediaSource, err := requireString(command, p, constants.Preinstall.MediaSource)
	if err != nil {
		return err
	}
	campaign, err := requireString(command, p, constants.Preinstall.Campaign)
	if err != nil {
		return err
	}

	h.tracker.SetPreinstallAttribution(mediaSource, campaign, p.OptString(constants.Preinstall.SiteID))
	return nil
}

func (h *handlers) setLogLevel(p payload.Payload) error {
	raw, err := requireString(domain.CommandSetLogLevel, p, constants.Tracking.LogLevel)
	if err != nil {
		return err
	}
	level, ok := domain.ParseLogLevel(raw)
	if !ok {
		return errors.NewInvalidValueError(domain.CommandSetLogLevel.String(),
			constants.Tracking.LogLevel, raw, "unknown log level")
	}
	h.tracker.SetLogLevel(level)
	return nil
}

func (h *handlers) anonymizeUser(p payload.Payload) error {
	return h.setFlag(p, constants.Tracking.AnonymizeUser, h.tracker.AnonymizeUser)
}

func (h *handlers) disableDeviceTracking(p payload.Payload) error {
	return h.setFlag(p, constants.Tracking.DisableDeviceTracking, h.tracker.DisableDeviceTracking)
}

func (h *handlers) stopTracking(p payload.Payload) error {
	return h.setFlag(p, constants.Tracking.StopTracking, h.tracker.StopTracking)
}

func (h *handlers) setDisableNetworkData(p payload.Payload) error {
	return h.setFlag(p, constants.Tracking.DisableNetworkData, h.tracker.SetDisableNetworkData)
}

func (h *handlers) enableAppSetIDCollection(p payload.Payload) error {
	return h.setFlag(p, constants.Tracking.EnableAppSetID, h.tracker.EnableAppSetIDCollection)
}

func (h *handlers) waitForCustomerUserID(p payload.Payload) error {
	return h.setFlag(p, constants.Tracking.WaitForCustomerUserID, h.tracker.WaitForCustomerUserID)
}

func (h *handlers) setIsUpdate(p payload.Payload) error {
	return h.setFlag(p, constants.Tracking.IsUpdate, h.tracker.SetIsUpdate)
}

func (h *handlers) setDisableAdvertisingIdentifiers(p payload.Payload) error {
	return h.setFlag(p, constants.Tracking.DisableAdvertisingIdentifiers, h.tracker.SetDisableAdvertisingIdentifiers)
}

func (h *handlers) enableTCFDataCollection(p payload.Payload) error {
	return h.setFlag(p, constants.Tracking.EnableTCFDataCollection, h.tracker.EnableTCFDataCollection)
}

// setDMAConsent forwards gdpr_applies and, only for GDPR users, whichever
// consent flags are present.
func (h *handlers) setDMAConsent(p payload.Payload) error {
	gdprApplies, ok := p.LookupBoolean(constants.DMAConsent.GDPRApplies)
	if !ok {
		return errors.NewMissingKeyError(domain.CommandSetDMAConsent.String(), constants.DMAConsent.GDPRApplies)
	}

	consent := map[string]any{
		constants.DMAConsent.GDPRApplies: gdprApplies,
	}
	if gdprApplies {
		for _, key := range []string{
			constants.DMAConsent.ConsentForDataUsage,
			constants.DMAConsent.ConsentForAdsPersonalization,
			constants.DMAConsent.ConsentForAdStorage,
		} {
			if value, present := p.LookupBoolean(key); present {
				consent[key] = value
			}
		}
	}

	h.tracker.SetDMAConsentData(consent)
	return nil
}

func (h *handlers) setSharingFilterForPartners(p payload.Payload) error {
	partners := p.OptStringArray(constants.Partner.Partners)
	if partners == nil {
		if single := p.OptString(constants.Partner.Partners); single != "" {
			partners = []string{single}
		}
	}
	if len(partners) == 0 {
		return errors.NewMissingKeyError(domain.CommandSetSharingFilterForPartners.String(), constants.Partner.Partners)
	}

	h.tracker.SetSharingFilterForPartners(partners)
	return nil
}

func (h *handlers) setString(command domain.CommandType, p payload.Payload, key string, set func(string)) error {
	value, err := requireString(command, p, key)
	if err != nil {
		return err
	}
	set(value)
	return nil
}

// setFlag passes a boolean key through; an absent key means false.
func (h *handlers) setFlag(p payload.Payload, key string, set func(bool)) error {
	value := p.OptBoolean(key, false)
	h.logger.Debug("Setting flag", zap.String("key", key), zap.Bool("value", value))
	set(value)
	return nil
}
