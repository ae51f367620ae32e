package command

import (
	"github.com/kapu/appsflyer-remote-command-go/internal/constants"
	"github.com/kapu/appsflyer-remote-command-go/internal/domain"
	"github.com/kapu/appsflyer-remote-command-go/internal/payload"
)

func (h *handlers) resolveDeepLinkURLs(p payload.Payload) error {
	urls, err := requireStringArray(domain.CommandResolveDeepLinkURLs, p, constants.DeepLink.URLs)
	if err != nil {
		return err
	}
	h.tracker.ResolveDeepLinkURLs(urls)
	return nil
}

func (h *handlers) addPushNotificationDeepLinkPath(p payload.Payload) error {
	path, err := requireStringArray(domain.CommandAddPushNotificationDeepLinkPath, p, constants.DeepLink.PushPath)
	if err != nil {
		return err
	}
	h.tracker.AddPushNotificationDeepLinkPath(path)
	return nil
}

func (h *handlers) appendParametersToDeepLinkURL(p payload.Payload) error {
	command := domain.CommandAppendParametersToDeepLinkURL
	urlContains, err := requireString(command, p, constants.DeepLink.URLContains)
	if err != nil {
		return err
	}
	params, err := requireObject(command, p, constants.DeepLink.URLParameters)
	if err != nil {
		return err
	}
	h.tracker.AppendParametersToDeepLinkURL(urlContains, payload.ToStringMap(params))
	return nil
}

func (h *handlers) sendPushNotificationData(p payload.Payload) error {
	data, err := requireObject(domain.CommandSendPushNotificationData, p, constants.DeepLink.PushPayload)
	if err != nil {
		return err
	}
	h.tracker.SendPushNotificationData(map[string]any(data))
	return nil
}

func (h *handlers) updateServerUninstallToken(p payload.Payload) error {
	return h.setString(domain.CommandUpdateServerUninstallToken, p, constants.DeepLink.UninstallToken, h.tracker.UpdateServerUninstallToken)
}
