package command

import (
	"math"

	"github.com/kapu/appsflyer-remote-command-go/internal/constants"
	"github.com/kapu/appsflyer-remote-command-go/internal/domain"
	"github.com/kapu/appsflyer-remote-command-go/internal/payload"
	"github.com/kapu/appsflyer-remote-command-go/pkg/errors"
)

// logAdRevenue requires every field but additional_parameters. The mediation
// network must be one the SDK knows and revenue must be positive.
func (h *handlers) logAdRevenue(p payload.Payload) error {
	command := domain.CommandLogAdRevenue
	keys := constants.AdRevenue

	monetization, err := requireString(command, p, keys.MonetizationNetwork)
	if err != nil {
		return err
	}
	rawNetwork, err := requireString(command, p, keys.MediationNetwork)
	if err != nil {
		return err
	}
	network, ok := domain.ParseMediationNetwork(rawNetwork)
	if !ok {
		return errors.NewInvalidValueError(command.String(), keys.MediationNetwork, rawNetwork, "unknown mediation network")
	}

	revenue := p.OptDouble(keys.Revenue)
	if math.IsNaN(revenue) {
		return errors.NewMissingKeyError(command.String(), keys.Revenue)
	}
	if revenue <= 0 {
		return errors.NewInvalidValueError(command.String(), keys.Revenue, revenue, "must be a positive number")
	}

	currency, err := requireString(command, p, keys.Currency)
	if err != nil {
		return err
	}

	var additional map[string]any
	if params := p.OptObject(keys.AdditionalParameters); params != nil {
		additional = payload.ToMap(params)
	}

	h.tracker.LogAdRevenue(domain.AdRevenue{
		MonetizationNetwork:  monetization,
		MediationNetwork:     network,
		Revenue:              revenue,
		Currency:             currency,
		AdditionalParameters: additional,
	})
	return nil
}

func (h *handlers) validateAndLogPurchase(p payload.Payload) error {
	command := domain.CommandValidateAndLogPurchase
	keys := constants.Purchase

	rawType, err := requireString(command, p, keys.Type)
	if err != nil {
		return err
	}
	purchaseType, ok := domain.ParsePurchaseType(rawType)
	if !ok {
		return errors.NewInvalidValueError(command.String(), keys.Type, rawType, "expected one_time_purchase or subscription")
	}

	details := domain.PurchaseDetails{Type: purchaseType}
	for _, field := range []struct {
		key    string
		target *string
	}{
		{keys.Token, &details.Token},
		{keys.ProductID, &details.ProductID},
		{keys.Price, &details.Price},
		{keys.Currency, &details.Currency},
	} {
		value, err := requireString(command, p, field.key)
		if err != nil {
			return err
		}
		*field.target = value
	}

	if params := p.OptObject(keys.AdditionalParameters); params != nil {
		details.AdditionalParameters = payload.ToStringMap(params)
	}

	h.tracker.ValidateAndLogPurchase(details)
	return nil
}

func (h *handlers) setAdditionalData(p payload.Payload) error {
	data, err := requireObject(domain.CommandSetAdditionalData, p, constants.Data.AdditionalData)
	if err != nil {
		return err
	}
	h.tracker.SetAdditionalData(payload.ToMap(data))
	return nil
}

func (h *handlers) appendCustomData(p payload.Payload) error {
	data, err := requireObject(domain.CommandAppendCustomData, p, constants.Data.CustomData)
	if err != nil {
		return err
	}
	h.tracker.AppendCustomData(payload.ToMap(data))
	return nil
}

func (h *handlers) setPartnerData(p payload.Payload) error {
	partnerID, err := requireString(domain.CommandSetPartnerData, p, constants.Partner.ID)
	if err != nil {
		return err
	}
	data, err := requireObject(domain.CommandSetPartnerData, p, constants.Partner.Data)
	if err != nil {
		return err
	}
	h.tracker.SetPartnerData(partnerID, payload.ToMap(data))
	return nil
}
