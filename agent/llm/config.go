package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/premierbarber/barber-crew/agent/contract"
	openrouterx "github.com/premierbarber/barber-crew/pkg/openrouter"
)

// Config resolves one OpenRouter model config per persona, with optional
// per-persona model and temperature overrides over the shared defaults.
type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" required:"true"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"2000"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.7"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"60s"`
	SiteURL            string        `envconfig:"SITE_URL" split_words:"true"`
	SiteName           string        `envconfig:"SITE_NAME" split_words:"true"`

	ManagerModel            string  `envconfig:"MANAGER_MODEL" split_words:"true"`
	AppointmentModel        string  `envconfig:"APPOINTMENT_MODEL" split_words:"true"`
	ConsultantModel         string  `envconfig:"CONSULTANT_MODEL" split_words:"true"`
	PricingModel            string  `envconfig:"PRICING_MODEL" split_words:"true"`
	SupportModel            string  `envconfig:"SUPPORT_MODEL" split_words:"true"`
	ManagerTemperature      float32 `envconfig:"MANAGER_TEMPERATURE" split_words:"true" default:"-1"`
	AppointmentTemperature  float32 `envconfig:"APPOINTMENT_TEMPERATURE" split_words:"true" default:"-1"`
	ConsultantTemperature   float32 `envconfig:"CONSULTANT_TEMPERATURE" split_words:"true" default:"-1"`
	PricingTemperature      float32 `envconfig:"PRICING_TEMPERATURE" split_words:"true" default:"-1"`
	SupportTemperature      float32 `envconfig:"SUPPORT_TEMPERATURE" split_words:"true" default:"-1"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: openrouter api key is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: default model is required", contractx.ErrValidation)
	}
	return nil
}

func (c Config) OpenRouterFor(persona contractx.PersonaID) openrouterx.Config {
	modelName := strings.TrimSpace(c.Model)
	temp := c.Temperature

	override := func(model string, temperature float32) {
		if v := strings.TrimSpace(model); v != "" {
			modelName = v
		}
		if temperature >= 0 {
			temp = temperature
		}
	}

	switch persona {
	case contractx.PersonaCustomerServiceManager:
		override(c.ManagerModel, c.ManagerTemperature)
	case contractx.PersonaAppointmentSpecialist:
		override(c.AppointmentModel, c.AppointmentTemperature)
	case contractx.PersonaServiceConsultant:
		override(c.ConsultantModel, c.ConsultantTemperature)
	case contractx.PersonaPricingSpecialist:
		override(c.PricingModel, c.PricingTemperature)
	case contractx.PersonaSupportAgent:
		override(c.SupportModel, c.SupportTemperature)
	}

	maxCompletionToken := c.MaxCompletionToken
	return openrouterx.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		APIKey:             strings.TrimSpace(c.APIKey),
		Model:              modelName,
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        temp,
		Timeout:            c.Timeout,
		SiteURL:            strings.TrimSpace(c.SiteURL),
		SiteName:           strings.TrimSpace(c.SiteName),
	}
}
