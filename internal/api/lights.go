package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/smazurov/lightsd/internal/lights"
)

// SetLightRequest represents a request to set one light's state
type SetLightRequest struct {
	Name string `path:"name" example:"notifications" doc:"Well-known light name: backlight, notifications, attention, battery"`
	Body struct {
		Color      string `json:"color" example:"#0000FF" doc:"24-bit RGB color in hex; black turns the light off"`
		Flash      string `json:"flash,omitempty" example:"timed" doc:"Flash mode: none, timed, hardware"`
		FlashOnMS  int    `json:"flash_on_ms,omitempty" example:"500" doc:"Flash on duration in milliseconds"`
		FlashOffMS int    `json:"flash_off_ms,omitempty" example:"2000" doc:"Flash off duration in milliseconds"`
	}
}

// LightCapabilitiesResponse lists the lights and flash modes this HAL exposes
type LightCapabilitiesResponse struct {
	Body struct {
		Lights     []string `json:"lights" doc:"Well-known light names"`
		FlashModes []string `json:"flash_modes" doc:"Accepted flash mode names"`
	}
}

// registerLightRoutes registers light control endpoints
func (s *Server) registerLightRoutes() {
	// Set light state
	huma.Register(s.api, huma.Operation{
		OperationID: "set-light",
		Method:      http.MethodPost,
		Path:        "/api/lights/{name}",
		Summary:     "Set Light",
		Description: "Set a light's color and flash state. The arbiter decides which virtual LED reaches the hardware.",
		Tags:        []string{"lights"},
		Errors:      []int{400, 401, 500},
		Security:    withAuth(),
	}, func(ctx context.Context, input *SetLightRequest) (*struct{}, error) {
		setter, err := s.options.Arbiter.Open(input.Name)
		if err != nil {
			return nil, huma.Error400BadRequest("Unknown light name", err)
		}

		color, err := lights.ParseRGB(input.Body.Color)
		if err != nil {
			return nil, huma.Error400BadRequest("Invalid color", err)
		}

		flash, err := lights.ParseFlashMode(input.Body.Flash)
		if err != nil {
			return nil, huma.Error400BadRequest("Invalid flash mode", err)
		}

		state := lights.State{
			Color:      color,
			Flash:      flash,
			FlashOnMS:  input.Body.FlashOnMS,
			FlashOffMS: input.Body.FlashOffMS,
		}
		if err := setter(state); err != nil {
			if lights.IsInvalidArgument(err) {
				return nil, huma.Error400BadRequest("Failed to set light", err)
			}
			return nil, huma.Error500InternalServerError("Failed to apply light state", err)
		}

		return &struct{}{}, nil
	})

	// Get light capabilities
	huma.Register(s.api, huma.Operation{
		OperationID: "get-light-capabilities",
		Method:      http.MethodGet,
		Path:        "/api/lights",
		Summary:     "Get Light Capabilities",
		Description: "Get the well-known light names and accepted flash modes",
		Tags:        []string{"lights"},
		Errors:      []int{401},
		Security:    withAuth(),
	}, func(ctx context.Context, input *struct{}) (*LightCapabilitiesResponse, error) {
		resp := &LightCapabilitiesResponse{}
		resp.Body.Lights = lights.Names()
		resp.Body.FlashModes = lights.FlashModes()
		return resp, nil
	})

	s.logger.Info("Light routes registered")
}
