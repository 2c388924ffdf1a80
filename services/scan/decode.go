package scan

import "encoding/json"

type Kind string

const (
	// KindLocation registers a supermarket visit.
	KindLocation Kind = "location"
	// KindCheckout triggers checkout of the current cart.
	KindCheckout Kind = "checkout"
	// KindOpaque is anything undecodable: shown to the user as-is.
	KindOpaque Kind = "opaque"
)

type LocationPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Payload is the tagged result of decoding a raw scan. It is produced once
// at the boundary; nothing downstream ever re-inspects the raw text.
type Payload struct {
	Kind     Kind
	Location LocationPayload // set when Kind == KindLocation
	Raw      string          // set when Kind == KindOpaque
}

// Decode classifies raw scan text. A decode failure is not an error: the
// raw text is passed through for display.
func Decode(raw string) Payload {
	probe := struct {
		Type    string `json:"type"`
		ID      string `json:"id"`
		Name    string `json:"name"`
		Address string `json:"address"`
	}{}

	err := json.Unmarshal([]byte(raw), &probe)
	if err != nil {
		return Payload{Kind: KindOpaque, Raw: raw}
	}

	switch probe.Type {
	case string(KindLocation):
		if probe.ID == "" || probe.Name == "" {
			return Payload{Kind: KindOpaque, Raw: raw}
		}
		return Payload{
			Kind: KindLocation,
			Location: LocationPayload{
				ID:      probe.ID,
				Name:    probe.Name,
				Address: probe.Address,
			},
		}
	case string(KindCheckout):
		return Payload{Kind: KindCheckout}
	default:
		return Payload{Kind: KindOpaque, Raw: raw}
	}
}
