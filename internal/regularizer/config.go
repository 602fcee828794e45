package regularizer

import (
	"encoding/json"
	"fmt"
)

// Config is the serializable summary of a regularizer's configuration:
// the registered name plus any scalar hyperparameters. It is what
// model-config persistence stores and what the registry reconstructs
// regularizers from.
//
// Note: EigenvalueRegularizer does not serialize its gain k, so its
// config round-trip is lossy.
type Config struct {
	Name string  `json:"name"`
	L1   float64 `json:"l1,omitempty"`
	L2   float64 `json:"l2,omitempty"`
}

// ToJSON marshals the config.
func (c Config) ToJSON() ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal regularizer config: %w", err)
	}
	return data, nil
}

// ConfigFromJSON unmarshals a config.
func ConfigFromJSON(data []byte) (Config, error) {
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("unmarshal regularizer config: %w", err)
	}
	if c.Name == "" {
		return Config{}, fmt.Errorf("unmarshal regularizer config: missing name")
	}
	return c, nil
}
