package server

import (
	"os"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	// port the API server listens on
	ServerPort string `yaml:"port"`

	// connection string of the backing database
	DBURI string `yaml:"dburi"`

	// secret for signing session tokens (HS256)
	TokenSecret string `yaml:"tokenSecret"`

	// session token lifetime, in hours. 0 means the default (168 = 7 days).
	TokenExpiryHours int `yaml:"tokenExpiryHours"`

	Gateway GatewayConfig `yaml:"gateway"`
}

// credentials of the card-payment gateway.
type GatewayConfig struct {
	// "sandbox" or "production"
	Environment string `yaml:"environment"`
	MerchantId  string `yaml:"merchantId"`
	PublicKey   string `yaml:"publicKey"`
	PrivateKey  string `yaml:"privateKey"`
}

func LoadServerConfig(filepath string) (*ServerConfig, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Unmarshal(content)
}

func Unmarshal(conf []byte) (*ServerConfig, error) {
	var out ServerConfig
	err := yaml.Unmarshal(conf, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
