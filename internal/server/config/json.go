package config

import (
	"encoding/json"
	"os"

	"github.com/oluccaa/qualidade-sub001/internal/flagx"
	"github.com/oluccaa/qualidade-sub001/internal/timex"
)

// JsonConfig mirrors Config for unmarshalling. Durations accept "15m" or
// integer nanoseconds. Fields left out of the file keep their current value.
type JsonConfig struct {
	EndpointAddrGRPC            *string        `json:"endpoint_addr_grpc"`
	MetricsAddr                 *string        `json:"metrics_addr"`
	DatabaseDSN                 *string        `json:"database_dsn"`
	SecretKey                   *string        `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	SignedURLTTL                timex.Duration `json:"signed_url_ttl"`
	S3RootUser                  *string        `json:"s3_root_user"`
	S3RootPassword              *string        `json:"s3_root_password"`
	S3Bucket                    *string        `json:"s3_bucket"`
	S3Region                    *string        `json:"s3_region"`
	S3BaseEndpoint              *string        `json:"s3_base_endpoint"`
	LogBackend                  *string        `json:"log_backend"`
	LogLevel                    *string        `json:"log_level"`
	AdminEmail                  *string        `json:"admin_email"`
	AdminPassword               *string        `json:"admin_password"`
}

// parseJson overlays the JSON file named by -c/-config onto config. It does
// nothing when no file is given and panics when the file is unreadable or
// malformed.
func parseJson(config *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.MetricsAddr, c.MetricsAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration.IsSet() {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.SignedURLTTL.IsSet() {
		config.SignedURLTTL = c.SignedURLTTL.Duration
	}
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.LogBackend, c.LogBackend)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.AdminEmail, c.AdminEmail)
	setString(&config.AdminPassword, c.AdminPassword)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
